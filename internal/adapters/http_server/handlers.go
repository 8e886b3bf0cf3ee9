// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"million_properties/internal/app"
	"million_properties/internal/domain"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50 // larger requests are clamped, not rejected
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/properties", h.listProperties)
	s.mux.Get("/api/properties/{id}", h.getProperty)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// parseListParams validates pagination and filters. All rejections happen
// here, before any query is issued; pageSize above the cap is clamped
// silently so the repository stays reusable.
func parseListParams(r *http.Request) (domain.ListFilter, domain.PageQuery, *problem) {
	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return domain.ListFilter{}, domain.PageQuery{}, &problem{Title: "Invalid page", Detail: "page must be an integer greater than 0"}
		}
		page = n
	}

	size := defaultPageSize
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return domain.ListFilter{}, domain.PageQuery{}, &problem{Title: "Invalid pageSize", Detail: "pageSize must be an integer greater than 0"}
		}
		size = n
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	var f domain.ListFilter
	if v := strings.TrimSpace(q.Get("name")); v != "" {
		f.Name = &v
	}
	if v := strings.TrimSpace(q.Get("address")); v != "" {
		f.Address = &v
	}
	if v := q.Get("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return domain.ListFilter{}, domain.PageQuery{}, &problem{Title: "Invalid minPrice", Detail: "minPrice must be a non-negative number"}
		}
		f.MinPrice = &p
	}
	if v := q.Get("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return domain.ListFilter{}, domain.PageQuery{}, &problem{Title: "Invalid maxPrice", Detail: "maxPrice must be a non-negative number"}
		}
		f.MaxPrice = &p
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return domain.ListFilter{}, domain.PageQuery{}, &problem{Title: "Invalid price range", Detail: "minPrice cannot be greater than maxPrice"}
	}

	return f, domain.PageQuery{Page: page, Size: size}, nil
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	f, pg, bad := parseListParams(r)
	if bad != nil {
		writeProblem(w, http.StatusBadRequest, bad.Title, bad.Detail)
		return
	}

	out, err := h.Q.ListProperties(r.Context(), f, pg)
	if err != nil {
		log.Error().Err(err).Msg("list properties failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "an error occurred while retrieving properties")
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "property id is required")
		return
	}

	v, err := h.Q.GetProperty(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("get property failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "an error occurred while retrieving the property")
		return
	}
	writeJSON(w, r, v)
}
