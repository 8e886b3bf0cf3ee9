package domain

import "context"

type PropertyRepository interface {
	// Read paths
	List(ctx context.Context, f ListFilter, pg PageQuery) (items []Property, total int64, err error)
	GetByID(ctx context.Context, id string) (Property, error)

	// Seeder paths (not reachable from the API)
	UpsertProperty(ctx context.Context, p Property) error
	EnsureIndexes(ctx context.Context) error
}

// Read models & queries

// ListFilter carries the optional list constraints. nil means "not supplied";
// blank strings are treated the same as absent.
type ListFilter struct {
	Name     *string
	Address  *string
	MinPrice *float64
	MaxPrice *float64
}

// PageQuery is an offset page request. The HTTP boundary guarantees
// Page >= 1 and Size in [1,50] before it reaches the repository.
type PageQuery struct {
	Page int // 1-based
	Size int
}

func (p PageQuery) Offset() int64 { return int64(p.Page-1) * int64(p.Size) }

// PropertyView is the public projection; internal code, year, enabled and
// timestamps are never exposed.
type PropertyView struct {
	ID       string  `json:"id"`
	OwnerID  string  `json:"idOwner"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

type PropertyPage struct {
	Data []PropertyView `json:"data"`
	Meta PageMeta       `json:"meta"`
}
