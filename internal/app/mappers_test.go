package app_test

import (
	"encoding/json"
	"testing"
	"time"

	"million_properties/internal/app"
	"million_properties/internal/domain"
)

func TestNewPage_TotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{25, 10, 3},
		{30, 10, 3},
		{0, 10, 0},
		{1, 50, 1},
		{5, 10, 1},
		{51, 50, 2},
	}
	for _, c := range cases {
		got := app.NewPage(nil, 1, c.pageSize, c.total).Meta.TotalPages
		if got != c.want {
			t.Errorf("totalPages(total=%d, pageSize=%d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}

func TestNewPage_EmptyItemsKeepMetadata(t *testing.T) {
	// page beyond the last one: no items, but the true count survives
	pg := app.NewPage(nil, 2, 10, 5)
	if pg.Data == nil || len(pg.Data) != 0 {
		t.Fatalf("expected empty non-nil data, got %#v", pg.Data)
	}
	if pg.Meta.TotalCount != 5 || pg.Meta.TotalPages != 1 || pg.Meta.Page != 2 {
		t.Fatalf("unexpected meta: %+v", pg.Meta)
	}

	b, err := json.Marshal(pg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"data":[],"meta":{"page":2,"pageSize":10,"totalCount":5,"totalPages":1}}` {
		t.Fatalf("unexpected JSON: %s", b)
	}
}

func TestToView_DropsInternalFields(t *testing.T) {
	p := domain.Property{
		ID:           "665f1f77bcf86cd799439011",
		OwnerID:      "owner-1",
		Name:         "Casa Moderna",
		Address:      "Calle 123 #45-67, Bogotá",
		Price:        850000000,
		ImageURL:     "https://img.example.com/1.jpg",
		InternalCode: "MLN-0001",
		Year:         2019,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	b, err := json.Marshal(app.ToView(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"id", "idOwner", "name", "address", "price", "imageUrl"} {
		if _, ok := m[k]; !ok {
			t.Errorf("view JSON missing key %q: %s", k, b)
		}
	}
	for _, k := range []string{"codeInternal", "year", "enabled", "createdAt", "updatedAt"} {
		if _, ok := m[k]; ok {
			t.Errorf("view JSON leaked internal key %q: %s", k, b)
		}
	}
	if len(m) != 6 {
		t.Errorf("view JSON has %d keys, want 6: %s", len(m), b)
	}
}

func TestNewPage_PreservesOrder(t *testing.T) {
	items := []domain.Property{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "Second"},
		{ID: "c", Name: "Third"},
	}
	pg := app.NewPage(items, 1, 10, 3)
	for i, want := range []string{"a", "b", "c"} {
		if pg.Data[i].ID != want {
			t.Fatalf("data[%d].ID = %s, want %s", i, pg.Data[i].ID, want)
		}
	}
}
