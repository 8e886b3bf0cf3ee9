package app_test

import (
	"context"
	"testing"

	"million_properties/internal/app"
	"million_properties/internal/domain"
)

type captureRepo struct {
	fakeRepo
	upserted []domain.Property
}

func (c *captureRepo) UpsertProperty(ctx context.Context, p domain.Property) error {
	c.upserted = append(c.upserted, p)
	return nil
}

func TestSeedProperty_Defaults(t *testing.T) {
	repo := &captureRepo{}
	s := app.NewSeedService(repo)

	err := s.SeedProperty(context.Background(), app.SeedRecord{
		OwnerID: " owner-1 ",
		Name:    "Casa Moderna",
		Address: "Calle 63, Bogotá",
		Price:   850000000,
		Year:    2019,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserted))
	}
	p := repo.upserted[0]
	if !p.Enabled {
		t.Fatal("enabled must default true")
	}
	if p.InternalCode == "" {
		t.Fatal("missing codeInternal must be generated")
	}
	if p.OwnerID != "owner-1" {
		t.Fatalf("owner not trimmed: %q", p.OwnerID)
	}
	if p.CreatedAt.IsZero() || p.CreatedAt.After(p.UpdatedAt) {
		t.Fatalf("bad timestamps: created=%v updated=%v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestSeedProperty_ExplicitDisabledKept(t *testing.T) {
	repo := &captureRepo{}
	s := app.NewSeedService(repo)

	disabled := false
	if err := s.SeedProperty(context.Background(), app.SeedRecord{
		Name: "Casa Retirada", Price: 1, Enabled: &disabled,
	}); err != nil {
		t.Fatalf("err: %v", err)
	}
	if repo.upserted[0].Enabled {
		t.Fatal("explicit enabled=false must survive")
	}
}

func TestSeedProperty_RejectsBadRecords(t *testing.T) {
	repo := &captureRepo{}
	s := app.NewSeedService(repo)

	bad := []app.SeedRecord{
		{Name: "   ", Price: 100},       // blank name
		{Name: "Casa Mala", Price: -50}, // negative price
	}
	for _, rec := range bad {
		if err := s.SeedProperty(context.Background(), rec); err == nil {
			t.Errorf("record %+v: expected error", rec)
		}
	}
	if len(repo.upserted) != 0 {
		t.Fatalf("bad records must not be written, got %d", len(repo.upserted))
	}
}
