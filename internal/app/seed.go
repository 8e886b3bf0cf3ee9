package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"million_properties/internal/domain"
)

// SeedRecord is one entry of the fixtures file. Enabled is a pointer so an
// absent value and an explicit false can be told apart; absent defaults true.
type SeedRecord struct {
	OwnerID      string  `json:"idOwner"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
	InternalCode string  `json:"codeInternal"`
	Year         int     `json:"year"`
	Enabled      *bool   `json:"enabled"`
}

// SeedService loads fixture records into the store. It is the out-of-band
// ingestion path; the HTTP API never writes.
type SeedService struct {
	repo domain.PropertyRepository
}

func NewSeedService(r domain.PropertyRepository) *SeedService {
	return &SeedService{repo: r}
}

func (s *SeedService) SeedProperty(ctx context.Context, rec SeedRecord) error {
	p, err := mapRecord(rec)
	if err != nil {
		return err
	}
	return s.repo.UpsertProperty(ctx, p)
}

func mapRecord(rec SeedRecord) (domain.Property, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return domain.Property{}, fmt.Errorf("seed record missing name")
	}
	if rec.Price < 0 {
		return domain.Property{}, fmt.Errorf("seed record %q: negative price %v", name, rec.Price)
	}

	code := strings.TrimSpace(rec.InternalCode)
	if code == "" {
		code = uuid.NewString()
	}
	enabled := true
	if rec.Enabled != nil {
		enabled = *rec.Enabled
	}

	now := time.Now().UTC()
	return domain.Property{
		OwnerID:      strings.TrimSpace(rec.OwnerID),
		Name:         name,
		Address:      strings.TrimSpace(rec.Address),
		Price:        rec.Price,
		ImageURL:     strings.TrimSpace(rec.ImageURL),
		InternalCode: code,
		Year:         rec.Year,
		Enabled:      enabled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
