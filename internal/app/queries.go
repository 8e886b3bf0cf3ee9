package app

import (
	"context"

	"million_properties/internal/domain"
)

type QueryService struct {
	repo domain.PropertyRepository
}

func NewQueryService(r domain.PropertyRepository) *QueryService {
	return &QueryService{repo: r}
}

// ListProperties runs the filtered count+fetch and shapes the page. Filter
// and pagination validation happens at the HTTP boundary, not here.
func (s *QueryService) ListProperties(ctx context.Context, f domain.ListFilter, pg domain.PageQuery) (domain.PropertyPage, error) {
	items, total, err := s.repo.List(ctx, f, pg)
	if err != nil {
		return domain.PropertyPage{}, err
	}
	return NewPage(items, pg.Page, pg.Size, total), nil
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.PropertyView, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.PropertyView{}, err
	}
	return ToView(p), nil
}
