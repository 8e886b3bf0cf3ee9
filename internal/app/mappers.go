package app

import (
	"math"

	"million_properties/internal/domain"
)

// ToView projects an entity to its public shape, dropping internal code,
// year, the enabled flag and timestamps.
func ToView(p domain.Property) domain.PropertyView {
	return domain.PropertyView{
		ID:       p.ID,
		OwnerID:  p.OwnerID,
		Name:     p.Name,
		Address:  p.Address,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	}
}

// NewPage wraps items (order preserved) with pagination metadata.
// Zero items still yields a non-nil Data slice so the JSON is [] not null.
func NewPage(items []domain.Property, page, pageSize int, total int64) domain.PropertyPage {
	data := make([]domain.PropertyView, 0, len(items))
	for _, p := range items {
		data = append(data, ToView(p))
	}
	return domain.PropertyPage{
		Data: data,
		Meta: domain.PageMeta{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: total,
			TotalPages: totalPages(total, pageSize),
		},
	}
}

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}
