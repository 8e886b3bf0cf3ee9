package mongodb

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"million_properties/internal/domain"
)

// propertyDoc is the persistence model. The bson tags are the static
// field-mapping table for the `properties` collection; keep them in sync
// with EnsureIndexes and the seeder fixtures.
type propertyDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	OwnerID      string               `bson:"idOwner"`
	Name         string               `bson:"name"`
	Address      string               `bson:"address"`
	Price        primitive.Decimal128 `bson:"price"`
	ImageURL     string               `bson:"imageUrl"`
	InternalCode string               `bson:"codeInternal"`
	Year         int                  `bson:"year"`
	Enabled      bool                 `bson:"enabled"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func toDomain(d propertyDoc) domain.Property {
	price, _ := strconv.ParseFloat(d.Price.String(), 64)
	return domain.Property{
		ID:           d.ID.Hex(),
		OwnerID:      d.OwnerID,
		Name:         d.Name,
		Address:      d.Address,
		Price:        price,
		ImageURL:     d.ImageURL,
		InternalCode: d.InternalCode,
		Year:         d.Year,
		Enabled:      d.Enabled,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// decimal128 converts an amount to the decimal-preserving storage
// representation, avoiding binary-float rounding at the boundary.
func decimal128(f float64) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(strconv.FormatFloat(f, 'f', -1, 64))
}
