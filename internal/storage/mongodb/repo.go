package mongodb

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"million_properties/internal/domain"
)

const collectionName = "properties"

type Repo struct{ col *mongo.Collection }

func New(db *mongo.Database) *Repo { return &Repo{col: db.Collection(collectionName)} }

// trimmed returns the dereferenced, space-trimmed value, "" when absent.
func trimmed(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// buildFilter composes the conjunctive list predicate. `enabled: true` is
// always present; everything else only when supplied. Filter text is
// QuoteMeta-escaped so user input is a literal substring, never a pattern.
func buildFilter(f domain.ListFilter) (bson.M, error) {
	filter := bson.M{"enabled": true}

	if s := trimmed(f.Name); s != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
	}
	if s := trimmed(f.Address); s != "" {
		filter["address"] = primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
	}

	price := bson.M{}
	if f.MinPrice != nil {
		d, err := decimal128(*f.MinPrice)
		if err != nil {
			return nil, err
		}
		price["$gte"] = d
	}
	if f.MaxPrice != nil {
		d, err := decimal128(*f.MaxPrice)
		if err != nil {
			return nil, err
		}
		price["$lte"] = d
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter, nil
}

// List runs a count over the full predicate, then a bounded fetch sorted by
// creation time descending. The two queries are not a snapshot; no writer is
// in scope, so the count and the page cannot drift apart.
func (r *Repo) List(ctx context.Context, f domain.ListFilter, pg domain.PageQuery) ([]domain.Property, int64, error) {
	filter, err := buildFilter(f)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(pg.Offset()).
		SetLimit(int64(pg.Size))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []domain.Property
	for cur.Next(ctx) {
		var d propertyDoc
		if err := cur.Decode(&d); err != nil {
			return nil, 0, err
		}
		out = append(out, toDomain(d))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByID looks up by id AND enabled=true. Missing, disabled, and
// syntactically invalid ids all come back as ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Property{}, domain.ErrNotFound
	}

	var d propertyDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "enabled": true}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Property{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Property{}, err
	}
	return toDomain(d), nil
}

// UpsertProperty writes a listing keyed by its internal code. Only the
// seeder calls this; the API surface stays read-only.
func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	price, err := decimal128(p.Price)
	if err != nil {
		return err
	}
	update := bson.M{
		"$set": bson.M{
			"idOwner":   p.OwnerID,
			"name":      p.Name,
			"address":   p.Address,
			"price":     price,
			"imageUrl":  p.ImageURL,
			"year":      p.Year,
			"enabled":   p.Enabled,
			"updatedAt": p.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"codeInternal": p.InternalCode,
			"createdAt":    p.CreatedAt,
		},
	}
	_, err = r.col.UpdateOne(ctx,
		bson.M{"codeInternal": p.InternalCode},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "enabled", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "codeInternal", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})
	return err
}
