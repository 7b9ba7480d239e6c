package store

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vedseem-infohub/Yelo-Backend/models"
)

type mongoProducts struct {
	col *mongo.Collection
}

// vendorProductSorts maps the storefront sort keys to Mongo sort documents.
var vendorProductSorts = map[string]bson.D{
	"popular":    {{Key: "reviews", Value: -1}, {Key: "rating", Value: -1}},
	"price-low":  {{Key: "price", Value: 1}},
	"price-high": {{Key: "price", Value: -1}},
	"newest":     {{Key: "dateAdded", Value: -1}},
}

func (s *mongoProducts) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	cur, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *mongoProducts) FindByVendorSlug(ctx context.Context, slug, sort string, skip, limit int64) ([]models.Product, error) {
	sortDoc, ok := vendorProductSorts[sort]
	if !ok {
		sortDoc = vendorProductSorts["popular"]
	}
	opts := options.Find().SetSort(sortDoc).SetSkip(skip).SetLimit(limit)
	cur, err := s.col.Find(ctx, bson.M{"vendorSlug": slug, "isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *mongoProducts) CountByVendorSlug(ctx context.Context, slug string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"vendorSlug": slug, "isActive": true})
}

// vendorMatchers is the ordered list of match strategies for resolving a
// vendor's products: exact slug first, exact brand name, then a
// case-insensitive first-word brand match as a fuzzy fallback for catalogs
// where brand tagging is inconsistent.
func vendorMatchers(vendor models.Vendor) []bson.M {
	return []bson.M{
		{"vendorSlug": vendor.Slug},
		{"brand": vendor.Name},
		{"brand": primitive.Regex{Pattern: FirstWord(vendor.Name), Options: "i"}},
	}
}

// FirstWord returns the first whitespace-delimited word of a name, used by
// the fuzzy brand/vendor-name matchers.
func FirstWord(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

func (s *mongoProducts) FindForVendor(ctx context.Context, vendor models.Vendor) ([]models.Product, error) {
	filter := bson.M{
		"$or":      vendorMatchers(vendor),
		"isActive": true,
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
