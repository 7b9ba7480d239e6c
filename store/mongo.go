package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names match the existing Mongoose deployment.
const (
	colUsers        = "users"
	colOrders       = "orders"
	colProducts     = "products"
	colVendors      = "vendors"
	colVendorOrders = "vendororders"
)

// Connect dials MongoDB and returns a Store backed by the named database.
func Connect(ctx context.Context, uri, dbName string) (*Store, *mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}
	db := client.Database(dbName)
	return NewMongoStore(db), client, nil
}

// NewMongoStore wires the per-collection implementations over db.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:        &mongoUsers{col: db.Collection(colUsers)},
		Orders:       &mongoOrders{col: db.Collection(colOrders)},
		Products:     &mongoProducts{col: db.Collection(colProducts)},
		Vendors:      &mongoVendors{col: db.Collection(colVendors)},
		VendorOrders: &mongoVendorOrders{col: db.Collection(colVendorOrders)},
	}
}

// EnsureIndexes creates the indexes the API depends on. Idempotent; run at
// startup. The sparse phone index replaces the old one-off repair script so
// users without phone numbers don't trip duplicate key errors.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := db.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true).SetName("phone_1"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(colVendors).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "isActive", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(colVendorOrders).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "vendorId", Value: 1}},
	})
	return err
}

// createdBetween builds a half-open createdAt filter; zero until = unbounded.
func createdBetween(from, until time.Time) bson.M {
	rng := bson.M{"$gte": from}
	if !until.IsZero() {
		rng["$lt"] = until
	}
	return bson.M{"createdAt": rng}
}
