package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedseem-infohub/Yelo-Backend/models"
)

var (
	// ErrNotFound is returned when a document looked up by id/slug is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned on unique-constraint violations (slug, email, phone).
	ErrDuplicate = errors.New("duplicate key")
)

// UserOrderStats is the per-user rollup joined onto admin user listings.
type UserOrderStats struct {
	UserID       primitive.ObjectID `bson:"_id"`
	TotalOrders  int64              `bson:"totalOrders"`
	TotalRevenue float64            `bson:"totalRevenue"`
}

// CategoryRevenue is one row of the category distribution.
type CategoryRevenue struct {
	Category string  `bson:"_id"`
	Revenue  float64 `bson:"revenue"`
	Orders   int64   `bson:"orders"`
}

// PaymentMethodStats is one row of the payment-method distribution.
type PaymentMethodStats struct {
	Method  string  `bson:"_id"`
	Count   int64   `bson:"count"`
	Revenue float64 `bson:"revenue"`
}

// ProfileUpdate patches the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// Time ranges throughout the store are half-open [from, until); a zero
// `until` means unbounded, matching the dashboard's open-ended current
// period queries.

type UserStore interface {
	CountActive(ctx context.Context) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, until time.Time) (int64, error)
	List(ctx context.Context, skip, limit int64) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpdateProfile(ctx context.Context, id primitive.ObjectID, p ProfileUpdate) (*models.User, error)
	UpdateAddress(ctx context.Context, id primitive.ObjectID, a models.Address) (*models.User, error)
}

type OrderStore interface {
	// RevenueBetween sums totalAmount over PAID, non-CANCELLED orders.
	RevenueBetween(ctx context.Context, from, until time.Time) (float64, error)
	// CountBetween counts all orders in range regardless of status.
	CountBetween(ctx context.Context, from, until time.Time) (int64, error)
	CategoryRevenue(ctx context.Context, from time.Time, limit int64) ([]CategoryRevenue, error)
	PaymentMethodBreakdown(ctx context.Context, from time.Time) ([]PaymentMethodStats, error)
	StatsByUser(ctx context.Context, userIDs []primitive.ObjectID) ([]UserOrderStats, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Order, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type ProductStore interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	// FindByVendorSlug lists active products for a vendor storefront page.
	FindByVendorSlug(ctx context.Context, slug, sort string, skip, limit int64) ([]models.Product, error)
	CountByVendorSlug(ctx context.Context, slug string) (int64, error)
	// FindForVendor resolves a vendor's active products through the ordered
	// match strategies (exact slug, exact brand, fuzzy first-word brand).
	FindForVendor(ctx context.Context, vendor models.Vendor) ([]models.Product, error)
}

type VendorStore interface {
	Create(ctx context.Context, v *models.Vendor) error
	FindAll(ctx context.Context) ([]models.Vendor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error)
	FindActiveBySlug(ctx context.Context, slug string) (*models.Vendor, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, u models.VendorUpdate) (*models.Vendor, error)
	UpdateCommission(ctx context.Context, id primitive.ObjectID, commission float64) (*models.Vendor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type VendorOrderStore interface {
	// FindForVendor resolves join records through the same ordered match
	// strategies as products (vendor id, exact name, fuzzy first-word name).
	FindForVendor(ctx context.Context, vendor models.Vendor) ([]models.VendorOrder, error)
}

// Store bundles the per-collection interfaces handed to the controllers.
type Store struct {
	Users        UserStore
	Orders       OrderStore
	Products     ProductStore
	Vendors      VendorStore
	VendorOrders VendorOrderStore
}
