package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vedseem-infohub/Yelo-Backend/models"
)

type mongoVendors struct {
	col *mongo.Collection
}

func (s *mongoVendors) Create(ctx context.Context, v *models.Vendor) error {
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, v)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		v.ID = id
	}
	return nil
}

func (s *mongoVendors) FindAll(ctx context.Context) ([]models.Vendor, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var vendors []models.Vendor
	if err := cur.All(ctx, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *mongoVendors) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	var v models.Vendor
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *mongoVendors) FindActiveBySlug(ctx context.Context, slug string) (*models.Vendor, error) {
	var v models.Vendor
	err := s.col.FindOne(ctx, bson.M{"slug": slug, "isActive": true}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *mongoVendors) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *mongoVendors) Update(ctx context.Context, id primitive.ObjectID, u models.VendorUpdate) (*models.Vendor, error) {
	set := bson.M{"updatedAt": time.Now()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Slug != nil {
		set["slug"] = *u.Slug
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Address != nil {
		set["address"] = *u.Address
	}
	if u.OwnerName != nil {
		set["ownerName"] = *u.OwnerName
	}
	if u.Owner != nil {
		set["owner"] = *u.Owner
	}
	if u.Commission != nil {
		set["commission"] = *u.Commission
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Rating != nil {
		set["rating"] = *u.Rating
	}
	if u.IsActive != nil {
		set["isActive"] = *u.IsActive
	}
	return s.findAndUpdate(ctx, id, bson.M{"$set": set})
}

func (s *mongoVendors) UpdateCommission(ctx context.Context, id primitive.ObjectID, commission float64) (*models.Vendor, error) {
	return s.findAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"commission": commission,
		"updatedAt":  time.Now(),
	}})
}

func (s *mongoVendors) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *mongoVendors) findAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Vendor, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var v models.Vendor
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type mongoVendorOrders struct {
	col *mongo.Collection
}

func (s *mongoVendorOrders) FindForVendor(ctx context.Context, vendor models.Vendor) ([]models.VendorOrder, error) {
	// Same ordered match strategies as products: id first, exact name, then
	// the fuzzy first-word fallback.
	filter := bson.M{"$or": []bson.M{
		{"vendorId": vendor.ID},
		{"vendorName": vendor.Name},
		{"vendorName": primitive.Regex{Pattern: FirstWord(vendor.Name), Options: "i"}},
	}}
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.VendorOrder
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
