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

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) CountActive(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"isActive": true})
}

func (s *mongoUsers) CountAll(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *mongoUsers) CountCreatedBetween(ctx context.Context, from, until time.Time) (int64, error) {
	return s.col.CountDocuments(ctx, createdBetween(from, until))
}

func (s *mongoUsers) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUsers) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUsers) UpdateProfile(ctx context.Context, id primitive.ObjectID, p ProfileUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Avatar != nil {
		set["avatar"] = *p.Avatar
	}
	user, err := s.findAndUpdate(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	// A profile counts as complete once name, email and phone are all set.
	if !user.IsProfileComplete && user.Name != "" && user.Email != "" && user.Phone != "" {
		return s.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"isProfileComplete": true}})
	}
	return user, nil
}

func (s *mongoUsers) UpdateAddress(ctx context.Context, id primitive.ObjectID, a models.Address) (*models.User, error) {
	return s.findAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"address":   a,
		"updatedAt": time.Now(),
	}})
}

func (s *mongoUsers) findAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
