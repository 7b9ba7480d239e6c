package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vedseem-infohub/Yelo-Backend/models"
)

type mongoOrders struct {
	col *mongo.Collection
}

// revenueMatch restricts an order filter to revenue-counting orders.
func revenueMatch(filter bson.M) bson.M {
	filter["paymentStatus"] = string(models.PaymentStatusPaid)
	filter["orderStatus"] = bson.M{"$ne": string(models.OrderStatusCancelled)}
	return filter
}

func (s *mongoOrders) RevenueBetween(ctx context.Context, from, until time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: revenueMatch(createdBetween(from, until))}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var res []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &res); err != nil {
		return 0, err
	}
	if len(res) == 0 {
		return 0, nil
	}
	return res[0].Total, nil
}

func (s *mongoOrders) CountBetween(ctx context.Context, from, until time.Time) (int64, error) {
	return s.col.CountDocuments(ctx, createdBetween(from, until))
}

// CategoryRevenue expands order line items, joins each to its product and
// groups price*quantity by product category, top `limit` by revenue.
func (s *mongoOrders) CategoryRevenue(ctx context.Context, from time.Time, limit int64) ([]CategoryRevenue, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: revenueMatch(createdBetween(from, time.Time{}))}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         colProducts,
			"localField":   "items.productId",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$product.category",
			"revenue": bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}},
			"orders":  bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"revenue": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []CategoryRevenue
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PaymentMethodBreakdown groups all orders in range by payment method;
// deliberately not filtered by payment/order status.
func (s *mongoOrders) PaymentMethodBreakdown(ctx context.Context, from time.Time) ([]PaymentMethodStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: createdBetween(from, time.Time{})}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$paymentMethod",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []PaymentMethodStats
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// StatsByUser rolls order count and revenue up per user in one aggregation,
// so the admin listing never goes N+1.
func (s *mongoOrders) StatsByUser(ctx context.Context, userIDs []primitive.ObjectID) ([]UserOrderStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": bson.M{"$in": userIDs}}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$userId",
			"totalOrders":  bson.M{"$sum": 1},
			"totalRevenue": bson.M{"$sum": "$totalAmount"},
		}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []UserOrderStats
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *mongoOrders) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := s.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoOrders) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Order, error) {
	cur, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoOrders) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"userId": userID})
}

func (s *mongoOrders) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
