package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses as written by the checkout flow
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"

	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
)

// Order documents are created by the checkout service; this API only reads
// and aggregates them (and deletes them when a user is removed).
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	OrderStatus     OrderStatus        `bson:"orderStatus" json:"orderStatus"`
	PaymentStatus   PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	DeliveryAddress *Address           `bson:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	// Product is filled in by lookup when returning order details; never persisted.
	Product *ProductSummary `bson:"-" json:"product,omitempty"`
}

// ProductSummary is the resolved slice of a product attached to order items.
type ProductSummary struct {
	Name   string   `json:"name"`
	Slug   string   `json:"slug"`
	Images []string `json:"images,omitempty"`
	Price  float64  `json:"price"`
}

// IsRevenue reports whether the order counts towards revenue totals.
func (o Order) IsRevenue() bool {
	return o.PaymentStatus == PaymentStatusPaid && o.OrderStatus != OrderStatusCancelled
}
