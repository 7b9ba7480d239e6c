package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorOrder attributes a vendor's share (subtotal) of an order to that
// vendor without mutating the order document itself. Written by checkout.
type VendorOrder struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	VendorID   primitive.ObjectID `bson:"vendorId,omitempty" json:"vendorId"`
	VendorName string             `bson:"vendorName,omitempty" json:"vendorName,omitempty"`
	OrderID    primitive.ObjectID `bson:"orderId" json:"orderId"`
	Subtotal   float64            `bson:"subtotal" json:"subtotal"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
