package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VendorStatus string

const (
	VendorStatusPending  VendorStatus = "PENDING"
	VendorStatusApproved VendorStatus = "APPROVED"
	VendorStatusRejected VendorStatus = "REJECTED"
	VendorStatusActive   VendorStatus = "ACTIVE"
	VendorStatusInactive VendorStatus = "INACTIVE"
)

const DefaultCommission = 15.0

type Vendor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	OwnerName    string             `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	Owner        string             `bson:"owner,omitempty" json:"owner,omitempty"`
	Commission   float64            `bson:"commission" json:"commission"`
	Status       VendorStatus       `bson:"status" json:"status"`
	TotalRevenue float64            `bson:"totalRevenue" json:"totalRevenue"`
	Revenue      float64            `bson:"revenue" json:"revenue"`
	Rating       float64            `bson:"rating" json:"rating"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VendorUpdate is a partial patch; nil fields are left untouched.
type VendorUpdate struct {
	Name       *string       `json:"name"`
	Slug       *string       `json:"slug"`
	Email      *string       `json:"email"`
	Phone      *string       `json:"phone"`
	Address    *string       `json:"address"`
	OwnerName  *string       `json:"ownerName"`
	Owner      *string       `json:"owner"`
	Commission *float64      `json:"commission"`
	Status     *VendorStatus `json:"status"`
	Rating     *float64      `json:"rating"`
	IsActive   *bool         `json:"isActive"`
}

// ValidStatus reports whether s is one of the known vendor statuses.
func ValidStatus(s VendorStatus) bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusRejected,
		VendorStatusActive, VendorStatusInactive:
		return true
	}
	return false
}
