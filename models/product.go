package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Rating      float64            `bson:"rating" json:"rating"`
	Reviews     int                `bson:"reviews" json:"reviews"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Subcategory string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	VendorSlug  string             `bson:"vendorSlug,omitempty" json:"vendorSlug,omitempty"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	// DateAdded is the storefront listing date; CreatedAt the document timestamp.
	DateAdded time.Time `bson:"dateAdded,omitempty" json:"dateAdded,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
