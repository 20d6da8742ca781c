package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SizeCategory is the garment size classification.
type SizeCategory string

const (
	SizeCategoryXS  SizeCategory = "XS"
	SizeCategoryS   SizeCategory = "S"
	SizeCategoryM   SizeCategory = "M"
	SizeCategoryL   SizeCategory = "L"
	SizeCategoryXL  SizeCategory = "XL"
	SizeCategoryXXL SizeCategory = "XXL"
)

// SizeCategories lists the accepted cloth_size_category values in order.
var SizeCategories = []SizeCategory{
	SizeCategoryXS,
	SizeCategoryS,
	SizeCategoryM,
	SizeCategoryL,
	SizeCategoryXL,
	SizeCategoryXXL,
}

// Product represents a clothing item document. ItemID is the 6-digit
// natural key; ID is the store-assigned internal identifier.
type Product struct {
	ID                primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ItemID            int                `json:"item_id" bson:"item_id"`
	ProductName       string             `json:"product_name" bson:"product_name"`
	Size              int                `json:"size" bson:"size"`
	Quality           int                `json:"quality" bson:"quality"`
	Keywords          []string           `json:"keywords" bson:"keywords"`
	ClothSizeCategory SizeCategory       `json:"cloth_size_category" bson:"cloth_size_category"`
	LastUpdateDate    time.Time          `json:"last_update_date" bson:"last_update_date"`
}

// ProductUpdate represents a partial update to a product. Nil fields are
// left untouched.
type ProductUpdate struct {
	ProductName       *string       `json:"product_name,omitempty"`
	Size              *int          `json:"size,omitempty"`
	Quality           *int          `json:"quality,omitempty"`
	Keywords          []string      `json:"keywords,omitempty"`
	ClothSizeCategory *SizeCategory `json:"cloth_size_category,omitempty"`
	LastUpdateDate    *time.Time    `json:"last_update_date,omitempty"`
}
