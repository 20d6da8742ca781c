package types

import "go.mongodb.org/mongo-driver/bson/primitive"

// FitRating describes how the item fit the customer.
type FitRating string

const (
	FitTight   FitRating = "Tight"
	FitLoose   FitRating = "Loose"
	FitPerfect FitRating = "Perfect"
)

// LengthRating describes the perceived garment length.
type LengthRating string

const (
	LengthShort   LengthRating = "Short"
	LengthRegular LengthRating = "Regular"
	LengthLong    LengthRating = "Long"
)

// Feedback represents a fit review linking one customer and one product.
// ReviewID is the 6-digit natural key. CustomerID and ProductID carry the
// parents' natural keys; CustomerRef and ProductRef hold the internal
// identifiers of the referenced documents, resolved at write time.
type Feedback struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ReviewID      int                `json:"review_id" bson:"review_id"`
	Fit           FitRating          `json:"fit,omitempty" bson:"fit,omitempty"`
	Length        LengthRating       `json:"length,omitempty" bson:"length,omitempty"`
	ReviewText    string             `json:"review_text,omitempty" bson:"review_text,omitempty"`
	ReviewSummary string             `json:"review_summary,omitempty" bson:"review_summary,omitempty"`
	CustomerID    int                `json:"customer_id" bson:"customer_id"`
	ProductID     int                `json:"product_id" bson:"product_id"`
	CustomerRef   primitive.ObjectID `json:"-" bson:"customer_ref,omitempty"`
	ProductRef    primitive.ObjectID `json:"-" bson:"product_ref,omitempty"`
}

// FeedbackUpdate represents a partial update to a feedback record.
// References to customer and product are immutable after creation.
type FeedbackUpdate struct {
	Fit           *FitRating    `json:"fit,omitempty"`
	Length        *LengthRating `json:"length,omitempty"`
	ReviewText    *string       `json:"review_text,omitempty"`
	ReviewSummary *string       `json:"review_summary,omitempty"`
}
