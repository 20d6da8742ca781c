package types

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer represents a customer document with body measurements used for
// fit recommendations. UserID is the 6-digit natural key; ID is the
// store-assigned internal identifier.
type Customer struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID   int                `json:"user_id" bson:"user_id"`
	UserName string             `json:"user_name" bson:"user_name"`
	Waist    string             `json:"waist" bson:"waist"`
	CupSize  string             `json:"cup_size" bson:"cup_size"`
	BraSize  string             `json:"bra_size" bson:"bra_size"`
	Hips     string             `json:"hips" bson:"hips"`
	Bust     string             `json:"bust" bson:"bust"`
	Height   string             `json:"height" bson:"height"`
}

// CustomerUpdate represents a partial update to a customer. Nil fields are
// left untouched.
type CustomerUpdate struct {
	UserName *string `json:"user_name,omitempty"`
	Waist    *string `json:"waist,omitempty"`
	CupSize  *string `json:"cup_size,omitempty"`
	BraSize  *string `json:"bra_size,omitempty"`
	Hips     *string `json:"hips,omitempty"`
	Bust     *string `json:"bust,omitempty"`
	Height   *string `json:"height,omitempty"`
}

// WaistUpdateRequest is the request body for the bulk waist update endpoint.
type WaistUpdateRequest struct {
	OldWaist string `json:"old_waist" binding:"required"`
	NewWaist string `json:"new_waist" binding:"required"`
}

// WaistBucket is one bucket of the waist-distribution aggregation.
type WaistBucket struct {
	Waist          string `json:"waist" bson:"_id"`
	TotalCustomers int    `json:"total_customers" bson:"total_customers"`
}
