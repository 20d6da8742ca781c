// Package store defines the persistence interfaces for customers, products,
// and feedback. Implementations live in subpackages (currently mongodb).
package store

import (
	"context"

	"github.com/FitFinder/fitfinder-backend/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerStore defines the interface for customer storage operations.
// Lookups use the 6-digit user_id natural key.
type CustomerStore interface {
	Create(ctx context.Context, customer *types.Customer) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID int) (*types.Customer, error)
	List(ctx context.Context) ([]*types.Customer, error)
	Update(ctx context.Context, userID int, update *types.CustomerUpdate) (*types.Customer, error)
	Delete(ctx context.Context, userID int) error
	BulkInsert(ctx context.Context, customers []*types.Customer) ([]primitive.ObjectID, error)
	BulkDelete(ctx context.Context, userIDs []int) (int64, error)
	UpdateWaist(ctx context.Context, oldWaist, newWaist string) (*types.BulkUpdateResult, error)
	WaistDistribution(ctx context.Context) ([]types.WaistBucket, error)
}

// ProductStore defines the interface for product storage operations.
// Lookups use the 6-digit item_id natural key.
type ProductStore interface {
	Create(ctx context.Context, product *types.Product) (primitive.ObjectID, error)
	GetByItemID(ctx context.Context, itemID int) (*types.Product, error)
	List(ctx context.Context) ([]*types.Product, error)
	Update(ctx context.Context, itemID int, update *types.ProductUpdate) (*types.Product, error)
	Delete(ctx context.Context, itemID int) error
	BulkInsert(ctx context.Context, products []*types.Product) ([]primitive.ObjectID, error)
	BulkUpdate(ctx context.Context, itemIDs []int, update *types.ProductUpdate) (*types.BulkUpdateResult, error)
	BulkDelete(ctx context.Context, itemIDs []int) (int64, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]*types.Product, error)
}

// FeedbackStore defines the interface for feedback storage operations.
// Lookups use the 6-digit review_id natural key; the ListBy/DeleteBy
// variants filter on the parents' natural keys.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *types.Feedback) (primitive.ObjectID, error)
	GetByReviewID(ctx context.Context, reviewID int) (*types.Feedback, error)
	List(ctx context.Context) ([]*types.Feedback, error)
	Update(ctx context.Context, reviewID int, update *types.FeedbackUpdate) (*types.Feedback, error)
	Delete(ctx context.Context, reviewID int) error
	BulkInsert(ctx context.Context, feedback []*types.Feedback) ([]primitive.ObjectID, error)
	BulkUpdate(ctx context.Context, reviewIDs []int, update *types.FeedbackUpdate) (*types.BulkUpdateResult, error)
	BulkDelete(ctx context.Context, reviewIDs []int) (int64, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*types.Feedback, error)
	ListByProduct(ctx context.Context, productID int) ([]*types.Feedback, error)
	DeleteByCustomer(ctx context.Context, customerID int) (int64, error)
	DeleteByProduct(ctx context.Context, productID int) (int64, error)
}
