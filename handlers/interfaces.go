package handlers

import (
	"context"

	"github.com/FitFinder/fitfinder-backend/types"
)

// CustomerService defines the customer model methods needed by handlers.
type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *types.Customer) error
	GetCustomer(ctx context.Context, userID int) (*types.Customer, error)
	ListCustomers(ctx context.Context) ([]*types.Customer, error)
	UpdateCustomer(ctx context.Context, userID int, update *types.CustomerUpdate) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, userID int) error
	BulkCreateCustomers(ctx context.Context, customers []*types.Customer) (*types.BulkInsertResult, error)
	BulkDeleteCustomers(ctx context.Context, userIDs []int) (*types.BulkDeleteResult, error)
	UpdateWaistBulk(ctx context.Context, oldWaist, newWaist string) (*types.BulkUpdateResult, error)
	WaistDistribution(ctx context.Context) ([]types.WaistBucket, error)
}

// ProductService defines the product model methods needed by handlers.
type ProductService interface {
	CreateProduct(ctx context.Context, product *types.Product) error
	GetProduct(ctx context.Context, itemID int) (*types.Product, error)
	ListProducts(ctx context.Context) ([]*types.Product, error)
	UpdateProduct(ctx context.Context, itemID int, update *types.ProductUpdate) (*types.Product, error)
	DeleteProduct(ctx context.Context, itemID int) error
	BulkCreateProducts(ctx context.Context, products []*types.Product) (*types.BulkInsertResult, error)
	BulkUpdateProducts(ctx context.Context, itemIDs []int, update *types.ProductUpdate) (*types.BulkUpdateResult, error)
	BulkDeleteProducts(ctx context.Context, itemIDs []int) (*types.BulkDeleteResult, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]*types.Product, error)
}

// FeedbackService defines the feedback model methods needed by handlers.
type FeedbackService interface {
	CreateFeedback(ctx context.Context, feedback *types.Feedback) error
	GetFeedback(ctx context.Context, reviewID int) (*types.Feedback, error)
	ListFeedback(ctx context.Context) ([]*types.Feedback, error)
	UpdateFeedback(ctx context.Context, reviewID int, update *types.FeedbackUpdate) (*types.Feedback, error)
	DeleteFeedback(ctx context.Context, reviewID int) error
	BulkCreateFeedback(ctx context.Context, feedback []*types.Feedback) (*types.BulkInsertResult, error)
	BulkUpdateFeedback(ctx context.Context, reviewIDs []int, update *types.FeedbackUpdate) (*types.BulkUpdateResult, error)
	BulkDeleteFeedback(ctx context.Context, reviewIDs []int) (*types.BulkDeleteResult, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*types.Feedback, error)
	ListByProduct(ctx context.Context, productID int) ([]*types.Feedback, error)
}
