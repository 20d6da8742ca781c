package handlers

import (
	"context"
	"os"
	"testing"

	"github.com/FitFinder/fitfinder-backend/logger"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
	logger.InitLogger()
	os.Exit(m.Run())
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, customer *types.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, userID int) (*types.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]*types.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, userID int, update *types.CustomerUpdate) (*types.Customer, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Customer), args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCustomerService) BulkCreateCustomers(ctx context.Context, customers []*types.Customer) (*types.BulkInsertResult, error) {
	args := m.Called(ctx, customers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkInsertResult), args.Error(1)
}

func (m *MockCustomerService) BulkDeleteCustomers(ctx context.Context, userIDs []int) (*types.BulkDeleteResult, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkDeleteResult), args.Error(1)
}

func (m *MockCustomerService) UpdateWaistBulk(ctx context.Context, oldWaist, newWaist string) (*types.BulkUpdateResult, error) {
	args := m.Called(ctx, oldWaist, newWaist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkUpdateResult), args.Error(1)
}

func (m *MockCustomerService) WaistDistribution(ctx context.Context) ([]types.WaistBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.WaistBucket), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, product *types.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductService) GetProduct(ctx context.Context, itemID int) (*types.Product, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]*types.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, itemID int, update *types.ProductUpdate) (*types.Product, error) {
	args := m.Called(ctx, itemID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, itemID int) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockProductService) BulkCreateProducts(ctx context.Context, products []*types.Product) (*types.BulkInsertResult, error) {
	args := m.Called(ctx, products)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkInsertResult), args.Error(1)
}

func (m *MockProductService) BulkUpdateProducts(ctx context.Context, itemIDs []int, update *types.ProductUpdate) (*types.BulkUpdateResult, error) {
	args := m.Called(ctx, itemIDs, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkUpdateResult), args.Error(1)
}

func (m *MockProductService) BulkDeleteProducts(ctx context.Context, itemIDs []int) (*types.BulkDeleteResult, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkDeleteResult), args.Error(1)
}

func (m *MockProductService) SearchByKeyword(ctx context.Context, keyword string) ([]*types.Product, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Product), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) CreateFeedback(ctx context.Context, feedback *types.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackService) GetFeedback(ctx context.Context, reviewID int) (*types.Feedback, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Feedback), args.Error(1)
}

func (m *MockFeedbackService) ListFeedback(ctx context.Context) ([]*types.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Feedback), args.Error(1)
}

func (m *MockFeedbackService) UpdateFeedback(ctx context.Context, reviewID int, update *types.FeedbackUpdate) (*types.Feedback, error) {
	args := m.Called(ctx, reviewID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Feedback), args.Error(1)
}

func (m *MockFeedbackService) DeleteFeedback(ctx context.Context, reviewID int) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func (m *MockFeedbackService) BulkCreateFeedback(ctx context.Context, feedback []*types.Feedback) (*types.BulkInsertResult, error) {
	args := m.Called(ctx, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkInsertResult), args.Error(1)
}

func (m *MockFeedbackService) BulkUpdateFeedback(ctx context.Context, reviewIDs []int, update *types.FeedbackUpdate) (*types.BulkUpdateResult, error) {
	args := m.Called(ctx, reviewIDs, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkUpdateResult), args.Error(1)
}

func (m *MockFeedbackService) BulkDeleteFeedback(ctx context.Context, reviewIDs []int) (*types.BulkDeleteResult, error) {
	args := m.Called(ctx, reviewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BulkDeleteResult), args.Error(1)
}

func (m *MockFeedbackService) ListByCustomer(ctx context.Context, customerID int) ([]*types.Feedback, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Feedback), args.Error(1)
}

func (m *MockFeedbackService) ListByProduct(ctx context.Context, productID int) ([]*types.Feedback, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Feedback), args.Error(1)
}
