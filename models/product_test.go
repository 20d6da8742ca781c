package models

import (
	"context"
	"testing"
	"time"

	"github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var productTestNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func testProduct() *types.Product {
	return &types.Product{
		ItemID:            654321,
		ProductName:       "Wrap Dress",
		Size:              12,
		Quality:           4,
		Keywords:          []string{"dress", "wrap"},
		ClothSizeCategory: types.SizeCategoryM,
		LastUpdateDate:    productTestNow.AddDate(0, -1, 0),
	}
}

func newTestProductModel(productStore *MockProductStore, feedbackStore *MockFeedbackStore) *ProductModel {
	model := NewProductModel(productStore, feedbackStore)
	model.now = func() time.Time { return productTestNow }
	return model
}

func TestProductModel_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates valid product", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		product := testProduct()
		productStore.On("Create", ctx, product).Return(primitive.NewObjectID(), nil)

		err := model.CreateProduct(ctx, product)
		require.NoError(t, err)
		productStore.AssertExpectations(t)
	})

	t.Run("rejects future update date without touching the store", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		product := testProduct()
		product.LastUpdateDate = productTestNow.AddDate(0, 0, 2)

		err := model.CreateProduct(ctx, product)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ValidationError, appErr.Type)
		productStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductModel_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial update", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		quality := 5
		update := &types.ProductUpdate{Quality: &quality}
		updated := testProduct()
		updated.Quality = 5

		productStore.On("Update", ctx, 654321, update).Return(updated, nil)

		result, err := model.UpdateProduct(ctx, 654321, update)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Quality)
	})

	t.Run("rejects invalid update", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		size := 99
		_, err := model.UpdateProduct(ctx, 654321, &types.ProductUpdate{Size: &size})
		require.Error(t, err)
		productStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductModel_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	productStore := new(MockProductStore)
	feedbackStore := new(MockFeedbackStore)
	model := newTestProductModel(productStore, feedbackStore)

	productStore.On("Delete", ctx, 654321).Return(nil)
	feedbackStore.On("DeleteByProduct", ctx, 654321).Return(int64(2), nil)

	err := model.DeleteProduct(ctx, 654321)
	require.NoError(t, err)
	productStore.AssertExpectations(t)
	feedbackStore.AssertExpectations(t)
}

func TestProductModel_BulkCreateProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts valid batch", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		second := testProduct()
		second.ItemID = 765432
		batch := []*types.Product{testProduct(), second}
		ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

		productStore.On("BulkInsert", ctx, batch).Return(ids, nil)

		result, err := model.BulkCreateProducts(ctx, batch)
		require.NoError(t, err)
		assert.Len(t, result.InsertedIDs, 2)
	})

	t.Run("one invalid item fails the whole batch", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		bad := testProduct()
		bad.ClothSizeCategory = "HUGE"
		batch := []*types.Product{testProduct(), bad}

		_, err := model.BulkCreateProducts(ctx, batch)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.Detail, "item 1")
		productStore.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything)
	})
}

func TestProductModel_BulkUpdateProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the update to all listed products", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		quality := 5
		update := &types.ProductUpdate{Quality: &quality}
		ids := []int{654321, 765432}

		productStore.On("BulkUpdate", ctx, ids, update).
			Return(&types.BulkUpdateResult{MatchedCount: 2, ModifiedCount: 2}, nil)

		result, err := model.BulkUpdateProducts(ctx, ids, update)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.ModifiedCount)
	})

	t.Run("rejects invalid update fields", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		quality := 9
		_, err := model.BulkUpdateProducts(ctx, []int{654321}, &types.ProductUpdate{Quality: &quality})
		require.Error(t, err)
		productStore.AssertNotCalled(t, "BulkUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects empty id list", func(t *testing.T) {
		model := newTestProductModel(new(MockProductStore), new(MockFeedbackStore))
		_, err := model.BulkUpdateProducts(ctx, nil, &types.ProductUpdate{})
		require.Error(t, err)
	})
}

func TestProductModel_SearchByKeyword(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching products", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		matches := []*types.Product{testProduct()}
		productStore.On("SearchByKeyword", ctx, "dress").Return(matches, nil)

		result, err := model.SearchByKeyword(ctx, "dress")
		require.NoError(t, err)
		assert.Equal(t, matches, result)
	})

	t.Run("rejects empty keyword", func(t *testing.T) {
		productStore := new(MockProductStore)
		model := newTestProductModel(productStore, new(MockFeedbackStore))

		_, err := model.SearchByKeyword(ctx, "")
		require.Error(t, err)
		productStore.AssertNotCalled(t, "SearchByKeyword", mock.Anything, mock.Anything)
	})
}
