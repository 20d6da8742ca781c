package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/middleware"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductRouter(service ProductService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	h := NewProductHandler(service)
	products := r.Group("/v1/products")
	products.POST("", h.CreateProductHandler)
	products.GET("", h.ListProductsHandler)
	products.POST("/bulk", h.BulkUploadProductsHandler)
	products.PATCH("/bulk", h.BulkUpdateProductsHandler)
	products.POST("/bulk-delete", h.BulkDeleteProductsHandler)
	products.POST("/upload", h.UploadProductsFromFileHandler)
	products.GET("/search", h.SearchProductsHandler)
	products.GET("/:id", h.GetProductHandler)
	products.PATCH("/:id", h.UpdateProductHandler)
	products.DELETE("/:id", h.DeleteProductHandler)
	return r
}

func testProductPayload() types.Product {
	return types.Product{
		ItemID:            654321,
		ProductName:       "Wrap Dress",
		Size:              12,
		Quality:           4,
		Keywords:          []string{"dress", "wrap"},
		ClothSizeCategory: types.SizeCategoryM,
		LastUpdateDate:    time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateProductHandler(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		service.On("CreateProduct", mock.Anything, mock.AnythingOfType("*types.Product")).Return(nil)

		body, _ := json.Marshal(testProductPayload())
		w := performRequest(router, http.MethodPost, "/v1/products", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("returns 400 on validation failure", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		service.On("CreateProduct", mock.Anything, mock.AnythingOfType("*types.Product")).
			Return(apperrors.ValidationFailed("Invalid product data", "last_update_date: must not be in the future"))

		body, _ := json.Marshal(testProductPayload())
		w := performRequest(router, http.MethodPost, "/v1/products", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProductHandler(t *testing.T) {
	t.Run("returns the product", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		product := testProductPayload()
		service.On("GetProduct", mock.Anything, 654321).Return(&product, nil)

		w := performRequest(router, http.MethodGet, "/v1/products/654321", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var got types.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Wrap Dress", got.ProductName)
	})

	t.Run("returns 404 for a missing product", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		service.On("GetProduct", mock.Anything, 999999).
			Return(nil, apperrors.NotFound("Product", 999999))

		w := performRequest(router, http.MethodGet, "/v1/products/999999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSearchProductsHandler(t *testing.T) {
	t.Run("searches by keyword", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		product := testProductPayload()
		service.On("SearchByKeyword", mock.Anything, "dress").
			Return([]*types.Product{&product}, nil)

		w := performRequest(router, http.MethodGet, "/v1/products/search?keyword=dress", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("returns 400 without a keyword", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		service.On("SearchByKeyword", mock.Anything, "").
			Return(nil, apperrors.ValidationFailed("Missing keyword", "a keyword query parameter must be provided"))

		w := performRequest(router, http.MethodGet, "/v1/products/search", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBulkUploadProductsHandler(t *testing.T) {
	t.Run("returns inserted ids", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		service.On("BulkCreateProducts", mock.Anything, mock.MatchedBy(func(products []*types.Product) bool {
			return len(products) == 2
		})).Return(&types.BulkInsertResult{InsertedIDs: []string{"a", "b"}}, nil)

		second := testProductPayload()
		second.ItemID = 765432
		body, _ := json.Marshal([]types.Product{testProductPayload(), second})
		w := performRequest(router, http.MethodPost, "/v1/products/bulk", body)

		assert.Equal(t, http.StatusCreated, w.Code)

		var result types.BulkInsertResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Len(t, result.InsertedIDs, 2)
	})

	t.Run("surfaces per-item batch errors", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		service.On("BulkCreateProducts", mock.Anything, mock.Anything).
			Return(nil, apperrors.ValidationFailed("Invalid product batch", "item 1: cloth_size_category: must be one of: XS, S, M, L, XL, XXL"))

		body, _ := json.Marshal([]types.Product{testProductPayload(), testProductPayload()})
		w := performRequest(router, http.MethodPost, "/v1/products/bulk", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Details, "item 1")
	})
}

func TestBulkUpdateProductsHandler(t *testing.T) {
	t.Run("updates listed products", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		service.On("BulkUpdateProducts", mock.Anything, []int{654321, 765432}, mock.MatchedBy(func(u *types.ProductUpdate) bool {
			return u.Quality != nil && *u.Quality == 5
		})).Return(&types.BulkUpdateResult{MatchedCount: 2, ModifiedCount: 2}, nil)

		body := []byte(`{"item_ids":[654321,765432],"update":{"quality":5}}`)
		w := performRequest(router, http.MethodPatch, "/v1/products/bulk", body)

		assert.Equal(t, http.StatusOK, w.Code)

		var result types.BulkUpdateResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, int64(2), result.ModifiedCount)
	})

	t.Run("rejects a body without item_ids", func(t *testing.T) {
		service := new(MockProductService)
		router := newProductRouter(service)

		w := performRequest(router, http.MethodPatch, "/v1/products/bulk", []byte(`{"update":{"quality":5}}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "BulkUpdateProducts", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	service := new(MockProductService)
	router := newProductRouter(service)

	service.On("DeleteProduct", mock.Anything, 654321).Return(nil)

	w := performRequest(router, http.MethodDelete, "/v1/products/654321", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	service.AssertExpectations(t)
}

func TestBulkDeleteProductsHandler(t *testing.T) {
	service := new(MockProductService)
	router := newProductRouter(service)

	service.On("BulkDeleteProducts", mock.Anything, []int{654321}).
		Return(&types.BulkDeleteResult{DeletedCount: 1}, nil)

	body := []byte(`{"item_ids":[654321]}`)
	w := performRequest(router, http.MethodPost, "/v1/products/bulk-delete", body)

	assert.Equal(t, http.StatusOK, w.Code)
}
