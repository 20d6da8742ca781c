package handlers

import (
	"net/http"

	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product CRUD, bulk, and search endpoints.
type ProductHandler struct {
	productService ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductHandler godoc
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      types.Product  true  "Product payload"
// @Success      201   {object}  types.Product
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	var product types.Product
	if !bindJSONOrError(c, &product) {
		return
	}

	if err := h.productService.CreateProduct(c.Request.Context(), &product); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProductsHandler godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  types.ListResponse
// @Router       /products [get]
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Data: products, Count: len(products)})
}

// GetProductHandler godoc
// @Summary      Get a product by item_id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "6-digit item_id"
// @Success      200  {object}  types.Product
// @Failure      404  {object}  types.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	itemID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), itemID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "6-digit item_id"
// @Param        body  body      types.ProductUpdate  true  "Fields to update"
// @Success      200   {object}  types.Product
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /products/{id} [patch]
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	itemID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	var update types.ProductUpdate
	if !bindJSONOrError(c, &update) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), itemID, &update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProductHandler godoc
// @Summary      Delete a product and its feedback
// @Tags         products
// @Param        id  path  int  true  "6-digit item_id"
// @Success      204
// @Failure      404  {object}  types.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	itemID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), itemID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkUploadProductsHandler godoc
// @Summary      Create multiple products in one request
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      []types.Product  true  "Product batch"
// @Success      201   {object}  types.BulkInsertResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /products/bulk [post]
func (h *ProductHandler) BulkUploadProductsHandler(c *gin.Context) {
	var products []*types.Product
	if !bindJSONOrError(c, &products) {
		return
	}

	result, err := h.productService.BulkCreateProducts(c.Request.Context(), products)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UploadProductsFromFileHandler godoc
// @Summary      Upload products from a newline-delimited JSON file
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "JSON-lines file"
// @Success      201   {object}  types.BulkInsertResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /products/upload [post]
func (h *ProductHandler) UploadProductsFromFileHandler(c *gin.Context) {
	fileHeader, ok := formFileOrError(c)
	if !ok {
		return
	}

	var products []*types.Product
	err := decodeJSONLines(fileHeader,
		func() interface{} { return &types.Product{} },
		func(record interface{}) { products = append(products, record.(*types.Product)) },
	)
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_upload_file", err.Error()))
		return
	}

	result, err := h.productService.BulkCreateProducts(c.Request.Context(), products)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// BulkUpdateProductsHandler godoc
// @Summary      Apply the same partial update to multiple products
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      object{item_ids=[]int,update=types.ProductUpdate}  true  "item_ids and fields to update"
// @Success      200   {object}  types.BulkUpdateResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /products/bulk [patch]
func (h *ProductHandler) BulkUpdateProductsHandler(c *gin.Context) {
	var req struct {
		ItemIDs []int               `json:"item_ids" binding:"required"`
		Update  types.ProductUpdate `json:"update"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}

	result, err := h.productService.BulkUpdateProducts(c.Request.Context(), req.ItemIDs, &req.Update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkDeleteProductsHandler godoc
// @Summary      Delete multiple products by item_id
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      object{item_ids=[]int}  true  "item_ids to delete"
// @Success      200   {object}  types.BulkDeleteResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /products/bulk-delete [post]
func (h *ProductHandler) BulkDeleteProductsHandler(c *gin.Context) {
	var req struct {
		ItemIDs []int `json:"item_ids" binding:"required"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}

	result, err := h.productService.BulkDeleteProducts(c.Request.Context(), req.ItemIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchProductsHandler godoc
// @Summary      Search products by keyword
// @Description  Matches products whose keywords array contains the keyword.
// @Tags         products
// @Produce      json
// @Param        keyword  query     string  true  "keyword to match"
// @Success      200      {object}  types.ListResponse
// @Failure      400      {object}  types.ErrorResponse
// @Router       /products/search [get]
func (h *ProductHandler) SearchProductsHandler(c *gin.Context) {
	keyword := c.Query("keyword")

	products, err := h.productService.SearchByKeyword(c.Request.Context(), keyword)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Data: products, Count: len(products)})
}
