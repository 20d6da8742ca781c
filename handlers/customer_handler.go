package handlers

import (
	"net/http"

	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer CRUD, bulk, and reporting endpoints.
type CustomerHandler struct {
	customerService CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomerHandler godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      types.Customer  true  "Customer payload"
// @Success      201   {object}  types.Customer
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	var customer types.Customer
	if !bindJSONOrError(c, &customer) {
		return
	}

	if err := h.customerService.CreateCustomer(c.Request.Context(), &customer); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// ListCustomersHandler godoc
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Success      200  {object}  types.ListResponse
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Data: customers, Count: len(customers)})
}

// GetCustomerHandler godoc
// @Summary      Get a customer by user_id
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "6-digit user_id"
// @Success      200  {object}  types.Customer
// @Failure      404  {object}  types.ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	userID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomerHandler godoc
// @Summary      Partially update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "6-digit user_id"
// @Param        body  body      types.CustomerUpdate  true  "Fields to update"
// @Success      200   {object}  types.Customer
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	userID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	var update types.CustomerUpdate
	if !bindJSONOrError(c, &update) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), userID, &update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomerHandler godoc
// @Summary      Delete a customer and its feedback
// @Tags         customers
// @Param        id  path  int  true  "6-digit user_id"
// @Success      204
// @Failure      404  {object}  types.ErrorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	userID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), userID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkUploadCustomersHandler godoc
// @Summary      Create multiple customers in one request
// @Description  The whole batch is validated before anything is written;
// @Description  one invalid item rejects the batch with a per-item error list.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      []types.Customer  true  "Customer batch"
// @Success      201   {object}  types.BulkInsertResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /customers/bulk [post]
func (h *CustomerHandler) BulkUploadCustomersHandler(c *gin.Context) {
	var customers []*types.Customer
	if !bindJSONOrError(c, &customers) {
		return
	}

	result, err := h.customerService.BulkCreateCustomers(c.Request.Context(), customers)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UploadCustomersFromFileHandler godoc
// @Summary      Upload customers from a newline-delimited JSON file
// @Tags         customers
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "JSON-lines file"
// @Success      201   {object}  types.BulkInsertResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /customers/upload [post]
func (h *CustomerHandler) UploadCustomersFromFileHandler(c *gin.Context) {
	fileHeader, ok := formFileOrError(c)
	if !ok {
		return
	}

	var customers []*types.Customer
	err := decodeJSONLines(fileHeader,
		func() interface{} { return &types.Customer{} },
		func(record interface{}) { customers = append(customers, record.(*types.Customer)) },
	)
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_upload_file", err.Error()))
		return
	}

	result, err := h.customerService.BulkCreateCustomers(c.Request.Context(), customers)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// BulkDeleteCustomersHandler godoc
// @Summary      Delete multiple customers by user_id
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      object{user_ids=[]int}  true  "user_ids to delete"
// @Success      200   {object}  types.BulkDeleteResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /customers/bulk-delete [post]
func (h *CustomerHandler) BulkDeleteCustomersHandler(c *gin.Context) {
	var req struct {
		UserIDs []int `json:"user_ids" binding:"required"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}

	result, err := h.customerService.BulkDeleteCustomers(c.Request.Context(), req.UserIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkUpdateWaistHandler godoc
// @Summary      Rewrite one waist value to another across all customers
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      types.WaistUpdateRequest  true  "old and new waist values"
// @Success      200   {object}  types.BulkUpdateResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /customers/waist [patch]
func (h *CustomerHandler) BulkUpdateWaistHandler(c *gin.Context) {
	var req types.WaistUpdateRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	result, err := h.customerService.UpdateWaistBulk(c.Request.Context(), req.OldWaist, req.NewWaist)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// WaistDistributionHandler godoc
// @Summary      Customer counts grouped by waist value
// @Tags         customers
// @Produce      json
// @Success      200  {array}  types.WaistBucket
// @Router       /customers/waist-distribution [get]
func (h *CustomerHandler) WaistDistributionHandler(c *gin.Context) {
	buckets, err := h.customerService.WaistDistribution(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}
