package handlers

import (
	"net/http"

	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback CRUD and per-parent listing endpoints.
type FeedbackHandler struct {
	feedbackService FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedbackHandler godoc
// @Summary      Create a feedback record
// @Description  Both the referenced customer and product must exist; a
// @Description  missing parent is rejected as a dangling reference.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      types.Feedback  true  "Feedback payload"
// @Success      201   {object}  types.Feedback
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Router       /feedback [post]
func (h *FeedbackHandler) CreateFeedbackHandler(c *gin.Context) {
	var feedback types.Feedback
	if !bindJSONOrError(c, &feedback) {
		return
	}

	if err := h.feedbackService.CreateFeedback(c.Request.Context(), &feedback); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// ListFeedbackHandler godoc
// @Summary      List all feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {object}  types.ListResponse
// @Router       /feedback [get]
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	feedback, err := h.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Data: feedback, Count: len(feedback)})
}

// GetFeedbackHandler godoc
// @Summary      Get a feedback record by review_id
// @Tags         feedback
// @Produce      json
// @Param        id   path      int  true  "6-digit review_id"
// @Success      200  {object}  types.Feedback
// @Failure      404  {object}  types.ErrorResponse
// @Router       /feedback/{id} [get]
func (h *FeedbackHandler) GetFeedbackHandler(c *gin.Context) {
	reviewID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.GetFeedback(c.Request.Context(), reviewID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// UpdateFeedbackHandler godoc
// @Summary      Partially update a feedback record
// @Description  The customer and product references are immutable.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "6-digit review_id"
// @Param        body  body      types.FeedbackUpdate  true  "Fields to update"
// @Success      200   {object}  types.Feedback
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /feedback/{id} [patch]
func (h *FeedbackHandler) UpdateFeedbackHandler(c *gin.Context) {
	reviewID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	var update types.FeedbackUpdate
	if !bindJSONOrError(c, &update) {
		return
	}

	feedback, err := h.feedbackService.UpdateFeedback(c.Request.Context(), reviewID, &update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// DeleteFeedbackHandler godoc
// @Summary      Delete a feedback record
// @Tags         feedback
// @Param        id  path  int  true  "6-digit review_id"
// @Success      204
// @Failure      404  {object}  types.ErrorResponse
// @Router       /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedbackHandler(c *gin.Context) {
	reviewID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), reviewID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkUploadFeedbackHandler godoc
// @Summary      Create multiple feedback records in one request
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      []types.Feedback  true  "Feedback batch"
// @Success      201   {object}  types.BulkInsertResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /feedback/bulk [post]
func (h *FeedbackHandler) BulkUploadFeedbackHandler(c *gin.Context) {
	var feedback []*types.Feedback
	if !bindJSONOrError(c, &feedback) {
		return
	}

	result, err := h.feedbackService.BulkCreateFeedback(c.Request.Context(), feedback)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UploadFeedbackFromFileHandler godoc
// @Summary      Upload feedback from a newline-delimited JSON file
// @Tags         feedback
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "JSON-lines file"
// @Success      201   {object}  types.BulkInsertResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /feedback/upload [post]
func (h *FeedbackHandler) UploadFeedbackFromFileHandler(c *gin.Context) {
	fileHeader, ok := formFileOrError(c)
	if !ok {
		return
	}

	var feedback []*types.Feedback
	err := decodeJSONLines(fileHeader,
		func() interface{} { return &types.Feedback{} },
		func(record interface{}) { feedback = append(feedback, record.(*types.Feedback)) },
	)
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_upload_file", err.Error()))
		return
	}

	result, err := h.feedbackService.BulkCreateFeedback(c.Request.Context(), feedback)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// BulkUpdateFeedbackHandler godoc
// @Summary      Apply the same partial update to multiple feedback records
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      object{review_ids=[]int,update=types.FeedbackUpdate}  true  "review_ids and fields to update"
// @Success      200   {object}  types.BulkUpdateResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /feedback/bulk [patch]
func (h *FeedbackHandler) BulkUpdateFeedbackHandler(c *gin.Context) {
	var req struct {
		ReviewIDs []int                `json:"review_ids" binding:"required"`
		Update    types.FeedbackUpdate `json:"update"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}

	result, err := h.feedbackService.BulkUpdateFeedback(c.Request.Context(), req.ReviewIDs, &req.Update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkDeleteFeedbackHandler godoc
// @Summary      Delete multiple feedback records by review_id
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      object{review_ids=[]int}  true  "review_ids to delete"
// @Success      200   {object}  types.BulkDeleteResult
// @Failure      400   {object}  types.ErrorResponse
// @Router       /feedback/bulk-delete [post]
func (h *FeedbackHandler) BulkDeleteFeedbackHandler(c *gin.Context) {
	var req struct {
		ReviewIDs []int `json:"review_ids" binding:"required"`
	}
	if !bindJSONOrError(c, &req) {
		return
	}

	result, err := h.feedbackService.BulkDeleteFeedback(c.Request.Context(), req.ReviewIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListFeedbackByCustomerHandler godoc
// @Summary      List feedback written by a customer
// @Tags         feedback
// @Produce      json
// @Param        id   path      int  true  "6-digit user_id"
// @Success      200  {object}  types.ListResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /customers/{id}/feedback [get]
func (h *FeedbackHandler) ListFeedbackByCustomerHandler(c *gin.Context) {
	customerID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Data: feedback, Count: len(feedback)})
}

// ListFeedbackByProductHandler godoc
// @Summary      List feedback for a product
// @Tags         feedback
// @Produce      json
// @Param        id   path      int  true  "6-digit item_id"
// @Success      200  {object}  types.ListResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /products/{id}/feedback [get]
func (h *FeedbackHandler) ListFeedbackByProductHandler(c *gin.Context) {
	productID, ok := idParamOrError(c, "id")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Data: feedback, Count: len(feedback)})
}
