package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/store"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/FitFinder/fitfinder-backend/validation"
)

// FeedbackModel owns feedback business rules, most importantly the
// referential-integrity check: a feedback record can only be created while
// both its customer and product exist. The existence check and the insert
// are separate store operations; a parent deleted in between is an accepted
// race (the store offers no transaction across collections).
type FeedbackModel struct {
	store         store.FeedbackStore
	customerStore store.CustomerStore
	productStore  store.ProductStore
}

func NewFeedbackModel(store store.FeedbackStore, customerStore store.CustomerStore, productStore store.ProductStore) *FeedbackModel {
	return &FeedbackModel{
		store:         store,
		customerStore: customerStore,
		productStore:  productStore,
	}
}

func (fm *FeedbackModel) CreateFeedback(ctx context.Context, feedback *types.Feedback) error {
	if errs := validation.ValidateFeedback(feedback); errs.HasErrors() {
		return errors.ValidationFailed("Invalid feedback data", errs.Error())
	}

	if err := fm.resolveReferences(ctx, feedback); err != nil {
		return err
	}

	if _, err := fm.store.Create(ctx, feedback); err != nil {
		return err
	}
	return nil
}

func (fm *FeedbackModel) GetFeedback(ctx context.Context, reviewID int) (*types.Feedback, error) {
	return fm.store.GetByReviewID(ctx, reviewID)
}

func (fm *FeedbackModel) ListFeedback(ctx context.Context) ([]*types.Feedback, error) {
	return fm.store.List(ctx)
}

// UpdateFeedback applies a partial update. The summary/text length relation
// is rechecked against the merged record. The customer and product
// references are immutable.
func (fm *FeedbackModel) UpdateFeedback(ctx context.Context, reviewID int, update *types.FeedbackUpdate) (*types.Feedback, error) {
	if errs := validation.ValidateFeedbackUpdate(update); errs.HasErrors() {
		return nil, errors.ValidationFailed("Invalid feedback update", errs.Error())
	}

	existing, err := fm.store.GetByReviewID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	text := existing.ReviewText
	if update.ReviewText != nil {
		text = *update.ReviewText
	}
	summary := existing.ReviewSummary
	if update.ReviewSummary != nil {
		summary = *update.ReviewSummary
	}
	if fieldErr := validation.CheckSummaryLength(text, summary); fieldErr != nil {
		return nil, errors.ValidationFailed("Invalid feedback update", fieldErr.Error())
	}

	return fm.store.Update(ctx, reviewID, update)
}

func (fm *FeedbackModel) DeleteFeedback(ctx context.Context, reviewID int) error {
	return fm.store.Delete(ctx, reviewID)
}

// BulkCreateFeedback validates every item and resolves every reference
// before writing anything. One invalid item fails the whole batch.
func (fm *FeedbackModel) BulkCreateFeedback(ctx context.Context, feedback []*types.Feedback) (*types.BulkInsertResult, error) {
	if len(feedback) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one feedback record is required")
	}

	var itemErrors []string
	for i, f := range feedback {
		if errs := validation.ValidateFeedback(f); errs.HasErrors() {
			itemErrors = append(itemErrors, fmt.Sprintf("item %d: %s", i, errs.Error()))
			continue
		}
		if err := fm.resolveReferences(ctx, f); err != nil {
			itemErrors = append(itemErrors, fmt.Sprintf("item %d: %s", i, err.Error()))
		}
	}
	if len(itemErrors) > 0 {
		return nil, errors.ValidationFailed("Invalid feedback batch", strings.Join(itemErrors, "; "))
	}

	ids, err := fm.store.BulkInsert(ctx, feedback)
	if err != nil {
		return nil, err
	}
	return bulkInsertResult(ids), nil
}

// BulkUpdateFeedback applies the same partial update to every listed
// review. The summary/text length relation is checked when the patch
// carries both fields; a one-sided patch is applied as written, since the
// relation against each stored record would need a read per review.
func (fm *FeedbackModel) BulkUpdateFeedback(ctx context.Context, reviewIDs []int, update *types.FeedbackUpdate) (*types.BulkUpdateResult, error) {
	if len(reviewIDs) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one review_id is required")
	}
	if errs := validation.ValidateFeedbackUpdate(update); errs.HasErrors() {
		return nil, errors.ValidationFailed("Invalid feedback update", errs.Error())
	}
	if update.ReviewText != nil && update.ReviewSummary != nil {
		if fieldErr := validation.CheckSummaryLength(*update.ReviewText, *update.ReviewSummary); fieldErr != nil {
			return nil, errors.ValidationFailed("Invalid feedback update", fieldErr.Error())
		}
	}
	return fm.store.BulkUpdate(ctx, reviewIDs, update)
}

func (fm *FeedbackModel) BulkDeleteFeedback(ctx context.Context, reviewIDs []int) (*types.BulkDeleteResult, error) {
	if len(reviewIDs) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one review_id is required")
	}

	deleted, err := fm.store.BulkDelete(ctx, reviewIDs)
	if err != nil {
		return nil, err
	}
	return &types.BulkDeleteResult{DeletedCount: deleted}, nil
}

// ListByCustomer returns all feedback written by the given customer. The
// customer must exist.
func (fm *FeedbackModel) ListByCustomer(ctx context.Context, customerID int) ([]*types.Feedback, error) {
	if _, err := fm.customerStore.GetByUserID(ctx, customerID); err != nil {
		return nil, err
	}
	return fm.store.ListByCustomer(ctx, customerID)
}

// ListByProduct returns all feedback for the given product. The product
// must exist.
func (fm *FeedbackModel) ListByProduct(ctx context.Context, productID int) ([]*types.Feedback, error) {
	if _, err := fm.productStore.GetByItemID(ctx, productID); err != nil {
		return nil, err
	}
	return fm.store.ListByProduct(ctx, productID)
}

// resolveReferences verifies both parents exist and records their internal
// identifiers on the feedback document. A missing parent is reported as a
// dangling reference naming the missing side.
func (fm *FeedbackModel) resolveReferences(ctx context.Context, feedback *types.Feedback) error {
	customer, err := fm.customerStore.GetByUserID(ctx, feedback.CustomerID)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Type == errors.NotFoundError {
			return errors.DanglingReference("customer", feedback.CustomerID)
		}
		return err
	}

	product, err := fm.productStore.GetByItemID(ctx, feedback.ProductID)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Type == errors.NotFoundError {
			return errors.DanglingReference("product", feedback.ProductID)
		}
		return err
	}

	feedback.CustomerRef = customer.ID
	feedback.ProductRef = product.ID
	return nil
}
