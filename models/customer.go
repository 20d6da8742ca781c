package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/logger"
	"github.com/FitFinder/fitfinder-backend/store"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/FitFinder/fitfinder-backend/validation"
)

// CustomerModel owns customer business rules: field validation, the
// waist < hips invariant, and the cascade delete of dependent feedback.
type CustomerModel struct {
	store         store.CustomerStore
	feedbackStore store.FeedbackStore
}

func NewCustomerModel(store store.CustomerStore, feedbackStore store.FeedbackStore) *CustomerModel {
	return &CustomerModel{
		store:         store,
		feedbackStore: feedbackStore,
	}
}

func (cm *CustomerModel) CreateCustomer(ctx context.Context, customer *types.Customer) error {
	if errs := validation.ValidateCustomer(customer); errs.HasErrors() {
		return errors.ValidationFailed("Invalid customer data", errs.Error())
	}

	if _, err := cm.store.Create(ctx, customer); err != nil {
		return err
	}
	return nil
}

func (cm *CustomerModel) GetCustomer(ctx context.Context, userID int) (*types.Customer, error) {
	return cm.store.GetByUserID(ctx, userID)
}

func (cm *CustomerModel) ListCustomers(ctx context.Context) ([]*types.Customer, error) {
	return cm.store.List(ctx)
}

// UpdateCustomer applies a partial update. The waist/hips rule is checked
// against the merged record, since the update may touch only one side.
func (cm *CustomerModel) UpdateCustomer(ctx context.Context, userID int, update *types.CustomerUpdate) (*types.Customer, error) {
	if errs := validation.ValidateCustomerUpdate(update); errs.HasErrors() {
		return nil, errors.ValidationFailed("Invalid customer update", errs.Error())
	}

	existing, err := cm.store.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := mergeCustomerUpdate(existing, update)
	if fieldErr := validation.CheckWaistBelowHips(merged.Waist, merged.Hips); fieldErr != nil {
		return nil, errors.ValidationFailed("Invalid customer update", fieldErr.Error())
	}

	return cm.store.Update(ctx, userID, update)
}

// DeleteCustomer removes the customer and cascades to its feedback.
func (cm *CustomerModel) DeleteCustomer(ctx context.Context, userID int) error {
	log := logger.GetLogger()

	if err := cm.store.Delete(ctx, userID); err != nil {
		return err
	}

	deleted, err := cm.feedbackStore.DeleteByCustomer(ctx, userID)
	if err != nil {
		log.Errorw("Failed to cascade delete feedback for customer",
			"userId", userID,
			"error", err,
		)
		return err
	}
	if deleted > 0 {
		log.Infow("Cascade deleted feedback for customer",
			"userId", userID,
			"deletedCount", deleted,
		)
	}
	return nil
}

// BulkCreateCustomers validates every item before writing anything. One
// invalid item fails the whole batch; the error detail lists each failure
// by item index.
func (cm *CustomerModel) BulkCreateCustomers(ctx context.Context, customers []*types.Customer) (*types.BulkInsertResult, error) {
	if len(customers) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one customer is required")
	}

	var itemErrors []string
	for i, customer := range customers {
		if errs := validation.ValidateCustomer(customer); errs.HasErrors() {
			itemErrors = append(itemErrors, fmt.Sprintf("item %d: %s", i, errs.Error()))
		}
	}
	if len(itemErrors) > 0 {
		return nil, errors.ValidationFailed("Invalid customer batch", strings.Join(itemErrors, "; "))
	}

	ids, err := cm.store.BulkInsert(ctx, customers)
	if err != nil {
		return nil, err
	}
	return bulkInsertResult(ids), nil
}

// BulkDeleteCustomers removes customers by user_id and cascades each
// deletion to dependent feedback.
func (cm *CustomerModel) BulkDeleteCustomers(ctx context.Context, userIDs []int) (*types.BulkDeleteResult, error) {
	if len(userIDs) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one user_id is required")
	}

	deleted, err := cm.store.BulkDelete(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for _, userID := range userIDs {
		if _, err := cm.feedbackStore.DeleteByCustomer(ctx, userID); err != nil {
			return nil, err
		}
	}

	return &types.BulkDeleteResult{DeletedCount: deleted}, nil
}

// UpdateWaistBulk rewrites one waist value to another across all customers.
func (cm *CustomerModel) UpdateWaistBulk(ctx context.Context, oldWaist, newWaist string) (*types.BulkUpdateResult, error) {
	if err := validation.CheckMeasurement(newWaist); err != nil {
		return nil, errors.ValidationFailed("Invalid waist value", fmt.Sprintf("new_waist: %s", err.Error()))
	}
	return cm.store.UpdateWaist(ctx, oldWaist, newWaist)
}

// WaistDistribution returns customer counts grouped by waist value, most
// common first.
func (cm *CustomerModel) WaistDistribution(ctx context.Context) ([]types.WaistBucket, error) {
	return cm.store.WaistDistribution(ctx)
}

func mergeCustomerUpdate(existing *types.Customer, update *types.CustomerUpdate) *types.Customer {
	merged := *existing
	if update.UserName != nil {
		merged.UserName = *update.UserName
	}
	if update.Waist != nil {
		merged.Waist = *update.Waist
	}
	if update.CupSize != nil {
		merged.CupSize = *update.CupSize
	}
	if update.BraSize != nil {
		merged.BraSize = *update.BraSize
	}
	if update.Hips != nil {
		merged.Hips = *update.Hips
	}
	if update.Bust != nil {
		merged.Bust = *update.Bust
	}
	if update.Height != nil {
		merged.Height = *update.Height
	}
	return &merged
}
