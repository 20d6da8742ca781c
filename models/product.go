package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/logger"
	"github.com/FitFinder/fitfinder-backend/store"
	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/FitFinder/fitfinder-backend/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductModel owns product business rules and the cascade delete of
// dependent feedback.
type ProductModel struct {
	store         store.ProductStore
	feedbackStore store.FeedbackStore
	now           func() time.Time
}

func NewProductModel(store store.ProductStore, feedbackStore store.FeedbackStore) *ProductModel {
	return &ProductModel{
		store:         store,
		feedbackStore: feedbackStore,
		now:           time.Now,
	}
}

func (pm *ProductModel) CreateProduct(ctx context.Context, product *types.Product) error {
	if errs := validation.ValidateProduct(product, pm.now()); errs.HasErrors() {
		return errors.ValidationFailed("Invalid product data", errs.Error())
	}

	if _, err := pm.store.Create(ctx, product); err != nil {
		return err
	}
	return nil
}

func (pm *ProductModel) GetProduct(ctx context.Context, itemID int) (*types.Product, error) {
	return pm.store.GetByItemID(ctx, itemID)
}

func (pm *ProductModel) ListProducts(ctx context.Context) ([]*types.Product, error) {
	return pm.store.List(ctx)
}

func (pm *ProductModel) UpdateProduct(ctx context.Context, itemID int, update *types.ProductUpdate) (*types.Product, error) {
	if errs := validation.ValidateProductUpdate(update, pm.now()); errs.HasErrors() {
		return nil, errors.ValidationFailed("Invalid product update", errs.Error())
	}
	return pm.store.Update(ctx, itemID, update)
}

// DeleteProduct removes the product and cascades to its feedback.
func (pm *ProductModel) DeleteProduct(ctx context.Context, itemID int) error {
	log := logger.GetLogger()

	if err := pm.store.Delete(ctx, itemID); err != nil {
		return err
	}

	deleted, err := pm.feedbackStore.DeleteByProduct(ctx, itemID)
	if err != nil {
		log.Errorw("Failed to cascade delete feedback for product",
			"itemId", itemID,
			"error", err,
		)
		return err
	}
	if deleted > 0 {
		log.Infow("Cascade deleted feedback for product",
			"itemId", itemID,
			"deletedCount", deleted,
		)
	}
	return nil
}

// BulkCreateProducts validates every item before writing anything. One
// invalid item fails the whole batch.
func (pm *ProductModel) BulkCreateProducts(ctx context.Context, products []*types.Product) (*types.BulkInsertResult, error) {
	if len(products) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one product is required")
	}

	now := pm.now()
	var itemErrors []string
	for i, product := range products {
		if errs := validation.ValidateProduct(product, now); errs.HasErrors() {
			itemErrors = append(itemErrors, fmt.Sprintf("item %d: %s", i, errs.Error()))
		}
	}
	if len(itemErrors) > 0 {
		return nil, errors.ValidationFailed("Invalid product batch", strings.Join(itemErrors, "; "))
	}

	ids, err := pm.store.BulkInsert(ctx, products)
	if err != nil {
		return nil, err
	}
	return bulkInsertResult(ids), nil
}

// BulkUpdateProducts applies the same partial update to every listed
// product.
func (pm *ProductModel) BulkUpdateProducts(ctx context.Context, itemIDs []int, update *types.ProductUpdate) (*types.BulkUpdateResult, error) {
	if len(itemIDs) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one item_id is required")
	}
	if errs := validation.ValidateProductUpdate(update, pm.now()); errs.HasErrors() {
		return nil, errors.ValidationFailed("Invalid product update", errs.Error())
	}
	return pm.store.BulkUpdate(ctx, itemIDs, update)
}

// BulkDeleteProducts removes products by item_id and cascades each deletion
// to dependent feedback.
func (pm *ProductModel) BulkDeleteProducts(ctx context.Context, itemIDs []int) (*types.BulkDeleteResult, error) {
	if len(itemIDs) == 0 {
		return nil, errors.ValidationFailed("Empty batch", "at least one item_id is required")
	}

	deleted, err := pm.store.BulkDelete(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	for _, itemID := range itemIDs {
		if _, err := pm.feedbackStore.DeleteByProduct(ctx, itemID); err != nil {
			return nil, err
		}
	}

	return &types.BulkDeleteResult{DeletedCount: deleted}, nil
}

// SearchByKeyword returns products whose keyword list contains the keyword.
func (pm *ProductModel) SearchByKeyword(ctx context.Context, keyword string) ([]*types.Product, error) {
	if keyword == "" {
		return nil, errors.ValidationFailed("Missing keyword", "a keyword query parameter must be provided")
	}
	return pm.store.SearchByKeyword(ctx, keyword)
}

func bulkInsertResult(ids []primitive.ObjectID) *types.BulkInsertResult {
	hexIDs := make([]string, len(ids))
	for i, id := range ids {
		hexIDs[i] = id.Hex()
	}
	return &types.BulkInsertResult{InsertedIDs: hexIDs}
}
