package mongodb

import (
	"context"
	"fmt"

	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/store"
	"github.com/FitFinder/fitfinder-backend/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure ProductStore implements store.ProductStore.
var _ store.ProductStore = (*ProductStore)(nil)

// ProductStore is the MongoDB-backed product store.
type ProductStore struct {
	collection *mongo.Collection
}

// NewProductStore creates a product store over the products collection.
func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{collection: db.Collection(productsCollection)}
}

func (s *ProductStore) Create(ctx context.Context, product *types.Product) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, insertErr(err,
			"product already exists",
			fmt.Sprintf("item_id: %d", product.ItemID))
	}
	id := result.InsertedID.(primitive.ObjectID)
	product.ID = id
	return id, nil
}

func (s *ProductStore) GetByItemID(ctx context.Context, itemID int) (*types.Product, error) {
	var product types.Product
	err := s.collection.FindOne(ctx, bson.M{"item_id": itemID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("product", itemID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &product, nil
}

func (s *ProductStore) List(ctx context.Context) ([]*types.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	defer cursor.Close(ctx)

	products := []*types.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return products, nil
}

func productSetDoc(update *types.ProductUpdate) bson.M {
	set := bson.M{}
	if update.ProductName != nil {
		set["product_name"] = *update.ProductName
	}
	if update.Size != nil {
		set["size"] = *update.Size
	}
	if update.Quality != nil {
		set["quality"] = *update.Quality
	}
	if update.Keywords != nil {
		set["keywords"] = update.Keywords
	}
	if update.ClothSizeCategory != nil {
		set["cloth_size_category"] = *update.ClothSizeCategory
	}
	if update.LastUpdateDate != nil {
		set["last_update_date"] = *update.LastUpdateDate
	}
	return set
}

func (s *ProductStore) Update(ctx context.Context, itemID int, update *types.ProductUpdate) (*types.Product, error) {
	set := productSetDoc(update)
	if len(set) == 0 {
		return s.GetByItemID(ctx, itemID)
	}

	after := options.After
	var updated types.Product
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"item_id": itemID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("product", itemID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &updated, nil
}

func (s *ProductStore) Delete(ctx context.Context, itemID int) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"item_id": itemID})
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("product", itemID)
	}
	return nil
}

func (s *ProductStore) BulkInsert(ctx context.Context, products []*types.Product) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, insertErr(err, "duplicate item_id in batch", err.Error())
	}

	ids := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id.(primitive.ObjectID)
	}
	return ids, nil
}

// BulkUpdate applies the same partial update to every product in the id
// list in one update_many.
func (s *ProductStore) BulkUpdate(ctx context.Context, itemIDs []int, update *types.ProductUpdate) (*types.BulkUpdateResult, error) {
	set := productSetDoc(update)
	if len(set) == 0 {
		return &types.BulkUpdateResult{}, nil
	}

	result, err := s.collection.UpdateMany(ctx,
		bson.M{"item_id": bson.M{"$in": itemIDs}},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &types.BulkUpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *ProductStore) BulkDelete(ctx context.Context, itemIDs []int) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"item_id": bson.M{"$in": itemIDs}})
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	return result.DeletedCount, nil
}

// SearchByKeyword matches products whose keywords array contains the given
// keyword (array membership, exact match).
func (s *ProductStore) SearchByKeyword(ctx context.Context, keyword string) ([]*types.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"keywords": keyword})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	defer cursor.Close(ctx)

	products := []*types.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return products, nil
}
