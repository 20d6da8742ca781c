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

// Ensure CustomerStore implements store.CustomerStore.
var _ store.CustomerStore = (*CustomerStore)(nil)

// CustomerStore is the MongoDB-backed customer store.
type CustomerStore struct {
	collection *mongo.Collection
}

// NewCustomerStore creates a customer store over the customers collection.
func NewCustomerStore(db *mongo.Database) *CustomerStore {
	return &CustomerStore{collection: db.Collection(customersCollection)}
}

func (s *CustomerStore) Create(ctx context.Context, customer *types.Customer) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, customer)
	if err != nil {
		return primitive.NilObjectID, insertErr(err,
			"customer already exists",
			fmt.Sprintf("user_id: %d", customer.UserID))
	}
	id := result.InsertedID.(primitive.ObjectID)
	customer.ID = id
	return id, nil
}

func (s *CustomerStore) GetByUserID(ctx context.Context, userID int) (*types.Customer, error) {
	var customer types.Customer
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("customer", userID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &customer, nil
}

func (s *CustomerStore) List(ctx context.Context) ([]*types.Customer, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	defer cursor.Close(ctx)

	customers := []*types.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return customers, nil
}

func customerSetDoc(update *types.CustomerUpdate) bson.M {
	set := bson.M{}
	if update.UserName != nil {
		set["user_name"] = *update.UserName
	}
	if update.Waist != nil {
		set["waist"] = *update.Waist
	}
	if update.CupSize != nil {
		set["cup_size"] = *update.CupSize
	}
	if update.BraSize != nil {
		set["bra_size"] = *update.BraSize
	}
	if update.Hips != nil {
		set["hips"] = *update.Hips
	}
	if update.Bust != nil {
		set["bust"] = *update.Bust
	}
	if update.Height != nil {
		set["height"] = *update.Height
	}
	return set
}

func (s *CustomerStore) Update(ctx context.Context, userID int, update *types.CustomerUpdate) (*types.Customer, error) {
	set := customerSetDoc(update)
	if len(set) == 0 {
		return s.GetByUserID(ctx, userID)
	}

	after := options.After
	var updated types.Customer
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("customer", userID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &updated, nil
}

func (s *CustomerStore) Delete(ctx context.Context, userID int) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("customer", userID)
	}
	return nil
}

func (s *CustomerStore) BulkInsert(ctx context.Context, customers []*types.Customer) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(customers))
	for i, c := range customers {
		docs[i] = c
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, insertErr(err, "duplicate user_id in batch", err.Error())
	}

	ids := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id.(primitive.ObjectID)
	}
	return ids, nil
}

func (s *CustomerStore) BulkDelete(ctx context.Context, userIDs []int) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	return result.DeletedCount, nil
}

func (s *CustomerStore) UpdateWaist(ctx context.Context, oldWaist, newWaist string) (*types.BulkUpdateResult, error) {
	result, err := s.collection.UpdateMany(ctx,
		bson.M{"waist": oldWaist},
		bson.M{"$set": bson.M{"waist": newWaist}},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &types.BulkUpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// waistDistributionPipeline groups customers by waist value and orders the
// buckets by descending count.
func waistDistributionPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$waist"},
			{Key: "total_customers", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_customers", Value: -1}}}},
	}
}

func (s *CustomerStore) WaistDistribution(ctx context.Context) ([]types.WaistBucket, error) {
	cursor, err := s.collection.Aggregate(ctx, waistDistributionPipeline())
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	defer cursor.Close(ctx)

	buckets := []types.WaistBucket{}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return buckets, nil
}
