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

// Ensure FeedbackStore implements store.FeedbackStore.
var _ store.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore is the MongoDB-backed feedback store.
type FeedbackStore struct {
	collection *mongo.Collection
}

// NewFeedbackStore creates a feedback store over the feedback collection.
func NewFeedbackStore(db *mongo.Database) *FeedbackStore {
	return &FeedbackStore{collection: db.Collection(feedbackCollection)}
}

func (s *FeedbackStore) Create(ctx context.Context, feedback *types.Feedback) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, feedback)
	if err != nil {
		return primitive.NilObjectID, insertErr(err,
			"feedback already exists",
			fmt.Sprintf("review_id: %d", feedback.ReviewID))
	}
	id := result.InsertedID.(primitive.ObjectID)
	feedback.ID = id
	return id, nil
}

func (s *FeedbackStore) GetByReviewID(ctx context.Context, reviewID int) (*types.Feedback, error) {
	var feedback types.Feedback
	err := s.collection.FindOne(ctx, bson.M{"review_id": reviewID}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("feedback", reviewID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &feedback, nil
}

func (s *FeedbackStore) List(ctx context.Context) ([]*types.Feedback, error) {
	return s.find(ctx, bson.M{})
}

func feedbackSetDoc(update *types.FeedbackUpdate) bson.M {
	set := bson.M{}
	if update.Fit != nil {
		set["fit"] = *update.Fit
	}
	if update.Length != nil {
		set["length"] = *update.Length
	}
	if update.ReviewText != nil {
		set["review_text"] = *update.ReviewText
	}
	if update.ReviewSummary != nil {
		set["review_summary"] = *update.ReviewSummary
	}
	return set
}

func (s *FeedbackStore) Update(ctx context.Context, reviewID int, update *types.FeedbackUpdate) (*types.Feedback, error) {
	set := feedbackSetDoc(update)
	if len(set) == 0 {
		return s.GetByReviewID(ctx, reviewID)
	}

	after := options.After
	var updated types.Feedback
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"review_id": reviewID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("feedback", reviewID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &updated, nil
}

func (s *FeedbackStore) Delete(ctx context.Context, reviewID int) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"review_id": reviewID})
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("feedback", reviewID)
	}
	return nil
}

func (s *FeedbackStore) BulkInsert(ctx context.Context, feedback []*types.Feedback) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(feedback))
	for i, f := range feedback {
		docs[i] = f
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, insertErr(err, "duplicate review_id in batch", err.Error())
	}

	ids := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id.(primitive.ObjectID)
	}
	return ids, nil
}

// BulkUpdate applies the same partial update to every review in the id
// list in one update_many.
func (s *FeedbackStore) BulkUpdate(ctx context.Context, reviewIDs []int, update *types.FeedbackUpdate) (*types.BulkUpdateResult, error) {
	set := feedbackSetDoc(update)
	if len(set) == 0 {
		return &types.BulkUpdateResult{}, nil
	}

	result, err := s.collection.UpdateMany(ctx,
		bson.M{"review_id": bson.M{"$in": reviewIDs}},
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

func (s *FeedbackStore) BulkDelete(ctx context.Context, reviewIDs []int) (int64, error) {
	return s.deleteMany(ctx, bson.M{"review_id": bson.M{"$in": reviewIDs}})
}

func (s *FeedbackStore) ListByCustomer(ctx context.Context, customerID int) ([]*types.Feedback, error) {
	return s.find(ctx, bson.M{"customer_id": customerID})
}

func (s *FeedbackStore) ListByProduct(ctx context.Context, productID int) ([]*types.Feedback, error) {
	return s.find(ctx, bson.M{"product_id": productID})
}

func (s *FeedbackStore) DeleteByCustomer(ctx context.Context, customerID int) (int64, error) {
	return s.deleteMany(ctx, bson.M{"customer_id": customerID})
}

func (s *FeedbackStore) DeleteByProduct(ctx context.Context, productID int) (int64, error) {
	return s.deleteMany(ctx, bson.M{"product_id": productID})
}

func (s *FeedbackStore) find(ctx context.Context, filter bson.M) ([]*types.Feedback, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	defer cursor.Close(ctx)

	feedback := []*types.Feedback{}
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return feedback, nil
}

func (s *FeedbackStore) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	return result.DeletedCount, nil
}
