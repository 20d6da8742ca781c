package mongodb

import (
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/FitFinder/fitfinder-backend/logger"
	"github.com/FitFinder/fitfinder-backend/types"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	logger.InitLogger()
	os.Exit(m.Run())
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCustomerSetDoc(t *testing.T) {
	t.Run("includes only supplied fields", func(t *testing.T) {
		waist := "29"
		hips := "37"
		set := customerSetDoc(&types.CustomerUpdate{Waist: &waist, Hips: &hips})
		assert.Equal(t, bson.M{"waist": "29", "hips": "37"}, set)
	})

	t.Run("empty update yields empty document", func(t *testing.T) {
		assert.Empty(t, customerSetDoc(&types.CustomerUpdate{}))
	})

	t.Run("uses the stored field names", func(t *testing.T) {
		set := customerSetDoc(&types.CustomerUpdate{
			UserName: strPtr("Jane Doe"),
			CupSize:  strPtr("B"),
			BraSize:  strPtr("34B"),
			Bust:     strPtr("34"),
			Height:   strPtr("5'6"),
		})
		assert.Equal(t, bson.M{
			"user_name": "Jane Doe",
			"cup_size":  "B",
			"bra_size":  "34B",
			"bust":      "34",
			"height":    "5'6",
		}, set)
	})
}

func TestProductSetDoc(t *testing.T) {
	t.Run("includes only supplied fields", func(t *testing.T) {
		category := types.SizeCategoryL
		date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		set := productSetDoc(&types.ProductUpdate{
			Quality:           intPtr(5),
			Keywords:          []string{"dress", "wrap"},
			ClothSizeCategory: &category,
			LastUpdateDate:    &date,
		})
		assert.Equal(t, bson.M{
			"quality":             5,
			"keywords":            []string{"dress", "wrap"},
			"cloth_size_category": types.SizeCategoryL,
			"last_update_date":    date,
		}, set)
	})

	t.Run("empty update yields empty document", func(t *testing.T) {
		assert.Empty(t, productSetDoc(&types.ProductUpdate{}))
	})
}

func TestFeedbackSetDoc(t *testing.T) {
	t.Run("includes only supplied fields", func(t *testing.T) {
		fit := types.FitLoose
		set := feedbackSetDoc(&types.FeedbackUpdate{
			Fit:        &fit,
			ReviewText: strPtr("Runs a little big around the waist."),
		})
		assert.Equal(t, bson.M{
			"fit":         types.FitLoose,
			"review_text": "Runs a little big around the waist.",
		}, set)
	})

	t.Run("empty update yields empty document", func(t *testing.T) {
		assert.Empty(t, feedbackSetDoc(&types.FeedbackUpdate{}))
	})
}

func TestWaistDistributionPipeline(t *testing.T) {
	pipeline := waistDistributionPipeline()
	require.Len(t, pipeline, 2)

	group := pipeline[0]
	require.Equal(t, "$group", group[0].Key)
	groupDoc, ok := group[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.E{Key: "_id", Value: "$waist"}, groupDoc[0])
	assert.Equal(t, bson.E{Key: "total_customers", Value: bson.D{{Key: "$sum", Value: 1}}}, groupDoc[1])

	sort := pipeline[1]
	require.Equal(t, "$sort", sort[0].Key)
	assert.Equal(t, bson.D{{Key: "total_customers", Value: -1}}, sort[0].Value)
}

func TestInsertErr(t *testing.T) {
	t.Run("duplicate key becomes a conflict", func(t *testing.T) {
		dup := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}
		err := insertErr(dup, "customer already exists", "user_id: 123456")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ConflictError, appErr.Type)
		assert.Equal(t, http.StatusConflict, appErr.GetHTTPStatus())
		assert.Equal(t, "customer already exists", appErr.Message)
		assert.Contains(t, appErr.Detail, "123456")
	})

	t.Run("anything else becomes a database error", func(t *testing.T) {
		raw := errors.New("server selection timeout")
		err := insertErr(raw, "customer already exists", "")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.DatabaseError, appErr.Type)
		assert.Equal(t, http.StatusInternalServerError, appErr.GetHTTPStatus())
		assert.Equal(t, raw, appErr.Raw)
	})
}
