package validation

import (
	"strings"
	"testing"

	"github.com/FitFinder/fitfinder-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFeedback() *types.Feedback {
	return &types.Feedback{
		ReviewID:      111111,
		Fit:           types.FitPerfect,
		Length:        types.LengthRegular,
		ReviewText:    "Fits exactly as expected, the fabric holds up well after washing.",
		ReviewSummary: "Great fit",
		CustomerID:    123456,
		ProductID:     654321,
	}
}

func TestValidateFeedback(t *testing.T) {
	t.Run("valid feedback", func(t *testing.T) {
		errs := ValidateFeedback(validFeedback())
		assert.False(t, errs.HasErrors())
	})

	t.Run("invalid review id", func(t *testing.T) {
		f := validFeedback()
		f.ReviewID = 99999
		errs := ValidateFeedback(f)
		require.True(t, errs.HasErrors())
		assert.Equal(t, "review_id", errs[0].Field)
	})

	t.Run("invalid customer reference id", func(t *testing.T) {
		f := validFeedback()
		f.CustomerID = 0
		errs := ValidateFeedback(f)
		require.True(t, errs.HasErrors())
		assert.Equal(t, "customer_id", errs[0].Field)
	})

	t.Run("invalid product reference id", func(t *testing.T) {
		f := validFeedback()
		f.ProductID = 1000000
		errs := ValidateFeedback(f)
		require.True(t, errs.HasErrors())
		assert.Equal(t, "product_id", errs[0].Field)
	})

	t.Run("invalid fit rating", func(t *testing.T) {
		f := validFeedback()
		f.Fit = "Snug"
		errs := ValidateFeedback(f)
		require.True(t, errs.HasErrors())
		assert.Equal(t, "fit", errs[0].Field)
	})

	t.Run("invalid length rating", func(t *testing.T) {
		f := validFeedback()
		f.Length = "Medium"
		errs := ValidateFeedback(f)
		require.True(t, errs.HasErrors())
		assert.Equal(t, "length", errs[0].Field)
	})

	t.Run("ratings are optional", func(t *testing.T) {
		f := validFeedback()
		f.Fit = ""
		f.Length = ""
		errs := ValidateFeedback(f)
		assert.False(t, errs.HasErrors())
	})

	t.Run("review text too long", func(t *testing.T) {
		f := validFeedback()
		f.ReviewText = strings.Repeat("a", 1001)
		errs := ValidateFeedback(f)
		require.True(t, errs.HasErrors())
		assert.Equal(t, "review_text", errs[0].Field)
	})

	t.Run("summary longer than text", func(t *testing.T) {
		f := validFeedback()
		f.ReviewText = "Short"
		f.ReviewSummary = "A summary longer than the text itself"
		errs := ValidateFeedback(f)
		require.True(t, errs.HasErrors())
		assert.Equal(t, "review_summary", errs[0].Field)
	})

	t.Run("summary alone is allowed", func(t *testing.T) {
		f := validFeedback()
		f.ReviewText = ""
		f.ReviewSummary = "Just a summary"
		errs := ValidateFeedback(f)
		assert.False(t, errs.HasErrors())
	})
}

func TestValidateFeedbackUpdate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		errs := ValidateFeedbackUpdate(&types.FeedbackUpdate{})
		assert.False(t, errs.HasErrors())
	})

	t.Run("invalid fit in update", func(t *testing.T) {
		fit := types.FitRating("Baggy")
		errs := ValidateFeedbackUpdate(&types.FeedbackUpdate{Fit: &fit})
		require.True(t, errs.HasErrors())
		assert.Equal(t, "fit", errs[0].Field)
	})

	t.Run("summary too long in update", func(t *testing.T) {
		summary := strings.Repeat("s", 256)
		errs := ValidateFeedbackUpdate(&types.FeedbackUpdate{ReviewSummary: &summary})
		require.True(t, errs.HasErrors())
		assert.Equal(t, "review_summary", errs[0].Field)
	})
}

func TestCheckSummaryLength(t *testing.T) {
	assert.Nil(t, CheckSummaryLength("a longer review text", "short"))
	assert.Nil(t, CheckSummaryLength("", "summary without text"))
	assert.Nil(t, CheckSummaryLength("text without summary", ""))

	err := CheckSummaryLength("tiny", "a much longer summary")
	require.NotNil(t, err)
	assert.Equal(t, "review_summary", err.Field)
}
