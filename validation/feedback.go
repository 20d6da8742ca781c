package validation

import (
	"github.com/FitFinder/fitfinder-backend/types"
)

const (
	maxReviewTextLen    = 1000
	maxReviewSummaryLen = 255
)

// FeedbackFields is the ordered descriptor list for feedback records.
// Referential integrity against customers and products is enforced by the
// feedback model, not here: it needs store lookups.
var FeedbackFields = []FieldSpec{
	{Name: "fit", Kind: KindEnum, Choices: []string{string(types.FitTight), string(types.FitLoose), string(types.FitPerfect)}},
	{Name: "length", Kind: KindEnum, Choices: []string{string(types.LengthShort), string(types.LengthRegular), string(types.LengthLong)}},
	{Name: "review_text", Kind: KindString, MaxLen: maxReviewTextLen},
	{Name: "review_summary", Kind: KindString, MaxLen: maxReviewSummaryLen},
}

func feedbackFieldValue(f *types.Feedback, name string) interface{} {
	switch name {
	case "fit":
		return string(f.Fit)
	case "length":
		return string(f.Length)
	case "review_text":
		return f.ReviewText
	case "review_summary":
		return f.ReviewSummary
	default:
		return nil
	}
}

// ValidateFeedback applies the field descriptors, the 6-digit id rules for
// the review and both references, and the summary/text length relation.
func ValidateFeedback(f *types.Feedback) Errors {
	var errs Errors

	if err := CheckRecordID(f.ReviewID); err != nil {
		errs = append(errs, FieldError{Field: "review_id", Message: err.Error()})
	}
	if err := CheckRecordID(f.CustomerID); err != nil {
		errs = append(errs, FieldError{Field: "customer_id", Message: err.Error()})
	}
	if err := CheckRecordID(f.ProductID); err != nil {
		errs = append(errs, FieldError{Field: "product_id", Message: err.Error()})
	}

	for _, spec := range FeedbackFields {
		if fieldErr := spec.Validate(feedbackFieldValue(f, spec.Name)); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	if fieldErr := CheckSummaryLength(f.ReviewText, f.ReviewSummary); fieldErr != nil {
		errs = append(errs, *fieldErr)
	}

	return errs
}

// ValidateFeedbackUpdate applies field rules to the fields present in a
// partial update. The summary/text relation is rechecked by the model
// against the merged record.
func ValidateFeedbackUpdate(u *types.FeedbackUpdate) Errors {
	var errs Errors

	present := map[string]interface{}{}
	if u.Fit != nil {
		present["fit"] = string(*u.Fit)
	}
	if u.Length != nil {
		present["length"] = string(*u.Length)
	}
	if u.ReviewText != nil {
		present["review_text"] = *u.ReviewText
	}
	if u.ReviewSummary != nil {
		present["review_summary"] = *u.ReviewSummary
	}

	for _, spec := range FeedbackFields {
		value, ok := present[spec.Name]
		if !ok {
			continue
		}
		if fieldErr := spec.Validate(value); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	return errs
}

// CheckSummaryLength enforces that a review summary is not longer than the
// full review text when both are present.
func CheckSummaryLength(text, summary string) *FieldError {
	if text == "" || summary == "" {
		return nil
	}
	if len(summary) > len(text) {
		return &FieldError{Field: "review_summary", Message: "must not be longer than review_text"}
	}
	return nil
}
