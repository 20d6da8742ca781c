package validation

import (
	"time"

	"github.com/FitFinder/fitfinder-backend/types"
)

var (
	productSizeMin, productSizeMax = IntRange(0, 50)
	qualityMin, qualityMax         = IntRange(1, 5)
)

// sizeCategoryChoices mirrors types.SizeCategories as plain strings for the
// enum descriptor.
func sizeCategoryChoices() []string {
	choices := make([]string, len(types.SizeCategories))
	for i, c := range types.SizeCategories {
		choices[i] = string(c)
	}
	return choices
}

// ProductFields is the ordered descriptor list for product records.
var ProductFields = []FieldSpec{
	{Name: "product_name", Kind: KindString, Required: true, MinLen: 2, MaxLen: 100},
	{Name: "size", Kind: KindInteger, Min: productSizeMin, Max: productSizeMax},
	{Name: "quality", Kind: KindInteger, Min: qualityMin, Max: qualityMax},
	{Name: "keywords", Kind: KindList, Required: true, MaxLen: 100},
	{Name: "cloth_size_category", Kind: KindEnum, Required: true, Choices: sizeCategoryChoices()},
	{Name: "last_update_date", Kind: KindDate, Required: true},
}

func productFieldValue(p *types.Product, name string) interface{} {
	switch name {
	case "product_name":
		return p.ProductName
	case "size":
		return p.Size
	case "quality":
		return p.Quality
	case "keywords":
		return p.Keywords
	case "cloth_size_category":
		return string(p.ClothSizeCategory)
	case "last_update_date":
		return p.LastUpdateDate
	default:
		return nil
	}
}

// ValidateProduct applies the field descriptors and the last_update_date
// freshness rule to a full product record.
func ValidateProduct(p *types.Product, now time.Time) Errors {
	var errs Errors

	if err := CheckRecordID(p.ItemID); err != nil {
		errs = append(errs, FieldError{Field: "item_id", Message: err.Error()})
	}
	for _, spec := range ProductFields {
		if fieldErr := spec.Validate(productFieldValue(p, spec.Name)); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	if fieldErr := CheckUpdateDate(p.LastUpdateDate, now); fieldErr != nil {
		errs = append(errs, *fieldErr)
	}

	return errs
}

// ValidateProductUpdate applies field rules to the fields present in a
// partial update.
func ValidateProductUpdate(u *types.ProductUpdate, now time.Time) Errors {
	var errs Errors

	present := map[string]interface{}{}
	if u.ProductName != nil {
		present["product_name"] = *u.ProductName
	}
	if u.Size != nil {
		present["size"] = *u.Size
	}
	if u.Quality != nil {
		present["quality"] = *u.Quality
	}
	if u.Keywords != nil {
		present["keywords"] = u.Keywords
	}
	if u.ClothSizeCategory != nil {
		present["cloth_size_category"] = string(*u.ClothSizeCategory)
	}
	if u.LastUpdateDate != nil {
		present["last_update_date"] = *u.LastUpdateDate
	}

	for _, spec := range ProductFields {
		value, ok := present[spec.Name]
		if !ok {
			continue
		}
		if fieldErr := spec.Validate(value); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	if u.LastUpdateDate != nil {
		if fieldErr := CheckUpdateDate(*u.LastUpdateDate, now); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	return errs
}

// CheckUpdateDate rejects last_update_date values in the future. Dates are
// compared at day granularity in UTC so a product dated "today" passes
// regardless of the time of day.
func CheckUpdateDate(date, now time.Time) *FieldError {
	if date.IsZero() {
		return nil
	}
	day := date.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)
	if day.After(today) {
		return &FieldError{Field: "last_update_date", Message: "must not be in the future"}
	}
	return nil
}
