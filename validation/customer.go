package validation

import (
	"github.com/FitFinder/fitfinder-backend/types"
)

// CupSizes lists the accepted cup_size values.
var CupSizes = []string{"AA", "A", "B", "C", "D", "DD", "E", "F", "G"}

// CustomerFields is the ordered descriptor list for customer records.
var CustomerFields = []FieldSpec{
	{Name: "user_name", Kind: KindString, Required: true, MinLen: 2, MaxLen: 100},
	{Name: "waist", Kind: KindString, Required: true, MaxLen: 10, Check: CheckMeasurement},
	{Name: "cup_size", Kind: KindEnum, Required: true, Choices: CupSizes},
	{Name: "bra_size", Kind: KindString, Required: true, MaxLen: 10, Check: CheckBraSize},
	{Name: "hips", Kind: KindString, Required: true, MaxLen: 10, Check: CheckMeasurement},
	{Name: "bust", Kind: KindString, Required: true, MaxLen: 10, Check: CheckMeasurement},
	{Name: "height", Kind: KindString, Required: true, MaxLen: 10, Check: CheckHeight},
}

// customerFieldValue maps a descriptor name to the record's raw value.
func customerFieldValue(c *types.Customer, name string) interface{} {
	switch name {
	case "user_name":
		return c.UserName
	case "waist":
		return c.Waist
	case "cup_size":
		return c.CupSize
	case "bra_size":
		return c.BraSize
	case "hips":
		return c.Hips
	case "bust":
		return c.Bust
	case "height":
		return c.Height
	default:
		return nil
	}
}

// ValidateCustomer applies the field descriptors and the waist/hips
// cross-field rule to a full customer record.
func ValidateCustomer(c *types.Customer) Errors {
	var errs Errors

	if err := CheckRecordID(c.UserID); err != nil {
		errs = append(errs, FieldError{Field: "user_id", Message: err.Error()})
	}
	for _, spec := range CustomerFields {
		if fieldErr := spec.Validate(customerFieldValue(c, spec.Name)); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	// Cross-field rule: only meaningful once both measurements parse.
	if len(errs) == 0 {
		if err := checkWaistBelowHips(c.Waist, c.Hips); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

// ValidateCustomerUpdate applies field rules to the fields present in a
// partial update. The waist/hips rule is rechecked by the model against the
// merged record, since an update may touch only one side.
func ValidateCustomerUpdate(u *types.CustomerUpdate) Errors {
	var errs Errors

	present := map[string]interface{}{}
	if u.UserName != nil {
		present["user_name"] = *u.UserName
	}
	if u.Waist != nil {
		present["waist"] = *u.Waist
	}
	if u.CupSize != nil {
		present["cup_size"] = *u.CupSize
	}
	if u.BraSize != nil {
		present["bra_size"] = *u.BraSize
	}
	if u.Hips != nil {
		present["hips"] = *u.Hips
	}
	if u.Bust != nil {
		present["bust"] = *u.Bust
	}
	if u.Height != nil {
		present["height"] = *u.Height
	}

	for _, spec := range CustomerFields {
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

// CheckWaistBelowHips enforces the waist < hips invariant on a merged
// record. Both values must be valid measurements.
func CheckWaistBelowHips(waist, hips string) *FieldError {
	return checkWaistBelowHips(waist, hips)
}

func checkWaistBelowHips(waist, hips string) *FieldError {
	waistVal, err := MeasurementValue(waist)
	if err != nil {
		return &FieldError{Field: "waist", Message: err.Error()}
	}
	hipsVal, err := MeasurementValue(hips)
	if err != nil {
		return &FieldError{Field: "hips", Message: err.Error()}
	}
	if waistVal >= hipsVal {
		return &FieldError{Field: "waist", Message: "waist measurement must be less than hip measurement"}
	}
	return nil
}
