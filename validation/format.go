package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	heightPattern      = regexp.MustCompile(`^\d'\d{1,2}$`)
	braSizePattern     = regexp.MustCompile(`^\d{2}([A-D])?$`)
	measurementPattern = regexp.MustCompile(`^\d+(\.\d+)?[A-Za-z]?$`)
)

const (
	// RecordIDMin and RecordIDMax bound the 6-digit natural keys
	// (user_id, item_id, review_id).
	RecordIDMin = 100000
	RecordIDMax = 999999

	minHeightFeet = 4
	maxHeightFeet = 7
	maxHeightInch = 11

	minBraBand = 28
	maxBraBand = 52
)

// CheckRecordID validates a 6-digit natural key.
func CheckRecordID(id int) error {
	if id < RecordIDMin || id > RecordIDMax {
		return fmt.Errorf("must be a 6-digit number between %d and %d", RecordIDMin, RecordIDMax)
	}
	return nil
}

// CheckHeight validates a height in feet'inches form, e.g. "5'6".
// Feet must be 4-7 and inches 0-11.
func CheckHeight(v string) error {
	if !heightPattern.MatchString(v) {
		return fmt.Errorf("must be in feet'inches format, e.g. 5'6")
	}
	parts := strings.SplitN(v, "'", 2)
	feet, _ := strconv.Atoi(parts[0])
	inches, _ := strconv.Atoi(parts[1])
	if feet < minHeightFeet || feet > maxHeightFeet {
		return fmt.Errorf("feet must be between %d and %d", minHeightFeet, maxHeightFeet)
	}
	if inches > maxHeightInch {
		return fmt.Errorf("inches must be between 0 and %d", maxHeightInch)
	}
	return nil
}

// CheckBraSize validates a bra size: an even band between 28 and 52 with an
// optional cup letter A-D, e.g. "34B" or "36".
func CheckBraSize(v string) error {
	if !braSizePattern.MatchString(v) {
		return fmt.Errorf("must be a two-digit band with an optional cup letter A-D, e.g. 34B")
	}
	band, _ := strconv.Atoi(v[:2])
	if band < minBraBand || band > maxBraBand {
		return fmt.Errorf("band must be between %d and %d", minBraBand, maxBraBand)
	}
	if band%2 != 0 {
		return fmt.Errorf("band must be an even number")
	}
	return nil
}

// CheckMeasurement validates a body measurement: digits with an optional
// decimal part and an optional trailing unit letter, e.g. "28", "28.5", "71c".
func CheckMeasurement(v string) error {
	if !measurementPattern.MatchString(v) {
		return fmt.Errorf("must be a number with an optional unit suffix, e.g. 28 or 28.5")
	}
	return nil
}

// MeasurementValue parses the leading numeric part of a measurement string
// for cross-field comparison. The value must already pass CheckMeasurement.
func MeasurementValue(v string) (float64, error) {
	numeric := strings.TrimRightFunc(v, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	f, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid measurement value %q", v)
	}
	return f, nil
}
