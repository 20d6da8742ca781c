// Package validation implements the field and record rules for customers,
// products, and feedback. Each entity is described by an explicit ordered
// list of field descriptors; record-level rules (cross-field and
// cross-entity checks) sit on top of them in the models package.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldKind tags the value variant a FieldSpec applies to.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInteger
	KindDate
	KindEnum
	KindList
)

// FieldError reports a single violated rule on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects field errors for one record. Validation collects all
// violations rather than stopping at the first one.
type Errors []FieldError

func (v Errors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// HasErrors reports whether any rule was violated.
func (v Errors) HasErrors() bool {
	return len(v) > 0
}

// FieldSpec describes the rules for one field of an entity. Which rule
// fields apply depends on Kind: strings use MinLen/MaxLen/Pattern/Check,
// integers use Min/Max, enums use Choices, lists apply MinLen/MaxLen to
// each element.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
	MinLen   int
	MaxLen   int
	Min      *int
	Max      *int
	Pattern  *regexp.Regexp
	Choices  []string
	// Check is an optional format validator for values a pattern alone
	// cannot express (height, bra size).
	Check func(string) error
}

// IntRange returns pointers for a FieldSpec Min/Max pair.
func IntRange(min, max int) (*int, *int) {
	return &min, &max
}

// Validate checks a raw value against the spec and returns a FieldError
// naming the field and the violated rule, or nil.
func (s FieldSpec) Validate(value interface{}) *FieldError {
	switch s.Kind {
	case KindString:
		v, ok := value.(string)
		if !ok {
			return &FieldError{Field: s.Name, Message: "must be a string"}
		}
		return s.validateString(v)
	case KindInteger:
		v, ok := value.(int)
		if !ok {
			return &FieldError{Field: s.Name, Message: "must be an integer"}
		}
		return s.validateInteger(v)
	case KindDate:
		v, ok := value.(time.Time)
		if !ok {
			return &FieldError{Field: s.Name, Message: "must be a date"}
		}
		if s.Required && v.IsZero() {
			return &FieldError{Field: s.Name, Message: "is required"}
		}
		return nil
	case KindEnum:
		v, ok := value.(string)
		if !ok {
			return &FieldError{Field: s.Name, Message: "must be a string"}
		}
		return s.validateEnum(v)
	case KindList:
		v, ok := value.([]string)
		if !ok {
			return &FieldError{Field: s.Name, Message: "must be a list of strings"}
		}
		return s.validateList(v)
	default:
		return &FieldError{Field: s.Name, Message: "unknown field kind"}
	}
}

func (s FieldSpec) validateString(v string) *FieldError {
	if v == "" {
		if s.Required {
			return &FieldError{Field: s.Name, Message: "is required"}
		}
		return nil
	}
	if s.MinLen > 0 && len(v) < s.MinLen {
		return &FieldError{Field: s.Name, Message: fmt.Sprintf("must be at least %d characters", s.MinLen)}
	}
	if s.MaxLen > 0 && len(v) > s.MaxLen {
		return &FieldError{Field: s.Name, Message: fmt.Sprintf("must be at most %d characters", s.MaxLen)}
	}
	if s.Pattern != nil && !s.Pattern.MatchString(v) {
		return &FieldError{Field: s.Name, Message: "has an invalid format"}
	}
	if s.Check != nil {
		if err := s.Check(v); err != nil {
			return &FieldError{Field: s.Name, Message: err.Error()}
		}
	}
	return nil
}

func (s FieldSpec) validateInteger(v int) *FieldError {
	if s.Min != nil && v < *s.Min {
		return &FieldError{Field: s.Name, Message: fmt.Sprintf("must be at least %d", *s.Min)}
	}
	if s.Max != nil && v > *s.Max {
		return &FieldError{Field: s.Name, Message: fmt.Sprintf("must be at most %d", *s.Max)}
	}
	return nil
}

func (s FieldSpec) validateEnum(v string) *FieldError {
	if v == "" {
		if s.Required {
			return &FieldError{Field: s.Name, Message: "is required"}
		}
		return nil
	}
	for _, choice := range s.Choices {
		if v == choice {
			return nil
		}
	}
	return &FieldError{
		Field:   s.Name,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(s.Choices, ", ")),
	}
}

func (s FieldSpec) validateList(v []string) *FieldError {
	if len(v) == 0 {
		if s.Required {
			return &FieldError{Field: s.Name, Message: "must not be empty"}
		}
		return nil
	}
	for i, item := range v {
		if item == "" {
			return &FieldError{Field: s.Name, Message: fmt.Sprintf("element %d must not be empty", i)}
		}
		if s.MaxLen > 0 && len(item) > s.MaxLen {
			return &FieldError{Field: s.Name, Message: fmt.Sprintf("element %d must be at most %d characters", i, s.MaxLen)}
		}
	}
	return nil
}
