package fuel

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedYear is returned when the rate table holds no data at all for the requested year.
	ErrUnsupportedYear = errors.New("no rate data available for the requested year")
	// ErrRateNotFound is returned when the year is supported but the month/fuel/operation combination is missing.
	ErrRateNotFound = errors.New("rate not found")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string
	Message string
	Value   any
}

// ValidationError collects every field violation found in one input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Add records a violation of field.
func (e *ValidationError) Add(field, message string, value any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, Value: value})
}

// Has reports whether a violation of field was recorded.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil when no violation was recorded.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
