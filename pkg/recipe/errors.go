package recipe

import (
	"errors"
	"fmt"
)

// ErrMissingField is the sentinel wrapped by every MissingFieldError,
// so callers can test for the failure class with errors.Is.
var ErrMissingField = errors.New("missing required field")

// Field names a mandatory recipe field for error reporting.
type Field string

// The six mandatory fields, in the order Build checks them.
const (
	FieldID          Field = "id"
	FieldName        Field = "name"
	FieldDifficulty  Field = "difficulty"
	FieldDuration    Field = "duration"
	FieldDescription Field = "description"
	FieldDirections  Field = "directions"
)

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// MissingFieldError reports the first mandatory field found unset during
// finalization. The Field value identifies which one, so callers can act on
// it (re-prompt, reject the request) rather than on a generic failure.
type MissingFieldError struct {
	Field Field
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingField, e.Field)
}

// Unwrap returns ErrMissingField for errors.Is support.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
