package recipe

import (
	"errors"
	"testing"
)

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Field: FieldDirections}

	if got := err.Error(); got != "missing required field: directions" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrMissingField) {
		t.Error("errors.Is(err, ErrMissingField) = false, want true")
	}

	var mfe *MissingFieldError
	if !errors.As(error(err), &mfe) || mfe.Field != FieldDirections {
		t.Errorf("errors.As field = %q, want directions", mfe.Field)
	}
}
