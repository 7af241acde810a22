package recipe

import (
	"fmt"

	"github.com/google/uuid"
)

// Ingredient is a single recipe ingredient. Its identity is the ID alone:
// two ingredients with the same ID are the same set member even when their
// Name, Unit, or Measurement text differ. None of the text fields are
// validated (empty values are accepted).
type Ingredient struct {
	ID          uuid.UUID
	Name        string
	Unit        string
	Measurement string
}

// NewIngredient creates an Ingredient with the given identity and text fields.
func NewIngredient(id uuid.UUID, name, unit, measurement string) Ingredient {
	return Ingredient{
		ID:          id,
		Name:        name,
		Unit:        unit,
		Measurement: measurement,
	}
}

// Equal reports whether i and other are the same ingredient. Only the ID
// participates; the text fields are ignored.
func (i Ingredient) Equal(other Ingredient) bool {
	return i.ID == other.ID
}

// String returns a short human-readable form, e.g. "flour (2 cup)".
func (i Ingredient) String() string {
	return fmt.Sprintf("%s (%s %s)", i.Name, i.Measurement, i.Unit)
}
