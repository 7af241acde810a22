package recipe

// Tag is a free-form text label attached to a recipe. Tags have no identity
// beyond their content: equality, hashing, and set membership are all
// structural on the wrapped text. Empty tag text is accepted.
type Tag string

// String returns the tag text.
func (t Tag) String() string {
	return string(t)
}
