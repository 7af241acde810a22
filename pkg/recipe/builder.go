// Copyright (c) 2025, Benjamin Haase.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"github.com/google/uuid"
)

// Presence bits for the mandatory scalar fields.
const (
	bitID uint8 = 1 << iota
	bitName
	bitDifficulty
	bitDuration
	bitDescription
	bitDirections
)

// mandatoryFields is the fixed order Build checks presence in. The first
// unset field is the one reported, so the order is part of the contract.
var mandatoryFields = []struct {
	field Field
	bit   uint8
}{
	{FieldID, bitID},
	{FieldName, bitName},
	{FieldDifficulty, bitDifficulty},
	{FieldDuration, bitDuration},
	{FieldDescription, bitDescription},
	{FieldDirections, bitDirections},
}

// Builder provides a fluent API for building Recipe instances. It accumulates
// field values across any number of calls and validates completeness only on
// Build, so a partially specified Recipe is never observable.
//
// Setters may be called in any order and never fail; calling one again
// overwrites the previous value (last write wins). A Builder has no internal
// synchronization: each logical build must own its Builder exclusively.
type Builder struct {
	id          uuid.UUID
	name        string
	difficulty  Difficulty
	duration    uint16
	description string
	directions  string
	img         []byte
	ingredients map[uuid.UUID]Ingredient
	tags        map[Tag]struct{}
	present     uint8
}

// NewBuilder creates a Builder with every field unset and empty
// ingredient/tag sets.
func NewBuilder() *Builder {
	return &Builder{
		ingredients: make(map[uuid.UUID]Ingredient),
		tags:        make(map[Tag]struct{}),
	}
}

// WithID sets the recipe identifier. IDs are caller-supplied; the builder
// does not generate them or check uniqueness against anything.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	b.present |= bitID
	return b
}

// WithName sets the recipe name. Empty text is accepted.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	b.present |= bitName
	return b
}

// WithDifficulty sets the difficulty level.
func (b *Builder) WithDifficulty(d Difficulty) *Builder {
	b.difficulty = d
	b.present |= bitDifficulty
	return b
}

// WithDuration sets the preparation time in minutes.
func (b *Builder) WithDuration(minutes uint16) *Builder {
	b.duration = minutes
	b.present |= bitDuration
	return b
}

// WithDescription sets the description text. Empty text is accepted.
func (b *Builder) WithDescription(text string) *Builder {
	b.description = text
	b.present |= bitDescription
	return b
}

// WithDirections sets the directions text. Empty text is accepted.
func (b *Builder) WithDirections(text string) *Builder {
	b.directions = text
	b.present |= bitDirections
	return b
}

// WithImage sets the raw picture bytes. The bytes are copied, so the caller
// may reuse its slice after the call. The image is optional.
func (b *Builder) WithImage(img []byte) *Builder {
	b.img = make([]byte, len(img))
	copy(b.img, img)
	return b
}

// AddIngredient inserts an ingredient into the set, keyed by its ID. Adding
// another ingredient with the same ID replaces the earlier entry rather than
// creating a second one.
func (b *Builder) AddIngredient(ing Ingredient) *Builder {
	b.ingredients[ing.ID] = ing
	return b
}

// AddTag inserts a tag into the set. Re-adding identical tag text is a no-op.
func (b *Builder) AddTag(t Tag) *Builder {
	b.tags[t] = struct{}{}
	return b
}

// Build finalizes the builder into an immutable Recipe.
//
// The six mandatory fields are checked in fixed order (id, name, difficulty,
// duration, description, directions) and the first one found unset fails the
// build with a *MissingFieldError naming it. The check is deterministic
// given builder state. On success the ingredient and tag sets default to
// empty when never populated, the image defaults to empty bytes, and the
// collections transfer to the Recipe.
//
// A successful Build consumes the builder: its state resets to all-unset, so
// a second Build fails with a missing id and later setter or add calls can
// never reach the finalized Recipe. A failed Build leaves the builder
// untouched, so the caller may supply the missing field and retry.
func (b *Builder) Build() (*Recipe, error) {
	for _, m := range mandatoryFields {
		if b.present&m.bit == 0 {
			buildFailuresTotal.WithLabelValues(string(m.field)).Inc()
			return nil, &MissingFieldError{Field: m.field}
		}
	}

	r := &Recipe{
		id:          b.id,
		name:        b.name,
		difficulty:  b.difficulty,
		duration:    b.duration,
		description: b.description,
		directions:  b.directions,
		img:         b.img,
		ingredients: b.ingredients,
		tags:        b.tags,
	}

	// Consume the builder: the finalized Recipe now owns the collections.
	*b = *NewBuilder()

	buildsTotal.Inc()
	return r, nil
}
