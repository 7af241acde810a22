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
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// Recipe is a finished, immutable cooking recipe. Instances can only be
// produced by a successful Builder.Build, which guarantees all mandatory
// fields are present. All fields are unexported and accessors return copies
// of the collections, so a Recipe never changes after construction and is
// safe to share across concurrent readers.
type Recipe struct {
	id          uuid.UUID
	name        string
	difficulty  Difficulty
	duration    uint16
	description string
	directions  string
	img         []byte
	ingredients map[uuid.UUID]Ingredient
	tags        map[Tag]struct{}
}

// ID returns the recipe identifier supplied at build time.
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe name.
func (r *Recipe) Name() string {
	return r.name
}

// Difficulty returns the preparation difficulty level.
func (r *Recipe) Difficulty() Difficulty {
	return r.difficulty
}

// Duration returns the preparation time in minutes.
func (r *Recipe) Duration() uint16 {
	return r.duration
}

// Description returns the recipe description text.
func (r *Recipe) Description() string {
	return r.description
}

// Directions returns the preparation directions text.
func (r *Recipe) Directions() string {
	return r.directions
}

// Ingredients returns the ingredient set as a slice sorted by ingredient ID.
// The sort only makes repeated reads and encodes deterministic; set order
// carries no meaning. The returned slice is a copy.
func (r *Recipe) Ingredients() []Ingredient {
	list := make([]Ingredient, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		list = append(list, ing)
	}
	slices.SortFunc(list, func(a, b Ingredient) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return list
}

// Ingredient looks up an ingredient by its identifier.
func (r *Recipe) Ingredient(id uuid.UUID) (Ingredient, bool) {
	ing, ok := r.ingredients[id]
	return ing, ok
}

// Tags returns the tag set as a sorted slice. The returned slice is a copy.
func (r *Recipe) Tags() []Tag {
	list := make([]Tag, 0, len(r.tags))
	for t := range r.tags {
		list = append(list, t)
	}
	slices.Sort(list)
	return list
}

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(t Tag) bool {
	_, ok := r.tags[t]
	return ok
}

// Image returns a copy of the raw picture bytes. The result is empty (length
// zero, never nil) when no image was supplied at build time.
func (r *Recipe) Image() []byte {
	img := make([]byte, len(r.img))
	copy(img, r.img)
	return img
}
