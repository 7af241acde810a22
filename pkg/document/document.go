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

package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/BenjaminHaaseT/recipe-api/pkg/errors"
	"github.com/BenjaminHaaseT/recipe-api/pkg/header"
	"github.com/BenjaminHaaseT/recipe-api/pkg/recipe"
	"github.com/BenjaminHaaseT/recipe-api/pkg/version"
)

// APIVersion is the schema version stamped on documents this tool writes.
const APIVersion = "v1"

// SchemaVersion is the parsed schema family. Documents are accepted when
// their apiVersion shares its major component.
var SchemaVersion = version.MustParseVersion(APIVersion)

// Ingredient is the wire shape of a single ingredient. Identifiers travel
// as canonical UUID text so both JSON and YAML render them readably.
type Ingredient struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Unit        string `json:"unit" yaml:"unit"`
	Measurement string `json:"measurement" yaml:"measurement"`
}

// Document is the wire shape of a recipe, wrapped in the standard resource
// envelope. Decoding a Document never yields a recipe.Recipe directly: the
// Recipe method feeds the staged builder, so every recipe obtained from a
// file passed the same completeness validation as one built in memory.
//
// The wire form cannot distinguish an absent text field from an empty one,
// so empty id, name, difficulty, description, and directions values map to
// unset builder fields and surface as the builder's missing-field error.
// Duration is a pointer for the same reason: zero minutes is a legal value.
type Document struct {
	header.Header `yaml:",inline"`

	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Difficulty  string       `json:"difficulty" yaml:"difficulty"`
	Duration    *uint16      `json:"duration,omitempty" yaml:"duration,omitempty"`
	Description string       `json:"description" yaml:"description"`
	Ingredients []Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Directions  string       `json:"directions" yaml:"directions"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Image       []byte       `json:"image,omitempty" yaml:"image,omitempty"`
}

// Option is a functional option for configuring documents produced by
// FromRecipe.
type Option func(*Document)

// WithToolVersion records the producing tool's version in the document
// header metadata.
func WithToolVersion(v string) Option {
	return func(d *Document) {
		if d.Metadata == nil {
			d.Metadata = make(map[string]string)
		}
		d.Metadata["version"] = v
	}
}

// FromRecipe converts a finished recipe into its wire shape. Output is
// deterministic: ingredients are ordered by ID and tags sorted, matching the
// recipe accessors.
func FromRecipe(r *recipe.Recipe, opts ...Option) *Document {
	doc := &Document{
		ID:          r.ID().String(),
		Name:        r.Name(),
		Difficulty:  r.Difficulty().String(),
		Description: r.Description(),
		Directions:  r.Directions(),
	}
	doc.Header.Init(header.KindRecipe, APIVersion, "")

	duration := r.Duration()
	doc.Duration = &duration

	for _, ing := range r.Ingredients() {
		doc.Ingredients = append(doc.Ingredients, Ingredient{
			ID:          ing.ID.String(),
			Name:        ing.Name,
			Unit:        ing.Unit,
			Measurement: ing.Measurement,
		})
	}
	for _, t := range r.Tags() {
		doc.Tags = append(doc.Tags, string(t))
	}
	if img := r.Image(); len(img) > 0 {
		doc.Image = img
	}

	for _, opt := range opts {
		opt(doc)
	}

	return doc
}

// Recipe validates the document envelope and builds the immutable recipe
// through the staged builder.
//
// Envelope failures (wrong kind, unsupported apiVersion, malformed UUIDs or
// difficulty text) return pkg/errors StructuredErrors. Completeness failures
// pass the builder's error through unwrapped, so callers can errors.As for
// *recipe.MissingFieldError and learn which field a document lacks.
func (d *Document) Recipe() (*recipe.Recipe, error) {
	if err := d.validateEnvelope(); err != nil {
		return nil, err
	}

	b := recipe.NewBuilder()

	if d.ID != "" {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument,
				fmt.Sprintf("invalid recipe id %q", d.ID), err)
		}
		b.WithID(id)
	}
	if d.Name != "" {
		b.WithName(d.Name)
	}
	if d.Difficulty != "" {
		difficulty, err := recipe.ParseDifficulty(d.Difficulty)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidDocument,
				"invalid difficulty", err,
				map[string]any{"supported": recipe.SupportedDifficulties()})
		}
		b.WithDifficulty(difficulty)
	}
	if d.Duration != nil {
		b.WithDuration(*d.Duration)
	}
	if d.Description != "" {
		b.WithDescription(d.Description)
	}
	if d.Directions != "" {
		b.WithDirections(d.Directions)
	}

	for _, ing := range d.Ingredients {
		id, err := uuid.Parse(ing.ID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument,
				fmt.Sprintf("invalid ingredient id %q", ing.ID), err)
		}
		b.AddIngredient(recipe.NewIngredient(id, ing.Name, ing.Unit, ing.Measurement))
	}
	for _, t := range d.Tags {
		b.AddTag(recipe.Tag(t))
	}
	if len(d.Image) > 0 {
		b.WithImage(d.Image)
	}

	return b.Build()
}

// validateEnvelope checks the document kind and schema version.
func (d *Document) validateEnvelope() error {
	if d.Kind != header.KindRecipe {
		return errors.New(errors.ErrCodeInvalidDocument,
			fmt.Sprintf("unexpected document kind %q, want %q", d.Kind, header.KindRecipe))
	}

	v, err := version.ParseVersion(d.APIVersion)
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnsupportedVersion,
			fmt.Sprintf("invalid apiVersion %q", d.APIVersion), err)
	}
	if v.Major != SchemaVersion.Major {
		return errors.NewWithContext(errors.ErrCodeUnsupportedVersion,
			fmt.Sprintf("unsupported apiVersion %q", d.APIVersion),
			map[string]any{"supported": APIVersion})
	}

	return nil
}
