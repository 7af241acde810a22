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

// Package recipe models a single cooking recipe as an immutable, validated
// value and provides the staged Builder that is the only way to construct one.
//
// # Core Types
//
//   - Difficulty: closed, ordered enumeration (easy, medium, hard, expert)
//   - Ingredient: value object whose identity is its ID alone
//   - Tag: free-form text label with value equality
//   - Recipe: the finished, immutable aggregate
//   - Builder: accumulates fields and validates completeness on Build
//
// # Building Recipes
//
//	r, err := recipe.NewBuilder().
//	    WithID(id).
//	    WithName("Pancakes").
//	    WithDifficulty(recipe.DifficultyEasy).
//	    WithDuration(15).
//	    WithDescription("Fluffy pancakes").
//	    WithDirections("Mix and fry.").
//	    AddIngredient(recipe.NewIngredient(flourID, "flour", "cup", "2")).
//	    AddTag("breakfast").
//	    Build()
//
// Build checks the six mandatory fields (id, name, difficulty, duration,
// description, directions) in that order and fails with a *MissingFieldError
// naming the first unset one. Ingredients, tags, and the image are optional
// and default to empty. Field setters never fail and may be called in any
// order; repeated calls overwrite (last write wins).
//
// # Immutability
//
// A finished Recipe exposes no mutating operations, and a successful Build
// consumes the builder, so no later builder call can reach the returned
// value. Recipes are safe to share across any number of concurrent readers.
// A Builder has no internal synchronization and must be owned by a single
// goroutine for the duration of a build.
package recipe
