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

// Package document defines the wire shape of a recipe and the bridge to and
// from the immutable core.
//
// A Document is what recipe files contain: the standard Kind/apiVersion
// envelope plus the recipe fields in their serializable form. Converting a
// Document back into a recipe.Recipe always goes through the staged builder,
// so a file missing a mandatory field fails with the same missing-field
// error an in-memory caller would get, and no partially valid recipe is
// ever observable.
//
// Reading:
//
//	doc, err := serializer.FromFile[document.Document]("recipe.yaml")
//	if err != nil { ... }
//	r, err := doc.Recipe()
//
// Writing:
//
//	doc := document.FromRecipe(r, document.WithToolVersion(version))
//	writer.Serialize(ctx, doc)
package document
