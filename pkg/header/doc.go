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

// Package header provides the common envelope for recipe-api documents.
//
// Every document this repository reads or writes carries a Kubernetes-style
// header with Kind, APIVersion, and Metadata fields, so readers can identify
// and version-check a file before decoding the payload.
//
// # Usage
//
// Create a header with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindRecipe),
//	    header.WithAPIVersion("v1"),
//	    header.WithMetadata("version", "v1.0.0"),
//	)
//
// Or stamp an embedded header in place:
//
//	var doc Document
//	doc.Header.Init(header.KindRecipe, "v1", toolVersion)
//
// Init records an RFC3339 UTC timestamp and the tool version in Metadata.
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "Recipe",
//	  "apiVersion": "v1",
//	  "metadata": {
//	    "timestamp": "2025-08-25T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # Kind Field
//
// The Kind field identifies the document type:
//   - Recipe: a single cooking recipe document
//   - ValidationReport: the result of validating recipe documents
//
// Consumers should verify both Kind and APIVersion before trusting the
// payload; pkg/document does this on every decode.
package header
