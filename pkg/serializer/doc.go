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

// Package serializer reads and writes recipe-api documents in JSON and YAML.
//
// Writing:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// Reading, with format detection from the file extension:
//
//	doc, err := serializer.FromFile[document.Document]("recipe.yaml")
//
// JSON output is indented with two spaces; YAML output uses a two-space
// indent via the yaml.v3 encoder. Readers and writers hold file handles and
// must be closed; Close is idempotent.
package serializer
