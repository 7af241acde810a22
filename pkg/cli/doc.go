/*
Copyright © 2025 Benjamin Haase
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the recipectl command line interface.
//
// Commands:
//
//   - new: scaffold a well-formed recipe document from flags
//   - validate: check recipe documents for completeness and emit a
//     ValidationReport
//
// All commands read input from flags and arguments, log through slog, and
// write documents through pkg/serializer in JSON or YAML.
package cli
