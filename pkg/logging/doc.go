// Package logging provides structured logging utilities for recipe-api
// components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON output to stderr, module/version context on every record, and
// environment-based level configuration via LOG_LEVEL. Debug level adds
// source location tracking.
//
// # Log Levels
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipectl", version)
//
//	    slog.Info("validating documents", "count", len(paths))
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("recipectl", version, "debug")
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("recipectl", "v1.0.0", "warn")
//	logger.Warn("document invalid", "path", path)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is configured:
//
//	LOG_LEVEL=debug recipectl validate recipe.yaml
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-08-25T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "document valid",
//	    "module": "recipectl",
//	    "version": "v1.0.0",
//	    "path": "recipe.yaml"
//	}
package logging
