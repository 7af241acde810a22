/*
Copyright © 2025 Benjamin Haase
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/BenjaminHaaseT/recipe-api/pkg/document"
	"github.com/BenjaminHaaseT/recipe-api/pkg/recipe"
	"github.com/BenjaminHaaseT/recipe-api/pkg/serializer"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate recipe documents for completeness",
		ArgsUsage:             "FILE [FILE...]",
		Description: `Validate one or more recipe documents.

Each file is decoded and run through the recipe builder, which checks the
six mandatory fields (id, name, difficulty, duration, description,
directions) in order and reports the first one a document lacks. Envelope
problems (wrong kind, unsupported apiVersion, malformed UUIDs) are reported
as well. The result is a ValidationReport document with one entry per file
and a summary.

Files are validated concurrently; each validation owns its own builder.

# Examples

Validate a single recipe:
  recipectl validate recipe.yaml

Validate many recipes and write the report to a file:
  recipectl validate recipes/*.yaml -o report.yaml

Fail the command if any document is invalid (useful for CI):
  recipectl validate recipes/*.yaml --fail-on-error`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any document is invalid",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("at least one FILE argument is required")
			}

			slog.Info("validating documents", "count", len(paths))

			// One result slot per file; each goroutine owns its slot and
			// its builder, so no state is shared across validations.
			results := make([]document.FileResult, len(paths))
			g, _ := errgroup.WithContext(ctx)
			for i, path := range paths {
				i, path := i, path
				g.Go(func() error {
					results[i] = checkDocument(path)
					return nil
				})
			}
			_ = g.Wait()

			report := document.NewValidationReport(version, results)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to serialize validation report: %w", err)
			}

			slog.Info("validation completed",
				"total", report.Summary.Total,
				"valid", report.Summary.Valid,
				"invalid", report.Summary.Invalid)

			if cmd.Bool("fail-on-error") && report.Summary.Invalid > 0 {
				return fmt.Errorf("validation failed: %d of %d document(s) invalid",
					report.Summary.Invalid, report.Summary.Total)
			}

			return nil
		},
	}
}

// checkDocument loads one file and runs it through the builder path.
func checkDocument(path string) document.FileResult {
	doc, err := serializer.FromFile[document.Document](path)
	if err != nil {
		return document.FileResult{
			Source:  path,
			Status:  document.StatusInvalid,
			Message: err.Error(),
		}
	}

	if _, err := doc.Recipe(); err != nil {
		result := document.FileResult{
			Source:  path,
			Status:  document.StatusInvalid,
			Message: err.Error(),
		}

		var mfe *recipe.MissingFieldError
		if errors.As(err, &mfe) {
			result.MissingField = mfe.Field.String()
		}
		return result
	}

	return document.FileResult{
		Source: path,
		Status: document.StatusValid,
	}
}
