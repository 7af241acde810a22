/*
Copyright © 2025 Benjamin Haase
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/BenjaminHaaseT/recipe-api/pkg/document"
	"github.com/BenjaminHaaseT/recipe-api/pkg/recipe"
	"github.com/BenjaminHaaseT/recipe-api/pkg/serializer"
)

func newCmd() *cli.Command {
	return &cli.Command{
		Name:                  "new",
		EnableShellCompletion: true,
		Usage:                 "Scaffold a well-formed recipe document",
		Description: `Create a new recipe document from flag values.

A fresh recipe id is generated, and the recipe is built through the same
builder that validation uses, so the emitted document is guaranteed
complete. When a mandatory flag is missing, the command fails with the
builder's error naming the missing field.

# Examples

Write a recipe to stdout as YAML:
  recipectl new --name Pancakes --difficulty easy --duration 15 \
    --description "Fluffy pancakes" --directions "Mix and fry." \
    --tag breakfast --tag sweet

Write a recipe document to a JSON file:
  recipectl new --name Pancakes --difficulty easy --duration 15 \
    --description "Fluffy pancakes" --directions "Mix and fry." \
    -t json -o pancakes.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Recipe name",
			},
			&cli.StringFlag{
				Name: "difficulty",
				Usage: fmt.Sprintf("Preparation difficulty (supported values: %s)",
					recipe.SupportedDifficulties()),
			},
			&cli.StringFlag{
				Name:  "duration",
				Usage: "Preparation time in minutes (0-65535)",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Recipe description",
			},
			&cli.StringFlag{
				Name:  "directions",
				Usage: "Preparation directions",
			},
			&cli.StringSliceFlag{
				Name:  "tag",
				Usage: "Tag to attach (repeatable)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			// Recipe ids are caller-supplied; here the CLI is the caller.
			builder := recipe.NewBuilder().WithID(uuid.New())

			if v := cmd.String("name"); v != "" {
				builder.WithName(v)
			}
			if v := cmd.String("difficulty"); v != "" {
				difficulty, err := recipe.ParseDifficulty(v)
				if err != nil {
					return fmt.Errorf("difficulty: %q, supported values: %v",
						v, recipe.SupportedDifficulties())
				}
				builder.WithDifficulty(difficulty)
			}
			if v := cmd.String("duration"); v != "" {
				minutes, err := strconv.ParseUint(v, 10, 16)
				if err != nil {
					return fmt.Errorf("invalid duration %q: want minutes in 0-65535", v)
				}
				builder.WithDuration(uint16(minutes))
			}
			if v := cmd.String("description"); v != "" {
				builder.WithDescription(v)
			}
			if v := cmd.String("directions"); v != "" {
				builder.WithDirections(v)
			}
			for _, t := range cmd.StringSlice("tag") {
				builder.AddTag(recipe.Tag(t))
			}

			r, err := builder.Build()
			if err != nil {
				return err
			}

			doc := document.FromRecipe(r, document.WithToolVersion(version))

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, doc); err != nil {
				return fmt.Errorf("failed to serialize recipe document: %w", err)
			}

			slog.Info("recipe created", "id", r.ID().String(), "name", r.Name())
			return nil
		},
	}
}
