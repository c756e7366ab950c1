/*
Copyright © 2025 Plateful Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/plateful/mealgen/pkg/dietary"
	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
	"github.com/plateful/mealgen/pkg/planner"
	"github.com/plateful/mealgen/pkg/serializer"
)

func mealCmd() *cli.Command {
	return &cli.Command{
		Name:  "meal",
		Usage: "Generate meal suggestions for one meal type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"m"},
				Value:   mealtype.Dinner.String(),
				Usage:   fmt.Sprintf("meal type (supported values: %s)", mealtype.All()),
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "number of distinct suggestions to generate",
			},
			&cli.StringSliceFlag{
				Name:    "require",
				Aliases: []string{"r"},
				Usage:   "material ids that must appear in the meal",
			},
			catalogFlag,
			restrictFlag,
			seedFlag,
			outputFlag,
			formatFlag,
		},
		Action: mealAction,
	}
}

func plannerFromFlags(cmd *cli.Command) *planner.Planner {
	var opts []planner.Option
	if seed := cmd.Uint64("seed"); seed != 0 {
		opts = append(opts, planner.WithSeed(seed))
	}
	return planner.New(opts...)
}

func mealAction(ctx context.Context, cmd *cli.Command) error {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	mt, err := mealtype.Parse(cmd.String("type"))
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	pool := catalog.Available()
	restrictions := dietary.Parse(cmd.StringSlice("restrict"))
	p := plannerFromFlags(cmd)

	writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer writer.Close()

	if required := cmd.StringSlice("require"); len(required) > 0 {
		meal, err := p.GenerateCustomMeal(ctx, resolveMaterials(catalog, required), mt, pool, restrictions)
		if err != nil {
			return err
		}
		if meal == nil {
			return fmt.Errorf("required materials conflict with restrictions: %s",
				strings.Join(required, ", "))
		}
		return writer.Serialize(ctx, meal)
	}

	meals, err := p.GenerateMeals(ctx, pool, mt, cmd.Int("count"), restrictions)
	if err != nil {
		return err
	}
	return writer.Serialize(ctx, meals)
}

// resolveMaterials maps catalog ids to materials, skipping unknown ids.
func resolveMaterials(catalog *material.Catalog, ids []string) []material.Material {
	list := make([]material.Material, 0, len(ids))
	for _, id := range ids {
		if m, ok := catalog.ByID(strings.TrimSpace(id)); ok {
			list = append(list, m)
		}
	}
	return list
}
