/*
Copyright © 2025 Plateful Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/plateful/mealgen/pkg/bundler"
	"github.com/plateful/mealgen/pkg/dietary"
	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
	"github.com/plateful/mealgen/pkg/planner"
	"github.com/plateful/mealgen/pkg/serializer"
)

var (
	typesFlag = &cli.StringSliceFlag{
		Name:  "types",
		Usage: "meal types to include (default: all)",
	}

	exportFlag = &cli.StringFlag{
		Name:  "export",
		Usage: "directory to export one plan file per day (skips stdout output)",
	}
)

func planCmd() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Generate calendar meal plans",
		Commands: []*cli.Command{
			{
				Name:  "week",
				Usage: "Generate a 7-day meal plan",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "start",
						Aliases: []string{"s"},
						Usage:   "start date in YYYY-MM-DD form (default: today)",
					},
					typesFlag,
					catalogFlag,
					restrictFlag,
					seedFlag,
					exportFlag,
					outputFlag,
					formatFlag,
				},
				Action: weekPlanAction,
			},
			{
				Name:  "month",
				Usage: "Generate a sparse monthly meal plan",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "month",
						Aliases: []string{"m"},
						Usage:   "month in YYYY-MM form (default: current month)",
					},
					typesFlag,
					catalogFlag,
					restrictFlag,
					seedFlag,
					exportFlag,
					outputFlag,
					formatFlag,
				},
				Action: monthPlanAction,
			},
		},
	}
}

func weekPlanAction(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	if s := cmd.String("start"); s != "" {
		var err error
		start, err = time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("invalid start date %q, expected YYYY-MM-DD: %w", s, err)
		}
	}

	return runPlan(ctx, cmd, func(p *planner.Planner, in planInputs) (map[time.Time]*planner.MealPlan, error) {
		return p.GenerateWeeklyPlan(ctx, start, in.materials, in.types, in.restrictions)
	})
}

func monthPlanAction(ctx context.Context, cmd *cli.Command) error {
	month := time.Now()
	if s := cmd.String("month"); s != "" {
		var err error
		month, err = time.Parse("2006-01", s)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
		}
	}

	return runPlan(ctx, cmd, func(p *planner.Planner, in planInputs) (map[time.Time]*planner.MealPlan, error) {
		return p.GenerateMonthlyPlan(ctx, month, in.materials, in.types, in.restrictions)
	})
}

type planInputs struct {
	materials    []material.Material
	types        []mealtype.MealType
	restrictions []dietary.Restriction
}

func runPlan(ctx context.Context, cmd *cli.Command,
	generate func(*planner.Planner, planInputs) (map[time.Time]*planner.MealPlan, error)) error {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", format)
	}

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	types, err := mealtype.ParseList(cmd.StringSlice("types"))
	if err != nil {
		return err
	}

	in := planInputs{
		materials:    catalog.Available(),
		types:        types,
		restrictions: dietary.Parse(cmd.StringSlice("restrict")),
	}

	plans, err := generate(plannerFromFlags(cmd), in)
	if err != nil {
		return err
	}

	if dir := cmd.String("export"); dir != "" {
		store := planner.NewMemoryStore()
		for _, plan := range plans {
			if err := store.SavePlan(ctx, plan); err != nil {
				return err
			}
		}
		exporter := bundler.New(bundler.WithFormat(format))
		return exporter.Export(ctx, dir, store.Plans())
	}

	writer := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer writer.Close()

	return writer.Serialize(ctx, plansByDate(plans))
}

// plansByDate keys plans by date string so serialized output is stable
// and readable regardless of format.
func plansByDate(plans map[time.Time]*planner.MealPlan) map[string]*planner.MealPlan {
	out := make(map[string]*planner.MealPlan, len(plans))
	for date, plan := range plans {
		out[date.Format("2006-01-02")] = plan
	}
	return out
}
