/*
Copyright © 2025 Plateful Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/plateful/mealgen/pkg/logging"
	"github.com/plateful/mealgen/pkg/serializer"
)

const name = "plateful"

// overridden during build with ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %s)", serializer.SupportedFormats()),
	}

	catalogFlag = &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "path to a materials catalog file, yaml or json (default: built-in demo catalog)",
	}

	restrictFlag = &cli.StringSliceFlag{
		Name:  "restrict",
		Usage: "dietary restriction keywords (e.g. vegetarian, vegan, pescatarian, gluten-free)",
	}

	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed for deterministic generation (0 uses a system-seeded source)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:   "Generate meal suggestions and calendar meal plans from available materials",
		Description: `plateful combines available raw materials into meal suggestions, subject to
meal-type composition rules and dietary restrictions, and assembles them
into calendar-keyed plans.

Commands:
  materials - inspect and validate a materials catalog
  meal      - generate meal suggestions for one meal type
  plan      - generate weekly or monthly meal plans`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			materialsCmd(),
			mealCmd(),
			planCmd(),
		},
	}
}

// Run executes the CLI with the given arguments. It handles SIGINT/SIGTERM
// for graceful cancellation. This is called by main.main().
func Run(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	return rootCmd().Run(ctx, args)
}
