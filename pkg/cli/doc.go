// Package cli implements the command-line interface for the plateful tool.
//
// # Overview
//
// The plateful CLI generates meal suggestions and calendar meal plans from a
// catalog of available raw materials, honoring meal-type composition rules and
// dietary restrictions.
//
// # Commands
//
// materials - Inspect and validate a catalog:
//
//	plateful materials list [--catalog FILE] [--restrict vegan] [--available]
//	plateful materials validate [--catalog FILE]
//
// Lists catalog materials, optionally filtered by availability and dietary
// restrictions, or validates catalog structure (unique ids, known categories).
//
// meal - Generate meal suggestions:
//
//	plateful meal --type dinner --count 3 [--restrict vegetarian] [--seed 42]
//	plateful meal --type lunch --require chicken-breast --require broccoli
//
// Generates distinct meal suggestions for one meal type. With --require, a
// single meal is built around the named catalog materials; the command fails
// when the required materials conflict with the active restrictions.
//
// plan - Generate calendar plans:
//
//	plateful plan week --start 2025-06-02 [--types breakfast,dinner]
//	plateful plan month --month 2025-06 --export ./plans --format json
//
// Assembles daily plans into a 7-day week or a sparse month. With --export,
// one file per planned day is written into the given directory instead of
// serializing the whole plan set to stdout.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//
// # Determinism
//
// All generating commands accept --seed; the same seed, catalog, and flags
// produce the same meals. Without a seed, generation uses a system-seeded
// random source.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/material - catalog loading and validation
//   - pkg/planner - meal and plan generation pipeline
//   - pkg/bundler - per-day plan export
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/plateful/mealgen/pkg/cli.version=1.0.0'"
package cli
