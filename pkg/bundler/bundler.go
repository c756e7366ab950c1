// Copyright (c) 2025, Plateful Authors.  All rights reserved.
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

// Package bundler exports generated meal plans to per-date files. Plans are
// immutable by the time they reach the bundler, so the file writes fan out
// concurrently.
package bundler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plateful/mealgen/pkg/defaults"
	"github.com/plateful/mealgen/pkg/errors"
	"github.com/plateful/mealgen/pkg/planner"
	"github.com/plateful/mealgen/pkg/serializer"
)

// Exporter writes plan sets to a directory, one file per plan date.
type Exporter struct {
	format serializer.Format
}

// Option is a functional option for configuring the Exporter.
type Option func(*Exporter)

// WithFormat sets the output file format. Defaults to YAML.
func WithFormat(format serializer.Format) Option {
	return func(e *Exporter) {
		if !format.IsUnknown() {
			e.format = format
		}
	}
}

// New creates a new Exporter with the provided options.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		format: serializer.FormatYAML,
	}

	// Apply options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Export writes one file per plan into dir, named plan-YYYY-MM-DD.<ext>.
// The directory is created if needed. Files are written concurrently; the
// first write error cancels the remaining writes.
func (e *Exporter) Export(ctx context.Context, dir string, plans map[time.Time]*planner.MealPlan) error {
	if len(plans) == 0 {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to create export directory", err)
	}

	exportCtx, cancel := context.WithTimeout(ctx, defaults.ExportTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(exportCtx)
	for date, plan := range plans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, e.fileName(date))
			if err := e.writePlan(gctx, path, plan); err != nil {
				return fmt.Errorf("failed to export plan for %s: %w", date.Format(time.DateOnly), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "plan export failed", err)
	}

	slog.Info("plans exported",
		"dir", dir,
		"count", len(plans),
		"format", string(e.format),
	)
	return nil
}

func (e *Exporter) fileName(date time.Time) string {
	ext := string(e.format)
	if e.format == serializer.FormatTable {
		ext = "txt"
	}
	return fmt.Sprintf("plan-%s.%s", date.Format(time.DateOnly), ext)
}

func (e *Exporter) writePlan(ctx context.Context, path string, plan *planner.MealPlan) error {
	w := serializer.NewFileWriterOrStdout(e.format, path)
	defer w.Close()
	return w.Serialize(ctx, plan)
}
