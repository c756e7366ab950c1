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

package bundler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plateful/mealgen/pkg/planner"
	"github.com/plateful/mealgen/pkg/serializer"
)

func testPlans() map[time.Time]*planner.MealPlan {
	d1 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	return map[time.Time]*planner.MealPlan{
		d1: {ID: "p1", Date: d1},
		d2: {ID: "p2", Date: d2},
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	e := New(WithFormat(serializer.FormatJSON))

	if err := e.Export(context.Background(), dir, testPlans()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	for _, name := range []string{"plan-2025-06-02.json", "plan-2025-06-03.json"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected export file %s: %v", name, err)
		}

		plan, err := serializer.FromFile[planner.MealPlan](path)
		if err != nil {
			t.Errorf("failed to read back %s: %v", name, err)
			continue
		}
		if plan.ID == "" {
			t.Errorf("%s: round trip lost plan id", name)
		}
	}
}

func TestExportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plans")
	e := New()

	if err := e.Export(context.Background(), dir, testPlans()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("export dir missing: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 exported files, got %d", len(entries))
	}
}

func TestExportEmptyPlans(t *testing.T) {
	// no plans, no directory
	dir := filepath.Join(t.TempDir(), "never-created")
	e := New()

	if err := e.Export(context.Background(), dir, nil); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("expected no directory for empty plan set")
	}
}

func TestExportCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New()
	if err := e.Export(ctx, t.TempDir(), testPlans()); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestFileName(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		format serializer.Format
		want   string
	}{
		{serializer.FormatYAML, "plan-2025-06-02.yaml"},
		{serializer.FormatJSON, "plan-2025-06-02.json"},
		{serializer.FormatTable, "plan-2025-06-02.txt"},
	}

	for _, tt := range tests {
		e := New(WithFormat(tt.format))
		if got := e.fileName(date); got != tt.want {
			t.Errorf("fileName(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
