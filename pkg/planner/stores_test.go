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

package planner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plateful/mealgen/pkg/errors"
	"github.com/plateful/mealgen/pkg/mealtype"
	"github.com/plateful/mealgen/pkg/synthesizer"
)

func TestMemoryStoreMeals(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	meal := &synthesizer.Meal{ID: "m1", Name: "Evening Chicken", Type: mealtype.Dinner}
	if err := store.SaveMeal(ctx, meal); err != nil {
		t.Fatalf("SaveMeal() error = %v", err)
	}

	got, err := store.GetMeal(ctx, "m1")
	if err != nil {
		t.Fatalf("GetMeal() error = %v", err)
	}
	if got.Name != "Evening Chicken" {
		t.Errorf("GetMeal() = %+v", got)
	}

	// replace by id
	updated := &synthesizer.Meal{ID: "m1", Name: "Evening Salmon", Type: mealtype.Dinner}
	if err := store.SaveMeal(ctx, updated); err != nil {
		t.Fatalf("SaveMeal() replace error = %v", err)
	}
	got, err = store.GetMeal(ctx, "m1")
	if err != nil {
		t.Fatalf("GetMeal() after replace error = %v", err)
	}
	if got.Name != "Evening Salmon" {
		t.Errorf("expected replacement, got %+v", got)
	}
}

func TestMemoryStoreMealNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetMeal(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing meal")
	}
	if code := errCode(t, err); code != errors.ErrCodeNotFound {
		t.Errorf("error code = %q, want %q", code, errors.ErrCodeNotFound)
	}
}

func TestMemoryStoreSaveMealInvalid(t *testing.T) {
	store := NewMemoryStore()

	if err := store.SaveMeal(context.Background(), nil); err == nil {
		t.Error("expected error for nil meal")
	}
	if err := store.SaveMeal(context.Background(), &synthesizer.Meal{}); err == nil {
		t.Error("expected error for meal without id")
	}
}

func TestMemoryStorePlans(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	plan := &MealPlan{ID: "p1", Date: date}
	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	// lookup normalizes the date
	afternoon := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	got, err := store.GetPlan(ctx, afternoon)
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if got.ID != "p1" {
		t.Errorf("GetPlan() = %+v", got)
	}

	// last write wins per date
	replacement := &MealPlan{ID: "p2", Date: afternoon}
	if err := store.SavePlan(ctx, replacement); err != nil {
		t.Fatalf("SavePlan() replace error = %v", err)
	}
	got, err = store.GetPlan(ctx, date)
	if err != nil {
		t.Fatalf("GetPlan() after replace error = %v", err)
	}
	if got.ID != "p2" {
		t.Errorf("expected p2 after replacement, got %q", got.ID)
	}

	if plans := store.Plans(); len(plans) != 1 {
		t.Errorf("expected 1 stored plan, got %d", len(plans))
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.SavePlan(ctx, &MealPlan{ID: "p", Date: date})
			_, _ = store.GetPlan(ctx, date)
		}()
	}
	wg.Wait()

	if _, err := store.GetPlan(ctx, date); err != nil {
		t.Errorf("GetPlan() after concurrent writes error = %v", err)
	}
}
