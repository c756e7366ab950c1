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
	"time"

	"github.com/plateful/mealgen/pkg/errors"
	"github.com/plateful/mealgen/pkg/synthesizer"
)

// MealStore is the persistence collaborator contract for meals. Stores
// accept meals with insert-or-replace-by-id semantics; replacement is the
// only mutation a meal ever sees. Store errors pass through this core
// unchanged.
type MealStore interface {
	SaveMeal(ctx context.Context, meal *synthesizer.Meal) error
	GetMeal(ctx context.Context, id string) (*synthesizer.Meal, error)
}

// PlanStore is the persistence collaborator contract for meal plans. Stores
// accept plans with insert-or-replace-by-normalized-date semantics and are
// responsible for serializing concurrent writes for the same date
// (last write wins).
type PlanStore interface {
	SavePlan(ctx context.Context, plan *MealPlan) error
	GetPlan(ctx context.Context, date time.Time) (*MealPlan, error)
}

// MemoryStore is an in-process MealStore and PlanStore for tests, demos,
// and the CLI. Access is guarded by a mutex; last write wins per id/date.
type MemoryStore struct {
	mu    sync.RWMutex
	meals map[string]*synthesizer.Meal
	plans map[time.Time]*MealPlan
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		meals: make(map[string]*synthesizer.Meal),
		plans: make(map[time.Time]*MealPlan),
	}
}

// SaveMeal inserts or replaces the meal by id.
func (s *MemoryStore) SaveMeal(_ context.Context, meal *synthesizer.Meal) error {
	if meal == nil || meal.ID == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "meal must have an id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meals[meal.ID] = meal
	return nil
}

// GetMeal returns the meal with the given id.
func (s *MemoryStore) GetMeal(_ context.Context, id string) (*synthesizer.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meal, ok := s.meals[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "meal not found")
	}
	return meal, nil
}

// SavePlan inserts or replaces the plan keyed by its normalized date.
func (s *MemoryStore) SavePlan(_ context.Context, plan *MealPlan) error {
	if plan == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "plan cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[NormalizeDate(plan.Date)] = plan
	return nil
}

// GetPlan returns the plan for the normalized date.
func (s *MemoryStore) GetPlan(_ context.Context, date time.Time) (*MealPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[NormalizeDate(date)]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "plan not found")
	}
	return plan, nil
}

// Plans returns all stored plans keyed by normalized date.
func (s *MemoryStore) Plans() map[time.Time]*MealPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[time.Time]*MealPlan, len(s.plans))
	for k, v := range s.plans {
		out[k] = v
	}
	return out
}
