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
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plateful/mealgen/pkg/dietary"
	"github.com/plateful/mealgen/pkg/errors"
	"github.com/plateful/mealgen/pkg/generator"
	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
	"github.com/plateful/mealgen/pkg/scorer"
	"github.com/plateful/mealgen/pkg/synthesizer"
)

// Planner orchestrates the single-meal pipeline (filter, generate, score,
// synthesize) and assembles results into date-keyed meal plans. It holds no
// mutable state between calls: each generation call allocates its own
// used-combination set, so concurrent calls proceed independently and any
// same-date write serialization is the persistence collaborator's problem.
type Planner struct {
	gen   *generator.Generator
	synth *synthesizer.Synthesizer
	clock func() time.Time
	seed  *uint64
}

// Option is a functional option for configuring the Planner.
type Option func(*Planner)

// WithGenerator sets the combination generator.
func WithGenerator(g *generator.Generator) Option {
	return func(p *Planner) {
		p.gen = g
	}
}

// WithSynthesizer sets the meal synthesizer.
func WithSynthesizer(s *synthesizer.Synthesizer) Option {
	return func(p *Planner) {
		p.synth = s
	}
}

// WithSeed derives the generator's random source from one seed, for
// repeatable runs. A generator supplied via WithGenerator takes precedence
// regardless of option order.
func WithSeed(seed uint64) Option {
	return func(p *Planner) {
		p.seed = &seed
	}
}

// WithClock sets the time source used for plan timestamps.
func WithClock(clock func() time.Time) Option {
	return func(p *Planner) {
		p.clock = clock
	}
}

// New creates a new Planner with the provided options.
func New(opts ...Option) *Planner {
	p := &Planner{
		clock: time.Now,
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}

	if p.gen == nil {
		if p.seed != nil {
			p.gen = generator.New(generator.WithSeed(*p.seed))
		} else {
			p.gen = generator.New()
		}
	}
	if p.synth == nil {
		p.synth = synthesizer.New()
	}
	return p
}

// GenerateMeals runs the single-meal pipeline count times for the meal type,
// accumulating each selected combination's id-set into a call-scoped
// used-combination set so no two returned meals share an identical ingredient
// set. An iteration whose search produces no valid combination yields no meal
// for that slot, so the result may be shorter than count. An empty material
// pool before filtering is an error.
func (p *Planner) GenerateMeals(ctx context.Context, materials []material.Material, mt mealtype.MealType, count int, restrictions []dietary.Restriction) ([]synthesizer.Meal, error) {
	if len(materials) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "failed to generate meals: material pool is empty")
	}

	start := p.clock()
	defer func() {
		generateDuration.Observe(time.Since(start).Seconds())
	}()

	pool := dietary.Filter(materials, restrictions)
	used := generator.NewUsedCombinations()

	meals := make([]synthesizer.Meal, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeGenerationFailed, "failed to generate meals", err)
		}

		best, ok := p.selectCombination(pool, mt, used, nil)
		if !ok {
			slotsExhausted.Inc()
			slog.Debug("no valid combination for slot",
				"meal_type", mt.String(),
				"slot", i,
				"pool_size", len(pool),
			)
			continue
		}

		used.Add(best)
		meals = append(meals, p.synth.Synthesize(best, mt))
		mealsGenerated.Inc()
	}
	return meals, nil
}

// GenerateCustomMeal runs the single-meal pipeline once with the required
// materials forced into every candidate combination. Additional materials
// extend the working pool. Restrictions filter the whole working pool,
// required materials included: when a restriction excludes a required
// material, no meal is produced (nil result, nil error).
func (p *Planner) GenerateCustomMeal(ctx context.Context, required []material.Material, mt mealtype.MealType, additional []material.Material, restrictions []dietary.Restriction) (*synthesizer.Meal, error) {
	if len(required) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "failed to generate custom meal: no required materials given")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, "failed to generate custom meal", err)
	}

	start := p.clock()
	defer func() {
		generateDuration.Observe(time.Since(start).Seconds())
	}()

	requiredPool := dietary.Filter(required, restrictions)
	if len(requiredPool) < len(required) {
		slog.Warn("required material excluded by dietary restriction; no meal produced",
			"meal_type", mt.String(),
			"required", len(required),
			"surviving", len(requiredPool),
		)
		slotsExhausted.Inc()
		return nil, nil
	}

	pool := dietary.Filter(append(append([]material.Material(nil), required...), additional...), restrictions)

	best, ok := p.selectCombination(pool, mt, generator.NewUsedCombinations(), requiredPool)
	if !ok {
		slotsExhausted.Inc()
		return nil, nil
	}

	meal := p.synth.Synthesize(best, mt)
	mealsGenerated.Inc()
	return &meal, nil
}

// GenerateWeeklyPlan generates one plan per day for the 7 consecutive dates
// from start. Each (date, meal type) slot runs a fresh single-meal pipeline
// with its own used-combination scope, so repeats across days are possible.
// A date appears in the result only when at least one of the included meal
// types produced a meal for it.
func (p *Planner) GenerateWeeklyPlan(ctx context.Context, start time.Time, materials []material.Material, included []mealtype.MealType, restrictions []dietary.Restriction) (map[time.Time]*MealPlan, error) {
	if len(materials) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "failed to generate weekly plan: material pool is empty")
	}
	if len(included) == 0 {
		included = mealtype.All()
	}

	first := NormalizeDate(start)
	plans := make(map[time.Time]*MealPlan, 7)
	for day := 0; day < 7; day++ {
		date := first.AddDate(0, 0, day)

		plan, err := p.generateDayPlan(ctx, date, materials, included, restrictions)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeGenerationFailed, "failed to generate weekly plan", err)
		}
		if plan != nil {
			plans[date] = plan
		}
	}

	slog.Debug("weekly plan generated",
		"start", first.Format(time.DateOnly),
		"days", len(plans),
		"meal_types", len(included),
	)
	return plans, nil
}

// GenerateMonthlyPlan iterates the calendar days of the given month, skipping
// Saturdays and Sundays. For each remaining day it delegates to
// GenerateWeeklyPlan anchored at that day, keeps only that day's entry, then
// advances six extra days before continuing.
//
// Net effect: at most one plan per 7-day block. This sparsity mirrors the
// behavior the product shipped with and is kept as-is pending clarification;
// callers wanting a fully populated month should call GenerateWeeklyPlan per
// week instead.
func (p *Planner) GenerateMonthlyPlan(ctx context.Context, month time.Time, materials []material.Material, included []mealtype.MealType, restrictions []dietary.Restriction) (map[time.Time]*MealPlan, error) {
	if len(materials) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "failed to generate monthly plan: material pool is empty")
	}

	year, m, _ := month.Date()
	first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	plans := make(map[time.Time]*MealPlan)
	for day := 1; day <= daysInMonth; {
		date := time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
		if isWeekend(date) {
			day++
			continue
		}

		week, err := p.GenerateWeeklyPlan(ctx, date, materials, included, restrictions)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeGenerationFailed, "failed to generate monthly plan", err)
		}
		if plan, ok := week[date]; ok {
			plans[date] = plan
		}

		// Skip ahead a full week so overlapping weeks are not regenerated.
		day += 7
	}

	slog.Debug("monthly plan generated",
		"month", first.Format("2006-01"),
		"days", len(plans),
	)
	return plans, nil
}

// generateDayPlan fills one plan for the date, one slot per included meal
// type. Returns nil when no slot produced a meal.
func (p *Planner) generateDayPlan(ctx context.Context, date time.Time, materials []material.Material, included []mealtype.MealType, restrictions []dietary.Restriction) (*MealPlan, error) {
	now := p.clock().UTC()
	plan := &MealPlan{
		ID:        uuid.NewString(),
		Date:      date,
		Meals:     make(map[mealtype.MealType]*synthesizer.Meal, len(included)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	filled := false
	for _, mt := range included {
		meals, err := p.GenerateMeals(ctx, materials, mt, 1, restrictions)
		if err != nil {
			return nil, err
		}
		if len(meals) > 0 {
			meal := meals[0]
			plan.Meals[mt] = &meal
			filled = true
		}
	}

	if !filled {
		return nil, nil
	}
	return plan, nil
}

// selectCombination generates candidates and picks the best one.
func (p *Planner) selectCombination(pool []material.Material, mt mealtype.MealType, used generator.UsedCombinations, required []material.Material) (generator.Combination, bool) {
	candidates := p.gen.Generate(pool, mt, used, required)
	return scorer.SelectBest(candidates, mt)
}
