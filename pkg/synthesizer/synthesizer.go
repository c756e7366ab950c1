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

// Package synthesizer derives presentable Meal records from winning
// combinations. All derivations are pure functions of the combination and
// meal type; the only non-determinism is the generated meal id and the
// creation timestamp, both injectable for tests.
package synthesizer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateful/mealgen/pkg/defaults"
	"github.com/plateful/mealgen/pkg/generator"
	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
)

// Per-material preparation time weights in minutes by category.
var prepWeights = map[material.Category]int{
	material.CategoryMeat:       20,
	material.CategoryPoultry:    20,
	material.CategorySeafood:    15,
	material.CategoryVegetables: 10,
	material.CategoryGrains:     15,
}

const prepWeightOther = 5

// Per-material calorie weights by category.
var calorieWeights = map[material.Category]int{
	material.CategoryMeat:       200,
	material.CategoryPoultry:    200,
	material.CategorySeafood:    150,
	material.CategoryDairy:      100,
	material.CategoryGrains:     150,
	material.CategoryVegetables: 30,
}

const calorieWeightOther = 10

// Synthesizer builds Meal records from combinations.
type Synthesizer struct {
	clock func() time.Time
	newID func() string
}

// Option is a functional option for configuring the Synthesizer.
type Option func(*Synthesizer)

// WithClock sets the time source used for meal creation timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Synthesizer) {
		s.clock = clock
	}
}

// WithIDFunc sets the id generator used for new meals.
func WithIDFunc(newID func() string) Option {
	return func(s *Synthesizer) {
		s.newID = newID
	}
}

// New creates a new Synthesizer with the provided options.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		clock: time.Now,
		newID: func() string { return uuid.NewString() },
	}

	// Apply options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Synthesize derives a Meal from the winning combination for the meal type.
func (s *Synthesizer) Synthesize(c generator.Combination, mt mealtype.MealType) Meal {
	return Meal{
		ID:              s.newID(),
		Name:            mealName(c, mt),
		Description:     mealDescription(c, mt),
		Materials:       append([]material.Material(nil), c.Materials...),
		Type:            mt,
		PrepTimeMinutes: prepTime(c, mt),
		Instructions:    instructions(c),
		CreatedAt:       s.clock().UTC(),
		Calories:        calories(c, mt),
		Tags:            mealTags(c, mt),
	}
}

// mealName builds the meal name from up to two main ingredients (protein
// sources or vegetables) in combination order, prefixed with the meal type
// label. Combinations without a main ingredient fall back to a generic bowl.
func mealName(c generator.Combination, mt mealtype.MealType) string {
	var mains []string
	for _, m := range c.Materials {
		if m.Category.IsProteinLike() || m.Category == material.CategoryVegetables {
			mains = append(mains, m.Name)
			if len(mains) == 2 {
				break
			}
		}
	}

	switch len(mains) {
	case 0:
		return fmt.Sprintf("%s Bowl", mt.DisplayName())
	case 1:
		return fmt.Sprintf("%s %s", mt.Label(), mains[0])
	default:
		return fmt.Sprintf("%s %s and %s", mt.Label(), mains[0], mains[1])
	}
}

func mealDescription(c generator.Combination, mt mealtype.MealType) string {
	names := make([]string, 0, len(c.Materials))
	for _, m := range c.Materials {
		names = append(names, strings.ToLower(m.Name))
	}
	return fmt.Sprintf("A delicious %s featuring %s.", mt.String(), strings.Join(names, ", "))
}

// instructions builds the numbered step list: a protein-cooking step when a
// protein source is present, a vegetable-prep step when vegetables are
// present, then the combine and serve steps always.
func instructions(c generator.Combination) []string {
	var proteins, vegetables []string
	for _, m := range c.Materials {
		switch {
		case m.Category.IsProteinLike():
			proteins = append(proteins, strings.ToLower(m.Name))
		case m.Category == material.CategoryVegetables:
			vegetables = append(vegetables, strings.ToLower(m.Name))
		}
	}

	var steps []string
	if len(proteins) > 0 {
		steps = append(steps, fmt.Sprintf("Season and cook the %s until done.", strings.Join(proteins, " and ")))
	}
	if len(vegetables) > 0 {
		steps = append(steps, fmt.Sprintf("Wash and chop the %s.", strings.Join(vegetables, " and ")))
	}
	steps = append(steps,
		"Combine all ingredients and season to taste.",
		"Plate and serve.",
	)

	numbered := make([]string, len(steps))
	for i, step := range steps {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, step)
	}
	return numbered
}

func prepTime(c generator.Combination, mt mealtype.MealType) int {
	minutes := defaults.BasePrepMinutes
	for _, m := range c.Materials {
		if w, ok := prepWeights[m.Category]; ok {
			minutes += w
		} else {
			minutes += prepWeightOther
		}
	}

	scaled := float64(minutes)
	switch mt {
	case mealtype.Breakfast:
		scaled *= 0.8
	case mealtype.Snack:
		scaled *= 0.5
	}
	return clamp(int(math.Round(scaled)), defaults.MinPrepMinutes, defaults.MaxPrepMinutes)
}

func calories(c generator.Combination, mt mealtype.MealType) int {
	total := 0
	for _, m := range c.Materials {
		if w, ok := calorieWeights[m.Category]; ok {
			total += w
		} else {
			total += calorieWeightOther
		}
	}

	scaled := float64(total)
	switch mt {
	case mealtype.Breakfast:
		scaled *= 0.8
	case mealtype.Snack:
		scaled *= 0.4
	}
	return clamp(int(math.Round(scaled)), defaults.MinCalories, defaults.MaxCalories)
}

// mealTags derives the tag set: meal type, distinct category display names in
// combination order, "vegetarian" when no meat or seafood is present, and
// additionally "vegan" when no dairy is present either.
func mealTags(c generator.Combination, mt mealtype.MealType) []string {
	tags := []string{mt.String()}
	for _, cat := range c.DistinctCategories() {
		tags = append(tags, cat.DisplayName())
	}

	if !c.HasCategory(material.CategoryMeat) && !c.HasCategory(material.CategorySeafood) {
		tags = append(tags, "vegetarian")
		if !c.HasCategory(material.CategoryDairy) {
			tags = append(tags, "vegan")
		}
	}
	return tags
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
