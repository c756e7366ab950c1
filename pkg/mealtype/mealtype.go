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

// Package mealtype defines the meal types and the static per-meal-type
// composition policy used by the generation pipeline.
package mealtype

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MealType represents one of the four meal slots of a daily plan.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// String returns the string representation of the meal type.
func (t MealType) String() string {
	return string(t)
}

// IsValid returns true if the meal type is a valid supported value.
func (t MealType) IsValid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	default:
		return false
	}
}

var titleCaser = cases.Title(language.English)

// DisplayName returns the human-readable name for the meal type
// (e.g. "Breakfast").
func (t MealType) DisplayName() string {
	return titleCaser.String(string(t))
}

// Label returns the meal name prefix used when synthesizing meal names.
func (t MealType) Label() string {
	switch t {
	case Breakfast:
		return "Morning"
	case Lunch:
		return "Midday"
	case Dinner:
		return "Evening"
	case Snack:
		return "Quick"
	default:
		return ""
	}
}

// All returns all supported meal types in daily order.
func All() []MealType {
	return []MealType{Breakfast, Lunch, Dinner, Snack}
}

// Parse parses a case-insensitive meal type string.
func Parse(s string) (MealType, error) {
	t := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid meal type: %q (supported values: %s)", s, All())
	}
	return t, nil
}

// ParseList parses a list of meal type strings. An empty input defaults
// to all four meal types.
func ParseList(values []string) ([]MealType, error) {
	if len(values) == 0 {
		return All(), nil
	}
	out := make([]MealType, 0, len(values))
	for _, v := range values {
		t, err := Parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Rules is the static composition policy for one meal type. The protein,
// vegetable, and carb requirements are best-effort: generation skips a
// requirement when the material pool cannot supply it, so a generated
// combination may satisfy fewer than its nominal requirements.
type Rules struct {
	RequiresProtein    bool
	RequiresVegetables bool
	RequiresCarbs      bool

	// MinMaterials and MaxMaterials are the inclusive bounds on
	// combination size for the meal type.
	MinMaterials int
	MaxMaterials int
}

// rulesTable is read-only; it is never mutated at runtime.
var rulesTable = map[MealType]Rules{
	Breakfast: {RequiresCarbs: true, MinMaterials: 2, MaxMaterials: 5},
	Lunch:     {RequiresProtein: true, RequiresVegetables: true, RequiresCarbs: true, MinMaterials: 3, MaxMaterials: 7},
	Dinner:    {RequiresProtein: true, RequiresVegetables: true, RequiresCarbs: true, MinMaterials: 3, MaxMaterials: 8},
	Snack:     {MinMaterials: 1, MaxMaterials: 3},
}

// RulesFor returns the composition rules for the given meal type.
// Unknown meal types fall back to the snack rules, the least constrained row.
func RulesFor(t MealType) Rules {
	if r, ok := rulesTable[t]; ok {
		return r
	}
	return rulesTable[Snack]
}
