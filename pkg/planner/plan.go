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
	"time"

	"github.com/plateful/mealgen/pkg/mealtype"
	"github.com/plateful/mealgen/pkg/synthesizer"
)

// MealPlan maps each meal type of one calendar day to an optional meal.
// The normalized date (time of day stripped, UTC) is the identity key: the
// owning store keeps at most one plan per normalized date. This core only
// produces candidate plans; it does not enforce that uniqueness.
type MealPlan struct {
	// ID uniquely identifies the plan.
	ID string `json:"id" yaml:"id"`

	// Date is the normalized calendar date the plan covers.
	Date time.Time `json:"date" yaml:"date"`

	// Meals maps each meal type to its generated meal, when one was produced.
	Meals map[mealtype.MealType]*synthesizer.Meal `json:"meals" yaml:"meals"`

	// CreatedAt and UpdatedAt are maintained by this core at generation time
	// and by stores on replacement.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`

	// Notes holds optional free text attached to the plan.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Completed marks the plan as done; owned by callers, never set here.
	Completed bool `json:"completed" yaml:"completed"`
}

// Meal returns the meal generated for the given type, or false when the
// slot is empty.
func (p *MealPlan) Meal(t mealtype.MealType) (*synthesizer.Meal, bool) {
	m, ok := p.Meals[t]
	return m, ok && m != nil
}

// NormalizeDate strips the time-of-day component, returning midnight UTC of
// the same calendar date.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isWeekend reports whether the date falls on a Saturday or Sunday.
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
