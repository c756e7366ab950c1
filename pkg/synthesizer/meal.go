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

package synthesizer

import (
	"time"

	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
)

// Meal is a synthesized recommendation built from one accepted combination.
// Meals are created only by the Synthesizer and are never mutated after
// creation; external stores replace a meal wholesale by id.
type Meal struct {
	// ID uniquely identifies the meal.
	ID string `json:"id" yaml:"id"`

	// Name is the presentable meal name.
	Name string `json:"name" yaml:"name"`

	// Description summarizes the meal's ingredients.
	Description string `json:"description" yaml:"description"`

	// Materials holds the ordered list of materials used. Always non-empty,
	// with length within the meal type's composition bounds.
	Materials []material.Material `json:"materials" yaml:"materials"`

	// Type is the meal slot this meal was generated for.
	Type mealtype.MealType `json:"type" yaml:"type"`

	// PrepTimeMinutes is the estimated preparation time in minutes.
	PrepTimeMinutes int `json:"prepTimeMinutes" yaml:"prepTimeMinutes"`

	// Instructions holds ordered, numbered preparation steps.
	Instructions []string `json:"instructions" yaml:"instructions"`

	// CreatedAt is the synthesis timestamp.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	// Calories is the estimated calorie total.
	Calories int `json:"calories" yaml:"calories"`

	// Tags holds the meal type, the distinct category display names, and
	// derived dietary tags ("vegetarian", "vegan").
	Tags []string `json:"tags" yaml:"tags"`
}
