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

// Package scorer assigns desirability scores to candidate combinations and
// selects the best candidate. Scoring is a pure function of the combination
// and meal type: no randomness, no hidden state.
package scorer

import (
	"github.com/plateful/mealgen/pkg/generator"
	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
)

// Scoring weights. Variety (distinct categories) is weighted above raw size,
// and oversized combinations are penalized past the comfort threshold.
const (
	sizeWeight     = 10
	categoryWeight = 15

	breakfastDairyBonus = 20
	breakfastGrainBonus = 15
	mainProteinBonus    = 25
	mainVegetableBonus  = 20
	snackCompactBonus   = 10
	snackCompactLimit   = 3

	oversizeThreshold = 7
	oversizePenalty   = 5
)

// Score computes the desirability score for a combination within the context
// of a meal type. Higher is better.
func Score(c generator.Combination, mt mealtype.MealType) int {
	score := sizeWeight*c.Size() + categoryWeight*len(c.DistinctCategories())

	switch mt {
	case mealtype.Breakfast:
		if c.HasCategory(material.CategoryDairy) {
			score += breakfastDairyBonus
		}
		if c.HasCategory(material.CategoryGrains) {
			score += breakfastGrainBonus
		}
	case mealtype.Lunch, mealtype.Dinner:
		if c.HasProteinLike() {
			score += mainProteinBonus
		}
		if c.HasCategory(material.CategoryVegetables) {
			score += mainVegetableBonus
		}
	case mealtype.Snack:
		if c.Size() <= snackCompactLimit {
			score += snackCompactBonus
		}
	}

	if c.Size() > oversizeThreshold {
		score -= oversizePenalty * (c.Size() - oversizeThreshold)
	}
	return score
}

// SelectBest returns the highest-scoring combination from the candidates.
// Selection is stable: the scan is linear and ties go to the
// earliest-encountered candidate. Returns false when the input is empty.
func SelectBest(candidates []generator.Combination, mt mealtype.MealType) (generator.Combination, bool) {
	if len(candidates) == 0 {
		return generator.Combination{}, false
	}

	best := candidates[0]
	bestScore := Score(best, mt)
	for _, c := range candidates[1:] {
		if s := Score(c, mt); s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best, true
}
