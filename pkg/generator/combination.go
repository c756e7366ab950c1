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

package generator

import (
	"sort"
	"strings"

	"github.com/plateful/mealgen/pkg/material"
)

// Combination is a candidate list of materials considered for one meal.
// Order is significant: name synthesis and tag derivation walk materials
// in combination order.
type Combination struct {
	Materials []material.Material
}

// Size returns the number of materials in the combination.
func (c Combination) Size() int {
	return len(c.Materials)
}

// Key returns a canonical identity string for the combination's material-id
// set. Two combinations with the same materials in different order share
// the same key.
func (c Combination) Key() string {
	ids := make([]string, 0, len(c.Materials))
	for _, m := range c.Materials {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// HasCategory reports whether any material in the combination belongs to
// the given category.
func (c Combination) HasCategory(cat material.Category) bool {
	for _, m := range c.Materials {
		if m.Category == cat {
			return true
		}
	}
	return false
}

// HasProteinLike reports whether the combination contains a protein source
// (meat, seafood, or poultry).
func (c Combination) HasProteinLike() bool {
	for _, m := range c.Materials {
		if m.Category.IsProteinLike() {
			return true
		}
	}
	return false
}

// DistinctCategories returns the distinct categories present in the
// combination, in combination order.
func (c Combination) DistinctCategories() []material.Category {
	seen := make(map[material.Category]bool, len(c.Materials))
	out := make([]material.Category, 0, len(c.Materials))
	for _, m := range c.Materials {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}

// UsedCombinations tracks material-id sets already consumed within a single
// generation call so the same ingredient set is not returned twice. It is
// allocated fresh per call and never shared across calls.
type UsedCombinations map[string]struct{}

// NewUsedCombinations returns an empty used-combination set.
func NewUsedCombinations() UsedCombinations {
	return make(UsedCombinations)
}

// Add records the combination's id-set as used.
func (u UsedCombinations) Add(c Combination) {
	u[c.Key()] = struct{}{}
}

// Contains reports whether the combination's id-set has been used.
func (u UsedCombinations) Contains(c Combination) bool {
	_, ok := u[c.Key()]
	return ok
}
