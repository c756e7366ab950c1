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
	"testing"

	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
)

var testPool = []material.Material{
	{ID: "chicken", Name: "Chicken Breast", Category: material.CategoryPoultry},
	{ID: "beef", Name: "Ground Beef", Category: material.CategoryMeat},
	{ID: "salmon", Name: "Salmon", Category: material.CategorySeafood},
	{ID: "broccoli", Name: "Broccoli", Category: material.CategoryVegetables},
	{ID: "spinach", Name: "Spinach", Category: material.CategoryVegetables},
	{ID: "carrot", Name: "Carrot", Category: material.CategoryVegetables},
	{ID: "rice", Name: "Brown Rice", Category: material.CategoryGrains},
	{ID: "quinoa", Name: "Quinoa", Category: material.CategoryGrains},
	{ID: "milk", Name: "Milk", Category: material.CategoryDairy},
	{ID: "pepper", Name: "Black Pepper", Category: material.CategorySpices},
	{ID: "garlic", Name: "Garlic", Category: material.CategorySpices},
	{ID: "basil", Name: "Basil", Category: material.CategorySpices},
}

func TestGenerateBounds(t *testing.T) {
	for _, mt := range mealtype.All() {
		t.Run(mt.String(), func(t *testing.T) {
			g := New(WithSeed(42))
			rules := mealtype.RulesFor(mt)

			candidates := g.Generate(testPool, mt, NewUsedCombinations(), nil)
			if len(candidates) == 0 {
				t.Fatal("expected candidates from a full pool")
			}
			for _, c := range candidates {
				if c.Size() < rules.MinMaterials || c.Size() > rules.MaxMaterials {
					t.Errorf("candidate size %d outside [%d, %d]",
						c.Size(), rules.MinMaterials, rules.MaxMaterials)
				}
			}
		})
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := New(WithSeed(7)).Generate(testPool, mealtype.Dinner, NewUsedCombinations(), nil)
	b := New(WithSeed(7)).Generate(testPool, mealtype.Dinner, NewUsedCombinations(), nil)

	if len(a) != len(b) {
		t.Fatalf("candidate counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Key() != b[i].Key() {
			t.Errorf("candidate %d differs: %q vs %q", i, a[i].Key(), b[i].Key())
		}
	}
}

func TestGenerateDinnerComposition(t *testing.T) {
	g := New(WithSeed(1))
	candidates := g.Generate(testPool, mealtype.Dinner, NewUsedCombinations(), nil)

	for _, c := range candidates {
		if !c.HasProteinLike() {
			t.Errorf("dinner candidate %q has no protein source", c.Key())
		}
		if !c.HasCategory(material.CategoryVegetables) {
			t.Errorf("dinner candidate %q has no vegetables", c.Key())
		}
		if !c.HasCategory(material.CategoryGrains) {
			t.Errorf("dinner candidate %q has no grains", c.Key())
		}
	}
}

func TestGenerateRespectsUsedSet(t *testing.T) {
	g := New(WithSeed(3))
	used := NewUsedCombinations()

	first := g.Generate(testPool, mealtype.Lunch, used, nil)
	if len(first) == 0 {
		t.Fatal("expected candidates")
	}
	for _, c := range first {
		used.Add(c)
	}

	second := g.Generate(testPool, mealtype.Lunch, used, nil)
	for _, c := range second {
		if used.Contains(c) {
			t.Errorf("candidate %q was already used", c.Key())
		}
	}
}

func TestGenerateIncludesRequired(t *testing.T) {
	required := []material.Material{
		{ID: "chicken", Name: "Chicken Breast", Category: material.CategoryPoultry},
	}

	g := New(WithSeed(9))
	candidates := g.Generate(testPool, mealtype.Dinner, NewUsedCombinations(), required)
	if len(candidates) == 0 {
		t.Fatal("expected candidates")
	}
	for _, c := range candidates {
		found := false
		for _, m := range c.Materials {
			if m.ID == "chicken" {
				found = true
			}
		}
		if !found {
			t.Errorf("candidate %q missing required material", c.Key())
		}
	}
}

func TestGenerateRequiredNotDuplicated(t *testing.T) {
	// required material also present in the pool must appear exactly once
	required := []material.Material{testPool[0]}

	g := New(WithSeed(13))
	candidates := g.Generate(testPool, mealtype.Dinner, NewUsedCombinations(), required)
	for _, c := range candidates {
		count := 0
		for _, m := range c.Materials {
			if m.ID == required[0].ID {
				count++
			}
		}
		if count != 1 {
			t.Errorf("candidate %q contains required material %d times", c.Key(), count)
		}
	}
}

func TestGenerateBestEffortRequirements(t *testing.T) {
	// no grains in the pool: breakfast carbs requirement is skipped,
	// not treated as a failure
	pool := []material.Material{
		{ID: "milk", Name: "Milk", Category: material.CategoryDairy},
		{ID: "pepper", Name: "Black Pepper", Category: material.CategorySpices},
		{ID: "garlic", Name: "Garlic", Category: material.CategorySpices},
	}

	g := New(WithSeed(5))
	candidates := g.Generate(pool, mealtype.Breakfast, NewUsedCombinations(), []material.Material{pool[0]})
	if len(candidates) == 0 {
		t.Fatal("expected best-effort candidates without grains")
	}
	for _, c := range candidates {
		if c.HasCategory(material.CategoryGrains) {
			t.Errorf("candidate %q has grains from nowhere", c.Key())
		}
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	g := New(WithSeed(2))
	if got := g.Generate(nil, mealtype.Dinner, NewUsedCombinations(), nil); len(got) != 0 {
		t.Errorf("expected no candidates from empty pool, got %d", len(got))
	}
}

func TestGenerateAttemptCeiling(t *testing.T) {
	g := New(WithSeed(4), WithAttempts(10))
	candidates := g.Generate(testPool, mealtype.Snack, NewUsedCombinations(), nil)
	if len(candidates) > 10 {
		t.Errorf("got %d candidates from 10 attempts", len(candidates))
	}
}

func TestCombinationKey(t *testing.T) {
	a := Combination{Materials: []material.Material{
		{ID: "x"}, {ID: "y"}, {ID: "z"},
	}}
	b := Combination{Materials: []material.Material{
		{ID: "z"}, {ID: "x"}, {ID: "y"},
	}}

	if a.Key() != b.Key() {
		t.Errorf("expected order-independent keys, got %q and %q", a.Key(), b.Key())
	}
	if a.Key() != "x|y|z" {
		t.Errorf("Key() = %q, want %q", a.Key(), "x|y|z")
	}
}

func TestDistinctCategoriesOrder(t *testing.T) {
	c := Combination{Materials: []material.Material{
		{ID: "a", Category: material.CategoryPoultry},
		{ID: "b", Category: material.CategoryVegetables},
		{ID: "c", Category: material.CategoryPoultry},
		{ID: "d", Category: material.CategoryGrains},
	}}

	got := c.DistinctCategories()
	want := []material.Category{material.CategoryPoultry, material.CategoryVegetables, material.CategoryGrains}
	if len(got) != len(want) {
		t.Fatalf("DistinctCategories() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("DistinctCategories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUsedCombinations(t *testing.T) {
	used := NewUsedCombinations()
	c := Combination{Materials: []material.Material{{ID: "a"}, {ID: "b"}}}

	if used.Contains(c) {
		t.Error("fresh set should not contain any combination")
	}
	used.Add(c)
	if !used.Contains(c) {
		t.Error("expected combination after Add")
	}

	// same id-set in different order is the same combination
	reordered := Combination{Materials: []material.Material{{ID: "b"}, {ID: "a"}}}
	if !used.Contains(reordered) {
		t.Error("expected order-independent membership")
	}
}
