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

package dietary

import (
	"testing"

	"github.com/plateful/mealgen/pkg/material"
)

var testPool = []material.Material{
	{ID: "beef", Name: "Ground Beef", Category: material.CategoryMeat},
	{ID: "salmon", Name: "Salmon", Category: material.CategorySeafood},
	{ID: "chicken", Name: "Chicken Breast", Category: material.CategoryPoultry},
	{ID: "broccoli", Name: "Broccoli", Category: material.CategoryVegetables},
	{ID: "wheat-pasta", Name: "Whole Wheat Pasta", Category: material.CategoryGrains},
	{ID: "rice", Name: "Brown Rice", Category: material.CategoryGrains},
	{ID: "milk", Name: "Milk", Category: material.CategoryDairy},
	{ID: "pepper", Name: "Black Pepper", Category: material.CategorySpices},
}

func ids(materials []material.Material) []string {
	out := make([]string, 0, len(materials))
	for _, m := range materials {
		out = append(out, m.ID)
	}
	return out
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []Restriction
	}{
		{"empty", nil, []Restriction{}},
		{"single", []string{"vegan"}, []Restriction{Vegan}},
		{"mixed case and padding", []string{" Vegetarian ", "GLUTEN-FREE"}, []Restriction{Vegetarian, GlutenFree}},
		{"unknown dropped silently", []string{"keto", "vegan", "paleo"}, []Restriction{Vegan}},
		{"all unknown", []string{"keto", "paleo"}, []Restriction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.keywords)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%v) = %v, want %v", tt.keywords, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%v)[%d] = %q, want %q", tt.keywords, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name         string
		restrictions []Restriction
		wantIDs      []string
	}{
		{
			name:         "no restrictions returns input unchanged",
			restrictions: nil,
			wantIDs:      []string{"beef", "salmon", "chicken", "broccoli", "wheat-pasta", "rice", "milk", "pepper"},
		},
		{
			name:         "vegetarian removes meat and seafood",
			restrictions: []Restriction{Vegetarian},
			wantIDs:      []string{"chicken", "broccoli", "wheat-pasta", "rice", "milk", "pepper"},
		},
		{
			name:         "vegan additionally removes dairy",
			restrictions: []Restriction{Vegan},
			wantIDs:      []string{"chicken", "broccoli", "wheat-pasta", "rice", "pepper"},
		},
		{
			name:         "pescatarian removes only meat",
			restrictions: []Restriction{Pescatarian},
			wantIDs:      []string{"salmon", "chicken", "broccoli", "wheat-pasta", "rice", "milk", "pepper"},
		},
		{
			name:         "gluten-free removes only wheat grains",
			restrictions: []Restriction{GlutenFree},
			wantIDs:      []string{"beef", "salmon", "chicken", "broccoli", "rice", "milk", "pepper"},
		},
		{
			name:         "restrictions combine",
			restrictions: []Restriction{Vegan, GlutenFree},
			wantIDs:      []string{"chicken", "broccoli", "rice", "pepper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(testPool, tt.restrictions))
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter() = %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Errorf("Filter()[%d] = %q, want %q", i, got[i], tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterVeganProperty(t *testing.T) {
	got := Filter(testPool, []Restriction{Vegan})
	for _, m := range got {
		switch m.Category {
		case material.CategoryMeat, material.CategorySeafood, material.CategoryDairy:
			t.Errorf("vegan filter left %s (%s) in the pool", m.ID, m.Category)
		}
	}
}

func TestFilterGlutenFreeCaseInsensitive(t *testing.T) {
	pool := []material.Material{
		{ID: "p1", Name: "WHEAT Noodles", Category: material.CategoryGrains},
		{ID: "p2", Name: "Buckwheat Groats", Category: material.CategoryGrains},
		{ID: "p3", Name: "Wheat Bread", Category: material.CategoryDairy},
	}

	got := ids(Filter(pool, []Restriction{GlutenFree}))
	// substring match is case-insensitive and applies to grains only
	want := []string{"p3"}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterCanEmptyPool(t *testing.T) {
	pool := []material.Material{
		{ID: "beef", Name: "Beef", Category: material.CategoryMeat},
		{ID: "milk", Name: "Milk", Category: material.CategoryDairy},
	}
	if got := Filter(pool, []Restriction{Vegan}); len(got) != 0 {
		t.Errorf("expected empty pool, got %v", ids(got))
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	before := ids(testPool)
	_ = Filter(testPool, []Restriction{Vegan, GlutenFree})
	after := ids(testPool)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("input pool was modified")
		}
	}
}
