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

// Package dietary reduces material pools by dietary restriction.
//
// Restrictions are a closed enumeration parsed once at the boundary from
// free-text keywords. Unrecognized keywords are silently ignored: they have
// no filtering effect and never produce an error.
package dietary

import (
	"strings"

	"github.com/plateful/mealgen/pkg/material"
)

// Restriction represents a supported dietary restriction.
type Restriction string

const (
	Vegetarian  Restriction = "vegetarian"
	Vegan       Restriction = "vegan"
	Pescatarian Restriction = "pescatarian"
	GlutenFree  Restriction = "gluten-free"
)

// String returns the string representation of the restriction.
func (r Restriction) String() string {
	return string(r)
}

// IsValid returns true if the restriction is a valid supported value.
func (r Restriction) IsValid() bool {
	switch r {
	case Vegetarian, Vegan, Pescatarian, GlutenFree:
		return true
	default:
		return false
	}
}

// SupportedRestrictions returns a list of all supported restrictions.
func SupportedRestrictions() []Restriction {
	return []Restriction{Vegetarian, Vegan, Pescatarian, GlutenFree}
}

// exclusions maps each restriction to the material categories it removes
// from a pool. Gluten-free has an additional name-based rule handled in
// excludes. The table is read-only.
var exclusions = map[Restriction][]material.Category{
	Vegetarian:  {material.CategoryMeat, material.CategorySeafood},
	Vegan:       {material.CategoryMeat, material.CategorySeafood, material.CategoryDairy},
	Pescatarian: {material.CategoryMeat},
}

// Parse parses a list of free-text restriction keywords, case-insensitively.
// Unrecognized keywords are dropped without error.
func Parse(keywords []string) []Restriction {
	out := make([]Restriction, 0, len(keywords))
	for _, kw := range keywords {
		r := Restriction(strings.ToLower(strings.TrimSpace(kw)))
		if r.IsValid() {
			out = append(out, r)
		}
	}
	return out
}

// excludes reports whether the restriction removes the given material.
func (r Restriction) excludes(m material.Material) bool {
	for _, c := range exclusions[r] {
		if m.Category == c {
			return true
		}
	}
	if r == GlutenFree && m.Category == material.CategoryGrains {
		return strings.Contains(strings.ToLower(m.Name), "wheat")
	}
	return false
}

// Filter removes from the pool any material that conflicts with any of the
// given restrictions. An empty restriction list returns the input unchanged.
// The result may be empty; the input slice is never modified.
func Filter(materials []material.Material, restrictions []Restriction) []material.Material {
	if len(restrictions) == 0 {
		return materials
	}
	out := make([]material.Material, 0, len(materials))
	for _, m := range materials {
		conflicts := false
		for _, r := range restrictions {
			if r.excludes(m) {
				conflicts = true
				break
			}
		}
		if !conflicts {
			out = append(out, m)
		}
	}
	return out
}
