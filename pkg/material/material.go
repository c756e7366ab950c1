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

package material

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category represents the culinary category of a material.
type Category string

const (
	CategoryMeat       Category = "meat"
	CategorySeafood    Category = "seafood"
	CategoryPoultry    Category = "poultry"
	CategoryVegetables Category = "vegetables"
	CategoryGrains     Category = "grains"
	CategoryDairy      Category = "dairy"
	CategorySpices     Category = "spices"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is a valid supported value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMeat, CategorySeafood, CategoryPoultry, CategoryVegetables,
		CategoryGrains, CategoryDairy, CategorySpices:
		return true
	default:
		return false
	}
}

// IsProteinLike returns true for categories that count as a protein source
// when composing a meal (meat, seafood, or poultry).
func (c Category) IsProteinLike() bool {
	switch c {
	case CategoryMeat, CategorySeafood, CategoryPoultry:
		return true
	default:
		return false
	}
}

var titleCaser = cases.Title(language.English)

// DisplayName returns a human-readable name for the category,
// suitable for labels and tags.
func (c Category) DisplayName() string {
	return titleCaser.String(string(c))
}

// ParseCategory parses a case-insensitive category string.
// Returns false if the value is not a supported category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", false
	}
	return c, true
}

// SupportedCategories returns a list of all supported material categories.
func SupportedCategories() []Category {
	return []Category{
		CategoryMeat,
		CategorySeafood,
		CategoryPoultry,
		CategoryVegetables,
		CategoryGrains,
		CategoryDairy,
		CategorySpices,
	}
}

// Material represents a raw ingredient available for meal generation.
// Materials have value semantics: once a material is generated into a meal
// the meal holds its own copy.
type Material struct {
	// ID uniquely identifies the material within a catalog.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable ingredient name (e.g. "Chicken Breast").
	Name string `json:"name" yaml:"name"`

	// Category is the culinary category the material belongs to.
	Category Category `json:"category" yaml:"category"`

	// Available indicates whether the material is currently usable.
	// Filtering on this flag is the caller's responsibility.
	Available bool `json:"available" yaml:"available"`

	// NutritionalTags holds ordered, informational free-text tags.
	NutritionalTags []string `json:"nutritionalTags,omitempty" yaml:"nutritionalTags,omitempty"`

	// Description is optional free text about the material.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ImageRef is an optional reference to an image of the material.
	ImageRef string `json:"imageRef,omitempty" yaml:"imageRef,omitempty"`
}

// Available filters the provided materials down to those with the
// availability flag set. The input slice is not modified.
func Available(materials []Material) []Material {
	out := make([]Material, 0, len(materials))
	for _, m := range materials {
		if m.Available {
			out = append(out, m)
		}
	}
	return out
}
