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
	"math/rand/v2"

	"github.com/plateful/mealgen/pkg/defaults"
	"github.com/plateful/mealgen/pkg/material"
	"github.com/plateful/mealgen/pkg/mealtype"
)

// Generator produces candidate material combinations for a meal type using
// a randomized bounded search. The random source is injectable so tests can
// run deterministically with a seeded source.
type Generator struct {
	rand     *rand.Rand
	attempts int
}

// Option is a functional option for configuring the Generator.
type Option func(*Generator)

// WithRand sets the random source used for material selection.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// WithSeed configures a deterministic random source from the given seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithAttempts overrides the number of independent search attempts per call.
func WithAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.attempts = n
		}
	}
}

// New creates a new Generator with the provided options. Without options the
// generator uses a system-seeded random source and the default attempt ceiling.
func New(opts ...Option) *Generator {
	g := &Generator{
		attempts: defaults.GeneratorAttempts,
	}

	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	if g.rand == nil {
		g.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate runs up to the configured number of independent attempts, each
// building one candidate combination for the meal type:
//
//  1. Seed the candidate with all required materials.
//  2. Partition the remaining pool by category.
//  3. Add one random protein source if the rules require one and none is present.
//  4. Add 1-2 random distinct vegetables if required.
//  5. Add one random grain if carbs are required.
//  6. Add 1-3 random distinct spices when any exist.
//  7. Accept the candidate when its size is within the meal type's bounds and
//     its id-set is not in used.
//
// Category requirements are best-effort: an empty category pool skips its
// step rather than failing the attempt. The returned list may be empty and may
// contain structurally different combinations with identical scores; it is not
// deduplicated beyond the used check.
func (g *Generator) Generate(pool []material.Material, mt mealtype.MealType, used UsedCombinations, required []material.Material) []Combination {
	rules := mealtype.RulesFor(mt)

	requiredIDs := make(map[string]bool, len(required))
	for _, m := range required {
		requiredIDs[m.ID] = true
	}

	// Partition the non-required pool once; attempts only differ by the
	// random picks they make from each bucket.
	var proteins, vegetables, grains, spices []material.Material
	for _, m := range pool {
		if requiredIDs[m.ID] {
			continue
		}
		switch {
		case m.Category.IsProteinLike():
			proteins = append(proteins, m)
		case m.Category == material.CategoryVegetables:
			vegetables = append(vegetables, m)
		case m.Category == material.CategoryGrains:
			grains = append(grains, m)
		case m.Category == material.CategorySpices:
			spices = append(spices, m)
		}
	}

	candidates := make([]Combination, 0, g.attempts)
	for attempt := 0; attempt < g.attempts; attempt++ {
		c := Combination{Materials: append([]material.Material(nil), required...)}

		if rules.RequiresProtein && !c.HasProteinLike() && len(proteins) > 0 {
			c.Materials = append(c.Materials, proteins[g.rand.IntN(len(proteins))])
		}
		if rules.RequiresVegetables && len(vegetables) > 0 {
			c.Materials = append(c.Materials, g.pickDistinct(vegetables, 1+g.rand.IntN(2), c.Materials)...)
		}
		if rules.RequiresCarbs && len(grains) > 0 {
			c.Materials = append(c.Materials, grains[g.rand.IntN(len(grains))])
		}
		if len(spices) > 0 {
			c.Materials = append(c.Materials, g.pickDistinct(spices, 1+g.rand.IntN(3), c.Materials)...)
		}

		if c.Size() < rules.MinMaterials || c.Size() > rules.MaxMaterials {
			continue
		}
		if used.Contains(c) {
			continue
		}
		candidates = append(candidates, c)
	}

	candidatesGenerated.Add(float64(len(candidates)))
	return candidates
}

// pickDistinct selects up to n distinct materials from the bucket, uniformly
// at random, skipping ids already present in current. It may return fewer
// than n when the bucket is too small.
func (g *Generator) pickDistinct(bucket []material.Material, n int, current []material.Material) []material.Material {
	taken := make(map[string]bool, len(current)+n)
	for _, m := range current {
		taken[m.ID] = true
	}

	idx := g.rand.Perm(len(bucket))
	out := make([]material.Material, 0, n)
	for _, i := range idx {
		if len(out) == n {
			break
		}
		m := bucket[i]
		if taken[m.ID] {
			continue
		}
		taken[m.ID] = true
		out = append(out, m)
	}
	return out
}
