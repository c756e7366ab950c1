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

// Package defaults centralizes the tunable constants of the generation
// pipeline so callers and tests reference a single source of truth.
package defaults

import "time"

// Generation bounds.
const (
	// GeneratorAttempts is the number of independent randomized attempts a
	// single combination-generation call performs. It is the only built-in
	// ceiling on work per single-meal pipeline invocation.
	GeneratorAttempts = 50
)

// Preparation time bounds in minutes for synthesized meals.
const (
	BasePrepMinutes = 15
	MinPrepMinutes  = 10
	MaxPrepMinutes  = 120
)

// Calorie estimate bounds for synthesized meals.
const (
	MinCalories = 100
	MaxCalories = 1000
)

// Export timeouts for plan-bundle file writes.
const (
	// ExportTimeout bounds a full plan-set export to disk.
	ExportTimeout = 30 * time.Second
)
