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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Meal generation metrics
	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plateful_generate_duration_seconds",
			Help:    "Duration of meal generation calls in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	mealsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plateful_meals_generated_total",
			Help: "Total number of meals generated",
		},
	)

	slotsExhausted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plateful_slots_exhausted_total",
			Help: "Total number of meal slots left empty after exhausting the candidate search",
		},
	)
)
