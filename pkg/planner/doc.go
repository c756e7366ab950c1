// Package planner orchestrates meal generation and assembles calendar-keyed
// meal plans.
//
// # Pipeline
//
// Every meal goes through the same single-meal pipeline:
//
//	dietary filter -> combination generator -> scorer -> synthesizer
//
// The Planner wraps that pipeline with four entry points:
//
//   - GenerateMeals: n meals of one type, deduplicated by ingredient set
//     within the call.
//   - GenerateCustomMeal: one meal with caller-chosen required materials
//     forced into the combination.
//   - GenerateWeeklyPlan: one plan per day for 7 consecutive dates.
//   - GenerateMonthlyPlan: sparse month coverage, one plan per 7-day block,
//     weekends skipped.
//
// # Failure semantics
//
// Soft conditions (the candidate search coming up empty for a slot) degrade
// to "no meal for this slot" and never abort sibling slots or dates. Hard
// conditions (an empty material pool, an empty required-materials list) are
// returned immediately as structured "failed to generate ..." errors.
// Nothing is persisted by this package: plans are handed to the PlanStore
// collaborator by callers, so failed calls leave no partial state.
//
// # Concurrency
//
// A Planner is stateless between calls; the used-combination set is scoped
// to one call. Two concurrent calls for the same date both succeed and the
// persistence collaborator serializes the final write.
package planner
