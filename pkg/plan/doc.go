// Package plan orchestrates the meal planning pipeline: load a dataset,
// filter it to a bounded candidate pool, run a selection strategy, and wrap
// the outcome in a versioned document ready for serialization.
//
// # Documents
//
// A Plan records one strategy run: the request, the selected foods, their
// calorie and protein totals, and how long selection took. A Comparison
// runs every strategy on the same candidate pool and reports the protein
// gap between the exact and heuristic answers.
//
// Both documents carry the standard trophe header (kind, API version,
// metadata) so they can be validated and reloaded later.
package plan
