// Package optimize implements food selection under a calorie budget.
//
// # Overview
//
// Given a candidate list of food records, the package selects a subset that
// maximizes total protein while keeping total calories within a budget. Two
// strategies are provided:
//
//   - Greedy: a fast heuristic that repeatedly takes the highest-protein
//     record still fitting the remaining budget. O(n^2), approximate.
//   - Exhaustive: enumerates every subset of the candidates and keeps the
//     best feasible one. O(2^n * n), exact, and therefore restricted to
//     small candidate pools (n < 64 hard, n <= ~25 practical).
//
// Filter bounds the candidate pool before selection: it drops zero-calorie
// records, applies a per-record calorie window, and truncates to a maximum
// pool size while preserving dataset order.
//
// # Determinism
//
// All three operations are pure with respect to their inputs: records are
// shared by reference and never mutated, result order is fully determined by
// candidate order, and repeated runs over the same input yield identical
// results. Ties on protein resolve to the earliest candidate for the greedy
// strategy; subset enumeration order fixes the winner for the exhaustive
// strategy.
//
// # Usage
//
//	pool := optimize.Filter(records, 0, 2000, 20)
//	quick := optimize.Greedy(pool, 5000)
//	exact, err := optimize.Exhaustive(ctx, pool, 5000)
package optimize
