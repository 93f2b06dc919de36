// Package food defines the core food record entity and ordered record lists.
//
// # Records
//
// A Record describes one food item: its published description, a household
// serving measure, and the integer calorie and protein content of one
// serving. Records are immutable by convention: loaders construct them,
// every later stage shares them by reference, and nothing mutates them.
//
// # Lists
//
// A List is an ordered slice of shared *Record references. Order is
// significant throughout: the filter preserves dataset order, the greedy
// selector breaks protein ties on first occurrence, and the exhaustive
// selector addresses candidates by position. Operations that need a private
// working sequence clone the slice, never the records.
//
// # Totals
//
// List.Totals sums calories and protein across a selection, the quantity
// reports and validators work from.
package food
