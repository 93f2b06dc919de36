// Package validator checks plan and comparison documents for internal
// consistency and evaluates user-supplied nutrient constraints against them.
//
// # Integrity checks
//
// Every validation run re-derives what the document claims: selection totals
// are recomputed from the food records, the calorie budget is re-checked
// against the recorded total, and the header kind, API version, and generator
// version are verified. A document edited by hand (or produced by a newer
// binary) fails or partially passes instead of being silently trusted.
//
// # Constraint Format
//
// Constraints address document fields by dotted path:
//
//	selection.totalProteinGrams -> protein grams of the selection
//	selection.totalKcal         -> calories of the selection
//	request.budgetKcal          -> the calorie budget planned against
//	metadata.version            -> generator version stamp
//
// # Supported Operators
//
// Constraint values may carry a comparison operator:
//   - ">=" ">" "<=" "<" - ordered comparison (numeric, or version for
//     version-shaped values)
//   - "==" "!=" - equality (numeric, version, or string)
//   - (no operator) - exact string match
//
// # Usage
//
//	v := validator.New(validator.WithVersion("1.4.0"))
//	result, err := v.ValidatePlan(ctx, doc, []validator.Constraint{
//	    {Name: "selection.totalProteinGrams", Value: ">= 100"},
//	})
//
// Checks that cannot be evaluated (unknown path, unparsable expression) are
// marked skipped rather than failing the run, so a partial result is still
// returned.
package validator
