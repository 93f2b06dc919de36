package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nutrikit/trophe/pkg/header"
	"github.com/nutrikit/trophe/pkg/optimize"
	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/version"
)

// Validator checks plan and comparison documents.
type Validator struct {
	// Version is the validator version (typically the CLI version). Used
	// both to stamp results and to decide generator compatibility.
	Version string

	// Source is an optional path/URI recorded in results.
	Source string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(v string) Option {
	return func(val *Validator) {
		val.Version = v
	}
}

// WithSource returns an Option that records the validated document's origin.
func WithSource(source string) Option {
	return func(val *Validator) {
		val.Source = source
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidatePlan runs the integrity checks and the supplied constraints
// against a plan document.
func (v *Validator) ValidatePlan(ctx context.Context, doc *plan.Plan, constraints []Constraint) (*ValidationResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("plan cannot be nil")
	}

	start := time.Now()
	result := NewValidationResult()
	result.Init(header.KindValidationResult, plan.APIVersion, v.Version)
	result.Source = v.Source
	result.Subject = doc.Kind

	result.Checks = append(result.Checks, v.headerChecks(&doc.Header, header.KindPlan)...)
	result.Checks = append(result.Checks, requestCheck(doc.Request))
	result.Checks = append(result.Checks, selectionChecks("selection", doc.Request, doc.CandidateCount, doc.Selection)...)

	for _, c := range constraints {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		result.Checks = append(result.Checks, v.evaluateConstraint(doc, c))
	}

	finish(result, start)
	return result, nil
}

// ValidateComparison runs the integrity checks against a comparison
// document. Field constraints address single-selection plans only.
func (v *Validator) ValidateComparison(ctx context.Context, doc *plan.Comparison) (*ValidationResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("comparison cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := NewValidationResult()
	result.Init(header.KindValidationResult, plan.APIVersion, v.Version)
	result.Source = v.Source
	result.Subject = doc.Kind

	result.Checks = append(result.Checks, v.headerChecks(&doc.Header, header.KindComparison)...)
	result.Checks = append(result.Checks, requestCheck(doc.Request))

	proteins := make(map[optimize.Strategy]int, len(doc.Selections))
	for i, sel := range doc.Selections {
		name := fmt.Sprintf("selections[%d]", i)
		result.Checks = append(result.Checks, selectionChecks(name, doc.Request, doc.CandidateCount, sel)...)
		proteins[sel.Strategy] = sel.TotalProteinGrams
	}

	result.Checks = append(result.Checks, comparisonChecks(doc, proteins)...)

	finish(result, start)
	return result, nil
}

// headerChecks verifies the envelope: kind, schema version, and that the
// generator stamp is not newer than this binary.
func (v *Validator) headerChecks(h *header.Header, want header.Kind) []Check {
	checks := []Check{
		equalityCheck("header.kind", string(want), string(h.Kind)),
		equalityCheck("header.apiVersion", plan.APIVersion, h.APIVersion),
	}

	generated := h.Metadata["version"]
	check := Check{
		Name:     "header.generatorVersion",
		Expected: fmt.Sprintf("<= %s", v.Version),
		Actual:   generated,
	}
	switch {
	case generated == "" || v.Version == "":
		check.Status = CheckStatusSkipped
		check.Message = "generator or validator version not available"
	default:
		genVer, genErr := version.Parse(generated)
		binVer, binErr := version.Parse(v.Version)
		switch {
		case genErr != nil || binErr != nil:
			check.Status = CheckStatusSkipped
			check.Message = "version stamp is not parseable"
		case genVer.IsNewer(binVer):
			check.Status = CheckStatusFailed
			check.Message = fmt.Sprintf("document was produced by a newer generator (%s > %s)", generated, v.Version)
		default:
			check.Status = CheckStatusPassed
		}
	}

	return append(checks, check)
}

// requestCheck re-runs the request validation the planner applied.
func requestCheck(req plan.Request) Check {
	check := Check{
		Name:     "request",
		Expected: "valid normalized request",
	}
	if err := req.Validate(); err != nil {
		check.Status = CheckStatusFailed
		check.Message = err.Error()
		return check
	}
	check.Status = CheckStatusPassed
	return check
}

// selectionChecks re-derives everything a selection claims about itself.
func selectionChecks(name string, req plan.Request, candidateCount int, sel plan.Selection) []Check {
	var checks []Check

	if _, ok := optimize.ParseStrategy(string(sel.Strategy)); !ok {
		checks = append(checks, Check{
			Name:     name + ".strategy",
			Expected: fmt.Sprintf("one of %v", optimize.Strategies),
			Actual:   string(sel.Strategy),
			Status:   CheckStatusFailed,
			Message:  "unknown selection strategy",
		})
	} else {
		checks = append(checks, Check{
			Name:     name + ".strategy",
			Expected: fmt.Sprintf("one of %v", optimize.Strategies),
			Actual:   string(sel.Strategy),
			Status:   CheckStatusPassed,
		})
	}

	records := Check{
		Name:     name + ".foods",
		Expected: "every record valid and within the calorie window",
		Actual:   fmt.Sprintf("%d records", len(sel.Foods)),
		Status:   CheckStatusPassed,
	}
	if err := sel.Foods.Validate(); err != nil {
		records.Status = CheckStatusFailed
		records.Message = err.Error()
	} else {
		for i, r := range sel.Foods {
			if r.KCal <= 0 || r.KCal < req.MinKCal || r.KCal > req.MaxKCal {
				records.Status = CheckStatusFailed
				records.Message = fmt.Sprintf("record %d has %d kcal, outside window [%d, %d]",
					i, r.KCal, req.MinKCal, req.MaxKCal)
				break
			}
		}
	}
	checks = append(checks, records)

	kcal, protein := sel.Foods.Totals()
	checks = append(checks, equalityCheck(name+".totals",
		fmt.Sprintf("%d kcal / %d g", kcal, protein),
		fmt.Sprintf("%d kcal / %d g", sel.TotalKCal, sel.TotalProteinGrams)))

	budget := Check{
		Name:     name + ".budget",
		Expected: fmt.Sprintf("<= %d", req.BudgetKCal),
		Actual:   fmt.Sprintf("%d", sel.TotalKCal),
		Status:   CheckStatusPassed,
	}
	if sel.TotalKCal > req.BudgetKCal {
		budget.Status = CheckStatusFailed
		budget.Message = "selection exceeds the calorie budget"
	}
	checks = append(checks, budget)

	pool := Check{
		Name:     name + ".poolSize",
		Expected: fmt.Sprintf("<= %d candidates", candidateCount),
		Actual:   fmt.Sprintf("%d records", len(sel.Foods)),
		Status:   CheckStatusPassed,
	}
	if len(sel.Foods) > candidateCount {
		pool.Status = CheckStatusFailed
		pool.Message = "selection is larger than the candidate pool"
	}
	checks = append(checks, pool)

	return checks
}

// comparisonChecks verifies the cross-selection claims of a comparison.
func comparisonChecks(doc *plan.Comparison, proteins map[optimize.Strategy]int) []Check {
	coverage := Check{
		Name:     "selections.coverage",
		Expected: fmt.Sprintf("one selection per strategy %v", optimize.Strategies),
		Actual:   fmt.Sprintf("%d selections", len(doc.Selections)),
		Status:   CheckStatusPassed,
	}
	for _, s := range optimize.Strategies {
		if _, ok := proteins[s]; !ok {
			coverage.Status = CheckStatusFailed
			coverage.Message = fmt.Sprintf("missing selection for strategy %q", s)
			break
		}
	}
	if len(doc.Selections) != len(optimize.Strategies) {
		coverage.Status = CheckStatusFailed
		coverage.Message = "selection count does not match strategy count"
	}

	gap := Check{
		Name:     "proteinGap",
		Expected: "exhaustive protein minus greedy protein, never negative",
		Actual:   fmt.Sprintf("%d g", doc.ProteinGapGrams),
	}
	greedy, haveGreedy := proteins[optimize.StrategyGreedy]
	exhaustive, haveExhaustive := proteins[optimize.StrategyExhaustive]
	switch {
	case !haveGreedy || !haveExhaustive:
		gap.Status = CheckStatusSkipped
		gap.Message = "both strategies are required to derive the gap"
	case doc.ProteinGapGrams != exhaustive-greedy:
		gap.Status = CheckStatusFailed
		gap.Message = fmt.Sprintf("recorded gap %d g, derived %d g", doc.ProteinGapGrams, exhaustive-greedy)
	case doc.ProteinGapGrams < 0:
		gap.Status = CheckStatusFailed
		gap.Message = "greedy cannot out-perform the exhaustive optimum"
	default:
		gap.Status = CheckStatusPassed
	}

	return []Check{coverage, gap}
}

// evaluateConstraint evaluates one user constraint against the document.
func (v *Validator) evaluateConstraint(doc *plan.Plan, c Constraint) Check {
	check := Check{
		Name:     c.Name,
		Expected: c.Value,
	}

	actual, err := ExtractField(doc, c.Name)
	if err != nil {
		check.Status = CheckStatusSkipped
		check.Message = fmt.Sprintf("field not found in document: %v", err)
		slog.Warn("skipping constraint",
			"name", c.Name,
			"error", err)
		return check
	}
	check.Actual = actual

	parsed, err := ParseConstraintExpression(c.Value)
	if err != nil {
		check.Status = CheckStatusSkipped
		check.Message = fmt.Sprintf("invalid constraint expression: %v", err)
		slog.Warn("skipping constraint with invalid expression",
			"name", c.Name,
			"expression", c.Value,
			"error", err)
		return check
	}

	passed, err := parsed.Evaluate(actual)
	if err != nil {
		check.Status = CheckStatusFailed
		check.Message = fmt.Sprintf("evaluation failed: %v", err)
		return check
	}

	if passed {
		check.Status = CheckStatusPassed
	} else {
		check.Status = CheckStatusFailed
		check.Message = fmt.Sprintf("expected %s, got %s", parsed.String(), actual)
	}
	return check
}

// equalityCheck builds a passed/failed check from an expected/actual pair.
func equalityCheck(name, expected, actual string) Check {
	check := Check{
		Name:     name,
		Expected: expected,
		Actual:   actual,
	}
	if expected == actual {
		check.Status = CheckStatusPassed
	} else {
		check.Status = CheckStatusFailed
		check.Message = fmt.Sprintf("expected %s, got %s", expected, actual)
	}
	return check
}

// finish computes the summary counts and overall status.
func finish(result *ValidationResult, start time.Time) {
	for _, c := range result.Checks {
		switch c.Status {
		case CheckStatusPassed:
			result.Summary.Passed++
		case CheckStatusFailed:
			result.Summary.Failed++
		case CheckStatusSkipped:
			result.Summary.Skipped++
		}
	}
	result.Summary.Total = len(result.Checks)
	result.Summary.Duration = time.Since(start)

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = ValidationStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = ValidationStatusPartial
	default:
		result.Summary.Status = ValidationStatusPass
	}

	slog.Debug("validation completed",
		"subject", result.Subject,
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)
}
