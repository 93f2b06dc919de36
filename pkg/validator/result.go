package validator

import (
	"time"

	"github.com/nutrikit/trophe/pkg/header"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates all checks passed.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates one or more checks failed.
	ValidationStatusFail ValidationStatus = "fail"

	// ValidationStatusPartial indicates some checks couldn't be evaluated.
	ValidationStatusPartial ValidationStatus = "partial"
)

// CheckStatus represents the outcome of a single check.
type CheckStatus string

const (
	// CheckStatusPassed indicates the check was satisfied.
	CheckStatusPassed CheckStatus = "passed"

	// CheckStatusFailed indicates the check was not satisfied.
	CheckStatusFailed CheckStatus = "failed"

	// CheckStatusSkipped indicates the check couldn't be evaluated.
	CheckStatusSkipped CheckStatus = "skipped"
)

// ValidationResult is the document produced by validating a plan or
// comparison.
type ValidationResult struct {
	header.Header `yaml:",inline"`

	// Source is the path/URI of the document that was validated, when known.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Subject is the kind of the validated document.
	Subject header.Kind `json:"subject" yaml:"subject"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Checks contains per-check details, integrity checks first.
	Checks []Check `json:"checks" yaml:"checks"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	// Passed is the count of checks that were satisfied.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of checks that were not satisfied.
	Failed int `json:"failed" yaml:"failed"`

	// Skipped is the count of checks that couldn't be evaluated.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Total is the total number of checks.
	Total int `json:"total" yaml:"total"`

	// Status is the overall validation status.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Check represents the result of one integrity check or constraint.
type Check struct {
	// Name identifies the check: a document field path for constraints, a
	// dotted integrity name (e.g., "selection.totals") otherwise.
	Name string `json:"name" yaml:"name"`

	// Expected is the constraint expression or derived expectation.
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the value found in the document.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Status is the outcome of this check.
	Status CheckStatus `json:"status" yaml:"status"`

	// Message provides additional context for failures and skips.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidationResult creates a ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Checks: make([]Check, 0),
	}
}
