package plan

import (
	"fmt"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/food"
	"github.com/nutrikit/trophe/pkg/header"
	"github.com/nutrikit/trophe/pkg/optimize"
)

// APIVersion identifies the schema of plan documents.
const APIVersion = "trophe.nutrikit.io/v1"

// Request describes one planning run. The validate tags serve the HTTP
// surface; the CLI enforces the same bounds through flag defaults.
type Request struct {
	// Source is the dataset source (file path, http(s) URL, s3 URI, or
	// "embedded"). Empty means embedded.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Strategy selects the optimization algorithm.
	Strategy optimize.Strategy `json:"strategy" yaml:"strategy" validate:"omitempty,oneof=greedy exhaustive"`

	// BudgetKCal is the calorie budget the selection must not exceed.
	BudgetKCal int `json:"budgetKcal" yaml:"budgetKcal" validate:"gte=0"`

	// MinKCal and MaxKCal bound the per-food calorie window of the
	// candidate filter.
	MinKCal int `json:"minKcal" yaml:"minKcal" validate:"gte=0"`
	MaxKCal int `json:"maxKcal" yaml:"maxKcal" validate:"gte=0"`

	// MaxCandidates caps the candidate pool handed to the strategy.
	MaxCandidates int `json:"maxCandidates" yaml:"maxCandidates" validate:"gte=0,lte=63"`
}

// Normalize fills zero fields with the planner defaults and returns the
// result. The original request is not modified.
func (r Request) Normalize() Request {
	if r.Strategy == "" {
		r.Strategy = optimize.StrategyGreedy
	}
	if r.BudgetKCal == 0 {
		r.BudgetKCal = defaults.PlanBudgetKCal
	}
	if r.MaxKCal == 0 {
		r.MaxKCal = defaults.PlanMaxKCal
	}
	if r.MaxCandidates == 0 {
		r.MaxCandidates = defaults.PlanMaxCandidates
	}
	return r
}

// Validate checks the request bounds. Strategy must be known, all
// quantities non-negative, the calorie window ordered, and the candidate
// cap within what exhaustive search can enumerate.
func (r Request) Validate() error {
	if _, ok := optimize.ParseStrategy(string(r.Strategy)); !ok {
		return fmt.Errorf("unknown strategy %q (supported: %v)", r.Strategy, optimize.Strategies)
	}
	if r.BudgetKCal < 0 {
		return fmt.Errorf("budget must be non-negative, got %d", r.BudgetKCal)
	}
	if r.MinKCal < 0 || r.MaxKCal < 0 {
		return fmt.Errorf("calorie window must be non-negative, got [%d, %d]", r.MinKCal, r.MaxKCal)
	}
	if r.MinKCal > r.MaxKCal {
		return fmt.Errorf("calorie window is inverted: [%d, %d]", r.MinKCal, r.MaxKCal)
	}
	if r.MaxCandidates < 0 {
		return fmt.Errorf("candidate cap must be non-negative, got %d", r.MaxCandidates)
	}
	if r.MaxCandidates > defaults.ExhaustiveCandidateLimit {
		return fmt.Errorf("candidate cap %d exceeds the enumeration limit of %d",
			r.MaxCandidates, defaults.ExhaustiveCandidateLimit)
	}
	return nil
}

// Selection is the outcome of one strategy run.
type Selection struct {
	// Strategy that produced this selection.
	Strategy optimize.Strategy `json:"strategy" yaml:"strategy"`

	// Foods chosen, in selection order.
	Foods food.List `json:"foods" yaml:"foods"`

	// TotalKCal and TotalProteinGrams are the selection sums.
	TotalKCal         int `json:"totalKcal" yaml:"totalKcal"`
	TotalProteinGrams int `json:"totalProteinGrams" yaml:"totalProteinGrams"`

	// ElapsedSeconds is the wall-clock selection time.
	ElapsedSeconds float64 `json:"elapsedSeconds" yaml:"elapsedSeconds"`
}

// Plan is the document produced by a single planning run.
type Plan struct {
	header.Header `yaml:",inline"`

	// Request that produced the plan, after normalization.
	Request Request `json:"request" yaml:"request"`

	// CandidateCount is the size of the filtered pool the strategy saw.
	CandidateCount int `json:"candidateCount" yaml:"candidateCount"`

	// Selection is the strategy outcome.
	Selection Selection `json:"selection" yaml:"selection"`
}

// FoodList is the document produced by listing the filtered candidate
// pool without running a selection.
type FoodList struct {
	header.Header `yaml:",inline"`

	// Request that produced the list; its Strategy and BudgetKCal fields
	// are ignored.
	Request Request `json:"request" yaml:"request"`

	// Count is the number of candidates after filtering.
	Count int `json:"count" yaml:"count"`

	// TotalKCal and TotalProteinGrams are the pool sums.
	TotalKCal         int `json:"totalKcal" yaml:"totalKcal"`
	TotalProteinGrams int `json:"totalProteinGrams" yaml:"totalProteinGrams"`

	// Foods is the candidate pool, in dataset order.
	Foods food.List `json:"foods" yaml:"foods"`
}

// Comparison is the document produced by running every strategy on the
// same candidate pool.
type Comparison struct {
	header.Header `yaml:",inline"`

	// Request that produced the comparison; its Strategy field is ignored.
	Request Request `json:"request" yaml:"request"`

	// CandidateCount is the size of the shared candidate pool.
	CandidateCount int `json:"candidateCount" yaml:"candidateCount"`

	// Selections holds one outcome per strategy, in optimize.Strategies
	// order.
	Selections []Selection `json:"selections" yaml:"selections"`

	// ProteinGapGrams is how much protein the exhaustive answer gained
	// over the greedy one. Zero when the heuristic found an optimum.
	ProteinGapGrams int `json:"proteinGapGrams" yaml:"proteinGapGrams"`
}
