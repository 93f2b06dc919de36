package optimize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nutrikit/trophe/pkg/food"
)

// ExhaustiveLimit is the largest candidate pool Exhaustive accepts. Subsets
// are enumerated as bit patterns of a uint64 counter, so the pool must stay
// below 64 records.
const ExhaustiveLimit = 63

// ErrTooManyCandidates is returned by Exhaustive when the candidate pool is
// too large to enumerate. Callers bound the pool with Filter first.
var ErrTooManyCandidates = errors.New("too many candidates for exhaustive search")

// Exhaustive enumerates every subset of the candidates and returns the one
// with the most protein among those whose total calories fit the budget.
// Subset j of the enumeration selects candidate i when bit i of j is set,
// so candidate order fixes which of several equally-good subsets wins: a
// subset only displaces the incumbent when its protein is strictly greater.
// The one exception is a zero-protein incumbent, which any later feasible
// subset with zero protein replaces; the zero value doubles as the
// "nothing selected yet" marker so the last such subset wins.
//
// Runtime is O(2^n * n). The pool size must stay below 64 (ExhaustiveLimit);
// larger pools return ErrTooManyCandidates rather than truncating silently.
// Cancellation via ctx is honored between enumeration batches.
func Exhaustive(ctx context.Context, candidates food.List, budgetKCal int) (food.List, error) {
	n := len(candidates)
	if n > ExhaustiveLimit {
		selectorOverflow.Inc()
		return nil, fmt.Errorf("%w: %d candidates, limit %d", ErrTooManyCandidates, n, ExhaustiveLimit)
	}

	start := time.Now()
	defer func() {
		selectorRuns.WithLabelValues(string(StrategyExhaustive)).Inc()
		selectorDuration.WithLabelValues(string(StrategyExhaustive)).Observe(time.Since(start).Seconds())
	}()

	var best food.List
	bestProtein := 0

	total := uint64(1) << uint(n)
	for mask := uint64(0); mask < total; mask++ {
		// Checking per mask would dominate the inner loop
		if mask&0xffff == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// Fresh sums for this subset
		kcal, protein := 0, 0
		for j := 0; j < n; j++ {
			if mask>>uint(j)&1 == 1 {
				kcal += candidates[j].KCal
				protein += candidates[j].ProteinGrams
			}
		}

		if kcal <= budgetKCal && (bestProtein == 0 || protein > bestProtein) {
			selection := make(food.List, 0, n)
			for j := 0; j < n; j++ {
				if mask>>uint(j)&1 == 1 {
					selection = append(selection, candidates[j])
				}
			}
			best = selection
			bestProtein = protein
		}
	}

	if best == nil {
		best = make(food.List, 0)
	}
	return best, nil
}
