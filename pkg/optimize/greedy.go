package optimize

import (
	"time"

	"github.com/nutrikit/trophe/pkg/food"
)

// Greedy selects records by repeatedly scanning the remaining candidates for
// the one with the most protein, accepting it when it still fits the budget
// and discarding it otherwise. Ties on protein resolve to the earliest
// candidate. The scan always consumes its pick, so the loop runs exactly
// len(candidates) times.
//
// The result never exceeds budgetKCal in total calories. Candidates are
// shared by reference and never mutated; the working set is a private copy
// of the slice.
func Greedy(candidates food.List, budgetKCal int) food.List {
	start := time.Now()
	defer func() {
		selectorRuns.WithLabelValues(string(StrategyGreedy)).Inc()
		selectorDuration.WithLabelValues(string(StrategyGreedy)).Observe(time.Since(start).Seconds())
	}()

	todo := candidates.Clone()
	result := make(food.List, 0, len(candidates))
	consumedKCal := 0

	for len(todo) > 0 {
		// Earliest strictly-greatest protein wins
		best := 0
		for i := 1; i < len(todo); i++ {
			if todo[i].ProteinGrams > todo[best].ProteinGrams {
				best = i
			}
		}

		if consumedKCal+todo[best].KCal <= budgetKCal {
			result = append(result, todo[best])
			consumedKCal += todo[best].KCal
		}

		// The pick leaves the working set whether or not it was accepted
		todo = append(todo[:best], todo[best+1:]...)
	}

	return result
}
