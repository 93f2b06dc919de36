package defaults

// Planner parameter defaults. These mirror the classic study configuration:
// a 5000 kcal budget over foods in the [0, 2000] kcal window, with the
// candidate pool trimmed to the first 20 usable records.
const (
	// PlanBudgetKCal is the default total calorie budget for a plan.
	PlanBudgetKCal = 5000

	// PlanMinKCal is the default lower bound of the per-food calorie window.
	PlanMinKCal = 0

	// PlanMaxKCal is the default upper bound of the per-food calorie window.
	PlanMaxKCal = 2000

	// PlanMaxCandidates is the default size of the candidate pool handed to
	// a selection strategy.
	PlanMaxCandidates = 20
)

// Exhaustive strategy bounds. Subsets are enumerated as bit patterns of a
// uint64 counter, so the pool must stay below 64 records.
const (
	// ExhaustiveCandidateLimit is the largest candidate pool the exhaustive
	// strategy accepts.
	ExhaustiveCandidateLimit = 63

	// ExhaustiveWarnThreshold is the pool size beyond which planners warn
	// before running the exhaustive strategy. Past this point runtime grows
	// into minutes.
	ExhaustiveWarnThreshold = 25
)
