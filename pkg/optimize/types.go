package optimize

// Strategy identifies a selection algorithm.
type Strategy string

const (
	// StrategyGreedy selects the highest-protein record that still fits,
	// repeatedly. Fast but approximate.
	StrategyGreedy Strategy = "greedy"

	// StrategyExhaustive enumerates every candidate subset. Exact but
	// exponential in the pool size.
	StrategyExhaustive Strategy = "exhaustive"
)

// Strategies is the list of all supported selection strategies.
var Strategies = []Strategy{
	StrategyGreedy,
	StrategyExhaustive,
}

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy parses a string into a Strategy.
// Returns the Strategy and true if parsing succeeds, or empty Strategy and
// false if the string is invalid.
func ParseStrategy(s string) (Strategy, bool) {
	for _, st := range Strategies {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
