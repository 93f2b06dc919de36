package optimize

import "testing"

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input  string
		want   Strategy
		wantOK bool
	}{
		{"greedy", StrategyGreedy, true},
		{"exhaustive", StrategyExhaustive, true},
		{"", "", false},
		{"Greedy", "", false},
		{"optimal", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStrategy(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseStrategy(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStrategyString(t *testing.T) {
	if StrategyGreedy.String() != "greedy" {
		t.Errorf("unexpected string: %s", StrategyGreedy)
	}
	if StrategyExhaustive.String() != "exhaustive" {
		t.Errorf("unexpected string: %s", StrategyExhaustive)
	}
}
