package optimize

import (
	"testing"

	"github.com/nutrikit/trophe/pkg/food"
)

func descs(l food.List) []string {
	out := make([]string, 0, len(l))
	for _, r := range l {
		out = append(out, r.Description)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGreedy(t *testing.T) {
	tests := []struct {
		name        string
		candidates  food.List
		budget      int
		wantDescs   []string
		wantKCal    int
		wantProtein int
	}{
		{
			name: "classic three foods",
			candidates: food.List{
				rec("A", 100, 5),
				rec("B", 200, 20),
				rec("C", 150, 15),
			},
			budget:      300,
			wantDescs:   []string{"B", "A"},
			wantKCal:    300,
			wantProtein: 25,
		},
		{
			name: "everything fits",
			candidates: food.List{
				rec("A", 100, 5),
				rec("B", 200, 20),
			},
			budget:      1000,
			wantDescs:   []string{"B", "A"},
			wantKCal:    300,
			wantProtein: 25,
		},
		{
			name: "nothing fits",
			candidates: food.List{
				rec("A", 400, 5),
				rec("B", 500, 20),
			},
			budget:      300,
			wantDescs:   []string{},
			wantKCal:    0,
			wantProtein: 0,
		},
		{
			name:        "empty candidates",
			candidates:  food.List{},
			budget:      300,
			wantDescs:   []string{},
			wantKCal:    0,
			wantProtein: 0,
		},
		{
			name:        "nil candidates",
			candidates:  nil,
			budget:      300,
			wantDescs:   []string{},
			wantKCal:    0,
			wantProtein: 0,
		},
		{
			name: "protein tie keeps first occurrence",
			candidates: food.List{
				rec("first", 100, 10),
				rec("second", 50, 10),
			},
			budget:      100,
			wantDescs:   []string{"first"},
			wantKCal:    100,
			wantProtein: 10,
		},
		{
			name: "rejected pick still leaves the pool",
			candidates: food.List{
				rec("heavy", 500, 50),
				rec("light", 100, 10),
			},
			budget:      200,
			wantDescs:   []string{"light"},
			wantKCal:    100,
			wantProtein: 10,
		},
		{
			name: "zero budget admits only zero-kcal picks",
			candidates: food.List{
				rec("A", 100, 5),
			},
			budget:      0,
			wantDescs:   []string{},
			wantKCal:    0,
			wantProtein: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Greedy(tt.candidates, tt.budget)
			if got == nil {
				t.Fatal("Greedy() returned nil, want empty list")
			}
			if !equalStrings(descs(got), tt.wantDescs) {
				t.Errorf("Greedy() = %v, want %v", descs(got), tt.wantDescs)
			}
			kcal, protein := got.Totals()
			if kcal != tt.wantKCal || protein != tt.wantProtein {
				t.Errorf("Greedy() totals = (%d, %d), want (%d, %d)",
					kcal, protein, tt.wantKCal, tt.wantProtein)
			}
			if kcal > tt.budget {
				t.Errorf("Greedy() total kcal %d exceeds budget %d", kcal, tt.budget)
			}
		})
	}
}

func TestGreedyIdempotent(t *testing.T) {
	candidates := food.List{
		rec("A", 100, 5),
		rec("B", 200, 20),
		rec("C", 150, 15),
		rec("D", 50, 15),
	}

	first := Greedy(candidates, 300)
	second := Greedy(candidates, 300)
	if !equalStrings(descs(first), descs(second)) {
		t.Errorf("repeated runs differ: %v vs %v", descs(first), descs(second))
	}
}

func TestGreedyDoesNotModifyCandidates(t *testing.T) {
	candidates := food.List{
		rec("A", 100, 5),
		rec("B", 200, 20),
		rec("C", 150, 15),
	}

	_ = Greedy(candidates, 300)
	if !equalStrings(descs(candidates), []string{"A", "B", "C"}) {
		t.Errorf("Greedy() reordered its input: %v", descs(candidates))
	}
}

func TestGreedySharesRecords(t *testing.T) {
	a := rec("A", 100, 5)
	b := rec("B", 200, 20)

	got := Greedy(food.List{a, b}, 1000)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0] != b || got[1] != a {
		t.Error("Greedy() should return shared record references")
	}
}

func TestGreedyBudgetRespected(t *testing.T) {
	// Pseudo-random pool; every budget must hold the kcal invariant
	candidates := make(food.List, 0, 30)
	for i := 0; i < 30; i++ {
		kcal := (i*137)%900 + 1
		protein := (i * 31) % 60
		candidates = append(candidates, rec("item", kcal, protein))
	}

	for _, budget := range []int{0, 100, 500, 1000, 5000} {
		got := Greedy(candidates, budget)
		if kcal, _ := got.Totals(); kcal > budget {
			t.Errorf("budget %d: result kcal %d exceeds budget", budget, kcal)
		}
	}
}
