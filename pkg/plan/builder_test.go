package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/food"
	"github.com/nutrikit/trophe/pkg/header"
	"github.com/nutrikit/trophe/pkg/optimize"
)

type fixtureLoader struct {
	records food.List
	err     error
	source  string
}

func (f *fixtureLoader) Load(ctx context.Context, source string) (food.List, error) {
	f.source = source
	return f.records, f.err
}

func fixtureRecords() food.List {
	return food.List{
		{Description: "A", Serving: "1 cup", ServingGrams: 100, KCal: 100, ProteinGrams: 5},
		{Description: "B", Serving: "1 cup", ServingGrams: 100, KCal: 200, ProteinGrams: 20},
		{Description: "C", Serving: "1 cup", ServingGrams: 100, KCal: 150, ProteinGrams: 15},
	}
}

func testRequest(strategy optimize.Strategy) Request {
	return Request{
		Strategy:      strategy,
		BudgetKCal:    300,
		MinKCal:       1,
		MaxKCal:       2000,
		MaxCandidates: 10,
	}
}

func TestBuildGreedy(t *testing.T) {
	b := NewBuilder(
		WithVersion("1.2.3"),
		WithLoader(&fixtureLoader{records: fixtureRecords()}),
	)

	p, err := b.Build(context.Background(), testRequest(optimize.StrategyGreedy))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if p.Kind != header.KindPlan {
		t.Errorf("Kind = %q, want %q", p.Kind, header.KindPlan)
	}
	if p.APIVersion != APIVersion {
		t.Errorf("APIVersion = %q, want %q", p.APIVersion, APIVersion)
	}
	if p.Metadata["version"] != "1.2.3" {
		t.Errorf("Metadata version = %q, want 1.2.3", p.Metadata["version"])
	}
	if p.CandidateCount != 3 {
		t.Errorf("CandidateCount = %d, want 3", p.CandidateCount)
	}

	// Greedy picks B first, rejects C over budget, then accepts A.
	sel := p.Selection
	if len(sel.Foods) != 2 || sel.Foods[0].Description != "B" || sel.Foods[1].Description != "A" {
		t.Fatalf("Selection.Foods = %v, want [B A]", sel.Foods)
	}
	if sel.TotalKCal != 300 || sel.TotalProteinGrams != 25 {
		t.Errorf("totals = (%d kcal, %d g), want (300, 25)", sel.TotalKCal, sel.TotalProteinGrams)
	}
}

func TestBuildExhaustive(t *testing.T) {
	b := NewBuilder(WithLoader(&fixtureLoader{records: fixtureRecords()}))

	p, err := b.Build(context.Background(), testRequest(optimize.StrategyExhaustive))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Selection.TotalProteinGrams != 25 {
		t.Errorf("exhaustive protein = %d, want 25", p.Selection.TotalProteinGrams)
	}
	if p.Selection.TotalKCal > 300 {
		t.Errorf("exhaustive kcal = %d, exceeds budget", p.Selection.TotalKCal)
	}
}

func TestBuildNormalizesDefaults(t *testing.T) {
	l := &fixtureLoader{records: fixtureRecords()}
	b := NewBuilder(WithLoader(l))

	p, err := b.Build(context.Background(), Request{Source: "abbrev.txt"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if l.source != "abbrev.txt" {
		t.Errorf("loader saw source %q, want abbrev.txt", l.source)
	}
	req := p.Request
	if req.Strategy != optimize.StrategyGreedy {
		t.Errorf("Strategy = %q, want greedy default", req.Strategy)
	}
	if req.BudgetKCal != defaults.PlanBudgetKCal ||
		req.MaxKCal != defaults.PlanMaxKCal ||
		req.MaxCandidates != defaults.PlanMaxCandidates {
		t.Errorf("defaults not applied: %+v", req)
	}
}

func TestBuildInvalidRequest(t *testing.T) {
	b := NewBuilder(WithLoader(&fixtureLoader{records: fixtureRecords()}))

	tests := []struct {
		name string
		req  Request
	}{
		{"unknown strategy", Request{Strategy: "oracle", BudgetKCal: 1, MaxKCal: 1, MaxCandidates: 1}},
		{"negative budget", Request{Strategy: "greedy", BudgetKCal: -1, MaxKCal: 1, MaxCandidates: 1}},
		{"inverted window", Request{Strategy: "greedy", BudgetKCal: 1, MinKCal: 10, MaxKCal: 5, MaxCandidates: 1}},
		{"cap above enumeration limit", Request{Strategy: "greedy", BudgetKCal: 1, MaxKCal: 1, MaxCandidates: 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Build(context.Background(), tt.req); err == nil {
				t.Error("Build() accepted an invalid request")
			}
		})
	}
}

func TestBuildLoaderFailure(t *testing.T) {
	want := errors.New("boom")
	b := NewBuilder(WithLoader(&fixtureLoader{err: want}))

	if _, err := b.Build(context.Background(), testRequest(optimize.StrategyGreedy)); !errors.Is(err, want) {
		t.Fatalf("Build() error = %v, want wrapped %v", err, want)
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	b := NewBuilder(WithLoader(&fixtureLoader{records: food.List{}}))

	p, err := b.Build(context.Background(), testRequest(optimize.StrategyGreedy))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.CandidateCount != 0 || len(p.Selection.Foods) != 0 {
		t.Errorf("empty dataset produced %d candidates and %v", p.CandidateCount, p.Selection.Foods)
	}
}

func TestFoods(t *testing.T) {
	b := NewBuilder(
		WithVersion("1.2.3"),
		WithLoader(&fixtureLoader{records: fixtureRecords()}),
	)

	req := testRequest("")
	req.MaxCandidates = 2
	f, err := b.Foods(context.Background(), req)
	if err != nil {
		t.Fatalf("Foods() error = %v", err)
	}

	if f.Kind != header.KindFoodList {
		t.Errorf("Kind = %q, want %q", f.Kind, header.KindFoodList)
	}
	if f.Count != 2 || len(f.Foods) != 2 {
		t.Fatalf("Count = %d with %d foods, want 2", f.Count, len(f.Foods))
	}
	// Filter preserves dataset order, so the cap keeps A and B.
	if f.Foods[0].Description != "A" || f.Foods[1].Description != "B" {
		t.Errorf("Foods = %v, want [A B]", f.Foods)
	}
	if f.TotalKCal != 300 || f.TotalProteinGrams != 25 {
		t.Errorf("totals = (%d kcal, %d g), want (300, 25)", f.TotalKCal, f.TotalProteinGrams)
	}
}

func TestCompare(t *testing.T) {
	b := NewBuilder(WithLoader(&fixtureLoader{records: fixtureRecords()}))

	c, err := b.Compare(context.Background(), testRequest(""))
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if c.Kind != header.KindComparison {
		t.Errorf("Kind = %q, want %q", c.Kind, header.KindComparison)
	}
	if len(c.Selections) != len(optimize.Strategies) {
		t.Fatalf("Selections = %d entries, want %d", len(c.Selections), len(optimize.Strategies))
	}
	for _, sel := range c.Selections {
		if sel.TotalKCal > 300 {
			t.Errorf("%s kcal = %d, exceeds budget", sel.Strategy, sel.TotalKCal)
		}
	}
	// On this pool the heuristic happens to find an optimum.
	if c.ProteinGapGrams != 0 {
		t.Errorf("ProteinGapGrams = %d, want 0", c.ProteinGapGrams)
	}
}

func TestCompareGreedySuboptimal(t *testing.T) {
	// Greedy grabs the 26-g record first, burning 500 kcal; the optimum is
	// the two 250-kcal records worth 30 g combined.
	records := food.List{
		{Description: "BIG", Serving: "1 cup", ServingGrams: 100, KCal: 500, ProteinGrams: 26},
		{Description: "HALF1", Serving: "1 cup", ServingGrams: 100, KCal: 250, ProteinGrams: 15},
		{Description: "HALF2", Serving: "1 cup", ServingGrams: 100, KCal: 250, ProteinGrams: 15},
	}
	b := NewBuilder(WithLoader(&fixtureLoader{records: records}))

	req := testRequest("")
	req.BudgetKCal = 500
	c, err := b.Compare(context.Background(), req)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if got := selectionProtein(c.Selections, optimize.StrategyGreedy); got != 26 {
		t.Errorf("greedy protein = %d, want 26", got)
	}
	if got := selectionProtein(c.Selections, optimize.StrategyExhaustive); got != 30 {
		t.Errorf("exhaustive protein = %d, want 30", got)
	}
	if c.ProteinGapGrams != 4 {
		t.Errorf("ProteinGapGrams = %d, want 4", c.ProteinGapGrams)
	}
}

func TestBuildIdempotent(t *testing.T) {
	b := NewBuilder(WithLoader(&fixtureLoader{records: fixtureRecords()}))
	req := testRequest(optimize.StrategyExhaustive)

	p1, err := b.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	p2, err := b.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(p1.Selection.Foods) != len(p2.Selection.Foods) {
		t.Fatalf("runs disagree: %v vs %v", p1.Selection.Foods, p2.Selection.Foods)
	}
	for i := range p1.Selection.Foods {
		if p1.Selection.Foods[i] != p2.Selection.Foods[i] {
			t.Errorf("position %d: %v vs %v", i, p1.Selection.Foods[i], p2.Selection.Foods[i])
		}
	}
}
