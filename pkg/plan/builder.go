package plan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/food"
	"github.com/nutrikit/trophe/pkg/header"
	"github.com/nutrikit/trophe/pkg/optimize"
	"github.com/nutrikit/trophe/pkg/usda"
)

// Loader produces validated food records from a dataset source.
// *usda.Loader satisfies it; tests substitute fixtures.
type Loader interface {
	Load(ctx context.Context, source string) (food.List, error)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithVersion sets the generator version stamped into document headers.
func WithVersion(version string) BuilderOption {
	return func(b *Builder) {
		b.version = version
	}
}

// WithLoader sets the dataset loader. Default is usda.NewLoader().
func WithLoader(l Loader) BuilderOption {
	return func(b *Builder) {
		b.loader = l
	}
}

// Builder runs the planning pipeline: load, filter, select, document.
type Builder struct {
	version string
	loader  Loader
}

// NewBuilder creates a Builder with the provided options.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}

	// Apply options
	for _, opt := range opts {
		opt(b)
	}

	if b.loader == nil {
		b.loader = usda.NewLoader()
	}
	return b
}

// Candidates loads the dataset named by the request and filters it to the
// bounded candidate pool the strategies operate on.
func (b *Builder) Candidates(ctx context.Context, req Request) (food.List, error) {
	records, err := b.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	candidates := optimize.Filter(records, req.MinKCal, req.MaxKCal, req.MaxCandidates)

	slog.Debug("candidate pool built",
		"records", len(records),
		"candidates", len(candidates),
		"minKcal", req.MinKCal,
		"maxKcal", req.MaxKCal,
		"limit", req.MaxCandidates,
	)

	return candidates, nil
}

// Build runs one strategy and wraps the outcome in a Plan document.
func (b *Builder) Build(ctx context.Context, req Request) (*Plan, error) {
	start := time.Now()
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		buildTotal.WithLabelValues("plan", "invalid").Inc()
		return nil, fmt.Errorf("invalid plan request: %w", err)
	}

	candidates, err := b.Candidates(ctx, req)
	if err != nil {
		buildTotal.WithLabelValues("plan", "error").Inc()
		return nil, err
	}

	sel, err := b.run(ctx, req.Strategy, candidates, req.BudgetKCal)
	if err != nil {
		buildTotal.WithLabelValues("plan", "error").Inc()
		return nil, err
	}

	p := &Plan{
		Request:        req,
		CandidateCount: len(candidates),
		Selection:      sel,
	}
	p.Init(header.KindPlan, APIVersion, b.version)

	buildTotal.WithLabelValues("plan", "success").Inc()
	buildDuration.WithLabelValues("plan").Observe(time.Since(start).Seconds())
	return p, nil
}

// Foods filters the dataset and wraps the candidate pool in a FoodList
// document without running a selection.
func (b *Builder) Foods(ctx context.Context, req Request) (*FoodList, error) {
	start := time.Now()
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		buildTotal.WithLabelValues("foods", "invalid").Inc()
		return nil, fmt.Errorf("invalid foods request: %w", err)
	}

	candidates, err := b.Candidates(ctx, req)
	if err != nil {
		buildTotal.WithLabelValues("foods", "error").Inc()
		return nil, err
	}

	kcal, protein := candidates.Totals()
	f := &FoodList{
		Request:           req,
		Count:             len(candidates),
		TotalKCal:         kcal,
		TotalProteinGrams: protein,
		Foods:             candidates,
	}
	f.Init(header.KindFoodList, APIVersion, b.version)

	buildTotal.WithLabelValues("foods", "success").Inc()
	buildDuration.WithLabelValues("foods").Observe(time.Since(start).Seconds())
	return f, nil
}

// Compare runs every strategy on the same candidate pool and wraps the
// outcomes in a Comparison document. The strategies run concurrently; each
// works on its own copy of the shared immutable candidates.
func (b *Builder) Compare(ctx context.Context, req Request) (*Comparison, error) {
	start := time.Now()
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		buildTotal.WithLabelValues("comparison", "invalid").Inc()
		return nil, fmt.Errorf("invalid comparison request: %w", err)
	}

	candidates, err := b.Candidates(ctx, req)
	if err != nil {
		buildTotal.WithLabelValues("comparison", "error").Inc()
		return nil, err
	}

	var mu sync.Mutex
	selections := make([]Selection, len(optimize.Strategies))

	g, gctx := errgroup.WithContext(ctx)
	for i, strategy := range optimize.Strategies {
		g.Go(func() error {
			sel, err := b.run(gctx, strategy, candidates, req.BudgetKCal)
			if err != nil {
				return err
			}
			mu.Lock()
			selections[i] = sel
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		buildTotal.WithLabelValues("comparison", "error").Inc()
		return nil, err
	}

	c := &Comparison{
		Request:        req,
		CandidateCount: len(candidates),
		Selections:     selections,
		ProteinGapGrams: selectionProtein(selections, optimize.StrategyExhaustive) -
			selectionProtein(selections, optimize.StrategyGreedy),
	}
	c.Init(header.KindComparison, APIVersion, b.version)

	buildTotal.WithLabelValues("comparison", "success").Inc()
	buildDuration.WithLabelValues("comparison").Observe(time.Since(start).Seconds())
	return c, nil
}

// run executes one strategy over the candidates and times it.
func (b *Builder) run(ctx context.Context, strategy optimize.Strategy, candidates food.List, budgetKCal int) (Selection, error) {
	if strategy == optimize.StrategyExhaustive && len(candidates) > defaults.ExhaustiveWarnThreshold {
		slog.Warn("large candidate pool for exhaustive search, expect a long runtime",
			"candidates", len(candidates),
			"threshold", defaults.ExhaustiveWarnThreshold,
		)
	}

	start := time.Now()

	var foods food.List
	var err error
	switch strategy {
	case optimize.StrategyGreedy:
		foods = optimize.Greedy(candidates, budgetKCal)
	case optimize.StrategyExhaustive:
		foods, err = optimize.Exhaustive(ctx, candidates, budgetKCal)
	default:
		err = fmt.Errorf("unknown strategy %q", strategy)
	}
	if err != nil {
		return Selection{}, fmt.Errorf("%s selection failed: %w", strategy, err)
	}

	kcal, protein := foods.Totals()
	return Selection{
		Strategy:          strategy,
		Foods:             foods,
		TotalKCal:         kcal,
		TotalProteinGrams: protein,
		ElapsedSeconds:    time.Since(start).Seconds(),
	}, nil
}

func selectionProtein(selections []Selection, strategy optimize.Strategy) int {
	for _, sel := range selections {
		if sel.Strategy == strategy {
			return sel.TotalProteinGrams
		}
	}
	return 0
}
