package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/optimize"
	"github.com/nutrikit/trophe/pkg/plan"
)

// planFlags are the knobs shared by plan, compare, and foods.
func planFlags() []cli.Flag {
	return []cli.Flag{
		sourceFlag,
		&cli.IntFlag{
			Name:    "budget",
			Aliases: []string{"b"},
			Value:   defaults.PlanBudgetKCal,
			Usage:   "Total calorie budget the selection must not exceed",
		},
		&cli.IntFlag{
			Name:  "min-kcal",
			Value: defaults.PlanMinKCal,
			Usage: "Exclude foods with fewer calories per serving",
		},
		&cli.IntFlag{
			Name:  "max-kcal",
			Value: defaults.PlanMaxKCal,
			Usage: "Exclude foods with more calories per serving",
		},
		&cli.IntFlag{
			Name:    "max-candidates",
			Aliases: []string{"n"},
			Value:   defaults.PlanMaxCandidates,
			Usage: fmt.Sprintf("Cap on the candidate pool handed to the strategy (max %d)",
				defaults.ExhaustiveCandidateLimit),
		},
	}
}

func planCmd() *cli.Command {
	return &cli.Command{
		Name:                  "plan",
		EnableShellCompletion: true,
		Usage:                 "Select the highest-protein foods that fit a calorie budget",
		Description: `Select a set of foods from a nutrition dataset that maximizes total
protein without exceeding the calorie budget.

# Strategies

  greedy      - Repeatedly picks the highest-protein food that still fits.
                Fast, but may miss the optimum.
  exhaustive  - Enumerates every subset of the candidate pool and returns
                the true optimum. Runtime doubles with every candidate;
                pools past ~25 foods take minutes.

# Examples

Plan against the embedded sample dataset:
  trophe plan --budget 5000

Plan against a local ABBREV file with the exhaustive strategy:
  trophe plan -f ABBREV.txt -s exhaustive -n 20

Write the plan document to a JSON file:
  trophe plan -f ABBREV.txt -o plan.json -t json`,
		Flags: append(planFlags(),
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Value:   string(optimize.StrategyGreedy),
				Usage: fmt.Sprintf("Selection strategy (supported values: %v)",
					optimize.Strategies),
			},
			outputFlag,
			formatFlag,
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			req := requestFromCmd(cmd)
			if req.Strategy == optimize.StrategyExhaustive && req.MaxCandidates > defaults.ExhaustiveWarnThreshold {
				slog.Warn("exhaustive search over large pools can take minutes",
					"candidates", req.MaxCandidates,
					"threshold", defaults.ExhaustiveWarnThreshold)
			}

			builder := plan.NewBuilder(
				plan.WithVersion(version),
			)

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIPlanTimeout)
			defer cancel()

			doc, err := builder.Build(ctx, req)
			if err != nil {
				return fmt.Errorf("error building plan: %w", err)
			}

			slog.Info("plan completed",
				"strategy", doc.Selection.Strategy,
				"candidates", doc.CandidateCount,
				"foods", len(doc.Selection.Foods),
				"kcal", doc.Selection.TotalKCal,
				"protein", doc.Selection.TotalProteinGrams)

			return writeDocument(ctx, outFormat, cmd.String("output"), doc)
		},
	}
}
