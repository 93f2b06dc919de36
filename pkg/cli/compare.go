package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/plan"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Run every strategy on the same candidate pool",
		Description: `Run all selection strategies against the same candidate pool and report
how far the greedy heuristic lands from the exhaustive optimum.

The resulting comparison document records one selection per strategy plus
the protein gap in grams. A gap of zero means the heuristic found an
optimum for this pool.

# Examples

Compare strategies on the embedded sample dataset:
  trophe compare --budget 5000

Compare on a local ABBREV file with a tighter pool:
  trophe compare -f ABBREV.txt -n 15 -o comparison.yaml`,
		Flags: append(planFlags(),
			outputFlag,
			formatFlag,
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			req := requestFromCmd(cmd)
			if req.MaxCandidates > defaults.ExhaustiveWarnThreshold {
				slog.Warn("exhaustive search over large pools can take minutes",
					"candidates", req.MaxCandidates,
					"threshold", defaults.ExhaustiveWarnThreshold)
			}

			builder := plan.NewBuilder(
				plan.WithVersion(version),
			)

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIPlanTimeout)
			defer cancel()

			doc, err := builder.Compare(ctx, req)
			if err != nil {
				return fmt.Errorf("error building comparison: %w", err)
			}

			slog.Info("comparison completed",
				"candidates", doc.CandidateCount,
				"strategies", len(doc.Selections),
				"proteinGap", doc.ProteinGapGrams)

			return writeDocument(ctx, outFormat, cmd.String("output"), doc)
		},
	}
}
