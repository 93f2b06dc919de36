package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nutrikit/trophe/pkg/header"
	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/serializer"
	"github.com/nutrikit/trophe/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check the integrity of a plan or comparison document",
		Description: `Validate a previously generated document. The document kind is detected
from its header: plan documents get their totals, budget, calorie window,
and generator stamp re-checked; comparison documents additionally get
strategy coverage and the recorded protein gap verified.

# Constraint Format

Extra constraints address document fields by dotted path:

  selection.totalProteinGrams  - protein of the selection
  selection.totalKcal          - calories of the selection
  request.strategy             - strategy that produced the document
  metadata.version             - generator version stamp

# Supported Operators

Constraint expressions compare numerically when both sides parse as
numbers, and as versions otherwise:

  ">= 100"     - Greater than or equal
  "<= 5000"    - Less than or equal
  "> 0"        - Greater than
  "< 2.0"      - Less than
  "== greedy"  - Equal
  "!= 0"       - Not equal
  "greedy"     - Exact string match (no operator)

# Examples

Validate a plan document:
  trophe validate -d plan.yaml

Require at least 150 g of protein (useful in CI):
  trophe validate -d plan.yaml --fail-on-error \
    -c 'selection.totalProteinGrams=>= 150'

Validate a comparison and write the result to a file:
  trophe validate -d comparison.yaml -o result.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "document",
				Aliases:  []string{"d"},
				Required: true,
				Usage: `Path/URI to the document to validate (yaml or json).
	Supports: file paths or HTTP/HTTPS URLs.`,
			},
			&cli.StringSliceFlag{
				Name:    "constraint",
				Aliases: []string{"c"},
				Usage:   "Extra constraint in path=expression form (can be repeated, plan documents only)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any check fails",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			docPath := cmd.String("document")
			constraints, err := parseConstraints(cmd.StringSlice("constraint"))
			if err != nil {
				return err
			}

			slog.Info("loading document", "uri", docPath)

			// Read the header first to learn what we are validating.
			probe, err := serializer.FromFile[header.Header](docPath)
			if err != nil {
				return fmt.Errorf("failed to load document from %q: %w", docPath, err)
			}

			v := validator.New(
				validator.WithVersion(version),
				validator.WithSource(docPath),
			)

			var result *validator.ValidationResult
			switch probe.Kind {
			case header.KindPlan:
				doc, err := serializer.FromFile[plan.Plan](docPath)
				if err != nil {
					return fmt.Errorf("failed to load plan from %q: %w", docPath, err)
				}
				result, err = v.ValidatePlan(ctx, doc, constraints)
				if err != nil {
					return fmt.Errorf("validation failed: %w", err)
				}

			case header.KindComparison:
				if len(constraints) > 0 {
					return fmt.Errorf("constraints apply to %s documents only", header.KindPlan)
				}
				doc, err := serializer.FromFile[plan.Comparison](docPath)
				if err != nil {
					return fmt.Errorf("failed to load comparison from %q: %w", docPath, err)
				}
				result, err = v.ValidateComparison(ctx, doc)
				if err != nil {
					return fmt.Errorf("validation failed: %w", err)
				}

			default:
				return fmt.Errorf("document kind %q cannot be validated (expected %s or %s)",
					probe.Kind, header.KindPlan, header.KindComparison)
			}

			if err := writeDocument(ctx, outFormat, cmd.String("output"), result); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"skipped", result.Summary.Skipped,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && result.Summary.Status == validator.ValidationStatusFail {
				return fmt.Errorf("validation failed: %d check(s) did not pass", result.Summary.Failed)
			}

			return nil
		},
	}
}

// parseConstraints splits path=expression pairs into validator constraints.
// The split happens at the first "=", so expressions may carry their own
// operators: selection.totalKcal=<= 5000.
func parseConstraints(exprs []string) ([]validator.Constraint, error) {
	if len(exprs) == 0 {
		return nil, nil
	}

	constraints := make([]validator.Constraint, 0, len(exprs))
	for _, expr := range exprs {
		path, value, ok := strings.Cut(expr, "=")
		path = strings.TrimSpace(path)
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid constraint %q, expected path=expression", expr)
		}
		constraints = append(constraints, validator.Constraint{
			Name:  path,
			Value: strings.TrimSpace(value),
		})
	}
	return constraints, nil
}
