package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/serializer"
)

func foodsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "foods",
		EnableShellCompletion: true,
		Usage:                 "List the candidate foods a plan would choose from",
		Description: `List the filtered candidate pool without running a selection. The same
filter the planner applies: foods with zero or unknown calories are
dropped, the per-serving calorie window is enforced, and the pool is
capped at the candidate limit in dataset order.

The table format renders a readable listing; json and yaml emit the full
food list document.

# Examples

List candidates from the embedded sample dataset:
  trophe foods -t table

List the first 30 foods of a local ABBREV file under 800 kcal:
  trophe foods -f ABBREV.txt --max-kcal 800 -n 30`,
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

			builder := plan.NewBuilder(
				plan.WithVersion(version),
			)

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIPlanTimeout)
			defer cancel()

			doc, err := builder.Foods(ctx, req)
			if err != nil {
				return fmt.Errorf("error listing foods: %w", err)
			}

			slog.Info("foods listed",
				"count", doc.Count,
				"kcal", doc.TotalKCal,
				"protein", doc.TotalProteinGrams)

			if outFormat == serializer.FormatTable {
				return writeFoodsTable(cmd.String("output"), doc)
			}
			return writeDocument(ctx, outFormat, cmd.String("output"), doc)
		},
	}
}

// writeFoodsTable renders the listing to the output path or stdout.
func writeFoodsTable(path string, doc *plan.FoodList) error {
	out := io.Writer(os.Stdout)
	if path = strings.TrimSpace(path); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", path, err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				slog.Warn("failed to close output file", "error", err)
			}
		}()
		out = file
	}
	return renderFoodsTable(out, doc)
}

// renderFoodsTable writes the candidate pool as an aligned table with the
// dataset's all-caps descriptions rewritten into title case.
func renderFoodsTable(out io.Writer, doc *plan.FoodList) error {
	caser := cases.Title(language.AmericanEnglish)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FOOD\tSERVING\tGRAMS\tKCAL\tPROTEIN(G)")
	for _, f := range doc.Foods {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
			caser.String(strings.ToLower(f.Description)),
			f.Serving, f.ServingGrams, f.KCal, f.ProteinGrams)
	}
	fmt.Fprintf(tw, "TOTAL (%d)\t\t\t%d\t%d\n", doc.Count, doc.TotalKCal, doc.TotalProteinGrams)
	return tw.Flush()
}
