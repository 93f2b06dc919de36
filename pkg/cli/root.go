package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/nutrikit/trophe/pkg/logging"
	"github.com/nutrikit/trophe/pkg/optimize"
	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/serializer"
)

const (
	name           = "trophe"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	// e.g., -X "github.com/nutrikit/trophe/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared by every command that produces a document.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}

	sourceFlag = &cli.StringFlag{
		Name:    "source",
		Aliases: []string{"f"},
		Sources: cli.EnvVars("TROPHE_DATASET"),
		Usage: `Path/URI to the nutrition dataset in USDA ABBREV format.
	Supports: file paths, HTTP/HTTPS URLs, S3 URIs (s3://bucket/key), plus
	gzip-compressed variants of each. Empty uses the embedded sample dataset.`,
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Maximize protein under a calorie budget",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("TROPHE_LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			planCmd(),
			compareCmd(),
			foodsCmd(),
			validateCmd(),
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat resolves the format flag to a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// requestFromCmd builds a planning request from the command flags. Flags a
// command does not define read as zero and are filled by normalization.
func requestFromCmd(cmd *cli.Command) plan.Request {
	return plan.Request{
		Source:        cmd.String("source"),
		Strategy:      optimize.Strategy(cmd.String("strategy")),
		BudgetKCal:    int(cmd.Int("budget")),
		MinKCal:       int(cmd.Int("min-kcal")),
		MaxKCal:       int(cmd.Int("max-kcal")),
		MaxCandidates: int(cmd.Int("max-candidates")),
	}
}

// writeDocument serializes doc to the output flag destination.
func writeDocument(ctx context.Context, format serializer.Format, path string, doc any) error {
	ser := serializer.NewFileWriterOrStdout(format, path)
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, doc)
}
