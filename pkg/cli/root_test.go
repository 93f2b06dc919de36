package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/nutrikit/trophe/pkg/optimize"
	"github.com/nutrikit/trophe/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "invalid format csv",
			format:  "csv",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a minimal CLI command with the format flag
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			// Run the command with the test format
			err := cmd.Run(context.Background(), []string{"test"})
			if err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRequestFromCmd(t *testing.T) {
	cmd := &cli.Command{
		Flags: append(planFlags(),
			&cli.StringFlag{Name: "strategy", Value: string(optimize.StrategyGreedy)},
		),
		Action: func(_ context.Context, c *cli.Command) error {
			req := requestFromCmd(c)
			if req.Source != "abbrev.txt" {
				t.Errorf("Source = %q, want abbrev.txt", req.Source)
			}
			if req.Strategy != optimize.StrategyExhaustive {
				t.Errorf("Strategy = %q, want exhaustive", req.Strategy)
			}
			if req.BudgetKCal != 1200 {
				t.Errorf("BudgetKCal = %d, want 1200", req.BudgetKCal)
			}
			if req.MaxCandidates != 12 {
				t.Errorf("MaxCandidates = %d, want 12", req.MaxCandidates)
			}
			return nil
		},
	}

	err := cmd.Run(context.Background(), []string{
		"test", "-f", "abbrev.txt", "--strategy", "exhaustive", "-b", "1200", "-n", "12",
	})
	if err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
}

func TestParseConstraints(t *testing.T) {
	tests := []struct {
		name    string
		exprs   []string
		want    int
		wantErr bool
	}{
		{
			name: "empty",
		},
		{
			name:  "exact match",
			exprs: []string{"request.strategy=greedy"},
			want:  1,
		},
		{
			name:  "operator expression keeps its equals sign",
			exprs: []string{"selection.totalProteinGrams=>= 150"},
			want:  1,
		},
		{
			name:  "multiple",
			exprs: []string{"kind=Plan", "selection.totalKcal=<= 5000"},
			want:  2,
		},
		{
			name:    "missing separator",
			exprs:   []string{"selection.totalKcal"},
			wantErr: true,
		},
		{
			name:    "empty path",
			exprs:   []string{"=greedy"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConstraints(tt.exprs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseConstraints() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.want {
				t.Errorf("parseConstraints() returned %d constraints, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseConstraintValue(t *testing.T) {
	got, err := parseConstraints([]string{"selection.totalProteinGrams=>= 150"})
	if err != nil {
		t.Fatalf("parseConstraints() error = %v", err)
	}
	if got[0].Name != "selection.totalProteinGrams" {
		t.Errorf("Name = %q", got[0].Name)
	}
	if got[0].Value != ">= 150" {
		t.Errorf("Value = %q, want %q", got[0].Value, ">= 150")
	}
}
