// Package cli implements the trophe command-line interface.
//
// # Overview
//
// The trophe CLI selects foods from a nutrition dataset to maximize protein
// under a calorie budget, compares selection strategies against each other,
// lists candidate pools, and validates previously generated documents.
//
// # Commands
//
// plan - Select the highest-protein foods that fit a calorie budget:
//
//	trophe plan -f ABBREV.txt --budget 5000 --strategy exhaustive
//
// Runs a single strategy and emits a plan document with the chosen foods
// and their calorie and protein totals.
//
// compare - Run every strategy on the same candidate pool:
//
//	trophe compare -f ABBREV.txt -n 15
//
// Emits a comparison document with one selection per strategy and the
// protein gap between the greedy heuristic and the exhaustive optimum.
//
// foods - List the candidate pool without running a selection:
//
//	trophe foods -f ABBREV.txt --max-kcal 800 -t table
//
// validate - Check the integrity of a generated document:
//
//	trophe validate -d plan.yaml --fail-on-error
//
// Re-derives the document's totals and verifies them against what was
// recorded, optionally applying extra field constraints.
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: yaml, json, table (default: yaml)
//	--log-level      Log verbosity: debug, info, warn, error
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Dataset Sources
//
// The --source/-f flag accepts local file paths, HTTP/HTTPS URLs, and S3
// URIs (s3://bucket/key), each optionally gzip-compressed. An empty source
// uses the embedded sample dataset.
//
// # Environment Variables
//
//	TROPHE_DATASET    Default dataset source (same as --source)
//	TROPHE_LOG_LEVEL  Default log verbosity (same as --log-level)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/plan - Plan, comparison, and food list building
//   - pkg/usda - Dataset loading and parsing
//   - pkg/validator - Document integrity checks
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutrikit/trophe/pkg/cli.version=1.0.0'"
package cli
