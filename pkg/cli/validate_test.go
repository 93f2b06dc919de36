package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/serializer"
	"github.com/nutrikit/trophe/pkg/validator"
)

// buildPlanDocument generates a plan file to validate against.
func buildPlanDocument(t *testing.T) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "plan.yaml")
	if err := run(t, "plan", "--budget", "500", "-o", out); err != nil {
		t.Fatalf("plan command failed: %v", err)
	}
	return out
}

func TestValidateCommand(t *testing.T) {
	docPath := buildPlanDocument(t)
	out := filepath.Join(t.TempDir(), "result.yaml")

	if err := run(t, "validate", "-d", docPath, "--fail-on-error", "-o", out); err != nil {
		t.Fatalf("validate command failed on a freshly generated plan: %v", err)
	}

	result, err := serializer.FromFile[validator.ValidationResult](out)
	if err != nil {
		t.Fatalf("failed to read validation result back: %v", err)
	}
	if result.Summary.Status == validator.ValidationStatusFail {
		t.Errorf("Status = %q on an untampered document", result.Summary.Status)
	}
	if result.Source != docPath {
		t.Errorf("Source = %q, want %q", result.Source, docPath)
	}
}

func TestValidateCommandTamperedDocument(t *testing.T) {
	docPath := buildPlanDocument(t)

	// Inflate the recorded protein so re-derivation disagrees.
	doc, err := serializer.FromFile[plan.Plan](docPath)
	if err != nil {
		t.Fatalf("failed to load plan: %v", err)
	}
	doc.Selection.TotalProteinGrams += 100

	ser := serializer.NewFileWriterOrStdout(serializer.FormatYAML, docPath)
	if err := ser.Serialize(context.Background(), doc); err != nil {
		t.Fatalf("failed to rewrite plan: %v", err)
	}
	if err := ser.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	if err := run(t, "validate", "-d", docPath, "--fail-on-error"); err == nil {
		t.Fatal("validate command passed a tampered document")
	}

	// Without fail-on-error the command reports and exits cleanly.
	if err := run(t, "validate", "-d", docPath); err != nil {
		t.Fatalf("validate without --fail-on-error returned: %v", err)
	}
}

func TestValidateCommandConstraints(t *testing.T) {
	docPath := buildPlanDocument(t)

	// A budget-window constraint the generated plan satisfies.
	err := run(t, "validate", "-d", docPath, "--fail-on-error",
		"-c", "selection.totalKcal=<= 500",
		"-c", "request.strategy=greedy")
	if err != nil {
		t.Fatalf("validate with satisfiable constraints failed: %v", err)
	}

	// An impossible constraint fails the run.
	err = run(t, "validate", "-d", docPath, "--fail-on-error",
		"-c", "selection.totalKcal=> 100000")
	if err == nil {
		t.Fatal("validate passed an impossible constraint")
	}
}

func TestValidateCommandComparison(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "comparison.yaml")
	if err := run(t, "compare", "--budget", "500", "-n", "10", "-o", docPath); err != nil {
		t.Fatalf("compare command failed: %v", err)
	}

	if err := run(t, "validate", "-d", docPath, "--fail-on-error"); err != nil {
		t.Fatalf("validate command failed on a freshly generated comparison: %v", err)
	}

	// Constraints are a plan-document feature.
	err := run(t, "validate", "-d", docPath, "-c", "kind=Comparison")
	if err == nil {
		t.Fatal("validate accepted constraints for a comparison document")
	}
}

func TestValidateCommandWrongKind(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "foods.yaml")
	if err := run(t, "foods", "-n", "5", "-o", docPath); err != nil {
		t.Fatalf("foods command failed: %v", err)
	}

	if err := run(t, "validate", "-d", docPath); err == nil {
		t.Fatal("validate accepted a food list document")
	}
}

func TestValidateCommandMissingDocument(t *testing.T) {
	if err := run(t, "validate", "-d", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("validate accepted a missing document")
	}
}
