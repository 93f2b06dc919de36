package validator

import (
	"strconv"
	"strings"

	"github.com/nutrikit/trophe/pkg/errors"
	"github.com/nutrikit/trophe/pkg/plan"
)

// planFields maps dotted constraint paths to value extractors over a plan
// document. Values are rendered as strings so the constraint machinery can
// compare them numerically or textually.
var planFields = map[string]func(*plan.Plan) string{
	"kind":       func(p *plan.Plan) string { return p.Kind.String() },
	"apiVersion": func(p *plan.Plan) string { return p.APIVersion },

	"candidateCount": func(p *plan.Plan) string { return strconv.Itoa(p.CandidateCount) },

	"request.source":        func(p *plan.Plan) string { return p.Request.Source },
	"request.strategy":      func(p *plan.Plan) string { return p.Request.Strategy.String() },
	"request.budgetKcal":    func(p *plan.Plan) string { return strconv.Itoa(p.Request.BudgetKCal) },
	"request.minKcal":       func(p *plan.Plan) string { return strconv.Itoa(p.Request.MinKCal) },
	"request.maxKcal":       func(p *plan.Plan) string { return strconv.Itoa(p.Request.MaxKCal) },
	"request.maxCandidates": func(p *plan.Plan) string { return strconv.Itoa(p.Request.MaxCandidates) },

	"selection.strategy":          func(p *plan.Plan) string { return p.Selection.Strategy.String() },
	"selection.foodCount":         func(p *plan.Plan) string { return strconv.Itoa(len(p.Selection.Foods)) },
	"selection.totalKcal":         func(p *plan.Plan) string { return strconv.Itoa(p.Selection.TotalKCal) },
	"selection.totalProteinGrams": func(p *plan.Plan) string { return strconv.Itoa(p.Selection.TotalProteinGrams) },
	"selection.elapsedSeconds": func(p *plan.Plan) string {
		return strconv.FormatFloat(p.Selection.ElapsedSeconds, 'f', -1, 64)
	},
}

// Fields lists the addressable plan document paths, for error messages.
func Fields() []string {
	out := make([]string, 0, len(planFields)+1)
	for name := range planFields {
		out = append(out, name)
	}
	out = append(out, "metadata.{key}")
	return out
}

// ExtractField resolves a dotted path against a plan document. Paths under
// "metadata." address header metadata keys; everything else must name a
// known field.
func ExtractField(doc *plan.Plan, path string) (string, error) {
	if doc == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest, "document is nil")
	}
	if path == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "field path cannot be empty")
	}

	if key, ok := strings.CutPrefix(path, "metadata."); ok {
		value, exists := doc.Metadata[key]
		if !exists {
			return "", errors.NewWithContext(errors.ErrCodeNotFound,
				"metadata key not found in document header",
				map[string]any{"key": key})
		}
		return value, nil
	}

	extract, ok := planFields[path]
	if !ok {
		return "", errors.NewWithContext(errors.ErrCodeNotFound,
			"unknown document field",
			map[string]any{"path": path})
	}
	return extract(doc), nil
}
