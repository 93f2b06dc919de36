package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nutrikit/trophe/pkg/errors"
	"github.com/nutrikit/trophe/pkg/version"
)

// Constraint pairs a document field path with an expected-value expression.
type Constraint struct {
	// Name is the dotted field path (e.g., "selection.totalProteinGrams").
	Name string `json:"name" yaml:"name"`

	// Value is the expression to satisfy (e.g., ">= 100").
	Value string `json:"value" yaml:"value"`
}

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorEQ represents "==" (equality).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (not equal).
	OperatorNE Operator = "!="

	// OperatorExact represents no operator (exact string match).
	OperatorExact Operator = ""
)

// ParsedConstraint is a constraint expression split into operator and value.
type ParsedConstraint struct {
	// Operator is the comparison operator (or empty for exact match).
	Operator Operator

	// Value is the expected value after the operator.
	Value string
}

// ParseConstraintExpression parses a constraint value expression.
// Examples:
//   - ">= 100"  -> {Operator: ">=", Value: "100"}
//   - ">= 1.2"  -> {Operator: ">=", Value: "1.2"}
//   - "greedy"  -> {Operator: "", Value: "greedy"}
func ParseConstraintExpression(expr string) (*ParsedConstraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	pc := &ParsedConstraint{}

	// Longest first so ">" does not match when ">=" is intended.
	operators := []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}
	for _, op := range operators {
		if strings.HasPrefix(expr, string(op)) {
			pc.Operator = op
			pc.Value = strings.TrimSpace(strings.TrimPrefix(expr, string(op)))
			break
		}
	}

	if pc.Operator == "" {
		pc.Operator = OperatorExact
		pc.Value = expr
	}

	if pc.Value == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint value cannot be empty after operator")
	}

	return pc, nil
}

// Evaluate evaluates the constraint against an actual value. Ordered
// operators compare numerically when both sides parse as numbers, falling
// back to version comparison for version-shaped values like "1.2.3".
func (pc *ParsedConstraint) Evaluate(actual string) (bool, error) {
	actual = strings.TrimSpace(actual)

	switch pc.Operator {
	case OperatorExact:
		return actual == pc.Value, nil

	case OperatorEQ:
		if eq, ok := compareEqual(pc.Value, actual); ok {
			return eq, nil
		}
		return actual == pc.Value, nil

	case OperatorNE:
		if eq, ok := compareEqual(pc.Value, actual); ok {
			return !eq, nil
		}
		return actual != pc.Value, nil

	case OperatorGTE, OperatorGT, OperatorLTE, OperatorLT:
		cmp, err := compareOrdered(pc.Value, actual)
		if err != nil {
			return false, err
		}

		switch pc.Operator {
		case OperatorGTE:
			return cmp >= 0, nil
		case OperatorGT:
			return cmp > 0, nil
		case OperatorLTE:
			return cmp <= 0, nil
		default:
			return cmp < 0, nil
		}

	default:
		return false, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown operator", map[string]any{"operator": pc.Operator})
	}
}

// compareEqual attempts a typed equality comparison. The second return is
// false when neither a numeric nor a version interpretation applies.
func compareEqual(expected, actual string) (equal, ok bool) {
	if ev, av, numOK := parseNumbers(expected, actual); numOK {
		return ev == av, true
	}
	if ev, err := version.Parse(expected); err == nil {
		if av, err := version.Parse(actual); err == nil {
			return ev.Equals(av), true
		}
	}
	return false, false
}

// compareOrdered compares actual against expected, numerically when both
// parse as numbers, otherwise as versions. Sign convention matches
// version.Compare: negative when actual < expected.
func compareOrdered(expected, actual string) (int, error) {
	if ev, av, ok := parseNumbers(expected, actual); ok {
		switch {
		case av < ev:
			return -1, nil
		case av > ev:
			return 1, nil
		default:
			return 0, nil
		}
	}

	expectedVer, err := version.Parse(expected)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"expected value is neither numeric nor a version", err, map[string]any{"value": expected})
	}
	actualVer, err := version.Parse(actual)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"actual value is neither numeric nor a version", err, map[string]any{"value": actual})
	}
	return actualVer.Compare(expectedVer), nil
}

// parseNumbers parses both values as floats. ok is false unless both parse.
func parseNumbers(expected, actual string) (ev, av float64, ok bool) {
	ev, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return 0, 0, false
	}
	av, err = strconv.ParseFloat(actual, 64)
	if err != nil {
		return 0, 0, false
	}
	return ev, av, true
}

// String returns a string representation of the parsed constraint.
func (pc *ParsedConstraint) String() string {
	if pc.Operator == OperatorExact {
		return pc.Value
	}
	return fmt.Sprintf("%s %s", pc.Operator, pc.Value)
}
