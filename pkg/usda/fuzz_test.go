package usda

import (
	"strings"
	"testing"
)

// FuzzParseLine checks that the line parser never panics and that every
// record it accepts satisfies the food.Record invariants, whatever the
// input looks like.
func FuzzParseLine(f *testing.F) {
	f.Add(abbrevLine("~BUTTER,WITH SALT~", "717", "0.85", "14.2", "~1 tbsp~"))
	f.Add(abbrevLine("~EGG,WHL~", "142.5", "12.5", "49.5", "~1 large~"))
	f.Add(abbrevLine("~X~", "0", "0", "0", "~x~"))
	f.Add("")
	f.Add("^^^^^")
	f.Add(strings.Repeat("^", abbrevFieldCount-1))
	f.Add("~~^~~^nan^inf^-1^" + strings.Repeat("^", 48))

	p := NewParser()
	f.Fuzz(func(t *testing.T, line string) {
		r, err := p.ParseLine(line)
		if err != nil {
			return
		}
		if r == nil {
			t.Fatal("ParseLine() returned neither record nor error")
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("ParseLine() accepted invalid record %v: %v", r, err)
		}
	})
}
