package food

import "fmt"

// List is an ordered sequence of shared Record references. Order is
// significant: filtering preserves it and selection tie-breaks depend on it.
type List []*Record

// Clone returns a new List backed by the same Records. The slice is copied,
// the records are not.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Totals sums calories and protein grams across the list. Nil entries
// contribute nothing.
func (l List) Totals() (kcal, protein int) {
	for _, r := range l {
		if r == nil {
			continue
		}
		kcal += r.KCal
		protein += r.ProteinGrams
	}
	return kcal, protein
}

// Validate checks every record in the list; positions are reported in errors.
func (l List) Validate() error {
	for i, r := range l {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
