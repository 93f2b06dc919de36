package food

import (
	"errors"
	"fmt"
	"strings"
)

// Record describes a single food item from a nutrition dataset.
// All nutrient quantities refer to one serving and are rounded to integers.
// Records are immutable after construction and shared by reference.
type Record struct {
	// Description is the food name as published (e.g. "BUTTER,WITH SALT").
	Description string `json:"description" yaml:"description"`

	// Serving is the household serving measure (e.g. "1 tbsp").
	Serving string `json:"serving" yaml:"serving"`

	// ServingGrams is the serving weight in grams.
	ServingGrams int `json:"servingGrams" yaml:"servingGrams"`

	// KCal is the calorie content of one serving.
	KCal int `json:"kcal" yaml:"kcal"`

	// ProteinGrams is the protein content of one serving, in grams.
	ProteinGrams int `json:"proteinGrams" yaml:"proteinGrams"`
}

// ErrNilRecord indicates a nil record where a value was required.
var ErrNilRecord = errors.New("record is nil")

// Validate checks the record invariants: non-empty description and serving,
// non-negative quantities.
func (r *Record) Validate() error {
	if r == nil {
		return ErrNilRecord
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("record description is empty")
	}
	if strings.TrimSpace(r.Serving) == "" {
		return fmt.Errorf("record %q: serving is empty", r.Description)
	}
	if r.ServingGrams < 0 {
		return fmt.Errorf("record %q: negative serving grams %d", r.Description, r.ServingGrams)
	}
	if r.KCal < 0 {
		return fmt.Errorf("record %q: negative kcal %d", r.Description, r.KCal)
	}
	if r.ProteinGrams < 0 {
		return fmt.Errorf("record %q: negative protein grams %d", r.Description, r.ProteinGrams)
	}
	return nil
}

// String returns a compact human-readable representation, useful in logs.
func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s, %d g): %d kcal, %d g protein",
		r.Description, r.Serving, r.ServingGrams, r.KCal, r.ProteinGrams)
}
