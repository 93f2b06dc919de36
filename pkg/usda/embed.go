package usda

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/nutrikit/trophe/pkg/food"
)

//go:embed data/abbrev_sample.txt
var sampleRaw []byte

var (
	sampleOnce sync.Once
	sample     food.List
	sampleErr  error
)

// sampleData returns the raw embedded sample for the loader path.
func sampleData() ([]byte, error) {
	return sampleRaw, nil
}

// Sample returns the embedded sample dataset, parsed once and shared. The
// records are immutable; callers must not mutate them.
func Sample() (food.List, error) {
	sampleOnce.Do(func() {
		records, _, err := NewParser().Parse(sampleRaw)
		if err != nil {
			sampleErr = fmt.Errorf("embedded sample dataset is broken: %w", err)
			return
		}
		sample = records
	})
	return sample, sampleErr
}
