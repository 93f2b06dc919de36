package optimize

import (
	"github.com/nutrikit/trophe/pkg/food"
)

// Filter returns the records whose calorie content lies within
// [minKCal, maxKCal], in their original order, truncated to at most limit
// records. Zero-calorie records are always excluded, whatever the window.
// The source list is not modified; records are shared, not copied.
func Filter(src food.List, minKCal, maxKCal, limit int) food.List {
	if limit <= 0 {
		return make(food.List, 0)
	}
	result := make(food.List, 0, min(limit, len(src)))

	for _, r := range src {
		if r == nil {
			continue
		}
		if r.KCal > 0 && r.KCal >= minKCal && r.KCal <= maxKCal {
			result = append(result, r)
			if len(result) == limit {
				break
			}
		}
	}

	return result
}
