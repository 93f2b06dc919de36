package optimize

import (
	"context"
	"fmt"
	"testing"

	"github.com/nutrikit/trophe/pkg/food"
)

// benchPool builds a deterministic pseudo-random candidate pool.
func benchPool(n int) food.List {
	pool := make(food.List, 0, n)
	for i := 0; i < n; i++ {
		kcal := (i*179)%1900 + 1
		protein := (i * 53) % 90
		pool = append(pool, rec(fmt.Sprintf("food-%d", i), kcal, protein))
	}
	return pool
}

func BenchmarkFilter(b *testing.B) {
	src := benchPool(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Filter(src, 0, 2000, 20)
	}
}

func BenchmarkGreedy(b *testing.B) {
	for _, n := range []int{5, 10, 15, 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pool := benchPool(n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Greedy(pool, 5000)
			}
		})
	}
}

func BenchmarkExhaustive(b *testing.B) {
	ctx := context.Background()

	for _, n := range []int{5, 10, 15, 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pool := benchPool(n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Exhaustive(ctx, pool, 5000); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
