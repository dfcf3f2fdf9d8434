package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsearch/frontier"
)

// BenchmarkQueue_InsertExtract pushes 10k random keys and drains the queue.
// Complexity: O(N log N)
func BenchmarkQueue_InsertExtract(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := frontier.New[int, int](n)
		for j, k := range keys {
			q.Insert(j, k)
		}
		for !q.Empty() {
			q.ExtractMin()
		}
	}
}
