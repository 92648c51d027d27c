package seqs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/seqs"
)

func randomInts(n int) []int {
	rng := rand.New(rand.NewSource(1))
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Int()
	}

	return s
}

// BenchmarkKthSmallest_Sort is the O(n log n) baseline.
func BenchmarkKthSmallest_Sort(b *testing.B) {
	s := randomInts(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seqs.KthSmallest(s, len(s)/2); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkQuickSelect is the expected O(n) partition-select on the same input.
func BenchmarkQuickSelect(b *testing.B) {
	s := randomInts(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seqs.QuickSelect(s, len(s)/2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDedupUnordered(b *testing.B) {
	s := randomInts(100_000)
	for i := range s {
		s[i] %= 1000
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seqs.DedupUnordered(s)
	}
}
