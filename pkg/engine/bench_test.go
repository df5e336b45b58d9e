package engine_test

import (
	"testing"

	"github.com/calvinalkan/freefire/pkg/engine"
)

// benchmarkSort sorts a fresh reversed copy of n records on every iteration.
func benchmarkSort(b *testing.B, alg engine.Algorithm, n int) {
	src := reversed(namedRecords(n))
	eng := engine.New(engine.WithClock(engine.MonotonicClock()))
	work := make([]engine.Record, n)

	b.ResetTimer()

	for b.Loop() {
		copy(work, src)

		_, err := eng.Sort(work, alg)
		if err != nil {
			b.Fatalf("Sort failed: %v", err)
		}
	}
}

func BenchmarkBubble_Reversed20(b *testing.B)    { benchmarkSort(b, engine.Bubble, 20) }
func BenchmarkInsertion_Reversed20(b *testing.B) { benchmarkSort(b, engine.Insertion, 20) }
func BenchmarkSelection_Reversed20(b *testing.B) { benchmarkSort(b, engine.Selection, 20) }

func BenchmarkBinarySearch_20(b *testing.B) {
	items := namedRecords(20)

	for b.Loop() {
		engine.BinarySearch(items, "n13")
	}
}

func BenchmarkBenchmark_10(b *testing.B) {
	items := reversed(namedRecords(10))
	eng := engine.New()

	for b.Loop() {
		eng.Benchmark(items)
	}
}
