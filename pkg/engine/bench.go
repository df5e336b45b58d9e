package engine

// BenchResult is one algorithm's run in [Engine.Benchmark].
type BenchResult struct {
	SortResult

	// Items is the sorted copy the algorithm produced.
	Items []Record
}

// Benchmark sorts an independent copy of items with every algorithm, in
// [Algorithms] order. items itself is never written.
func (e *Engine) Benchmark(items []Record) []BenchResult {
	algs := Algorithms()
	results := make([]BenchResult, 0, len(algs))

	for _, alg := range algs {
		sorted := CloneRecords(items)
		if sorted == nil {
			sorted = []Record{}
		}

		comparisons, elapsed := Measure(e.clock, alg.Func(), sorted)

		results = append(results, BenchResult{
			SortResult: SortResult{
				Algorithm:   alg,
				Key:         alg.Key(),
				Comparisons: comparisons,
				Elapsed:     elapsed,
			},
			Items: sorted,
		})
	}

	return results
}
