// Package engine sorts and searches inventory records while counting key
// comparisons and measuring elapsed time.
//
// The engine owns no data. Callers hand it a slice of [Record] values; sorts
// reorder that slice in place, searches only read it. Every algorithm returns
// its comparison count, so nothing is shared between calls.
//
// # Basic Usage
//
//	eng := engine.New()
//
//	res, err := eng.Sort(items, engine.Bubble)
//	if err != nil {
//	    // only ErrUnknownAlgorithm
//	}
//	fmt.Println(res.Comparisons, res.Seconds())
//
//	hit := engine.Search(items, "Rifle", engine.Binary)
//
//	for _, b := range eng.Benchmark(items) {
//	    // b.Items is a sorted copy, items is untouched
//	}
//
// # Algorithms
//
// Each sort is paired with one key:
//   - [Bubble] sorts by name, stops after a pass without swaps
//   - [Insertion] sorts by category
//   - [Selection] sorts by quantity, always n(n-1)/2 comparisons, not stable
//
// # Binary Search Contract
//
// [BinarySearch] assumes the slice is sorted by name and never checks. On
// unsorted input it may report a miss for a present key or return an index
// that does not hold the key. Callers track sortedness themselves, for
// example with the key returned by [Algorithm.Key] after a successful sort.
package engine
