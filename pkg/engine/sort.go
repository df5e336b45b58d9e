package engine

import (
	"fmt"
	"strings"
)

// SortFunc sorts items in place and returns the number of key comparisons.
type SortFunc func(items []Record) int

// Algorithm selects one of the instrumented sorts.
type Algorithm int

// Algorithms. The zero value is invalid.
const (
	Bubble Algorithm = iota + 1
	Insertion
	Selection
)

// Algorithms returns every algorithm in benchmark order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion, Selection}
}

// String returns the algorithm's lowercase name.
func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Insertion:
		return "insertion"
	case Selection:
		return "selection"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Key returns the field the algorithm orders by, or KeyNone if a is invalid.
func (a Algorithm) Key() Key {
	switch a {
	case Bubble:
		return KeyName
	case Insertion:
		return KeyCategory
	case Selection:
		return KeyQuantity
	default:
		return KeyNone
	}
}

// Func returns the sort implementation, or nil if a is invalid.
func (a Algorithm) Func() SortFunc {
	switch a {
	case Bubble:
		return BubbleSortByName
	case Insertion:
		return InsertionSortByCategory
	case Selection:
		return SelectionSortByQuantity
	default:
		return nil
	}
}

// Valid reports whether a is one of the defined algorithms.
func (a Algorithm) Valid() bool {
	return a.Func() != nil
}

// ParseAlgorithm accepts an algorithm name ("bubble") or the name of the key
// it sorts by ("name"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for _, alg := range Algorithms() {
		if name == alg.String() {
			return alg, nil
		}
	}

	if key, ok := ParseKey(name); ok {
		for _, alg := range Algorithms() {
			if alg.Key() == key {
				return alg, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// BubbleSortByName sorts by Name using adjacent swaps.
//
// One comparison is charged per adjacent pair examined. A pass without swaps
// ends the sort, so sorted input of length n costs n-1 comparisons and the
// worst case costs n(n-1)/2.
func BubbleSortByName(items []Record) int {
	comparisons := 0
	n := len(items)

	for i := 0; i < n-1; i++ {
		swapped := false

		for j := 0; j < n-1-i; j++ {
			comparisons++

			if items[j].Name > items[j+1].Name {
				items[j], items[j+1] = items[j+1], items[j]
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	return comparisons
}

// InsertionSortByCategory sorts by Category using shift-insert.
//
// Every evaluation of the inner "greater than" test is charged, including
// the failing probe that stops the scan.
func InsertionSortByCategory(items []Record) int {
	comparisons := 0

	for i := 1; i < len(items); i++ {
		current := items[i]
		j := i - 1

		for j >= 0 {
			comparisons++

			if items[j].Category <= current.Category {
				break
			}

			items[j+1] = items[j]
			j--
		}

		items[j+1] = current
	}

	return comparisons
}

// SelectionSortByQuantity sorts by Quantity by repeatedly selecting the
// minimum of the unplaced suffix. Always n(n-1)/2 comparisons. Not stable.
func SelectionSortByQuantity(items []Record) int {
	comparisons := 0
	n := len(items)

	for i := 0; i < n-1; i++ {
		minIdx := i

		for j := i + 1; j < n; j++ {
			comparisons++

			if items[j].Quantity < items[minIdx].Quantity {
				minIdx = j
			}
		}

		if minIdx != i {
			items[i], items[minIdx] = items[minIdx], items[i]
		}
	}

	return comparisons
}
