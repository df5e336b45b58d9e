package engine

import (
	"fmt"
	"strings"
)

// NotFound is the index reported for a miss.
const NotFound = -1

// Method selects a search algorithm.
type Method int

// Search methods. The zero value is invalid.
const (
	Linear Method = iota + 1
	Binary
)

// String returns the method's lowercase name.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod parses "linear" or "binary" (also "sequential"), case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "sequential":
		return Linear, nil
	case "binary":
		return Binary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// SearchResult is the outcome of one search call.
type SearchResult struct {
	Method      Method
	Index       int
	Comparisons int
}

// Found reports whether the search hit.
func (r SearchResult) Found() bool {
	return r.Index != NotFound
}

// Search looks up name with the given method.
//
// For [Binary] the caller must guarantee items is sorted by name.
func Search(items []Record, name string, method Method) (SearchResult, error) {
	var idx, comparisons int

	switch method {
	case Linear:
		idx, comparisons = LinearSearch(items, name)
	case Binary:
		idx, comparisons = BinarySearch(items, name)
	default:
		return SearchResult{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}

	return SearchResult{Method: method, Index: idx, Comparisons: comparisons}, nil
}

// LinearSearch returns the first index whose Name equals name, scanning from
// index 0. One comparison per inspected element; a miss costs len(items).
func LinearSearch(items []Record, name string) (int, int) {
	comparisons := 0

	for i := range items {
		comparisons++

		if items[i].Name == name {
			return i, comparisons
		}
	}

	return NotFound, comparisons
}

// BinarySearch bisects items by Name. One three-way comparison per probe.
//
// items must already be sorted by name. This is not verified: on unsorted
// input the result is unspecified.
func BinarySearch(items []Record, name string) (int, int) {
	comparisons := 0
	low, high := 0, len(items)-1

	for low <= high {
		mid := low + (high-low)/2
		comparisons++

		switch cmp := strings.Compare(items[mid].Name, name); {
		case cmp == 0:
			return mid, comparisons
		case cmp < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound, comparisons
}
