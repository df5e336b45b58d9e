package engine_test

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/calvinalkan/freefire/pkg/engine"
)

// stepClock advances by step on every reading, so each Measure sees exactly
// one step between start and end.
func stepClock(step time.Duration) engine.Clock {
	var now time.Duration

	return engine.ClockFunc(func() time.Duration {
		now += step

		return now
	})
}

// randomRecords returns n records drawn from small alphabets so that ties on
// every key are common.
func randomRecords(rng *rand.Rand, n int) []engine.Record {
	categories := []string{"arma", "cura", "municao", "comida", "ferramenta"}
	items := make([]engine.Record, n)

	for i := range items {
		items[i] = engine.Record{
			Name:     fmt.Sprintf("item-%02d", rng.IntN(n+1)),
			Category: categories[rng.IntN(len(categories))],
			Quantity: rng.IntN(10),
		}
	}

	return items
}

// namedRecords returns records named "n00".."n<n-1>" in ascending order.
func namedRecords(n int) []engine.Record {
	items := make([]engine.Record, n)

	for i := range items {
		items[i] = engine.Record{
			Name:     fmt.Sprintf("n%02d", i),
			Category: fmt.Sprintf("c%02d", i),
			Quantity: i,
		}
	}

	return items
}

func reversed(items []engine.Record) []engine.Record {
	out := engine.CloneRecords(items)
	slices.Reverse(out)

	return out
}

// canonical orders records by every field, for multiset comparison.
func canonical(items []engine.Record) []engine.Record {
	out := engine.CloneRecords(items)
	slices.SortFunc(out, func(a, b engine.Record) int {
		return cmp.Or(
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.Category, b.Category),
			cmp.Compare(a.Quantity, b.Quantity),
		)
	})

	return out
}

func keyOrdered(items []engine.Record, key engine.Key) bool {
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]

		switch key {
		case engine.KeyName:
			if a.Name > b.Name {
				return false
			}
		case engine.KeyCategory:
			if a.Category > b.Category {
				return false
			}
		case engine.KeyQuantity:
			if a.Quantity > b.Quantity {
				return false
			}
		case engine.KeyNone:
		}
	}

	return true
}
