package engine

import (
	"fmt"
	"time"
)

// Engine runs sorts under a [Clock]. It holds no mutable state and may be
// shared freely.
type Engine struct {
	clock Clock
}

// Option configures an [Engine].
type Option func(*Engine)

// WithClock sets the clock used to time sorts. A nil clock is ignored.
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// New returns an Engine timing sorts with [ProcessClock] unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{}

	for _, opt := range opts {
		opt(e)
	}

	if e.clock == nil {
		e.clock = ProcessClock()
	}

	return e
}

// SortResult reports one timed sort.
type SortResult struct {
	Algorithm   Algorithm
	Key         Key
	Comparisons int
	Elapsed     time.Duration
}

// Seconds returns Elapsed as fractional seconds.
func (r SortResult) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Sort reorders items in place with alg and reports comparisons and elapsed time.
func (e *Engine) Sort(items []Record, alg Algorithm) (SortResult, error) {
	fn := alg.Func()
	if fn == nil {
		return SortResult{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	comparisons, elapsed := Measure(e.clock, fn, items)

	return SortResult{
		Algorithm:   alg,
		Key:         alg.Key(),
		Comparisons: comparisons,
		Elapsed:     elapsed,
	}, nil
}

// Search is [Search] on the engine, for callers holding only an Engine.
func (e *Engine) Search(items []Record, name string, method Method) (SearchResult, error) {
	return Search(items, name, method)
}
