package engine

import "time"

// Clock yields readings on an arbitrary, non-decreasing origin.
// Only differences between two readings are meaningful.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to [Clock].
type ClockFunc func() time.Duration

// Now implements [Clock].
func (f ClockFunc) Now() time.Duration { return f() }

type monotonicClock struct {
	origin time.Time
}

func (c monotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}

// MonotonicClock returns a wall-clock [Clock] backed by Go's monotonic reading.
func MonotonicClock() Clock {
	return monotonicClock{origin: time.Now()}
}

// ProcessClock returns a [Clock] measuring CPU time consumed by the process.
// Where the platform has no process clock it falls back to [MonotonicClock].
func ProcessClock() Clock {
	if c, ok := newProcessClock(); ok {
		return c
	}

	return MonotonicClock()
}

// Measure runs fn on items between two clock readings.
// It returns fn's comparison count and the elapsed time, never negative.
func Measure(clock Clock, fn SortFunc, items []Record) (int, time.Duration) {
	start := clock.Now()
	comparisons := fn(items)
	elapsed := clock.Now() - start

	if elapsed < 0 {
		elapsed = 0
	}

	return comparisons, elapsed
}
