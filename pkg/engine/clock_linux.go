//go:build linux

package engine

import (
	"time"

	"golang.org/x/sys/unix"
)

type processClock struct{}

func (processClock) Now() time.Duration {
	var ts unix.Timespec

	err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts)
	if err != nil {
		return 0
	}

	return time.Duration(ts.Nano())
}

// newProcessClock probes CLOCK_PROCESS_CPUTIME_ID once so that a kernel
// without it falls back to the monotonic clock instead of reading zeros.
func newProcessClock() (Clock, bool) {
	var ts unix.Timespec

	err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts)
	if err != nil {
		return nil, false
	}

	return processClock{}, true
}
