package cli

import (
	"fmt"
	"io"
)

// IO is the output of one command.
//
// Problems that do not stop a command, such as item-file records rejected by
// validation or duplicate names, are queued with Warn. They are printed to
// stderr before the first line of output and again by Finish, so a listing
// piped through head still shows them, and Finish turns them into exit code 1.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn queues a warning: what went wrong with which item, and what to change.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, issue+": "+action)
}

// Out returns stdout for the report renderers, flushing queued warnings first.
func (o *IO) Out() io.Writer {
	o.flushWarningsStart()

	return o.out
}

// Println writes a line to stdout.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes to stdout.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes a line to stderr. Shell errors and warnings go here
// directly, since the shell keeps running after them.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// ErrPrintf writes to stderr.
func (o *IO) ErrPrintf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.errOut, format, a...)
}

// Finish repeats queued warnings after the output and returns the exit code:
// 1 if anything was queued, 0 otherwise.
func (o *IO) Finish() int {
	o.flushWarningsStart()
	o.printWarnings()

	if len(o.warnings) > 0 {
		return 1
	}

	return 0
}

func (o *IO) flushWarningsStart() {
	if o.started {
		return
	}

	o.started = true
	o.printWarnings()
}

func (o *IO) printWarnings() {
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}
