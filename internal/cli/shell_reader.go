package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
)

// maxLineBytes bounds one line of piped shell input.
const maxLineBytes = 64 << 10

var (
	// errInterrupted is returned by Prompt when the user presses Ctrl-C.
	errInterrupted = errors.New("interrupted")
	// errLineTooLong is returned by Prompt for a line over maxLineBytes. The
	// line is discarded and the next Prompt reads the following one.
	errLineTooLong = errors.New("input line too long")
)

// lineReader reads shell input one line at a time.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// newLineReader returns a line editor with history when in is a terminal,
// and a plain scanner otherwise.
func newLineReader(in io.Reader, out io.Writer, historyPath string, complete func(string) []string, logger *slog.Logger) lineReader {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newLinerReader(historyPath, complete, logger)
	}

	if in == nil {
		in = bytes.NewReader(nil)
	}

	return &scanReader{reader: bufio.NewReader(in), out: out}
}

// scanReader serves piped input. The prompt is echoed so transcripts read
// like an interactive session.
type scanReader struct {
	reader *bufio.Reader
	out    io.Writer
}

func (r *scanReader) Prompt(prompt string) (string, error) {
	_, _ = fmt.Fprint(r.out, prompt)

	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, isPrefix, err := r.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(line) > 0 || tooLong) {
				break
			}

			return "", err
		}

		if !tooLong {
			line = append(line, chunk...)

			if len(line) > maxLineBytes {
				line = nil
				tooLong = true
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w (max %d bytes)", errLineTooLong, maxLineBytes)
	}

	return string(line), nil
}

func (r *scanReader) AppendHistory(string) {}

func (r *scanReader) Close() error { return nil }

type linerReader struct {
	state       *liner.State
	historyPath string
	logger      *slog.Logger
}

func newLinerReader(historyPath string, complete func(string) []string, logger *slog.Logger) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(complete)

	r := &linerReader{state: state, historyPath: historyPath, logger: logger}

	if historyPath == "" {
		return r
	}

	f, err := os.Open(historyPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("cannot read shell history", "path", historyPath, "error", err)
		}

		return r
	}
	defer func() { _ = f.Close() }()

	_, err = state.ReadHistory(f)
	if err != nil {
		logger.Warn("cannot read shell history", "path", historyPath, "error", err)
	}

	return r
}

func (r *linerReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errInterrupted
	}

	return line, err
}

func (r *linerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

// Close restores the terminal and saves history atomically.
func (r *linerReader) Close() error {
	if r.historyPath != "" {
		var buf bytes.Buffer

		_, err := r.state.WriteHistory(&buf)
		if err == nil {
			err = atomic.WriteFile(r.historyPath, &buf)
		}

		if err != nil {
			r.logger.Warn("cannot save shell history", "path", r.historyPath, "error", err)
		}
	}

	return r.state.Close()
}
