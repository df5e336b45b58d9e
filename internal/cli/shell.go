package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/freefire/internal/inventory"
	"github.com/calvinalkan/freefire/internal/report"
	"github.com/calvinalkan/freefire/pkg/engine"
)

const shellPrompt = "freefire> "

var errUnterminatedQuote = errors.New("unterminated quote")

var shellCommands = []string{
	"add", "rm", "ls", "list",
	"find", "bfind", "sort", "bench",
	"info", "clear", "help",
	"exit", "quit", "q",
}

// ShellCmd returns the interactive shell command.
func ShellCmd(a *app, in io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Interactive console (default)",
		Long: `Start the interactive console. Items from the configured item file are
loaded first. Type 'help' inside the shell for its commands.

Line editing and history are enabled when stdin is a terminal.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			return execShell(ctx, a, o, in)
		},
	}
}

// shell is the interactive command loop.
type shell struct {
	app *app
	inv *inventory.Inventory
	o   *IO
}

func execShell(ctx context.Context, a *app, o *IO, in io.Reader) error {
	inv, warnings, err := a.load()
	if err != nil {
		return err
	}

	for _, w := range warnings {
		o.ErrPrintf("warning: %s: %s\n", w.issue, w.action)
	}

	sh := &shell{app: a, inv: inv, o: o}

	reader := newLineReader(in, o.Out(), a.cfg.HistoryFileAbs, completeShell, a.log)
	defer func() { _ = reader.Close() }()

	limits := inv.Limits()
	o.Printf("freefire shell - %s (%s, capacity %d, %d items)\n", limits.Title, limits.Profile, limits.Capacity, inv.Len())
	o.Println("Type 'help' for available commands.")
	o.Println()

	for ctx.Err() == nil {
		line, err := reader.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, errLineTooLong) {
				o.ErrPrintln("error:", err)

				continue
			}

			if errors.Is(err, io.EOF) || errors.Is(err, errInterrupted) {
				o.Println()
				o.Println("Bye!")

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		reader.AppendHistory(line)

		if !sh.exec(line) {
			o.Println("Bye!")

			return nil
		}
	}

	o.Println()
	o.Println("Bye!")

	return nil
}

// exec runs one shell line. Returns false when the shell should exit.
func (s *shell) exec(line string) bool {
	parts, err := splitArgs(line)
	if err != nil {
		s.o.ErrPrintln("error:", err)

		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "exit", "quit", "q":
		return false
	case "help", "?":
		s.printHelp()
	case "add":
		err = s.cmdAdd(args)
	case "rm", "remove":
		err = s.cmdRemove(args)
	case "ls", "list":
		err = report.WriteListing(s.o.Out(), listingOf(s.inv))
	case "find":
		err = s.cmdFind(args, false)
	case "bfind":
		err = s.cmdFind(args, true)
	case "sort":
		err = s.cmdSort(args)
	case "bench":
		err = s.cmdBench()
	case "info":
		s.cmdInfo()
	case "clear":
		s.inv.Clear()
		s.o.Println("inventory cleared")
	default:
		s.o.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		s.o.ErrPrintln("error:", err)
	}

	return true
}

func (s *shell) cmdAdd(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: add <name> <category> <" + s.inv.Limits().AttributeLabel + ">")
	}

	n, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%s must be an integer: %q", s.inv.Limits().AttributeLabel, args[2])
	}

	rec, duplicate, err := s.inv.Insert(engine.Record{Name: args[0], Category: args[1], Quantity: n})
	if err != nil {
		return err
	}

	if duplicate {
		s.o.ErrPrintf("warning: duplicate name %q: searches return the first match only\n", rec.Name)
	}

	s.o.Printf("added %s (%d/%d)\n", rec.Name, s.inv.Len(), s.inv.Cap())

	return nil
}

func (s *shell) cmdRemove(args []string) error {
	name, err := oneName(args)
	if err != nil {
		return err
	}

	rec, err := s.inv.Remove(name)
	if err != nil {
		return err
	}

	s.o.Printf("removed %s (%d/%d)\n", rec.Name, s.inv.Len(), s.inv.Cap())

	return nil
}

func (s *shell) cmdFind(args []string, binary bool) error {
	name, err := oneName(args)
	if err != nil {
		return err
	}

	find := s.inv.Find
	if binary {
		find = s.inv.BinaryFind
	}

	rec, res, err := find(name)
	if err != nil && !errors.Is(err, inventory.ErrNotFound) {
		if errors.Is(err, inventory.ErrNotSortedByName) {
			return fmt.Errorf("%w (run 'sort name' first)", err)
		}

		return err
	}

	s.app.log.Debug("search", "name", name, "method", res.Method, "index", res.Index, "comparisons", res.Comparisons)

	return report.WriteSearch(s.o.Out(), name, res, rec, s.inv.Limits().AttributeLabel)
}

func (s *shell) cmdSort(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: sort <bubble|insertion|selection|name|category|quantity>")
	}

	alg, err := engine.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}

	res, err := s.inv.Sort(s.app.eng, alg)
	if err != nil {
		return err
	}

	s.app.log.Debug("sort", "algorithm", res.Algorithm, "comparisons", res.Comparisons, "elapsed", res.Elapsed)

	err = report.WriteSort(s.o.Out(), res)
	if err != nil {
		return err
	}

	return report.WriteListing(s.o.Out(), listingOf(s.inv))
}

func (s *shell) cmdBench() error {
	results := s.inv.Benchmark(s.app.eng)
	for _, res := range results {
		s.app.log.Debug("bench", "algorithm", res.Algorithm, "comparisons", res.Comparisons, "elapsed", res.Elapsed)
	}

	return report.WriteBench(s.o.Out(), results, s.inv.Limits().AttributeLabel)
}

func (s *shell) cmdInfo() {
	limits := s.inv.Limits()

	order := "unordered"
	if s.inv.Order() != engine.KeyNone {
		order = "sorted by " + s.inv.Order().String()
	}

	s.o.Printf("profile:   %s (%s)\n", limits.Profile, limits.Title)
	s.o.Printf("items:     %d/%d\n", s.inv.Len(), limits.Capacity)
	s.o.Printf("order:     %s\n", order)
	s.o.Printf("name:      1-%d characters\n", limits.NameMaxLen)
	s.o.Printf("category:  1-%d characters\n", limits.CategoryMaxLen)
	s.o.Printf("%-10s %d-%d\n", limits.AttributeLabel+":", limits.MinQuantity, limits.MaxQuantity)
}

func (s *shell) printHelp() {
	label := s.inv.Limits().AttributeLabel

	s.o.Println("Commands:")
	s.o.Printf("  %-32s %s\n", "add <name> <category> <"+label+">", "Insert an item")
	s.o.Printf("  %-32s %s\n", "rm <name>", "Remove an item")
	s.o.Printf("  %-32s %s\n", "ls", "List items")
	s.o.Printf("  %-32s %s\n", "find <name>", "Linear search by name")
	s.o.Printf("  %-32s %s\n", "bfind <name>", "Binary search by name (after 'sort name')")
	s.o.Printf("  %-32s %s\n", "sort <algorithm|key>", "bubble/name, insertion/category, selection/"+label)
	s.o.Printf("  %-32s %s\n", "bench", "Run all three sorts on copies")
	s.o.Printf("  %-32s %s\n", "info", "Show profile limits and state")
	s.o.Printf("  %-32s %s\n", "clear", "Remove every item")
	s.o.Printf("  %-32s %s\n", "help", "Show this help")
	s.o.Printf("  %-32s %s\n", "exit / quit / q", "Exit")
	s.o.Println()
	s.o.Println(`Quote names that contain spaces: add "Medical kit" cura 2`)
}

func completeShell(line string) []string {
	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range shellCommands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func oneName(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", errNameRequired
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: quote names that contain spaces", errTooManyArgs)
	}
}

// splitArgs splits line on whitespace. Double quotes group words and may
// produce an empty argument.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		inArg   bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inArg = true
		case !inQuote && (r == ' ' || r == '\t'):
			if inArg {
				args = append(args, current.String())
				current.Reset()

				inArg = false
			}
		default:
			current.WriteRune(r)

			inArg = true
		}
	}

	if inQuote {
		return nil, errUnterminatedQuote
	}

	if inArg {
		args = append(args, current.String())
	}

	return args, nil
}
