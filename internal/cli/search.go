package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/freefire/internal/inventory"
	"github.com/calvinalkan/freefire/internal/report"
	"github.com/calvinalkan/freefire/pkg/engine"
)

// SearchCmd returns the search command.
func SearchCmd(a *app) *Command {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	binary := fs.BoolP("binary", "b", false, "Use binary search (requires sorted by name)")
	sortFirst := fs.Bool("sort-first", false, "Bubble sort by name before a binary search")
	format := fs.String("format", "", "Output format: text, json or yaml (default from config)")

	return &Command{
		Flags: fs,
		Usage: "search <name> [flags]",
		Short: "Find an item by exact name",
		Long: `Find an item by exact, case-sensitive name and report the number of
comparisons spent. A miss is reported, not treated as an error.

Binary search needs the inventory sorted by name. Item files load unordered,
so pass --sort-first together with --binary.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSearch(a, o, args, *binary, *sortFirst, *format)
		},
	}
}

func execSearch(a *app, o *IO, args []string, binary, sortFirst bool, formatFlag string) error {
	if len(args) == 0 {
		return errNameRequired
	}

	if len(args) > 1 {
		return fmt.Errorf("%w: quote names that contain spaces", errTooManyArgs)
	}

	format, err := a.format(formatFlag)
	if err != nil {
		return err
	}

	inv, err := a.inventory(o)
	if err != nil {
		return err
	}

	var sorted *engine.SortResult

	if binary && sortFirst {
		res, err := inv.Sort(a.eng, engine.Bubble)
		if err != nil {
			return err
		}

		sorted = &res
	}

	find := inv.Find
	if binary {
		find = inv.BinaryFind
	}

	name := args[0]

	rec, res, err := find(name)
	if err != nil && !errors.Is(err, inventory.ErrNotFound) {
		if errors.Is(err, inventory.ErrNotSortedByName) {
			return fmt.Errorf("%w (pass --sort-first)", err)
		}

		return err
	}

	a.log.Debug("search", "name", name, "method", res.Method, "index", res.Index, "comparisons", res.Comparisons)

	label := inv.Limits().AttributeLabel

	return emit(o.Out(), format, report.NewSearchReport(name, res, rec), func(w io.Writer) error {
		if sorted != nil {
			err := report.WriteSort(w, *sorted)
			if err != nil {
				return err
			}
		}

		return report.WriteSearch(w, name, res, rec, label)
	})
}
