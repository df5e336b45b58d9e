package cli

import (
	"context"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/freefire/internal/report"
	"github.com/calvinalkan/freefire/pkg/engine"
)

// SortCmd returns the sort command.
func SortCmd(a *app) *Command {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	algo := fs.String("algo", "", "Algorithm: bubble, insertion or selection")
	by := fs.String("by", "", "Key: name, category or quantity")
	format := fs.String("format", "", "Output format: text, json or yaml (default from config)")

	return &Command{
		Flags: fs,
		Usage: "sort (--algo <a> | --by <key>)",
		Short: "Sort items and print them",
		Long: `Sort the inventory with one algorithm and print the comparison count,
the elapsed CPU time and the sorted items.

Each algorithm owns one key: bubble sorts by name, insertion by category and
selection by quantity. --algo and --by are interchangeable.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSort(a, o, args, *algo, *by, *format)
		},
	}
}

func execSort(a *app, o *IO, args []string, algo, by, formatFlag string) error {
	if len(args) > 0 {
		return errTooManyArgs
	}

	alg, err := selectAlgorithm(algo, by)
	if err != nil {
		return err
	}

	format, err := a.format(formatFlag)
	if err != nil {
		return err
	}

	inv, err := a.inventory(o)
	if err != nil {
		return err
	}

	res, err := inv.Sort(a.eng, alg)
	if err != nil {
		return err
	}

	a.log.Debug("sort", "algorithm", res.Algorithm, "comparisons", res.Comparisons, "elapsed", res.Elapsed)

	return emit(o.Out(), format, report.NewSortReport(res, inv.Items()), func(w io.Writer) error {
		err := report.WriteSort(w, res)
		if err != nil {
			return err
		}

		return report.WriteListing(w, listingOf(inv))
	})
}

func selectAlgorithm(algo, by string) (engine.Algorithm, error) {
	if algo == "" && by == "" {
		return 0, errSortKeyRequired
	}

	var fromAlgo, fromBy engine.Algorithm

	if algo != "" {
		alg, err := engine.ParseAlgorithm(algo)
		if err != nil {
			return 0, err
		}

		fromAlgo = alg
	}

	if by != "" {
		alg, err := engine.ParseAlgorithm(by)
		if err != nil {
			return 0, err
		}

		fromBy = alg
	}

	switch {
	case fromAlgo == 0:
		return fromBy, nil
	case fromBy != 0 && fromBy != fromAlgo:
		return 0, errSortFlagConflict
	default:
		return fromAlgo, nil
	}
}

// emit writes v in a structured format, or calls text for plain output.
func emit(w io.Writer, format string, v any, text func(io.Writer) error) error {
	if format == report.FormatText {
		return text(w)
	}

	return report.Encode(w, format, v)
}
