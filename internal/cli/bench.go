package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/freefire/internal/report"
)

// BenchCmd returns the bench command.
func BenchCmd(a *app) *Command {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	format := fs.String("format", "", "Output format: text, json or yaml (default from config)")
	output := fs.StringP("output", "o", "", "Write the report to `file` instead of stdout")

	return &Command{
		Flags: fs,
		Usage: "bench [flags]",
		Short: "Run all three sorts on copies",
		Long: `Run bubble, insertion and selection sort on independent copies of the
inventory and report comparisons, CPU time and each sorted copy.

The inventory itself is not modified.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execBench(a, o, args, *format, *output)
		},
	}
}

func execBench(a *app, o *IO, args []string, formatFlag, output string) error {
	if len(args) > 0 {
		return errTooManyArgs
	}

	format, err := a.format(formatFlag)
	if err != nil {
		return err
	}

	inv, err := a.inventory(o)
	if err != nil {
		return err
	}

	results := inv.Benchmark(a.eng)
	for _, res := range results {
		a.log.Debug("bench", "algorithm", res.Algorithm, "comparisons", res.Comparisons, "elapsed", res.Elapsed)
	}

	label := inv.Limits().AttributeLabel
	rep := report.NewBenchReport(inv.Limits().Profile, inv.Items(), results)

	var buf bytes.Buffer

	err = emit(&buf, format, rep, func(w io.Writer) error {
		return report.WriteBench(w, results, label)
	})
	if err != nil {
		return err
	}

	if output == "" {
		o.Printf("%s", buf.String())

		return nil
	}

	path := output
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.cfg.EffectiveCwd, path)
	}

	err = report.Export(path, buf.Bytes())
	if err != nil {
		return err
	}

	o.Println("wrote", path)

	return nil
}
