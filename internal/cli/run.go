package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/freefire/internal/config"
)

// defaultCommand runs when no command is given.
const defaultCommand = "shell"

// Run is the main entry point. Returns exit code.
//
// sigCh may be nil. A signal received on it cancels the context passed to
// commands; the shell stops at the next prompt.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globals := newGlobalFlags()

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.set.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out, globals.set)

			return 0
		}

		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globals.set)

		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: globals.workDir,
		ConfigPath:      globals.configPath,
		Overrides: config.Overrides{
			Profile:   globals.profile,
			Capacity:  globals.capacity,
			ItemsFile: globals.itemsFile,
			Verbose:   globals.verbose,
		},
		Env: env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	logger := newLogger(errOut, cfg.Verbose)
	logger.Debug("config loaded",
		"global", cfg.Sources.Global,
		"project", cfg.Sources.Project,
		"profile", cfg.Profile,
		"items_file", cfg.ItemsFileAbs,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case sig := <-sigCh:
				logger.Debug("received signal", "signal", sig)
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	a := newApp(cfg, logger)

	name := defaultCommand
	rest := []string{}

	if globals.set.NArg() > 0 {
		name = globals.set.Arg(0)
		rest = globals.set.Args()[1:]
	}

	cmd := findCommand(allCommands(a, in), name)
	if cmd == nil {
		fprintln(errOut, "error: unknown command:", name)
		fprintln(errOut)
		printUsage(errOut, globals.set)

		return 1
	}

	return cmd.Run(ctx, NewIO(out, errOut), rest)
}

type globalFlags struct {
	set        *flag.FlagSet
	workDir    string
	configPath string
	profile    string
	capacity   int
	itemsFile  string
	verbose    bool
}

func newGlobalFlags() *globalFlags {
	g := &globalFlags{set: flag.NewFlagSet("freefire", flag.ContinueOnError)}

	g.set.SetOutput(&strings.Builder{}) // discard pflag output
	g.set.SetInterspersed(false)        // stop at the command name

	g.set.StringVarP(&g.workDir, "cwd", "C", "", "Run as if started in `dir`")
	g.set.StringVarP(&g.configPath, "config", "c", "", "Use specified config `file`")
	g.set.StringVarP(&g.profile, "profile", "p", "", "Inventory profile (backpack|tower)")
	g.set.IntVar(&g.capacity, "capacity", 0, "Override the profile capacity")
	g.set.StringVarP(&g.itemsFile, "items", "f", "", "Pre-load items from a JSONC `file`")
	g.set.BoolVarP(&g.verbose, "verbose", "v", false, "Debug logging on stderr")

	return g
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func allCommands(a *app, in io.Reader) []*Command {
	return []*Command{
		ShellCmd(a, in),
		LsCmd(a),
		SortCmd(a),
		SearchCmd(a),
		BenchCmd(a),
		PrintConfigCmd(a),
	}
}

func findCommand(cmds []*Command, name string) *Command {
	for _, cmd := range cmds {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet) {
	fprintln(w, `freefire - instrumented inventory sort/search console

Usage: freefire [global flags] [command] [flags]

Global flags:`)

	var buf strings.Builder
	globals.SetOutput(&buf)
	globals.PrintDefaults()
	globals.SetOutput(&strings.Builder{})

	_, _ = fmt.Fprint(w, buf.String())
	fprintln(w, "  -h, --help                  Show this help")
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range allCommands(nil, nil) {
		fprintln(w, cmd.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Run 'freefire <command> --help' for command flags.")
}
