package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/freefire/internal/report"
)

// LsCmd returns the ls command.
func LsCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("ls", flag.ContinueOnError),
		Usage: "ls",
		Short: "List items",
		Long:  "List the inventory after loading the configured item file.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execLs(a, o, args)
		},
	}
}

func execLs(a *app, o *IO, args []string) error {
	if len(args) > 0 {
		return errTooManyArgs
	}

	inv, err := a.inventory(o)
	if err != nil {
		return err
	}

	return report.WriteListing(o.Out(), listingOf(inv))
}
