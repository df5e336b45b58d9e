package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/calvinalkan/freefire/internal/config"
	"github.com/calvinalkan/freefire/internal/inventory"
	"github.com/calvinalkan/freefire/internal/report"
	"github.com/calvinalkan/freefire/pkg/engine"
)

var (
	errNameRequired     = errors.New("name is required")
	errTooManyArgs      = errors.New("too many arguments")
	errSortKeyRequired  = errors.New("--algo or --by is required")
	errSortFlagConflict = errors.New("--algo and --by select different sorts")
)

// app is the state shared by every command of one invocation.
type app struct {
	cfg config.Config
	log *slog.Logger
	eng *engine.Engine
}

func newApp(cfg config.Config, logger *slog.Logger) *app {
	return &app{cfg: cfg, log: logger, eng: engine.New()}
}

// load builds the session inventory and pre-loads the configured item file.
// Problems with individual items come back as warnings.
func (a *app) load() (*inventory.Inventory, []warning, error) {
	limits, err := inventory.LimitsFor(a.cfg.Profile, a.cfg.Capacity)
	if err != nil {
		return nil, nil, err
	}

	inv := inventory.New(limits)

	if a.cfg.ItemsFileAbs == "" {
		return inv, nil, nil
	}

	items, err := inventory.LoadFile(a.cfg.ItemsFileAbs)
	if err != nil {
		return nil, nil, err
	}

	loaded := inv.InsertAll(items)
	a.log.Debug("item file loaded",
		"path", a.cfg.ItemsFileAbs,
		"inserted", loaded.Inserted,
		"rejected", len(loaded.Rejected),
	)

	var warnings []warning

	for _, rej := range loaded.Rejected {
		warnings = append(warnings, warning{
			issue:  fmt.Sprintf("item %d (%q) in %s rejected: %v", rej.Index, rej.Name, filepath.Base(a.cfg.ItemsFileAbs), rej.Err),
			action: "fix or remove it from the item file",
		})
	}

	for _, name := range loaded.Duplicates {
		warnings = append(warnings, warning{
			issue:  fmt.Sprintf("duplicate name %q", name),
			action: "searches return the first match only",
		})
	}

	return inv, warnings, nil
}

// inventory loads the session inventory for a one-shot command, queueing
// load warnings on o.
func (a *app) inventory(o *IO) (*inventory.Inventory, error) {
	inv, warnings, err := a.load()
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		o.Warn(w.issue, w.action)
	}

	return inv, nil
}

// format returns the requested report format, falling back to the config.
func (a *app) format(flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = a.cfg.ReportFormat
	}

	err := config.ValidateFormat(format)
	if err != nil {
		return "", err
	}

	return format, nil
}

func listingOf(inv *inventory.Inventory) report.Listing {
	limits := inv.Limits()

	return report.Listing{
		Title:    limits.Title,
		Label:    limits.AttributeLabel,
		Capacity: limits.Capacity,
		Order:    inv.Order(),
		Items:    inv.Items(),
	}
}

type warning struct {
	issue  string
	action string
}
