// Package config loads freefire's layered JSONC configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/freefire/internal/inventory"
	"github.com/calvinalkan/freefire/internal/report"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Profile      string `json:"profile"`
	Capacity     int    `json:"capacity,omitempty"`
	ItemsFile    string `json:"items_file,omitempty"`
	HistoryFile  string `json:"history_file,omitempty"`
	ReportFormat string `json:"report_format,omitempty"`

	// Resolved (computed, not serialized)
	EffectiveCwd   string `json:"-"`
	ItemsFileAbs   string `json:"-"` // empty when no item file is configured
	HistoryFileAbs string `json:"-"` // empty when history is disabled
	Verbose        bool   `json:"-"`

	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Profile:      "backpack",
		ReportFormat: report.FormatText,
	}
}

// FileName is the default project config file name.
const FileName = ".freefire.json"

// historyFileName is the default shell history file, relative to $HOME.
const historyFileName = ".freefire_history"

// Overrides are values set on the command line. Zero values mean "not set".
type Overrides struct {
	Profile   string
	Capacity  int
	ItemsFile string
	Verbose   bool
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Overrides       Overrides         // CLI flag values
	Env             map[string]string // environment variables
}

// globalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/freefire/config.json if set, otherwise
// ~/.config/freefire/config.json. Empty if neither is available.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "freefire", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "freefire", "config.json")
	}

	return ""
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config
// 3. Project config file (.freefire.json, if exists)
// 4. Explicit config file via ConfigPath (replaces 3)
// 5. CLI overrides.
//
// Relative paths are resolved against the effective working directory.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, globalEmpty, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = merge(cfg, globalCfg)
	historyDisabled := globalEmpty["history_file"]

	projectCfg, projectPath, projectEmpty, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	// A later non-empty value re-enables history.
	if projectEmpty["history_file"] {
		historyDisabled = true
	} else if projectCfg.HistoryFile != "" {
		historyDisabled = false
	}

	if input.Overrides.Profile != "" {
		cfg.Profile = input.Overrides.Profile
	}

	if input.Overrides.Capacity != 0 {
		cfg.Capacity = input.Overrides.Capacity
	}

	if input.Overrides.ItemsFile != "" {
		cfg.ItemsFile = input.Overrides.ItemsFile
	}

	cfg.Verbose = input.Overrides.Verbose

	validateErr := validate(cfg)
	if validateErr != nil {
		return Config{}, validateErr
	}

	cfg.EffectiveCwd = workDir
	cfg.ItemsFileAbs = resolve(workDir, cfg.ItemsFile)

	switch {
	case historyDisabled:
		cfg.HistoryFile = ""
	case cfg.HistoryFile != "":
		cfg.HistoryFileAbs = resolve(workDir, cfg.HistoryFile)
	case input.Env["HOME"] != "":
		cfg.HistoryFileAbs = filepath.Join(input.Env["HOME"], historyFileName)
	}

	return cfg, nil
}

func resolve(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

// loadGlobalConfig loads the global user config file if it exists.
func loadGlobalConfig(env map[string]string) (Config, string, map[string]bool, error) {
	path := globalConfigPath(env)
	if path == "" {
		return Config{}, "", nil, nil
	}

	cfg, explicitEmpty, loaded, err := loadFile(path, false)
	if err != nil {
		return Config{}, "", nil, err
	}

	if !loaded {
		return Config{}, "", nil, nil
	}

	if explicitEmpty["profile"] {
		return Config{}, "", nil, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrProfileEmpty)
	}

	return cfg, path, explicitEmpty, nil
}

// loadProjectConfig loads .freefire.json or an explicit config file.
func loadProjectConfig(workDir, configPath string) (Config, string, map[string]bool, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		cfgFile = resolve(workDir, configPath)
		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		cfgFile = filepath.Join(workDir, FileName)
	}

	cfg, explicitEmpty, loaded, err := loadFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", nil, err
	}

	if !loaded {
		return Config{}, "", nil, nil
	}

	if explicitEmpty["profile"] {
		return Config{}, "", nil, fmt.Errorf("%w %s: %w", ErrConfigInvalid, cfgFile, ErrProfileEmpty)
	}

	return cfg, cfgFile, explicitEmpty, nil
}

// loadFile loads a config file. If mustExist is false, missing files return
// zero config. Returns the config, explicitly empty string fields, whether
// the file was loaded, and any error.
func loadFile(path string, mustExist bool) (Config, map[string]bool, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, nil, false, nil
		}

		if mustExist {
			return Config{}, nil, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, nil, false, nil
	}

	cfg, explicitEmpty, parseErr := Parse(data)
	if parseErr != nil {
		return Config{}, nil, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, explicitEmpty, true, nil
}

// Parse decodes JSONC config data. The returned map marks string fields that
// were present but set to "".
func Parse(data []byte) (Config, map[string]bool, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, nil, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	explicitEmpty := make(map[string]bool)

	for _, field := range []string{"profile", "items_file", "history_file", "report_format"} {
		if val, exists := raw[field]; exists {
			if str, ok := val.(string); ok && str == "" {
				explicitEmpty[field] = true
			}
		}
	}

	return cfg, explicitEmpty, nil
}

func merge(base, overlay Config) Config {
	if overlay.Profile != "" {
		base.Profile = overlay.Profile
	}

	if overlay.Capacity != 0 {
		base.Capacity = overlay.Capacity
	}

	if overlay.ItemsFile != "" {
		base.ItemsFile = overlay.ItemsFile
	}

	if overlay.HistoryFile != "" {
		base.HistoryFile = overlay.HistoryFile
	}

	if overlay.ReportFormat != "" {
		base.ReportFormat = overlay.ReportFormat
	}

	return base
}

func validate(cfg Config) error {
	if cfg.Profile == "" {
		return ErrProfileEmpty
	}

	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: %d", ErrCapacityNegative, cfg.Capacity)
	}

	if cfg.Capacity > inventory.MaxCapacity {
		return fmt.Errorf("%w: %d > %d", ErrCapacityTooLarge, cfg.Capacity, inventory.MaxCapacity)
	}

	return ValidateFormat(cfg.ReportFormat)
}

// ValidateFormat checks a report format name.
func ValidateFormat(format string) error {
	switch format {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrReportFormat, format)
	}
}

// Format renders cfg as key=value lines for print-config.
func Format(cfg Config) string {
	history := cfg.HistoryFileAbs
	if history == "" {
		history = "(disabled)"
	}

	items := cfg.ItemsFileAbs
	if items == "" {
		items = "(none)"
	}

	capacity := "(profile default)"
	if cfg.Capacity > 0 {
		capacity = strconv.Itoa(cfg.Capacity)
	}

	lines := []string{
		"profile=" + cfg.Profile,
		"capacity=" + capacity,
		"items_file=" + items,
		"history_file=" + history,
		"report_format=" + cfg.ReportFormat,
	}

	return strings.Join(lines, "\n")
}
