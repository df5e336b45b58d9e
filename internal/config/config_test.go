package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/freefire/internal/config"
	"github.com/calvinalkan/freefire/internal/inventory"
	"github.com/calvinalkan/freefire/internal/report"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func Test_Load_Returns_Defaults_When_No_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(config.LoadInput{WorkDirOverride: dir, Env: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "backpack", cfg.Profile)
	assert.Equal(t, 0, cfg.Capacity)
	assert.Equal(t, report.FormatText, cfg.ReportFormat)
	assert.Equal(t, dir, cfg.EffectiveCwd)
	assert.Empty(t, cfg.ItemsFileAbs)
	assert.Empty(t, cfg.HistoryFileAbs, "no HOME, no history")
	assert.Empty(t, cfg.Sources.Global)
	assert.Empty(t, cfg.Sources.Project)
}

func Test_Load_Applies_Precedence_When_All_Layers_Present(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	xdg := t.TempDir()

	writeFile(t, filepath.Join(xdg, "freefire", "config.json"), `{
		// global
		"profile": "tower",
		"capacity": 15,
		"report_format": "yaml",
	}`)
	writeFile(t, filepath.Join(dir, config.FileName), `{"capacity": 12, "items_file": "kit.jsonc"}`)

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: dir,
		Overrides:       config.Overrides{Capacity: 7, Verbose: true},
		Env:             map[string]string{"XDG_CONFIG_HOME": xdg},
	})
	require.NoError(t, err)

	assert.Equal(t, "tower", cfg.Profile, "from global")
	assert.Equal(t, 7, cfg.Capacity, "from CLI")
	assert.Equal(t, report.FormatYAML, cfg.ReportFormat, "from global")
	assert.Equal(t, filepath.Join(dir, "kit.jsonc"), cfg.ItemsFileAbs, "from project, resolved")
	assert.True(t, cfg.Verbose)
	assert.Equal(t, filepath.Join(xdg, "freefire", "config.json"), cfg.Sources.Global)
	assert.Equal(t, filepath.Join(dir, config.FileName), cfg.Sources.Project)
}

func Test_Load_Uses_Explicit_Config_Instead_Of_Project_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, config.FileName), `{"profile": "tower"}`)
	writeFile(t, filepath.Join(dir, "custom.json"), `{"capacity": 3}`)

	cfg, err := config.Load(config.LoadInput{WorkDirOverride: dir, ConfigPath: "custom.json"})
	require.NoError(t, err)

	assert.Equal(t, "backpack", cfg.Profile)
	assert.Equal(t, 3, cfg.Capacity)
	assert.Equal(t, filepath.Join(dir, "custom.json"), cfg.Sources.Project)
}

func Test_Load_Returns_Error_When_Explicit_Config_Missing(t *testing.T) {
	t.Parallel()

	_, err := config.Load(config.LoadInput{WorkDirOverride: t.TempDir(), ConfigPath: "missing.json"})
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

func Test_Load_Returns_Error_When_Profile_Explicitly_Empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{"profile": ""}`)

	_, err := config.Load(config.LoadInput{WorkDirOverride: dir})
	require.ErrorIs(t, err, config.ErrConfigInvalid)
	require.ErrorIs(t, err, config.ErrProfileEmpty)
}

func Test_Load_Returns_Error_When_File_Invalid(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"BadJSONC":  `{"profile": `,
		"WrongType": `{"capacity": "ten"}`,
		"BadFormat": `{"report_format": "xml"}`,
		"Negative":  `{"capacity": -2}`,
		"Huge":      `{"capacity": 4000000000000}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, config.FileName), content)

			_, err := config.Load(config.LoadInput{WorkDirOverride: dir})
			require.Error(t, err)
		})
	}
}

func Test_Load_Disables_History_When_History_File_Explicitly_Empty(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	dir := t.TempDir()

	cfg, err := config.Load(config.LoadInput{WorkDirOverride: dir, Env: map[string]string{"HOME": home}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".freefire_history"), cfg.HistoryFileAbs)

	writeFile(t, filepath.Join(dir, config.FileName), `{"history_file": ""}`)

	cfg, err = config.Load(config.LoadInput{WorkDirOverride: dir, Env: map[string]string{"HOME": home}})
	require.NoError(t, err)
	assert.Empty(t, cfg.HistoryFileAbs)
	assert.Contains(t, config.Format(cfg), "history_file=(disabled)")
}

func Test_Load_Resolves_Relative_History_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{"history_file": "hist.txt"}`)

	cfg, err := config.Load(config.LoadInput{WorkDirOverride: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hist.txt"), cfg.HistoryFileAbs)
}

func Test_Format_Renders_Key_Value_Lines(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Capacity = 4

	want := "profile=backpack\n" +
		"capacity=4\n" +
		"items_file=(none)\n" +
		"history_file=(disabled)\n" +
		"report_format=text"

	assert.Equal(t, want, config.Format(cfg))
}

func Test_Load_Bounds_Capacity_When_Overridden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: dir,
		Overrides:       config.Overrides{Capacity: inventory.MaxCapacity},
	})
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxCapacity, cfg.Capacity)

	_, err = config.Load(config.LoadInput{
		WorkDirOverride: dir,
		Overrides:       config.Overrides{Capacity: inventory.MaxCapacity + 1},
	})
	require.ErrorIs(t, err, config.ErrCapacityTooLarge)
}

func Test_ValidateFormat_Accepts_Report_Formats(t *testing.T) {
	t.Parallel()

	for _, format := range []string{report.FormatText, report.FormatJSON, report.FormatYAML} {
		require.NoError(t, config.ValidateFormat(format), format)
	}

	require.ErrorIs(t, config.ValidateFormat("xml"), config.ErrReportFormat)
}
