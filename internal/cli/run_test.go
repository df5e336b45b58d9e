package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/freefire/internal/cli"
)

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "ls")

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout)

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")

	// Should show valid global options
	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--help")
	cli.AssertContains(t, stderr, "--cwd")
	cli.AssertContains(t, stderr, "--config")
	cli.AssertContains(t, stderr, "--profile")
}

func Test_Help_Flag_Prints_Usage_When_Invoked(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"freefire", "--help"}, nil, nil)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())

	cli.AssertContains(t, stdout.String(), "freefire - instrumented inventory sort/search console")
	cli.AssertContains(t, stdout.String(), "search <name> [flags]")
	cli.AssertContains(t, stdout.String(), "print-config")
	cli.AssertContains(t, stdout.String(), "--items")
}

func Test_Unknown_Command_Fails_With_Usage(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "error: unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Command_Help_Shows_Command_Flags(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("sort", "--help")

	cli.AssertContains(t, stdout, "Usage: freefire sort (--algo <a> | --by <key>)")
	cli.AssertContains(t, stdout, "--algo")
	cli.AssertContains(t, stdout, "--by")
}

func Test_Unknown_Profile_Fails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--profile", "garage", "ls")

	cli.AssertContains(t, stderr, "unknown profile")
	cli.AssertContains(t, stderr, "backpack|tower")
}

func Test_Negative_Capacity_Fails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--capacity=-1", "ls")

	cli.AssertContains(t, stderr, "capacity cannot be negative")
}

func Test_Huge_Capacity_Fails_Without_Allocating(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("--capacity", "4000000000000", "ls")
	cli.AssertContains(t, stderr, "error: capacity too large: 4000000000000 > 1000")

	stdout := c.MustRun("--capacity", "1000", "ls")
	cli.AssertContains(t, stdout, "Backpack: 0/1000 items, unordered")
}

func Test_Huge_Capacity_In_Config_File_Fails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".freefire.json", `{"capacity": 100000000}`)

	stderr := c.MustFail("ls")
	cli.AssertContains(t, stderr, "capacity too large")
}

func Test_Verbose_Enables_Debug_Logging(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("-v", "ls")

	assert.Equal(t, 0, exitCode)
	cli.AssertContains(t, stdout, "Backpack: 0/10 items, unordered")
	cli.AssertContains(t, stderr, "level=DEBUG")
	cli.AssertContains(t, stderr, "config loaded")
}

func Test_Quiet_By_Default(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	_, stderr, exitCode := c.Run("ls")

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr)
}

func Test_Print_Config_Shows_Defaults_When_No_Files(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "profile=backpack")
	cli.AssertContains(t, stdout, "capacity=(profile default)")
	cli.AssertContains(t, stdout, "items_file=(none)")
	cli.AssertContains(t, stdout, "history_file="+filepath.Join(c.Env["HOME"], ".freefire_history"))
	cli.AssertContains(t, stdout, "(defaults only)")
}

func Test_Print_Config_Applies_Project_File_And_Flags(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".freefire.json", `{
		// tower drills
		"profile": "tower",
		"history_file": "",
		"report_format": "yaml",
	}`)

	stdout := c.MustRun("--capacity", "5", "print-config")

	cli.AssertContains(t, stdout, "profile=tower")
	cli.AssertContains(t, stdout, "capacity=5")
	cli.AssertContains(t, stdout, "history_file=(disabled)")
	cli.AssertContains(t, stdout, "report_format=yaml")
	cli.AssertContains(t, stdout, "project_config="+filepath.Join(c.Dir, ".freefire.json"))
}

func Test_Explicit_Config_File_Must_Exist(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--config", "missing.json", "print-config")

	cli.AssertContains(t, stderr, "missing.json")
}

func Test_Print_Config_Works_When_Items_File_Broken(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteItems(`{"items": [`)

	stdout := c.MustRun("-f", "items.jsonc", "print-config")
	cli.AssertContains(t, stdout, "items_file="+filepath.Join(c.Dir, "items.jsonc"))
}

func Test_Shell_Exits_Cleanly_When_Signalled(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	r, w, err := os.Pipe()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	var stdout, stderr bytes.Buffer

	done := make(chan int, 1)

	go func() {
		done <- cli.Run(r, &stdout, &stderr, []string{"freefire", "--cwd", c.Dir, "shell"}, c.Env, sigCh)
	}()

	// Either the cancelled context or EOF ends the loop.
	_, err = w.WriteString("ls\n")
	require.NoError(t, err)

	_ = w.Close()

	assert.Equal(t, 0, <-done)
	cli.AssertContains(t, stdout.String(), "Bye!")
}
