package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"list-manager/internal/config"
	"list-manager/internal/intlist"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// isolate points the config and state directories at a temp dir and returns a
// directory for input files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func writeInput(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultCommandRunsShell(t *testing.T) {
	dir := isolate(t)
	path := writeInput(t, dir, "3 1 4 1 5\n")

	out, err := execute(t, "2\n1\n5\n0\n1\n6\n", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Reading data from "+path+"...")
	assert.Contains(t, out, "Successfully read 5 elements from file.")
	assert.Contains(t, out, "Element 1 found at index 1")
	assert.Contains(t, out, "Current List contents (4 elements): 1 4 1 5")
	assert.Contains(t, out, "Thank you for using the List Operations program!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3 1 4 1 5\n", string(data), "changes are never written back")
}

func TestShellCapacityFlag(t *testing.T) {
	dir := isolate(t)
	path := writeInput(t, dir, "1 2 3 4 5 6 7")

	out, err := execute(t, "4\n8\n6\n", "shell", "-i", path, "-c", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully read 3 elements from file.")
	assert.Contains(t, out, "Exception caught: List is full with 3 elements. Cannot add more elements.")
}

func TestMissingInputExitsWithCodeOne(t *testing.T) {
	dir := isolate(t)
	missing := filepath.Join(dir, "missing.txt")

	out, err := execute(t, "6\n", "--input", missing)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, intlist.ErrSourceUnavailable)
	assert.Contains(t, out, "Failed to read from file. Exiting program.")
	assert.NotContains(t, out, "List Operations Menu")
}

func TestInvalidCapacityFlag(t *testing.T) {
	dir := isolate(t)
	path := writeInput(t, dir, "1")

	_, err := execute(t, "", "show", "-i", path, "--capacity", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity must be positive")
}

func TestShowSizeSearch(t *testing.T) {
	dir := isolate(t)
	path := writeInput(t, dir, "7 8 7")

	out, err := execute(t, "", "show", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "List contents (3 elements): 7 8 7\n", out)

	out, err = execute(t, "", "size", "-i", path, "-c", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Length:   3")
	assert.Contains(t, out, "Capacity: 10")

	out, err = execute(t, "", "search", "-i", path, "7")
	require.NoError(t, err)
	assert.Equal(t, "Element 7 found at index 0\n", out)

	out, err = execute(t, "", "search", "-i", path, "--", "-2")
	require.NoError(t, err)
	assert.Equal(t, "Element -2 not found in the list.\n", out)

	_, err = execute(t, "", "search", "-i", path, "seven")
	assert.ErrorContains(t, err, "value must be an integer")
}

func TestInputFromConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeInput(t, dir, "42")

	out, err := execute(t, "", "config", "set-input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Input file set to: "+path)

	out, err = execute(t, "", "show")
	require.NoError(t, err)
	assert.Equal(t, "List contents (1 element): 42\n", out)
}

func TestConfigCommands(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "config", "set-capacity", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Capacity set to: 25")

	out, err = execute(t, "", "config", "set-log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "Log level set to: debug")

	cfg, err := config.ReadConfig()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Capacity)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.DefaultInputPath, cfg.InputPath)

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "capacity: 25")
	assert.Contains(t, out, "log_level: debug")

	out, err = execute(t, "", "config", "path")
	require.NoError(t, err)
	want, err := config.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestConfigRejectsBadValues(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "config", "set-capacity", "0")
	assert.ErrorContains(t, err, "capacity must be a positive integer")

	_, err = execute(t, "", "config", "set-log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "", "config", "set-input", " ")
	assert.ErrorContains(t, err, "input path must not be empty")
}

func TestLogLevelCompletion(t *testing.T) {
	got, _ := logLevelCompletionFunc(nil, nil, "w")
	assert.Equal(t, []string{"warn"}, got)
}

func TestConfigCommandsRepairInvalidFile(t *testing.T) {
	dir := isolate(t)
	path := writeInput(t, dir, "1 2 3 4 5 6 7")

	configPath, err := config.DefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o750))
	require.NoError(t, os.WriteFile(configPath, []byte("capacity: -3\n"), 0o640))

	_, err = execute(t, "", "show", "-i", path)
	assert.ErrorContains(t, err, "capacity must be positive, got -3")

	out, err := execute(t, "", "--input", path, "--capacity", "5", "show")
	require.NoError(t, err, "flags override a bad stored value")
	assert.Equal(t, "List contents (5 elements): 1 2 3 4 5\n", out)

	out, err = execute(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, configPath+"\n", out)

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "capacity: -3")
	assert.Contains(t, out, "# invalid: capacity must be positive, got -3")

	out, err = execute(t, "", "config", "set-capacity", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Capacity set to: 10")

	out, err = execute(t, "", "show", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "List contents (7 elements): 1 2 3 4 5 6 7\n", out)
}

func TestSearchRejectsOutOfRangeValue(t *testing.T) {
	dir := isolate(t)
	path := writeInput(t, dir, "1")

	_, err := execute(t, "", "search", "-i", path, "3000000000")
	assert.ErrorContains(t, err, "out of range")
}
