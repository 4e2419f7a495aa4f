package shell

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"list-manager/internal/intlist"
	"list-manager/internal/logger"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	logger.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func loadedList(t *testing.T, capacity int, input string) *intlist.List {
	t.Helper()
	l, err := intlist.New(capacity)
	require.NoError(t, err)
	_, err = l.Load(strings.NewReader(input))
	require.NoError(t, err)
	return l
}

func runShell(t *testing.T, list *intlist.List, input string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(list, strings.NewReader(input), &out)
	require.NoError(t, sh.Run())
	assert.Equal(t, Terminated, sh.State())
	return out.String()
}

func TestExitChoiceTerminates(t *testing.T) {
	out := runShell(t, loadedList(t, 5, "1 2"), "6\n")
	assert.Contains(t, out, "List Operations Menu")
	assert.Contains(t, out, "1. Display List")
	assert.Contains(t, out, "6. Exit")
	assert.Contains(t, out, "Thank you for using the List Operations program!")
}

func TestEndOfInputTerminates(t *testing.T) {
	out := runShell(t, loadedList(t, 5, "1 2"), "1\n")
	assert.Contains(t, out, "Current List contents (2 elements): 1 2")
	assert.NotContains(t, out, "Thank you")
}

func TestScenarioThroughMenu(t *testing.T) {
	list := loadedList(t, 5, "3 1 4 1 5")
	input := strings.Join([]string{
		"2", "1", // search 1
		"4", "9", // append 9 on a full list
		"5", "0", // remove index 0
		"3", "1 7", // modify index 1 to 7, both answers on one line
		"1",
		"6",
	}, "\n")

	out := runShell(t, list, input)

	assert.Contains(t, out, "Element 1 found at index 1")
	assert.Contains(t, out, "Exception caught: List is full with 5 elements. Cannot add more elements.")
	assert.Contains(t, out, "Element 3 removed successfully from index 0")
	assert.Contains(t, out, "Element at index 1 modified successfully.")
	assert.Contains(t, out, "Old value: 4, New value: 7")
	assert.Contains(t, out, "Current List contents (4 elements): 1 7 1 5")
	assert.Equal(t, []int{1, 7, 1, 5}, list.Values())
}

func TestInvalidChoiceKeepsLooping(t *testing.T) {
	list := loadedList(t, 5, "8")
	out := runShell(t, list, "0\n7\nabc\n6\n")

	assert.Equal(t, 3, strings.Count(out, "Invalid choice. Please enter a number between 1 and 6."))
	assert.Contains(t, out, "Thank you")
	assert.Equal(t, []int{8}, list.Values())
}

func TestInvalidArgumentReturnsToMenu(t *testing.T) {
	list := loadedList(t, 5, "8 9")
	out := runShell(t, list, "5\nfirst\n1\n6\n")

	assert.Contains(t, out, `Invalid input: "first" is not an integer.`)
	assert.Contains(t, out, "Current List contents (2 elements): 8 9")
	assert.Equal(t, []int{8, 9}, list.Values())
}

func TestOutOfRangeArgumentReturnsToMenu(t *testing.T) {
	list := loadedList(t, 5, "8")
	out := runShell(t, list, "4\n3000000000\n6\n")

	assert.Contains(t, out, `Invalid input: "3000000000" is out of range -2147483648..2147483647.`)
	assert.Equal(t, []int{8}, list.Values())
}

func TestIndexFailuresAreReportedAndSwallowed(t *testing.T) {
	list := loadedList(t, 5, "8 9")
	out := runShell(t, list, "3\n5\n0\n5\n-1\n6\n")

	assert.Contains(t, out, "Exception caught: Invalid index: 5. Index should be between 0 and 1")
	assert.Contains(t, out, "Error: Invalid index. Index should be between 0 and 1")
	assert.Equal(t, []int{8, 9}, list.Values())
}

func TestEndOfInputWhilePrompting(t *testing.T) {
	list := loadedList(t, 5, "8")
	out := runShell(t, list, "4\n")
	assert.Contains(t, out, "Enter the value to add: ")
	assert.Equal(t, []int{8}, list.Values())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A1input.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 5 6\n"), 0o600))

	list, err := intlist.New(10)
	require.NoError(t, err)
	var out bytes.Buffer
	sh := New(list, strings.NewReader(""), &out)

	require.NoError(t, sh.Load(path))
	assert.Contains(t, out.String(), "Reading data from "+path+"...")
	assert.Contains(t, out.String(), "Successfully read 3 elements from file.")
	assert.Contains(t, out.String(), "Initial List contents (3 elements): 4 5 6")
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	list, err := intlist.New(10)
	require.NoError(t, err)
	var out bytes.Buffer
	sh := New(list, strings.NewReader(""), &out)

	err = sh.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, intlist.ErrSourceUnavailable)
	assert.Contains(t, out.String(), "Error: Could not open file "+path)
	assert.Contains(t, out.String(), "Failed to read from file. Exiting program.")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal closed")
}

func TestRunStopsOnWriteFailure(t *testing.T) {
	sh := New(loadedList(t, 5, "1"), strings.NewReader("1\n1\n1\n"), brokenWriter{})
	err := sh.Run()
	assert.EqualError(t, err, "terminal closed")
}
