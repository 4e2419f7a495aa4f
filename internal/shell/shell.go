// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package shell provides the numbered text menu that drives an intlist.List
// from a line-oriented input stream.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"list-manager/internal/intlist"
	"list-manager/internal/logger"

	"github.com/fatih/color"
)

// State is the shell's position in its menu loop.
type State int

const (
	AwaitingChoice State = iota
	Terminated
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.Bold)
)

// Shell reads menu choices and arguments from in and writes results to out.
// Tokens are whitespace-delimited, so several answers may share one line.
type Shell struct {
	list  *intlist.List
	in    *bufio.Scanner
	out   *errWriter
	state State
}

// New returns a shell driving list. The shell owns no other state.
func New(list *intlist.List, in io.Reader, out io.Writer) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Shell{
		list:  list,
		in:    scanner,
		out:   &errWriter{w: out},
		state: AwaitingChoice,
	}
}

// State reports the current state.
func (s *Shell) State() State {
	return s.state
}

// Load reads the startup file into the list, reporting progress on out.
// The returned error is fatal to the program.
func (s *Shell) Load(path string) error {
	statusColor.Fprintf(s.out, "Reading data from %s...\n", path)

	n, err := s.list.LoadFile(path)
	if err != nil {
		logger.Error("Failed to load input file.", "path", path, "error", err)
		errorColor.Fprintf(s.out, "Error: Could not open file %s\n", path)
		errorColor.Fprintln(s.out, "Failed to read from file. Exiting program.")
		return err
	}

	logger.Info("Loaded input file.", "path", path, "count", n, "capacity", s.list.Cap())
	successColor.Fprintf(s.out, "Successfully read %d elements from file.\n", n)
	fmt.Fprintf(s.out, "\nInitial %s\n", s.list.Render())
	return s.out.err
}

// Run loops until the exit choice or end of input. It returns an error only
// when output cannot be written.
func (s *Shell) Run() error {
	for s.state != Terminated && s.out.err == nil {
		s.Step()
	}
	return s.out.err
}

// Step prints the menu, reads one choice with its arguments and applies it.
func (s *Shell) Step() {
	if s.state == Terminated {
		return
	}
	s.printMenu()

	token, ok := s.next()
	if !ok {
		s.terminate("end of input")
		return
	}

	choice, err := ParseChoice(token)
	if err != nil {
		errorColor.Fprintf(s.out, "\nInvalid choice. Please enter a number between 1 and %d.\n", len(Choices()))
		return
	}

	args := make([]int, 0, len(choice.Prompts()))
	for i, prompt := range choice.Prompts() {
		if i == 0 {
			fmt.Fprintln(s.out)
		}
		fmt.Fprintf(s.out, "%s: ", prompt)

		token, ok := s.next()
		if !ok {
			s.terminate("end of input")
			return
		}
		value, err := intlist.ParseValue(token)
		if err != nil {
			errorColor.Fprintf(s.out, "\nInvalid input: %v.\n", err)
			return
		}
		args = append(args, value)
	}

	outcome := Apply(s.list, choice, args)
	s.print(outcome)
	if outcome.Exit {
		s.terminate("exit chosen")
	}
}

func (s *Shell) printMenu() {
	b := strings.Builder{}
	b.WriteString("\n========== List Operations Menu ==========\n")
	for _, c := range Choices() {
		fmt.Fprintf(&b, "%d. %s\n", c, c.Label())
	}
	b.WriteString("==========================================\n")
	headerColor.Fprint(s.out, b.String())
	fmt.Fprintf(s.out, "Enter your choice (1-%d): ", len(Choices()))
}

func (s *Shell) print(outcome Outcome) {
	fmt.Fprintln(s.out)
	for _, line := range outcome.Lines {
		switch {
		case outcome.Failed:
			errorColor.Fprintln(s.out, line)
		case outcome.Exit:
			statusColor.Fprintln(s.out, line)
		default:
			fmt.Fprintln(s.out, line)
		}
	}
}

func (s *Shell) next() (string, bool) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			logger.Warn("Reading input failed.", "error", err)
		}
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) terminate(reason string) {
	logger.Debug("Shell terminated.", "reason", reason, "length", s.list.Len())
	s.state = Terminated
}

// errWriter remembers the first write error so the loop can stop on a closed terminal.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
