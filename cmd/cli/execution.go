// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"os"
	"time"

	"list-manager/cmd/tui"
	"list-manager/internal/config"
	"list-manager/internal/intlist"
	"list-manager/internal/logger"
	"list-manager/internal/shell"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newShellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:         "shell",
		Short:       "Load the input file and run the numbered menu (default command)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Load the input file and run the full-screen menu",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadList(cmd, opts)
			if err != nil {
				return err
			}
			return tui.RunTUI(list, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell loads the input file with the shell's startup banner, then runs the menu loop.
func runShell(cmd *cobra.Command, opts *options) error {
	list, err := intlist.New(opts.cfg.Capacity)
	if err != nil {
		return err
	}
	path, err := config.ResolvePath(opts.cfg.InputPath)
	if err != nil {
		return err
	}

	sh := shell.New(list, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := sh.Load(path); err != nil {
		// The shell has already reported the failure.
		return &ExitError{Code: 1, Err: err}
	}
	return sh.Run()
}

// loadList reads the configured input file, showing a spinner on an interactive stderr.
func loadList(cmd *cobra.Command, opts *options) (*intlist.List, error) {
	list, err := intlist.New(opts.cfg.Capacity)
	if err != nil {
		return nil, err
	}
	path, err := config.ResolvePath(opts.cfg.InputPath)
	if err != nil {
		return nil, err
	}

	var s *spinner.Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		_ = s.Color("cyan")
		s.Suffix = " Reading " + path + "..."
		s.Start()
	}

	n, err := list.LoadFile(path)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		logger.Error("Failed to load input file.", "path", path, "error", err)
		errorColor.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return nil, &ExitError{Code: 1, Err: err}
	}
	logger.Info("Loaded input file.", "path", path, "count", n, "capacity", list.Cap())
	return list, nil
}
