// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"list-manager/internal/config"
	"list-manager/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// interactiveAnnotation marks commands that own the terminal; they log to file only.
const interactiveAnnotation = "interactive"

// ExitError carries an exit code for a failure that has already been shown to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// options holds flag values and the effective configuration for one invocation.
type options struct {
	inputPath string
	capacity  int
	logLevel  string

	cfg config.Config
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lm",
		Short: "List Manager",
		Long: `Loads a list of integers from a file into a fixed-capacity list and lets you
display, search, modify, add to and remove from it through a numbered menu.

Settings are read from ~/.config/list-manager/config.yaml and can be overridden
with flags. Changes to the list are not written back to the file.`,
		Example:       "  lm\n  lm --input numbers.txt --capacity 50\n  lm search 42",
		Args:          cobra.NoArgs,
		Annotations:   map[string]string{interactiveAnnotation: "true"},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.inputPath, "input", "i", "", "input file of whitespace-separated integers (default from config, then "+config.DefaultInputPath+")")
	flags.IntVarP(&opts.capacity, "capacity", "c", 0, "maximum number of elements the list may hold (default from config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", logLevelCompletionFunc)

	rootCmd.AddCommand(newShellCmd(opts))
	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newSizeCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// resolve merges the config file with flags and sets up logging.
func (o *options) resolve(cmd *cobra.Command) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath = o.inputPath
	}
	if flags.Changed("capacity") {
		cfg.Capacity = o.capacity
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.cfg = cfg

	level, _ := logger.ParseLevel(cfg.LogLevel)
	logger.InitLogger(cmd.Annotations[interactiveAnnotation] == "true", level)
	logger.Debug("Configuration resolved.", "command", cmd.CommandPath(), "input", cfg.InputPath, "capacity", cfg.Capacity)
	return nil
}

// resolveLogging sets up logging for the config commands. The stored settings
// may be invalid here; those commands exist to repair them.
func (o *options) resolveLogging(cmd *cobra.Command) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	name := ""
	if cfg, err := config.ReadConfig(); err == nil {
		name = cfg.LogLevel
	}
	if cmd.Flags().Changed("log-level") {
		name = o.logLevel
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		level = slog.LevelInfo
	}
	logger.InitLogger(false, level)
	return nil
}

// RunCLI executes the root command and exits non-zero on failure.
func RunCLI() {
	err := NewRootCmd().Execute()
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
