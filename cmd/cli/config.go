// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"list-manager/internal/config"
	"list-manager/internal/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var logLevels = []string{"debug", "info", "warn", "error"}

func logLevelCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var suggestions []string
	for _, level := range logLevels {
		if strings.HasPrefix(level, toComplete) {
			suggestions = append(suggestions, level)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// newConfigCmd is the parent command for all configuration-related subcommands.
func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage list-manager configuration",
		Long: `Provides subcommands to inspect and change the settings file:
the input file path, the list capacity and the log level.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolveLogging(cmd)
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the location of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the settings stored in the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfig()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config to YAML: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(data))

			resolved, err := config.ResolvePath(cfg.InputPath)
			if err != nil {
				errorColor.Fprintf(out, "Warning: Could not resolve input path: %v\n", err)
			} else if resolved != cfg.InputPath {
				dimColor.Fprintf(out, "# input_path resolves to %s\n", resolved)
			}
			if err := cfg.Validate(); err != nil {
				errorColor.Fprintf(out, "# invalid: %v\n", err)
			}
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set-input <path>",
		Short: "Set the file the list is loaded from",
		Long: `Sets the input file read at startup. Relative paths are resolved against the
working directory; a leading '~/' is resolved against your home directory.`,
		Example: "  lm config set-input ~/numbers.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(args[0])
			if path == "" {
				return fmt.Errorf("input path must not be empty")
			}
			return updateConfig(cmd, func(cfg *config.Config) {
				cfg.InputPath = path
			}, "Input file set to: %s\n", path)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:     "set-capacity <n>",
		Short:   "Set the maximum number of elements the list may hold",
		Example: "  lm config set-capacity 500",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := strconv.Atoi(args[0])
			if err != nil || capacity <= 0 {
				return fmt.Errorf("capacity must be a positive integer, got %q", args[0])
			}
			return updateConfig(cmd, func(cfg *config.Config) {
				cfg.Capacity = capacity
			}, "Capacity set to: %d\n", capacity)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:       "set-log-level <level>",
		Short:     "Set the log level (debug, info, warn, error)",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: logLevels,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := args[0]
			return updateConfig(cmd, func(cfg *config.Config) {
				cfg.LogLevel = level
			}, "Log level set to: %s\n", level)
		},
	})

	return configCmd
}

// updateConfig applies change to the stored settings (not flag overrides) and
// saves them. Only the result has to be valid.
func updateConfig(cmd *cobra.Command, change func(*config.Config), format string, a ...any) error {
	cfg, err := config.ReadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	change(&cfg)

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}
	logger.Info("Configuration updated.", "command", cmd.Name())
	successColor.Fprintf(cmd.OutOrStdout(), format, a...)
	return nil
}
