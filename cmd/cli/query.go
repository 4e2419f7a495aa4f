// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"list-manager/internal/intlist"
	"list-manager/internal/shell"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the list as loaded from the input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadList(cmd, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), list.Render())
			return nil
		},
	}
}

func newSizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Print the number of elements loaded and the capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadList(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Length:   %s\n", identifierColor.Sprint(list.Len()))
			fmt.Fprintf(out, "Capacity: %s\n", identifierColor.Sprint(list.Cap()))
			return nil
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "search <value>",
		Short:   "Print the lowest index holding value",
		Example: "  lm search 42\n  lm search -- -7",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := intlist.ParseValue(args[0])
			if err != nil {
				return fmt.Errorf("value must be an integer: %w", err)
			}
			list, err := loadList(cmd, opts)
			if err != nil {
				return err
			}
			outcome := shell.Apply(list, shell.ChoiceSearch, []int{value})
			for _, line := range outcome.Lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
