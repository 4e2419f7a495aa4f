// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"io"

	"list-manager/internal/intlist"
	"list-manager/internal/logger"
	"list-manager/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the full-screen menu over list until the user quits.
func RunTUI(list *intlist.List, in io.Reader, out io.Writer) error {
	m := ui.InitialModel(list)
	p := tea.NewProgram(&m, tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error.", "error", err)
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	logger.Debug("TUI finished.", "length", list.Len())
	return nil
}
