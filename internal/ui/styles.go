// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	listContentStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("238")).
				Padding(0, 1)

	footerKeyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	footerDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
