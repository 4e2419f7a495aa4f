// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"list-manager/internal/shell"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

func (m *model) renderHeader() string {
	title := titleStyle.Render("List Operations")
	capacity := dimStyle.Render(fmt.Sprintf("  %d/%d used", m.list.Len(), m.list.Cap()))
	return title + capacity
}

// renderListBox draws the current contents, wrapped to the window width when known.
func (m *model) renderListBox() string {
	style := listContentStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(m.list.Render())
}

func (m *model) renderOutcome() string {
	if m.lastOutcome == nil {
		return ""
	}
	render := successStyle.Render
	switch {
	case m.lastOutcome.Failed:
		render = errorStyle.Render
	case m.lastOutcome.Exit:
		render = statusStyle.Render
	}
	lines := make([]string, len(m.lastOutcome.Lines))
	for i, line := range m.lastOutcome.Lines {
		lines[i] = render(line)
	}
	return strings.Join(lines, "\n")
}

func renderHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, footerSeparatorStyle.Render(" | "))
}

// --- State-Specific View Renderers ---

func (m *model) renderMenuView() string {
	b := strings.Builder{}
	for i, c := range shell.Choices() {
		cursor := "  "
		label := fmt.Sprintf("%d. %s", c, c.Label())
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		b.WriteString(cursor + label + "\n")
	}

	sections := []string{m.renderHeader(), m.renderListBox(), b.String()}
	if outcome := m.renderOutcome(); outcome != "" {
		sections = append(sections, outcome+"\n")
	}
	sections = append(sections, renderHelp(m.keymap.Up, m.keymap.Down, m.keymap.Enter, m.keymap.Choose, m.keymap.Quit))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *model) renderFormView() string {
	b := strings.Builder{}
	b.WriteString(statusStyle.Render(m.choice.Label()) + "\n\n")
	for i, input := range m.formInputs {
		fmt.Fprintf(&b, "%s\n%s\n", m.choice.Prompts()[i]+":", input.View())
	}
	if m.formError != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.formError.Error()) + "\n")
	}

	help := []key.Binding{m.keymap.Enter, m.keymap.Esc}
	if len(m.formInputs) > 1 {
		help = append(help, m.keymap.Tab, m.keymap.ShiftTab)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderListBox(), b.String(), renderHelp(help...))
}

func (m *model) renderQuittingView() string {
	if outcome := m.renderOutcome(); outcome != "" && m.lastOutcome.Exit {
		return outcome + "\n"
	}
	return ""
}
