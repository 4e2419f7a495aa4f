// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"list-manager/internal/logger"
	"list-manager/internal/shell"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses for specific UI states.

func (m *model) handleMenuKeys(msg tea.KeyMsg) tea.Cmd {
	choices := shell.Choices()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.currentState = stateQuitting
		return tea.Quit
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0
	case key.Matches(msg, m.keymap.End):
		m.cursor = len(choices) - 1
	case key.Matches(msg, m.keymap.Choose):
		choice, err := shell.ParseChoice(msg.String())
		if err != nil {
			return nil
		}
		m.cursor = int(choice) - 1
		return m.selectChoice(choice)
	case key.Matches(msg, m.keymap.Enter):
		return m.selectChoice(choices[m.cursor])
	}
	return nil
}

// selectChoice runs choices without arguments at once and opens the form for the rest.
func (m *model) selectChoice(choice shell.Choice) tea.Cmd {
	if len(choice.Prompts()) == 0 {
		return m.apply(choice, nil)
	}

	m.choice = choice
	m.formInputs = createArgumentForm(choice)
	m.formFocusIndex = 0
	m.formError = nil
	m.currentState = stateArgumentForm
	return nil
}

func (m *model) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.currentState = stateQuitting
		return tea.Quit
	case key.Matches(msg, m.keymap.Esc):
		m.closeForm()
		return nil
	case key.Matches(msg, m.keymap.Tab):
		m.focusInput((m.formFocusIndex + 1) % len(m.formInputs))
		m.formError = nil
		return nil
	case key.Matches(msg, m.keymap.ShiftTab):
		m.focusInput((m.formFocusIndex - 1 + len(m.formInputs)) % len(m.formInputs))
		m.formError = nil
		return nil
	case key.Matches(msg, m.keymap.Enter):
		if m.formFocusIndex < len(m.formInputs)-1 {
			m.focusInput(m.formFocusIndex + 1)
			return nil
		}
		args, err := m.argumentsFromForm()
		if err != nil {
			m.formError = err
			return nil
		}
		choice := m.choice
		m.closeForm()
		return m.apply(choice, args)
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocusIndex], cmd = m.formInputs[m.formFocusIndex].Update(msg)
	return cmd
}

func (m *model) closeForm() {
	m.formInputs = nil
	m.formFocusIndex = 0
	m.formError = nil
	m.choice = 0
	m.currentState = stateMenu
}

// apply runs choice against the list and records the outcome for display.
func (m *model) apply(choice shell.Choice, args []int) tea.Cmd {
	outcome := shell.Apply(m.list, choice, args)
	m.lastOutcome = &outcome
	logger.Debug("TUI action applied.", "choice", choice.Label(), "failed", outcome.Failed)

	if outcome.Exit {
		m.currentState = stateQuitting
		return tea.Quit
	}
	m.currentState = stateMenu
	return nil
}
