// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the full-screen menu for the list manager.
//
// Every list operation runs synchronously inside Update, so the list is only
// ever touched from the Bubble Tea event loop.
package ui

import (
	"list-manager/internal/intlist"
	"list-manager/internal/shell"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	list   *intlist.List
	keymap KeyMap

	currentState state
	cursor       int // Index into shell.Choices()
	width        int
	height       int

	// Argument form for the selected action
	choice         shell.Choice
	formInputs     []textinput.Model
	formFocusIndex int
	formError      error

	// Result of the last action, nil until one has run
	lastOutcome *shell.Outcome
}

// InitialModel returns a model showing the menu for list.
func InitialModel(list *intlist.List) model {
	return model{
		list:         list,
		keymap:       DefaultKeyMap,
		currentState: stateMenu,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.currentState {
		case stateMenu:
			return m, m.handleMenuKeys(msg)
		case stateArgumentForm:
			return m, m.handleFormKeys(msg)
		}
	}
	return m, nil
}

func (m *model) View() string {
	switch m.currentState {
	case stateArgumentForm:
		return m.renderFormView()
	case stateQuitting:
		return m.renderQuittingView()
	default:
		return m.renderMenuView()
	}
}
