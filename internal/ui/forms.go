// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"list-manager/internal/intlist"
	"list-manager/internal/shell"

	"github.com/charmbracelet/bubbles/textinput"
)

// --- Form Creation ---

// createArgumentForm builds one input per prompt of choice, focusing the first.
func createArgumentForm(choice shell.Choice) []textinput.Model {
	prompts := choice.Prompts()
	inputs := make([]textinput.Model, len(prompts))

	for i, prompt := range prompts {
		t := textinput.New()
		t.Prompt = "> "
		t.Placeholder = prompt
		t.CharLimit = inputCharLimit
		t.Width = inputWidth
		if i == 0 {
			t.Focus()
		}
		inputs[i] = t
	}
	return inputs
}

// --- Form Processing ---

// argumentsFromForm parses every input as a base-10 integer.
func (m *model) argumentsFromForm() ([]int, error) {
	args := make([]int, 0, len(m.formInputs))
	for i, input := range m.formInputs {
		raw := strings.TrimSpace(input.Value())
		if raw == "" {
			return nil, fmt.Errorf("%s: a value is required", m.choice.Prompts()[i])
		}
		v, err := intlist.ParseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.choice.Prompts()[i], err)
		}
		args = append(args, v)
	}
	return args, nil
}

// focusInput moves focus to the input at idx, blurring the rest.
func (m *model) focusInput(idx int) {
	m.formFocusIndex = idx
	for i := range m.formInputs {
		if i == idx {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}
