// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateMenu state = iota
	stateArgumentForm
	stateQuitting
)

const (
	inputCharLimit = 20 // Enough for any 64-bit integer with sign.
	inputWidth     = 24
)
