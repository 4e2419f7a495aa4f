// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"list-manager/internal/intlist"
	"list-manager/internal/logger"
)

// Choice is one of the numbered menu actions.
type Choice int

const (
	ChoiceDisplay Choice = iota + 1
	ChoiceSearch
	ChoiceModify
	ChoiceAdd
	ChoiceRemove
	ChoiceExit
)

// Choices lists the menu actions in display order.
func Choices() []Choice {
	return []Choice{ChoiceDisplay, ChoiceSearch, ChoiceModify, ChoiceAdd, ChoiceRemove, ChoiceExit}
}

// ParseChoice converts user input into a Choice.
func ParseChoice(s string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Choice(n).Valid() {
		return 0, fmt.Errorf("invalid choice %q", s)
	}
	return Choice(n), nil
}

func (c Choice) Valid() bool {
	return c >= ChoiceDisplay && c <= ChoiceExit
}

// Label is the menu text for c.
func (c Choice) Label() string {
	switch c {
	case ChoiceDisplay:
		return "Display List"
	case ChoiceSearch:
		return "Search for an Element"
	case ChoiceModify:
		return "Modify an Element"
	case ChoiceAdd:
		return "Add an Element"
	case ChoiceRemove:
		return "Remove an Element"
	case ChoiceExit:
		return "Exit"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// Prompts returns one prompt per integer argument c needs, in order.
func (c Choice) Prompts() []string {
	switch c {
	case ChoiceSearch:
		return []string{"Enter the value to search for"}
	case ChoiceModify:
		return []string{"Enter the index of element to modify", "Enter the new value"}
	case ChoiceAdd:
		return []string{"Enter the value to add"}
	case ChoiceRemove:
		return []string{"Enter the index of element to remove"}
	default:
		return nil
	}
}

// Outcome is the user-facing result of applying a Choice.
type Outcome struct {
	Lines  []string
	Failed bool
	Exit   bool
}

func failed(format string, a ...any) Outcome {
	return Outcome{Lines: []string{fmt.Sprintf(format, a...)}, Failed: true}
}

// Apply runs choice against list with the arguments gathered from its prompts.
// Index and capacity failures are translated into messages; the list is left
// unchanged when the outcome is Failed.
func Apply(list *intlist.List, choice Choice, args []int) Outcome {
	if want := len(choice.Prompts()); len(args) != want {
		return failed("Internal error: %s expects %d argument(s), got %d", choice.Label(), want, len(args))
	}

	switch choice {
	case ChoiceDisplay:
		return Outcome{Lines: []string{"Current " + list.Render()}}

	case ChoiceSearch:
		value := args[0]
		idx := list.Search(value)
		logger.Debug("Searched list.", "value", value, "index", idx)
		if idx == intlist.NotFound {
			return Outcome{Lines: []string{fmt.Sprintf("Element %d not found in the list.", value)}}
		}
		return Outcome{Lines: []string{fmt.Sprintf("Element %d found at index %d", value, idx)}}

	case ChoiceModify:
		index, value := args[0], args[1]
		oldValue, newValue, err := list.Modify(index, value)
		if err != nil {
			logger.Debug("Modify rejected.", "index", index, "error", err)
			return exceptionOutcome(err)
		}
		logger.Debug("Modified element.", "index", index, "old", oldValue, "new", newValue)
		return Outcome{Lines: []string{
			fmt.Sprintf("Element at index %d modified successfully.", index),
			fmt.Sprintf("Old value: %d, New value: %d", oldValue, newValue),
		}}

	case ChoiceAdd:
		value := args[0]
		idx, err := list.Append(value)
		if err != nil {
			logger.Debug("Append rejected.", "value", value, "error", err)
			return exceptionOutcome(err)
		}
		logger.Debug("Appended element.", "value", value, "index", idx)
		return Outcome{Lines: []string{fmt.Sprintf("Element %d added successfully at index %d", value, idx)}}

	case ChoiceRemove:
		index := args[0]
		removed, err := list.Remove(index)
		if err != nil {
			// Reported and swallowed here rather than surfaced as an exception.
			logger.Debug("Remove rejected.", "index", index, "error", err)
			var idxErr *intlist.InvalidIndexError
			if errors.As(err, &idxErr) {
				if idxErr.Length == 0 {
					return failed("Error: Invalid index. The list is empty.")
				}
				_, hi := idxErr.Range()
				return failed("Error: Invalid index. Index should be between 0 and %d", hi)
			}
			return failed("Error: %v", err)
		}
		logger.Debug("Removed element.", "index", index, "value", removed)
		return Outcome{Lines: []string{fmt.Sprintf("Element %d removed successfully from index %d", removed, index)}}

	case ChoiceExit:
		return Outcome{Lines: []string{"Thank you for using the List Operations program!"}, Exit: true}

	default:
		return failed("Invalid choice. Please enter a number between 1 and %d.", len(Choices()))
	}
}

// exceptionOutcome renders the failure of a modify or append.
func exceptionOutcome(err error) Outcome {
	var idxErr *intlist.InvalidIndexError
	var capErr *intlist.CapacityExceededError
	switch {
	case errors.As(err, &idxErr):
		if idxErr.Length == 0 {
			return failed("Exception caught: Invalid index: %d. The list is empty", idxErr.Index)
		}
		_, hi := idxErr.Range()
		return failed("Exception caught: Invalid index: %d. Index should be between 0 and %d", idxErr.Index, hi)
	case errors.As(err, &capErr):
		return failed("Exception caught: List is full with %d elements. Cannot add more elements.", capErr.Capacity)
	default:
		return failed("Unexpected exception caught: %v", err)
	}
}
