// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package intlist implements a fixed-capacity, insertion-ordered list of
// integers. The list is owned by a single caller and is not safe for
// concurrent use.
package intlist

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DefaultCapacity is the capacity used when none is configured.
const DefaultCapacity = 1000

// NotFound is returned by Search when the value is absent.
const NotFound = -1

// List is a bounded sequence of integers. The zero value is not usable; call New.
type List struct {
	capacity int
	elements []int
}

// New returns an empty list that holds at most capacity elements.
func New(capacity int) (*List, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d", capacity)
	}
	return &List{capacity: capacity}, nil
}

// Len returns the number of elements held.
func (l *List) Len() int {
	return len(l.elements)
}

// Cap returns the fixed capacity.
func (l *List) Cap() int {
	return l.capacity
}

// Values returns a copy of the elements in order.
func (l *List) Values() []int {
	return slices.Clone(l.elements)
}

// Search returns the lowest index holding value, or NotFound.
func (l *List) Search(value int) int {
	return slices.Index(l.elements, value)
}

// Modify overwrites the element at index and returns the previous and new values.
func (l *List) Modify(index, value int) (oldValue, newValue int, err error) {
	if err := l.checkIndex(index); err != nil {
		return 0, 0, err
	}
	oldValue = l.elements[index]
	l.elements[index] = value
	return oldValue, value, nil
}

// Append adds value at the end and returns its index.
func (l *List) Append(value int) (int, error) {
	if len(l.elements) >= l.capacity {
		return 0, &CapacityExceededError{Capacity: l.capacity}
	}
	l.elements = append(l.elements, value)
	return len(l.elements) - 1, nil
}

// Remove deletes the element at index, shifting later elements down by one,
// and returns the removed value. The list is untouched on error.
func (l *List) Remove(index int) (int, error) {
	if err := l.checkIndex(index); err != nil {
		return 0, err
	}
	removed := l.elements[index]
	l.elements = slices.Delete(l.elements, index, index+1)
	return removed, nil
}

// Render returns a one-line, human-readable summary of the list.
func (l *List) Render() string {
	if len(l.elements) == 0 {
		return "List is empty."
	}

	noun := "elements"
	if len(l.elements) == 1 {
		noun = "element"
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "List contents (%d %s): ", len(l.elements), noun)
	for i, v := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (l *List) String() string {
	return l.Render()
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.elements) {
		return &InvalidIndexError{Index: index, Length: len(l.elements)}
	}
	return nil
}
