// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package intlist

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrInvalidIndex      = errors.New("invalid index")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrSourceUnavailable = errors.New("source unavailable")
)

// InvalidIndexError reports an index outside [0, Length-1].
type InvalidIndexError struct {
	Index  int // Index that was attempted
	Length int // Length of the list at the time of the attempt
}

func (e *InvalidIndexError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("invalid index %d: list is empty", e.Index)
	}
	return fmt.Sprintf("invalid index %d: valid range is 0..%d", e.Index, e.Length-1)
}

// Is reports whether target is ErrInvalidIndex.
func (e *InvalidIndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}

// Range returns the inclusive bounds of valid indices. hi is -1 for an empty list.
func (e *InvalidIndexError) Range() (lo, hi int) {
	return 0, e.Length - 1
}

// CapacityExceededError reports an append to a full list.
type CapacityExceededError struct {
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("list is full with %d elements", e.Capacity)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// SourceUnavailableError reports an input source that could not be opened or read.
type SourceUnavailableError struct {
	Path string // Empty when loading from a bare reader
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not read source: %v", e.Err)
	}
	return fmt.Sprintf("could not open file %s: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
