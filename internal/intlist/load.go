// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package intlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Values are limited to the 32-bit signed range, like the integers read by the
// console menu.
const (
	MinValue = math.MinInt32
	MaxValue = math.MaxInt32
)

// Load replaces the contents of the list with integers read from r.
//
// Tokens are separated by any whitespace and read as a stream of numbers, so
// "12-5" yields 12 and then -5. Reading stops when the list is full or at the
// first text that does not start a number in [MinValue, MaxValue]; neither
// case is an error. "12abc" contributes 12 and then stops reading. Load fails
// with a SourceUnavailableError only when r cannot be read before the first
// token.
func (l *List) Load(r io.Reader) (int, error) {
	l.elements = l.elements[:0]

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	consumed := false
scan:
	for len(l.elements) < l.capacity && scanner.Scan() {
		consumed = true
		rest := scanner.Text()
		for rest != "" {
			if len(l.elements) == l.capacity {
				break scan
			}
			value, n, ok := parseLeadingInt(rest)
			if !ok {
				break scan
			}
			l.elements = append(l.elements, value)
			rest = rest[n:]
		}
	}

	if err := scanner.Err(); err != nil && !consumed {
		return 0, &SourceUnavailableError{Err: err}
	}
	return len(l.elements), nil
}

// LoadFile opens path and loads it with Load.
func (l *List) LoadFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		l.elements = l.elements[:0]
		return 0, &SourceUnavailableError{Path: path, Err: err}
	}
	defer file.Close()

	n, err := l.Load(file)
	if err != nil {
		var srcErr *SourceUnavailableError
		if errors.As(err, &srcErr) {
			srcErr.Path = path
		}
		return 0, err
	}
	return n, nil
}

// ParseValue parses a whole token as a list value.
func ParseValue(token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q is out of range %d..%d", token, MinValue, MaxValue)
		}
		return 0, fmt.Errorf("%q is not an integer", token)
	}
	return int(v), nil
}

// parseLeadingInt parses an optional sign followed by decimal digits at the
// start of s and reports how many bytes it used.
func parseLeadingInt(s string) (value, n int, ok bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, 0, false
	}

	value, err := ParseValue(s[:end])
	if err != nil {
		return 0, 0, false
	}
	return value, end, true
}
