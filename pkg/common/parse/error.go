/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type SyntaxError struct {
	Location Location
	// Code is the TypeScript diagnostic code ("TS1005"), or empty for
	// errors that have no upstream equivalent.
	Code    string
	Message string
}

func NewSyntaxError(t Token, m string) SyntaxError {
	return SyntaxError{Location: t.Location, Message: m}
}

func NewCodedError(loc Location, code string, m string) SyntaxError {
	return SyntaxError{Location: loc, Code: code, Message: m}
}

func (s *SyntaxError) Error() string {
	if s.Code != "" {
		return fmt.Sprintf("%d:%d: %s: %s", s.Location.Start, s.Location.End, s.Code, s.Message)
	}
	return fmt.Sprintf("%d:%d: %s", s.Location.Start, s.Location.End, s.Message)
}

// LineColumn returns the 1-based line and column of offset within input.
func LineColumn(input string, offset int) (int, int) {
	if offset > len(input) {
		offset = len(input)
	}
	line := 1 + strings.Count(input[:offset], "\n")
	col := offset - strings.LastIndexByte(input[:offset], '\n')
	return line, col
}

// FormatError renders the offending source line with the error location
// underlined.
func (s *SyntaxError) FormatError(input string) string {
	start := s.Location.Start
	if start > len(input) {
		start = len(input)
	}
	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += start
	}

	repeat := s.Location.End - s.Location.Start - 1
	if s.Location.Start+repeat >= lineEnd {
		repeat = lineEnd - s.Location.Start - 1
	}
	if repeat < 0 {
		repeat = 0
	}

	line, col := LineColumn(input, start)
	message := s.Message
	if s.Code != "" {
		message = s.Code + ": " + message
	}

	errorString := fmt.Sprintf("Syntax error found at %d:%d:\n", line, col)
	errorString += input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", start-lineStart), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", message)
	return errorString
}
