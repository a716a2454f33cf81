/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

type TokenType interface {
	ToString() string
}

// Location is a half-open byte range [Start, End) into the source text.
type Location struct {
	Start int
	End   int
}

// Contains reports whether other lies entirely within l.
func (l Location) Contains(other Location) bool {
	return l.Start <= other.Start && other.End <= l.End
}

// Join returns the smallest location covering both l and other.
func (l Location) Join(other Location) Location {
	out := l
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
	// NewlineBefore is set when a line terminator appears between the
	// previous token and this one.
	NewlineBefore bool
}
