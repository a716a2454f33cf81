/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

type listKind int

const (
	listEnumMembers listKind = iota
	listHeritageClause
	listTupleElements
	listTypeMembers
	listTypeParamsOrArgs
)

func (p *Parser) isListTerminator(kind listKind) bool {
	switch kind {
	case listEnumMembers, listTypeMembers:
		return p.is(scanner.TOK_BRACE_R)
	case listHeritageClause:
		return p.is(scanner.TOK_BRACE_L) || p.isWord("implements") || p.isWord("extends")
	case listTupleElements:
		return p.is(scanner.TOK_BRACKET_R)
	case listTypeParamsOrArgs:
		return p.is(scanner.TOK_GREATER)
	}
	return false
}

// parseList parses elements until the list's terminator, which is left
// unconsumed.
func parseList[T any](p *Parser, kind listKind, element func() T) []T {
	var elements []T
	for !p.isListTerminator(kind) {
		elements = append(elements, element())
	}
	return elements
}

// eatListComma consumes a separator, or one inserted by enum member
// recovery.
func (p *Parser) eatListComma() bool {
	if p.state.commaInserted {
		p.state.commaInserted = false
		return true
	}
	return p.eat(scanner.TOK_COMMA)
}

// parseDelimitedList parses comma separated elements up to the list's
// terminator, which is left unconsumed. A trailing comma is accepted.
func parseDelimitedList[T any](p *Parser, kind listKind, element func() T) []T {
	var elements []T
	for {
		if p.isListTerminator(kind) {
			break
		}

		elements = append(elements, element())

		if p.eatListComma() {
			continue
		}

		if p.isListTerminator(kind) {
			break
		}

		if kind == listEnumMembers {
			p.emit(p.cur().Location, codeExpected, "',' expected, found "+describe(p.cur()))
			continue
		}

		p.expect(scanner.TOK_COMMA)
	}
	return elements
}

// parseBracketedList parses a delimited list between open and close. With
// skipFirst the opening token is known to be current.
func parseBracketedList[T any](p *Parser, kind listKind, open, close scanner.TokenType, skipFirst bool, element func() T) []T {
	if skipFirst {
		p.next()
	} else {
		p.expect(open)
	}

	elements := parseDelimitedList(p, kind, element)
	p.expect(close)
	return elements
}
