/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

// Context is the set of grammar flags in effect at the cursor.
type Context uint16

const (
	ctxInType Context = 1 << iota
	// ctxDisallowConditionalTypes is set while parsing the extends clause
	// of a conditional type, where a nested conditional must be
	// parenthesized.
	ctxDisallowConditionalTypes
	ctxInDeclare
	// ctxTopLevel permits import and export statements.
	ctxTopLevel
	// ctxInClass permits private names as member keys.
	ctxInClass
)

func (p *Parser) has(c Context) bool {
	return p.state.ctx&c != 0
}

// withContext runs body with the flags in set added and those in clear
// removed. The previous flags are restored however body exits.
func withContext[T any](p *Parser, set, clear Context, body func() T) T {
	saved := p.state.ctx
	defer func() {
		p.state.ctx = saved
	}()
	p.state.ctx = (saved | set) &^ clear
	return body()
}

func inType[T any](p *Parser, body func() T) T {
	return withContext(p, ctxInType, 0, body)
}

// enter increments the recursion depth, failing once the configured
// maximum is exceeded. Callers defer the returned function.
func (p *Parser) enter() func() {
	p.state.depth++
	if p.state.depth > p.maxDepth {
		p.fail(p.cur().Location, "", errNestingTooDeep)
	}
	return p.leave
}

func (p *Parser) leave() {
	p.state.depth--
}
