/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

type tokenContextKind int

const (
	tokenContextExpr tokenContextKind = iota
	// tokenContextType reads '>' one character at a time, so the ">>" in
	// "A<B<C>>" closes two argument lists.
	tokenContextType
)

// tokenContext is an immutable stack frame; pushing allocates a new head
// and snapshots keep their own pointer.
type tokenContext struct {
	kind   tokenContextKind
	parent *tokenContext
}

func withTokenContext[T any](p *Parser, kind tokenContextKind, body func() T) T {
	saved := p.state.tokCtx
	defer func() {
		p.state.tokCtx = saved
	}()
	p.state.tokCtx = &tokenContext{kind: kind, parent: saved}
	return body()
}

func (p *Parser) inTypeTokens() bool {
	return p.state.tokCtx != nil && p.state.tokCtx.kind == tokenContextType
}

// remainder returns the unconsumed tail of a compound punctuator.
func remainder(tok parse.Token, consumed int) parse.Token {
	lexeme := tok.Lexeme[consumed:]
	return parse.Token{
		Type:     scanner.Punctuator(lexeme),
		Lexeme:   lexeme,
		Location: parse.Location{Start: tok.Location.Start + consumed, End: tok.Location.End},
	}
}

// leading returns the first n bytes of a compound punctuator.
func leading(tok parse.Token, n int) parse.Token {
	lexeme := tok.Lexeme[:n]
	return parse.Token{
		Type:          scanner.Punctuator(lexeme),
		Lexeme:        lexeme,
		Location:      parse.Location{Start: tok.Location.Start, End: tok.Location.Start + n},
		NewlineBefore: tok.NewlineBefore,
	}
}

// cur returns the current token as seen from the active token context.
func (p *Parser) cur() parse.Token {
	tok := p.tokens[p.state.pos]
	if p.state.split > 0 {
		tok = remainder(tok, p.state.split)
	}
	if p.inTypeTokens() && len(tok.Lexeme) > 1 && tok.Lexeme[0] == '>' && scanner.TypeOf(tok) != scanner.TOK_INVALID {
		tok = leading(tok, 1)
	}
	return tok
}

// consume advances past tok, the current token or a leading part of it.
func (p *Parser) consume(tok parse.Token) {
	raw := p.tokens[p.state.pos]
	consumed := tok.Location.End - raw.Location.Start
	if consumed >= len(raw.Lexeme) {
		p.state.pos++
		p.state.split = 0
	} else {
		p.state.split = consumed
	}
	p.state.prevEnd = tok.Location.End
}

// next consumes and returns the current token. The cursor never moves past
// TOK_EOF.
func (p *Parser) next() parse.Token {
	tok := p.cur()
	if scanner.Is(tok, scanner.TOK_EOF) {
		return tok
	}
	p.consume(tok)
	return tok
}

// nextChar consumes only the first character of the current token, used
// to read "<<" as two '<'.
func (p *Parser) nextChar() parse.Token {
	tok := leading(p.cur(), 1)
	p.consume(tok)
	return tok
}

// peek returns the token after the current one.
func (p *Parser) peek() parse.Token {
	saved := p.state
	p.next()
	tok := p.cur()
	p.state = saved
	return tok
}

func (p *Parser) is(t scanner.TokenType) bool {
	return scanner.Is(p.cur(), t)
}

func (p *Parser) isOneOf(types ...scanner.TokenType) bool {
	typ := scanner.TypeOf(p.cur())
	for _, t := range types {
		if typ == t {
			return true
		}
	}
	return false
}

// isWord reports whether the current token is the identifier-like word w.
func (p *Parser) isWord(w string) bool {
	tok := p.cur()
	return scanner.Is(tok, scanner.TOK_IDENTIFIER) && tok.Lexeme == w
}

func (p *Parser) peekIs(t scanner.TokenType) bool {
	return scanner.Is(p.peek(), t)
}

func (p *Parser) peekIsWord(w string) bool {
	tok := p.peek()
	return scanner.Is(tok, scanner.TOK_IDENTIFIER) && tok.Lexeme == w
}

func (p *Parser) eat(t scanner.TokenType) bool {
	if p.is(t) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) eatWord(w string) bool {
	if p.isWord(w) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(t scanner.TokenType) parse.Token {
	if !p.is(t) {
		p.unexpected("'" + t.Text() + "'")
	}
	return p.next()
}

func (p *Parser) expectWord(w string) parse.Token {
	if !p.isWord(w) {
		p.unexpected("'" + w + "'")
	}
	return p.next()
}

// newlineBefore reports a line terminator between the previous token and
// the current one.
func (p *Parser) newlineBefore() bool {
	return p.cur().NewlineBefore
}

func (p *Parser) pos() int {
	return p.cur().Location.Start
}

// span returns the location from start to the end of the last consumed
// token.
func (p *Parser) span(start int) parse.Location {
	end := p.state.prevEnd
	if end < start {
		end = start
	}
	return parse.Location{Start: start, End: end}
}

// canInsertSemicolon implements automatic semicolon insertion.
func (p *Parser) canInsertSemicolon() bool {
	return p.isOneOf(scanner.TOK_SEMICOLON, scanner.TOK_BRACE_R, scanner.TOK_EOF) || p.newlineBefore()
}

// semicolon consumes a statement terminator, or accepts an inserted one.
func (p *Parser) semicolon() {
	if p.eat(scanner.TOK_SEMICOLON) {
		return
	}
	if !p.canInsertSemicolon() {
		p.unexpected("';'")
	}
}
