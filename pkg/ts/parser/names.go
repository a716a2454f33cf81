/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

// reserved words cannot be used as identifier references or bindings,
// though they remain valid property names.
var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
}

func isIdentName(tok parse.Token) bool {
	return scanner.Is(tok, scanner.TOK_IDENTIFIER)
}

func isIdentRef(tok parse.Token) bool {
	return isIdentName(tok) && !reserved[tok.Lexeme]
}

func (p *Parser) isIdentName() bool {
	return isIdentName(p.cur())
}

func (p *Parser) isIdentRef() bool {
	return isIdentRef(p.cur())
}

func (p *Parser) peekIsIdentRef() bool {
	return isIdentRef(p.peek())
}

func identFrom(tok parse.Token) *ast.Ident {
	return &ast.Ident{BaseNode: ast.BaseNode{Loc: tok.Location}, Name: tok.Lexeme}
}

// parseIdentName accepts any word, reserved or not.
func (p *Parser) parseIdentName() *ast.Ident {
	if !p.isIdentName() {
		p.unexpected("an identifier")
	}
	return identFrom(p.next())
}

// parseIdent accepts a word usable as a reference or binding.
func (p *Parser) parseIdent() *ast.Ident {
	if !p.isIdentName() {
		p.unexpected("an identifier")
	}
	tok := p.cur()
	if reserved[tok.Lexeme] {
		p.fail(tok.Location, "", "'"+tok.Lexeme+"' is a reserved word and cannot be used here")
	}
	return identFrom(p.next())
}

func (p *Parser) parsePrivateName() *ast.PrivateName {
	tok := p.expect(scanner.TOK_PRIVATE_NAME)
	return &ast.PrivateName{BaseNode: ast.BaseNode{Loc: tok.Location}, Name: tok.Lexeme[1:]}
}
