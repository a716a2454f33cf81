/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

func (p *Parser) parseTupleType() *ast.TupleType {
	start := p.pos()
	elements := parseBracketedList(p, listTupleElements, scanner.TOK_BRACKET_L, scanner.TOK_BRACKET_R, false, p.parseTupleElement)

	// Rest elements may appear anywhere; only a required element after an
	// optional one is rejected.
	seenOptional := false
	for _, element := range elements {
		switch {
		case element.IsRest():
		case element.IsOptional():
			seenOptional = true
		case seenOptional:
			p.fail(p.span(start), "", errRequiredAfterOptional)
		}
	}

	return &ast.TupleType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Elements: elements}
}

// tryParseTupleElementName parses a "name:", "name?:" or "...name:" label.
func (p *Parser) tryParseTupleElementName() ast.Pattern {
	label, _ := tryParse(p, func() (ast.Pattern, bool) {
		start := p.pos()
		rest := p.eat(scanner.TOK_ELLIPSIS)

		identStart := p.pos()
		id := p.parseIdentName()
		binding := &ast.BindingIdent{ID: id}
		binding.Optional = p.eat(scanner.TOK_QUESTION)
		binding.Loc = p.span(identStart)
		p.expect(scanner.TOK_COLON)

		if rest {
			return &ast.RestPattern{BaseNode: ast.BaseNode{Loc: p.span(start)}, Arg: binding}, true
		}
		return binding, true
	})
	return label
}

func (p *Parser) parseTupleElement() *ast.TupleElement {
	start := p.pos()
	label := p.tryParseTupleElementName()

	if p.eat(scanner.TOK_ELLIPSIS) {
		t := p.parseType()
		return &ast.TupleElement{
			BaseNode: ast.BaseNode{Loc: p.span(start)},
			Label:    label,
			Type:     &ast.RestType{BaseNode: ast.BaseNode{Loc: p.span(start)}, TypeAnn: t},
		}
	}

	t := p.parseType()
	if p.eat(scanner.TOK_QUESTION) {
		t = &ast.OptionalType{BaseNode: ast.BaseNode{Loc: p.span(start)}, TypeAnn: t}
	}

	return &ast.TupleElement{BaseNode: ast.BaseNode{Loc: p.span(start)}, Label: label, Type: t}
}
