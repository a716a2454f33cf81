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

var paramModifiers = []string{"public", "protected", "private", "readonly", "override"}

// annotate attaches an optional marker and type annotation to a binding
// and widens its span to loc.
func annotate(pat ast.Pattern, loc parse.Location, optional bool, typeAnn *ast.TypeAnnotation) {
	switch pat := pat.(type) {
	case *ast.BindingIdent:
		pat.Optional = optional
		pat.TypeAnn = typeAnn
		pat.Loc = loc
	case *ast.ArrayPattern:
		pat.Optional = optional
		pat.TypeAnn = typeAnn
		pat.Loc = loc
	case *ast.ObjectPattern:
		pat.Optional = optional
		pat.TypeAnn = typeAnn
		pat.Loc = loc
	case *ast.RestPattern:
		pat.TypeAnn = typeAnn
		pat.Loc = loc
	}
}

// parseFormalParams parses a parameter list up to, but not including, the
// closing ')'. Parameter properties are only permitted in constructors.
func (p *Parser) parseFormalParams(allowParamProps bool) []ast.Pattern {
	var params []ast.Pattern
	for !p.is(scanner.TOK_PAREN_R) {
		params = append(params, p.parseFormalParam(allowParamProps))
		if !p.is(scanner.TOK_PAREN_R) {
			p.expect(scanner.TOK_COMMA)
		}
	}
	return params
}

func (p *Parser) parseFormalParam(allowParamProps bool) ast.Pattern {
	start := p.pos()

	prop := &ast.ParamProp{}
	for {
		modifier := p.parseModifier(paramModifiers...)
		if modifier == "" {
			break
		}
		switch modifier {
		case "readonly":
			prop.Readonly = true
		case "override":
			prop.Override = true
		default:
			prop.Accessibility = modifier
		}
	}
	hasModifier := prop.Accessibility != "" || prop.Readonly || prop.Override

	var param ast.Pattern
	if p.is(scanner.TOK_ELLIPSIS) {
		param = p.parseRestElement()
		if typeAnn := p.tryParseTypeAnn(); typeAnn != nil {
			annotate(param, p.span(start), false, typeAnn)
		}
	} else {
		param = p.parseParam()
	}

	if !hasModifier {
		return param
	}
	if !allowParamProps {
		p.emit(p.span(start), codeModifierOnTypeRef, "A parameter property is only allowed in a constructor implementation.")
		return param
	}

	prop.Param = param
	prop.Loc = p.span(start)
	return prop
}

// parseParam parses a binding with its optional marker, annotation and
// default value.
func (p *Parser) parseParam() ast.Pattern {
	start := p.pos()
	pat := p.parseBindingPatOrIdent()

	optional := p.eat(scanner.TOK_QUESTION)
	typeAnn := p.tryParseTypeAnn()
	if optional || typeAnn != nil {
		annotate(pat, p.span(start), optional, typeAnn)
	}

	if !p.eat(scanner.TOK_EQ) {
		return pat
	}
	right := p.parseAssignExpr()
	return &ast.AssignPattern{BaseNode: ast.BaseNode{Loc: p.span(start)}, Left: pat, Right: right}
}

// parseBindingListForSignature parses the parameters of a signature
// without a body, after the opening '('. Default values are rejected.
func (p *Parser) parseBindingListForSignature() []ast.Pattern {
	params := p.parseFormalParams(false)
	for _, param := range params {
		switch param.(type) {
		case *ast.BindingIdent, *ast.ArrayPattern, *ast.ObjectPattern, *ast.RestPattern:
		default:
			p.fail(param.Span(), "", "expected an identifier, [ for an array pattern, { for an object pattern or ... for a rest pattern")
		}
	}
	p.expect(scanner.TOK_PAREN_R)
	return params
}

func (p *Parser) parseBindingPatOrIdent() ast.Pattern {
	defer p.enter()()

	switch {
	case p.is(scanner.TOK_BRACKET_L):
		return p.parseArrayPattern()
	case p.is(scanner.TOK_BRACE_L):
		return p.parseObjectPattern()
	case p.isWord("this"):
		id := identFrom(p.next())
		return &ast.BindingIdent{BaseNode: ast.BaseNode{Loc: id.Loc}, ID: id}
	}

	id := p.parseIdent()
	return &ast.BindingIdent{BaseNode: ast.BaseNode{Loc: id.Loc}, ID: id}
}

// parseBindingElement parses a nested binding with an optional default.
func (p *Parser) parseBindingElement() ast.Pattern {
	start := p.pos()
	pat := p.parseBindingPatOrIdent()
	if !p.eat(scanner.TOK_EQ) {
		return pat
	}
	right := p.parseAssignExpr()
	return &ast.AssignPattern{BaseNode: ast.BaseNode{Loc: p.span(start)}, Left: pat, Right: right}
}

func (p *Parser) parseRestElement() *ast.RestPattern {
	start := p.pos()
	p.expect(scanner.TOK_ELLIPSIS)
	arg := p.parseBindingPatOrIdent()
	return &ast.RestPattern{BaseNode: ast.BaseNode{Loc: p.span(start)}, Arg: arg}
}

func (p *Parser) parseArrayPattern() *ast.ArrayPattern {
	start := p.pos()
	p.expect(scanner.TOK_BRACKET_L)

	var elems []ast.Pattern
	for !p.is(scanner.TOK_BRACKET_R) {
		if p.eat(scanner.TOK_COMMA) {
			elems = append(elems, nil)
			continue
		}

		if p.is(scanner.TOK_ELLIPSIS) {
			elems = append(elems, p.parseRestElement())
		} else {
			elems = append(elems, p.parseBindingElement())
		}

		if !p.is(scanner.TOK_BRACKET_R) {
			p.expect(scanner.TOK_COMMA)
		}
	}
	p.expect(scanner.TOK_BRACKET_R)

	return &ast.ArrayPattern{BaseNode: ast.BaseNode{Loc: p.span(start)}, Elems: elems}
}

func (p *Parser) parseObjectPattern() *ast.ObjectPattern {
	start := p.pos()
	p.expect(scanner.TOK_BRACE_L)

	var props []ast.ObjectPatProp
	for !p.is(scanner.TOK_BRACE_R) {
		props = append(props, p.parseObjectPatProp())
		if !p.is(scanner.TOK_BRACE_R) {
			p.expect(scanner.TOK_COMMA)
		}
	}
	p.expect(scanner.TOK_BRACE_R)

	return &ast.ObjectPattern{BaseNode: ast.BaseNode{Loc: p.span(start)}, Props: props}
}

func (p *Parser) parseObjectPatProp() ast.ObjectPatProp {
	if p.is(scanner.TOK_ELLIPSIS) {
		return p.parseRestElement()
	}

	start := p.pos()
	key, computed := p.parseObjectKey()
	if p.eat(scanner.TOK_COLON) {
		value := p.parseBindingElement()
		return &ast.KeyValuePatProp{BaseNode: ast.BaseNode{Loc: p.span(start)}, Key: key, Computed: computed, Val: value}
	}

	id, ok := key.(*ast.Ident)
	if !ok || computed || reserved[id.Name] {
		p.unexpected("':'")
	}

	var value ast.Expr
	if p.eat(scanner.TOK_EQ) {
		value = p.parseAssignExpr()
	}
	return &ast.AssignPatProp{BaseNode: ast.BaseNode{Loc: p.span(start)}, Key: id, Default: value}
}
