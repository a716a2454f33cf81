/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"math/big"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

func (p *Parser) parseNonArrayType() ast.Type {
	start := p.pos()
	tok := p.cur()

	switch scanner.TypeOf(tok) {
	case scanner.TOK_IDENTIFIER:
		switch tok.Lexeme {
		case "true", "false":
			return p.parseLiteralType()
		case "import":
			return p.parseImportType()
		case "typeof":
			return p.parseTypeQuery()
		case "this":
			this := p.parseThisType()
			if !p.newlineBefore() && p.isWord("is") {
				return p.parseThisTypePredicate(start, false, this)
			}
			return this
		}

		if p.isWord("asserts") && p.peekIsWord("this") {
			p.next()
			this := p.parseThisType()
			return p.parseThisTypePredicate(start, true, this)
		}

		if kind, ok := ast.LookupKeyword(tok.Lexeme); ok && !p.peekIs(scanner.TOK_DOT) {
			p.next()
			return &ast.KeywordType{BaseNode: ast.BaseNode{Loc: tok.Location}, Kind: kind}
		}

		if !reserved[tok.Lexeme] || tok.Lexeme == "void" || tok.Lexeme == "null" {
			return p.parseTypeReference()
		}

	case scanner.TOK_STRING, scanner.TOK_NUMBER, scanner.TOK_BIGINT:
		return p.parseLiteralType()

	case scanner.TOK_TEMPLATE, scanner.TOK_TEMPLATE_HEAD:
		return p.parseTemplateLiteralType()

	case scanner.TOK_MINUS:
		return p.parseNegativeLiteralType()

	case scanner.TOK_BRACE_L:
		if lookAhead(p, p.isStartOfMappedType) {
			return p.parseMappedType()
		}
		return p.parseTypeLiteral()

	case scanner.TOK_BRACKET_L:
		return p.parseTupleType()

	case scanner.TOK_PAREN_L:
		return p.parseParenthesizedType()
	}

	panic(p.errUnexpected(errTypeExpected))
}

// parseEntityName parses a dotted name such as "A.B.C". A trailing dot
// is reported and the name parsed so far returned.
func (p *Parser) parseEntityName(allowReserved bool) ast.EntityName {
	start := p.pos()
	init := p.parseIdentName()
	if init.Name == "void" {
		p.emit(init.Loc, codeExpected, "'void' cannot qualify a name")
	}

	var entity ast.EntityName = init
	for p.eat(scanner.TOK_DOT) {
		if !p.isIdentName() {
			p.emit(parse.Location{Start: p.pos(), End: p.pos()}, codeIdentifierExpected, "Identifier expected.")
			return entity
		}

		var right *ast.Ident
		if allowReserved {
			right = p.parseIdentName()
		} else {
			right = p.parseIdent()
		}
		entity = &ast.QualifiedName{BaseNode: ast.BaseNode{Loc: p.span(start)}, Left: entity, Right: right}
	}
	return entity
}

func (p *Parser) parseTypeReference() *ast.TypeReference {
	start := p.pos()
	hasModifier := p.eatAnyModifier()

	name := p.parseEntityName(true)
	typeArgs := p.tryParseTypeArgsSameLine()

	if hasModifier {
		p.emit(p.span(start), codeModifierOnTypeRef, "A parameter property is only allowed in a constructor implementation.")
	}

	return &ast.TypeReference{BaseNode: ast.BaseNode{Loc: p.span(start)}, Name: name, TypeArgs: typeArgs}
}

func (p *Parser) parseThisType() *ast.ThisType {
	tok := p.expectWord("this")
	return &ast.ThisType{BaseNode: ast.BaseNode{Loc: tok.Location}}
}

func (p *Parser) parseThisTypePredicate(start int, asserts bool, this *ast.ThisType) *ast.TypePredicate {
	var typeAnn *ast.TypeAnnotation
	if p.eatWord("is") {
		typeAnn = p.parseTypeAnn(false, p.pos())
	}
	return &ast.TypePredicate{
		BaseNode:  ast.BaseNode{Loc: p.span(start)},
		Asserts:   asserts,
		ParamName: this,
		TypeAnn:   typeAnn,
	}
}

func (p *Parser) parseImportType() *ast.ImportType {
	start := p.pos()
	p.expectWord("import")
	p.expect(scanner.TOK_PAREN_L)

	var arg *ast.StringLit
	if p.is(scanner.TOK_STRING) {
		arg = p.parseStringLit()
	} else {
		tok := p.next()
		p.emit(tok.Location, codeStringLiteralExpected, "String literal expected.")
		arg = &ast.StringLit{BaseNode: ast.BaseNode{Loc: tok.Location}, Raw: `""`}
	}

	var attributes *ast.ObjectLit
	if p.eat(scanner.TOK_COMMA) && p.is(scanner.TOK_BRACE_L) {
		attributes = p.parseImportCallOptions()
	}
	p.expect(scanner.TOK_PAREN_R)

	var qualifier ast.EntityName
	if p.eat(scanner.TOK_DOT) {
		qualifier = p.parseEntityName(false)
	}

	var typeArgs *ast.TypeArgs
	if p.is(scanner.TOK_LESS) {
		typeArgs = p.parseTypeArgs()
	}

	return &ast.ImportType{
		BaseNode:   ast.BaseNode{Loc: p.span(start)},
		Arg:        arg,
		Qualifier:  qualifier,
		TypeArgs:   typeArgs,
		Attributes: attributes,
	}
}

// parseImportCallOptions parses "{ with: { ... } }".
func (p *Parser) parseImportCallOptions() *ast.ObjectLit {
	p.expect(scanner.TOK_BRACE_L)
	p.expectWord("with")
	p.expect(scanner.TOK_COLON)

	value := withTokenContext(p, tokenContextExpr, p.parseObjectLit)

	p.eat(scanner.TOK_COMMA)
	p.expect(scanner.TOK_BRACE_R)
	return value
}

func (p *Parser) parseTypeQuery() *ast.TypeQuery {
	start := p.pos()
	p.expectWord("typeof")

	var name ast.TypeQueryExpr
	if p.isWord("import") {
		name = p.parseImportType()
	} else {
		name = p.parseEntityName(true).(ast.TypeQueryExpr)
	}

	typeArgs := p.tryParseTypeArgsSameLine()
	return &ast.TypeQuery{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		ExprName: name,
		TypeArgs: typeArgs,
	}
}

func (p *Parser) parseLiteralType() *ast.LiteralType {
	start := p.pos()
	lit := p.parseLiteral()
	return &ast.LiteralType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Lit: lit}
}

// parseNegativeLiteralType folds a leading '-' into the numeric literal
// that follows it.
func (p *Parser) parseNegativeLiteralType() *ast.LiteralType {
	start := p.pos()
	p.expect(scanner.TOK_MINUS)
	if !p.isOneOf(scanner.TOK_NUMBER, scanner.TOK_BIGINT) {
		p.unexpected("a numeric literal or bigint literal")
	}

	var lit ast.Literal
	switch l := p.parseLiteral().(type) {
	case *ast.NumberLit:
		l.Val = -l.Val
		l.Raw = "-" + l.Raw
		lit = l
	case *ast.BigIntLit:
		l.Val = new(big.Int).Neg(l.Val)
		l.Raw = "-" + l.Raw
		lit = l
	}
	return &ast.LiteralType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Lit: lit}
}

func (p *Parser) parseTemplateLiteralType() *ast.TemplateLiteralType {
	start := p.pos()
	quasis, types := parseTemplateParts(p, func() ast.Type {
		return inType(p, p.parseType)
	})
	return &ast.TemplateLiteralType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Quasis: quasis, Types: types}
}

func templateElement(tok parse.Token, tail bool) *ast.TemplateElement {
	raw := scanner.TemplateRaw(tok)
	return &ast.TemplateElement{
		BaseNode: ast.BaseNode{Loc: tok.Location},
		Raw:      raw,
		Cooked:   scanner.Unescape(raw),
		Tail:     tail,
	}
}

// parseTemplateParts reads a template's text chunks, calling inner for each
// substitution between them.
func parseTemplateParts[T any](p *Parser, inner func() T) ([]*ast.TemplateElement, []T) {
	if p.is(scanner.TOK_TEMPLATE) {
		return []*ast.TemplateElement{templateElement(p.next(), true)}, nil
	}

	quasis := []*ast.TemplateElement{templateElement(p.expect(scanner.TOK_TEMPLATE_HEAD), false)}
	var parts []T
	for {
		parts = append(parts, inner())
		switch {
		case p.is(scanner.TOK_TEMPLATE_MIDDLE):
			quasis = append(quasis, templateElement(p.next(), false))
		case p.is(scanner.TOK_TEMPLATE_TAIL):
			quasis = append(quasis, templateElement(p.next(), true))
			return quasis, parts
		default:
			p.unexpected("'}'")
		}
	}
}

func (p *Parser) parseParenthesizedType() *ast.ParenthesizedType {
	start := p.pos()
	p.expect(scanner.TOK_PAREN_L)
	t := p.parseType()
	p.expect(scanner.TOK_PAREN_R)
	return &ast.ParenthesizedType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Type: t}
}

func (p *Parser) parseStringLit() *ast.StringLit {
	tok := p.expect(scanner.TOK_STRING)
	return &ast.StringLit{
		BaseNode: ast.BaseNode{Loc: tok.Location},
		Val:      scanner.StringValue(tok.Lexeme),
		Raw:      tok.Lexeme,
	}
}

// parseLiteral parses a string, number, bigint or boolean literal.
func (p *Parser) parseLiteral() ast.Literal {
	tok := p.cur()
	loc := ast.BaseNode{Loc: tok.Location}

	switch scanner.TypeOf(tok) {
	case scanner.TOK_STRING:
		return p.parseStringLit()
	case scanner.TOK_NUMBER:
		p.next()
		return &ast.NumberLit{BaseNode: loc, Val: scanner.NumberValue(tok.Lexeme), Raw: tok.Lexeme}
	case scanner.TOK_BIGINT:
		p.next()
		return &ast.BigIntLit{BaseNode: loc, Val: scanner.BigIntValue(tok.Lexeme), Raw: tok.Lexeme}
	case scanner.TOK_IDENTIFIER:
		if tok.Lexeme == "true" || tok.Lexeme == "false" {
			p.next()
			return &ast.BoolLit{BaseNode: loc, Val: tok.Lexeme == "true"}
		}
	}

	panic(p.errUnexpected("a literal"))
}
