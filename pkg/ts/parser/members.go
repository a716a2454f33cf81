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

func (p *Parser) parseTypeLiteral() *ast.TypeLiteral {
	start := p.pos()
	members := p.parseObjectTypeMembers()
	return &ast.TypeLiteral{BaseNode: ast.BaseNode{Loc: p.span(start)}, Members: members}
}

func (p *Parser) parseObjectTypeMembers() []ast.TypeElement {
	p.expect(scanner.TOK_BRACE_L)
	members := parseList(p, listTypeMembers, p.parseTypeMember)
	p.expect(scanner.TOK_BRACE_R)
	return members
}

// parseTypeMemberSemicolon accepts ',' or a statement terminator.
func (p *Parser) parseTypeMemberSemicolon() {
	if !p.eat(scanner.TOK_COMMA) {
		p.semicolon()
	}
}

func (p *Parser) parseTypeMember() ast.TypeElement {
	if p.isOneOf(scanner.TOK_PAREN_L, scanner.TOK_LESS) {
		return p.parseSignatureMember(false)
	}
	if p.isWord("new") && lookAhead(p, p.isStartOfConstructSignature) {
		return p.parseSignatureMember(true)
	}

	start := p.pos()
	readonly := p.parseModifier("readonly") != ""

	if idx := p.tryParseIndexSignature(start, readonly, false); idx != nil {
		return idx
	}

	if accessor, ok := tryParse(p, func() (ast.TypeElement, bool) {
		return p.parseAccessorSignature(readonly), true
	}); ok {
		return accessor
	}

	return p.parsePropertyOrMethodSignature(start, readonly)
}

func (p *Parser) isStartOfConstructSignature() bool {
	p.next()
	return p.isOneOf(scanner.TOK_PAREN_L, scanner.TOK_LESS)
}

// parseSignatureMember parses a call signature, or with construct a
// construct signature.
func (p *Parser) parseSignatureMember(construct bool) ast.TypeElement {
	start := p.pos()
	if construct {
		p.expectWord("new")
	}

	typeParams := p.tryParseTypeParams(false, true)
	p.expect(scanner.TOK_PAREN_L)
	params := p.parseBindingListForSignature()
	typeAnn := p.tryParseTypeOrTypePredicateAnn()
	p.parseTypeMemberSemicolon()

	if construct {
		return &ast.ConstructSignature{
			BaseNode:   ast.BaseNode{Loc: p.span(start)},
			TypeParams: typeParams,
			Params:     params,
			TypeAnn:    typeAnn,
		}
	}
	return &ast.CallSignature{
		BaseNode:   ast.BaseNode{Loc: p.span(start)},
		TypeParams: typeParams,
		Params:     params,
		TypeAnn:    typeAnn,
	}
}

func (p *Parser) isUnambiguouslyIndexSignature() bool {
	p.expect(scanner.TOK_BRACKET_L)
	if !p.isIdentRef() {
		return false
	}
	p.next()
	// ',' is accepted for recovery.
	return p.isOneOf(scanner.TOK_COLON, scanner.TOK_COMMA)
}

// tryParseIndexSignature parses "[key: K]: V" when the lookahead shows an
// index signature, and returns nil otherwise.
func (p *Parser) tryParseIndexSignature(start int, readonly, static bool) *ast.IndexSignature {
	if !p.is(scanner.TOK_BRACKET_L) || !lookAhead(p, p.isUnambiguouslyIndexSignature) {
		return nil
	}

	p.expect(scanner.TOK_BRACKET_L)
	identStart := p.pos()
	id := p.parseIdentName()
	typeAnnStart := p.pos()

	if p.eat(scanner.TOK_COMMA) {
		p.emit(id.Loc, codeIndexSignatureComma, "An index signature must have exactly one parameter.")
	} else {
		p.expect(scanner.TOK_COLON)
	}

	paramType := p.parseTypeAnn(false, typeAnnStart)
	param := &ast.BindingIdent{
		BaseNode: ast.BaseNode{Loc: p.span(identStart)},
		ID:       id,
		TypeAnn:  paramType,
	}
	p.expect(scanner.TOK_BRACKET_R)

	typeAnn := p.tryParseTypeAnn()
	p.parseTypeMemberSemicolon()

	return &ast.IndexSignature{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		Params:   []ast.Pattern{param},
		TypeAnn:  typeAnn,
		Readonly: readonly,
		Static:   static,
	}
}

// parsePropertyName returns the key of a member and whether it was
// computed.
func (p *Parser) parsePropertyName() (ast.Expr, bool) {
	if p.eat(scanner.TOK_BRACKET_L) {
		key := withTokenContext(p, tokenContextExpr, p.parseAssignExpr)
		p.expect(scanner.TOK_BRACKET_R)
		return key, true
	}

	switch {
	case p.isOneOf(scanner.TOK_NUMBER, scanner.TOK_STRING):
		return withTokenContext(p, tokenContextExpr, p.parseNewExpr), false
	case p.is(scanner.TOK_PRIVATE_NAME):
		name := p.parsePrivateName()
		p.emit(name.Loc, codePrivateNameInInterface, "Private identifiers are not allowed outside class bodies.")
		return name, false
	}
	return p.parseIdentName(), false
}

// parseAccessorSignature parses "get key(): T" or "set key(v: T)".
func (p *Parser) parseAccessorSignature(readonly bool) ast.TypeElement {
	start := p.pos()
	if readonly {
		p.fail(p.cur().Location, "", "A 'get' or 'set' accessor cannot be readonly.")
	}

	isGet := p.eatWord("get")
	if !isGet {
		p.expectWord("set")
	}

	key, computed := p.parsePropertyName()
	p.expect(scanner.TOK_PAREN_L)

	if isGet {
		p.expect(scanner.TOK_PAREN_R)
		typeAnn := p.tryParseTypeAnn()
		p.parseTypeMemberSemicolon()
		return &ast.GetterSignature{
			BaseNode: ast.BaseNode{Loc: p.span(start)},
			Key:      key,
			Computed: computed,
			TypeAnn:  typeAnn,
		}
	}

	params := p.parseBindingListForSignature()
	if len(params) == 0 {
		p.fail(p.span(start), "", errSetterParam)
	}
	p.parseTypeMemberSemicolon()
	return &ast.SetterSignature{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		Key:      key,
		Computed: computed,
		Param:    params[0],
	}
}

func (p *Parser) parsePropertyOrMethodSignature(start int, readonly bool) ast.TypeElement {
	key, computed := p.parsePropertyName()
	optional := p.eat(scanner.TOK_QUESTION)

	if p.isOneOf(scanner.TOK_PAREN_L, scanner.TOK_LESS) {
		if readonly {
			p.fail(p.span(start), "", errReadonlyMethod)
		}

		typeParams := p.tryParseTypeParams(false, true)
		p.expect(scanner.TOK_PAREN_L)
		params := p.parseBindingListForSignature()
		typeAnn := p.tryParseTypeOrTypePredicateAnn()
		p.parseTypeMemberSemicolon()

		return &ast.MethodSignature{
			BaseNode:   ast.BaseNode{Loc: p.span(start)},
			Key:        key,
			Computed:   computed,
			Optional:   optional,
			TypeParams: typeParams,
			Params:     params,
			TypeAnn:    typeAnn,
		}
	}

	typeAnn := p.tryParseTypeAnn()
	p.parseTypeMemberSemicolon()
	return &ast.PropertySignature{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		Readonly: readonly,
		Key:      key,
		Computed: computed,
		Optional: optional,
		TypeAnn:  typeAnn,
	}
}

func (p *Parser) isStartOfMappedType() bool {
	p.expect(scanner.TOK_BRACE_L)
	if p.eat(scanner.TOK_PLUS) || p.eat(scanner.TOK_MINUS) {
		return p.isWord("readonly")
	}

	p.eatWord("readonly")
	if !p.eat(scanner.TOK_BRACKET_L) {
		return false
	}
	if !p.isIdentRef() {
		return false
	}
	p.next()
	return p.isWord("in")
}

// parseMappedModifier reads a "+word", "-word" or bare "word" modifier.
func (p *Parser) parseMappedModifier(word func() bool, expectWord func()) ast.TruePlusMinus {
	switch {
	case p.eat(scanner.TOK_PLUS):
		expectWord()
		return ast.ModifierPlus
	case p.eat(scanner.TOK_MINUS):
		expectWord()
		return ast.ModifierMinus
	case word():
		return ast.ModifierTrue
	}
	return ast.ModifierNone
}

func (p *Parser) parseMappedType() *ast.MappedType {
	start := p.pos()
	p.expect(scanner.TOK_BRACE_L)

	readonly := p.parseMappedModifier(
		func() bool { return p.eatWord("readonly") },
		func() { p.expectWord("readonly") },
	)

	p.expect(scanner.TOK_BRACKET_L)
	paramStart := p.pos()
	name := p.parseIdentName()
	p.expectWord("in")
	constraint := p.parseType()
	typeParam := &ast.TypeParam{
		BaseNode:   ast.BaseNode{Loc: p.span(paramStart)},
		Name:       name,
		Constraint: constraint,
	}

	var nameType ast.Type
	if p.eatWord("as") {
		nameType = p.parseType()
	}
	p.expect(scanner.TOK_BRACKET_R)

	optional := p.parseMappedModifier(
		func() bool { return p.eat(scanner.TOK_QUESTION) },
		func() { p.expect(scanner.TOK_QUESTION) },
	)

	typeAnn := p.tryParseTypeAfterColon()
	p.semicolon()
	p.expect(scanner.TOK_BRACE_R)

	return &ast.MappedType{
		BaseNode:  ast.BaseNode{Loc: p.span(start)},
		Readonly:  readonly,
		TypeParam: typeParam,
		NameType:  nameType,
		Optional:  optional,
		TypeAnn:   typeAnn,
	}
}
