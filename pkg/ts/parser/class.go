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

var classModifiers = []string{"public", "protected", "private", "static", "abstract", "override", "readonly", "declare"}

// classModifierSet collects the modifiers written before a class member.
type classModifierSet struct {
	accessibility string
	static        bool
	abstract      bool
	override      bool
	readonly      bool
	declare       bool
}

func (p *Parser) parseClassDecl(start int, abstract bool) *ast.ClassDecl {
	p.expectWord("class")
	id := p.parseIdent()
	class := p.parseClass(start, abstract)
	return &ast.ClassDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, ID: id, Class: class}
}

func (p *Parser) parseClass(start int, abstract bool) *ast.Class {
	class := &ast.Class{Abstract: abstract}
	class.TypeParams = p.tryParseTypeParams(true, true)

	if p.eatWord("extends") {
		superClass := p.parseLHS()
		if inst, ok := superClass.(*ast.InstantiationExpr); ok {
			class.SuperClass = inst.Expr
			class.SuperTypeArgs = inst.TypeArgs
		} else {
			class.SuperClass = superClass
			if p.is(scanner.TOK_LESS) {
				class.SuperTypeArgs = p.parseTypeArgs()
			}
		}
	}

	if p.eatWord("implements") {
		class.Implements = p.parseHeritageClause()
	}

	p.expect(scanner.TOK_BRACE_L)
	class.Members = withContext(p, ctxInClass, ctxTopLevel, func() []ast.ClassMember {
		var members []ast.ClassMember
		for !p.isOneOf(scanner.TOK_BRACE_R, scanner.TOK_EOF) {
			if p.eat(scanner.TOK_SEMICOLON) {
				continue
			}
			members = append(members, p.parseClassMember())
		}
		return members
	})
	p.expect(scanner.TOK_BRACE_R)

	class.Loc = p.span(start)
	return class
}

func (p *Parser) parseClassModifiers() classModifierSet {
	var set classModifierSet
	for {
		modifier := p.parseModifier(classModifiers...)
		switch modifier {
		case "":
			return set
		case "static":
			set.static = true
		case "abstract":
			set.abstract = true
		case "override":
			set.override = true
		case "readonly":
			set.readonly = true
		case "declare":
			set.declare = true
		default:
			set.accessibility = modifier
		}
	}
}

func (p *Parser) parseClassMember() ast.ClassMember {
	start := p.pos()
	modifiers := p.parseClassModifiers()

	if p.isWord("constructor") && p.peekIs(scanner.TOK_PAREN_L) {
		return p.parseConstructor(start, modifiers)
	}

	if idx := p.tryParseIndexSignature(start, modifiers.readonly, modifiers.static); idx != nil {
		return idx
	}

	fn := &ast.Function{}
	kind := "method"
	switch {
	case (p.isWord("get") || p.isWord("set")) && lookAhead(p, p.nextTokenStartsPropertyName):
		kind = p.next().Lexeme
	case p.isWord("async") && lookAhead(p, p.nextTokenStartsPropertyName):
		p.next()
		fn.Async = true
	}
	fn.Generator = p.eat(scanner.TOK_STAR)

	key, computed := p.parseObjectKey()
	optional := p.eat(scanner.TOK_QUESTION)

	if kind != "method" || fn.Async || fn.Generator || p.isOneOf(scanner.TOK_PAREN_L, scanner.TOK_LESS) {
		if modifiers.readonly {
			p.emit(p.span(start), "", errReadonlyMethod)
		}
		fnStart := p.pos()
		p.parseFunctionSignature(fn, false)
		if p.is(scanner.TOK_BRACE_L) {
			fn.Body = p.parseFunctionBody()
		} else {
			p.semicolon()
		}
		fn.Loc = p.span(fnStart)

		return &ast.ClassMethod{
			BaseNode:      ast.BaseNode{Loc: p.span(start)},
			Key:           key,
			Computed:      computed,
			Kind:          kind,
			Accessibility: modifiers.accessibility,
			Static:        modifiers.static,
			Abstract:      modifiers.abstract,
			Override:      modifiers.override,
			Optional:      optional,
			Function:      fn,
		}
	}

	definite := !optional && p.is(scanner.TOK_BANG) && !p.newlineBefore()
	if definite {
		p.next()
	}

	typeAnn := p.tryParseTypeAnn()
	var value ast.Expr
	if p.eat(scanner.TOK_EQ) {
		value = p.parseAssignExpr()
	}
	p.semicolon()

	return &ast.ClassProp{
		BaseNode:      ast.BaseNode{Loc: p.span(start)},
		Key:           key,
		Computed:      computed,
		Accessibility: modifiers.accessibility,
		Static:        modifiers.static,
		Readonly:      modifiers.readonly,
		Abstract:      modifiers.abstract,
		Declare:       modifiers.declare,
		Override:      modifiers.override,
		Optional:      optional,
		Definite:      definite,
		TypeAnn:       typeAnn,
		Init:          value,
	}
}

func (p *Parser) parseConstructor(start int, modifiers classModifierSet) *ast.Constructor {
	p.expectWord("constructor")
	p.expect(scanner.TOK_PAREN_L)
	params := p.parseFormalParams(true)
	p.expect(scanner.TOK_PAREN_R)

	var body *ast.BlockStmt
	if p.is(scanner.TOK_BRACE_L) {
		body = p.parseFunctionBody()
	} else {
		p.semicolon()
	}

	return &ast.Constructor{
		BaseNode:      ast.BaseNode{Loc: p.span(start)},
		Accessibility: modifiers.accessibility,
		Params:        params,
		Body:          body,
	}
}
