/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"slices"

	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

// Type grammar, loosest binding first:
//
//	Type           := NonConditional [ 'extends' NonConditional '?' Type ':' Type ]
//	NonConditional := FunctionType | ConstructorType | Union
//	Union          := [ '|' ] Intersection { '|' Intersection }
//	Intersection   := [ '&' ] Operator { '&' Operator }
//	Operator       := ( 'keyof' | 'unique' | 'readonly' ) Operator | 'infer' Ident [ 'extends' Type ] | Array
//	Array          := NonArray { '[' [ Type ] ']' }

func (p *Parser) parseType() ast.Type {
	defer p.enter()()

	return withContext(p, 0, ctxDisallowConditionalTypes, func() ast.Type {
		start := p.pos()
		check := p.parseNonConditionalType()
		if p.newlineBefore() || !p.eatWord("extends") {
			return check
		}

		extends := withContext(p, ctxDisallowConditionalTypes, 0, p.parseNonConditionalType)
		p.expect(scanner.TOK_QUESTION)
		trueType := p.parseType()
		p.expect(scanner.TOK_COLON)
		falseType := p.parseType()

		return &ast.ConditionalType{
			BaseNode: ast.BaseNode{Loc: p.span(start)},
			Check:    check,
			Extends:  extends,
			True:     trueType,
			False:    falseType,
		}
	})
}

func (p *Parser) parseNonConditionalType() ast.Type {
	if p.isStartOfFnType() {
		return p.parseFnOrConstructorType(true)
	}
	if (p.isWord("abstract") && p.peekIsWord("new")) || p.isWord("new") {
		return p.parseFnOrConstructorType(false)
	}
	return p.parseUnionTypeOrHigher()
}

func (p *Parser) isStartOfFnType() bool {
	if p.is(scanner.TOK_LESS) {
		return true
	}
	return p.is(scanner.TOK_PAREN_L) && lookAhead(p, p.isUnambiguouslyStartOfFnType)
}

func (p *Parser) isUnambiguouslyStartOfFnType() bool {
	p.expect(scanner.TOK_PAREN_L)
	if p.isOneOf(scanner.TOK_PAREN_R, scanner.TOK_ELLIPSIS) {
		return true
	}

	if p.skipParameterStart() {
		if p.isOneOf(scanner.TOK_COLON, scanner.TOK_COMMA, scanner.TOK_QUESTION, scanner.TOK_EQ) {
			return true
		}
		if p.eat(scanner.TOK_PAREN_R) && p.is(scanner.TOK_ARROW) {
			return true
		}
	}
	return false
}

func (p *Parser) skipParameterStart() bool {
	p.eatAnyModifier()

	if p.isIdentName() {
		p.next()
		return true
	}

	if p.isOneOf(scanner.TOK_BRACE_L, scanner.TOK_BRACKET_L) {
		p.parseBindingPatOrIdent()
		return true
	}
	return false
}

func (p *Parser) parseFnOrConstructorType(isFnType bool) ast.Type {
	start := p.pos()
	abstract := false
	if !isFnType {
		abstract = p.eatWord("abstract")
		p.expectWord("new")
	}

	typeParams := p.tryParseTypeParams(false, true)
	p.expect(scanner.TOK_PAREN_L)
	params := p.parseBindingListForSignature()
	returnType := p.parseTypeOrTypePredicateAnn(scanner.TOK_ARROW)

	if isFnType {
		return &ast.FunctionType{
			BaseNode:   ast.BaseNode{Loc: p.span(start)},
			TypeParams: typeParams,
			Params:     params,
			ReturnType: returnType,
		}
	}
	return &ast.ConstructorType{
		BaseNode:   ast.BaseNode{Loc: p.span(start)},
		Abstract:   abstract,
		TypeParams: typeParams,
		Params:     params,
		ReturnType: returnType,
	}
}

func (p *Parser) parseUnionTypeOrHigher() ast.Type {
	return p.parseUnionOrIntersectionType(scanner.TOK_PIPE, p.parseIntersectionTypeOrHigher)
}

func (p *Parser) parseIntersectionTypeOrHigher() ast.Type {
	return p.parseUnionOrIntersectionType(scanner.TOK_AMP, p.parseTypeOperatorOrHigher)
}

// parseUnionOrIntersectionType collects every constituent joined by op
// into one flat node. A single constituent is returned unwrapped.
func (p *Parser) parseUnionOrIntersectionType(op scanner.TokenType, constituent func() ast.Type) ast.Type {
	start := p.pos()
	p.eat(op)

	first := constituent()
	if !p.is(op) {
		return first
	}

	types := []ast.Type{first}
	for p.eat(op) {
		types = append(types, constituent())
	}

	if op == scanner.TOK_PIPE {
		return &ast.UnionType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Types: types}
	}
	return &ast.IntersectionType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Types: types}
}

var typeOperators = map[string]ast.TypeOperatorKind{
	"keyof":    ast.OperatorKeyOf,
	"unique":   ast.OperatorUnique,
	"readonly": ast.OperatorReadonly,
}

func (p *Parser) parseTypeOperatorOrHigher() ast.Type {
	defer p.enter()()

	tok := p.cur()
	if op, ok := typeOperators[tok.Lexeme]; ok && scanner.Is(tok, scanner.TOK_IDENTIFIER) {
		start := p.pos()
		p.next()
		operand := p.parseTypeOperatorOrHigher()
		return &ast.TypeOperator{BaseNode: ast.BaseNode{Loc: p.span(start)}, Op: op, Type: operand}
	}

	if p.isWord("infer") {
		return p.parseInferType()
	}

	readonly := p.parseModifier("readonly") != ""
	return p.parseArrayTypeOrHigher(readonly)
}

func (p *Parser) parseInferType() ast.Type {
	start := p.pos()
	p.expectWord("infer")

	paramStart := p.pos()
	name := p.parseIdentName()
	constraint, _ := tryParse(p, func() (ast.Type, bool) {
		p.expectWord("extends")
		constraint := p.parseNonConditionalType()
		if p.has(ctxDisallowConditionalTypes) || !p.is(scanner.TOK_QUESTION) {
			return constraint, true
		}
		return nil, false
	})

	return &ast.InferType{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		TypeParam: &ast.TypeParam{
			BaseNode:   ast.BaseNode{Loc: p.span(paramStart)},
			Name:       name,
			Constraint: constraint,
		},
	}
}

func (p *Parser) parseArrayTypeOrHigher(readonly bool) ast.Type {
	start := p.pos()
	t := p.parseNonArrayType()

	for !p.newlineBefore() && p.eat(scanner.TOK_BRACKET_L) {
		if p.eat(scanner.TOK_BRACKET_R) {
			t = &ast.ArrayType{BaseNode: ast.BaseNode{Loc: p.span(start)}, Elem: t}
			continue
		}

		index := p.parseType()
		p.expect(scanner.TOK_BRACKET_R)
		t = &ast.IndexedAccessType{
			BaseNode: ast.BaseNode{Loc: p.span(start)},
			Readonly: readonly,
			Object:   t,
			Index:    index,
		}
	}
	return t
}

// parseModifier consumes the current word if it is one of allowed and the
// token after it can follow a modifier, returning the word consumed.
func (p *Parser) parseModifier(allowed ...string) string {
	tok := p.cur()
	if !isIdentName(tok) || !slices.Contains(allowed, tok.Lexeme) {
		return ""
	}
	if tryParseBool(p, p.nextTokenCanFollowModifier) {
		return tok.Lexeme
	}
	return ""
}

func (p *Parser) nextTokenCanFollowModifier() bool {
	p.next()
	if p.newlineBefore() {
		return false
	}
	return p.isIdentName() || p.isOneOf(
		scanner.TOK_BRACKET_L,
		scanner.TOK_BRACE_L,
		scanner.TOK_STAR,
		scanner.TOK_ELLIPSIS,
		scanner.TOK_HASH,
		scanner.TOK_PRIVATE_NAME,
		scanner.TOK_STRING,
		scanner.TOK_NUMBER,
		scanner.TOK_BIGINT,
	)
}

var accessModifiers = []string{"public", "protected", "private", "readonly"}

// eatAnyModifier reports whether an accessibility or readonly modifier
// starts here, consuming it when it is followed by something it can
// modify.
func (p *Parser) eatAnyModifier() bool {
	tok := p.cur()
	if !isIdentName(tok) || !slices.Contains(accessModifiers, tok.Lexeme) {
		return false
	}
	p.parseModifier(accessModifiers...)
	return true
}

// parseTypeAnn parses a type as an annotation starting at start. With
// eatColon the leading ':' is consumed first.
func (p *Parser) parseTypeAnn(eatColon bool, start int) *ast.TypeAnnotation {
	return inType(p, func() *ast.TypeAnnotation {
		if eatColon {
			p.expect(scanner.TOK_COLON)
		}
		t := p.parseType()
		return &ast.TypeAnnotation{BaseNode: ast.BaseNode{Loc: p.span(start)}, Type: t}
	})
}

func (p *Parser) tryParseTypeAnn() *ast.TypeAnnotation {
	if !p.is(scanner.TOK_COLON) {
		return nil
	}
	return p.parseTypeAnn(true, p.pos())
}

// tryParseTypeAfterColon returns the type following an optional ':'.
func (p *Parser) tryParseTypeAfterColon() ast.Type {
	if !p.eat(scanner.TOK_COLON) {
		return nil
	}
	return inType(p, p.parseType)
}

// parseTypeOrTypePredicateAnn parses a return type introduced by
// returnTok, which may be a type predicate such as "x is T" or
// "asserts x".
func (p *Parser) parseTypeOrTypePredicateAnn(returnTok scanner.TokenType) *ast.TypeAnnotation {
	return inType(p, func() *ast.TypeAnnotation {
		start := p.pos()
		p.expect(returnTok)

		predStart := p.pos()
		asserts := p.isWord("asserts") && p.peekIsIdentRef()
		if asserts {
			p.next()
		}

		is := p.isIdentRef() && p.peekIsWord("is") && !p.peek().NewlineBefore
		if !asserts && !is {
			return p.parseTypeAnn(false, start)
		}

		param := p.parseIdentName()
		var typeAnn *ast.TypeAnnotation
		if is {
			p.expectWord("is")
			typeAnn = p.parseTypeAnn(false, p.pos())
		}

		predicate := &ast.TypePredicate{
			BaseNode:  ast.BaseNode{Loc: p.span(predStart)},
			Asserts:   asserts,
			ParamName: param,
			TypeAnn:   typeAnn,
		}
		return &ast.TypeAnnotation{BaseNode: ast.BaseNode{Loc: p.span(start)}, Type: predicate}
	})
}

func (p *Parser) tryParseTypeOrTypePredicateAnn() *ast.TypeAnnotation {
	if !p.is(scanner.TOK_COLON) {
		return nil
	}
	return p.parseTypeOrTypePredicateAnn(scanner.TOK_COLON)
}

// parseTypeArgs parses "<T, U>". A leading "<<" is split so the first
// '<' opens the list.
func (p *Parser) parseTypeArgs() *ast.TypeArgs {
	start := p.pos()
	params := inType(p, func() []ast.Type {
		return withTokenContext(p, tokenContextType, func() []ast.Type {
			if p.is(scanner.TOK_LSHIFT) {
				p.nextChar()
			} else {
				p.expect(scanner.TOK_LESS)
			}
			params := parseDelimitedList(p, listTypeParamsOrArgs, p.parseType)
			p.expect(scanner.TOK_GREATER)
			return params
		})
	})
	return &ast.TypeArgs{BaseNode: ast.BaseNode{Loc: p.span(start)}, Params: params}
}

// tryParseTypeArgsSameLine parses type arguments only when '<'
// follows on the same line.
func (p *Parser) tryParseTypeArgsSameLine() *ast.TypeArgs {
	if p.newlineBefore() || !p.is(scanner.TOK_LESS) {
		return nil
	}
	return p.parseTypeArgs()
}

func (p *Parser) tryParseTypeParams(permitInOut, permitConst bool) *ast.TypeParamDecl {
	if !p.is(scanner.TOK_LESS) {
		return nil
	}
	return p.parseTypeParams(permitInOut, permitConst)
}

func (p *Parser) parseTypeParams(permitInOut, permitConst bool) *ast.TypeParamDecl {
	return inType(p, func() *ast.TypeParamDecl {
		return withTokenContext(p, tokenContextType, func() *ast.TypeParamDecl {
			start := p.pos()
			if !p.is(scanner.TOK_LESS) {
				p.unexpected("'<'")
			}

			params := parseBracketedList(p, listTypeParamsOrArgs, scanner.TOK_LESS, scanner.TOK_GREATER, true, func() *ast.TypeParam {
				return p.parseTypeParam(permitInOut, permitConst)
			})
			return &ast.TypeParamDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, Params: params}
		})
	})
}

var typeParamModifiers = []string{"public", "private", "protected", "readonly", "abstract", "const", "override", "in", "out"}

func (p *Parser) parseTypeParam(permitInOut, permitConst bool) *ast.TypeParam {
	start := p.pos()
	param := &ast.TypeParam{}

	for {
		modifier := p.parseModifier(typeParamModifiers...)
		if modifier == "" {
			break
		}

		loc := p.span(p.state.prevEnd - len(modifier))
		switch modifier {
		case "const":
			param.Const = true
			if !permitConst {
				p.emit(loc, codeConstModifier, "'const' modifier can only appear on a type parameter of a function, method or class")
			}
		case "in":
			if !permitInOut {
				p.emit(loc, codeInOutModifier, "'in' modifier can only appear on a type parameter of a class, interface or type alias")
			} else if param.In {
				p.emit(loc, codeModifierAlreadySeen, "'in' modifier already seen.")
			} else if param.Out {
				p.emit(loc, codeModifierOrder, "'in' modifier must precede 'out' modifier.")
			}
			param.In = true
		case "out":
			if !permitInOut {
				p.emit(loc, codeInOutModifier, "'out' modifier can only appear on a type parameter of a class, interface or type alias")
			} else if param.Out {
				p.emit(loc, codeModifierAlreadySeen, "'out' modifier already seen.")
			}
			param.Out = true
		default:
			p.emit(loc, codeTypeParamModifier, "'"+modifier+"' modifier cannot appear on a type parameter")
		}
	}

	param.Name = inType(p, p.parseIdentName)
	if p.eatWord("extends") {
		param.Constraint = inType(p, p.parseType)
	}
	if p.eat(scanner.TOK_EQ) {
		param.Default = inType(p, p.parseType)
	}

	param.Loc = p.span(start)
	return param
}
