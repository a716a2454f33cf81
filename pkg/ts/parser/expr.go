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

// Expression grammar, loosest binding first:
//
//	Expr        := Assign { ',' Assign }
//	Assign      := Arrow | Conditional [ AssignOp Assign ]
//	Conditional := Binary [ '?' Assign ':' Assign ]
//	Binary      := Unary { BinaryOp Unary | ( 'as' | 'satisfies' ) Type }
//	Unary       := UnaryOp Unary | '<' Type '>' Unary | LHS [ '++' | '--' ]
//	LHS         := ( New | Primary ) { Subscript }

const precRelational = 8

var binaryPrecedence = map[scanner.TokenType]int{
	scanner.TOK_QUESTION_QUESTION: 1,
	scanner.TOK_PIPE_PIPE:         2,
	scanner.TOK_AMP_AMP:           3,
	scanner.TOK_PIPE:              4,
	scanner.TOK_CARET:             5,
	scanner.TOK_AMP:               6,
	scanner.TOK_EQ_EQ:             7,
	scanner.TOK_NOT_EQ:            7,
	scanner.TOK_EQ_EQ_EQ:          7,
	scanner.TOK_NOT_EQ_EQ:         7,
	scanner.TOK_LESS:              precRelational,
	scanner.TOK_GREATER:           precRelational,
	scanner.TOK_LESS_EQ:           precRelational,
	scanner.TOK_GREATER_EQ:        precRelational,
	scanner.TOK_LSHIFT:            9,
	scanner.TOK_RSHIFT:            9,
	scanner.TOK_URSHIFT:           9,
	scanner.TOK_PLUS:              10,
	scanner.TOK_MINUS:             10,
	scanner.TOK_STAR:              11,
	scanner.TOK_SLASH:             11,
	scanner.TOK_PERCENT:           11,
	scanner.TOK_STAR_STAR:         12,
}

var wordOperators = map[string]int{
	"in":         precRelational,
	"instanceof": precRelational,
}

var assignOperators = map[scanner.TokenType]bool{
	scanner.TOK_EQ:                   true,
	scanner.TOK_PLUS_EQ:              true,
	scanner.TOK_MINUS_EQ:             true,
	scanner.TOK_STAR_EQ:              true,
	scanner.TOK_STAR_STAR_EQ:         true,
	scanner.TOK_SLASH_EQ:             true,
	scanner.TOK_PERCENT_EQ:           true,
	scanner.TOK_LSHIFT_EQ:            true,
	scanner.TOK_RSHIFT_EQ:            true,
	scanner.TOK_URSHIFT_EQ:           true,
	scanner.TOK_AMP_EQ:               true,
	scanner.TOK_PIPE_EQ:              true,
	scanner.TOK_CARET_EQ:             true,
	scanner.TOK_AMP_AMP_EQ:           true,
	scanner.TOK_PIPE_PIPE_EQ:         true,
	scanner.TOK_QUESTION_QUESTION_EQ: true,
}

var unaryOperators = map[scanner.TokenType]bool{
	scanner.TOK_BANG:  true,
	scanner.TOK_TILDE: true,
	scanner.TOK_PLUS:  true,
	scanner.TOK_MINUS: true,
}

var unaryWords = map[string]bool{
	"typeof": true,
	"void":   true,
	"delete": true,
	"await":  true,
}

// precedence returns the binding power of tok as a binary operator, or 0.
func precedence(tok parse.Token) int {
	if isIdentName(tok) {
		return wordOperators[tok.Lexeme]
	}
	return binaryPrecedence[scanner.TypeOf(tok)]
}

func (p *Parser) parseExpr() ast.Expr {
	start := p.pos()
	expr := p.parseAssignExpr()
	if !p.is(scanner.TOK_COMMA) {
		return expr
	}

	exprs := []ast.Expr{expr}
	for p.eat(scanner.TOK_COMMA) {
		exprs = append(exprs, p.parseAssignExpr())
	}
	return &ast.SeqExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Exprs: exprs}
}

func (p *Parser) parseAssignExpr() ast.Expr {
	defer p.enter()()

	if arrow := p.tryParseArrow(); arrow != nil {
		return arrow
	}

	start := p.pos()
	left := p.parseConditional()

	tok := p.cur()
	if !assignOperators[scanner.TypeOf(tok)] {
		return left
	}
	p.next()
	right := p.parseAssignExpr()

	return &ast.AssignExpr{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		Op:       tok.Lexeme,
		Left:     left,
		Right:    right,
	}
}

func (p *Parser) isStartOfArrow() bool {
	switch {
	case p.isOneOf(scanner.TOK_PAREN_L, scanner.TOK_LESS):
		return true
	case p.isWord("async"):
		return !p.peek().NewlineBefore
	}
	return p.isIdentRef() && p.peekIs(scanner.TOK_ARROW)
}

// tryParseArrow parses an arrow function when the tokens ahead form an
// arrow head. The body is parsed after the head is committed, so errors in
// the body are reported rather than retried as a parenthesized expression.
func (p *Parser) tryParseArrow() *ast.ArrowExpr {
	if !p.isStartOfArrow() {
		return nil
	}

	start := p.pos()
	arrow, ok := tryParse(p, func() (*ast.ArrowExpr, bool) {
		return p.parseArrowHead(), true
	})
	if !ok {
		return nil
	}

	if p.is(scanner.TOK_BRACE_L) {
		arrow.Body = p.parseFunctionBody()
	} else {
		arrow.Body = p.parseAssignExpr()
	}
	arrow.Loc = p.span(start)
	return arrow
}

func (p *Parser) parseArrowHead() *ast.ArrowExpr {
	arrow := &ast.ArrowExpr{}
	if p.isWord("async") && !p.peekIs(scanner.TOK_ARROW) {
		p.next()
		arrow.Async = true
	}

	if p.isIdentRef() && p.peekIs(scanner.TOK_ARROW) {
		id := p.parseIdent()
		arrow.Params = []ast.Pattern{&ast.BindingIdent{BaseNode: ast.BaseNode{Loc: id.Loc}, ID: id}}
	} else {
		arrow.TypeParams = p.tryParseTypeParams(false, true)
		p.expect(scanner.TOK_PAREN_L)
		arrow.Params = p.parseFormalParams(false)
		p.expect(scanner.TOK_PAREN_R)
		arrow.ReturnType = p.tryParseTypeOrTypePredicateAnn()
	}

	if p.newlineBefore() {
		p.unexpected("'=>' on the same line")
	}
	p.expect(scanner.TOK_ARROW)
	return arrow
}

func (p *Parser) parseConditional() ast.Expr {
	start := p.pos()
	test := p.parseBinary(0)
	if !p.eat(scanner.TOK_QUESTION) {
		return test
	}

	cons := p.parseAssignExpr()
	p.expect(scanner.TOK_COLON)
	alt := p.parseAssignExpr()

	return &ast.CondExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Test: test, Cons: cons, Alt: alt}
}

// parseBinary parses operators binding tighter than minPrec.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	start := p.pos()
	left := p.parseUnary()

	for {
		tok := p.cur()

		if (p.isWord("as") || p.isWord("satisfies")) && !p.newlineBefore() && precRelational > minPrec {
			left = p.parseAsOrSatisfies(start, left)
			continue
		}

		prec := precedence(tok)
		if prec == 0 || prec <= minPrec {
			return left
		}
		p.next()

		var right ast.Expr
		if scanner.Is(tok, scanner.TOK_STAR_STAR) {
			right = p.parseBinary(prec - 1)
		} else {
			right = p.parseBinary(prec)
		}

		left = &ast.BinaryExpr{
			BaseNode: ast.BaseNode{Loc: p.span(start)},
			Op:       tok.Lexeme,
			Left:     left,
			Right:    right,
		}
	}
}

func (p *Parser) parseAsOrSatisfies(start int, expr ast.Expr) ast.Expr {
	op := p.next().Lexeme
	if op == "as" && p.eatWord("const") {
		return &ast.ConstAssertion{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr}
	}

	t := inType(p, p.parseType)
	if op == "satisfies" {
		return &ast.SatisfiesExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr, Type: t}
	}
	return &ast.AsExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr, Type: t}
}

func (p *Parser) parseUnary() ast.Expr {
	defer p.enter()()

	start := p.pos()
	tok := p.cur()

	switch {
	case unaryOperators[scanner.TypeOf(tok)] || (isIdentName(tok) && unaryWords[tok.Lexeme]):
		p.next()
		arg := p.parseUnary()
		return &ast.UnaryExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Op: tok.Lexeme, Arg: arg}

	case p.isOneOf(scanner.TOK_PLUS_PLUS, scanner.TOK_MINUS_MINUS):
		p.next()
		arg := p.parseUnary()
		return &ast.UpdateExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Op: tok.Lexeme, Prefix: true, Arg: arg}

	case p.is(scanner.TOK_LESS):
		return p.parseTypeAssertion()
	}

	expr := p.parseLHS()
	if p.isOneOf(scanner.TOK_PLUS_PLUS, scanner.TOK_MINUS_MINUS) && !p.newlineBefore() {
		op := p.next()
		return &ast.UpdateExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Op: op.Lexeme, Arg: expr}
	}
	return expr
}

// parseTypeAssertion parses the angle-bracket cast "<T>expr".
func (p *Parser) parseTypeAssertion() *ast.TypeAssertion {
	start := p.pos()
	t := inType(p, func() ast.Type {
		return withTokenContext(p, tokenContextType, func() ast.Type {
			p.expect(scanner.TOK_LESS)
			t := p.parseType()
			p.expect(scanner.TOK_GREATER)
			return t
		})
	})
	expr := p.parseUnary()
	return &ast.TypeAssertion{BaseNode: ast.BaseNode{Loc: p.span(start)}, Type: t, Expr: expr}
}

func (p *Parser) parseLHS() ast.Expr {
	var expr ast.Expr
	if p.isWord("new") {
		expr = p.parseNewExpr()
	} else {
		expr = p.parsePrimary()
	}
	return p.parseSubscripts(expr, false)
}

// parseNewExpr parses a member expression, optionally preceded by any
// number of 'new' keywords. Calls are not consumed except as the argument
// list of a 'new'.
func (p *Parser) parseNewExpr() ast.Expr {
	defer p.enter()()

	start := p.pos()
	if !p.eatWord("new") {
		return p.parseSubscripts(p.parsePrimary(), true)
	}

	callee := p.parseNewExpr()

	var typeArgs *ast.TypeArgs
	if p.isOneOf(scanner.TOK_LESS, scanner.TOK_LSHIFT) {
		typeArgs, _ = tryParse(p, func() (*ast.TypeArgs, bool) {
			args := p.parseTypeArgs()
			return args, p.is(scanner.TOK_PAREN_L)
		})
	}

	var args []ast.Expr
	if p.is(scanner.TOK_PAREN_L) {
		args = p.parseArguments()
	}

	return &ast.NewExpr{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		Callee:   callee,
		TypeArgs: typeArgs,
		Args:     args,
	}
}

// parseSubscripts extends expr with member accesses, calls, non-null
// assertions and instantiations. With noCall argument lists are left for
// the caller.
func (p *Parser) parseSubscripts(expr ast.Expr, noCall bool) ast.Expr {
	start := expr.Span().Start

	for {
		switch {
		case p.eat(scanner.TOK_DOT):
			prop := p.parseMemberProperty()
			expr = &ast.MemberExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Object: expr, Property: prop}

		case p.is(scanner.TOK_QUESTION_DOT):
			if noCall {
				return expr
			}
			p.next()
			expr = p.parseOptionalChain(start, expr)

		case p.eat(scanner.TOK_BRACKET_L):
			prop := withTokenContext(p, tokenContextExpr, p.parseExpr)
			p.expect(scanner.TOK_BRACKET_R)
			expr = &ast.MemberExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Object: expr, Property: prop, Computed: true}

		case p.is(scanner.TOK_BANG) && !p.newlineBefore():
			p.next()
			expr = &ast.NonNullExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr}

		case p.isOneOf(scanner.TOK_LESS, scanner.TOK_LSHIFT):
			typeArgs, ok := tryParse(p, func() (*ast.TypeArgs, bool) {
				args := p.parseTypeArgs()
				if p.is(scanner.TOK_PAREN_L) {
					return args, !noCall
				}
				return args, p.canFollowTypeArgs()
			})
			if !ok {
				return expr
			}

			if p.is(scanner.TOK_PAREN_L) {
				args := p.parseArguments()
				expr = &ast.CallExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Callee: expr, TypeArgs: typeArgs, Args: args}
			} else {
				expr = &ast.InstantiationExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr, TypeArgs: typeArgs}
			}

		case !noCall && p.is(scanner.TOK_PAREN_L):
			args := p.parseArguments()
			expr = &ast.CallExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Callee: expr, Args: args}

		default:
			return expr
		}
	}
}

// parseOptionalChain parses what follows "?.".
func (p *Parser) parseOptionalChain(start int, expr ast.Expr) ast.Expr {
	switch {
	case p.eat(scanner.TOK_BRACKET_L):
		prop := withTokenContext(p, tokenContextExpr, p.parseExpr)
		p.expect(scanner.TOK_BRACKET_R)
		return &ast.MemberExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Object: expr, Property: prop, Computed: true, Optional: true}

	case p.isOneOf(scanner.TOK_PAREN_L, scanner.TOK_LESS):
		typeArgs := p.tryParseTypeArgs()
		args := p.parseArguments()
		return &ast.CallExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Callee: expr, TypeArgs: typeArgs, Args: args, Optional: true}
	}

	prop := p.parseMemberProperty()
	return &ast.MemberExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Object: expr, Property: prop, Optional: true}
}

func (p *Parser) tryParseTypeArgs() *ast.TypeArgs {
	if !p.is(scanner.TOK_LESS) {
		return nil
	}
	return p.parseTypeArgs()
}

func (p *Parser) parseMemberProperty() ast.Expr {
	if p.is(scanner.TOK_PRIVATE_NAME) {
		return p.parsePrivateName()
	}
	return p.parseIdentName()
}

// canFollowTypeArgs decides whether "f<T>" not followed by '(' is an
// instantiation expression rather than the start of a comparison.
func (p *Parser) canFollowTypeArgs() bool {
	if p.isOneOf(
		scanner.TOK_LESS,
		scanner.TOK_GREATER,
		scanner.TOK_EQ,
		scanner.TOK_RSHIFT,
		scanner.TOK_GREATER_EQ,
		scanner.TOK_PLUS,
		scanner.TOK_MINUS,
		scanner.TOK_PAREN_L,
		scanner.TOK_TEMPLATE,
		scanner.TOK_TEMPLATE_HEAD,
	) {
		return false
	}
	return p.newlineBefore() || p.isBinaryOperator() || !p.isStartOfExpr()
}

func (p *Parser) isBinaryOperator() bool {
	return precedence(p.cur()) > 0 || p.isWord("as") || p.isWord("satisfies")
}

func (p *Parser) isStartOfExpr() bool {
	if p.isIdentName() {
		return true
	}
	return p.isOneOf(
		scanner.TOK_NUMBER,
		scanner.TOK_BIGINT,
		scanner.TOK_STRING,
		scanner.TOK_TEMPLATE,
		scanner.TOK_TEMPLATE_HEAD,
		scanner.TOK_PRIVATE_NAME,
		scanner.TOK_PAREN_L,
		scanner.TOK_BRACKET_L,
		scanner.TOK_BRACE_L,
		scanner.TOK_PLUS,
		scanner.TOK_MINUS,
		scanner.TOK_BANG,
		scanner.TOK_TILDE,
		scanner.TOK_PLUS_PLUS,
		scanner.TOK_MINUS_MINUS,
		scanner.TOK_LESS,
		scanner.TOK_SLASH,
		scanner.TOK_AT,
	)
}

func (p *Parser) parseArguments() []ast.Expr {
	p.expect(scanner.TOK_PAREN_L)
	args := []ast.Expr{}
	for !p.is(scanner.TOK_PAREN_R) {
		args = append(args, p.parseExprOrSpread())
		if !p.is(scanner.TOK_PAREN_R) {
			p.expect(scanner.TOK_COMMA)
		}
	}
	p.expect(scanner.TOK_PAREN_R)
	return args
}

func (p *Parser) parseExprOrSpread() ast.Expr {
	start := p.pos()
	if !p.eat(scanner.TOK_ELLIPSIS) {
		return p.parseAssignExpr()
	}
	arg := p.parseAssignExpr()
	return &ast.SpreadElement{BaseNode: ast.BaseNode{Loc: p.span(start)}, Arg: arg}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	base := ast.BaseNode{Loc: tok.Location}

	switch scanner.TypeOf(tok) {
	case scanner.TOK_IDENTIFIER:
		switch tok.Lexeme {
		case "this":
			p.next()
			return &ast.ThisExpr{BaseNode: base}
		case "super":
			p.next()
			return &ast.SuperExpr{BaseNode: base}
		case "null":
			p.next()
			return &ast.NullLit{BaseNode: base}
		case "true", "false":
			return p.parseLiteral()
		case "function":
			return p.parseFunctionExpr()
		case "async":
			if p.peekIsWord("function") && !p.peek().NewlineBefore {
				return p.parseFunctionExpr()
			}
		}
		return p.parseIdent()

	case scanner.TOK_NUMBER, scanner.TOK_BIGINT, scanner.TOK_STRING:
		return p.parseLiteral()

	case scanner.TOK_TEMPLATE, scanner.TOK_TEMPLATE_HEAD:
		start := p.pos()
		quasis, exprs := parseTemplateParts(p, func() ast.Expr {
			return withTokenContext(p, tokenContextExpr, p.parseExpr)
		})
		return &ast.TemplateLit{BaseNode: ast.BaseNode{Loc: p.span(start)}, Quasis: quasis, Exprs: exprs}

	case scanner.TOK_PRIVATE_NAME:
		// Only valid as the left operand of 'in'.
		return p.parsePrivateName()

	case scanner.TOK_PAREN_L:
		start := p.pos()
		p.next()
		expr := withTokenContext(p, tokenContextExpr, p.parseExpr)
		p.expect(scanner.TOK_PAREN_R)
		return &ast.ParenExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr}

	case scanner.TOK_BRACKET_L:
		return p.parseArrayLit()

	case scanner.TOK_BRACE_L:
		return p.parseObjectLit()
	}

	panic(p.errUnexpected("an expression"))
}

func (p *Parser) parseArrayLit() *ast.ArrayLit {
	start := p.pos()
	p.expect(scanner.TOK_BRACKET_L)

	var elems []ast.Expr
	for !p.is(scanner.TOK_BRACKET_R) {
		if p.eat(scanner.TOK_COMMA) {
			elems = append(elems, nil)
			continue
		}
		elems = append(elems, p.parseExprOrSpread())
		if !p.is(scanner.TOK_BRACKET_R) {
			p.expect(scanner.TOK_COMMA)
		}
	}
	p.expect(scanner.TOK_BRACKET_R)

	return &ast.ArrayLit{BaseNode: ast.BaseNode{Loc: p.span(start)}, Elems: elems}
}

func (p *Parser) parseObjectLit() *ast.ObjectLit {
	start := p.pos()
	p.expect(scanner.TOK_BRACE_L)

	props := withContext(p, 0, ctxInClass, func() []ast.Prop {
		var props []ast.Prop
		for !p.is(scanner.TOK_BRACE_R) {
			props = append(props, p.parseObjectProp())
			if !p.is(scanner.TOK_BRACE_R) {
				p.expect(scanner.TOK_COMMA)
			}
		}
		return props
	})
	p.expect(scanner.TOK_BRACE_R)

	return &ast.ObjectLit{BaseNode: ast.BaseNode{Loc: p.span(start)}, Props: props}
}

func (p *Parser) parseObjectProp() ast.Prop {
	start := p.pos()
	if p.eat(scanner.TOK_ELLIPSIS) {
		arg := p.parseAssignExpr()
		return &ast.SpreadElement{BaseNode: ast.BaseNode{Loc: p.span(start)}, Arg: arg}
	}

	fn := &ast.Function{}
	if p.isWord("async") && lookAhead(p, p.nextTokenStartsPropertyName) {
		p.next()
		fn.Async = true
	}
	fn.Generator = p.eat(scanner.TOK_STAR)

	key, computed := p.parseObjectKey()

	if fn.Async || fn.Generator || p.isOneOf(scanner.TOK_PAREN_L, scanner.TOK_LESS) {
		p.parseFunctionSignature(fn, false)
		fn.Body = p.parseFunctionBody()
		fn.Loc = p.span(start)
		return &ast.MethodProp{BaseNode: ast.BaseNode{Loc: p.span(start)}, Key: key, Computed: computed, Function: fn}
	}

	if p.eat(scanner.TOK_COLON) {
		value := p.parseAssignExpr()
		return &ast.KeyValueProp{BaseNode: ast.BaseNode{Loc: p.span(start)}, Key: key, Computed: computed, Val: value}
	}

	id, ok := key.(*ast.Ident)
	if !ok || computed || reserved[id.Name] {
		p.unexpected("':'")
	}
	return &ast.ShorthandProp{BaseNode: ast.BaseNode{Loc: p.span(start)}, Key: id}
}

// nextTokenStartsPropertyName reports whether the current word is a
// modifier such as 'async' or 'get' rather than a key itself.
func (p *Parser) nextTokenStartsPropertyName() bool {
	p.next()
	if p.newlineBefore() {
		return false
	}
	return p.isIdentName() || p.isOneOf(
		scanner.TOK_STRING,
		scanner.TOK_NUMBER,
		scanner.TOK_BIGINT,
		scanner.TOK_BRACKET_L,
		scanner.TOK_PRIVATE_NAME,
		scanner.TOK_STAR,
	)
}

// parseObjectKey parses the key of an object literal property or class
// member. Private names are only accepted directly inside a class body.
func (p *Parser) parseObjectKey() (ast.Expr, bool) {
	switch {
	case p.eat(scanner.TOK_BRACKET_L):
		key := withTokenContext(p, tokenContextExpr, p.parseAssignExpr)
		p.expect(scanner.TOK_BRACKET_R)
		return key, true
	case p.isOneOf(scanner.TOK_STRING, scanner.TOK_NUMBER, scanner.TOK_BIGINT):
		return p.parseLiteral(), false
	case p.is(scanner.TOK_PRIVATE_NAME) && p.has(ctxInClass):
		return p.parsePrivateName(), false
	}
	return p.parseIdentName(), false
}

func (p *Parser) parseFunctionExpr() *ast.FunctionExpr {
	start := p.pos()
	fn := &ast.Function{}
	fn.Async = p.eatWord("async")
	p.expectWord("function")
	fn.Generator = p.eat(scanner.TOK_STAR)

	var id *ast.Ident
	if p.isIdentRef() {
		id = p.parseIdent()
	}

	p.parseFunctionSignature(fn, false)
	fn.Body = p.parseFunctionBody()
	fn.Loc = p.span(start)

	return &ast.FunctionExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, ID: id, Function: fn}
}

// parseFunctionSignature fills in fn from its type parameters through its
// return type.
func (p *Parser) parseFunctionSignature(fn *ast.Function, allowParamProps bool) {
	fn.TypeParams = p.tryParseTypeParams(false, true)
	p.expect(scanner.TOK_PAREN_L)
	fn.Params = p.parseFormalParams(allowParamProps)
	p.expect(scanner.TOK_PAREN_R)
	fn.ReturnType = p.tryParseTypeOrTypePredicateAnn()
}

func (p *Parser) parseFunctionBody() *ast.BlockStmt {
	return withContext(p, 0, ctxTopLevel|ctxInDeclare|ctxInType, p.parseBlock)
}
