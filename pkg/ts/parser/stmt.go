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

func (p *Parser) parseStatement() ast.Stmt {
	defer p.enter()()

	start := p.pos()
	tok := p.cur()

	switch scanner.TypeOf(tok) {
	case scanner.TOK_SEMICOLON:
		p.next()
		return &ast.EmptyStmt{BaseNode: ast.BaseNode{Loc: tok.Location}}

	case scanner.TOK_BRACE_L:
		return withContext(p, 0, ctxTopLevel, p.parseBlock)

	case scanner.TOK_IDENTIFIER:
		switch tok.Lexeme {
		case "const":
			if p.peekIsWord("enum") {
				p.next()
				p.next()
				return p.parseEnumDecl(start, true)
			}
			return p.parseVarDecl()
		case "var", "let":
			return p.parseVarDecl()
		case "enum":
			p.next()
			return p.parseEnumDecl(start, false)
		case "function":
			return p.parseFnDecl(start, false)
		case "async":
			if p.peekIsWord("function") && !p.peek().NewlineBefore {
				return p.parseFnDecl(start, true)
			}
		case "class":
			return p.parseClassDecl(start, false)
		case "if":
			return p.parseIfStmt()
		case "return":
			return p.parseReturnStmt()
		case "throw":
			return p.parseThrowStmt()
		case "import":
			if !p.peekIs(scanner.TOK_PAREN_L) && !p.peekIs(scanner.TOK_DOT) {
				p.requireTopLevel("import")
				return p.parseImport(start)
			}
		case "export":
			p.requireTopLevel("export")
			return p.parseExport(start)
		}

		if isIdentRef(tok) {
			saved := p.state
			id := identFrom(p.next())
			if decl := p.parseTsExprStmt(id); decl != nil {
				return decl
			}
			p.state = saved
		}
	}

	return p.parseExprStmt()
}

func (p *Parser) requireTopLevel(keyword string) {
	if !p.has(ctxTopLevel) {
		p.fail(p.cur().Location, "", "'"+keyword+"' declarations may only appear at the top level of a module or namespace")
	}
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.pos()
	p.expect(scanner.TOK_BRACE_L)
	stmts := p.parseBlockBody(scanner.TOK_BRACE_R)
	p.expect(scanner.TOK_BRACE_R)
	return &ast.BlockStmt{BaseNode: ast.BaseNode{Loc: p.span(start)}, Stmts: stmts}
}

// parseBlockBody parses statements until end, which is left unconsumed.
func (p *Parser) parseBlockBody(end scanner.TokenType) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isOneOf(end, scanner.TOK_EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	start := p.pos()
	expr := p.parseExpr()
	p.semicolon()
	return &ast.ExprStmt{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.pos()
	p.expectWord("if")
	p.expect(scanner.TOK_PAREN_L)
	test := p.parseExpr()
	p.expect(scanner.TOK_PAREN_R)

	stmt := &ast.IfStmt{Test: test}
	stmt.Cons = withContext(p, 0, ctxTopLevel, p.parseStatement)
	if p.eatWord("else") {
		stmt.Alt = withContext(p, 0, ctxTopLevel, p.parseStatement)
	}
	stmt.Loc = p.span(start)
	return stmt
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.pos()
	p.expectWord("return")

	var arg ast.Expr
	if !p.canInsertSemicolon() {
		arg = p.parseExpr()
	}
	p.semicolon()
	return &ast.ReturnStmt{BaseNode: ast.BaseNode{Loc: p.span(start)}, Arg: arg}
}

func (p *Parser) parseThrowStmt() *ast.ThrowStmt {
	start := p.pos()
	p.expectWord("throw")
	if p.newlineBefore() {
		p.fail(p.cur().Location, "", "line break not permitted after 'throw'")
	}
	arg := p.parseExpr()
	p.semicolon()
	return &ast.ThrowStmt{BaseNode: ast.BaseNode{Loc: p.span(start)}, Arg: arg}
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.pos()
	kind := p.next().Lexeme

	var decls []*ast.VarDeclarator
	for {
		decls = append(decls, p.parseVarDeclarator())
		if !p.eat(scanner.TOK_COMMA) {
			break
		}
	}
	p.semicolon()

	return &ast.VarDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, Kind: kind, Decls: decls}
}

func (p *Parser) parseVarDeclarator() *ast.VarDeclarator {
	start := p.pos()
	name := p.parseBindingPatOrIdent()

	definite := false
	if _, ok := name.(*ast.BindingIdent); ok && p.is(scanner.TOK_BANG) && !p.newlineBefore() {
		p.next()
		definite = true
	}

	if typeAnn := p.tryParseTypeAnn(); typeAnn != nil {
		annotate(name, p.span(start), false, typeAnn)
	}

	var init ast.Expr
	if p.eat(scanner.TOK_EQ) {
		init = p.parseAssignExpr()
	}

	return &ast.VarDeclarator{BaseNode: ast.BaseNode{Loc: p.span(start)}, Name: name, Definite: definite, Init: init}
}

// parseFnDecl parses a function declaration. Without a body it is an
// overload or ambient signature.
func (p *Parser) parseFnDecl(start int, async bool) *ast.FnDecl {
	fn := &ast.Function{Async: async}
	if async {
		p.expectWord("async")
	}
	p.expectWord("function")
	fn.Generator = p.eat(scanner.TOK_STAR)
	id := p.parseIdent()

	p.parseFunctionSignature(fn, false)
	if p.is(scanner.TOK_BRACE_L) {
		fn.Body = p.parseFunctionBody()
	} else {
		p.semicolon()
	}
	fn.Loc = p.span(start)

	return &ast.FnDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, ID: id, Function: fn}
}

func (p *Parser) parseImport(start int) ast.Stmt {
	p.expectWord("import")

	if p.is(scanner.TOK_STRING) {
		src := p.parseStringLit()
		p.semicolon()
		return &ast.ImportDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, Src: src}
	}

	typeOnly := p.isWord("type") && lookAhead(p, p.isTypeOnlyImport)
	if typeOnly {
		p.next()
	}

	var specifiers []*ast.ImportSpecifier
	if p.isIdentRef() {
		local := p.parseIdent()
		if p.is(scanner.TOK_EQ) {
			return p.parseImportEqualsDecl(start, local, false, typeOnly)
		}

		specifiers = append(specifiers, &ast.ImportSpecifier{BaseNode: ast.BaseNode{Loc: local.Loc}, Kind: "default", Local: local})
		if p.eat(scanner.TOK_COMMA) {
			specifiers = append(specifiers, p.parseImportBindings()...)
		}
	} else {
		specifiers = p.parseImportBindings()
	}

	p.expectWord("from")
	src := p.parseStringLit()
	p.semicolon()

	return &ast.ImportDecl{
		BaseNode:   ast.BaseNode{Loc: p.span(start)},
		TypeOnly:   typeOnly,
		Specifiers: specifiers,
		Src:        src,
	}
}

// isTypeOnlyImport reports whether the 'type' after 'import' is a modifier
// rather than the name of a default import.
func (p *Parser) isTypeOnlyImport() bool {
	p.next()
	if p.isOneOf(scanner.TOK_BRACE_L, scanner.TOK_STAR) {
		return true
	}
	if !p.isIdentName() {
		return false
	}
	if !p.isWord("from") {
		return true
	}
	return p.peekIsWord("from")
}

// parseImportBindings parses "* as ns" or "{ a, b as c }".
func (p *Parser) parseImportBindings() []*ast.ImportSpecifier {
	if p.is(scanner.TOK_STAR) {
		start := p.pos()
		p.next()
		p.expectWord("as")
		local := p.parseIdent()
		return []*ast.ImportSpecifier{{BaseNode: ast.BaseNode{Loc: p.span(start)}, Kind: "namespace", Local: local}}
	}

	p.expect(scanner.TOK_BRACE_L)
	var specifiers []*ast.ImportSpecifier
	for !p.is(scanner.TOK_BRACE_R) {
		start := p.pos()
		imported := p.parseIdentName()
		local := imported
		if p.eatWord("as") {
			local = p.parseIdent()
		}
		specifiers = append(specifiers, &ast.ImportSpecifier{
			BaseNode: ast.BaseNode{Loc: p.span(start)},
			Kind:     "named",
			Imported: imported,
			Local:    local,
		})
		if !p.is(scanner.TOK_BRACE_R) {
			p.expect(scanner.TOK_COMMA)
		}
	}
	p.expect(scanner.TOK_BRACE_R)
	return specifiers
}

func (p *Parser) parseExport(start int) ast.Stmt {
	p.expectWord("export")

	switch {
	case p.eat(scanner.TOK_EQ):
		expr := p.parseExpr()
		p.semicolon()
		return &ast.ExportAssignment{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr}

	case p.eatWord("default"):
		var expr ast.Expr
		if p.isWord("function") || (p.isWord("async") && p.peekIsWord("function")) {
			expr = p.parseFunctionExpr()
		} else {
			expr = p.parseAssignExpr()
			p.semicolon()
		}
		return &ast.ExportDefaultExpr{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr}

	case p.eatWord("import"):
		id := p.parseIdent()
		return p.parseImportEqualsDecl(start, id, true, false)

	case p.isWord("type") && p.peekIs(scanner.TOK_BRACE_L):
		p.next()
		return p.parseExportNamed(start, true)

	case p.is(scanner.TOK_BRACE_L):
		return p.parseExportNamed(start, false)
	}

	stmt := p.parseStatement()
	decl, ok := stmt.(ast.Decl)
	if !ok {
		p.fail(stmt.Span(), "", "expected a declaration after 'export'")
	}
	return &ast.ExportDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, Decl: decl}
}

func (p *Parser) parseExportNamed(start int, typeOnly bool) *ast.ExportNamed {
	p.expect(scanner.TOK_BRACE_L)

	var specifiers []*ast.ExportSpecifier
	for !p.is(scanner.TOK_BRACE_R) {
		specStart := p.pos()
		local := p.parseIdentName()
		exported := local
		if p.eatWord("as") {
			exported = p.parseIdentName()
		}
		specifiers = append(specifiers, &ast.ExportSpecifier{
			BaseNode: ast.BaseNode{Loc: p.span(specStart)},
			Local:    local,
			Exported: exported,
		})
		if !p.is(scanner.TOK_BRACE_R) {
			p.expect(scanner.TOK_COMMA)
		}
	}
	p.expect(scanner.TOK_BRACE_R)

	var src *ast.StringLit
	if p.eatWord("from") {
		src = p.parseStringLit()
	}
	p.semicolon()

	return &ast.ExportNamed{
		BaseNode:   ast.BaseNode{Loc: p.span(start)},
		TypeOnly:   typeOnly,
		Specifiers: specifiers,
		Src:        src,
	}
}
