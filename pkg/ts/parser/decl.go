/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"math"
	"strconv"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

// reservedTypeNames cannot name an interface.
var reservedTypeNames = map[string]bool{
	"string": true, "null": true, "number": true, "object": true, "any": true, "unknown": true,
	"boolean": true, "bigint": true, "symbol": true, "void": true, "never": true, "intrinsic": true,
}

func (p *Parser) parseInterfaceDecl(start int) *ast.InterfaceDecl {
	id := p.parseIdentName()
	if reservedTypeNames[id.Name] {
		p.emit(id.Loc, codeReservedInterfaceName, "Interface name cannot be '"+id.Name+"'.")
	}

	typeParams := p.tryParseTypeParams(true, false)

	var extends []*ast.ExprWithTypeArgs
	if p.eatWord("extends") {
		extends = p.parseHeritageClause()
	}

	if p.isWord("extends") {
		p.emit(p.cur().Location, codeInterfaceExtendsTwice, "'extends' clause already seen.")
		for !p.isOneOf(scanner.TOK_EOF, scanner.TOK_BRACE_L) {
			p.next()
		}
	}

	bodyStart := p.pos()
	members := inType(p, p.parseObjectTypeMembers)

	return &ast.InterfaceDecl{
		BaseNode:   ast.BaseNode{Loc: p.span(start)},
		ID:         id,
		TypeParams: typeParams,
		Extends:    extends,
		Body:       &ast.InterfaceBody{BaseNode: ast.BaseNode{Loc: p.span(bodyStart)}, Body: members},
	}
}

func (p *Parser) parseHeritageClause() []*ast.ExprWithTypeArgs {
	return parseDelimitedList(p, listHeritageClause, p.parseHeritageClauseElement)
}

// parseHeritageClauseElement parses an "extends" or "implements" entry,
// which must be a possibly dotted name with optional type arguments.
func (p *Parser) parseHeritageClauseElement() *ast.ExprWithTypeArgs {
	start := p.pos()
	var expr ast.Expr = p.parseIdentName()
	expr = p.parseSubscripts(expr, true)

	switch e := expr.(type) {
	case *ast.InstantiationExpr:
		return &ast.ExprWithTypeArgs{BaseNode: ast.BaseNode{Loc: e.Loc}, Expr: e.Expr, TypeArgs: e.TypeArgs}
	case *ast.Ident, *ast.MemberExpr:
	default:
		p.emit(p.span(start), codeInvalidHeritage, "An interface can only extend an identifier/qualified-name with optional type arguments.")
	}

	var typeArgs *ast.TypeArgs
	if p.is(scanner.TOK_LESS) {
		typeArgs = p.parseTypeArgs()
	}
	return &ast.ExprWithTypeArgs{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: expr, TypeArgs: typeArgs}
}

func (p *Parser) parseTypeAliasDecl(start int) *ast.TypeAliasDecl {
	id := p.parseIdentName()
	typeParams := p.tryParseTypeParams(true, false)
	p.expect(scanner.TOK_EQ)
	t := inType(p, p.parseType)
	p.semicolon()

	return &ast.TypeAliasDecl{
		BaseNode:   ast.BaseNode{Loc: p.span(start)},
		ID:         id,
		TypeParams: typeParams,
		Type:       t,
	}
}

func (p *Parser) parseEnumDecl(start int, isConst bool) *ast.EnumDecl {
	id := p.parseIdentName()
	p.expect(scanner.TOK_BRACE_L)
	members := parseDelimitedList(p, listEnumMembers, p.parseEnumMember)
	p.expect(scanner.TOK_BRACE_R)

	return &ast.EnumDecl{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		Const:    isConst,
		ID:       id,
		Members:  members,
	}
}

func (p *Parser) parseEnumMember() *ast.EnumMember {
	start := p.pos()

	var id ast.EnumMemberID
	switch tok := p.cur(); scanner.TypeOf(tok) {
	case scanner.TOK_STRING:
		id = p.parseStringLit()
	case scanner.TOK_NUMBER:
		p.next()
		loc := p.span(start)
		p.emit(loc, codeNumericEnumMember, "An enum member cannot have a numeric name.")
		id = &ast.StringLit{
			BaseNode: ast.BaseNode{Loc: loc},
			Val:      numericMemberName(scanner.NumberValue(tok.Lexeme)),
			Raw:      `"` + tok.Lexeme + `"`,
		}
	case scanner.TOK_BRACKET_L:
		p.next()
		p.parseExpr()
		p.emit(p.span(start), codeComputedEnumMember, "Computed property names are not allowed in enums.")
		p.expect(scanner.TOK_BRACKET_R)
		id = &ast.Ident{BaseNode: ast.BaseNode{Loc: p.span(start)}}
	default:
		id = p.parseIdentName()
	}

	var init ast.Expr
	switch {
	case p.eat(scanner.TOK_EQ):
		init = p.parseAssignExpr()
	case p.isOneOf(scanner.TOK_COMMA, scanner.TOK_BRACE_R):
	default:
		at := p.pos()
		p.next()
		p.state.commaInserted = true
		p.emit(parse.Location{Start: at, End: at}, codeExpected, "',' expected.")
	}

	return &ast.EnumMember{BaseNode: ast.BaseNode{Loc: p.span(start)}, ID: id, Init: init}
}

// numericMemberName spells a numeric enum member name in plain decimal,
// never in exponent form.
func numericMemberName(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseModuleBlock parses a namespace body, which may hold imports and
// exports like a module.
func (p *Parser) parseModuleBlock() *ast.ModuleBlock {
	start := p.pos()
	p.expect(scanner.TOK_BRACE_L)
	body := withContext(p, ctxTopLevel, 0, func() []ast.Stmt {
		return p.parseBlockBody(scanner.TOK_BRACE_R)
	})
	p.expect(scanner.TOK_BRACE_R)
	return &ast.ModuleBlock{BaseNode: ast.BaseNode{Loc: p.span(start)}, Body: body}
}

// parseModuleOrNamespaceDecl parses "A.B.C { ... }". Each dotted segment
// after the first becomes a nested namespace declaration.
func (p *Parser) parseModuleOrNamespaceDecl(start int) *ast.ModuleDecl {
	id := p.parseIdentName()
	body := p.parseNamespaceBody()
	return &ast.ModuleDecl{
		BaseNode: ast.BaseNode{Loc: p.span(start)},
		ID:       id,
		Body:     body,
	}
}

func (p *Parser) parseNamespaceBody() ast.NamespaceBody {
	if !p.eat(scanner.TOK_DOT) {
		return p.parseModuleBlock()
	}

	start := p.pos()
	id := p.parseIdentName()
	body := p.parseNamespaceBody()
	return &ast.NamespaceDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, ID: id, Body: body}
}

// parseAmbientExternalModuleDecl parses "global { ... }" or
// "'name' { ... }". The body may be omitted.
func (p *Parser) parseAmbientExternalModuleDecl(start int) *ast.ModuleDecl {
	decl := &ast.ModuleDecl{}
	switch {
	case p.isWord("global"):
		decl.Global = true
		decl.ID = p.parseIdentName()
	case p.is(scanner.TOK_STRING):
		decl.ID = p.parseStringLit()
	default:
		p.unexpected("global or a string literal")
	}

	if p.is(scanner.TOK_BRACE_L) {
		decl.Body = p.parseModuleBlock()
	} else {
		p.semicolon()
	}

	decl.Loc = p.span(start)
	return decl
}

// parseImportEqualsDecl parses the rest of "import id = ref;".
func (p *Parser) parseImportEqualsDecl(start int, id *ast.Ident, isExport, typeOnly bool) *ast.ImportEqualsDecl {
	p.expect(scanner.TOK_EQ)
	ref := p.parseModuleRef()
	p.semicolon()

	return &ast.ImportEqualsDecl{
		BaseNode:  ast.BaseNode{Loc: p.span(start)},
		Export:    isExport,
		TypeOnly:  typeOnly,
		ID:        id,
		ModuleRef: ref,
	}
}

func (p *Parser) parseModuleRef() ast.ModuleRef {
	if !p.isWord("require") || !p.peekIs(scanner.TOK_PAREN_L) {
		return p.parseEntityName(false).(ast.ModuleRef)
	}

	start := p.pos()
	p.expectWord("require")
	p.expect(scanner.TOK_PAREN_L)
	if !p.is(scanner.TOK_STRING) {
		p.unexpected("a string literal")
	}
	str := p.parseStringLit()
	p.expect(scanner.TOK_PAREN_R)
	return &ast.ExternalModuleRef{BaseNode: ast.BaseNode{Loc: p.span(start)}, Expr: str}
}

// parseTsExprStmt handles a statement that began with the identifier id,
// which may turn out to be a contextual keyword introducing a
// declaration. It returns nil when id is an ordinary expression.
func (p *Parser) parseTsExprStmt(id *ast.Ident) ast.Decl {
	start := id.Loc.Start

	switch id.Name {
	case "declare":
		if decl := p.tryParseDeclare(start); decl != nil {
			return decl
		}
		return nil
	case "global":
		if !p.is(scanner.TOK_BRACE_L) {
			return nil
		}
		body := p.parseModuleBlock()
		return &ast.ModuleDecl{BaseNode: ast.BaseNode{Loc: p.span(start)}, Global: true, ID: id, Body: body}
	}

	if decl := p.parseTsDecl(start, id.Name, false); decl != nil {
		return decl
	}
	return nil
}

// tryParseDeclare parses the declaration following "declare" and marks it
// ambient, widening its span to start.
func (p *Parser) tryParseDeclare(start int) ast.Declarable {
	if p.has(ctxInDeclare) {
		p.emit(p.span(start), codeDeclareInAmbient, "A 'declare' modifier cannot be used in an already ambient context.")
	}

	decl := withContext(p, ctxInDeclare, 0, func() ast.Declarable {
		switch {
		case p.isWord("function"):
			return p.parseFnDecl(p.pos(), false)
		case p.isWord("class"):
			return p.parseClassDecl(start, false)
		case p.isWord("const") && p.peekIsWord("enum"):
			p.next()
			p.next()
			return p.parseEnumDecl(start, true)
		case p.isWord("const") || p.isWord("var") || p.isWord("let"):
			return p.parseVarDecl()
		case p.isWord("global"):
			return p.parseAmbientExternalModuleDecl(start)
		case p.isIdentName():
			if decl := p.parseTsDecl(start, p.cur().Lexeme, true); decl != nil {
				return decl
			}
		}
		return nil
	})

	if decl != nil {
		decl.MarkDeclare(start)
	}
	return decl
}

// parseTsDecl dispatches on a contextual keyword. With next the keyword is
// still the current token; otherwise it has been consumed already.
func (p *Parser) parseTsDecl(start int, word string, next bool) ast.Declarable {
	bump := func() {
		if next {
			p.next()
		}
	}

	switch word {
	case "abstract":
		if next || (p.isWord("class") && !p.newlineBefore()) {
			bump()
			return p.parseClassDecl(start, true)
		}

	case "enum":
		if next || p.isIdentRef() {
			bump()
			return p.parseEnumDecl(start, false)
		}

	case "interface":
		if next || p.isIdentRef() {
			bump()
			return p.parseInterfaceDecl(start)
		}

	case "module":
		if p.newlineBefore() {
			return nil
		}
		bump()
		if p.is(scanner.TOK_STRING) {
			return p.parseAmbientExternalModuleDecl(start)
		}
		if next || p.isIdentRef() {
			return p.parseModuleOrNamespaceDecl(start)
		}

	case "namespace":
		if next || p.isIdentRef() {
			bump()
			return p.parseModuleOrNamespaceDecl(start)
		}

	case "type":
		if next || (!p.newlineBefore() && p.isIdentRef()) {
			bump()
			return p.parseTypeAliasDecl(start)
		}
	}
	return nil
}
