/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

type (
	BlockStmt struct {
		BaseNode
		Stmts []Stmt
	}

	EmptyStmt struct {
		BaseNode
	}

	ExprStmt struct {
		BaseNode
		Expr Expr
	}

	ReturnStmt struct {
		BaseNode
		Arg Expr
	}

	ThrowStmt struct {
		BaseNode
		Arg Expr
	}

	IfStmt struct {
		BaseNode
		Test Expr
		Cons Stmt
		Alt  Stmt
	}

	ImportSpecifier struct {
		BaseNode
		// Kind is "default", "namespace" or "named".
		Kind     string
		Imported *Ident
		Local    *Ident
	}

	ImportDecl struct {
		BaseNode
		TypeOnly   bool
		Specifiers []*ImportSpecifier
		Src        *StringLit
	}

	ExportSpecifier struct {
		BaseNode
		Local    *Ident
		Exported *Ident
	}

	ExportNamed struct {
		BaseNode
		TypeOnly   bool
		Specifiers []*ExportSpecifier
		Src        *StringLit
	}

	ExportDecl struct {
		BaseNode
		Decl Decl
	}

	ExportDefaultExpr struct {
		BaseNode
		Expr Expr
	}

	// ExportAssignment is "export = expr".
	ExportAssignment struct {
		BaseNode
		Expr Expr
	}

	VarDeclarator struct {
		BaseNode
		Name     Pattern
		Definite bool
		Init     Expr
	}

	VarDecl struct {
		BaseNode
		Kind    string
		Declare bool
		Decls   []*VarDeclarator
	}

	FnDecl struct {
		BaseNode
		Declare  bool
		ID       *Ident
		Function *Function
	}

	Class struct {
		BaseNode
		Abstract      bool
		TypeParams    *TypeParamDecl
		SuperClass    Expr
		SuperTypeArgs *TypeArgs
		Implements    []*ExprWithTypeArgs
		Members       []ClassMember
	}

	ClassDecl struct {
		BaseNode
		Declare bool
		ID      *Ident
		Class   *Class
	}

	Constructor struct {
		BaseNode
		Accessibility string
		Params        []Pattern
		Body          *BlockStmt
	}

	ClassMethod struct {
		BaseNode
		Key           Expr
		Computed      bool
		// Kind is "method", "get" or "set".
		Kind          string
		Accessibility string
		Static        bool
		Abstract      bool
		Override      bool
		Optional      bool
		Function      *Function
	}

	ClassProp struct {
		BaseNode
		Key           Expr
		Computed      bool
		Accessibility string
		Static        bool
		Readonly      bool
		Abstract      bool
		Declare       bool
		Override      bool
		Optional      bool
		Definite      bool
		TypeAnn       *TypeAnnotation
		Init          Expr
	}

	InterfaceBody struct {
		BaseNode
		Body []TypeElement
	}

	InterfaceDecl struct {
		BaseNode
		Declare    bool
		ID         *Ident
		TypeParams *TypeParamDecl
		Extends    []*ExprWithTypeArgs
		Body       *InterfaceBody
	}

	TypeAliasDecl struct {
		BaseNode
		Declare    bool
		ID         *Ident
		TypeParams *TypeParamDecl
		Type       Type
	}

	EnumMember struct {
		BaseNode
		ID   EnumMemberID
		Init Expr
	}

	EnumDecl struct {
		BaseNode
		Declare bool
		Const   bool
		ID      *Ident
		Members []*EnumMember
	}

	ModuleBlock struct {
		BaseNode
		Body []Stmt
	}

	// ModuleDecl is "namespace A {}", "module A {}", "module 'a' {}" or
	// "global {}". Body is nil for "declare module 'a';".
	ModuleDecl struct {
		BaseNode
		Declare bool
		Global  bool
		ID      ModuleName
		Body    NamespaceBody
	}

	// NamespaceDecl is a nested segment of a dotted namespace name.
	NamespaceDecl struct {
		BaseNode
		Declare bool
		Global  bool
		ID      *Ident
		Body    NamespaceBody
	}

	ExternalModuleRef struct {
		BaseNode
		Expr *StringLit
	}

	ImportEqualsDecl struct {
		BaseNode
		Export    bool
		TypeOnly  bool
		ID        *Ident
		ModuleRef ModuleRef
	}
)

func (*BlockStmt) stmtNode()         {}
func (*EmptyStmt) stmtNode()         {}
func (*ExprStmt) stmtNode()          {}
func (*ReturnStmt) stmtNode()        {}
func (*ThrowStmt) stmtNode()         {}
func (*IfStmt) stmtNode()            {}
func (*ImportDecl) stmtNode()        {}
func (*ExportNamed) stmtNode()       {}
func (*ExportDecl) stmtNode()        {}
func (*ExportDefaultExpr) stmtNode() {}
func (*ExportAssignment) stmtNode()  {}
func (*VarDecl) stmtNode()           {}
func (*FnDecl) stmtNode()            {}
func (*ClassDecl) stmtNode()         {}
func (*InterfaceDecl) stmtNode()     {}
func (*TypeAliasDecl) stmtNode()     {}
func (*EnumDecl) stmtNode()          {}
func (*ModuleDecl) stmtNode()        {}
func (*ImportEqualsDecl) stmtNode()  {}

func (*VarDecl) declNode()       {}
func (*FnDecl) declNode()        {}
func (*ClassDecl) declNode()     {}
func (*InterfaceDecl) declNode() {}
func (*TypeAliasDecl) declNode() {}
func (*EnumDecl) declNode()      {}
func (*ModuleDecl) declNode()    {}

func (*ModuleBlock) namespaceBody()   {}
func (*NamespaceDecl) namespaceBody() {}

func (*ExternalModuleRef) moduleRef() {}

func (*Constructor) classMember() {}
func (*ClassMethod) classMember() {}
func (*ClassProp) classMember()   {}

func (d *VarDecl) MarkDeclare(start int) {
	d.Declare = true
	d.SetStart(start)
}

func (d *FnDecl) MarkDeclare(start int) {
	d.Declare = true
	d.SetStart(start)
}

func (d *ClassDecl) MarkDeclare(start int) {
	d.Declare = true
	d.SetStart(start)
}

func (d *InterfaceDecl) MarkDeclare(start int) {
	d.Declare = true
	d.SetStart(start)
}

func (d *TypeAliasDecl) MarkDeclare(start int) {
	d.Declare = true
	d.SetStart(start)
}

func (d *EnumDecl) MarkDeclare(start int) {
	d.Declare = true
	d.SetStart(start)
}

// MarkDeclare marks only the outer declaration. Nested namespace segments
// keep their own flag.
func (d *ModuleDecl) MarkDeclare(start int) {
	d.Declare = true
	d.SetStart(start)
}

func withDeclare(declare bool, value string) string {
	if declare {
		return "declare " + value
	}
	return value
}

func (d *VarDecl) Value() string {
	return withDeclare(d.Declare, d.Kind)
}

func (d *VarDeclarator) Value() string {
	return flags("!", d.Definite)
}

func (d *FnDecl) Value() string {
	return withDeclare(d.Declare, d.ID.Name)
}

func (d *ClassDecl) Value() string {
	return withDeclare(d.Declare, d.ID.Name)
}

func (c *Class) Value() string {
	return flags("abstract", c.Abstract)
}

func (c *Constructor) Value() string {
	return c.Accessibility
}

func (m *ClassMethod) Value() string {
	return flags(m.Accessibility, m.Accessibility != "", "static", m.Static, "abstract", m.Abstract,
		"override", m.Override, m.Kind, m.Kind != "method", "?", m.Optional)
}

func (p *ClassProp) Value() string {
	return flags(p.Accessibility, p.Accessibility != "", "static", p.Static, "declare", p.Declare,
		"abstract", p.Abstract, "override", p.Override, "readonly", p.Readonly, "?", p.Optional, "!", p.Definite)
}

func (d *InterfaceDecl) Value() string {
	return withDeclare(d.Declare, d.ID.Name)
}

func (d *TypeAliasDecl) Value() string {
	return withDeclare(d.Declare, d.ID.Name)
}

func (d *EnumDecl) Value() string {
	name := d.ID.Name
	if d.Const {
		name = "const " + name
	}
	return withDeclare(d.Declare, name)
}

func (d *ModuleDecl) Value() string {
	name := "global"
	if !d.Global {
		name = d.ID.Value()
	}
	return withDeclare(d.Declare, name)
}

func (d *NamespaceDecl) Value() string {
	return withDeclare(d.Declare, d.ID.Name)
}

func (d *ImportEqualsDecl) Value() string {
	return flags("export", d.Export, "type", d.TypeOnly, d.ID.Name, true)
}

func (d *ImportDecl) Value() string {
	return flags("type", d.TypeOnly, d.Src.Raw, true)
}

func (s *ImportSpecifier) Value() string {
	return s.Kind
}

func (e *ExportNamed) Value() string {
	if e.Src != nil {
		return flags("type", e.TypeOnly, e.Src.Raw, true)
	}
	return flags("type", e.TypeOnly)
}
