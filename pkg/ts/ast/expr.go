/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"math/big"
	"strconv"
)

type (
	Ident struct {
		BaseNode
		Name string
	}

	PrivateName struct {
		BaseNode
		Name string
	}

	NumberLit struct {
		BaseNode
		Val float64
		Raw string
	}

	BigIntLit struct {
		BaseNode
		Val *big.Int
		Raw string
	}

	StringLit struct {
		BaseNode
		Val string
		Raw string
	}

	BoolLit struct {
		BaseNode
		Val bool
	}

	NullLit struct {
		BaseNode
	}

	TemplateElement struct {
		BaseNode
		Raw    string
		Cooked string
		Tail   bool
	}

	TemplateLit struct {
		BaseNode
		Quasis []*TemplateElement
		Exprs  []Expr
	}

	ThisExpr struct {
		BaseNode
	}

	SuperExpr struct {
		BaseNode
	}

	// ArrayLit elements are nil for holes.
	ArrayLit struct {
		BaseNode
		Elems []Expr
	}

	SpreadElement struct {
		BaseNode
		Arg Expr
	}

	ObjectLit struct {
		BaseNode
		Props []Prop
	}

	KeyValueProp struct {
		BaseNode
		Key      Expr
		Computed bool
		Val      Expr
	}

	ShorthandProp struct {
		BaseNode
		Key *Ident
	}

	MethodProp struct {
		BaseNode
		Key      Expr
		Computed bool
		Function *Function
	}

	UnaryExpr struct {
		BaseNode
		Op  string
		Arg Expr
	}

	UpdateExpr struct {
		BaseNode
		Op     string
		Prefix bool
		Arg    Expr
	}

	BinaryExpr struct {
		BaseNode
		Op    string
		Left  Expr
		Right Expr
	}

	AssignExpr struct {
		BaseNode
		Op    string
		Left  Expr
		Right Expr
	}

	CondExpr struct {
		BaseNode
		Test Expr
		Cons Expr
		Alt  Expr
	}

	SeqExpr struct {
		BaseNode
		Exprs []Expr
	}

	CallExpr struct {
		BaseNode
		Callee   Expr
		TypeArgs *TypeArgs
		Args     []Expr
		Optional bool
	}

	// NewExpr has nil Args when the argument list is omitted.
	NewExpr struct {
		BaseNode
		Callee   Expr
		TypeArgs *TypeArgs
		Args     []Expr
	}

	MemberExpr struct {
		BaseNode
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
	}

	ParenExpr struct {
		BaseNode
		Expr Expr
	}

	// ArrowExpr has a Body that is either an Expr or a *BlockStmt.
	ArrowExpr struct {
		BaseNode
		Async      bool
		TypeParams *TypeParamDecl
		Params     []Pattern
		ReturnType *TypeAnnotation
		Body       Node
	}

	FunctionExpr struct {
		BaseNode
		ID       *Ident
		Function *Function
	}

	AsExpr struct {
		BaseNode
		Expr Expr
		Type Type
	}

	ConstAssertion struct {
		BaseNode
		Expr Expr
	}

	SatisfiesExpr struct {
		BaseNode
		Expr Expr
		Type Type
	}

	NonNullExpr struct {
		BaseNode
		Expr Expr
	}

	// TypeAssertion is the angle-bracket form "<T>expr".
	TypeAssertion struct {
		BaseNode
		Type Type
		Expr Expr
	}

	InstantiationExpr struct {
		BaseNode
		Expr     Expr
		TypeArgs *TypeArgs
	}

	// ExprWithTypeArgs is a heritage clause element such as "A.B<C>".
	ExprWithTypeArgs struct {
		BaseNode
		Expr     Expr
		TypeArgs *TypeArgs
	}

	// Function is shared by function declarations, function expressions
	// and methods. Body is nil for overloads and ambient declarations.
	Function struct {
		BaseNode
		Async      bool
		Generator  bool
		TypeParams *TypeParamDecl
		Params     []Pattern
		ReturnType *TypeAnnotation
		Body       *BlockStmt
	}
)

func (*Ident) exprNode()             {}
func (*PrivateName) exprNode()       {}
func (*NumberLit) exprNode()         {}
func (*BigIntLit) exprNode()         {}
func (*StringLit) exprNode()         {}
func (*BoolLit) exprNode()           {}
func (*NullLit) exprNode()           {}
func (*TemplateLit) exprNode()       {}
func (*ThisExpr) exprNode()          {}
func (*SuperExpr) exprNode()         {}
func (*ArrayLit) exprNode()          {}
func (*SpreadElement) exprNode()     {}
func (*ObjectLit) exprNode()         {}
func (*UnaryExpr) exprNode()         {}
func (*UpdateExpr) exprNode()        {}
func (*BinaryExpr) exprNode()        {}
func (*AssignExpr) exprNode()        {}
func (*CondExpr) exprNode()          {}
func (*SeqExpr) exprNode()           {}
func (*CallExpr) exprNode()          {}
func (*NewExpr) exprNode()           {}
func (*MemberExpr) exprNode()        {}
func (*ParenExpr) exprNode()         {}
func (*ArrowExpr) exprNode()         {}
func (*FunctionExpr) exprNode()      {}
func (*AsExpr) exprNode()            {}
func (*ConstAssertion) exprNode()    {}
func (*SatisfiesExpr) exprNode()     {}
func (*NonNullExpr) exprNode()       {}
func (*TypeAssertion) exprNode()     {}
func (*InstantiationExpr) exprNode() {}

func (*NumberLit) literal() {}
func (*BigIntLit) literal() {}
func (*StringLit) literal() {}
func (*BoolLit) literal()   {}

func (*Ident) entityName()     {}
func (*Ident) typeQueryExpr()  {}
func (*Ident) predicateParam() {}
func (*Ident) moduleName()     {}
func (*Ident) moduleRef()      {}
func (*Ident) enumMemberID()   {}
func (*StringLit) moduleName() {}
func (*StringLit) enumMemberID() {}

func (*KeyValueProp) propNode()  {}
func (*ShorthandProp) propNode() {}
func (*MethodProp) propNode()    {}
func (*SpreadElement) propNode() {}

func (i *Ident) Value() string {
	return i.Name
}

func (p *PrivateName) Value() string {
	return "#" + p.Name
}

func (n *NumberLit) Value() string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

func (b *BigIntLit) Value() string {
	if b.Raw != "" {
		return b.Raw
	}
	return b.Val.String() + "n"
}

func (s *StringLit) Value() string {
	if s.Raw != "" {
		return s.Raw
	}
	return strconv.Quote(s.Val)
}

func (b *BoolLit) Value() string {
	return strconv.FormatBool(b.Val)
}

func (*NullLit) Value() string {
	return "null"
}

func (t *TemplateElement) Value() string {
	return t.Raw
}

func (*ThisExpr) Value() string {
	return "this"
}

func (*SuperExpr) Value() string {
	return "super"
}

func (*SpreadElement) Value() string {
	return "..."
}

func (u *UnaryExpr) Value() string {
	return u.Op
}

func (u *UpdateExpr) Value() string {
	if u.Prefix {
		return u.Op + "x"
	}
	return "x" + u.Op
}

func (b *BinaryExpr) Value() string {
	return b.Op
}

func (a *AssignExpr) Value() string {
	return a.Op
}

func (m *MemberExpr) Value() string {
	if m.Optional {
		return "?."
	}
	return ""
}

func (c *CallExpr) Value() string {
	if c.Optional {
		return "?."
	}
	return ""
}

func (a *ArrowExpr) Value() string {
	if a.Async {
		return "async"
	}
	return ""
}

func (f *FunctionExpr) Value() string {
	if f.ID != nil {
		return f.ID.Name
	}
	return ""
}
