/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

type (
	BindingIdent struct {
		BaseNode
		ID       *Ident
		Optional bool
		TypeAnn  *TypeAnnotation
	}

	// ArrayPattern elements are nil for holes.
	ArrayPattern struct {
		BaseNode
		Elems    []Pattern
		Optional bool
		TypeAnn  *TypeAnnotation
	}

	ObjectPattern struct {
		BaseNode
		Props    []ObjectPatProp
		Optional bool
		TypeAnn  *TypeAnnotation
	}

	KeyValuePatProp struct {
		BaseNode
		Key      Expr
		Computed bool
		Val      Pattern
	}

	// AssignPatProp is a shorthand property, "{ a }" or "{ a = 1 }".
	AssignPatProp struct {
		BaseNode
		Key     *Ident
		Default Expr
	}

	RestPattern struct {
		BaseNode
		Arg     Pattern
		TypeAnn *TypeAnnotation
	}

	AssignPattern struct {
		BaseNode
		Left  Pattern
		Right Expr
	}

	// ParamProp is a constructor parameter with an accessibility or
	// readonly modifier.
	ParamProp struct {
		BaseNode
		Accessibility string
		Readonly      bool
		Override      bool
		Param         Pattern
	}
)

func (*BindingIdent) patternNode()  {}
func (*ArrayPattern) patternNode()  {}
func (*ObjectPattern) patternNode() {}
func (*RestPattern) patternNode()   {}
func (*AssignPattern) patternNode() {}
func (*ParamProp) patternNode()     {}

func (*KeyValuePatProp) objectPatProp() {}
func (*AssignPatProp) objectPatProp()   {}
func (*RestPattern) objectPatProp()     {}

func (b *BindingIdent) Value() string {
	if b.Optional {
		return b.ID.Name + "?"
	}
	return b.ID.Name
}

func (a *ArrayPattern) Value() string {
	return flags("?", a.Optional)
}

func (o *ObjectPattern) Value() string {
	return flags("?", o.Optional)
}

func (*RestPattern) Value() string {
	return "..."
}

func (*AssignPattern) Value() string {
	return "="
}

func (p *ParamProp) Value() string {
	return flags(p.Accessibility, p.Accessibility != "", "override", p.Override, "readonly", p.Readonly)
}
