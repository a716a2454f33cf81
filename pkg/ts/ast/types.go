/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import "strings"

type KeywordKind int

const (
	KeywordAny KeywordKind = iota
	KeywordUnknown
	KeywordNumber
	KeywordObject
	KeywordBoolean
	KeywordBigInt
	KeywordString
	KeywordSymbol
	KeywordVoid
	KeywordUndefined
	KeywordNull
	KeywordNever
	KeywordIntrinsic
)

var keywordKinds = map[string]KeywordKind{
	"any":       KeywordAny,
	"unknown":   KeywordUnknown,
	"number":    KeywordNumber,
	"object":    KeywordObject,
	"boolean":   KeywordBoolean,
	"bigint":    KeywordBigInt,
	"string":    KeywordString,
	"symbol":    KeywordSymbol,
	"void":      KeywordVoid,
	"undefined": KeywordUndefined,
	"null":      KeywordNull,
	"never":     KeywordNever,
	"intrinsic": KeywordIntrinsic,
}

// LookupKeyword returns the keyword type spelled by word.
func LookupKeyword(word string) (KeywordKind, bool) {
	k, ok := keywordKinds[word]
	return k, ok
}

func (k KeywordKind) String() string {
	for word, kind := range keywordKinds {
		if kind == k {
			return word
		}
	}
	return "unknown"
}

// TruePlusMinus is the state of a mapped type modifier.
type TruePlusMinus int

const (
	ModifierNone TruePlusMinus = iota
	ModifierTrue
	ModifierPlus
	ModifierMinus
)

func (m TruePlusMinus) String() string {
	switch m {
	case ModifierTrue:
		return "true"
	case ModifierPlus:
		return "+"
	case ModifierMinus:
		return "-"
	}
	return ""
}

func (m TruePlusMinus) prefix(word string) string {
	switch m {
	case ModifierTrue:
		return word
	case ModifierPlus:
		return "+" + word
	case ModifierMinus:
		return "-" + word
	}
	return ""
}

type TypeOperatorKind int

const (
	OperatorKeyOf TypeOperatorKind = iota
	OperatorUnique
	OperatorReadonly
)

func (o TypeOperatorKind) String() string {
	switch o {
	case OperatorKeyOf:
		return "keyof"
	case OperatorUnique:
		return "unique"
	}
	return "readonly"
}

type (
	KeywordType struct {
		BaseNode
		Kind KeywordKind
	}

	LiteralType struct {
		BaseNode
		Lit Literal
	}

	TemplateLiteralType struct {
		BaseNode
		Quasis []*TemplateElement
		Types  []Type
	}

	TypeReference struct {
		BaseNode
		Name     EntityName
		TypeArgs *TypeArgs
	}

	QualifiedName struct {
		BaseNode
		Left  EntityName
		Right *Ident
	}

	UnionType struct {
		BaseNode
		Types []Type
	}

	IntersectionType struct {
		BaseNode
		Types []Type
	}

	ConditionalType struct {
		BaseNode
		Check   Type
		Extends Type
		True    Type
		False   Type
	}

	MappedType struct {
		BaseNode
		Readonly  TruePlusMinus
		TypeParam *TypeParam
		NameType  Type
		Optional  TruePlusMinus
		TypeAnn   Type
	}

	TupleType struct {
		BaseNode
		Elements []*TupleElement
	}

	// TupleElement is one tuple member. Label is a *BindingIdent, or a
	// *RestPattern around one for "...name:" labels.
	TupleElement struct {
		BaseNode
		Label Pattern
		Type  Type
	}

	RestType struct {
		BaseNode
		TypeAnn Type
	}

	OptionalType struct {
		BaseNode
		TypeAnn Type
	}

	ArrayType struct {
		BaseNode
		Elem Type
	}

	IndexedAccessType struct {
		BaseNode
		Readonly bool
		Object   Type
		Index    Type
	}

	TypeOperator struct {
		BaseNode
		Op   TypeOperatorKind
		Type Type
	}

	InferType struct {
		BaseNode
		TypeParam *TypeParam
	}

	FunctionType struct {
		BaseNode
		TypeParams *TypeParamDecl
		Params     []Pattern
		ReturnType *TypeAnnotation
	}

	ConstructorType struct {
		BaseNode
		Abstract   bool
		TypeParams *TypeParamDecl
		Params     []Pattern
		ReturnType *TypeAnnotation
	}

	TypeQuery struct {
		BaseNode
		ExprName TypeQueryExpr
		TypeArgs *TypeArgs
	}

	ImportType struct {
		BaseNode
		Arg        *StringLit
		Qualifier  EntityName
		TypeArgs   *TypeArgs
		Attributes *ObjectLit
	}

	ThisType struct {
		BaseNode
	}

	TypePredicate struct {
		BaseNode
		Asserts   bool
		ParamName PredicateParam
		TypeAnn   *TypeAnnotation
	}

	ParenthesizedType struct {
		BaseNode
		Type Type
	}

	TypeLiteral struct {
		BaseNode
		Members []TypeElement
	}

	TypeAnnotation struct {
		BaseNode
		Type Type
	}

	TypeArgs struct {
		BaseNode
		Params []Type
	}

	TypeParamDecl struct {
		BaseNode
		Params []*TypeParam
	}

	TypeParam struct {
		BaseNode
		Name       *Ident
		In         bool
		Out        bool
		Const      bool
		Constraint Type
		Default    Type
	}
)

func (*KeywordType) typeNode()         {}
func (*LiteralType) typeNode()         {}
func (*TemplateLiteralType) typeNode() {}
func (*TypeReference) typeNode()       {}
func (*UnionType) typeNode()           {}
func (*IntersectionType) typeNode()    {}
func (*ConditionalType) typeNode()     {}
func (*MappedType) typeNode()          {}
func (*TupleType) typeNode()           {}
func (*RestType) typeNode()            {}
func (*OptionalType) typeNode()        {}
func (*ArrayType) typeNode()           {}
func (*IndexedAccessType) typeNode()   {}
func (*TypeOperator) typeNode()        {}
func (*InferType) typeNode()           {}
func (*FunctionType) typeNode()        {}
func (*ConstructorType) typeNode()     {}
func (*TypeQuery) typeNode()           {}
func (*ImportType) typeNode()          {}
func (*ThisType) typeNode()            {}
func (*TypePredicate) typeNode()       {}
func (*ParenthesizedType) typeNode()   {}
func (*TypeLiteral) typeNode()         {}

func (*QualifiedName) entityName()    {}
func (*QualifiedName) typeQueryExpr() {}
func (*QualifiedName) moduleRef()     {}
func (*ImportType) typeQueryExpr()    {}
func (*ThisType) predicateParam()     {}

// EntityText renders an entity name as dotted source text.
func EntityText(name EntityName) string {
	switch n := name.(type) {
	case *Ident:
		return n.Name
	case *QualifiedName:
		return EntityText(n.Left) + "." + n.Right.Name
	}
	return ""
}

func (k *KeywordType) Value() string {
	return k.Kind.String()
}

func (l *LiteralType) Value() string {
	return l.Lit.Value()
}

func (t *TypeReference) Value() string {
	return EntityText(t.Name)
}

func (q *QualifiedName) Value() string {
	return EntityText(q)
}

func (*UnionType) Value() string {
	return "|"
}

func (*IntersectionType) Value() string {
	return "&"
}

func (m *MappedType) Value() string {
	var parts []string
	if s := m.Readonly.prefix("readonly"); s != "" {
		parts = append(parts, s)
	}
	if s := m.Optional.prefix("?"); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func (*RestType) Value() string {
	return "..."
}

func (*OptionalType) Value() string {
	return "?"
}

func (*ArrayType) Value() string {
	return "[]"
}

func (i *IndexedAccessType) Value() string {
	if i.Readonly {
		return "readonly"
	}
	return ""
}

func (o *TypeOperator) Value() string {
	return o.Op.String()
}

func (c *ConstructorType) Value() string {
	if c.Abstract {
		return "abstract"
	}
	return ""
}

func (i *ImportType) Value() string {
	if i.Qualifier != nil {
		return i.Arg.Raw + "." + EntityText(i.Qualifier)
	}
	return i.Arg.Raw
}

func (*ThisType) Value() string {
	return "this"
}

func (p *TypePredicate) Value() string {
	if p.Asserts {
		return "asserts"
	}
	return "is"
}

func (p *TypeParam) Value() string {
	var parts []string
	if p.Const {
		parts = append(parts, "const")
	}
	if p.In {
		parts = append(parts, "in")
	}
	if p.Out {
		parts = append(parts, "out")
	}
	return strings.Join(append(parts, p.Name.Name), " ")
}

// IsRest reports whether the element is a rest element, either through a
// "...T" type or a "...name:" label.
func (e *TupleElement) IsRest() bool {
	if _, ok := e.Type.(*RestType); ok {
		return true
	}
	_, ok := e.Label.(*RestPattern)
	return ok
}

// IsOptional reports whether the element is optional, either through a
// "T?" type or a "name?:" label.
func (e *TupleElement) IsOptional() bool {
	if _, ok := e.Type.(*OptionalType); ok {
		return true
	}
	if b, ok := e.Label.(*BindingIdent); ok {
		return b.Optional
	}
	return false
}
