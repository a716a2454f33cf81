/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"fmt"
	"reflect"
)

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func add[T Node](out []Node, nodes ...T) []Node {
	for _, n := range nodes {
		if !isNil(n) {
			out = append(out, n)
		}
	}
	return out
}

// annotated returns the annotated type, skipping the annotation wrapper.
func annotated(a *TypeAnnotation) Node {
	if a == nil {
		return nil
	}
	return a.Type
}

func function(out []Node, f *Function) []Node {
	if f == nil {
		return out
	}
	out = add(out, f.TypeParams)
	out = add(out, f.Params...)
	out = add(out, annotated(f.ReturnType))
	return add(out, f.Body)
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var out []Node

	switch n := node.(type) {
	case *Module:
		out = add(out, n.Body...)

	// Types
	case *KeywordType, *ThisType:
		// Skip, leaf nodes
	case *LiteralType:
		// Skip, the literal is rendered in the value
	case *TemplateLiteralType:
		for i, q := range n.Quasis {
			out = add(out, q)
			if i < len(n.Types) {
				out = add(out, n.Types[i])
			}
		}
	case *TypeReference:
		out = add(out, n.TypeArgs)
	case *QualifiedName:
		// Skip, rendered in the value
	case *UnionType:
		out = add(out, n.Types...)
	case *IntersectionType:
		out = add(out, n.Types...)
	case *ConditionalType:
		out = add(out, n.Check, n.Extends, n.True, n.False)
	case *MappedType:
		out = add(out, n.TypeParam)
		out = add(out, n.NameType, n.TypeAnn)
	case *TupleType:
		out = add(out, n.Elements...)
	case *TupleElement:
		out = add(out, n.Label)
		out = add(out, n.Type)
	case *RestType:
		out = add(out, n.TypeAnn)
	case *OptionalType:
		out = add(out, n.TypeAnn)
	case *ArrayType:
		out = add(out, n.Elem)
	case *IndexedAccessType:
		out = add(out, n.Object, n.Index)
	case *TypeOperator:
		out = add(out, n.Type)
	case *InferType:
		out = add(out, n.TypeParam)
	case *FunctionType:
		out = add(out, n.TypeParams)
		out = add(out, n.Params...)
		out = add(out, annotated(n.ReturnType))
	case *ConstructorType:
		out = add(out, n.TypeParams)
		out = add(out, n.Params...)
		out = add(out, annotated(n.ReturnType))
	case *TypeQuery:
		out = add(out, n.ExprName)
		out = add(out, n.TypeArgs)
	case *ImportType:
		out = add(out, n.TypeArgs)
		out = add(out, n.Attributes)
	case *TypePredicate:
		out = add(out, n.ParamName)
		out = add(out, annotated(n.TypeAnn))
	case *ParenthesizedType:
		out = add(out, n.Type)
	case *TypeLiteral:
		out = add(out, n.Members...)
	case *TypeAnnotation:
		out = add(out, n.Type)
	case *TypeArgs:
		out = add(out, n.Params...)
	case *TypeParamDecl:
		out = add(out, n.Params...)
	case *TypeParam:
		out = add(out, n.Constraint, n.Default)

	// Type elements
	case *CallSignature:
		out = add(out, n.TypeParams)
		out = add(out, n.Params...)
		out = add(out, annotated(n.TypeAnn))
	case *ConstructSignature:
		out = add(out, n.TypeParams)
		out = add(out, n.Params...)
		out = add(out, annotated(n.TypeAnn))
	case *IndexSignature:
		out = add(out, n.Params...)
		out = add(out, annotated(n.TypeAnn))
	case *GetterSignature:
		out = add(out, n.Key)
		out = add(out, annotated(n.TypeAnn))
	case *SetterSignature:
		out = add(out, n.Key)
		out = add(out, n.Param)
	case *PropertySignature:
		out = add(out, n.Key)
		out = add(out, annotated(n.TypeAnn))
	case *MethodSignature:
		out = add(out, n.Key)
		out = add(out, n.TypeParams)
		out = add(out, n.Params...)
		out = add(out, annotated(n.TypeAnn))

	// Patterns
	case *BindingIdent:
		out = add(out, annotated(n.TypeAnn))
	case *ArrayPattern:
		out = add(out, n.Elems...)
		out = add(out, annotated(n.TypeAnn))
	case *ObjectPattern:
		out = add(out, n.Props...)
		out = add(out, annotated(n.TypeAnn))
	case *KeyValuePatProp:
		out = add(out, n.Key)
		out = add(out, n.Val)
	case *AssignPatProp:
		out = add(out, n.Key)
		out = add(out, n.Default)
	case *RestPattern:
		out = add(out, n.Arg)
		out = add(out, annotated(n.TypeAnn))
	case *AssignPattern:
		out = add(out, n.Left)
		out = add(out, n.Right)
	case *ParamProp:
		out = add(out, n.Param)

	// Expressions
	case *Ident, *PrivateName, *NumberLit, *BigIntLit, *StringLit, *BoolLit, *NullLit,
		*TemplateElement, *ThisExpr, *SuperExpr:
		// Skip, leaf nodes
	case *TemplateLit:
		for i, q := range n.Quasis {
			out = add(out, q)
			if i < len(n.Exprs) {
				out = add(out, n.Exprs[i])
			}
		}
	case *ArrayLit:
		out = add(out, n.Elems...)
	case *SpreadElement:
		out = add(out, n.Arg)
	case *ObjectLit:
		out = add(out, n.Props...)
	case *KeyValueProp:
		out = add(out, n.Key, n.Val)
	case *ShorthandProp:
		out = add(out, n.Key)
	case *MethodProp:
		out = add(out, n.Key)
		out = function(out, n.Function)
	case *UnaryExpr:
		out = add(out, n.Arg)
	case *UpdateExpr:
		out = add(out, n.Arg)
	case *BinaryExpr:
		out = add(out, n.Left, n.Right)
	case *AssignExpr:
		out = add(out, n.Left, n.Right)
	case *CondExpr:
		out = add(out, n.Test, n.Cons, n.Alt)
	case *SeqExpr:
		out = add(out, n.Exprs...)
	case *CallExpr:
		out = add(out, n.Callee)
		out = add(out, n.TypeArgs)
		out = add(out, n.Args...)
	case *NewExpr:
		out = add(out, n.Callee)
		out = add(out, n.TypeArgs)
		out = add(out, n.Args...)
	case *MemberExpr:
		out = add(out, n.Object, n.Property)
	case *ParenExpr:
		out = add(out, n.Expr)
	case *ArrowExpr:
		out = add(out, n.TypeParams)
		out = add(out, n.Params...)
		out = add(out, annotated(n.ReturnType), n.Body)
	case *FunctionExpr:
		out = function(out, n.Function)
	case *AsExpr:
		out = add(out, n.Expr)
		out = add(out, n.Type)
	case *ConstAssertion:
		out = add(out, n.Expr)
	case *SatisfiesExpr:
		out = add(out, n.Expr)
		out = add(out, n.Type)
	case *NonNullExpr:
		out = add(out, n.Expr)
	case *TypeAssertion:
		out = add(out, n.Type)
		out = add(out, n.Expr)
	case *InstantiationExpr:
		out = add(out, n.Expr)
		out = add(out, n.TypeArgs)
	case *ExprWithTypeArgs:
		out = add(out, n.Expr)
		out = add(out, n.TypeArgs)
	case *Function:
		out = function(out, n)

	// Statements
	case *BlockStmt:
		out = add(out, n.Stmts...)
	case *EmptyStmt:
		// Skip, leaf node
	case *ExprStmt:
		out = add(out, n.Expr)
	case *ReturnStmt:
		out = add(out, n.Arg)
	case *ThrowStmt:
		out = add(out, n.Arg)
	case *IfStmt:
		out = add(out, n.Test)
		out = add(out, n.Cons, n.Alt)
	case *ImportDecl:
		out = add(out, n.Specifiers...)
	case *ImportSpecifier:
		out = add(out, n.Imported, n.Local)
	case *ExportNamed:
		out = add(out, n.Specifiers...)
	case *ExportSpecifier:
		out = add(out, n.Local, n.Exported)
	case *ExportDecl:
		out = add(out, n.Decl)
	case *ExportDefaultExpr:
		out = add(out, n.Expr)
	case *ExportAssignment:
		out = add(out, n.Expr)
	case *VarDecl:
		out = add(out, n.Decls...)
	case *VarDeclarator:
		out = add(out, n.Name)
		out = add(out, n.Init)
	case *FnDecl:
		out = function(out, n.Function)
	case *ClassDecl:
		out = add(out, n.Class)
	case *Class:
		out = add(out, n.TypeParams)
		out = add(out, n.SuperClass)
		out = add(out, n.SuperTypeArgs)
		out = add(out, n.Implements...)
		out = add(out, n.Members...)
	case *Constructor:
		out = add(out, n.Params...)
		out = add(out, n.Body)
	case *ClassMethod:
		out = add(out, n.Key)
		out = function(out, n.Function)
	case *ClassProp:
		out = add(out, n.Key)
		out = add(out, annotated(n.TypeAnn))
		out = add(out, n.Init)
	case *InterfaceDecl:
		out = add(out, n.TypeParams)
		out = add(out, n.Extends...)
		out = add(out, n.Body)
	case *InterfaceBody:
		out = add(out, n.Body...)
	case *TypeAliasDecl:
		out = add(out, n.TypeParams)
		out = add(out, n.Type)
	case *EnumDecl:
		out = add(out, n.Members...)
	case *EnumMember:
		out = add(out, n.ID)
		out = add(out, n.Init)
	case *ModuleDecl:
		out = add(out, n.Body)
	case *NamespaceDecl:
		out = add(out, n.Body)
	case *ModuleBlock:
		out = add(out, n.Body...)
	case *ExternalModuleRef:
		out = add(out, n.Expr)
	case *ImportEqualsDecl:
		out = add(out, n.ModuleRef)

	default:
		panic(fmt.Sprintf("Unexpected node %T passed to Walk", node))
	}

	return out
}

func Walk(v Visitor, node Node) {
	w := v.Visit(node)
	if w == nil {
		return
	}

	for _, child := range Children(node) {
		Walk(w, child)
	}

	w.Visit(nil)
}
