/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/dburkart/tstype/pkg/common/parse"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() parse.Location
	Value() string
}

type Visitor interface {
	Visit(Node) Visitor
}

// The node families below are closed: each carries an unexported marker
// method so only this package can add variants.
type (
	// Type is a type expression.
	Type interface {
		Node
		typeNode()
	}

	// TypeElement is a member of an object type literal or interface body.
	TypeElement interface {
		Node
		typeElement()
	}

	Expr interface {
		Node
		exprNode()
	}

	// Literal is a literal usable as a literal type.
	Literal interface {
		Expr
		literal()
	}

	Pattern interface {
		Node
		patternNode()
	}

	Stmt interface {
		Node
		stmtNode()
	}

	Decl interface {
		Stmt
		declNode()
	}

	// Declarable is a declaration that can be prefixed with 'declare'.
	Declarable interface {
		Decl
		MarkDeclare(start int)
	}

	// EntityName is an identifier or a dotted qualified name.
	EntityName interface {
		Node
		entityName()
	}

	// TypeQueryExpr is the operand of a 'typeof' type query.
	TypeQueryExpr interface {
		Node
		typeQueryExpr()
	}

	// PredicateParam is the subject of a type predicate: an identifier or
	// 'this'.
	PredicateParam interface {
		Node
		predicateParam()
	}

	ModuleName interface {
		Node
		moduleName()
	}

	NamespaceBody interface {
		Node
		namespaceBody()
	}

	// ModuleRef is the right hand side of an import-equals declaration.
	ModuleRef interface {
		Node
		moduleRef()
	}

	EnumMemberID interface {
		Node
		enumMemberID()
	}

	Prop interface {
		Node
		propNode()
	}

	ObjectPatProp interface {
		Node
		objectPatProp()
	}

	ClassMember interface {
		Node
		classMember()
	}
)

type BaseNode struct {
	Loc parse.Location
}

func (b *BaseNode) Span() parse.Location {
	return b.Loc
}

func (b *BaseNode) Value() string {
	return ""
}

// SetStart moves the start of the node's span.
func (b *BaseNode) SetStart(start int) {
	b.Loc.Start = start
}

// Module is the root of a parsed source file.
type Module struct {
	BaseNode
	Body []Stmt
}
