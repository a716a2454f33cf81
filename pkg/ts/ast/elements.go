/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import "strings"

type (
	CallSignature struct {
		BaseNode
		TypeParams *TypeParamDecl
		Params     []Pattern
		TypeAnn    *TypeAnnotation
	}

	ConstructSignature struct {
		BaseNode
		TypeParams *TypeParamDecl
		Params     []Pattern
		TypeAnn    *TypeAnnotation
	}

	// IndexSignature appears both in object types and class bodies.
	IndexSignature struct {
		BaseNode
		Params   []Pattern
		TypeAnn  *TypeAnnotation
		Readonly bool
		Static   bool
	}

	GetterSignature struct {
		BaseNode
		Key      Expr
		Computed bool
		TypeAnn  *TypeAnnotation
	}

	SetterSignature struct {
		BaseNode
		Key      Expr
		Computed bool
		Param    Pattern
	}

	PropertySignature struct {
		BaseNode
		Readonly bool
		Key      Expr
		Computed bool
		Optional bool
		TypeAnn  *TypeAnnotation
	}

	MethodSignature struct {
		BaseNode
		Key        Expr
		Computed   bool
		Optional   bool
		TypeParams *TypeParamDecl
		Params     []Pattern
		TypeAnn    *TypeAnnotation
	}
)

func (*CallSignature) typeElement()      {}
func (*ConstructSignature) typeElement() {}
func (*IndexSignature) typeElement()     {}
func (*GetterSignature) typeElement()    {}
func (*SetterSignature) typeElement()    {}
func (*PropertySignature) typeElement()  {}
func (*MethodSignature) typeElement()    {}

func (*IndexSignature) classMember() {}

func flags(pairs ...any) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1].(bool) {
			parts = append(parts, pairs[i].(string))
		}
	}
	return strings.Join(parts, " ")
}

func (s *IndexSignature) Value() string {
	return flags("static", s.Static, "readonly", s.Readonly)
}

func (s *GetterSignature) Value() string {
	return flags("computed", s.Computed)
}

func (s *SetterSignature) Value() string {
	return flags("computed", s.Computed)
}

func (s *PropertySignature) Value() string {
	return flags("readonly", s.Readonly, "computed", s.Computed, "?", s.Optional)
}

func (s *MethodSignature) Value() string {
	return flags("computed", s.Computed, "?", s.Optional)
}
