/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"testing"
)

func keyword(k KeywordKind) *KeywordType {
	return &KeywordType{Kind: k}
}

func TestDump(t *testing.T) {
	node := &UnionType{Types: []Type{
		keyword(KeywordString),
		&ArrayType{Elem: keyword(KeywordNumber)},
	}}

	expected := "UnionType[|]\n    KeywordType[string]\n    ArrayType[[]]\n        KeywordType[number]\n"
	if actual := Dump(node); actual != expected {
		t.Errorf("wanted:\n%s\ngot:\n%s", expected, actual)
	}
}

func TestMappedTypeValue(t *testing.T) {
	m := &MappedType{Readonly: ModifierMinus, Optional: ModifierTrue}
	if m.Value() != "-readonly ?" {
		t.Errorf("wanted \"-readonly ?\", got %q", m.Value())
	}
}

func TestTupleElementFlags(t *testing.T) {
	label := &BindingIdent{ID: &Ident{Name: "b"}, Optional: true}
	tests := []struct {
		element  *TupleElement
		rest     bool
		optional bool
	}{
		{&TupleElement{Type: keyword(KeywordString)}, false, false},
		{&TupleElement{Type: &OptionalType{TypeAnn: keyword(KeywordString)}}, false, true},
		{&TupleElement{Label: label, Type: keyword(KeywordNumber)}, false, true},
		{&TupleElement{Type: &RestType{TypeAnn: keyword(KeywordNumber)}}, true, false},
		{&TupleElement{Label: &RestPattern{Arg: &BindingIdent{ID: &Ident{Name: "r"}}}, Type: &ArrayType{Elem: keyword(KeywordNumber)}}, true, false},
	}

	for i, test := range tests {
		if test.element.IsRest() != test.rest || test.element.IsOptional() != test.optional {
			t.Errorf("%d: wanted rest=%t optional=%t", i, test.rest, test.optional)
		}
	}
}

func TestTree(t *testing.T) {
	tree := Tree(&IntersectionType{Types: []Type{keyword(KeywordAny), keyword(KeywordNever)}})

	if tree["node"] != "IntersectionType" {
		t.Errorf("wanted node IntersectionType, got %v", tree["node"])
	}
	types, ok := tree["types"].([]any)
	if !ok || len(types) != 2 {
		t.Fatalf("wanted two types, got %v", tree["types"])
	}
	never := types[1].(map[string]any)
	if never["node"] != "KeywordType" || never["kind"] != "never" {
		t.Errorf("wanted a never KeywordType, got %v", never)
	}
}

func TestPropertyValuesAreChildren(t *testing.T) {
	one := &NumberLit{Val: 1, Raw: "1"}
	tests := []struct {
		node     Node
		expected string
	}{
		{&KeyValueProp{Key: &Ident{Name: "a"}, Val: one}, "KeyValueProp[]\n    Ident[a]\n    NumberLit[1]\n"},
		{&KeyValuePatProp{Key: &Ident{Name: "a"}, Val: &BindingIdent{ID: &Ident{Name: "b"}}}, "KeyValuePatProp[]\n    Ident[a]\n    BindingIdent[b]\n"},
		{&AssignPatProp{Key: &Ident{Name: "c"}, Default: one}, "AssignPatProp[]\n    Ident[c]\n    NumberLit[1]\n"},
		{&ClassProp{Key: &Ident{Name: "x"}, Static: true, Init: one}, "ClassProp[static]\n    Ident[x]\n    NumberLit[1]\n"},
	}

	for _, test := range tests {
		if actual := Dump(test.node); actual != test.expected {
			t.Errorf("wanted:\n%s\ngot:\n%s", test.expected, actual)
		}
	}
}
