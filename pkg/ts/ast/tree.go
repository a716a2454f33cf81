/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"unicode/utf8"
)

var (
	baseNodeType = reflect.TypeOf(BaseNode{})
	bigIntType   = reflect.TypeOf((*big.Int)(nil))
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Tree converts node into nested maps and slices suitable for JSON or
// YAML encoding. Each node map carries its Go type name under "node" and
// its span under "start" and "end".
func Tree(node Node) map[string]any {
	if isNil(node) {
		return nil
	}

	v := reflect.ValueOf(node).Elem()
	loc := node.Span()
	out := map[string]any{
		"node":  v.Type().Name(),
		"start": loc.Start,
		"end":   loc.End,
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		if field.Type == baseNodeType {
			continue
		}
		if value := treeValue(v.Field(i)); value != nil {
			out[lowerFirst(field.Name)] = value
		}
	}

	return out
}

func treeValue(v reflect.Value) any {
	switch {
	case v.Type() == bigIntType:
		if v.IsNil() {
			return nil
		}
		return v.Interface().(*big.Int).String()
	case v.Type().Implements(stringerType) && v.Kind() != reflect.Ptr:
		return v.Interface().(fmt.Stringer).String()
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if n, ok := v.Interface().(Node); ok {
			if isNil(n) {
				return nil
			}
			return Tree(n)
		}
		return treeValue(v.Elem())
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		items := make([]any, v.Len())
		for i := range items {
			items[i] = treeValue(v.Index(i))
		}
		return items
	case reflect.Bool:
		if !v.Bool() {
			return nil
		}
		return true
	case reflect.String:
		return v.String()
	case reflect.Float64:
		return v.Float()
	case reflect.Int:
		return v.Int()
	}
	return nil
}

func lowerFirst(s string) string {
	r, width := utf8.DecodeRuneInString(s)
	return strings.ToLower(string(r)) + s[width:]
}

