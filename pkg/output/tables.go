/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"reflect"
	"strconv"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/ast"
)

// Tokens renders a token buffer, one row per token.
type Tokens []parse.Token

func (t Tokens) Headers() []string {
	return []string{"kind", "lexeme", "start", "end", "newline"}
}

func (t Tokens) Values() [][]string {
	rows := make([][]string, 0, len(t))
	for _, tok := range t {
		rows = append(rows, []string{
			tok.Type.ToString(),
			tok.Lexeme,
			strconv.Itoa(tok.Location.Start),
			strconv.Itoa(tok.Location.End),
			strconv.FormatBool(tok.NewlineBefore),
		})
	}
	return rows
}

// Diagnostics renders syntax errors with line and column positions in
// Input.
type Diagnostics struct {
	Input  string
	Errors []parse.SyntaxError
}

func (d Diagnostics) Headers() []string {
	return []string{"line", "column", "code", "message"}
}

func (d Diagnostics) Values() [][]string {
	rows := make([][]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		line, col := parse.LineColumn(d.Input, e.Location.Start)
		rows = append(rows, []string{strconv.Itoa(line), strconv.Itoa(col), e.Code, e.Message})
	}
	return rows
}

type nodeRow struct {
	depth int
	node  ast.Node
}

type nodeCollector struct {
	rows  []nodeRow
	depth int
}

func (c *nodeCollector) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		c.depth--
		return nil
	}
	c.rows = append(c.rows, nodeRow{depth: c.depth, node: node})
	c.depth++
	return c
}

// NodeTable is a flattened AST, in the same order as ast.Dump.
type NodeTable struct {
	rows []nodeRow
}

// Nodes flattens the tree rooted at node.
func Nodes(node ast.Node) NodeTable {
	c := &nodeCollector{}
	ast.Walk(c, node)
	return NodeTable{rows: c.rows}
}

func (n NodeTable) Headers() []string {
	return []string{"depth", "kind", "value", "start", "end"}
}

func (n NodeTable) Values() [][]string {
	rows := make([][]string, 0, len(n.rows))
	for _, r := range n.rows {
		loc := r.node.Span()
		rows = append(rows, []string{
			strconv.Itoa(r.depth),
			reflect.TypeOf(r.node).Elem().Name(),
			r.node.Value(),
			strconv.Itoa(loc.Start),
			strconv.Itoa(loc.End),
		})
	}
	return rows
}
