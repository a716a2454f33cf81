/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/parser"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

func TestCSVTokens(t *testing.T) {
	toks, err := scanner.Tokenize("a |\nb")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, "csv").Write(Tokens(toks)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "kind,lexeme,start,end,newline", lines[0])
	assert.True(t, strings.HasSuffix(lines[3], ",b,4,5,true"), lines[3])
}

func TestJSONDiagnostics(t *testing.T) {
	d := Diagnostics{
		Input:  "enum E {\n  1 = 2 }",
		Errors: []parse.SyntaxError{parse.NewCodedError(parse.Location{Start: 11, End: 12}, "TS2452", "An enum member cannot have a numeric name.")},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, "json").Write(d))

	var records []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0]["line"])
	assert.Equal(t, "3", records[0]["column"])
	assert.Equal(t, "TS2452", records[0]["code"])
}

func TestYAMLNode(t *testing.T) {
	typ, _, err := parser.ParseTypeString("A | B")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, "yaml").WriteNode(typ))

	var tree map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &tree))
	assert.Equal(t, "UnionType", tree["node"])
	assert.Len(t, tree["types"], 2)
}

func TestNodeTableFollowsDump(t *testing.T) {
	typ, _, err := parser.ParseTypeString("(string | number)[]")
	require.NoError(t, err)

	rows := Nodes(typ).Values()
	kinds := []string{}
	for _, row := range rows {
		kinds = append(kinds, row[0]+":"+row[1])
	}
	assert.Equal(t, []string{
		"0:ArrayType",
		"1:ParenthesizedType",
		"2:UnionType",
		"3:KeywordType",
		"3:KeywordType",
	}, kinds)
}

func TestTextTable(t *testing.T) {
	toks, err := scanner.Tokenize("keyof T")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, "text").Write(Tokens(toks)))
	assert.Contains(t, buf.String(), "keyof")
}

func TestIsFormat(t *testing.T) {
	assert.True(t, IsFormat("yaml"))
	assert.False(t, IsFormat("xml"))
}
