/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package source holds the input handling shared by the tstype commands.
package source

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/parser"
)

// Input kinds accepted by Parse.
const (
	KindModule = "module"
	KindType   = "type"
	KindExpr   = "expr"
)

// Result is everything a single parse produced.
type Result struct {
	Node        ast.Node
	Tokens      []parse.Token
	Diagnostics []parse.SyntaxError
	Elapsed     time.Duration
}

// Read returns the contents of the file named by args, or of stdin when
// args is empty or "-".
func Read(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", errors.Wrap(err, "reading stdin")
		}
		return "<stdin>", string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %s", args[0])
	}
	return args[0], string(b), nil
}

// Options builds parser options from the configuration.
func Options(log zerolog.Logger, extra ...parser.Option) []parser.Option {
	opts := []parser.Option{
		parser.WithLogger(log),
		parser.WithMaxDepth(viper.GetInt("tstype.max-depth")),
	}
	return append(opts, extra...)
}

// Parse tokenizes and parses input as the given kind.
func Parse(kind, input string, opts ...parser.Option) (Result, error) {
	var result Result
	start := time.Now()

	p, err := parser.New(input, opts...)
	if err != nil {
		return result, err
	}
	result.Tokens = p.Tokens()

	switch kind {
	case KindType:
		result.Node, err = p.ParseType()
	case KindExpr:
		result.Node, err = p.ParseExpression()
	default:
		result.Node, err = p.ParseModule()
	}

	result.Diagnostics = p.Diagnostics()
	result.Elapsed = time.Since(start)
	return result, err
}

// Report writes err to w. Syntax errors are rendered with a caret under
// the offending text of input.
func Report(w io.Writer, name, input string, err error) {
	var syntaxErr *parse.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintf(w, "%s: %s", name, syntaxErr.FormatError(input))
		return
	}
	fmt.Fprintf(w, "%s: %v\n", name, err)
}
