/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/output"
	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/parser"
)

// Session evaluates REPL lines. Source lines are parsed in the current
// mode, which starts as CommandType.
type Session struct {
	Mode       string
	ShowTokens bool

	out    io.Writer
	writer output.Writer
	log    zerolog.Logger
	opts   []parser.Option
}

func NewSession(out io.Writer, format string, log zerolog.Logger, opts ...parser.Option) *Session {
	return &Session{
		Mode:   CommandType,
		out:    out,
		writer: output.NewWriter(out, format),
		log:    log,
		opts:   opts,
	}
}

// Prompt reflects the current mode.
func (s *Session) Prompt() string {
	return s.Mode + "> "
}

// Eval handles one line of input and reports whether the session should
// continue.
func (s *Session) Eval(line string) bool {
	cmd := ParseREPLCommand([]byte(line))

	switch cmd.Name {
	case CommandQuit:
		return false
	case CommandHelp:
		fmt.Fprintln(s.out, "usage:")
		for _, c := range Commands {
			fmt.Fprintf(s.out, "    :%s\n", c)
		}
		fmt.Fprintln(s.out, "anything else is parsed in the current mode")
	case CommandTokens:
		s.ShowTokens = !s.ShowTokens
		fmt.Fprintf(s.out, "tokens %s\n", onOff(s.ShowTokens))
	case CommandType, CommandModule, CommandExpr:
		if cmd.Arg != "" {
			s.eval(cmd.Name, cmd.Arg)
			break
		}
		s.Mode = cmd.Name
	case CommandSource:
		if cmd.Arg != "" {
			s.eval(s.Mode, cmd.Arg)
		}
	default:
		fmt.Fprintf(s.out, "unknown command :%s\n", cmd.Name)
	}
	return true
}

func (s *Session) eval(mode, input string) {
	if err := s.parse(mode, input); err != nil {
		var syntaxErr *parse.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprint(s.out, syntaxErr.FormatError(input))
			return
		}
		s.log.Error().Err(err).Send()
	}
}

func (s *Session) parse(mode, input string) error {
	p, err := parser.New(input, s.opts...)
	if err != nil {
		return err
	}

	if s.ShowTokens {
		if err := s.writer.Write(output.Tokens(p.Tokens())); err != nil {
			return errors.Wrap(err, "writing tokens")
		}
	}

	var node ast.Node
	switch mode {
	case CommandModule:
		node, err = p.ParseModule()
	case CommandExpr:
		node, err = p.ParseExpression()
	default:
		node, err = p.ParseType()
	}
	if err != nil {
		return err
	}

	if err := s.writer.WriteNode(node); err != nil {
		return errors.Wrap(err, "writing tree")
	}
	if diags := p.Diagnostics(); len(diags) > 0 {
		return s.writer.Write(output.Diagnostics{Input: input, Errors: diags})
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
