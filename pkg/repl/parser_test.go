/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseREPLCommand(t *testing.T) {
	t.Run("source", func(t *testing.T) {
		cmd := ParseREPLCommand([]byte("  string | number "))
		if cmd.Name != CommandSource || cmd.Arg != "string | number" {
			t.Errorf("unexpected command %+v", cmd)
		}
	})
	t.Run("mode", func(t *testing.T) {
		cmd := ParseREPLCommand([]byte(":module"))
		if cmd.Name != CommandModule || cmd.Arg != "" {
			t.Errorf("unexpected command %+v", cmd)
		}
	})
	t.Run("mode with argument", func(t *testing.T) {
		cmd := ParseREPLCommand([]byte(":e f<T>(x)"))
		if cmd.Name != CommandExpr || cmd.Arg != "f<T>(x)" {
			t.Errorf("unexpected command %+v", cmd)
		}
	})
	t.Run("quit aliases", func(t *testing.T) {
		for _, line := range []string{":quit", ":exit", ":Q"} {
			if cmd := ParseREPLCommand([]byte(line)); cmd.Name != CommandQuit {
				t.Errorf("%s: wanted quit, got %+v", line, cmd)
			}
		}
	})
}

func TestSessionEval(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out, "text", zerolog.Nop())

	if !s.Eval("A | B") {
		t.Fatal("session ended early")
	}
	if !strings.Contains(out.String(), "UnionType[|]") {
		t.Errorf("wanted a union dump, got:\n%s", out.String())
	}

	out.Reset()
	s.Eval(":module")
	if s.Mode != CommandModule || s.Prompt() != "module> " {
		t.Errorf("wanted module mode, got %s", s.Mode)
	}
	s.Eval("type T = ;")
	if !strings.Contains(out.String(), "Syntax error") {
		t.Errorf("wanted a syntax error, got:\n%s", out.String())
	}

	if s.Eval(":quit") {
		t.Error("wanted :quit to end the session")
	}
}
