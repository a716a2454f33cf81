/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"testing"
)

func TestEmitNumber(t *testing.T) {
	s := Scanner{Input: "12345 hi"}

	tok := s.Emit()

	if tok.Type != TOK_NUMBER {
		t.Error("wanted TOK_NUMBER, got", tok.Type.ToString())
	}

	if tok.Lexeme != "12345" {
		t.Error("wanted 12345, got", tok.Lexeme)
	}
}

func TestMatchNumber(t *testing.T) {
	tests := []struct {
		input  string
		width  int
		bigint bool
	}{
		{"1.5", 3, false},
		{".3)", 2, false},
		{"1_000_000;", 9, false},
		{"0xFFn", 5, true},
		{"0b101", 5, false},
		{"10n", 3, true},
		{"1e10", 4, false},
		{"2.5e-3", 6, false},
		{"1e", 1, false},
	}

	for _, test := range tests {
		s := Scanner{Input: test.input}
		width, bigint := s.MatchNumber()
		if width != test.width || bigint != test.bigint {
			t.Errorf("%s: wanted (%d, %t), got (%d, %t)", test.input, test.width, test.bigint, width, bigint)
		}
	}
}

func TestEmitPunctuatorsLongestMatch(t *testing.T) {
	s := Scanner{Input: ">>>= >>= >> ... ?. ?.5 =>"}
	expected := []TokenType{TOK_URSHIFT_EQ, TOK_RSHIFT_EQ, TOK_RSHIFT, TOK_ELLIPSIS, TOK_QUESTION_DOT, TOK_QUESTION, TOK_NUMBER, TOK_ARROW, TOK_EOF}

	for i, typ := range expected {
		tok := s.Emit()
		if tok.Type != typ {
			t.Errorf("token %d: wanted %s, got %s (%q)", i, typ.ToString(), tok.Type.ToString(), tok.Lexeme)
		}
	}
}

func TestNewlineBefore(t *testing.T) {
	tokens, err := Tokenize("a /* x\n */ b // c\nc d")
	if err != nil {
		t.Fatal(err)
	}

	expected := []bool{false, true, true, false, false}
	for i, nl := range expected {
		if tokens[i].NewlineBefore != nl {
			t.Errorf("token %d (%q): wanted NewlineBefore=%t", i, tokens[i].Lexeme, nl)
		}
	}
}

func TestTemplateTokens(t *testing.T) {
	tokens, err := Tokenize("`a${ {b: 1} }c${d}e`")
	if err != nil {
		t.Fatal(err)
	}

	expected := []TokenType{
		TOK_TEMPLATE_HEAD, TOK_BRACE_L, TOK_IDENTIFIER, TOK_COLON, TOK_NUMBER, TOK_BRACE_R,
		TOK_TEMPLATE_MIDDLE, TOK_IDENTIFIER, TOK_TEMPLATE_TAIL, TOK_EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("wanted %d tokens, got %d", len(expected), len(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Errorf("token %d: wanted %s, got %s (%q)", i, typ.ToString(), tokens[i].Type.ToString(), tokens[i].Lexeme)
		}
	}

	if raw := TemplateRaw(tokens[6]); raw != "c" {
		t.Errorf("wanted middle chunk \"c\", got %q", raw)
	}
}

func TestTokenizeTypeAlias(t *testing.T) {
	tokens, err := Tokenize("type Test = (\n string | number);")
	if err != nil {
		t.Fatal(err)
	}

	// type, Test, =, (, string, |, number, ), ; and EOF
	if len(tokens) != 10 {
		t.Errorf("wanted 10 tokens, got %d", len(tokens))
	}
	if !tokens[4].NewlineBefore {
		t.Error("wanted a line break before 'string'")
	}
}

func TestTokenizeErrors(t *testing.T) {
	inputs := []string{"'unterminated", "/* open", "`open", "3in"}

	for _, input := range inputs {
		if _, err := Tokenize(input); err == nil {
			t.Errorf("%q: wanted an error", input)
		}
	}
}

func TestPrivateName(t *testing.T) {
	s := Scanner{Input: "#secret"}
	tok := s.Emit()
	if tok.Type != TOK_PRIVATE_NAME || tok.Lexeme != "#secret" {
		t.Errorf("wanted private name, got %s %q", tok.Type.ToString(), tok.Lexeme)
	}
}

func TestLiteralValues(t *testing.T) {
	if v := StringValue(`"a\nbA\x42\u{1F600}"`); v != "a\nbAB\U0001F600" {
		t.Errorf("unexpected string value %q", v)
	}
	if v := NumberValue("0x10"); v != 16 {
		t.Errorf("wanted 16, got %v", v)
	}
	if v := NumberValue("1_5.5"); v != 15.5 {
		t.Errorf("wanted 15.5, got %v", v)
	}
	if v := BigIntValue("0b11n"); v.Int64() != 3 {
		t.Errorf("wanted 3, got %v", v)
	}
}
