/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import "github.com/dburkart/tstype/pkg/common/parse"

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_IDENTIFIER
	TOK_PRIVATE_NAME
	TOK_NUMBER
	TOK_BIGINT
	TOK_STRING

	// Templates
	TOK_TEMPLATE
	TOK_TEMPLATE_HEAD
	TOK_TEMPLATE_MIDDLE
	TOK_TEMPLATE_TAIL

	// Brackets
	TOK_BRACE_L
	TOK_BRACE_R
	TOK_PAREN_L
	TOK_PAREN_R
	TOK_BRACKET_L
	TOK_BRACKET_R

	TOK_SEMICOLON
	TOK_COMMA
	TOK_DOT
	TOK_ELLIPSIS
	TOK_QUESTION
	TOK_QUESTION_DOT
	TOK_COLON
	TOK_ARROW
	TOK_AT
	TOK_HASH

	// Relational
	TOK_LESS
	TOK_GREATER
	TOK_LESS_EQ
	TOK_GREATER_EQ
	TOK_EQ_EQ
	TOK_NOT_EQ
	TOK_EQ_EQ_EQ
	TOK_NOT_EQ_EQ

	// Arithmetic and bitwise
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_STAR_STAR
	TOK_SLASH
	TOK_PERCENT
	TOK_PLUS_PLUS
	TOK_MINUS_MINUS
	TOK_LSHIFT
	TOK_RSHIFT
	TOK_URSHIFT
	TOK_AMP
	TOK_PIPE
	TOK_CARET
	TOK_BANG
	TOK_TILDE
	TOK_AMP_AMP
	TOK_PIPE_PIPE
	TOK_QUESTION_QUESTION

	// Assignment
	TOK_EQ
	TOK_PLUS_EQ
	TOK_MINUS_EQ
	TOK_STAR_EQ
	TOK_STAR_STAR_EQ
	TOK_SLASH_EQ
	TOK_PERCENT_EQ
	TOK_LSHIFT_EQ
	TOK_RSHIFT_EQ
	TOK_URSHIFT_EQ
	TOK_AMP_EQ
	TOK_PIPE_EQ
	TOK_CARET_EQ
	TOK_AMP_AMP_EQ
	TOK_PIPE_PIPE_EQ
	TOK_QUESTION_QUESTION_EQ
)

var tokenNames = [...]string{
	TOK_INVALID:      "TOK_INVALID",
	TOK_EOF:          "TOK_EOF",
	TOK_IDENTIFIER:   "TOK_IDENTIFIER",
	TOK_PRIVATE_NAME: "TOK_PRIVATE_NAME",
	TOK_NUMBER:       "TOK_NUMBER",
	TOK_BIGINT:       "TOK_BIGINT",
	TOK_STRING:       "TOK_STRING",

	TOK_TEMPLATE:        "TOK_TEMPLATE",
	TOK_TEMPLATE_HEAD:   "TOK_TEMPLATE_HEAD",
	TOK_TEMPLATE_MIDDLE: "TOK_TEMPLATE_MIDDLE",
	TOK_TEMPLATE_TAIL:   "TOK_TEMPLATE_TAIL",

	TOK_BRACE_L:   "TOK_BRACE_L",
	TOK_BRACE_R:   "TOK_BRACE_R",
	TOK_PAREN_L:   "TOK_PAREN_L",
	TOK_PAREN_R:   "TOK_PAREN_R",
	TOK_BRACKET_L: "TOK_BRACKET_L",
	TOK_BRACKET_R: "TOK_BRACKET_R",

	TOK_SEMICOLON:    "TOK_SEMICOLON",
	TOK_COMMA:        "TOK_COMMA",
	TOK_DOT:          "TOK_DOT",
	TOK_ELLIPSIS:     "TOK_ELLIPSIS",
	TOK_QUESTION:     "TOK_QUESTION",
	TOK_QUESTION_DOT: "TOK_QUESTION_DOT",
	TOK_COLON:        "TOK_COLON",
	TOK_ARROW:        "TOK_ARROW",
	TOK_AT:           "TOK_AT",
	TOK_HASH:         "TOK_HASH",

	TOK_LESS:       "TOK_LESS",
	TOK_GREATER:    "TOK_GREATER",
	TOK_LESS_EQ:    "TOK_LESS_EQ",
	TOK_GREATER_EQ: "TOK_GREATER_EQ",
	TOK_EQ_EQ:      "TOK_EQ_EQ",
	TOK_NOT_EQ:     "TOK_NOT_EQ",
	TOK_EQ_EQ_EQ:   "TOK_EQ_EQ_EQ",
	TOK_NOT_EQ_EQ:  "TOK_NOT_EQ_EQ",

	TOK_PLUS:              "TOK_PLUS",
	TOK_MINUS:             "TOK_MINUS",
	TOK_STAR:              "TOK_STAR",
	TOK_STAR_STAR:         "TOK_STAR_STAR",
	TOK_SLASH:             "TOK_SLASH",
	TOK_PERCENT:           "TOK_PERCENT",
	TOK_PLUS_PLUS:         "TOK_PLUS_PLUS",
	TOK_MINUS_MINUS:       "TOK_MINUS_MINUS",
	TOK_LSHIFT:            "TOK_LSHIFT",
	TOK_RSHIFT:            "TOK_RSHIFT",
	TOK_URSHIFT:           "TOK_URSHIFT",
	TOK_AMP:               "TOK_AMP",
	TOK_PIPE:              "TOK_PIPE",
	TOK_CARET:             "TOK_CARET",
	TOK_BANG:              "TOK_BANG",
	TOK_TILDE:             "TOK_TILDE",
	TOK_AMP_AMP:           "TOK_AMP_AMP",
	TOK_PIPE_PIPE:         "TOK_PIPE_PIPE",
	TOK_QUESTION_QUESTION: "TOK_QUESTION_QUESTION",

	TOK_EQ:                   "TOK_EQ",
	TOK_PLUS_EQ:              "TOK_PLUS_EQ",
	TOK_MINUS_EQ:             "TOK_MINUS_EQ",
	TOK_STAR_EQ:              "TOK_STAR_EQ",
	TOK_STAR_STAR_EQ:         "TOK_STAR_STAR_EQ",
	TOK_SLASH_EQ:             "TOK_SLASH_EQ",
	TOK_PERCENT_EQ:           "TOK_PERCENT_EQ",
	TOK_LSHIFT_EQ:            "TOK_LSHIFT_EQ",
	TOK_RSHIFT_EQ:            "TOK_RSHIFT_EQ",
	TOK_URSHIFT_EQ:           "TOK_URSHIFT_EQ",
	TOK_AMP_EQ:               "TOK_AMP_EQ",
	TOK_PIPE_EQ:              "TOK_PIPE_EQ",
	TOK_CARET_EQ:             "TOK_CARET_EQ",
	TOK_AMP_AMP_EQ:           "TOK_AMP_AMP_EQ",
	TOK_PIPE_PIPE_EQ:         "TOK_PIPE_PIPE_EQ",
	TOK_QUESTION_QUESTION_EQ: "TOK_QUESTION_QUESTION_EQ",
}

func (t TokenType) ToString() string {
	if int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return "TOK_UNKNOWN"
}

// punctuators maps every punctuator spelling to its token type. Lookup is
// longest-match first, see MatchPunctuator.
var punctuators = map[string]TokenType{
	">>>=": TOK_URSHIFT_EQ,

	"...": TOK_ELLIPSIS,
	"===": TOK_EQ_EQ_EQ,
	"!==": TOK_NOT_EQ_EQ,
	"**=": TOK_STAR_STAR_EQ,
	"<<=": TOK_LSHIFT_EQ,
	">>=": TOK_RSHIFT_EQ,
	">>>": TOK_URSHIFT,
	"&&=": TOK_AMP_AMP_EQ,
	"||=": TOK_PIPE_PIPE_EQ,
	"??=": TOK_QUESTION_QUESTION_EQ,

	"=>": TOK_ARROW,
	"==": TOK_EQ_EQ,
	"!=": TOK_NOT_EQ,
	"<=": TOK_LESS_EQ,
	">=": TOK_GREATER_EQ,
	"<<": TOK_LSHIFT,
	">>": TOK_RSHIFT,
	"+=": TOK_PLUS_EQ,
	"-=": TOK_MINUS_EQ,
	"*=": TOK_STAR_EQ,
	"/=": TOK_SLASH_EQ,
	"%=": TOK_PERCENT_EQ,
	"&=": TOK_AMP_EQ,
	"|=": TOK_PIPE_EQ,
	"^=": TOK_CARET_EQ,
	"++": TOK_PLUS_PLUS,
	"--": TOK_MINUS_MINUS,
	"**": TOK_STAR_STAR,
	"&&": TOK_AMP_AMP,
	"||": TOK_PIPE_PIPE,
	"??": TOK_QUESTION_QUESTION,
	"?.": TOK_QUESTION_DOT,

	"{": TOK_BRACE_L,
	"}": TOK_BRACE_R,
	"(": TOK_PAREN_L,
	")": TOK_PAREN_R,
	"[": TOK_BRACKET_L,
	"]": TOK_BRACKET_R,
	";": TOK_SEMICOLON,
	",": TOK_COMMA,
	".": TOK_DOT,
	"?": TOK_QUESTION,
	":": TOK_COLON,
	"@": TOK_AT,
	"#": TOK_HASH,
	"<": TOK_LESS,
	">": TOK_GREATER,
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_SLASH,
	"%": TOK_PERCENT,
	"&": TOK_AMP,
	"|": TOK_PIPE,
	"^": TOK_CARET,
	"!": TOK_BANG,
	"~": TOK_TILDE,
	"=": TOK_EQ,
}

var punctuatorText = func() map[TokenType]string {
	m := make(map[TokenType]string, len(punctuators))
	for text, typ := range punctuators {
		m[typ] = text
	}
	return m
}()

// Punctuator returns the token type spelled by text, or TOK_INVALID when
// text is not a punctuator.
func Punctuator(text string) TokenType {
	if t, ok := punctuators[text]; ok {
		return t
	}
	return TOK_INVALID
}

// Text returns the source spelling of a punctuator type, or a readable
// name for the other token types.
func (t TokenType) Text() string {
	if text, ok := punctuatorText[t]; ok {
		return text
	}
	switch t {
	case TOK_EOF:
		return "end of input"
	case TOK_IDENTIFIER:
		return "identifier"
	case TOK_PRIVATE_NAME:
		return "private name"
	case TOK_NUMBER:
		return "number"
	case TOK_BIGINT:
		return "bigint"
	case TOK_STRING:
		return "string"
	case TOK_TEMPLATE, TOK_TEMPLATE_HEAD, TOK_TEMPLATE_MIDDLE, TOK_TEMPLATE_TAIL:
		return "template"
	}
	return "invalid token"
}

// Is reports whether tok has type t.
func Is(tok parse.Token, t TokenType) bool {
	typ, ok := tok.Type.(TokenType)
	return ok && typ == t
}

// TypeOf returns the scanner type of tok.
func TypeOf(tok parse.Token) TokenType {
	if typ, ok := tok.Type.(TokenType); ok {
		return typ
	}
	return TOK_INVALID
}
