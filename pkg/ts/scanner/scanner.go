/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/tstype/pkg/common/parse"
)

type Scanner struct {
	Input     string
	Start     int
	Pos       int
	LastWidth int

	// newline records a line terminator seen since the last emitted token.
	newline bool
	// templates holds, for each open template substitution, the number of
	// unclosed '{' seen inside it.
	templates []int
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || r == '\\'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r) || r == '\u200c' || r == '\u200d' ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier.
//
// Grammar:
//
//	identifier      = id-start *id-part
//	id-start        = ALPHA / "$" / "_" / "\" unicode-escape
func (s *Scanner) MatchIdentifier() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	if !isIdentifierStart(r) {
		return 0
	}

	for i < len(s.Input) && isIdentifierPart(r) {
		if r == '\\' {
			n := matchUnicodeEscape(s.Input[i:])
			if n == 0 {
				break
			}
			i += n
		} else {
			i += width
		}
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return i - s.Pos
}

func matchUnicodeEscape(input string) int {
	if !strings.HasPrefix(input, "\\u") {
		return 0
	}
	if strings.HasPrefix(input, "\\u{") {
		end := strings.IndexByte(input, '}')
		if end < 4 {
			return 0
		}
		return end + 1
	}
	if len(input) < 6 {
		return 0
	}
	for _, c := range input[2:6] {
		if !isHexDigit(c) {
			return 0
		}
	}
	return 6
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func digitsFor(base int) func(r rune) bool {
	switch base {
	case 16:
		return isHexDigit
	case 8:
		return func(r rune) bool { return r >= '0' && r <= '7' }
	case 2:
		return func(r rune) bool { return r == '0' || r == '1' }
	}
	return func(r rune) bool { return r >= '0' && r <= '9' }
}

func (s *Scanner) matchDigits(i int, isDigit func(rune) bool) int {
	start := i
	for i < len(s.Input) {
		c := rune(s.Input[i])
		if !isDigit(c) && !(c == '_' && i > start) {
			break
		}
		i++
	}
	return i
}

// MatchNumber returns the length of the next token and whether it is a
// bigint literal, assuming it is a numeric literal.
//
// Grammar:
//
//	number          = decimal / "0" ("x" / "X") 1*HEXDIG ["n"] / "0" ("o" / "O") 1*ODIGIT ["n"] / "0" ("b" / "B") 1*BIT ["n"]
//	decimal         = (1*DIGIT ["." *DIGIT] / "." 1*DIGIT) [("e" / "E") ["+" / "-"] 1*DIGIT] / 1*DIGIT "n"
func (s *Scanner) MatchNumber() (int, bool) {
	input := s.Input
	i := s.Pos

	if i+1 < len(input) && input[i] == '0' {
		base := 0
		switch input[i+1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			end := s.matchDigits(i+2, digitsFor(base))
			if end == i+2 {
				return 0, false
			}
			if end < len(input) && input[end] == 'n' {
				return end + 1 - s.Pos, true
			}
			return end - s.Pos, false
		}
	}

	decimal := digitsFor(10)
	end := s.matchDigits(i, decimal)
	integer := true
	if end < len(input) && input[end] == '.' {
		integer = false
		end = s.matchDigits(end+1, decimal)
	}
	if end == s.Pos || (end == s.Pos+1 && input[s.Pos] == '.') {
		return 0, false
	}

	if end < len(input) && (input[end] == 'e' || input[end] == 'E') {
		exp := end + 1
		if exp < len(input) && (input[exp] == '+' || input[exp] == '-') {
			exp++
		}
		if digits := s.matchDigits(exp, decimal); digits > exp {
			integer = false
			end = digits
		}
	}

	if integer && end < len(input) && input[end] == 'n' {
		return end + 1 - s.Pos, true
	}
	return end - s.Pos, false
}

// MatchString returns the length of the next token, assuming it is a
// string. Zero is returned for unterminated strings.
//
// Grammar:
//
//	string          = DQUOTE *(char / escape) DQUOTE / SQUOTE *(char / escape) SQUOTE
func (s *Scanner) MatchString() int {
	quote := s.Input[s.Pos]
	for i := s.Pos + 1; i < len(s.Input); i++ {
		switch c := s.Input[i]; {
		case c == quote:
			return i + 1 - s.Pos
		case c == '\\':
			i++
			if i < len(s.Input) && s.Input[i] == '\r' && i+1 < len(s.Input) && s.Input[i+1] == '\n' {
				i++
			}
		case c == '\n' || c == '\r':
			return 0
		}
	}
	return 0
}

// MatchTemplate returns the length of a template chunk starting at
// s.Pos+offset (just past the '`' or '}' that opened it), and whether the
// chunk ends in a substitution "${".
func (s *Scanner) MatchTemplate(offset int) (int, bool) {
	for i := s.Pos + offset; i < len(s.Input); i++ {
		switch s.Input[i] {
		case '`':
			return i + 1 - s.Pos, false
		case '\\':
			i++
		case '$':
			if i+1 < len(s.Input) && s.Input[i+1] == '{' {
				return i + 2 - s.Pos, true
			}
		}
	}
	return 0, false
}

// MatchPunctuator returns the type and length of the longest punctuator at
// s.Pos.
func (s *Scanner) MatchPunctuator() (TokenType, int) {
	for n := 4; n > 0; n-- {
		if s.Pos+n > len(s.Input) {
			continue
		}
		candidate := s.Input[s.Pos : s.Pos+n]
		t, ok := punctuators[candidate]
		if !ok {
			continue
		}
		// "a?.5:b" is a conditional, not an optional chain
		if t == TOK_QUESTION_DOT && s.Pos+2 < len(s.Input) && unicode.IsDigit(rune(s.Input[s.Pos+2])) {
			continue
		}
		return t, n
	}
	return TOK_INVALID, 0
}

// SkipTrivia advances past whitespace and comments, recording line
// terminators. It returns false on an unterminated block comment.
func (s *Scanner) SkipTrivia() bool {
	for s.Pos < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		switch {
		case isLineTerminator(r):
			s.newline = true
			s.Pos += width
		case unicode.IsSpace(r) || r == '\ufeff':
			s.Pos += width
		case strings.HasPrefix(s.Input[s.Pos:], "//"):
			end := strings.IndexAny(s.Input[s.Pos:], "\r\n\u2028\u2029")
			if end < 0 {
				s.Pos = len(s.Input)
			} else {
				s.Pos += end
			}
		case strings.HasPrefix(s.Input[s.Pos:], "/*"):
			end := strings.Index(s.Input[s.Pos+2:], "*/")
			if end < 0 {
				return false
			}
			if strings.ContainsAny(s.Input[s.Pos:s.Pos+2+end], "\r\n\u2028\u2029") {
				s.newline = true
			}
			s.Pos += end + 4
		default:
			return true
		}
	}
	return true
}

// Emit the next Token found on Scanner.Input
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	oldStart := s.Start
	s.newline = false

	if !s.SkipTrivia() {
		s.Start = s.Pos
		s.Pos = len(s.Input)
		t.Type = TOK_INVALID
	} else if s.Pos >= len(s.Input) {
		s.Start = s.Pos
		t.Type = TOK_EOF
	} else {
		s.Start = s.Pos
		r, _ := utf8.DecodeRuneInString(s.Input[s.Pos:])
		skip := 0

		switch {
		case r == '\'' || r == '"':
			t.Type = TOK_STRING
			skip = s.MatchString()
		case r == '`':
			var open bool
			skip, open = s.MatchTemplate(1)
			t.Type = TOK_TEMPLATE
			if open {
				t.Type = TOK_TEMPLATE_HEAD
				s.templates = append(s.templates, 0)
			}
		case r == '}' && len(s.templates) > 0 && s.templates[len(s.templates)-1] == 0:
			s.templates = s.templates[:len(s.templates)-1]
			var open bool
			skip, open = s.MatchTemplate(1)
			t.Type = TOK_TEMPLATE_TAIL
			if open {
				t.Type = TOK_TEMPLATE_MIDDLE
				s.templates = append(s.templates, 0)
			}
		case unicode.IsDigit(r) || (r == '.' && s.Pos+1 < len(s.Input) && unicode.IsDigit(rune(s.Input[s.Pos+1]))):
			var bigint bool
			skip, bigint = s.MatchNumber()
			t.Type = TOK_NUMBER
			if bigint {
				t.Type = TOK_BIGINT
			}
			// 3in is not a number followed by an identifier
			if skip > 0 {
				next, _ := utf8.DecodeRuneInString(s.Input[s.Pos+skip:])
				if s.Pos+skip < len(s.Input) && isIdentifierStart(next) {
					skip = 0
				}
			}
		case r == '#' && s.Pos+1 < len(s.Input):
			s.Pos++
			if n := s.MatchIdentifier(); n > 0 {
				t.Type = TOK_PRIVATE_NAME
				skip = n + 1
			} else {
				t.Type = TOK_HASH
				skip = 1
			}
			s.Pos--
		case isIdentifierStart(r):
			t.Type = TOK_IDENTIFIER
			skip = s.MatchIdentifier()
		default:
			var typ TokenType
			typ, skip = s.MatchPunctuator()
			t.Type = typ
			if len(s.templates) > 0 {
				switch typ {
				case TOK_BRACE_L:
					s.templates[len(s.templates)-1]++
				case TOK_BRACE_R:
					s.templates[len(s.templates)-1]--
				}
			}
		}

		if skip == 0 {
			t.Type = TOK_INVALID
			skip = s.SkipToBoundary(isDelimiter)
		}
		s.Pos = s.Start + skip
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	t.NewlineBefore = s.newline
	s.Start = s.Pos

	s.LastWidth = s.Start - oldStart

	return t
}

type boundaryFunc func(rune) bool

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == ',' || r == ';'
}

// SkipToBoundary returns the number of bytes until the next delimiter.
// This is useful for skipping over invalid tokens.
func (s *Scanner) SkipToBoundary(boundary boundaryFunc) int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := width

	for s.Pos+size < len(s.Input) {
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size:])
		if boundary(r) {
			break
		}
		size += width
	}

	return size
}

// Tokenize scans the whole input into a token buffer terminated by a
// TOK_EOF token. The first invalid token is reported as a syntax error.
func Tokenize(input string) ([]parse.Token, error) {
	s := Scanner{Input: input}
	tokens := make([]parse.Token, 0, len(input)/4+1)

	for {
		tok := s.Emit()
		tokens = append(tokens, tok)

		switch TypeOf(tok) {
		case TOK_EOF:
			return tokens, nil
		case TOK_INVALID:
			err := parse.NewSyntaxError(tok, fmt.Sprintf("invalid or unterminated token '%s'", tok.Lexeme))
			return tokens, &err
		}
	}
}
