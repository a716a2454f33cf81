/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dburkart/tstype/pkg/common/parse"
)

// StringValue returns the cooked value of a string literal lexeme.
func StringValue(lexeme string) string {
	if len(lexeme) < 2 {
		return ""
	}
	return Unescape(lexeme[1 : len(lexeme)-1])
}

// TemplateRaw returns the raw text of a template chunk, without the
// surrounding "`", "}" and "${" delimiters.
func TemplateRaw(tok parse.Token) string {
	lexeme := tok.Lexeme
	switch TypeOf(tok) {
	case TOK_TEMPLATE, TOK_TEMPLATE_TAIL:
		return lexeme[1 : len(lexeme)-1]
	case TOK_TEMPLATE_HEAD, TOK_TEMPLATE_MIDDLE:
		return lexeme[1 : len(lexeme)-2]
	}
	return lexeme
}

// Unescape decodes JavaScript escape sequences. Malformed escapes decode
// to the escaped character itself.
func Unescape(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch e := raw[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if i+2 < len(raw) {
				if v, err := strconv.ParseUint(raw[i+1:i+3], 16, 8); err == nil {
					b.WriteRune(rune(v))
					i += 2
					continue
				}
			}
			b.WriteByte(e)
		case 'u':
			if n := matchUnicodeEscape(raw[i-1:]); n > 0 {
				digits := strings.Trim(raw[i+1:i-1+n], "{}")
				if v, err := strconv.ParseUint(digits, 16, 32); err == nil && utf8.ValidRune(rune(v)) {
					b.WriteRune(rune(v))
					i += n - 2
					continue
				}
			}
			b.WriteByte(e)
		default:
			r, width := utf8.DecodeRuneInString(raw[i:])
			b.WriteRune(r)
			i += width - 1
		}
	}
	return b.String()
}

// NumberValue returns the numeric value of a number literal lexeme.
func NumberValue(lexeme string) float64 {
	clean := strings.ReplaceAll(lexeme, "_", "")
	if len(clean) > 1 && clean[0] == '0' && strings.ContainsAny(clean[1:2], "xXoObB") {
		if v, err := strconv.ParseUint(clean, 0, 64); err == nil {
			return float64(v)
		}
		var n big.Int
		if _, ok := n.SetString(clean, 0); ok {
			f, _ := new(big.Float).SetInt(&n).Float64()
			return f
		}
		return 0
	}
	v, _ := strconv.ParseFloat(clean, 64)
	return v
}

// BigIntValue returns the value of a bigint literal lexeme ("10n").
func BigIntValue(lexeme string) *big.Int {
	var n big.Int
	if _, ok := n.SetString(strings.TrimSuffix(lexeme, "n"), 0); !ok {
		return new(big.Int)
	}
	return &n
}
