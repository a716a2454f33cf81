/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

// Diagnostic codes shared with the TypeScript compiler.
const (
	codeExpected               = "TS1005"
	codeIdentifierExpected     = "TS1003"
	codeModifierAlreadySeen    = "TS1030"
	codeModifierOrder          = "TS1029"
	codeDeclareInAmbient       = "TS1038"
	codeIndexSignatureComma    = "TS1096"
	codeStringLiteralExpected  = "TS1141"
	codeComputedEnumMember     = "TS1164"
	codeInterfaceExtendsTwice  = "TS1172"
	codeTypeParamModifier      = "TS1273"
	codeInOutModifier          = "TS1274"
	codeConstModifier          = "TS1277"
	codeModifierOnTypeRef      = "TS2369"
	codeReservedInterfaceName  = "TS2427"
	codeNumericEnumMember      = "TS2452"
	codeInvalidHeritage        = "TS2499"
	codePrivateNameInInterface = "TS18016"
)

const (
	errNestingTooDeep        = "type nesting too deep"
	errRequiredAfterOptional = "A required element cannot follow an optional element."
	errReadonlyMethod        = "'readonly' modifier can only appear on a property declaration or index signature."
	errSetterParam           = "A 'set' accessor must have exactly one parameter."
	errTypeExpected          = "a type: an identifier, keyword type, literal, template, '-', 'import', 'this', 'typeof', '{', '[' or '('"
)

// fail aborts the current production. Outside a speculative attempt the
// failure ends the parse.
func (p *Parser) fail(loc parse.Location, code, msg string) {
	panic(parse.NewCodedError(loc, code, msg))
}

// emit records a recoverable diagnostic in the active sink.
func (p *Parser) emit(loc parse.Location, code, msg string) {
	p.state.sink.Report(parse.NewCodedError(loc, code, msg))
}

func describe(tok parse.Token) string {
	if scanner.Is(tok, scanner.TOK_EOF) {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

// errUnexpected describes the current token as the wrong one. Callers that
// need a terminating statement panic with it directly.
func (p *Parser) errUnexpected(expected string) parse.SyntaxError {
	tok := p.cur()
	return parse.NewCodedError(tok.Location, "", fmt.Sprintf("unexpected token %s, expected %s", describe(tok), expected))
}

func (p *Parser) unexpected(expected string) {
	panic(p.errUnexpected(expected))
}
