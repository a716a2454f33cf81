/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/rs/zerolog"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/ast"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

// DefaultMaxDepth bounds recursion through the type and expression
// grammars.
const DefaultMaxDepth = 1000

// Outcome is the result of a speculative attempt.
type Outcome int

const (
	// Committed attempts kept their tokens.
	Committed Outcome = iota
	// Discarded attempts were rolled back.
	Discarded
	// LookedAhead marks look-aheads, which are always rolled back.
	LookedAhead
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case Discarded:
		return "discarded"
	}
	return "looked-ahead"
}

// Observer is notified of parser events. Implementations must be cheap:
// they are called on every speculative attempt.
type Observer interface {
	Speculation(outcome Outcome)
}

type nopObserver struct{}

func (nopObserver) Speculation(Outcome) {}

// state is everything a speculative attempt may change. It is copied by
// value to take a snapshot.
type state struct {
	pos     int
	split   int
	prevEnd int
	ctx     Context
	tokCtx  *tokenContext
	depth   int
	sink    parse.Sink
	// commaInserted stands in for a comma after enum member recovery.
	commaInserted bool
}

type Parser struct {
	Input    string
	tokens   []parse.Token
	state    state
	diags    *parse.Diagnostics
	maxDepth int
	log      zerolog.Logger
	observer Observer
}

type Option func(*Parser)

func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = logger
	}
}

func WithObserver(observer Observer) Option {
	return func(p *Parser) {
		if observer != nil {
			p.observer = observer
		}
	}
}

// New tokenizes input and returns a parser positioned at its first token.
// Lexical errors are returned as *parse.SyntaxError.
func New(input string, opts ...Option) (*Parser, error) {
	tokens, err := scanner.Tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		Input:    input,
		tokens:   tokens,
		diags:    &parse.Diagnostics{},
		maxDepth: DefaultMaxDepth,
		log:      zerolog.Nop(),
		observer: nopObserver{},
	}
	p.state.sink = p.diags

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Tokens returns the token buffer, including the trailing TOK_EOF.
func (p *Parser) Tokens() []parse.Token {
	return p.tokens
}

// Diagnostics returns the recoverable errors found along the committed
// parse path.
func (p *Parser) Diagnostics() []parse.SyntaxError {
	return p.diags.Errors
}

// run executes body, converting a hard syntax failure into an error.
func (p *Parser) run(body func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			syntaxErr, ok := r.(parse.SyntaxError)
			if !ok {
				panic(r)
			}
			p.log.Debug().Int("offset", syntaxErr.Location.Start).Str("error", syntaxErr.Message).Msg("parse failed")
			err = &syntaxErr
		}
	}()

	body()
	return nil
}

// ParseModule parses the input as a sequence of top-level statements.
func (p *Parser) ParseModule() (*ast.Module, error) {
	var module *ast.Module
	err := p.run(func() {
		module = p.parseModule()
	})
	return module, err
}

// ParseType parses the whole input as a single type.
func (p *Parser) ParseType() (ast.Type, error) {
	var t ast.Type
	err := p.run(func() {
		t = inType(p, p.parseType)
		p.expect(scanner.TOK_EOF)
	})
	return t, err
}

// ParseExpression parses the whole input as a single expression.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	var e ast.Expr
	err := p.run(func() {
		e = p.parseExpr()
		p.expect(scanner.TOK_EOF)
	})
	return e, err
}

func (p *Parser) parseModule() *ast.Module {
	start := p.cur().Location.Start
	var body []ast.Stmt
	withContext(p, ctxTopLevel, 0, func() struct{} {
		for !p.is(scanner.TOK_EOF) {
			body = append(body, p.parseStatement())
		}
		return struct{}{}
	})
	return &ast.Module{BaseNode: ast.BaseNode{Loc: parse.Location{Start: start, End: p.cur().Location.End}}, Body: body}
}

// ParseModuleString parses input as a module.
func ParseModuleString(input string, opts ...Option) (*ast.Module, []parse.SyntaxError, error) {
	p, err := New(input, opts...)
	if err != nil {
		return nil, nil, err
	}
	module, err := p.ParseModule()
	return module, p.Diagnostics(), err
}

// ParseTypeString parses input as a single type.
func ParseTypeString(input string, opts ...Option) (ast.Type, []parse.SyntaxError, error) {
	p, err := New(input, opts...)
	if err != nil {
		return nil, nil, err
	}
	t, err := p.ParseType()
	return t, p.Diagnostics(), err
}
