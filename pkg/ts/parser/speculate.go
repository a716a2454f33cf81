/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"github.com/dburkart/tstype/pkg/common/parse"
)

// tryParse runs op against a snapshot of the parser. If op returns true
// its tokens and diagnostics are kept; if it returns false or fails with a
// syntax error the parser is left exactly as it was.
func tryParse[T any](p *Parser, op func() (T, bool)) (result T, ok bool) {
	saved := p.state
	shadow := &parse.Diagnostics{}
	p.state.sink = shadow

	defer func() {
		if r := recover(); r != nil {
			syntaxErr, isSyntax := r.(parse.SyntaxError)
			if !isSyntax {
				panic(r)
			}
			p.log.Trace().Int("offset", syntaxErr.Location.Start).Str("error", syntaxErr.Message).Msg("speculation failed")
			ok = false
		}

		if !ok {
			var zero T
			result = zero
			p.state = saved
			p.observer.Speculation(Discarded)
			p.log.Trace().Int("offset", p.pos()).Bool("inType", p.has(ctxInType)).Msg("speculation discarded")
			return
		}

		p.state.sink = saved.sink
		shadow.FlushTo(saved.sink)
		p.observer.Speculation(Committed)
		p.log.Trace().Int("offset", p.pos()).Bool("inType", p.has(ctxInType)).Msg("speculation committed")
	}()

	return op()
}

func tryParseBool(p *Parser, op func() bool) bool {
	_, ok := tryParse(p, func() (struct{}, bool) {
		return struct{}{}, op()
	})
	return ok
}

// lookAhead runs op against a snapshot and always restores it. Diagnostics
// are dropped and a syntax error yields the zero value.
func lookAhead[T any](p *Parser, op func() T) (result T) {
	saved := p.state
	p.state.sink = parse.Discard

	defer func() {
		if r := recover(); r != nil {
			if _, isSyntax := r.(parse.SyntaxError); !isSyntax {
				panic(r)
			}
			var zero T
			result = zero
		}
		p.state = saved
		p.observer.Speculation(LookedAhead)
	}()

	return op()
}
