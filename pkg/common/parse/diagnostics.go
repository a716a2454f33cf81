/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// Sink receives recoverable diagnostics.
type Sink interface {
	Report(err SyntaxError)
}

// Diagnostics is a Sink that keeps everything it is given, in order.
type Diagnostics struct {
	Errors []SyntaxError
}

func (d *Diagnostics) Report(err SyntaxError) {
	d.Errors = append(d.Errors, err)
}

// FlushTo hands every buffered diagnostic to dst and empties d.
func (d *Diagnostics) FlushTo(dst Sink) {
	for _, err := range d.Errors {
		dst.Report(err)
	}
	d.Errors = nil
}

func (d *Diagnostics) Len() int {
	return len(d.Errors)
}

type discard struct{}

func (discard) Report(SyntaxError) {}

// Discard drops every diagnostic reported to it.
var Discard Sink = discard{}
