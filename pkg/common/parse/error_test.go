/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "testing"

func TestFormatErrorMultiline(t *testing.T) {
	input := "type A = string;\ntype B = ;\n"
	err := NewCodedError(Location{Start: 26, End: 27}, "", "type expected")

	expected := "Syntax error found at 2:10:\ntype B = ;\n         ^ type expected\n"
	if actual := err.FormatError(input); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

func TestLineColumn(t *testing.T) {
	line, col := LineColumn("a\nbc\nd", 4)
	if line != 2 || col != 3 {
		t.Errorf("expected 2:3, got %d:%d", line, col)
	}
}

func TestDiagnosticsFlush(t *testing.T) {
	shadow := &Diagnostics{}
	shadow.Report(SyntaxError{Message: "one"})
	shadow.Report(SyntaxError{Message: "two"})

	dst := &Diagnostics{}
	shadow.FlushTo(dst)
	Discard.Report(SyntaxError{Message: "dropped"})

	if shadow.Len() != 0 || dst.Len() != 2 || dst.Errors[1].Message != "two" {
		t.Errorf("unexpected diagnostics after flush: %v / %v", shadow.Errors, dst.Errors)
	}
}
