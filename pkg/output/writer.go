/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dburkart/tstype/pkg/ts/ast"
)

// Formats lists the accepted values of the output flag.
var Formats = []string{"text", "json", "yaml", "csv"}

// Printable is anything that renders as a table.
type Printable interface {
	Headers() []string
	Values() [][]string
}

type Writer interface {
	Write(v Printable) error
	WriteNode(node ast.Node) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

type YAMLWriter struct {
	w io.Writer
}

// IsFormat reports whether t names a supported output format.
func IsFormat(t string) bool {
	for _, f := range Formats {
		if f == t {
			return true
		}
	}
	return false
}

func NewWriter(w io.Writer, t string) Writer {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	case "yaml":
		return YAMLWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

// records pairs every row with the headers, for the structured formats.
func records(v Printable) []map[string]string {
	headers := v.Headers()
	out := []map[string]string{}
	for _, row := range v.Values() {
		record := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = row[i]
			}
		}
		out = append(out, record)
	}
	return out
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	return errors.Wrap(wtr.WriteAll(v.Values()), "writing csv rows")
}

func (w CSVWriter) WriteNode(node ast.Node) error {
	return w.Write(Nodes(node))
}

func (w TextWriter) Write(v Printable) error {
	headers := make([]any, 0, len(v.Headers()))
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(headers...)
	if err := table.Bulk(v.Values()); err != nil {
		return errors.Wrap(err, "building table")
	}
	return errors.Wrap(table.Render(), "rendering table")
}

func (w TextWriter) WriteNode(node ast.Node) error {
	_, err := io.WriteString(w.w, ast.Dump(node))
	return err
}

func (w JSONWriter) Write(v Printable) error {
	enc := json.NewEncoder(w.w)
	return enc.Encode(records(v))
}

func (w JSONWriter) WriteNode(node ast.Node) error {
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ast.Tree(node))
}

func (w YAMLWriter) Write(v Printable) error {
	enc := yaml.NewEncoder(w.w)
	defer enc.Close()
	return enc.Encode(records(v))
}

func (w YAMLWriter) WriteNode(node ast.Node) error {
	enc := yaml.NewEncoder(w.w)
	defer enc.Close()
	enc.SetIndent(2)
	return enc.Encode(ast.Tree(node))
}
