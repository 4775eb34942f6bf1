// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expfmt

import (
	"encoding/csv"
	"io"
)

// A Writer writes experiment tables in the format Reader reads.
//
// Like the benchmark driver that produces these files, Writer ends
// every record with a delimiter.
type Writer struct {
	// Comma is the field delimiter. NewWriter sets it to ';'.
	Comma rune

	w   io.Writer
	csv *csv.Writer
	rec []string
}

// NewWriter returns a Writer that writes tables to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Comma: ';', w: w}
}

func (w *Writer) write(fields []string) error {
	if w.csv == nil {
		w.csv = csv.NewWriter(w.w)
		w.csv.Comma = w.Comma
	}
	w.rec = append(w.rec[:0], fields...)
	w.rec = append(w.rec, "")
	return w.csv.Write(w.rec)
}

// WriteHeader writes the header record. It should be called once,
// before any call to WriteRow.
func (w *Writer) WriteHeader(names []string) error {
	return w.write(names)
}

// WriteRow writes a single row.
func (w *Writer) WriteRow(row Row) error {
	fields := make([]string, len(row))
	for i, v := range row {
		fields[i] = v.String()
	}
	return w.write(fields)
}

// Flush writes any buffered data to the underlying io.Writer and
// reports any error that occurred during a previous write.
func (w *Writer) Flush() error {
	if w.csv == nil {
		return nil
	}
	w.csv.Flush()
	return w.csv.Error()
}

// WriteTable writes the header and every row of t and flushes w.
func (w *Writer) WriteTable(t *Table) error {
	if err := w.WriteHeader(t.Columns()); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	return w.Flush()
}
