// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows [][]textCell
	// rules[i] is the character of a horizontal rule drawn in place
	// of row i, or 0.
	rules []rune
	cols  int
}

type textCell struct {
	value     string
	alignment align
}

type CellOption func(c *textCell)

var (
	Left  CellOption = func(c *textCell) { c.alignment = alignLeft }
	Right CellOption = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignRight
)

// pad pads s with spaces to width w.
func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	t.rules = append(t.rules, 0)
	return t
}

// Rule adds a row consisting of a horizontal line of ch spanning the
// width of the table.
func (t *Table) Rule(ch rune) *Table {
	t.Row()
	t.rules[len(t.rules)-1] = ch
	return t
}

// Cell adds a cell at the end of the current row. Cells are left
// aligned unless an option says otherwise.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 || t.rules[len(t.rules)-1] != 0 {
		t.Row()
	}
	c := textCell{value, alignLeft}
	for _, o := range opts {
		o(&c)
	}
	row := &t.rows[len(t.rows)-1]
	*row = append(*row, c)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format lays out table t and writes it to w. Columns are separated
// by a single space and lines carry no trailing spaces.
func (t *Table) Format(w io.Writer) error {
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.value); n > ws[i] {
				ws[i] = n
			}
		}
	}
	total := 0
	for i, n := range ws {
		if i > 0 {
			total++
		}
		total += n
	}

	var line strings.Builder
	for r, row := range t.rows {
		line.Reset()
		if ch := t.rules[r]; ch != 0 {
			line.WriteString(strings.Repeat(string(ch), total))
		} else {
			for i, c := range row {
				if i > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(c.alignment.pad(c.value, ws[i]))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
