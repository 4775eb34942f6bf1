// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expfmt reads and writes tables of experiment measurements.
//
// An experiment file is a delimited text file whose first record
// names the columns and whose remaining records are numeric
// measurements, one field per column:
//
//	rank;|e|;vertices_num;height;time;
//	2;10;17;4;153;
//	2;10;21;5;160;
//
// Many of these files end each record with a delimiter. The Reader
// treats a single empty trailing field as an artifact of that and
// drops it.
package expfmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumn is returned (wrapped in a *ColumnError) when a
// column name or index does not exist in a Table.
var ErrInvalidColumn = errors.New("invalid column")

// ErrMalformedInput is returned (wrapped in a *MissingColumnError)
// when an input file lacks a column the caller requires.
var ErrMalformedInput = errors.New("malformed input")

// A ColumnError reports a reference to a column a Table does not have.
type ColumnError struct {
	// Name is the requested column name, or "" if the column was
	// requested by index.
	Name string
	// Index is the requested column index. It is meaningful only
	// if Name is "".
	Index int
	// NumColumns is the number of columns in the Table.
	NumColumns int
}

func (e *ColumnError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown column %q", e.Name)
	}
	return fmt.Sprintf("column index %d out of range [0,%d)", e.Index, e.NumColumns)
}

func (e *ColumnError) Unwrap() error {
	return ErrInvalidColumn
}

// A MissingColumnError reports that an input file does not have one
// or more required columns.
type MissingColumnError struct {
	FileName string
	Columns  []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column(s) %s", e.FileName, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMalformedInput
}

// A Table is an immutable set of rows with named columns.
//
// Methods that return slices return the Table's own storage. Callers
// must not modify them.
type Table struct {
	names []string
	index map[string]int
	rows  []Row
}

// NewTable returns a Table with the given column names and rows.
// Column names must be unique and every row must have exactly
// len(names) fields. NewTable takes ownership of rows.
func NewTable(names []string, rows []Row) (*Table, error) {
	t := &Table{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
		rows:  rows,
	}
	for i, name := range t.names {
		if _, ok := t.index[name]; ok {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		t.index[name] = i
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d fields, want %d", i, len(row), len(names))
		}
	}
	return t, nil
}

func indexOf(names []string) map[string]int {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return index
}

// Columns returns the column names of t in order.
func (t *Table) Columns() []string {
	return t.names
}

// NumColumns returns the number of columns in t.
func (t *Table) NumColumns() int {
	return len(t.names)
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns all rows of t in input order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return -1, &ColumnError{Name: name, NumColumns: len(t.names)}
	}
	return i, nil
}

// CheckColumn returns a *ColumnError if i is not a column index of t.
func (t *Table) CheckColumn(i int) error {
	if i < 0 || i >= len(t.names) {
		return &ColumnError{Index: i, NumColumns: len(t.names)}
	}
	return nil
}

// Require returns a *MissingColumnError listing every name in names
// that is not a column of t. fileName is used in the error message.
func (t *Table) Require(fileName string, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{fileName, missing}
	}
	return nil
}

// Filter returns a new Table holding the rows of t for which keep
// returns true. The rows are shared with t.
func (t *Table) Filter(keep func(Row) bool) *Table {
	var rows []Row
	for _, row := range t.rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return &Table{t.names, t.index, rows}
}
