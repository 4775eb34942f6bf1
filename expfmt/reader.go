// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// A Reader reads an experiment table from delimited text.
//
// Its API is modeled on bufio.Scanner. The header is read by the
// first call to Header or Scan.
type Reader struct {
	// Comma is the field delimiter. NewReader sets it to ';'.
	// It must be set before the first call to Header or Scan.
	Comma rune

	r        io.Reader
	csv      *csv.Reader
	fileName string
	line     int

	header []string
	row    Row
	err    error
}

// A SyntaxError represents a syntax error on a particular line of an
// experiment file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader to parse an experiment table from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{Comma: ';', r: r, fileName: fileName}
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// next reads the next record, with any trailing-delimiter artifact
// removed. It returns io.EOF at the end of the input.
func (r *Reader) next() ([]string, error) {
	if r.csv == nil {
		r.csv = csv.NewReader(r.r)
		r.csv.Comma = r.Comma
		r.csv.FieldsPerRecord = -1
		r.csv.ReuseRecord = true
	}
	rec, err := r.csv.Read()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &SyntaxError{r.fileName, pe.Line, pe.Err.Error()}
		}
		return nil, err
	}
	r.line, _ = r.csv.FieldPos(0)
	// Only an empty last field is an artifact. A last field with
	// data in it is kept.
	if n := len(rec); n > 1 && strings.TrimSpace(rec[n-1]) == "" {
		rec = rec[:n-1]
	}
	return rec, nil
}

// Header returns the column names from the first record of the
// input.
func (r *Reader) Header() ([]string, error) {
	if r.header != nil || r.err != nil {
		return r.header, r.err
	}
	rec, err := r.next()
	if err == io.EOF {
		r.err = &SyntaxError{r.fileName, 0, "missing header"}
		return nil, r.err
	} else if err != nil {
		r.err = err
		return nil, err
	}
	header := make([]string, len(rec))
	seen := make(map[string]bool, len(rec))
	for i, name := range rec {
		name = strings.TrimSpace(name)
		if name == "" {
			r.err = r.newSyntaxError(fmt.Sprintf("empty name for column %d", i))
			return nil, r.err
		}
		if seen[name] {
			r.err = r.newSyntaxError(fmt.Sprintf("duplicate column %q", name))
			return nil, r.err
		}
		seen[name] = true
		header[i] = name
	}
	r.header = header
	return header, nil
}

// Scan advances the reader to the next row and reports whether a row
// was read. The caller should use the Row method to get the row. If
// Scan reaches EOF or an error occurs, it returns false, in which case
// the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if _, err := r.Header(); err != nil {
		return false
	}
	rec, err := r.next()
	if err == io.EOF {
		return false
	} else if err != nil {
		r.err = err
		return false
	}
	if len(rec) != len(r.header) {
		r.err = r.newSyntaxError(fmt.Sprintf("have %d fields, want %d", len(rec), len(r.header)))
		return false
	}
	row := make(Row, len(rec))
	for i, field := range rec {
		v, err := parseValue(field)
		if err != nil {
			r.err = r.newSyntaxError(fmt.Sprintf("column %s: %s", r.header[i], err))
			return false
		}
		row[i] = v
	}
	r.row = row
	return true
}

// Row returns the row that was just read by Scan. The Row is newly
// allocated and may be retained by the caller.
func (r *Reader) Row() Row {
	return r.row
}

// Err returns the first error encountered by the Reader, if any. It
// returns nil if Scan stopped at the end of the input.
func (r *Reader) Err() error {
	return r.err
}

func parseValue(field string) (Value, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return Value{}, errors.New("empty value")
	}
	if i, err := strconv.ParseInt(field, 10, 64); err == nil {
		return IntValue(i), nil
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", field)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("non-finite value %q", field)
	}
	return FloatValue(f), nil
}

// ReadTable reads an entire table from r. If required is non-empty,
// ReadTable fails with a *MissingColumnError unless the header names
// every column in required.
func (r *Reader) ReadTable(required ...string) (*Table, error) {
	header, err := r.Header()
	if err != nil {
		return nil, err
	}
	// Check the header before reading any rows so a file in the
	// wrong format fails fast.
	if err := (&Table{index: indexOf(header)}).Require(r.fileName, required...); err != nil {
		return nil, err
	}
	var rows []Row
	for r.Scan() {
		rows = append(rows, r.Row())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return NewTable(header, rows)
}

// ReadFile reads the table stored in the named file, using comma as
// the field delimiter.
func ReadFile(path string, comma rune, required ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := NewReader(f, path)
	r.Comma = comma
	return r.ReadTable(required...)
}
