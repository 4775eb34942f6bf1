// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expfmt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var valueCmp = cmp.Comparer(func(a, b Value) bool {
	return a.Kind == b.Kind && a.String() == b.String()
})

func parseAll(t *testing.T, data string, comma rune) ([]string, []Row, error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	r.Comma = comma
	header, err := r.Header()
	if err != nil {
		return nil, nil, err
	}
	var rows []Row
	for r.Scan() {
		rows = append(rows, r.Row())
	}
	return header, rows, r.Err()
}

func ints(xs ...int64) Row {
	row := make(Row, len(xs))
	for i, x := range xs {
		row[i] = IntValue(x)
	}
	return row
}

func TestReader(t *testing.T) {
	check := func(name, data string, comma rune, wantHeader []string, wantRows []Row) {
		t.Helper()
		header, rows, err := parseAll(t, data, comma)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			return
		}
		if diff := cmp.Diff(wantHeader, header); diff != "" {
			t.Errorf("%s: header mismatch (-want +got):\n%s", name, diff)
		}
		if diff := cmp.Diff(wantRows, rows, valueCmp); diff != "" {
			t.Errorf("%s: rows mismatch (-want +got):\n%s", name, diff)
		}
	}

	check("trailing delimiter",
		"key_length;time;height;vertices_num;\n5;120;3;7;\n10;250;4;12;\n", ';',
		[]string{"key_length", "time", "height", "vertices_num"},
		[]Row{ints(5, 120, 3, 7), ints(10, 250, 4, 12)})

	check("no trailing delimiter",
		"a;b\n1;2\n", ';',
		[]string{"a", "b"},
		[]Row{ints(1, 2)})

	check("comma",
		"|u|,|v|,|c|,time,\n1,2,3,40,\n", ',',
		[]string{"|u|", "|v|", "|c|", "time"},
		[]Row{ints(1, 2, 3, 40)})

	check("floats",
		"val;conj_val;min_val;\n1.5;2;0.25;\n", ';',
		[]string{"val", "conj_val", "min_val"},
		[]Row{{FloatValue(1.5), IntValue(2), FloatValue(0.25)}})

	check("blank lines",
		"a;\n\n1;\n\n2;\n", ';',
		[]string{"a"},
		[]Row{ints(1), ints(2)})

	check("header only", "a;b;\n", ';', []string{"a", "b"}, nil)
}

func TestReaderErrors(t *testing.T) {
	checkErr := func(data string, line int, msg string) {
		t.Helper()
		_, _, err := parseAll(t, data, ';')
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: want *SyntaxError, got %v", data, err)
			return
		}
		if se.Line != line || se.Msg != msg {
			t.Errorf("%q: got %d:%s, want %d:%s", data, se.Line, se.Msg, line, msg)
		}
	}
	checkErr("", 0, "missing header")
	checkErr("a;a;\n", 1, `duplicate column "a"`)
	checkErr("a;;b\n", 1, "empty name for column 1")
	checkErr("a;b;\n1;2;\n1;\n", 3, "have 1 fields, want 2")
	checkErr("a;b;\n1;x;\n", 2, `column b: invalid number "x"`)
	checkErr("a;b;\n1;NaN;\n", 2, `column b: non-finite value "NaN"`)
	checkErr("a;b;\n1;2;3;\n", 2, "have 3 fields, want 2")
}

func TestReadTableRequired(t *testing.T) {
	r := NewReader(strings.NewReader("val;conj_val;\n1;2;\n"), "lba.csv")
	_, err := r.ReadTable("val", "conj_val", "min_val")
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput, got %v", err)
	}
	if got, want := err.Error(), "lba.csv: missing required column(s) min_val"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aag.csv")
	if err := os.WriteFile(path, []byte("|u|,time,\n1,10,\n2,20,\n"), 0666); err != nil {
		t.Fatal(err)
	}
	tab, err := ReadFile(path, ',', "time")
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 2 || tab.NumColumns() != 2 {
		t.Errorf("got %d rows x %d cols, want 2 x 2", tab.Len(), tab.NumColumns())
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), ','); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want ErrNotExist, got %v", err)
	}
}
