// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expfmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTable(t *testing.T) {
	tab, err := NewTable([]string{"id", "x", "y"}, []Row{ints(0, 1, 10), ints(1, 1, 20)})
	if err != nil {
		t.Fatal(err)
	}
	if i, err := tab.Column("y"); err != nil || i != 2 {
		t.Errorf("Column(y) = %d, %v; want 2, nil", i, err)
	}
	if _, err := tab.Column("z"); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("Column(z): want ErrInvalidColumn, got %v", err)
	}
	if err := tab.CheckColumn(99); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("CheckColumn(99): want ErrInvalidColumn, got %v", err)
	} else if got, want := err.Error(), "column index 99 out of range [0,3)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := tab.CheckColumn(0); err != nil {
		t.Errorf("CheckColumn(0): %v", err)
	}

	if _, err := NewTable([]string{"a", "a"}, nil); err == nil {
		t.Errorf("duplicate names: want error")
	}
	if _, err := NewTable([]string{"a", "b"}, []Row{ints(1)}); err == nil {
		t.Errorf("short row: want error")
	}
}

func TestTableFilter(t *testing.T) {
	tab, err := NewTable([]string{"rank", "time"}, []Row{ints(2, 10), ints(3, 20), ints(2, 30)})
	if err != nil {
		t.Fatal(err)
	}
	got := tab.Filter(func(r Row) bool { return r[0].Int() == 2 })
	if diff := cmp.Diff([]Row{ints(2, 10), ints(2, 30)}, got.Rows(), valueCmp); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
	if tab.Len() != 3 {
		t.Errorf("Filter modified the original table")
	}
}

func TestWriterRoundTrip(t *testing.T) {
	const in = "rank;|e|;time;\n2;10;1.5;\n3;20;250;\n"
	tab, err := NewReader(strings.NewReader(in), "in").ReadTable()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteTable(tab); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != in {
		t.Errorf("got:\n%s\nwant:\n%s", got, in)
	}
}
