// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latextab

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fgcrypto/expstat/expfmt"
	"github.com/fgcrypto/expstat/expmath"
	"github.com/fgcrypto/expstat/expproc"
	"github.com/fgcrypto/expstat/expunit"
)

func table(t *testing.T, pairs ...int64) *expfmt.Table {
	t.Helper()
	var rows []expfmt.Row
	for i := 0; i < len(pairs); i += 2 {
		rows = append(rows, expfmt.Row{expfmt.IntValue(pairs[i]), expfmt.IntValue(pairs[i+1])})
	}
	tab, err := expfmt.NewTable([]string{"|e|", "v"}, rows)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestWrite(t *testing.T) {
	check := func(golden, title string, tab *expfmt.Table, aggs []expmath.Aggregate, scale func(float64) float64) {
		t.Helper()
		s, err := expproc.SummaryTable(tab, 0, 1, nil, aggs, scale)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := Write(&buf, title, s, expunit.DefaultPrec); err != nil {
			t.Fatal(err)
		}
		want, err := os.ReadFile(filepath.Join("testdata", golden))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(want), buf.String()); diff != "" {
			t.Errorf("%s: output differs (-want +got):\n%s", golden, diff)
		}
	}

	ms, err := expunit.ParseScale("ms:s")
	if err != nil {
		t.Fatal(err)
	}
	check("summary.tex", "Nielsen composition time, s",
		table(t, 2, 100, 3, 900, 2, 400, 2, 150),
		[]expmath.Aggregate{expmath.AggMax, expmath.AggMedian, expmath.AggMin},
		ms.Func())
	check("height.tex", "height",
		table(t, 3, 12, 2, 4, 2, 7),
		[]expmath.Aggregate{expmath.AggMax, expmath.AggMean},
		nil)
}
