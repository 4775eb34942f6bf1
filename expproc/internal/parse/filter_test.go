// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"math"
	"testing"
)

func TestParseFilter(t *testing.T) {
	check := func(query string, want string) {
		t.Helper()
		q, err := ParseFilter(query)
		if err != nil {
			t.Errorf("%s: unexpected error %s", query, err)
		} else if got := q.String(); got != want {
			t.Errorf("%s: got %s, want %s", query, got, want)
		}
	}
	checkErr := func(query, error string, pos int) {
		t.Helper()
		_, err := ParseFilter(query)
		if se, _ := err.(*SyntaxError); se == nil || se.Msg != error || se.Off != pos {
			t.Errorf("%s: want error %s at %d; got %s", query, error, pos, err)
		}
	}
	check(`*`, `*`)
	check(`a:1`, `a:1`)
	checkErr(`a`, "expected key:value", 0)
	checkErr(`a :`, "expected key:value", 0)
	check(`a :1`, `a:1`)
	check(`a : 1`, `a:1`)
	checkErr(`a:`, "expected key:value", 0)
	checkErr(``, "expected key:value or subexpression", 0)
	checkErr(`()`, "expected key:value or subexpression", 1)
	checkErr(`AND`, "expected key:value or subexpression", 0)
	check(`"a b":"5"`, `"a b":5`)
	check(`"a☃":2`, "a☃:2")
	checkErr(`"a\z":1`, "bad escape sequence", 0)
	checkErr(`a "b`, "missing end quote", 2)
	check("a-b:1", `a-b:1`) // "-" inside bare word
	check("|e|:1", `|e|:1`)

	// Numbers
	check(`a:-3`, `a:-3`)
	check(`a:1e3`, `a:1000`)
	check(`a:0.25`, `a:0.25`)
	checkErr(`a:x`, "expected number", 2)
	checkErr(`a: x`, "expected number", 3)
	checkErr(`a:inf`, "expected number", 2)
	checkErr(`a:-`, "expected key:value", 0)

	// Ranges
	check(`a:1.5..2`, `a:1.5..2`)
	check(`a:..10`, `a:..10`)
	check(`a:3..`, `a:3..`)
	check(`a:-3..-1`, `a:-3..-1`)
	check(`a:2..2`, `a:2`)
	checkErr(`a:..`, "range needs at least one bound", 2)
	checkErr(`a:5..1`, "empty range", 2)
	checkErr(`a:1..x`, "expected number", 2)

	// Column references
	check(`a:@b`, `a:@b`)
	check(`"|e|":@"x y"`, `|e|:@"x y"`)
	check(`a:@ b`, `a:@b`)
	checkErr(`a:@`, "expected column name", 3)
	checkErr(`a:@(`, "expected column name", 3)

	// Parens
	check(`(a:1)`, `a:1`)
	checkErr(`(a:1`, "missing \")\"", 4)
	checkErr(`(a:1))`, "unexpected \")\"", 5)

	// Operators
	check(`a:1 b:2 c:3`, `(a:1 AND b:2 AND c:3)`)
	check(`-a:1`, `-a:1`)
	check(`-*`, `-*`)
	check(`a:1 AND b:2`, `(a:1 AND b:2)`)
	check(`-a:1 AND b:2`, `(-a:1 AND b:2)`)
	check(`-(a:1 AND b:2)`, `-(a:1 AND b:2)`)
	check(`a:1 AND * AND b:2`, `(a:1 AND * AND b:2)`)
	check(`a:1 OR b:2`, `(a:1 OR b:2)`)
	check(`a:1 b:2 OR c:3`, `((a:1 AND b:2) OR c:3)`)
	check(`a:1 AND (b:2 OR c:@d) AND e:..0`, `(a:1 AND (b:2 OR c:@d) AND e:..0)`)

	// Multi-match
	check(`a:(1 OR 2 OR 3)`, `(a:1 OR a:2 OR a:3)`)
	check(`a:(1 OR 2..3)`, `(a:1 OR a:2..3)`)
	checkErr(`a:(1 2)`, "value list must be separated by OR", 5)
	checkErr(`a:(1 AND 2)`, "value list must be separated by OR", 5)
	checkErr(`a:(1 OR AND)`, "expected value", 8)
	checkErr(`a:(1 OR x)`, "expected number", 8)
	checkErr(`a:()`, "expected value", 3)
}

func TestFilterMatch(t *testing.T) {
	q, err := ParseFilter(`a:2..4`)
	if err != nil {
		t.Fatal(err)
	}
	m := q.(*FilterMatch)
	for _, tc := range []struct {
		v    float64
		want bool
	}{{1.99, false}, {2, true}, {3, true}, {4, true}, {4.01, false}, {math.NaN(), false}} {
		if got := m.Match(tc.v); got != tc.want {
			t.Errorf("%s: Match(%v) = %v, want %v", m, tc.v, got, tc.want)
		}
	}

	q, err = ParseFilter(`a:..0`)
	if err != nil {
		t.Fatal(err)
	}
	m = q.(*FilterMatch)
	if !m.Match(-1e300) || m.Match(1) {
		t.Errorf("%s: bad open lower bound", m)
	}
}
