// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expunit

import (
	"testing"

	"github.com/fgcrypto/expstat/expfmt"
)

func TestParseScale(t *testing.T) {
	check := func(name string, in, want float64, unit string) {
		t.Helper()
		s, err := ParseScale(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			return
		}
		if got := s.Apply(in); got != want {
			t.Errorf("%s: Apply(%v) = %v, want %v", name, in, got, want)
		}
		if got := s.Unit(); got != unit {
			t.Errorf("%s: Unit() = %q, want %q", name, got, unit)
		}
	}
	check("", 1500, 1500, "")
	check("none", 1500, 1500, "")
	check("ms:s", 1500, 1.5, "s")
	check("us:ms", 250, 0.25, "ms")
	check("ns:s", 2e9, 2, "s")

	if _, err := ParseScale("s:ms"); err == nil {
		t.Errorf("unknown scale: want error")
	}
	if NoScale.Func() != nil {
		t.Errorf("NoScale.Func() should be nil")
	}
	if f := scales["ms:s"].Func(); f == nil || f(2000) != 2 {
		t.Errorf("ms:s Func broken")
	}
}

func TestFormat(t *testing.T) {
	check := func(v expfmt.Value, prec int, want string) {
		t.Helper()
		if got := Format(v, prec); got != want {
			t.Errorf("Format(%v, %d) = %q, want %q", v, prec, got, want)
		}
	}
	check(expfmt.IntValue(42), 3, "42")
	check(expfmt.IntValue(-7), 0, "-7")
	check(expfmt.FloatValue(15), 3, "15.000")
	check(expfmt.FloatValue(2.0/3), 3, "0.667")
	check(expfmt.FloatValue(0.125), -1, "0.125")
}
