// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expunit converts and formats measured values.
package expunit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fgcrypto/expstat/expfmt"
)

// A Scale converts values measured in one unit to another by
// dividing by a constant factor.
type Scale struct {
	Name   string  // "from:to", for example "ms:s"
	Factor float64 // Number of source units in one target unit
}

// Apply converts v.
func (s Scale) Apply(v float64) float64 {
	return v / s.Factor
}

// Func returns s as a function suitable for an element-wise value
// transform, or nil if s is the identity.
func (s Scale) Func() func(float64) float64 {
	if s.Factor == 1 || s.Factor == 0 {
		return nil
	}
	return s.Apply
}

// Unit returns the target unit of s, or "" for the identity scale.
func (s Scale) Unit() string {
	if _, to, ok := strings.Cut(s.Name, ":"); ok {
		return to
	}
	return ""
}

// NoScale leaves values unchanged.
var NoScale = Scale{"none", 1}

var scales = map[string]Scale{
	"none":  NoScale,
	"ms:s":  {"ms:s", 1e3},
	"us:ms": {"us:ms", 1e3},
	"us:s":  {"us:s", 1e6},
	"ns:us": {"ns:us", 1e3},
	"ns:ms": {"ns:ms", 1e6},
	"ns:s":  {"ns:s", 1e9},
}

// ParseScale returns the named Scale. The empty string is NoScale.
func ParseScale(name string) (Scale, error) {
	if name == "" {
		return NoScale, nil
	}
	s, ok := scales[name]
	if !ok {
		var names []string
		for n := range scales {
			names = append(names, n)
		}
		sort.Strings(names)
		return Scale{}, fmt.Errorf("unknown scale %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return s, nil
}

// DefaultPrec is the number of digits after the decimal point used
// for floating-point cells.
const DefaultPrec = 3

// Format formats v for display. Integers are printed exactly.
// Floating-point values are printed with prec digits after the
// decimal point; a negative prec uses the smallest number of digits
// that represents v exactly.
func Format(v expfmt.Value, prec int) string {
	if v.Kind == expfmt.Int {
		return strconv.FormatInt(v.Int(), 10)
	}
	return strconv.FormatFloat(v.Float(), 'f', prec, 64)
}
