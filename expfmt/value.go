// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expfmt

import (
	"strconv"
)

// A Kind records whether a Value was an integer or a floating-point
// number.
type Kind uint8

const (
	Int Kind = iota
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Value is a single numeric field of a Row.
//
// The zero Value is the integer 0.
type Value struct {
	Kind Kind
	i    int64
	f    float64
}

// IntValue returns an integer Value.
func IntValue(i int64) Value {
	return Value{Kind: Int, i: i}
}

// FloatValue returns a floating-point Value.
func FloatValue(f float64) Value {
	return Value{Kind: Float, f: f}
}

// Float returns v as a float64. Integers are converted exactly up to
// 2^53.
func (v Value) Float() float64 {
	if v.Kind == Int {
		return float64(v.i)
	}
	return v.f
}

// Int returns v as an int64, truncating floating-point values toward
// zero.
func (v Value) Int() int64 {
	if v.Kind == Int {
		return v.i
	}
	return int64(v.f)
}

// String formats v with the smallest number of digits that
// represents it exactly. This is the form Writer emits.
func (v Value) String() string {
	if v.Kind == Int {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}

// A Row is one record of a Table: one Value per column.
type Row []Value
