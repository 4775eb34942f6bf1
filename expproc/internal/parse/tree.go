// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"math"
	"strconv"
	"strings"
)

// Filter is a parsed filter expression: a *FilterOp or a
// *FilterMatch.
type Filter interface {
	isFilter()
	String() string
}

// A FilterMatch is a leaf in a Filter tree that tests the value of a
// specific column.
type FilterMatch struct {
	Key string

	// Ref, if non-empty, names another column. The match succeeds
	// when the two columns of a row hold equal values, and Lo and
	// Hi are ignored.
	Ref string

	// Lo and Hi are the inclusive bounds the value must lie within.
	// A literal match has Lo == Hi. Unbounded sides are infinite.
	Lo, Hi float64

	// Off is the byte offset of the key in the original query,
	// for error reporting.
	Off int
}

func (q *FilterMatch) isFilter() {}
func (q *FilterMatch) String() string {
	key := quoteWord(q.Key) + ":"
	if q.Ref != "" {
		return key + "@" + quoteWord(q.Ref)
	}
	if q.Lo == q.Hi {
		return key + formatBound(q.Lo)
	}
	var lo, hi string
	if !math.IsInf(q.Lo, -1) {
		lo = formatBound(q.Lo)
	}
	if !math.IsInf(q.Hi, 1) {
		hi = formatBound(q.Hi)
	}
	return key + lo + ".." + hi
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Match returns whether value lies within q's bounds. It must not be
// used when q.Ref is set.
func (q *FilterMatch) Match(value float64) bool {
	return q.Lo <= value && value <= q.Hi
}

// A FilterOp combines child filters. OpNot has exactly one child;
// OpAnd and OpOr have any number. An OpAnd with no children matches
// everything, and an OpOr with none matches nothing.
type FilterOp struct {
	Op    Op
	Exprs []Filter
}

func (q *FilterOp) isFilter() {}
func (q *FilterOp) String() string {
	if q.Op == OpNot {
		return "-" + q.Exprs[0].String()
	}
	if len(q.Exprs) == 0 {
		if q.Op == OpAnd {
			return "*"
		}
		return "-*"
	}
	sep := " AND "
	if q.Op == OpOr {
		sep = " OR "
	}
	parts := make([]string, len(q.Exprs))
	for i, e := range q.Exprs {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Op is a boolean operator.
type Op int

const (
	OpAnd Op = 1 + iota
	OpOr
	OpNot
)
