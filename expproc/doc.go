// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expproc groups and aggregates the rows of an expfmt.Table.
//
// Every operation takes a Table, one or two column indexes and an
// optional Predicate that selects the rows to consider. Rows are
// grouped by the distinct values of a group column, and groups are
// always reported in ascending key order. Predicates are usually built
// from user-supplied filter expressions with NewFilter.
//
// The filter syntax is a boolean combination of column matches:
//
//	rank:3              column "rank" equals 3
//	time:..100          column "time" is at most 100
//	|e|:2..8            column "|e|" is between 2 and 8, inclusive
//	a:@b                columns "a" and "b" are equal
//	rank:(2 OR 3)       column "rank" is 2 or 3
//	-rank:1             negation
//	a:1 b:2             conjunction, also written a:1 AND b:2
//	a:1 OR b:2          disjunction
//	*                   matches every row
//
// Column names containing spaces or operator characters must be
// double-quoted.
//
// All operations are pure. A Table may be shared by concurrent callers.
package expproc
