// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"go.uber.org/zap"

	"github.com/fgcrypto/expstat/expfmt"
	"github.com/fgcrypto/expstat/expproc"
)

// load reads the named file. It fails if the file lacks any of the
// required columns.
func (a *app) load(file string, required ...string) (*expfmt.Table, error) {
	comma, err := a.comma()
	if err != nil {
		return nil, err
	}
	t, err := expfmt.ReadFile(file, comma, required...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded table",
		zap.String("file", file),
		zap.Int("rows", t.Len()),
		zap.Strings("columns", t.Columns()))
	return t, nil
}

// predicate compiles the filter queries that apply to t. Empty
// queries are ignored, and the result is nil if no query remains.
func predicate(t *expfmt.Table, queries ...string) (expproc.Predicate, error) {
	var preds []expproc.Predicate
	for _, q := range queries {
		if q == "" {
			continue
		}
		f, err := expproc.NewFilter(q)
		if err != nil {
			return nil, err
		}
		p, err := f.Predicate(t)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return and(preds...), nil
}

// and returns the conjunction of preds, ignoring nil entries.
func and(preds ...expproc.Predicate) expproc.Predicate {
	var ps []expproc.Predicate
	for _, p := range preds {
		if p != nil {
			ps = append(ps, p)
		}
	}
	switch len(ps) {
	case 0:
		return nil
	case 1:
		return ps[0]
	}
	return func(row expfmt.Row) bool {
		for _, p := range ps {
			if !p(row) {
				return false
			}
		}
		return true
	}
}

// countRows returns the number of rows of t selected by pred.
func countRows(t *expfmt.Table, pred expproc.Predicate) int {
	if pred == nil {
		return t.Len()
	}
	return t.Filter(pred).Len()
}

// splitValues returns the distinct values of column col among the rows
// selected by pred, in ascending order, and a function returning the
// Predicate that selects the rows holding one of them. If col is "",
// there is a single section: one key and a builder returning nil.
func splitValues(t *expfmt.Table, col string, pred expproc.Predicate) ([]float64, func(float64) expproc.Predicate, error) {
	if col == "" {
		return []float64{0}, func(float64) expproc.Predicate { return nil }, nil
	}
	c, err := t.Column(col)
	if err != nil {
		return nil, nil, err
	}
	groups, err := expproc.GroupedValueLists(t, c, c, pred)
	if err != nil {
		return nil, nil, err
	}
	keys := make([]float64, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	eq := func(k float64) expproc.Predicate {
		return func(row expfmt.Row) bool { return row[c].Float() == k }
	}
	return keys, eq, nil
}

// columns resolves column names in t.
func columns(t *expfmt.Table, names ...string) ([]int, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return cols, nil
}
