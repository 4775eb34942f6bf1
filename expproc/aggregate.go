// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expproc

import (
	"math"
	"sort"

	"github.com/fgcrypto/expstat/expfmt"
	"github.com/fgcrypto/expstat/expmath"
	"github.com/fgcrypto/expstat/expunit"
)

// ErrInvalidColumn is wrapped by every error reporting a column index
// outside a Table.
var ErrInvalidColumn = expfmt.ErrInvalidColumn

// A ColumnError reports an unknown column name or index.
type ColumnError = expfmt.ColumnError

// A Predicate reports whether a row should be considered. A nil
// Predicate selects every row.
type Predicate func(row expfmt.Row) bool

// A Point is one (x, y) observation taken from a single row.
type Point struct {
	X, Y float64
}

// A Group is the multiset of target values sharing one group key.
type Group struct {
	Key    float64
	Values []float64
}

// group is a group under construction. keyIsInt and valsAreInt track
// whether every key and value seen so far has Int kind.
type group struct {
	key        float64
	id         groupKey
	keyIsInt   bool
	vals       []float64
	valsAreInt bool
}

// A groupKey identifies a group. Integral keys compare as int64, so
// Int keys beyond 2^53 stay distinct and an integral Float joins the
// Int group of the same value. Other keys compare by their float64
// bits, with every NaN mapped to one key.
type groupKey struct {
	integral bool
	i        int64
	bits     uint64
}

func keyOf(v expfmt.Value) groupKey {
	if v.Kind == expfmt.Int {
		return groupKey{integral: true, i: v.Int()}
	}
	f := v.Float()
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return groupKey{integral: true, i: int64(f)}
	}
	if math.IsNaN(f) {
		f = math.NaN()
	}
	return groupKey{bits: math.Float64bits(f)}
}

func (g *group) less(h *group) bool {
	if g.id.integral && h.id.integral {
		return g.id.i < h.id.i
	}
	a, b := g.key, h.key
	if math.IsNaN(a) || math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	return a < b
}

func checkColumns(t *expfmt.Table, cols ...int) error {
	for _, c := range cols {
		if err := t.CheckColumn(c); err != nil {
			return err
		}
	}
	return nil
}

// groupBy partitions the rows of t selected by pred by the value of
// column g and returns the groups in ascending key order. NaN keys
// form a single group, ordered last.
func groupBy(t *expfmt.Table, g, tc int, pred Predicate) ([]*group, error) {
	if err := checkColumns(t, g, tc); err != nil {
		return nil, err
	}
	groups := make(map[groupKey]*group)
	var order []*group
	for _, row := range t.Rows() {
		if pred != nil && !pred(row) {
			continue
		}
		k, v := row[g], row[tc]
		id := keyOf(k)
		gr := groups[id]
		if gr == nil {
			gr = &group{key: k.Float(), id: id, keyIsInt: true, valsAreInt: true}
			if id.integral {
				gr.key = float64(id.i)
			}
			groups[id] = gr
			order = append(order, gr)
		}
		gr.keyIsInt = gr.keyIsInt && k.Kind == expfmt.Int
		gr.valsAreInt = gr.valsAreInt && v.Kind == expfmt.Int
		gr.vals = append(gr.vals, v.Float())
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].less(order[j])
	})
	return order, nil
}

// GroupAggregate groups the rows of t selected by pred by the value of
// column g and reduces the values of column tc in each group.
//
// keys holds the distinct group values in ascending order and values[i]
// is the reduction of the group with key keys[i]. Int keys are grouped
// exactly, but keys beyond 2^53 are rounded when returned as float64;
// SummaryTable reports them exactly. If no rows are
// selected, both slices are empty and reduce is never called.
func GroupAggregate(t *expfmt.Table, g, tc int, reduce expmath.Reducer, pred Predicate) (keys, values []float64, err error) {
	groups, err := groupBy(t, g, tc, pred)
	if err != nil {
		return nil, nil, err
	}
	keys = make([]float64, len(groups))
	values = make([]float64, len(groups))
	for i, gr := range groups {
		keys[i] = gr.key
		values[i] = reduce(gr.vals)
	}
	return keys, values, nil
}

// PairedSamples returns the (x, y) pair of every row of t selected by
// pred, in row order.
func PairedSamples(t *expfmt.Table, x, y int, pred Predicate) ([]Point, error) {
	if err := checkColumns(t, x, y); err != nil {
		return nil, err
	}
	pts := []Point{}
	for _, row := range t.Rows() {
		if pred != nil && !pred(row) {
			continue
		}
		pts = append(pts, Point{row[x].Float(), row[y].Float()})
	}
	return pts, nil
}

// GroupedValueLists is like GroupAggregate, but returns the full
// multiset of values in each group, in row order, instead of a
// reduction.
func GroupedValueLists(t *expfmt.Table, g, tc int, pred Predicate) ([]Group, error) {
	groups, err := groupBy(t, g, tc, pred)
	if err != nil {
		return nil, err
	}
	out := make([]Group, len(groups))
	for i, gr := range groups {
		out[i] = Group{gr.key, gr.vals}
	}
	return out, nil
}

// A Summary is a table of aggregates: one column per group key and
// one row per aggregate.
type Summary struct {
	Keys []expfmt.Value
	Rows []SummaryRow
}

// A SummaryRow holds one aggregate of every group of a Summary.
// Cells[i] corresponds to Summary.Keys[i].
type SummaryRow struct {
	Name  string
	Cells []expfmt.Value
}

// SummaryTable groups the rows of t selected by pred by the value of
// column g and computes each aggregate in aggs over the values of
// column tc in each group. If aggs is nil, it uses
// expmath.DefaultAggregates.
//
// If scale is non-nil, it is applied to every aggregate result. A cell
// has Int kind only if its aggregate selects one of its inputs, scale
// is nil, and every value in its group is an Int; otherwise it is a
// Float.
func SummaryTable(t *expfmt.Table, g, tc int, pred Predicate, aggs []expmath.Aggregate, scale func(float64) float64) (*Summary, error) {
	if aggs == nil {
		aggs = expmath.DefaultAggregates
	}
	groups, err := groupBy(t, g, tc, pred)
	if err != nil {
		return nil, err
	}
	s := &Summary{Keys: make([]expfmt.Value, len(groups))}
	for i, gr := range groups {
		if gr.keyIsInt {
			s.Keys[i] = expfmt.IntValue(gr.id.i)
		} else {
			s.Keys[i] = expfmt.FloatValue(gr.key)
		}
	}
	for _, agg := range aggs {
		row := SummaryRow{agg.Name, make([]expfmt.Value, len(groups))}
		for i, gr := range groups {
			v := agg.Reduce(gr.vals)
			switch {
			case scale != nil:
				row.Cells[i] = expfmt.FloatValue(scale(v))
			case agg.Selects && gr.valsAreInt:
				row.Cells[i] = expfmt.IntValue(int64(v))
			default:
				row.Cells[i] = expfmt.FloatValue(v)
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// Lines returns s as text: a header of the group keys followed by one
// line per aggregate holding its name and its cells. Float values are
// formatted with prec digits after the decimal point.
func (s *Summary) Lines(prec int) [][]string {
	lines := make([][]string, 0, len(s.Rows)+1)
	header := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		header[i] = expunit.Format(k, prec)
	}
	lines = append(lines, header)
	for _, row := range s.Rows {
		line := make([]string, 0, len(row.Cells)+1)
		line = append(line, row.Name)
		for _, c := range row.Cells {
			line = append(line, expunit.Format(c, prec))
		}
		lines = append(lines, line)
	}
	return lines
}
