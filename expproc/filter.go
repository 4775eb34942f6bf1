// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expproc

import (
	"fmt"

	"github.com/fgcrypto/expstat/expfmt"
	"github.com/fgcrypto/expstat/expproc/internal/parse"
)

// A Filter is a parsed row-filter expression. It is bound to the
// columns of a particular Table by Predicate.
type Filter struct {
	query string
	tree  parse.Filter
}

// NewFilter parses a boolean filter expression, such as
// "rank:3 |e|:..8". See the package documentation for the syntax.
//
// To create a filter that matches everything, pass "*" for query.
func NewFilter(query string) (*Filter, error) {
	tree, err := parse.ParseFilter(query)
	if err != nil {
		return nil, err
	}
	return &Filter{query, tree}, nil
}

func (f *Filter) String() string {
	return f.tree.String()
}

// Predicate resolves the column names used by f against t and returns
// a Predicate that evaluates f on rows of t. If f names a column t does
// not have, the error wraps ErrInvalidColumn.
func (f *Filter) Predicate(t *expfmt.Table) (Predicate, error) {
	pred, err := compile(f.tree, t)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", f.query, err)
	}
	return pred, nil
}

func compile(q parse.Filter, t *expfmt.Table) (Predicate, error) {
	switch q := q.(type) {
	case *parse.FilterMatch:
		col, err := t.Column(q.Key)
		if err != nil {
			return nil, err
		}
		if q.Ref == "" {
			return func(row expfmt.Row) bool { return q.Match(row[col].Float()) }, nil
		}
		ref, err := t.Column(q.Ref)
		if err != nil {
			return nil, err
		}
		return func(row expfmt.Row) bool { return row[col].Float() == row[ref].Float() }, nil

	case *parse.FilterOp:
		subs := make([]Predicate, 0, len(q.Exprs))
		for _, e := range q.Exprs {
			sub, err := compile(e, t)
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}
		switch q.Op {
		case parse.OpNot:
			return func(row expfmt.Row) bool { return !subs[0](row) }, nil
		case parse.OpAnd, parse.OpOr:
			// AND stops at the first false, OR at the first true.
			stop := q.Op == parse.OpOr
			return func(row expfmt.Row) bool {
				for _, sub := range subs {
					if sub(row) == stop {
						return stop
					}
				}
				return !stop
			}, nil
		}
	}
	panic(fmt.Sprintf("unexpected filter node %v", q))
}
