// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"math"
	"strconv"
	"strings"
)

// ParseFilter parses a filter expression into a Filter tree.
//
// The grammar, loosest binding first:
//
//	expr  = and { "OR" and }
//	and   = unary { ["AND"] unary }
//	unary = "-" unary | "*" | "(" expr ")" | key ":" value
//	value = number | range | "@" key | "(" value { "OR" value } ")"
func ParseFilter(q string) (f Filter, err error) {
	defer func() {
		if e := recover(); e != nil {
			se, ok := e.(*SyntaxError)
			if !ok {
				panic(e)
			}
			f, err = nil, se
		}
	}()
	p := &parser{lexer{query: q}}
	f = p.or()
	if t := p.lex.scan(false); t.kind != tokEOF {
		p.fail(t.off, "unexpected "+strconv.Quote(t.text))
	}
	return f, nil
}

type parser struct {
	lex lexer
}

func (p *parser) fail(off int, msg string) {
	panic(&SyntaxError{p.lex.query, off, msg})
}

func (p *parser) or() Filter {
	terms := []Filter{p.and()}
	for p.lex.peek(false).kind == tokOr {
		p.lex.scan(false)
		terms = append(terms, p.and())
	}
	return join(OpOr, terms)
}

func (p *parser) and() Filter {
	terms := []Filter{p.unary()}
	for {
		t := p.lex.peek(false)
		switch t.kind {
		case tokAnd:
			// Juxtaposition already means AND.
			p.lex.scan(false)
			continue
		case '(', '-', '*', tokWord, tokQuoted:
			terms = append(terms, p.unary())
			continue
		case ')', tokOr, tokEOF:
			return join(OpAnd, terms)
		}
		p.fail(t.off, "unexpected "+strconv.Quote(t.text))
	}
}

func join(op Op, terms []Filter) Filter {
	if len(terms) == 1 {
		return terms[0]
	}
	return &FilterOp{op, terms}
}

func (p *parser) unary() Filter {
	t := p.lex.scan(false)
	switch t.kind {
	case '-':
		return &FilterOp{OpNot, []Filter{p.unary()}}
	case '*':
		return &FilterOp{OpAnd, nil}
	case '(':
		f := p.or()
		if end := p.lex.scan(false); end.kind != ')' {
			p.fail(end.off, `missing ")"`)
		}
		return f
	case tokWord, tokQuoted:
		return p.match(t)
	}
	p.fail(t.off, "expected key:value or subexpression")
	panic("unreachable")
}

// match parses the rest of a key:value term whose key has been read.
func (p *parser) match(key token) Filter {
	if colon := p.lex.scan(false); colon.kind != ':' {
		p.fail(key.off, "expected key:value")
	}
	val := p.lex.scan(true)
	switch {
	case val.isWord():
		return p.bounds(key, val)
	case val.kind == '@':
		ref := p.lex.scan(false)
		if !ref.isWord() {
			p.fail(ref.off, "expected column name")
		}
		return &FilterMatch{Key: key.text, Ref: ref.text, Off: key.off}
	case val.kind == '(':
		var alts []Filter
		for {
			v := p.lex.scan(true)
			if !v.isWord() {
				p.fail(v.off, "expected value")
			}
			alts = append(alts, p.bounds(key, v))
			switch sep := p.lex.scan(true); sep.kind {
			case ')':
				return &FilterOp{OpOr, alts}
			case tokOr:
			default:
				p.fail(sep.off, "value list must be separated by OR")
			}
		}
	}
	p.fail(key.off, "expected key:value")
	panic("unreachable")
}

// bounds parses val as a number or an inclusive "lo..hi" range in
// which either bound may be omitted.
func (p *parser) bounds(key, val token) *FilterMatch {
	num := func(s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			p.fail(val.off, "expected number")
		}
		return v
	}
	m := &FilterMatch{Key: key.text, Off: key.off}
	lo, hi, isRange := strings.Cut(val.text, "..")
	if !isRange {
		m.Lo = num(val.text)
		m.Hi = m.Lo
		return m
	}
	if lo == "" && hi == "" {
		p.fail(val.off, "range needs at least one bound")
	}
	m.Lo, m.Hi = math.Inf(-1), math.Inf(1)
	if lo != "" {
		m.Lo = num(lo)
	}
	if hi != "" {
		m.Hi = num(hi)
	}
	if m.Lo > m.Hi {
		p.fail(val.off, "empty range")
	}
	return m
}
