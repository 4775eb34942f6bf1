// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A SyntaxError is an error produced by parsing a malformed expression.
type SyntaxError struct {
	Query string // The original query string
	Off   int    // Byte offset of the error in Query
	Msg   string // Error message
}

func (e *SyntaxError) Error() string {
	col := 0
	for _, r := range e.Query[:e.Off] {
		if unicode.IsGraphic(r) {
			col++
		}
	}
	return fmt.Sprintf("syntax error: %s\n\t%s\n\t%s^", e.Msg, e.Query, strings.Repeat(" ", col))
}

// Token kinds other than operator characters, which stand for
// themselves.
const (
	tokEOF    = 0
	tokWord   = 'w' // bare word
	tokQuoted = 'q' // quoted word, unescaped
	tokAnd    = 'A'
	tokOr     = 'O'
)

type token struct {
	kind byte
	off  int    // byte offset in the query
	text string // word contents, or the operator itself
}

// isWord reports whether t is a bare or quoted word.
func (t token) isWord() bool {
	return t.kind == tokWord || t.kind == tokQuoted
}

// A lexer splits a query into tokens on demand. Whether "-" starts a
// word or is the negation operator depends on the parser state, so
// the caller says whether it expects a value.
type lexer struct {
	query string
	pos   int
}

// opChar reports whether c always ends a bare word.
func opChar(c rune) bool {
	switch c {
	case '(', ')', ':', '@':
		return true
	}
	return false
}

// scan consumes and returns the next token. It panics with a
// *SyntaxError on a malformed quoted word.
func (l *lexer) scan(value bool) token {
	for l.pos < len(l.query) {
		r, size := utf8.DecodeRuneInString(l.query[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	start := l.pos
	if start == len(l.query) {
		return token{tokEOF, start, ""}
	}
	rest := l.query[start:]
	switch c := rest[0]; {
	case value && negativeNumber(rest):
		return l.word(start)
	case opChar(rune(c)) || c == '-' || c == '*':
		l.pos++
		return token{c, start, rest[:1]}
	case c == '"':
		return l.quoted(start)
	}
	return l.word(start)
}

// peek returns the next token without consuming it.
func (l *lexer) peek(value bool) token {
	pos := l.pos
	t := l.scan(value)
	l.pos = pos
	return t
}

func negativeNumber(s string) bool {
	return len(s) > 1 && s[0] == '-' && (s[1] == '.' || unicode.IsDigit(rune(s[1])))
}

// word scans a bare word. Once inside a word, "-" and "*" are
// ordinary characters, so names like "free_red-vn" need no quotes.
func (l *lexer) word(start int) token {
	end := strings.IndexFunc(l.query[start:], func(r rune) bool {
		return unicode.IsSpace(r) || opChar(r)
	})
	if end < 0 {
		end = len(l.query)
	} else {
		end += start
	}
	l.pos = end
	text := l.query[start:end]
	switch text {
	case "AND":
		return token{tokAnd, start, text}
	case "OR":
		return token{tokOr, start, text}
	}
	return token{tokWord, start, text}
}

func (l *lexer) quoted(start int) token {
	end := start + 1
	for ; end < len(l.query); end++ {
		if l.query[end] == '"' && l.query[end-1] != '\\' {
			break
		}
	}
	if end == len(l.query) {
		panic(&SyntaxError{l.query, start, "missing end quote"})
	}
	text, err := strconv.Unquote(l.query[start : end+1])
	if err != nil {
		panic(&SyntaxError{l.query, start, "bad escape sequence"})
	}
	l.pos = end + 1
	return token{tokQuoted, start, text}
}

// quoteWord returns s in a form that scans back as the single word s.
func quoteWord(s string) string {
	if s == "" || s == "AND" || s == "OR" || s[0] == '-' || s[0] == '*' {
		return strconv.Quote(s)
	}
	if strings.IndexFunc(s, func(r rune) bool {
		return r == '"' || unicode.IsSpace(r) || opChar(r) || !unicode.IsPrint(r)
	}) >= 0 {
		return strconv.Quote(s)
	}
	return s
}
