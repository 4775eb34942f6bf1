// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latextab renders summary tables as LaTeX tabular
// environments.
package latextab

import (
	"bufio"
	"io"
	"strings"

	"github.com/fgcrypto/expstat/expproc"
)

const lineEnd = `\\ \hline`

// Write writes s to w as a centered tabular environment preceded by
// title. The first column holds aggregate names and there is one
// column per group key. Float cells have prec digits after the
// decimal point. title is LaTeX source and is written unquoted.
func Write(w io.Writer, title string, s *expproc.Summary, prec int) error {
	bw := bufio.NewWriter(w)
	line := func(s string) {
		bw.WriteString(s)
		bw.WriteByte('\n')
	}

	line(`\begin{center}`)
	line(title)
	line(`\begin{tabular}{l` + strings.Repeat("|c", len(s.Keys)) + `}`)

	lines := s.Lines(prec)
	header := "&"
	for _, k := range lines[0] {
		header += " " + k + " &"
	}
	line(strings.TrimSuffix(header, "&") + lineEnd)
	for _, l := range lines[1:] {
		line(strings.Join(l, " & ") + " " + lineEnd)
	}

	line(`\end{tabular}`)
	line(`\end{center}`)
	return bw.Flush()
}
