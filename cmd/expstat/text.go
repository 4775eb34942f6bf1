// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fgcrypto/expstat/cmd/expstat/internal/latextab"
	"github.com/fgcrypto/expstat/cmd/expstat/internal/texttab"
	"github.com/fgcrypto/expstat/expproc"
)

// A summaryWriter writes a sequence of titled summary tables, grouped
// into sections, in one of the output formats.
type summaryWriter struct {
	w      io.Writer
	format string
	prec   int
	csv    *csv.Writer
}

func newSummaryWriter(w io.Writer, format string, prec int) *summaryWriter {
	sw := &summaryWriter{w: w, format: format, prec: prec}
	if format == "csv" {
		sw.csv = csv.NewWriter(w)
	}
	return sw
}

func (sw *summaryWriter) section(title string) error {
	if sw.csv != nil {
		return sw.csv.Write([]string{title})
	}
	_, err := fmt.Fprintln(sw.w, title)
	return err
}

func (sw *summaryWriter) summary(title string, s *expproc.Summary) error {
	switch sw.format {
	case "csv":
		return sw.writeCSV(title, s)
	case "text":
		return sw.writeText(title, s)
	}
	return latextab.Write(sw.w, title, s, sw.prec)
}

func (sw *summaryWriter) writeCSV(title string, s *expproc.Summary) error {
	lines := s.Lines(sw.prec)
	if err := sw.csv.Write([]string{title}); err != nil {
		return err
	}
	if err := sw.csv.Write(append([]string{""}, lines[0]...)); err != nil {
		return err
	}
	return sw.csv.WriteAll(lines[1:])
}

func (sw *summaryWriter) writeText(title string, s *expproc.Summary) error {
	if _, err := fmt.Fprintln(sw.w, title); err != nil {
		return err
	}
	lines := s.Lines(sw.prec)
	var tab texttab.Table
	tab.Row().Cell("")
	for _, k := range lines[0] {
		tab.Cell(k, texttab.Right)
	}
	tab.Rule('-')
	for _, l := range lines[1:] {
		tab.Row().Cell(l[0])
		for _, c := range l[1:] {
			tab.Cell(c, texttab.Right)
		}
	}
	tab.Row()
	return tab.Format(sw.w)
}

func (sw *summaryWriter) flush() error {
	if sw.csv != nil {
		sw.csv.Flush()
		return sw.csv.Error()
	}
	return nil
}
