// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Expstat computes aggregate statistics, charts and tables from
// delimited experiment result files.
//
// Usage:
//
//	expstat [global flags] command [flags] file...
//
// Each input file is a delimited text file (";" by default) whose first
// record names the columns and whose other records hold one numeric
// measurement per column. A trailing delimiter at the end of each
// record is allowed.
//
// The commands are:
//
//	table     print summary tables of a column grouped by another
//	plot      draw stacked charts of one or more columns
//	hist      draw a histogram of log2(num/den) for each input file
//	describe  print the mean, standard deviation, max and min of each column
//	select    print the rows matching --filter in the input format
//
// The global --filter flag restricts every command to the rows matching
// a filter expression such as
//
//	rank:3 |e|:..200 -"free_red_time":0
//
// See "go doc github.com/fgcrypto/expstat/expproc" for the syntax.
//
// Example
//
// Given a file nf.csv:
//
//	rank;|e|;time;
//	2;10;120;
//	2;10;180;
//	2;20;400;
//
// the command
//
//	expstat table --group '|e|' --target time --scale ms:s --aggregates max,median nf.csv
//
// prints
//
//	\begin{center}
//	time, s
//	\begin{tabular}{l|c|c}
//	& 10 & 20 \\ \hline
//	max & 0.180 & 0.400 \\ \hline
//	median & 0.150 & 0.400 \\ \hline
//	\end{tabular}
//	\end{center}
//
// Tables for a whole report can be described in a YAML file passed
// with --config; see the table command's help.
package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := expstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all commands.
type app struct {
	stdout, stderr io.Writer
	log            *zap.Logger

	delim    string
	filter   string
	logLevel string
}

func expstat(stdout, stderr io.Writer, args []string) error {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "expstat: %v\n", err)
	}
	a.log.Sync()
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "expstat",
		Short:         "Aggregate statistics, charts and tables from experiment result files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.stderr, a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.delim, "delim", ";", "field delimiter; \"tab\" for a tab")
	root.PersistentFlags().StringVar(&a.filter, "filter", "", "only consider rows matching filter `expression`")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(a.tableCmd(), a.plotCmd(), a.histCmd(), a.describeCmd(), a.selectCmd())
	return root
}

// comma returns the delimiter rune selected by --delim.
func (a *app) comma() (rune, error) {
	switch a.delim {
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(a.delim)
	if size == 0 || size != len(a.delim) || r == utf8.RuneError {
		return 0, fmt.Errorf("--delim must be a single character, got %q", a.delim)
	}
	return r, nil
}
