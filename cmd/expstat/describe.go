// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fgcrypto/expstat/expfmt"
	"github.com/fgcrypto/expstat/expmath"
)

func (a *app) describeCmd() *cobra.Command {
	var skip []string
	cmd := &cobra.Command{
		Use:   "describe [flags] file...",
		Short: "Print the mean, standard deviation, max and min of each column",
		Long: `Describe prints the number of rows of each input file that match
--filter and its number of columns, followed by the mean, population standard deviation, maximum
and minimum of every column not listed in --skip.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, file := range args {
				if err := a.describe(file, skip); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&skip, "skip", nil, "do not describe `column` (may be repeated)")
	return cmd
}

func (a *app) describe(file string, skip []string) error {
	t, err := a.load(file)
	if err != nil {
		return err
	}
	pred, err := predicate(t, a.filter)
	if err != nil {
		return err
	}
	if pred != nil {
		t = t.Filter(pred)
	}
	skipped := make(map[string]bool)
	for _, s := range skip {
		skipped[s] = true
	}

	fmt.Fprintf(a.stdout, "%s: %d rows, %d columns\n", file, t.Len(), t.NumColumns())
	for c, name := range t.Columns() {
		if skipped[name] {
			continue
		}
		xs := make([]float64, t.Len())
		for i, row := range t.Rows() {
			xs[i] = row[c].Float()
		}
		fmt.Fprintf(a.stdout, "%s: %s\n", name, expmath.Describe(xs))
	}
	return nil
}

func (a *app) selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [flags] file",
		Short: "Print the rows matching --filter in the input format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			pred, err := predicate(t, a.filter)
			if err != nil {
				return err
			}
			if pred != nil {
				t = t.Filter(pred)
			}
			comma, err := a.comma()
			if err != nil {
				return err
			}
			w := expfmt.NewWriter(a.stdout)
			w.Comma = comma
			return w.WriteTable(t)
		},
	}
}
