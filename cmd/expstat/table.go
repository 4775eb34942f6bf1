// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fgcrypto/expstat/expfmt"
	"github.com/fgcrypto/expstat/expmath"
	"github.com/fgcrypto/expstat/expproc"
	"github.com/fgcrypto/expstat/expunit"
)

type tableFlags struct {
	config     string
	group      string
	split      string
	targets    []string
	scale      string
	aggregates string
	format     string
	prec       int
}

func (a *app) tableCmd() *cobra.Command {
	var f tableFlags
	cmd := &cobra.Command{
		Use:   "table [flags] file...",
		Short: "Print summary tables of a column grouped by another",
		Long: `Table groups the rows of each input file by the values of the --group
column and prints, for each --target column, a table with one column
per group key and one row per aggregate.

With --split, the rows are first divided by the values of the split
column and a set of tables is printed for each of them.

The aggregates are listed with --aggregates as a comma-separated list
of max, q3 (or p75), median, mean, q1 (or p25), min, or pN for any
percentile N. The default is max, q3, median, mean, q1, min.

Instead of flags, --config may name a YAML report file:

	delimiter: ";"
	group: "|e|"
	split: rank
	precision: 3
	format: latex
	tables:
	  - title: composition time, s
	    target: time
	    scale: ms:s
	  - title: composition height
	    target: height
	    aggregates: max, median, min
	    filter: height:1..

Flags given explicitly override the report's settings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.report(cmd, &f)
			if err != nil {
				return err
			}
			for _, file := range args {
				if len(args) > 1 {
					fmt.Fprintf(a.stdout, "%s\n", file)
				}
				if err := a.tables(a.stdout, file, r, f.prec); err != nil {
					return err
				}
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "read table definitions from YAML `file`")
	fl.StringVarP(&f.group, "group", "g", "", "group rows by `column`")
	fl.StringVar(&f.split, "split", "", "print a set of tables for each value of `column`")
	fl.StringArrayVarP(&f.targets, "target", "t", nil, "summarize `column` (may be repeated)")
	fl.StringVar(&f.scale, "scale", "", "convert target values with `scale` (ms:s, us:ms, us:s, ns:us, ns:ms, ns:s)")
	fl.StringVar(&f.aggregates, "aggregates", "", "comma-separated `list` of aggregates")
	fl.StringVar(&f.format, "format", "latex", "output `format`: latex, text or csv")
	fl.IntVar(&f.prec, "prec", expunit.DefaultPrec, "digits after the decimal point in floating-point cells")
	return cmd
}

// report merges the --config file, if any, with the command's flags.
func (a *app) report(cmd *cobra.Command, f *tableFlags) (*Report, error) {
	r := &Report{}
	if f.config != "" {
		var err error
		r, err = loadReport(f.config)
		if err != nil {
			return nil, err
		}
		a.log.Debug("loaded report", zap.String("file", f.config), zap.Int("tables", len(r.Tables)))
	}
	changed := func(name string) bool {
		return f.config == "" || cmd.Flags().Changed(name)
	}
	if r.Delimiter != "" && !cmd.Flags().Changed("delim") {
		a.delim = r.Delimiter
	}
	if changed("group") {
		r.Group = f.group
	}
	if changed("split") {
		r.Split = f.split
	}
	if changed("aggregates") {
		r.Aggregates = f.aggregates
	}
	if changed("format") || r.Format == "" {
		r.Format = f.format
	}
	if r.Precision != nil && !cmd.Flags().Changed("prec") {
		f.prec = *r.Precision
	}
	if changed("target") {
		for _, t := range f.targets {
			r.Tables = append(r.Tables, TableSpec{Target: t, Scale: f.scale})
		}
	}

	if r.Group == "" {
		return nil, fmt.Errorf("no group column; use --group")
	}
	if len(r.Tables) == 0 {
		return nil, fmt.Errorf("no tables; use --target or --config")
	}
	switch r.Format {
	case "latex", "text", "csv":
	default:
		return nil, fmt.Errorf("unknown format %q", r.Format)
	}
	return r, nil
}

// A summary is one computed table ready for output.
type summary struct {
	title string
	s     *expproc.Summary
}

func (a *app) tables(w io.Writer, file string, r *Report, prec int) error {
	required := []string{r.Group}
	if r.Split != "" {
		required = append(required, r.Split)
	}
	for _, spec := range r.Tables {
		required = append(required, spec.Target)
	}
	t, err := a.load(file, required...)
	if err != nil {
		return err
	}
	base, err := predicate(t, a.filter, r.Filter)
	if err != nil {
		return err
	}
	group, err := t.Column(r.Group)
	if err != nil {
		return err
	}
	splits, splitPred, err := splitValues(t, r.Split, base)
	if err != nil {
		return err
	}

	out := newSummaryWriter(w, r.Format, prec)
	for _, k := range splits {
		if r.Split != "" {
			if err := out.section(r.Split + " = " + strconv.FormatFloat(k, 'g', -1, 64)); err != nil {
				return err
			}
		}
		for _, spec := range r.Tables {
			sum, err := summarize(t, group, spec, r.Aggregates, and(base, splitPred(k)))
			if err != nil {
				return fmt.Errorf("%s: table %s: %w", file, spec.Target, err)
			}
			a.log.Debug("summarized",
				zap.String("target", spec.Target),
				zap.Int("keys", len(sum.s.Keys)))
			if err := out.summary(sum.title, sum.s); err != nil {
				return err
			}
		}
	}
	return out.flush()
}

func summarize(t *expfmt.Table, group int, spec TableSpec, defAggs string, pred expproc.Predicate) (summary, error) {
	target, err := t.Column(spec.Target)
	if err != nil {
		return summary{}, err
	}
	scale, err := expunit.ParseScale(spec.Scale)
	if err != nil {
		return summary{}, err
	}
	aggList := spec.Aggregates
	if aggList == "" {
		aggList = defAggs
	}
	aggs, err := expmath.ParseAggregates(aggList)
	if err != nil {
		return summary{}, err
	}
	tp, err := predicate(t, spec.Filter)
	if err != nil {
		return summary{}, err
	}
	s, err := expproc.SummaryTable(t, group, target, and(pred, tp), aggs, scale.Func())
	if err != nil {
		return summary{}, err
	}
	title := spec.Title
	if title == "" {
		title = spec.Target
		if u := scale.Unit(); u != "" {
			title += ", " + u
		}
	}
	return summary{title, s}, nil
}
