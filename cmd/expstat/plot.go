// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/fgcrypto/expstat/expchart"
	"github.com/fgcrypto/expstat/expfmt"
	"github.com/fgcrypto/expstat/expmath"
	"github.com/fgcrypto/expstat/expproc"
	"github.com/fgcrypto/expstat/expunit"
)

type plotFlags struct {
	x      string
	ys     []string
	split  string
	agg    string
	boxes  bool
	scale  string
	out    string
	width  float64
	height float64
}

func (a *app) plotCmd() *cobra.Command {
	var f plotFlags
	cmd := &cobra.Command{
		Use:   "plot [flags] file",
		Short: "Draw stacked charts of one or more columns",
		Long: `Plot draws one panel for each --y column, stacked vertically and
sharing the --x axis. Each panel shows every sample as a point and a
line through the --agg aggregate of each x value. With --boxes, each
panel shows a box plot per x value instead. Both axes start at zero.

The chart is written to --out; its extension selects the format (png,
svg, pdf, eps, jpg, tif). With --split, one chart is drawn for each
value v of the split column, and "_column=v" is inserted before the
extension of --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.plot(args[0], &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.x, "x", "x", "", "x axis `column`")
	fl.StringArrayVarP(&f.ys, "y", "y", nil, "y axis `column` of a panel (may be repeated)")
	fl.StringVar(&f.split, "split", "", "draw one chart for each value of `column`")
	fl.StringVar(&f.agg, "agg", "median", "`aggregate` line drawn over the samples; empty for none")
	fl.BoolVar(&f.boxes, "boxes", false, "draw box plots instead of samples")
	fl.StringVar(&f.scale, "scale", "", "convert y values with `scale`")
	fl.StringVarP(&f.out, "out", "o", "", "output `file`")
	fl.Float64Var(&f.width, "width", 16, "chart width in centimeters")
	fl.Float64Var(&f.height, "height", 6, "height of each panel in centimeters")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) plot(file string, f *plotFlags) error {
	scale, err := expunit.ParseScale(f.scale)
	if err != nil {
		return err
	}
	var agg expmath.Aggregate
	if f.agg != "" && !f.boxes {
		if agg, err = expmath.AggregateByName(f.agg); err != nil {
			return err
		}
	}

	required := append([]string{f.x}, f.ys...)
	if f.split != "" {
		required = append(required, f.split)
	}
	t, err := a.load(file, required...)
	if err != nil {
		return err
	}
	if scale.Func() != nil {
		t, err = scaleColumns(t, scale, f.ys...)
		if err != nil {
			return err
		}
	}
	base, err := predicate(t, a.filter)
	if err != nil {
		return err
	}
	x, err := t.Column(f.x)
	if err != nil {
		return err
	}
	ys, err := columns(t, f.ys...)
	if err != nil {
		return err
	}
	splits, splitPred, err := splitValues(t, f.split, base)
	if err != nil {
		return err
	}

	for _, k := range splits {
		pred := and(base, splitPred(k))
		if countRows(t, pred) == 0 {
			a.log.Warn("no rows to plot", zap.String("file", file), zap.String("filter", a.filter))
			continue
		}
		panels := make([]*expchart.Panel, len(ys))
		for i, y := range ys {
			yLabel := f.ys[i]
			if u := scale.Unit(); u != "" {
				yLabel += ", " + u
			}
			var xLabel string
			if i == len(ys)-1 {
				xLabel = f.x
			}
			p := expchart.NewPanel("", xLabel, yLabel)
			if f.boxes {
				groups, err := expproc.GroupedValueLists(t, x, y, pred)
				if err != nil {
					return err
				}
				err = p.Boxes(groups)
				if err != nil {
					return err
				}
			} else {
				pts, err := expproc.PairedSamples(t, x, y, pred)
				if err != nil {
					return err
				}
				if err := p.Scatter(f.ys[i], pts); err != nil {
					return err
				}
				if agg.Reduce != nil {
					keys, values, err := expproc.GroupAggregate(t, x, y, agg.Reduce, pred)
					if err != nil {
						return err
					}
					if err := p.Line(f.ys[i]+" "+agg.Name, keys, values); err != nil {
						return err
					}
				}
			}
			panels[i] = p
		}

		out := f.out
		if f.split != "" {
			out = splitFileName(out, f.split, k)
		}
		w := vg.Length(f.width) * vg.Centimeter
		h := vg.Length(f.height*float64(len(panels))) * vg.Centimeter
		if err := expchart.SaveStack(out, w, h, panels...); err != nil {
			return err
		}
		a.log.Info("wrote chart", zap.String("file", out), zap.Int("panels", len(panels)))
	}
	return nil
}

// splitFileName inserts "_col=k" before the extension of name.
func splitFileName(name, col string, k float64) string {
	ext := filepath.Ext(name)
	safe := strings.NewReplacer("/", "-", "|", "", " ", "_").Replace(col)
	return strings.TrimSuffix(name, ext) + "_" + safe + "=" + strconv.FormatFloat(k, 'g', -1, 64) + ext
}

// scaleColumns returns a copy of t with the named columns converted by
// s. Converted values are Floats.
func scaleColumns(t *expfmt.Table, s expunit.Scale, names ...string) (*expfmt.Table, error) {
	cols, err := columns(t, names...)
	if err != nil {
		return nil, err
	}
	rows := make([]expfmt.Row, t.Len())
	for i, row := range t.Rows() {
		r := append(expfmt.Row(nil), row...)
		for _, c := range cols {
			r[c] = expfmt.FloatValue(s.Apply(row[c].Float()))
		}
		rows[i] = r
	}
	return expfmt.NewTable(t.Columns(), rows)
}

type histFlags struct {
	num, den string
	bins     int
	outDir   string
	ext      string
}

func (a *app) histCmd() *cobra.Command {
	var f histFlags
	cmd := &cobra.Command{
		Use:   "hist [flags] file...",
		Short: "Draw a histogram of log2(num/den) for each input file",
		Long: `Hist computes log2(num/den) of the --num and --den columns of each
row and draws a histogram of the results. One chart is written per
input file, to <out-dir>/<file base name>_hist.<ext>.

Files that lack either column are skipped with a warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, file := range args {
				if err := a.hist(file, &f); err != nil {
					return err
				}
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.num, "num", "", "numerator `column`")
	fl.StringVar(&f.den, "den", "", "denominator `column`")
	fl.IntVar(&f.bins, "bins", 20, "number of bins; 0 chooses from the sample size")
	fl.StringVar(&f.outDir, "out-dir", ".", "output `directory`")
	fl.StringVar(&f.ext, "ext", "png", "output format `extension`")
	cmd.MarkFlagRequired("num")
	cmd.MarkFlagRequired("den")
	return cmd
}

func (a *app) hist(file string, f *histFlags) error {
	t, err := a.load(file, f.num, f.den)
	if errors.Is(err, expfmt.ErrMalformedInput) {
		a.log.Warn("skipping file", zap.String("file", file), zap.Error(err))
		return nil
	} else if err != nil {
		return err
	}
	pred, err := predicate(t, a.filter)
	if err != nil {
		return err
	}
	cols, err := columns(t, f.num, f.den)
	if err != nil {
		return err
	}
	pts, err := expproc.PairedSamples(t, cols[0], cols[1], pred)
	if err != nil {
		return err
	}
	num, den := make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		num[i], den[i] = p.X, p.Y
	}
	ratios, err := expmath.LogRatios(num, den)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if len(ratios) == 0 {
		a.log.Warn("no rows to plot", zap.String("file", file))
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	p := expchart.NewPanel(base, fmt.Sprintf("log2(%s/%s)", f.num, f.den), "rows")
	p.FromZero = false
	if err := p.Histogram("", ratios, f.bins); err != nil {
		return err
	}
	out := filepath.Join(f.outDir, base+"_hist."+f.ext)
	if err := expchart.SaveStack(out, 12*vg.Centimeter, 8*vg.Centimeter, p); err != nil {
		return err
	}
	a.log.Info("wrote histogram",
		zap.String("file", out),
		zap.Int("bins", f.bins),
		zap.Stringer("ratios", expmath.Describe(ratios)))
	return nil
}
