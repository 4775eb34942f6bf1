// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expchart draws the output of expproc as charts.
//
// A chart is one or more Panels stacked vertically. Each Panel wraps a
// gonum plot and accumulates series: line plots of reduced groups,
// scatter plots of raw samples, box plots of value lists and
// histograms. SaveStack lays the panels out and writes them to a file
// whose format is chosen by its extension.
package expchart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fgcrypto/expstat/expproc"
)

// A Panel is a single titled chart.
type Panel struct {
	Plot *plot.Plot

	// FromZero extends both axes to include 0. It is set by
	// NewPanel and may be cleared for charts of signed data.
	FromZero bool

	series int
}

// NewPanel returns an empty Panel with the given title and axis labels.
func NewPanel(title, xLabel, yLabel string) *Panel {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return &Panel{Plot: p, FromZero: true}
}

// next returns the index of a new series, used to pick its style.
func (p *Panel) next() int {
	i := p.series
	p.series++
	return i
}

func (p *Panel) legend(name string, thumb plot.Thumbnailer) {
	if name != "" {
		p.Plot.Legend.Add(name, thumb)
	}
}

type points []expproc.Point

func (ps points) Len() int                    { return len(ps) }
func (ps points) XY(i int) (float64, float64) { return ps[i].X, ps[i].Y }

type keyed struct{ keys, values []float64 }

func (k keyed) Len() int                    { return len(k.keys) }
func (k keyed) XY(i int) (float64, float64) { return k.keys[i], k.values[i] }

// Line adds a line through (keys[i], values[i]), typically the output
// of expproc.GroupAggregate. An empty line is not drawn.
func (p *Panel) Line(name string, keys, values []float64) error {
	if len(keys) != len(values) {
		return fmt.Errorf("line %q: %d keys but %d values", name, len(keys), len(values))
	}
	if len(keys) == 0 {
		return nil
	}
	l, err := plotter.NewLine(keyed{keys, values})
	if err != nil {
		return fmt.Errorf("line %q: %w", name, err)
	}
	i := p.next()
	l.LineStyle.Color = plotutil.Color(i)
	l.LineStyle.Width = vg.Points(1.5)
	p.Plot.Add(l)
	p.legend(name, l)
	return nil
}

// Scatter adds one glyph per point, typically the output of
// expproc.PairedSamples.
func (p *Panel) Scatter(name string, pts []expproc.Point) error {
	s, err := plotter.NewScatter(points(pts))
	if err != nil {
		return fmt.Errorf("scatter %q: %w", name, err)
	}
	i := p.next()
	s.GlyphStyle.Color = plotutil.Color(i)
	s.GlyphStyle.Shape = plotutil.Shape(i)
	s.GlyphStyle.Radius = vg.Points(2)
	p.Plot.Add(s)
	p.legend(name, s)
	return nil
}

// Boxes adds one box plot per group, typically the output of
// expproc.GroupedValueLists. Boxes are placed at x = 0, 1, ... and
// labeled with their group keys.
func (p *Panel) Boxes(groups []expproc.Group) error {
	if len(groups) == 0 {
		return fmt.Errorf("box plot: no groups")
	}
	w := vg.Points(12)
	names := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Values) == 0 {
			return fmt.Errorf("box plot of key %v: no values", g.Key)
		}
		b, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(g.Values))
		if err != nil {
			return fmt.Errorf("box plot of key %v: %w", g.Key, err)
		}
		p.Plot.Add(b)
		names[i] = fmt.Sprint(g.Key)
	}
	p.Plot.NominalX(names...)
	return nil
}

// Histogram adds a histogram of values with the given number of bins.
// If bins <= 0, a bin count is chosen from the number of values.
func (p *Panel) Histogram(name string, values []float64, bins int) error {
	if len(values) == 0 {
		return fmt.Errorf("histogram %q: no values", name)
	}
	if bins <= 0 {
		// Square-root choice, as numpy's "auto" does for small samples.
		bins = int(math.Ceil(math.Sqrt(float64(len(values)))))
	}
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("histogram %q: %w", name, err)
	}
	h.FillColor = plotutil.Color(p.next())
	p.Plot.Add(h)
	p.legend(name, h)
	return nil
}

// finish applies axis adjustments that depend on the data added.
func (p *Panel) finish() {
	if !p.FromZero {
		return
	}
	if p.Plot.X.Min > 0 {
		p.Plot.X.Min = 0
	}
	if p.Plot.Y.Min > 0 {
		p.Plot.Y.Min = 0
	}
}

// WriteStack draws panels stacked vertically in a w by h canvas of the
// given format ("png", "svg", "pdf", ...) and writes it to out. All
// panels share the union of their x ranges so their x axes line up.
func WriteStack(out io.Writer, format string, w, h vg.Length, panels ...*Panel) error {
	c, err := drawStack(format, w, h, panels)
	if err != nil {
		return err
	}
	_, err = c.WriteTo(out)
	return err
}

func drawStack(format string, w, h vg.Length, panels []*Panel) (vg.CanvasWriterTo, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("no panels to draw")
	}
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, p := range panels {
		p.finish()
		xmin = math.Min(xmin, p.Plot.X.Min)
		xmax = math.Max(xmax, p.Plot.X.Max)
	}
	plots := make([][]*plot.Plot, len(panels))
	for i, p := range panels {
		p.Plot.X.Min, p.Plot.X.Max = xmin, xmax
		plots[i] = []*plot.Plot{p.Plot}
	}
	tiles := draw.Tiles{
		Rows: len(panels),
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: 2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i, p := range panels {
		p.Plot.Draw(canvases[i][0])
	}
	return c, nil
}

// SaveStack is like WriteStack, but writes to the named file and picks
// the format from its extension. The file is created only once the
// chart has been drawn.
func SaveStack(file string, w, h vg.Length, panels ...*Panel) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	if format == "" {
		return fmt.Errorf("%s: no file extension to choose an image format", file)
	}
	c, err := drawStack(format, w, h, panels)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	_, err = c.WriteTo(f)
	return err
}
