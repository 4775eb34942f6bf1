// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expmath provides summary statistics over samples of
// experiment measurements.
//
// Every reducer takes a sample as a []float64 and returns a single
// number. Reducers never modify their argument. On an empty sample
// they return NaN.
package expmath

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// A Reducer maps a sample to a single summary number.
type Reducer func(xs []float64) float64

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	return stats.Mean(xs)
}

// Min returns the smallest value in xs.
func Min(xs []float64) float64 {
	min, _ := stats.Bounds(xs)
	return min
}

// Max returns the largest value in xs.
func Max(xs []float64) float64 {
	_, max := stats.Bounds(xs)
	return max
}

// Median returns the median of xs. It is exactly Percentile(xs, 50).
func Median(xs []float64) float64 {
	return Percentile(xs, 50)
}

// Percentile returns the p'th percentile of xs, for p in [0, 100].
//
// This is the value at rank p/100*(n-1) of the sorted sample,
// linearly interpolating between adjacent ranks when the rank is
// fractional. (This is method 7 of Hyndman and Fan, which differs
// from the method stats.Sample.Quantile uses.)
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

func percentileSorted(a []float64, p float64) float64 {
	n := len(a)
	if p <= 0 {
		return a[0]
	}
	if p >= 100 {
		return a[n-1]
	}
	rank := float64(p/100) * float64(n-1) // Suppress fused-multiply-add
	i := int(rank)
	frac := rank - float64(i)
	r := a[i]
	if frac > 0 && i+1 < n {
		r += frac * (a[i+1] - a[i])
	}
	return r
}

// PercentileReducer returns a Reducer that computes the p'th
// percentile.
func PercentileReducer(p float64) Reducer {
	return func(xs []float64) float64 {
		return Percentile(xs, p)
	}
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	// stats.Variance is the sample variance. Rescale it to the
	// population variance.
	return math.Sqrt(stats.Variance(xs) * float64(n-1) / float64(n))
}

// An Aggregate is a named Reducer.
type Aggregate struct {
	// Name labels the aggregate in tables and legends.
	Name string

	// Reduce computes the aggregate.
	Reduce Reducer

	// Selects indicates that Reduce always returns one of its
	// inputs, such as the minimum or maximum. Summaries of integer
	// measurements can then stay integers.
	Selects bool
}

func (a Aggregate) String() string {
	return a.Name
}

var (
	AggMax    = Aggregate{"max", Max, true}
	AggQ3     = Aggregate{"3/4 quantile", PercentileReducer(75), false}
	AggMedian = Aggregate{"median", Median, false}
	AggMean   = Aggregate{"mean", Mean, false}
	AggQ1     = Aggregate{"1/4 quantile", PercentileReducer(25), false}
	AggMin    = Aggregate{"min", Min, true}
)

// DefaultAggregates lists the rows of a conventional summary table,
// from highest to lowest.
var DefaultAggregates = []Aggregate{AggMax, AggQ3, AggMedian, AggMean, AggQ1, AggMin}

// AggregateByName returns the Aggregate with the given short name.
// It accepts "max", "min", "mean", "median", "q1" (or "p25"),
// "q3" (or "p75"), and "pN" for any percentile N in [0, 100].
func AggregateByName(name string) (Aggregate, error) {
	switch strings.ToLower(name) {
	case "max":
		return AggMax, nil
	case "min":
		return AggMin, nil
	case "mean", "avg":
		return AggMean, nil
	case "median", "p50":
		return AggMedian, nil
	case "q1", "p25":
		return AggQ1, nil
	case "q3", "p75":
		return AggQ3, nil
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(name), "p"); ok {
		p, err := strconv.ParseFloat(rest, 64)
		if err == nil && p >= 0 && p <= 100 {
			return Aggregate{Name: "p" + rest, Reduce: PercentileReducer(p), Selects: p == 0 || p == 100}, nil
		}
	}
	return Aggregate{}, fmt.Errorf("unknown aggregate %q", name)
}

// ParseAggregates parses a comma-separated list of aggregate names.
// An empty list yields DefaultAggregates.
func ParseAggregates(list string) ([]Aggregate, error) {
	if strings.TrimSpace(list) == "" {
		return DefaultAggregates, nil
	}
	var aggs []Aggregate
	for _, name := range strings.Split(list, ",") {
		agg, err := AggregateByName(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		aggs = append(aggs, agg)
	}
	return aggs, nil
}
