// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expmath

import (
	"fmt"
	"math"
)

// A Description summarizes the distribution of a whole column.
type Description struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes a Description of xs.
func Describe(xs []float64) Description {
	return Description{
		N:      len(xs),
		Mean:   Mean(xs),
		StdDev: StdDev(xs),
		Min:    Min(xs),
		Max:    Max(xs),
	}
}

func (d Description) String() string {
	return fmt.Sprintf("mean=%.3f, sd=%.3f, max=%.3f, min=%.3f", d.Mean, d.StdDev, d.Max, d.Min)
}

// LogRatios returns log2(num[i]/den[i]) for each i.
//
// num and den must have the same length and all values must be
// positive; otherwise LogRatios returns an error identifying the
// first offending index.
func LogRatios(num, den []float64) ([]float64, error) {
	if len(num) != len(den) {
		return nil, fmt.Errorf("log ratio of %d values over %d values", len(num), len(den))
	}
	out := make([]float64, len(num))
	for i := range num {
		if !(num[i] > 0) || !(den[i] > 0) {
			return nil, fmt.Errorf("log ratio at %d: %v/%v is not a ratio of positive values", i, num[i], den[i])
		}
		out[i] = math.Log2(num[i] / den[i])
	}
	return out, nil
}
