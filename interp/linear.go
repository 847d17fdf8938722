// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp provides piecewise-linear interpolation with linear
// extrapolation beyond the knot span.
package interp

import (
	"fmt"
	"sort"
)

// A Linear interpolates linearly between a set of (x, y) knots and
// extrapolates with the slope of the nearest end segment outside
// them.
type Linear struct {
	xs, ys []float64
}

// NewLinear returns an interpolant through the given knots. xs and
// ys must have the same non-zero length. The knots are sorted by
// abscissa; when several knots share an abscissa, the first one in
// the input wins, so an exact query at a plateau returns the value
// where the plateau is first reached. The input slices are not
// modified.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: mismatched knot slices: %d x vs %d y", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("interp: no knots")
	}

	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })

	l := &Linear{
		xs: make([]float64, 0, len(xs)),
		ys: make([]float64, 0, len(xs)),
	}
	for _, i := range idx {
		if n := len(l.xs); n > 0 && l.xs[n-1] == xs[i] {
			continue
		}
		l.xs = append(l.xs, xs[i])
		l.ys = append(l.ys, ys[i])
	}
	return l, nil
}

// Eval returns the interpolant's value at x. Inside the knot span
// this interpolates linearly between the bracketing knots; outside
// it extrapolates along the first or last segment. With a single
// distinct knot the interpolant is constant.
func (l *Linear) Eval(x float64) float64 {
	n := len(l.xs)
	if n == 1 {
		return l.ys[0]
	}
	// First i with xs[i] >= x; clamp to a valid segment so ends
	// extrapolate.
	i := sort.SearchFloat64s(l.xs, x)
	if i == 0 {
		i = 1
	} else if i >= n {
		i = n - 1
	}
	x0, x1 := l.xs[i-1], l.xs[i]
	y0, y1 := l.ys[i-1], l.ys[i]
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// Bounds returns the abscissa span of the knots.
func (l *Linear) Bounds() (min, max float64) {
	return l.xs[0], l.xs[len(l.xs)-1]
}
