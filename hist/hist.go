// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hist provides regular multi-dimensional histograms and the
// Source capability consumed by the ROC curve engine.
//
// A Source exposes just enough of a binned distribution to sweep a
// threshold along one of its axes: its dimensionality, the bin count
// of each axis, the sum of its contents over an inclusive bin range,
// and its raw entry count. Any histogram library can adapt to it;
// Hist is the in-package implementation.
package hist

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/vec"
)

// A BinRange is an inclusive range of 1-indexed bins on one axis.
type BinRange struct {
	Lo, Hi int
}

// A Source is a binned distribution that a ROC curve can be built
// from.
type Source interface {
	// Dim returns the dimensionality of the distribution,
	// between 1 and 3.
	Dim() int

	// Bins returns the number of bins on axis a. Axes at or
	// beyond Dim have a single bin.
	Bins(a Axis) int

	// Integral returns the sum of bin contents over the given
	// inclusive bin ranges. Ranges on axes at or beyond Dim are
	// ignored.
	Integral(x, y, z BinRange) float64

	// Entries returns the number of fills the distribution
	// received, including out-of-range fills.
	Entries() float64
}

// A Hist is a regular histogram in one, two, or three dimensions.
// Bin edges may be non-uniform, but must be strictly increasing.
// Values below the lowest edge or above the highest edge of any axis
// are dropped (though still counted by Entries). The highest edge is
// inclusive.
type Hist struct {
	dim     int
	nbins   [3]int
	edges   [3][]float64
	counts  []float64
	entries float64
}

// New returns an empty histogram with the given bin edges, one slice
// per axis. Between one and three axes are accepted; each must have
// at least two strictly increasing edges.
func New(edges ...[]float64) (*Hist, error) {
	if len(edges) < 1 || len(edges) > 3 {
		return nil, fmt.Errorf("hist: need 1 to 3 axes, got %d", len(edges))
	}
	h := &Hist{dim: len(edges), nbins: [3]int{1, 1, 1}}
	n := 1
	for a, e := range edges {
		if len(e) < 2 {
			return nil, fmt.Errorf("hist: axis %s needs at least 2 edges, got %d", Axis(a), len(e))
		}
		for i := 1; i < len(e); i++ {
			if e[i] <= e[i-1] {
				return nil, fmt.Errorf("hist: axis %s edges not strictly increasing at %d", Axis(a), i)
			}
		}
		h.edges[a] = append([]float64(nil), e...)
		h.nbins[a] = len(e) - 1
		n *= h.nbins[a]
	}
	h.counts = make([]float64, n)
	return h, nil
}

// FromSamples bins the samples xs into a 1-D histogram with the
// given edges. Out-of-range samples count toward Entries only.
func FromSamples(xs []float64, edges []float64) (*Hist, error) {
	h, err := New(edges)
	if err != nil {
		return nil, err
	}
	for _, x := range xs {
		h.Fill(x)
	}
	return h, nil
}

// DefaultEdges returns the default sample partition: 100 uniformly
// spaced edges over [0, 1], that is, 99 equal-width bins.
func DefaultEdges() []float64 {
	return vec.Linspace(0, 1, 100)
}

// Dim returns the dimensionality of the histogram.
func (h *Hist) Dim() int { return h.dim }

// Bins returns the number of bins on axis a, or 1 for axes at or
// beyond Dim.
func (h *Hist) Bins(a Axis) int {
	if a < X || a > Z {
		return 1
	}
	return h.nbins[a]
}

// Entries returns the number of Fill and FillW calls, including those
// that fell outside the binned range.
func (h *Hist) Entries() float64 { return h.entries }

// Fill adds a unit-weight observation at the given coordinates, one
// per axis.
func (h *Hist) Fill(coords ...float64) {
	h.FillW(1, coords...)
}

// FillW adds an observation with weight w at the given coordinates.
func (h *Hist) FillW(w float64, coords ...float64) {
	h.entries++
	if len(coords) != h.dim {
		return
	}
	var bins [3]int
	for a := 0; a < h.dim; a++ {
		b := findBin(h.edges[a], coords[a])
		if b < 0 {
			return
		}
		bins[a] = b
	}
	h.counts[bins[0]+h.nbins[0]*(bins[1]+h.nbins[1]*bins[2])] += w
}

// At returns the content of the bin addressed by 1-indexed bin
// numbers, one per axis.
func (h *Hist) At(bins ...int) float64 {
	if len(bins) != h.dim {
		return 0
	}
	var b [3]int
	for a := 0; a < h.dim; a++ {
		if bins[a] < 1 || bins[a] > h.nbins[a] {
			return 0
		}
		b[a] = bins[a] - 1
	}
	return h.counts[b[0]+h.nbins[0]*(b[1]+h.nbins[1]*b[2])]
}

// Integral returns the sum of bin contents over the inclusive,
// 1-indexed ranges x, y, and z. Ranges on axes beyond Dim are
// ignored, and ranges are clipped to the binned region. An inverted
// range sums to 0.
func (h *Hist) Integral(x, y, z BinRange) float64 {
	rs := [3]BinRange{x, y, z}
	var lo, hi [3]int
	for a := 0; a < 3; a++ {
		if a >= h.dim {
			lo[a], hi[a] = 1, 1
			continue
		}
		l, u := rs[a].Lo, rs[a].Hi
		if l < 1 {
			l = 1
		}
		if u > h.nbins[a] {
			u = h.nbins[a]
		}
		if u < l {
			return 0
		}
		lo[a], hi[a] = l, u
	}
	sum := 0.0
	for iz := lo[2]; iz <= hi[2]; iz++ {
		for iy := lo[1]; iy <= hi[1]; iy++ {
			for ix := lo[0]; ix <= hi[0]; ix++ {
				sum += h.counts[(ix-1)+h.nbins[0]*((iy-1)+h.nbins[1]*(iz-1))]
			}
		}
	}
	return sum
}

// findBin returns the 0-indexed bin containing v, or -1 if v is
// outside the edge span or NaN. Bins are half-open except the last,
// which includes the highest edge.
func findBin(edges []float64, v float64) int {
	last := len(edges) - 1
	// Written so NaN fails the check too.
	if !(v >= edges[0] && v <= edges[last]) {
		return -1
	}
	if v == edges[last] {
		return last - 1
	}
	// First i with edges[i] >= v.
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		return i
	}
	return i - 1
}
