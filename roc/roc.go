// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roc builds receiver operating characteristic curves from a
// signal and a background distribution and answers efficiency
// queries against them.
//
// Both distributions may be given as pre-binned histograms (any
// hist.Source, one to three dimensions) or as raw sample slices,
// which are binned with a uniform partition first. The curve sweeps
// a cut along the primary axis from the high end inward; point i of
// the curve is the fraction of signal and of background surviving a
// cut that keeps the topmost i+1 bins.
package roc

import (
	"fmt"
	"sync"

	"github.com/aclements/go-moremath/stats"

	"github.com/hepstats/trtroc/hist"
	"github.com/hepstats/trtroc/interp"
)

// Options configure curve construction. The zero value selects the
// x axis, single-bin secondary ranges, lazy interpolation, and the
// default sample partition.
type Options struct {
	// PrimaryAxis is the axis the cut sweeps along. It must be
	// valid for the dimensionality of the sources; a 1-D source
	// always sweeps x.
	PrimaryAxis hist.Axis

	// Interpolate builds the forward interpolant during
	// construction instead of on first query.
	Interpolate bool

	// XBins, YBins, and ZBins fix the non-primary axes to
	// inclusive bin ranges. A zero range means bins (1, 1). The
	// range on the primary axis is ignored.
	XBins, YBins, ZBins hist.BinRange

	// Edges is the sample partition used by FromSamples. Nil
	// means hist.DefaultEdges.
	Edges []float64
}

func (o *Options) withDefaults() Options {
	var v Options
	if o != nil {
		v = *o
	}
	one := hist.BinRange{Lo: 1, Hi: 1}
	if v.XBins == (hist.BinRange{}) {
		v.XBins = one
	}
	if v.YBins == (hist.BinRange{}) {
		v.YBins = one
	}
	if v.ZBins == (hist.BinRange{}) {
		v.ZBins = one
	}
	return v
}

// A Curve is a constructed ROC curve. It is immutable apart from the
// lazily built forward interpolant, which is published under a
// sync.Once, so a Curve may be shared between goroutines.
type Curve struct {
	sigPoints, bkgPoints   []float64
	sigInteg, bkgInteg     float64
	sigEntries, bkgEntries float64
	sigMin, sigMax         float64
	bkgMin, bkgMax         float64

	once    sync.Once
	forward *interp.Linear
}

// New builds a ROC curve from two histograms. Both must have the
// same dimensionality and the same bin count on every axis, and the
// primary axis must exist in that dimensionality. Construction fails
// with ErrDegenerate if either histogram integrates to zero (or
// below) over the swept region.
func New(sig, bkg hist.Source, opt *Options) (*Curve, error) {
	o := opt.withDefaults()

	dim := sig.Dim()
	if d := bkg.Dim(); d != dim {
		return nil, fmt.Errorf("%w: signal is %d-dimensional, background %d-dimensional", ErrConfig, dim, d)
	}
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%w: unsupported dimensionality %d", ErrConfig, dim)
	}
	for a := hist.X; a < hist.Axis(dim); a++ {
		if sig.Bins(a) != bkg.Bins(a) {
			return nil, fmt.Errorf("%w: bin count mismatch on %s axis: %d vs %d", ErrConfig, a, sig.Bins(a), bkg.Bins(a))
		}
	}

	prim := o.PrimaryAxis
	if dim == 1 {
		// A 1-D source is always swept along x, whatever the
		// caller asked for.
		prim = hist.X
	}
	if prim < hist.X || int(prim) >= dim {
		return nil, fmt.Errorf("%w: primary axis %s invalid for %d-dimensional source", ErrConfig, prim, dim)
	}

	nbins := sig.Bins(prim)
	full := [3]hist.BinRange{o.XBins, o.YBins, o.ZBins}
	full[prim] = hist.BinRange{Lo: 1, Hi: nbins}

	sigInteg := sig.Integral(full[0], full[1], full[2])
	bkgInteg := bkg.Integral(full[0], full[1], full[2])
	if sigInteg <= 0 {
		return nil, fmt.Errorf("%w: signal integral %g", ErrDegenerate, sigInteg)
	}
	if bkgInteg <= 0 {
		return nil, fmt.Errorf("%w: background integral %g", ErrDegenerate, bkgInteg)
	}

	c := &Curve{
		sigPoints:  make([]float64, 0, nbins),
		bkgPoints:  make([]float64, 0, nbins),
		sigInteg:   sigInteg,
		bkgInteg:   bkgInteg,
		sigEntries: sig.Entries(),
		bkgEntries: bkg.Entries(),
	}
	for i := 0; i < nbins; i++ {
		r := full
		r[prim] = hist.BinRange{Lo: nbins - i, Hi: nbins}
		c.sigPoints = append(c.sigPoints, sig.Integral(r[0], r[1], r[2])/sigInteg)
		c.bkgPoints = append(c.bkgPoints, bkg.Integral(r[0], r[1], r[2])/bkgInteg)
	}
	c.sigMin, c.sigMax = stats.Bounds(c.sigPoints)
	c.bkgMin, c.bkgMax = stats.Bounds(c.bkgPoints)

	if o.Interpolate {
		c.interpolant()
	}
	return c, nil
}

// FromSamples builds a ROC curve from two slices of raw
// observations. Both are binned with the same partition
// (Options.Edges, by default 99 uniform cells over [0, 1]) and swept
// exactly like a 1-D histogram pair.
func FromSamples(sig, bkg []float64, opt *Options) (*Curve, error) {
	o := opt.withDefaults()
	edges := o.Edges
	if edges == nil {
		edges = hist.DefaultEdges()
	}
	sh, err := hist.FromSamples(sig, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: signal partition: %v", ErrConfig, err)
	}
	bh, err := hist.FromSamples(bkg, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: background partition: %v", ErrConfig, err)
	}
	return New(sh, bh, &Options{Interpolate: o.Interpolate})
}

// Len returns the number of points on the curve, which equals the
// bin count of the primary axis.
func (c *Curve) Len() int { return len(c.sigPoints) }

// SigPoints returns the signal efficiency of each cut, tightest cut
// first. The returned slice is shared with the Curve and must not be
// modified.
func (c *Curve) SigPoints() []float64 { return c.sigPoints }

// BkgPoints returns the background efficiency of each cut, aligned
// index by index with SigPoints. The returned slice is shared with
// the Curve and must not be modified.
func (c *Curve) BkgPoints() []float64 { return c.bkgPoints }

// SigIntegral returns the total signal count over the swept region.
func (c *Curve) SigIntegral() float64 { return c.sigInteg }

// BkgIntegral returns the total background count over the swept
// region.
func (c *Curve) BkgIntegral() float64 { return c.bkgInteg }

// SigBounds returns the smallest and largest signal efficiency on
// the curve.
func (c *Curve) SigBounds() (min, max float64) { return c.sigMin, c.sigMax }

// BkgBounds returns the smallest and largest background efficiency
// on the curve.
func (c *Curve) BkgBounds() (min, max float64) { return c.bkgMin, c.bkgMax }

// Interpolant returns the forward interpolant mapping signal
// efficiency to background efficiency, building it on first use.
func (c *Curve) Interpolant() *interp.Linear {
	return c.interpolant()
}

func (c *Curve) interpolant() *interp.Linear {
	c.once.Do(func() {
		// Cannot fail: the point slices are equal-length and
		// non-empty by construction.
		l, _ := interp.NewLinear(c.sigPoints, c.bkgPoints)
		c.forward = l
	})
	return c.forward
}
