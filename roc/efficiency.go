// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import (
	"fmt"
	"math"

	"github.com/hepstats/trtroc/interp"
)

// Efficiency evaluates the curve in both directions: the background
// efficiency at signal efficiency atSig, and (for the error only)
// the signal efficiency at background efficiency atBkg. It returns
// the background efficiency and the quadrature sum of the two
// binomial standard errors,
//
//	sqrt(eff*(1-eff)/N_bkg) and sqrt(eff2*(1-eff2)/N_sig),
//
// where the normalization N is the source integrals, or the raw
// entry counts when normByEntries is set.
//
// Queries outside the empirical range extrapolate; if an
// extrapolated efficiency leaves [0, 1] the binomial variance is
// negative and Efficiency fails with ErrDomain rather than clamping.
// A normalization of zero or less fails with ErrDegenerate.
func (c *Curve) Efficiency(atSig, atBkg float64, normByEntries bool) (eff, err float64, _ error) {
	eff, err, _, e := c.EfficiencyInterp(atSig, atBkg, normByEntries)
	return eff, err, e
}

// EfficiencyInterp is Efficiency, but additionally returns the
// inverse interpolant (background efficiency to signal efficiency)
// built for the query, for callers that want to evaluate it further.
// Unlike the forward interpolant it is rebuilt on every call.
func (c *Curve) EfficiencyInterp(atSig, atBkg float64, normByEntries bool) (eff, err float64, inv *interp.Linear, _ error) {
	fwd := c.interpolant()
	// Cannot fail, as in interpolant.
	inv, _ = interp.NewLinear(c.bkgPoints, c.sigPoints)

	nSig, nBkg := c.sigInteg, c.bkgInteg
	if normByEntries {
		nSig, nBkg = c.sigEntries, c.bkgEntries
	}

	eff = fwd.Eval(atSig)
	err1, e := binomialErr(eff, nBkg)
	if e != nil {
		return 0, 0, nil, fmt.Errorf("%w at signal efficiency %g", e, atSig)
	}
	eff2 := inv.Eval(atBkg)
	err2, e := binomialErr(eff2, nSig)
	if e != nil {
		return 0, 0, nil, fmt.Errorf("%w at background efficiency %g", e, atBkg)
	}
	return eff, math.Sqrt(err1*err1 + err2*err2), inv, nil
}

// binomialErr returns the binomial standard error of an efficiency
// measured on n events.
func binomialErr(eff, n float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: normalization %g", ErrDegenerate, n)
	}
	v := eff * (1 - eff) / n
	if v < 0 {
		return 0, fmt.Errorf("%w: %g", ErrDomain, eff)
	}
	return math.Sqrt(v), nil
}
