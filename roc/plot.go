// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

// A Plotter renders a curve from its two coordinate sequences. xs
// and ys have equal length; args carry opaque styling values the
// Plotter may interpret or ignore.
type Plotter interface {
	Plot(xs, ys []float64, args ...interface{}) error
}

// Plot forwards the curve's points and any styling arguments to p.
func (c *Curve) Plot(p Plotter, args ...interface{}) error {
	return p.Plot(c.sigPoints, c.bkgPoints, args...)
}
