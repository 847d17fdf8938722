// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// svgPlotter renders a curve as SVG with go-gg. It implements
// roc.Plotter; styling arguments that are gg.Plotter values (such as
// gg.Title) are added to the plot, anything else is ignored.
type svgPlotter struct {
	w             io.Writer
	width, height int
}

func (s *svgPlotter) Plot(xs, ys []float64, args ...interface{}) error {
	tab := table.NewBuilder(nil).
		Add("signal efficiency", xs).
		Add("background efficiency", ys).
		Done()

	plot := gg.NewPlot(tab)
	plot.SetScale("x", gg.NewLinearScaler().Include(0))
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerLines{X: "signal efficiency", Y: "background efficiency"})
	for _, arg := range args {
		if p, ok := arg.(gg.Plotter); ok {
			plot.Add(p)
		}
	}
	return plot.WriteSVG(s.w, s.width, s.height)
}
