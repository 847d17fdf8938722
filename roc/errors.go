// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import "errors"

var (
	// ErrConfig reports sources or options that cannot describe
	// a curve: mismatched dimensionality or bin counts, an
	// invalid primary axis, or a bad sample partition.
	ErrConfig = errors.New("roc: invalid configuration")

	// ErrDegenerate reports a source whose integral over the
	// swept region is zero or negative, leaving nothing to
	// normalize by.
	ErrDegenerate = errors.New("roc: degenerate distribution")

	// ErrDomain reports an efficiency query whose extrapolated
	// value fell outside [0, 1], making the binomial error
	// undefined.
	ErrDomain = errors.New("roc: efficiency outside [0, 1]")
)
