// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logutil configures process-wide colorized console logging.
// It is optional plumbing: nothing in the curve engine logs, so a
// program that wants quiet or differently formatted output simply
// never calls Setup.
package logutil

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at stderr with colorized
// level names and sets the global level. level is one of zerolog's
// level strings ("debug", "info", "warn", ...).
func Setup(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logutil: %v", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
