// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rocplot plots a ROC curve from two sample files.
//
// rocplot reads newline-separated numbers from a signal file and a
// background file ("-" for stdin), bins both with a uniform
// partition over [0, 1], and writes the resulting curve as an SVG
// plot, or as a table with -table. It also reports the interpolated
// background efficiency at -at-sig and the combined binomial error
// of the bidirectional query at -at-sig/-at-bkg.
//
// Parameters may come from a YAML file via -config; explicit flags
// and arguments override it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"github.com/rs/zerolog/log"

	"github.com/hepstats/trtroc/logutil"
	"github.com/hepstats/trtroc/roc"
)

func main() {
	var (
		flagConfig  = flag.String("config", "", "load parameters from YAML `file`")
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable   = flag.Bool("table", false, "output a table instead of a plot")
		flagBins    = flag.Int("bins", 0, "partition samples into `n` uniform bins over [0,1] (default 99)")
		flagAtSig   = flag.Float64("at-sig", 0.9, "query background efficiency at signal efficiency `eff`")
		flagAtBkg   = flag.Float64("at-bkg", 0.1, "query signal efficiency at background efficiency `eff` (error term)")
		flagEntries = flag.Bool("norm-entries", false, "normalize errors by entry counts instead of integrals")
		flagTitle   = flag.String("title", "", "plot title")
		flagLevel   = flag.String("v", "info", "log `level`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] signal.dat background.dat\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := logutil.Setup(*flagLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := config{AtSig: 0.9, AtBkg: 0.1}
	if *flagConfig != "" {
		if err := loadConfig(*flagConfig, &cfg); err != nil {
			log.Fatal().Err(err).Str("path", *flagConfig).Msg("loading config")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bins":
			cfg.Bins = *flagBins
		case "at-sig":
			cfg.AtSig = *flagAtSig
		case "at-bkg":
			cfg.AtBkg = *flagAtBkg
		case "norm-entries":
			cfg.NormByEntries = *flagEntries
		case "title":
			cfg.Title = *flagTitle
		}
	})
	if flag.NArg() > 0 {
		cfg.Signal = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		cfg.Background = flag.Arg(1)
	}
	if cfg.Signal == "" || cfg.Background == "" {
		flag.Usage()
		os.Exit(2)
	}
	if cfg.Signal == "-" && cfg.Background == "-" {
		log.Fatal().Msg("signal and background cannot both come from stdin")
	}

	sig, err := readSamples(cfg.Signal)
	if err != nil {
		log.Fatal().Err(err).Msg("reading signal samples")
	}
	bkg, err := readSamples(cfg.Background)
	if err != nil {
		log.Fatal().Err(err).Msg("reading background samples")
	}
	log.Debug().Int("signal", len(sig)).Int("background", len(bkg)).Msg("read samples")

	opt := &roc.Options{}
	if cfg.Bins > 0 {
		opt.Edges = vec.Linspace(0, 1, cfg.Bins+1)
	}
	curve, err := roc.FromSamples(sig, bkg, opt)
	if err != nil {
		log.Fatal().Err(err).Msg("building curve")
	}

	eff, combErr, err := curve.Efficiency(cfg.AtSig, cfg.AtBkg, cfg.NormByEntries)
	if err != nil {
		log.Error().Err(err).Msg("efficiency query")
	} else {
		log.Info().
			Float64("at_sig", cfg.AtSig).
			Float64("bkg_eff", eff).
			Float64("err", combErr).
			Msg("background efficiency")
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output")
		}
		defer f.Close()
	}

	if *flagTable {
		tab := table.NewBuilder(nil).
			Add("signal efficiency", curve.SigPoints()).
			Add("background efficiency", curve.BkgPoints()).
			Done()
		table.Fprint(f, tab)
		return
	}

	title := cfg.Title
	if title == "" {
		title = cfg.Signal + " vs " + cfg.Background
	}
	if err := curve.Plot(&svgPlotter{w: f, width: 500, height: 500}, gg.Title(title)); err != nil {
		log.Fatal().Err(err).Msg("rendering plot")
	}
}
