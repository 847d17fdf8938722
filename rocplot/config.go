// Copyright 2026 The trtroc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type config struct {
	Signal        string  `yaml:"signal"`
	Background    string  `yaml:"background"`
	Bins          int     `yaml:"bins"`
	AtSig         float64 `yaml:"at_sig"`
	AtBkg         float64 `yaml:"at_bkg"`
	NormByEntries bool    `yaml:"norm_by_entries"`
	Title         string  `yaml:"title"`
}

func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// readSamples reads newline-separated floats from path, or from
// stdin if path is "-". Blank lines are skipped.
func readSamples(path string) ([]float64, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var xs []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		xs = append(xs, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}
