// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fnplot plots a function sampled over a domain.
//
// fnplot samples one of a set of built-in math functions at evenly
// spaced points and either renders the result as an SVG line plot or
// prints it as a table. For example,
//
//	fnplot -fn sin -domain 0,6.283
//	fnplot -fn pow -args 2 -domain 0,3 -n 4 -table
//
// With -log, the domain is given in log10 coordinates and the sample
// points are spaced geometrically, the way the function would be
// sampled for a log-scaled axis.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"

	"github.com/plotkit/plot/scales"
	"github.com/plotkit/plot/stat"
)

var funcs = map[string]interface{}{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"gamma": math.Gamma,
	"pow":   math.Pow,
}

func main() {
	log.SetPrefix("fnplot: ")
	log.SetFlags(0)

	var (
		flagFn     = flag.String("fn", "sin", "sample built-in function `name`")
		flagN      = flag.Int("n", 101, "sample the function at `count` points")
		flagDomain = flag.String("domain", "0,1", "sample over `lo,hi`")
		flagArgs   = flag.String("args", "", "bind `values` to the function as extra positional arguments")
		flagLog    = flag.Bool("log", false, "treat the domain as log10 coordinates")
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable  = flag.Bool("table", false, "output a table instead of a plot")
		flagWidth  = flag.Int("width", 500, "SVG width in `pixels`")
		flagHeight = flag.Int("height", 350, "SVG height in `pixels`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	fn, ok := funcs[*flagFn]
	if !ok {
		names := make([]string, 0, len(funcs))
		for name := range funcs {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Fatalf("unknown function %q; have %s", *flagFn, strings.Join(names, ", "))
	}

	lo, hi, err := parseDomain(*flagDomain)
	if err != nil {
		log.Fatal(err)
	}
	args, err := parseArgs(*flagArgs)
	if err != nil {
		log.Fatal(err)
	}

	st := stat.Function{Fn: fn, N: *flagN}
	if len(args) > 0 {
		st.Args = args
	}
	if *flagLog {
		// The domain is in log coordinates. Train a log scale
		// on its data-space endpoints and let the stat sample
		// through the scale's inverse transform.
		st.Scale = scales.NewLog(10).Include(math.Pow(10, lo), math.Pow(10, hi))
	} else {
		st.Domain = []float64{lo, hi}
	}
	tab := st.F(new(table.Table))

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(f, tab)
		return
	}

	// Plot.
	plot := gg.NewPlot(tab)
	plot.Add(gg.Title(*flagFn))
	plot.Add(gg.LayerLines{X: "x", Y: "y"})
	if err := plot.WriteSVG(f, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
}

func parseDomain(s string) (lo, hi float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("domain must be lo,hi; got %q", s)
	}
	lo, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err == nil {
		hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("bad domain %q: %v", s, err)
	}
	return lo, hi, nil
}

// parseArgs splits a shell-quoted list of numbers to bind as extra
// positional arguments of the sampled function.
func parseArgs(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad args %q: %v", s, err)
	}
	args := make([]float64, len(words))
	for i, w := range words {
		args[i], err = strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("bad args %q: %v", s, err)
		}
	}
	return args, nil
}
