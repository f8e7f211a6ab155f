// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"

	"github.com/plotkit/plot/scales"
)

// Function samples a function at evenly spaced points over a domain.
//
// Fn is required, and a domain must be available from either Domain
// or Scale. All other fields have reasonable default zero values.
//
// The result of Function has exactly two columns in addition to
// constant columns from the input:
//
// - Column "x" is the points at which Fn was sampled, in sample
// order.
//
// - Column "y" is Fn evaluated at each point.
//
// Function ignores the rows of its input. If the input grouping is
// empty, the result is a single ungrouped table.
type Function struct {
	// Fn is the function to sample. func(float64) float64 and
	// func([]float64) []float64 are called directly; any other
	// function is called by reflection with each sample point as
	// its first argument and Args bound after it. A function
	// whose first parameter is []float64 is treated as
	// vectorized and called once over the whole sample;
	// otherwise it is called once per sample point.
	Fn interface{}

	// N is the number of points to sample Fn at. If N is 0, it
	// is treated as 101.
	N int

	// Args optionally supplies additional arguments to bind to
	// Fn. A slice or array binds each element as one positional
	// argument after x. A map is passed through as a single
	// trailing argument, for functions taking an option map. Any
	// other non-nil value is passed as one additional argument
	// after x. The shape of Args is resolved once, before
	// sampling begins.
	Args interface{}

	// Domain gives the sampling bounds as [lo, hi]. If Domain is
	// nil, the bounds are the observed extent of Scale.
	Domain []float64

	// Scale is the x scale to take the sampling domain from when
	// Domain is nil. If the scale's coordinates are transformed
	// and the scale can invert that transform, the sample points
	// are mapped back through the inverse before Fn is
	// evaluated, so Fn always sees data-space values even on,
	// say, a log-scaled axis.
	Scale scales.Scale
}

func (s Function) F(g table.Grouping) table.Grouping {
	if s.N <= 0 {
		s.N = 101
	}
	lo, hi := s.domain()
	fn := bind(s.Fn, s.Args)

	xs := vec.Linspace(lo, hi, s.N)
	if inv, ok := s.Scale.(scales.InverseTransformer); ok {
		xs = inv.TransformInverse(xs)
	}
	ys := fn(xs)

	// Tables are immutable, so all groups can share the sample
	// columns.
	if len(g.Tables()) == 0 {
		return new(table.Builder).Add("x", xs).Add("y", ys).Done()
	}
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		nt := new(table.Builder).Add("x", xs).Add("y", ys)
		preserveConsts(nt, t)
		return nt.Done()
	})
}

func (s Function) domain() (lo, hi float64) {
	if s.Domain != nil {
		if len(s.Domain) != 2 {
			panic(ConfigError(fmt.Sprintf("Domain must be [lo, hi]; got %v", s.Domain)))
		}
		return s.Domain[0], s.Domain[1]
	}
	if s.Scale == nil {
		panic(ConfigError(fmt.Sprintf("missing x scale and Domain is %v", s.Domain)))
	}
	d := s.Scale.Dimension([2]float64{0, 0})
	return d[0], d[1]
}
