// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales models the scale context consulted by stats.
//
// A stat that synthesizes data, such as stat.Function, needs two
// things from the scale a dimension is plotted on: the extent of the
// data observed so far and, when the axis is drawn in a transformed
// coordinate space, a way to map coordinates back into data space.
// Scale captures the first. The second is an optional capability,
// InverseTransformer, probed with a type assertion: a scale that does
// not implement it has untransformed coordinates and the probe simply
// fails, which callers treat as the identity.
package scales

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// A Scale reports the observed extent of a plot dimension.
type Scale interface {
	// Dimension returns the observed [lo, hi] extent of the
	// dimension, or def if the scale has observed no data.
	Dimension(def [2]float64) [2]float64
}

// An InverseTransformer is a scale whose coordinates are a transform
// of the data (for example, a log scale) and that can map
// coordinates back into data space.
type InverseTransformer interface {
	TransformInverse(xs []float64) []float64
}

// Linear is a continuous scale with untransformed coordinates.
type Linear struct {
	min, max float64
}

// NewLinear returns a Linear scale that has observed no data.
func NewLinear() *Linear {
	return &Linear{math.NaN(), math.NaN()}
}

// Include extends the scale's extent to include each of xs. NaNs are
// ignored. It returns s for chaining.
func (s *Linear) Include(xs ...float64) *Linear {
	for _, x := range xs {
		s.observe(x)
	}
	return s
}

// ExpandDomain extends the scale's extent to cover the values in
// data, which may be a slice of any numeric type.
func (s *Linear) ExpandDomain(data table.Slice) *Linear {
	var xs []float64
	slice.Convert(&xs, data)
	min, max := stats.Bounds(xs)
	s.observe(min)
	s.observe(max)
	return s
}

func (s *Linear) observe(x float64) {
	if math.IsNaN(x) {
		return
	}
	if math.IsNaN(s.min) || x < s.min {
		s.min = x
	}
	if math.IsNaN(s.max) || x > s.max {
		s.max = x
	}
}

// Dimension returns the observed extent, or def if the scale has
// observed no data.
func (s *Linear) Dimension(def [2]float64) [2]float64 {
	if math.IsNaN(s.min) {
		return def
	}
	return [2]float64{s.min, s.max}
}

// Log is a continuous scale whose coordinates are the logarithm of
// the data. Its extent is tracked in transformed coordinates and it
// implements InverseTransformer to map sample points taken in those
// coordinates back into data space.
type Log struct {
	lin  Linear
	base float64
}

// NewLog returns a Log scale in the given base that has observed no
// data. If base <= 0, base 10 is used.
func NewLog(base float64) *Log {
	if base <= 0 {
		base = 10
	}
	return &Log{*NewLinear(), base}
}

// Include extends the scale's extent to include each of xs, given in
// data space. Non-positive values have no logarithm and are ignored.
// It returns s for chaining.
func (s *Log) Include(xs ...float64) *Log {
	for _, x := range xs {
		s.lin.observe(s.transform(x))
	}
	return s
}

// ExpandDomain extends the scale's extent to cover the values in
// data, which may be a slice of any numeric type. Non-positive
// values are ignored.
func (s *Log) ExpandDomain(data table.Slice) *Log {
	var xs []float64
	slice.Convert(&xs, data)
	for _, x := range xs {
		s.lin.observe(s.transform(x))
	}
	return s
}

func (s *Log) transform(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	return math.Log(x) / math.Log(s.base)
}

// Dimension returns the observed extent in transformed coordinates,
// or def if the scale has observed no data.
func (s *Log) Dimension(def [2]float64) [2]float64 {
	return s.lin.Dimension(def)
}

// Transform maps data-space values into the scale's coordinate
// space.
func (s *Log) Transform(xs []float64) []float64 {
	return vec.Map(s.transform, xs)
}

// TransformInverse maps coordinate-space values back into data
// space.
func (s *Log) TransformInverse(xs []float64) []float64 {
	return vec.Map(func(x float64) float64 {
		return math.Pow(s.base, x)
	}, xs)
}
