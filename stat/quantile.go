// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Quantile fits conditional quantile regression curves to the data
// (X, Y) and samples each curve over the extent of X.
//
// X and Y are required. All other fields have reasonable default zero
// values.
//
// The result of Quantile has three columns in addition to constant
// columns from the input:
//
// - Column X is the points at which the fitted curves are sampled.
//
// - Column Y is the value of the fitted curve.
//
// - Column "quantile" is the quantile a curve was fit for. The rows
// for one quantile are contiguous, so downstream layers can group on
// this column to draw one path per quantile.
type Quantile struct {
	// X and Y are the names of the columns to use for X and Y
	// values of data points, respectively.
	X, Y string

	// Quantiles gives the quantiles of Y to fit curves for. If it
	// is nil, it is treated as [0.25, 0.5, 0.75].
	Quantiles []float64

	// Degree specifies the degree of the fit polynomial. If it is
	// 0, it is treated as 1.
	Degree int

	// N is the number of points to sample each curve at. If N is
	// 0, it is treated as 2, which is exact for linear fits.
	N int
}

func (s Quantile) F(g table.Grouping) table.Grouping {
	if len(s.Quantiles) == 0 {
		s.Quantiles = []float64{0.25, 0.5, 0.75}
	}
	if s.Degree <= 0 {
		s.Degree = 1
	}
	if s.N <= 0 {
		s.N = 2
	}

	var xs, ys []float64
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() == 0 {
			nt := new(table.Builder).Add(s.X, []float64{}).Add(s.Y, []float64{}).Add("quantile", []float64{})
			preserveConsts(nt, t)
			return nt.Done()
		}

		slice.Convert(&xs, t.MustColumn(s.X))
		slice.Convert(&ys, t.MustColumn(s.Y))
		min, max := stats.Bounds(xs)
		eval := vec.Linspace(min, max, s.N)

		xo := make([]float64, 0, len(s.Quantiles)*s.N)
		yo := make([]float64, 0, len(s.Quantiles)*s.N)
		qo := make([]float64, 0, len(s.Quantiles)*s.N)
		for _, q := range s.Quantiles {
			f := quantReg(xs, ys, q, s.Degree)
			xo = append(xo, eval...)
			yo = append(yo, vec.Map(f, eval)...)
			for range eval {
				qo = append(qo, q)
			}
		}

		nt := new(table.Builder).Add(s.X, xo).Add(s.Y, yo).Add("quantile", qo)
		preserveConsts(nt, t)
		return nt.Done()
	})
}

// quantReg fits a polynomial minimizing the pinball loss for quantile
// q by iteratively reweighted least squares: each round refits a
// weighted least squares polynomial with weights proportional to the
// asymmetric reciprocal absolute residuals of the previous round. The
// residual floor keeps exactly-interpolated points from dominating
// the weights.
func quantReg(xs, ys []float64, q float64, degree int) func(float64) float64 {
	const (
		rounds = 30
		floor  = 1e-6
	)

	ws := make([]float64, len(xs))
	for i := range ws {
		ws[i] = 1
	}
	var f func(float64) float64
	for round := 0; round < rounds; round++ {
		r := fit.PolynomialRegression(xs, ys, ws, degree)
		f = r.F
		for i, x := range xs {
			resid := ys[i] - f(x)
			w := q
			if resid < 0 {
				w = 1 - q
			}
			ws[i] = w / math.Max(math.Abs(resid), floor)
		}
	}
	return f
}
