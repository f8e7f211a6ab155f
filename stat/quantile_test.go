// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuantileExactLine(t *testing.T) {
	// On exactly collinear data every quantile curve is the data
	// line itself.
	xs := make([]float64, 21)
	ys := make([]float64, 21)
	for i := range xs {
		xs[i] = float64(i) / 2
		ys[i] = 2*xs[i] + 1
	}
	in := new(table.Builder).Add("x", xs).Add("y", ys).Done()

	out := Quantile{X: "x", Y: "y"}.F(in)
	tab := soleTable(t, out)

	loose := cmpopts.EquateApprox(1e-6, 1e-6)
	if diff := cmp.Diff([]float64{0, 10, 0, 10, 0, 10}, tab.MustColumn("x"), loose); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 21, 1, 21, 1, 21}, tab.MustColumn("y"), loose); diff != "" {
		t.Errorf("y mismatch (-want +got):\n%s", diff)
	}
	wantQ := []float64{0.25, 0.25, 0.5, 0.5, 0.75, 0.75}
	if diff := cmp.Diff(wantQ, tab.MustColumn("quantile")); diff != "" {
		t.Errorf("quantile mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantileOrdering(t *testing.T) {
	// Three bands of data at y = x-1, x, x+1. The fitted curves
	// must be ordered by quantile and the median must track the
	// central band.
	var xs, ys []float64
	for i := 0; i < 20; i++ {
		x := float64(i)
		for _, off := range []float64{-1, 0, 1} {
			xs = append(xs, x)
			ys = append(ys, x+off)
		}
	}
	in := new(table.Builder).Add("x", xs).Add("y", ys).Done()

	out := Quantile{X: "x", Y: "y"}.F(in)
	tab := soleTable(t, out)

	y := tab.MustColumn("y").([]float64)
	// Rows are [q25 lo, q25 hi, q50 lo, q50 hi, q75 lo, q75 hi].
	const slack = 0.05
	for i := 0; i < 2; i++ {
		if y[i] > y[i+2]+slack || y[i+2] > y[i+4]+slack {
			t.Errorf("quantile curves out of order at endpoint %d: %v, %v, %v", i, y[i], y[i+2], y[i+4])
		}
	}
	if y[2] > 0+slack || y[2] < 0-slack {
		t.Errorf("median intercept %v; want about 0", y[2])
	}
	if slope := (y[3] - y[2]) / 19; slope < 0.9 || slope > 1.1 {
		t.Errorf("median slope %v; want about 1", slope)
	}
}

func TestQuantileCustom(t *testing.T) {
	// A quadratic fit on exactly quadratic data reproduces it.
	xs := make([]float64, 11)
	ys := make([]float64, 11)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = xs[i] * xs[i]
	}
	in := new(table.Builder).Add("x", xs).Add("y", ys).Done()

	out := Quantile{X: "x", Y: "y", Quantiles: []float64{0.5}, Degree: 2, N: 5}.F(in)
	tab := soleTable(t, out)

	loose := cmpopts.EquateApprox(1e-4, 1e-4)
	if diff := cmp.Diff([]float64{0, 2.5, 5, 7.5, 10}, tab.MustColumn("x"), loose); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 6.25, 25, 56.25, 100}, tab.MustColumn("y"), loose); diff != "" {
		t.Errorf("y mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantilePreservesConsts(t *testing.T) {
	in := new(table.Builder).
		Add("x", []float64{0, 1, 2}).
		Add("y", []float64{0, 1, 2}).
		AddConst("label", "a").
		Done()
	out := Quantile{X: "x", Y: "y", Quantiles: []float64{0.5}}.F(in)
	tab := soleTable(t, out)
	if v, ok := tab.Const("label"); !ok || v != "a" {
		t.Errorf("want const label \"a\"; got %v, %v", v, ok)
	}
}

func TestQuantileEmpty(t *testing.T) {
	in := new(table.Builder).Add("x", []float64{}).Add("y", []float64{}).Done()
	out := Quantile{X: "x", Y: "y"}.F(in)
	tab := soleTable(t, out)
	for _, col := range []string{"x", "y", "quantile"} {
		if n := len(tab.MustColumn(col).([]float64)); n != 0 {
			t.Errorf("column %q: want 0 rows; got %d", col, n)
		}
	}
}

func TestQuantileMissingColumn(t *testing.T) {
	in := new(table.Builder).Add("x", []float64{0, 1}).Done()
	shouldPanic(t, "unknown column", func() {
		Quantile{X: "x", Y: "y"}.F(in)
	})
}
