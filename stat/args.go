// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/vec"
)

var (
	float64Type      = reflect.TypeOf(float64(0))
	float64SliceType = reflect.TypeOf([]float64(nil))
)

// bind validates fn, binds args to it, and returns a sampler that
// evaluates fn at each of a slice of sample points. The shape of args
// and the calling convention of fn are resolved here, once, so the
// sampler itself has no per-point dispatch.
//
// bind panics with a ConfigError if fn is not a callable function.
// Panics raised by fn itself during evaluation propagate to the
// caller unmodified.
func bind(fn, args interface{}) func(xs []float64) []float64 {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		panic(ConfigError(fmt.Sprintf("Fn must be a function or any other callable value; got %v (%T)", fn, fn)))
	}

	// Common shapes avoid reflection in the sampler.
	if args == nil {
		switch f := fn.(type) {
		case func(float64) float64:
			return func(xs []float64) []float64 { return vec.Map(f, xs) }
		case func([]float64) []float64:
			return f
		}
	}

	ft := fv.Type()
	extra := extraArgs(args)
	for i, e := range extra {
		extra[i] = convertArg(e, ft, i+1)
	}

	// A function whose first parameter is the whole sample is
	// vectorized: one call computes every y.
	vectorized := ft.NumIn() > 0 && ft.In(0) == float64SliceType &&
		!(ft.IsVariadic() && ft.NumIn() == 1)
	if vectorized {
		return func(xs []float64) []float64 {
			in := append([]reflect.Value{reflect.ValueOf(xs)}, extra...)
			out := fv.Call(in)[0]
			var ys []float64
			slice.Convert(&ys, out.Interface())
			return ys
		}
	}

	convertX := ft.NumIn() > 0 && !ft.IsVariadic() &&
		ft.In(0) != float64Type && float64Type.ConvertibleTo(ft.In(0))
	return func(xs []float64) []float64 {
		ys := make([]float64, len(xs))
		in := make([]reflect.Value, 1+len(extra))
		copy(in[1:], extra)
		for i, x := range xs {
			xv := reflect.ValueOf(x)
			if convertX {
				xv = xv.Convert(ft.In(0))
			}
			in[0] = xv
			out := fv.Call(in)[0]
			if out.Kind() == reflect.Interface {
				out = out.Elem()
			}
			ys[i] = out.Convert(float64Type).Float()
		}
		return ys
	}
}

// extraArgs resolves args into the arguments bound after x. There
// are four shapes: nil binds nothing; a slice or array binds each
// element positionally; a map binds as one trailing argument (Go has
// no keyword arguments, so an option map is the nearest equivalent);
// anything else binds as one trailing argument.
func extraArgs(args interface{}) []reflect.Value {
	if args == nil {
		return nil
	}
	av := reflect.ValueOf(args)
	switch av.Kind() {
	case reflect.Slice, reflect.Array:
		extra := make([]reflect.Value, av.Len())
		for i := range extra {
			e := av.Index(i)
			if e.Kind() == reflect.Interface && !e.IsNil() {
				e = e.Elem()
			}
			extra[i] = e
		}
		return extra
	case reflect.Map:
		return []reflect.Value{av}
	default:
		return []reflect.Value{av}
	}
}

// convertArg converts e to the type of ft's i'th parameter when the
// types differ but are convertible, so that, say, an int bound to a
// float64 parameter just works. Arguments beyond ft's parameters are
// left alone for Call to report.
func convertArg(e reflect.Value, ft reflect.Type, i int) reflect.Value {
	var pt reflect.Type
	switch {
	case ft.IsVariadic() && i >= ft.NumIn()-1:
		pt = ft.In(ft.NumIn() - 1).Elem()
	case i < ft.NumIn():
		pt = ft.In(i)
	default:
		return e
	}
	if e.Type() != pt && e.Type().ConvertibleTo(pt) {
		return e.Convert(pt)
	}
	return e
}
