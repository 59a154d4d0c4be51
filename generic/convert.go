// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"reflect"
)

var (
	float64sType = reflect.TypeOf([]float64(nil))
	boolsType    = reflect.TypeOf([]bool(nil))
	bools2DType  = reflect.TypeOf([][]bool(nil))
)

// ConvertSlice converts each element in from and assigns it to *to.
// to must be a pointer to a slice. ConvertSlice slices or extends *to
// to len(from) and then assigns to[i] = T(from[i]) where T is the
// type of *to's elements. If from and *to have the same element type,
// it simply assigns *to = from.
//
// ConvertSlice panics with a *TypeError if the conversion is not
// possible. Callers that take slices from outside the package should
// use Float64s or Bools2D, which report the error instead.
func ConvertSlice(to interface{}, from Slice) {
	fv, err := reflectSlice(from)
	if err != nil {
		panic(err)
	}
	tv := reflect.ValueOf(to)
	if tv.Kind() != reflect.Ptr || tv.Elem().Kind() != reflect.Slice {
		panic(&TypeError{tv.Type(), nil, "is not a *[]T"})
	}
	tsv := tv.Elem()

	if fv.Type().AssignableTo(tsv.Type()) {
		tsv.Set(fv)
		return
	}

	eltt := tsv.Type().Elem()
	if !fv.Type().Elem().ConvertibleTo(eltt) {
		panic(&TypeError{fv.Type(), tsv.Type(), "cannot be converted"})
	}

	switch to := to.(type) {
	case *[]float64:
		// This is by far the most common case.
		*to = (*to)[:0]
		for i, n := 0, fv.Len(); i < n; i++ {
			*to = append(*to, fv.Index(i).Convert(eltt).Float())
		}

	default:
		tsv.SetLen(0)
		for i, n := 0, fv.Len(); i < n; i++ {
			tsv = reflect.Append(tsv, fv.Index(i).Convert(eltt))
		}
		tv.Elem().Set(tsv)
	}
}

// Float64s returns s as a []float64. s must be a slice of a numeric
// kind (any int, uint, or float type). If s is already a []float64 it
// is returned without copying.
func Float64s(s Slice) ([]float64, error) {
	if fs, ok := s.([]float64); ok {
		return fs, nil
	}
	rv, err := reflectSlice(s)
	if err != nil {
		return nil, err
	}
	if !IsNumeric(rv.Type().Elem().Kind()) {
		return nil, &TypeError{rv.Type(), float64sType, "cannot be converted"}
	}
	var out []float64
	ConvertSlice(&out, s)
	return out, nil
}

// Bools2D returns s as a rows x cols boolean matrix. s must be either
// a [][]bool with rows rows of cols elements each, or a flat []bool of
// rows*cols elements in row-major order. Any other element type,
// including integer types that are commonly used as flags, is
// reported as a *TypeError; no truthiness conversion is performed.
func Bools2D(s Slice, rows, cols int) ([][]bool, error) {
	switch s := s.(type) {
	case [][]bool:
		if len(s) != rows {
			return nil, &TypeError{bools2DType, nil, "has the wrong number of rows"}
		}
		for _, row := range s {
			if len(row) != cols {
				return nil, &TypeError{bools2DType, nil, "has a row of the wrong length"}
			}
		}
		return s, nil

	case []bool:
		if len(s) != rows*cols {
			return nil, &TypeError{boolsType, nil, "has the wrong number of elements"}
		}
		out := make([][]bool, rows)
		for i := range out {
			out[i] = s[i*cols : (i+1)*cols]
		}
		return out, nil
	}

	rv, err := reflectSlice(s)
	if err != nil {
		return nil, err
	}
	return nil, &TypeError{rv.Type(), bools2DType, "is not a boolean mask"}
}
