// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generic provides checked conversions from dynamically typed
// Go slices to the concrete slice types the plotting core computes
// with.
//
// Data arrives from callers as whatever slice type they happen to
// hold ([]int32 sample counts, []float32 sensor readings, [][]bool
// masks). The functions in this package either convert such a value or
// report a *TypeError; they never silently coerce between unrelated
// kinds (for example, a []uint8 is not accepted where a []bool mask
// is required).
package generic

import "reflect"

// A Slice is a Go slice value.
//
// This is primarily for documentation. There is no way to statically
// enforce this in Go; however, functions that expect a Slice will
// report a *TypeError if passed a non-slice value.
type Slice interface{}

// reflectSlice checks that s is a slice and returns its
// reflect.Value.
func reflectSlice(s Slice) (reflect.Value, error) {
	rv := reflect.ValueOf(s)
	if !rv.IsValid() {
		return rv, &TypeError{nil, nil, "is not a slice"}
	}
	if rv.Kind() != reflect.Slice {
		return rv, &TypeError{rv.Type(), nil, "is not a slice"}
	}
	return rv, nil
}

var numericKinds = map[reflect.Kind]bool{
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
	reflect.Uintptr: true,
}

// IsNumeric reports whether values of kind k can be converted to
// float64.
func IsNumeric(k reflect.Kind) bool {
	return numericKinds[k]
}
