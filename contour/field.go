// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contour traces level sets of a scalar field sampled on a
// rectilinear grid.
//
// Trace returns the polylines where the field crosses a level.
// TraceBand returns the polygons bounding the region where the field
// lies between two levels, for filled contour plots. Both use
// marching squares: each grid cell is classified by which of its
// corners lie above the level, and crossings are linearly
// interpolated along the cell edges.
//
// Only crossings between samples are traced. A level that is reached
// only on the edge of the sampled domain produces no contour.
package contour

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/enthought/chaco-sub000/generic"
)

// A Field is a scalar field sampled on a rectilinear grid. Z[i][j]
// is the value at (X[j], Y[i]). If Mask is non-nil, Mask[i][j] true
// excludes sample (i, j), and every cell touching it, from
// contouring. NaN samples are excluded the same way.
type Field struct {
	X, Y []float64
	Z    [][]float64
	Mask [][]bool
}

// NewField returns a Field over the coordinate arrays xs and ys.
//
// xs and ys may be slices of any numeric type. z is either a
// [][]float64 with one row per y coordinate, or a flat numeric slice
// of len(xs)*len(ys) values in row-major order. mask may be nil, a
// [][]bool of the same shape as z, or a flat []bool. A mask of any
// other type is reported as a *generic.TypeError.
func NewField(xs, ys, z, mask generic.Slice) (*Field, error) {
	fx, err := generic.Float64s(xs)
	if err != nil {
		return nil, err
	}
	fy, err := generic.Float64s(ys)
	if err != nil {
		return nil, err
	}
	nx, ny := len(fx), len(fy)

	var rows [][]float64
	if zz, ok := z.([][]float64); ok {
		rows = zz
	} else {
		flat, err := generic.Float64s(z)
		if err != nil {
			return nil, err
		}
		if len(flat) != nx*ny {
			return nil, fmt.Errorf("contour: z has %d values; want %d×%d", len(flat), ny, nx)
		}
		rows = make([][]float64, ny)
		for i := range rows {
			rows[i] = flat[i*nx : (i+1)*nx]
		}
	}
	if len(rows) != ny {
		return nil, fmt.Errorf("contour: z has %d rows; want %d", len(rows), ny)
	}
	for i, row := range rows {
		if len(row) != nx {
			return nil, fmt.Errorf("contour: row %d of z has %d values; want %d", i, len(row), nx)
		}
	}

	f := &Field{X: fx, Y: fy, Z: rows}
	if mask != nil {
		f.Mask, err = generic.Bools2D(mask, ny, nx)
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Bounds returns the minimum and maximum finite unmasked values of
// the field, or NaN, NaN if there are none.
func (f *Field) Bounds() (lo, hi float64) {
	var vals []float64
	for i, row := range f.Z {
		for j := range row {
			if f.masked(i, j) {
				continue
			}
			vals = append(vals, row[j])
		}
	}
	if len(vals) == 0 {
		return math.NaN(), math.NaN()
	}
	return stats.Bounds(vals)
}

// Levels returns n levels evenly spaced strictly inside the range of
// the field's values.
func (f *Field) Levels(n int) []float64 {
	lo, hi := f.Bounds()
	if n < 1 || math.IsNaN(lo) || lo == hi {
		return nil
	}
	ls := vec.Linspace(lo, hi, n+2)
	return ls[1 : n+1]
}

// masked reports whether sample (i, j) is excluded from contouring.
// Non-finite samples are always excluded.
func (f *Field) masked(i, j int) bool {
	z := f.Z[i][j]
	return math.IsNaN(z) || math.IsInf(z, 0) || (f.Mask != nil && f.Mask[i][j])
}

// cellValid reports whether cell (i, j), whose lower-left sample is
// (i, j), can be contoured.
func (f *Field) cellValid(i, j int) bool {
	return !(f.masked(i, j) || f.masked(i, j+1) || f.masked(i+1, j) || f.masked(i+1, j+1))
}

// A Function is a function of two variables to sample into a Field.
type Function struct {
	// Fn is the function to sample.
	Fn func(x, y float64) float64

	// N is the number of samples along each axis. If N is 0, a
	// reasonable default is used.
	N int

	// Widen sets the sampled domain to Widen times the span of
	// the data along each axis. If Widen is 0, it is treated as
	// 1.1 (that is, widen the domain by 10%, or 5% on each side).
	Widen float64
}

const (
	defaultFunctionSamples = 50
	defaultWiden           = 1.1
)

// Field samples f over the bounds of the x and y data, widened by
// f.Widen. If either data set has no finite values, the result has
// no samples.
func (f Function) Field(xdata, ydata []float64) *Field {
	n := f.N
	if n <= 0 {
		n = defaultFunctionSamples
	}
	widen := f.Widen
	if widen <= 0 {
		widen = defaultWiden
	}

	axis := func(data []float64) []float64 {
		min, max := stats.Bounds(data)
		if math.IsNaN(min) {
			return []float64{}
		}
		span := max - min
		min, max = min-span*(widen-1)/2, max+span*(widen-1)/2
		return vec.Linspace(min, max, n)
	}
	return Sample(f.Fn, axis(xdata), axis(ydata))
}

// Sample returns the Field of fn evaluated at every point of the grid
// xs × ys.
func Sample(fn func(x, y float64) float64, xs, ys []float64) *Field {
	z := make([][]float64, len(ys))
	for i, y := range ys {
		z[i] = make([]float64, len(xs))
		for j, x := range xs {
			z[i][j] = fn(x, y)
		}
	}
	return &Field{X: xs, Y: ys, Z: z}
}
