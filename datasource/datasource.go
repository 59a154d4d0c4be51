// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datasource provides the data arrays that ranges fit
// themselves to.
//
// A source owns a sequence of values, reports their finite bounds,
// and fires event.DataChanged whenever its values are replaced.
package datasource

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/enthought/chaco-sub000/event"
	"github.com/enthought/chaco-sub000/generic"
)

// A Source is a one-dimensional array of values.
type Source interface {
	// Data returns the source's values. The caller must not
	// modify the returned slice.
	Data() []float64

	// Bounds returns the minimum and maximum finite values in the
	// source. If there are no finite values, it returns NaN, NaN.
	Bounds() (lo, hi float64)

	// Len returns the number of values, including non-finite
	// ones.
	Len() int

	Subscribe(ev event.Event, fn func()) event.Subscription
	Unsubscribe(s event.Subscription)
}

// A Source2D is a two-dimensional data set, such as a point cloud or
// the coordinates of a sampled grid.
type Source2D interface {
	// Bounds2D returns the lower-left and upper-right corners of
	// the finite data. Components with no finite data are NaN.
	Bounds2D() (lo, hi [2]float64)

	// Len returns the number of points.
	Len() int

	Subscribe(ev event.Event, fn func()) event.Subscription
	Unsubscribe(s event.Subscription)
}

// SortOrder records what the caller knows about the order of an
// Array's values.
type SortOrder int

const (
	Unsorted SortOrder = iota
	Ascending
	Descending
)

// Array is a Source backed by a slice.
type Array struct {
	event.Notifier

	// SortOrder, if not Unsorted, promises that the finite values
	// are in that order. Bounds then only looks at the ends.
	SortOrder SortOrder

	data []float64
}

// NewArray returns an Array holding data, which may be a slice of any
// numeric type. Non-float64 slices are copied.
func NewArray(data generic.Slice) (*Array, error) {
	a := new(Array)
	fs, err := generic.Float64s(data)
	if err != nil {
		return nil, err
	}
	a.data = fs
	return a, nil
}

// SetData replaces a's values and fires event.DataChanged.
func (a *Array) SetData(data generic.Slice) error {
	fs, err := generic.Float64s(data)
	if err != nil {
		return err
	}
	a.data = fs
	a.Notify(event.DataChanged)
	return nil
}

func (a *Array) Data() []float64 { return a.data }

func (a *Array) Len() int { return len(a.data) }

func (a *Array) Bounds() (lo, hi float64) {
	if a.SortOrder != Unsorted {
		lo, hi = sortedBounds(a.data)
		if a.SortOrder == Descending {
			lo, hi = hi, lo
		}
		return
	}
	return finiteBounds(a.data)
}

// finiteBounds returns the bounds of the finite values in xs.
func finiteBounds(xs []float64) (lo, hi float64) {
	finite := xs
	for i, x := range xs {
		if !isFinite(x) {
			// Only copy if we have to.
			finite = append([]float64(nil), xs[:i]...)
			for _, x := range xs[i+1:] {
				if isFinite(x) {
					finite = append(finite, x)
				}
			}
			break
		}
	}
	return stats.Bounds(finite)
}

// sortedBounds returns the first and last finite values of xs.
func sortedBounds(xs []float64) (first, last float64) {
	first, last = math.NaN(), math.NaN()
	for _, x := range xs {
		if isFinite(x) {
			first = x
			break
		}
	}
	for i := len(xs) - 1; i >= 0; i-- {
		if isFinite(xs[i]) {
			last = xs[i]
			break
		}
	}
	return
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
