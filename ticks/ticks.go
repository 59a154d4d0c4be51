// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks chooses the data values at which an axis places tick
// marks.
//
// The core algorithms (AutoTicks, AutoInterval, LogAutoTicks) pick
// "nice" values: multiples of 1, 2, 2.5 or 5 times a power of ten.
// A Generator wraps one of these algorithms for use by an axis.
package ticks

import (
	"fmt"
	"math"
)

// Scale is the kind of scale ticks are generated for.
type Scale string

const (
	LinearScale Scale = "linear"
	LogScale    Scale = "log"
)

// A Bound is the lower or upper end of the tick range. An Auto bound
// is rounded out from the data to the nearest tick.
type Bound struct {
	Auto  bool
	Value float64
}

// AutoBound is a bound computed from the data.
var AutoBound = Bound{Auto: true}

// At returns a bound fixed at v.
func At(v float64) Bound {
	return Bound{Value: v}
}

// DefaultMaxTicks is the default maximum number of ticks AutoInterval
// aims for.
const DefaultMaxTicks = 9

// A Request describes the ticks wanted for one axis.
type Request struct {
	// DataLow and DataHigh are the extent of the data.
	DataLow, DataHigh float64

	// BoundsLow and BoundsHigh limit the returned ticks. An Auto
	// bound is rounded out from the data to the nearest tick.
	BoundsLow, BoundsHigh Bound

	// Interval is the spacing between ticks. 0 chooses a spacing
	// automatically. -N asks for exactly N intervals. On a log
	// scale, a positive Interval is the multiplier between ticks
	// within a decade.
	Interval float64

	// UseEndpoints forces the first and last ticks onto the
	// bounds, even if they are not nice values.
	UseEndpoints bool

	Scale Scale
}

// A Generator computes tick positions.
//
// If any of the request's data or bounds values is NaN, Ticks returns
// no ticks and no error. If the request's range is inverted, it
// returns a *RangeError.
type Generator interface {
	Ticks(r Request) ([]float64, error)
}

// RangeError is returned by a Generator when a range's low end is
// above its high end.
type RangeError struct {
	Low, High float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ticks: inverted range [%g, %g]", e.Low, e.High)
}

// check validates r. It returns ok == false if no ticks should be
// generated.
func check(r Request) (ok bool, err error) {
	lo, hi := r.bounds()
	for _, v := range []float64{r.DataLow, r.DataHigh, lo, hi} {
		if math.IsNaN(v) {
			return false, nil
		}
	}
	if r.DataLow > r.DataHigh {
		return false, &RangeError{r.DataLow, r.DataHigh}
	}
	if lo > hi {
		return false, &RangeError{lo, hi}
	}
	return true, nil
}

// bounds returns the request's bounds, taking Auto bounds from the
// data.
func (r Request) bounds() (lo, hi float64) {
	lo, hi = r.DataLow, r.DataHigh
	if !r.BoundsLow.Auto {
		lo = r.BoundsLow.Value
	}
	if !r.BoundsHigh.Auto {
		hi = r.BoundsHigh.Value
	}
	return lo, hi
}
