// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapper transforms between data space and screen space.
//
// A 1-D mapper (Linear, Log) maps the interval of a
// datarange.Range1D onto the screen interval [lowPos, highPos]. The
// transform's scale factors are cached and the cache is invalidated
// synchronously whenever the screen interval or the range's bounds
// change, so a mapping call never uses stale factors. Every mapper
// fires event.Updated when its transform changes.
//
// Ranges are shared by reference. Any number of mappers may hold the
// same range and all of them are invalidated when it changes.
package mapper

import (
	"github.com/aclements/go-moremath/mathx"

	"github.com/enthought/chaco-sub000/datarange"
	"github.com/enthought/chaco-sub000/event"
)

// TickScale names the tick placement a mapper's transform calls for.
type TickScale string

const (
	LinearTicks TickScale = "linear"
	LogTicks    TickScale = "log"
)

// Mapper1D is a one-dimensional data/screen transform.
type Mapper1D interface {
	// MapScreen maps a data value to a screen coordinate.
	MapScreen(x float64) float64

	// MapData maps a screen coordinate back to data space. It is
	// the inverse of MapScreen. If the screen or data interval is
	// empty, it returns the range's low bound.
	MapData(s float64) float64

	MapScreenArray(xs []float64) []float64
	MapDataArray(ss []float64) []float64

	ScreenBounds() (lowPos, highPos float64)
	SetScreenBounds(lowPos, highPos float64)

	Range() *datarange.Range1D
	SetRange(r *datarange.Range1D)

	// StretchData reports whether resizing the screen interval
	// changes the data-to-screen ratio. If false, resizing
	// instead changes the extent of the range so the ratio is
	// preserved.
	StretchData() bool
	SetStretchData(stretch bool)

	// Sign is 1 if MapScreen is increasing, -1 if it is
	// decreasing, and 0 if either interval is empty.
	Sign() float64

	TickScale() TickScale

	Subscribe(ev event.Event, fn func()) event.Subscription
	Unsubscribe(s event.Subscription)
}

// transform is the part of a 1-D mapper that varies between linear
// and log mappers.
type transform interface {
	compute(lo, hi, lowPos, highPos float64)
	// adjust computes the new high bound of the data range that
	// keeps the data-to-screen ratio when the screen extent
	// changes from oldD to newD.
	adjust(lo, hi, oldD, newD float64) (newHi float64, ok bool)
}

// base holds the state common to 1-D mappers.
type base struct {
	event.Notifier

	rng             *datarange.Range1D
	sub             event.Subscription
	lowPos, highPos float64
	noStretch       bool
	cacheValid      bool
	quiet           bool
	t               transform
}

func (b *base) init(t transform, r *datarange.Range1D, lowPos, highPos float64) {
	b.t = t
	b.lowPos, b.highPos = lowPos, highPos
	b.SetRange(r)
}

// ensure recomputes the cached transform if anything it depends on
// has changed.
func (b *base) ensure() {
	if b.cacheValid {
		return
	}
	lo, hi := b.rng.Bounds()
	b.t.compute(lo, hi, b.lowPos, b.highPos)
	b.cacheValid = true
}

func (b *base) invalidate() {
	b.cacheValid = false
	if !b.quiet {
		b.Notify(event.Updated)
	}
}

func (b *base) Range() *datarange.Range1D { return b.rng }

// SetRange replaces the mapper's range. The mapper stops following
// the old range.
func (b *base) SetRange(r *datarange.Range1D) {
	if r == b.rng {
		return
	}
	if b.rng != nil {
		b.rng.Unsubscribe(b.sub)
	}
	b.rng = r
	b.sub = r.Subscribe(event.Updated, b.invalidate)
	b.invalidate()
}

func (b *base) ScreenBounds() (lowPos, highPos float64) {
	return b.lowPos, b.highPos
}

func (b *base) SetLowPos(lowPos float64) {
	b.SetScreenBounds(lowPos, b.highPos)
}

func (b *base) SetHighPos(highPos float64) {
	b.SetScreenBounds(b.lowPos, highPos)
}

func (b *base) SetScreenBounds(lowPos, highPos float64) {
	if lowPos == b.lowPos && highPos == b.highPos {
		return
	}
	oldD, newD := b.highPos-b.lowPos, highPos-lowPos
	b.lowPos, b.highPos = lowPos, highPos

	// Suppress the range's notification so subscribers see a
	// single update.
	b.quiet = true
	if b.noStretch {
		lo, hi := b.rng.Bounds()
		if newHi, ok := b.t.adjust(lo, hi, oldD, newD); ok {
			b.rng.SetBounds(lo, newHi)
		}
	}
	b.quiet = false
	b.invalidate()
}

func (b *base) StretchData() bool { return !b.noStretch }

func (b *base) SetStretchData(stretch bool) { b.noStretch = !stretch }

func (b *base) Sign() float64 {
	lo, hi := b.rng.Bounds()
	return mathx.Sign((b.highPos - b.lowPos) * (hi - lo))
}

func mapArray(f func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
