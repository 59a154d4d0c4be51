// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"math"

	"github.com/enthought/chaco-sub000/datarange"
	"github.com/enthought/chaco-sub000/event"
)

// Polar maps (theta, r) data pairs to screen points around the
// center of a screen rectangle. Theta is in radians, counterclockwise
// from the +x screen axis. r is mapped linearly from its range onto
// [0, min(width, height)/2].
type Polar struct {
	event.Notifier

	radius *Linear
	lo, hi [2]float64
}

// NewPolar returns a polar mapper for radii in r, drawing in the
// screen rectangle with corners lo and hi.
func NewPolar(r *datarange.Range1D, lo, hi [2]float64) *Polar {
	m := &Polar{radius: NewLinear(r, 0, 1)}
	m.radius.Subscribe(event.Updated, func() { m.Notify(event.Updated) })
	m.SetScreenBounds(lo, hi)
	return m
}

// Range returns the range of radii.
func (m *Polar) Range() *datarange.Range1D { return m.radius.Range() }

// SetRange replaces the range of radii.
func (m *Polar) SetRange(r *datarange.Range1D) { m.radius.SetRange(r) }

// ScreenBounds returns the corners of the screen rectangle.
func (m *Polar) ScreenBounds() (lo, hi [2]float64) { return m.lo, m.hi }

// SetScreenBounds sets the corners of the screen rectangle.
func (m *Polar) SetScreenBounds(lo, hi [2]float64) {
	m.lo, m.hi = lo, hi
	w, h := math.Abs(hi[0]-lo[0]), math.Abs(hi[1]-lo[1])
	m.radius.SetScreenBounds(0, math.Min(w, h)/2)
}

// Center returns the screen point that r's low bound maps to.
func (m *Polar) Center() [2]float64 {
	return [2]float64{(m.lo[0] + m.hi[0]) / 2, (m.lo[1] + m.hi[1]) / 2}
}

// MapScreen maps (theta, r) points to screen (x, y) points.
func (m *Polar) MapScreen(pts [][2]float64) [][2]float64 {
	c := m.Center()
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		rad := m.radius.MapScreen(p[1])
		sin, cos := math.Sincos(p[0])
		out[i] = [2]float64{c[0] + rad*cos, c[1] + rad*sin}
	}
	return out
}

// MapData maps screen (x, y) points to (theta, r) points, with theta
// in (-π, π].
func (m *Polar) MapData(pts [][2]float64) [][2]float64 {
	c := m.Center()
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		dx, dy := p[0]-c[0], p[1]-c[1]
		out[i] = [2]float64{math.Atan2(dy, dx), m.radius.MapData(math.Hypot(dx, dy))}
	}
	return out
}
