// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"github.com/enthought/chaco-sub000/datarange"
	"github.com/enthought/chaco-sub000/event"
)

// Grid is a 2-D mapper built from independent x and y 1-D mappers
// over the axes of a Range2D.
type Grid struct {
	event.Notifier

	rng  *datarange.Range2D
	x, y Mapper1D
}

// NewGrid returns a 2-D mapper from r onto the screen rectangle
// bounds, given as (xLow, xHigh, yLow, yHigh). xType and yType select
// a Linear or Log mapper for each axis.
func NewGrid(r *datarange.Range2D, xType, yType TickScale, bounds [4]float64) *Grid {
	g := &Grid{
		rng: r,
		x:   New1D(xType, r.X(), bounds[0], bounds[1]),
		y:   New1D(yType, r.Y(), bounds[2], bounds[3]),
	}
	g.x.Subscribe(event.Updated, g.updated)
	g.y.Subscribe(event.Updated, g.updated)
	return g
}

// New1D returns a Linear or Log mapper according to typ.
func New1D(typ TickScale, r *datarange.Range1D, lowPos, highPos float64) Mapper1D {
	if typ == LogTicks {
		return NewLog(r, lowPos, highPos)
	}
	return NewLinear(r, lowPos, highPos)
}

func (g *Grid) updated() {
	g.Notify(event.Updated)
}

// X returns the x axis mapper.
func (g *Grid) X() Mapper1D { return g.x }

// Y returns the y axis mapper.
func (g *Grid) Y() Mapper1D { return g.y }

// Range returns the 2-D range.
func (g *Grid) Range() *datarange.Range2D { return g.rng }

// SetRange replaces the 2-D range of both axis mappers.
func (g *Grid) SetRange(r *datarange.Range2D) {
	g.rng = r
	g.x.SetRange(r.X())
	g.y.SetRange(r.Y())
}

// ScreenBounds returns (xLow, xHigh, yLow, yHigh).
func (g *Grid) ScreenBounds() [4]float64 {
	xl, xh := g.x.ScreenBounds()
	yl, yh := g.y.ScreenBounds()
	return [4]float64{xl, xh, yl, yh}
}

// SetScreenBounds sets (xLow, xHigh, yLow, yHigh).
func (g *Grid) SetScreenBounds(b [4]float64) {
	g.x.SetScreenBounds(b[0], b[1])
	g.y.SetScreenBounds(b[2], b[3])
}

// SetStretchData sets StretchData of each axis mapper.
func (g *Grid) SetStretchData(x, y bool) {
	g.x.SetStretchData(x)
	g.y.SetStretchData(y)
}

// MapScreen maps data (x, y) points to screen points.
func (g *Grid) MapScreen(pts [][2]float64) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{g.x.MapScreen(p[0]), g.y.MapScreen(p[1])}
	}
	return out
}

// MapData maps screen points to data (x, y) points.
func (g *Grid) MapData(pts [][2]float64) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{g.x.MapData(p[0]), g.y.MapData(p[1])}
	}
	return out
}
