// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"math"

	"github.com/enthought/chaco-sub000/event"
	"github.com/enthought/chaco-sub000/generic"
)

// Points is a Source2D of (x, y) pairs.
type Points struct {
	event.Notifier

	pts [][2]float64
}

// NewPoints returns a Points source holding pts.
func NewPoints(pts [][2]float64) *Points {
	return &Points{pts: pts}
}

// Data returns the points. The caller must not modify them.
func (p *Points) Data() [][2]float64 { return p.pts }

// SetData replaces the points and fires event.DataChanged.
func (p *Points) SetData(pts [][2]float64) {
	p.pts = pts
	p.Notify(event.DataChanged)
}

func (p *Points) Len() int { return len(p.pts) }

func (p *Points) Bounds2D() (lo, hi [2]float64) {
	xs := make([]float64, len(p.pts))
	ys := make([]float64, len(p.pts))
	for i, pt := range p.pts {
		xs[i], ys[i] = pt[0], pt[1]
	}
	lo[0], hi[0] = finiteBounds(xs)
	lo[1], hi[1] = finiteBounds(ys)
	return
}

// Grid is a Source2D describing a rectilinear grid by its x and y
// coordinate arrays. It is the index of image and contour data: value
// Z[i][j] sits at (X[j], Y[i]).
type Grid struct {
	event.Notifier

	xs, ys []float64
}

// NewGrid returns a Grid over the coordinate arrays xs and ys, which
// may be slices of any numeric type.
func NewGrid(xs, ys generic.Slice) (*Grid, error) {
	g := new(Grid)
	if err := g.set(xs, ys); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) set(xs, ys generic.Slice) error {
	fx, err := generic.Float64s(xs)
	if err != nil {
		return err
	}
	fy, err := generic.Float64s(ys)
	if err != nil {
		return err
	}
	g.xs, g.ys = fx, fy
	return nil
}

// SetData replaces the coordinate arrays and fires
// event.DataChanged.
func (g *Grid) SetData(xs, ys generic.Slice) error {
	if err := g.set(xs, ys); err != nil {
		return err
	}
	g.Notify(event.DataChanged)
	return nil
}

// Coords returns the x and y coordinate arrays.
func (g *Grid) Coords() (xs, ys []float64) { return g.xs, g.ys }

// Len returns the number of grid nodes.
func (g *Grid) Len() int { return len(g.xs) * len(g.ys) }

func (g *Grid) Bounds2D() (lo, hi [2]float64) {
	if g.Len() == 0 {
		nan := math.NaN()
		return [2]float64{nan, nan}, [2]float64{nan, nan}
	}
	lo[0], hi[0] = finiteBounds(g.xs)
	lo[1], hi[1] = finiteBounds(g.ys)
	return
}
