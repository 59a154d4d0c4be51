// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/enthought/chaco-sub000/mapper"
	"github.com/enthought/chaco-sub000/ticks"
)

// A Grid draws a line across the plot area at each tick of a mapper.
// A grid over an x mapper has vertical lines.
type Grid struct {
	// Vertical is true if the grid lines are vertical, that is,
	// if the mapper maps x.
	Vertical bool

	// Start and End are the screen coordinates the lines span
	// across the other direction.
	Start, End float64

	// Style is the SVG style of the lines. If empty, a light gray
	// is used.
	Style string

	c tickCache
}

// NewGrid returns a grid over m's ticks spanning [start, end] in the
// other direction. If gen is nil, ticks.Default is used.
func NewGrid(vertical bool, m mapper.Mapper1D, gen ticks.Generator, start, end float64) *Grid {
	g := &Grid{Vertical: vertical, Start: start, End: end}
	g.c.init(m, gen)
	return g
}

// Mapper returns the grid's mapper.
func (g *Grid) Mapper() mapper.Mapper1D { return g.c.m }

// SetMapper follows a different mapper.
func (g *Grid) SetMapper(m mapper.Mapper1D) { g.c.setMapper(m) }

// SetGenerator replaces the tick generator.
func (g *Grid) SetGenerator(gen ticks.Generator) {
	if gen == nil {
		gen = ticks.Default{}
	}
	g.c.gen = gen
	g.c.invalidate()
}

// SetTickInterval sets the requested spacing of the lines.
func (g *Grid) SetTickInterval(interval float64) {
	g.c.interval = interval
	g.c.invalidate()
}

// Release stops the grid from following its mapper.
func (g *Grid) Release() { g.c.release() }

// Ticks returns the data values of the grid lines.
func (g *Grid) Ticks() ([]float64, error) {
	g.c.ensure()
	return g.c.values, g.c.err
}

// Lines returns the end points of each grid line in screen
// coordinates.
func (g *Grid) Lines() ([][2][2]float64, error) {
	g.c.ensure()
	if g.c.err != nil {
		return nil, g.c.err
	}
	lines := make([][2][2]float64, len(g.c.pos))
	for i, p := range g.c.pos {
		if g.Vertical {
			lines[i] = [2][2]float64{{p, g.Start}, {p, g.End}}
		} else {
			lines[i] = [2][2]float64{{g.Start, p}, {g.End, p}}
		}
	}
	return lines, nil
}

// Render draws the grid lines on canvas.
func (g *Grid) Render(canvas *svg.SVG) error {
	lines, err := g.Lines()
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	var path []string
	for _, l := range lines {
		path = append(path, fmt.Sprintf("M%.6g %.6gL%.6g %.6g", r(l[0][0]), r(l[0][1]), r(l[1][0]), r(l[1][1])))
	}
	style := g.Style
	if style == "" {
		style = "stroke:#ddd; stroke-width:1"
	}
	canvas.Path(strings.Join(path, ""), style)
	return nil
}
