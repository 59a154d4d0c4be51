// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/enthought/chaco-sub000/axis"
	"github.com/enthought/chaco-sub000/contour"
	"github.com/enthought/chaco-sub000/datarange"
	"github.com/enthought/chaco-sub000/datasource"
	"github.com/enthought/chaco-sub000/mapper"
)

// margin is the space around the plot area for axes.
const margin = 50

const samples = 60

type options struct {
	width, height int
	logX          bool
	levels        int
	filled        bool
	format        string
}

// A scene is a plot laid out in screen coordinates, ready to be
// written in any output format.
type scene struct {
	width, height int

	// area is the plot rectangle as x0, y0, x1, y1.
	area [4]float64

	bands     []contour.Polygon
	bandColor []color.RGBA

	lines     []contour.Line
	lineColor []color.RGBA

	data [][2]float64

	axes  []*axis.Axis
	grids []*axis.Grid
}

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	gridColor  = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	axisColor  = color.RGBA{0x88, 0x88, 0x88, 0xff}
	dataColor  = color.RGBA{0xcc, 0x22, 0x22, 0xff}
	edgeColor  = color.RGBA{0x33, 0x33, 0x33, 0xff}
)

// field is the demonstration function: a peak and a smaller trough.
func field(u, y float64) float64 {
	sq := func(x float64) float64 { return x * x }
	return math.Exp(-(sq(u)+sq(y))/2) - 0.6*math.Exp(-(sq(u-1.5)+sq(y-1))/0.5)
}

func writePlot(w io.Writer, opt options) error {
	sc, err := layout(opt)
	if err != nil {
		return err
	}
	switch opt.format {
	case "", "svg":
		return sc.writeSVG(w)
	case "png":
		return sc.writePNG(w)
	}
	return fmt.Errorf("unknown output format %q", opt.format)
}

// layout samples the demonstration field, fits ranges and mappers to
// it, and traces its contours into screen space.
func layout(opt options) (*scene, error) {
	// On a log axis, x spans three decades and the field is a
	// function of log10(x).
	var xs []float64
	u := func(x float64) float64 { return x }
	xType := mapper.LinearTicks
	if opt.logX {
		xs = vec.Logspace(-1.5, 1.5, samples, 10)
		u = func(x float64) float64 { return math.Log10(x) * 2 }
		xType = mapper.LogTicks
	} else {
		xs = vec.Linspace(-3, 3, samples)
	}
	ys := vec.Linspace(-3, 3, samples)
	f := contour.Sample(func(x, y float64) float64 { return field(u(x), y) }, xs, ys)

	// A line along the ridge of the field.
	line := make([][2]float64, len(xs))
	for i, x := range xs {
		line[i] = [2]float64{x, 2 * math.Sin(u(x))}
	}

	grid, err := datasource.NewGrid(xs, ys)
	if err != nil {
		return nil, err
	}
	rng := datarange.New2D(grid, datasource.NewPoints(line))

	// Screen y grows downward.
	left, right := float64(margin), float64(opt.width-margin)
	top, bottom := float64(margin), float64(opt.height-margin)
	m := mapper.NewGrid(rng, xType, mapper.LinearTicks, [4]float64{left, right, bottom, top})

	xAxis := axis.New(axis.Bottom, m.X(), nil)
	xAxis.Pos = bottom
	yAxis := axis.New(axis.Left, m.Y(), nil)
	yAxis.Pos = left

	sc := &scene{
		width:  opt.width,
		height: opt.height,
		area:   [4]float64{left, top, right, bottom},
		data:   m.MapScreen(line),
		axes:   []*axis.Axis{xAxis, yAxis},
		grids: []*axis.Grid{
			axis.NewGrid(true, m.X(), nil, top, bottom),
			axis.NewGrid(false, m.Y(), nil, left, right),
		},
	}

	tr := contour.NewFieldTracer(f)
	levels := f.Levels(opt.levels)
	if opt.filled && len(levels) > 0 {
		lo, hi := f.Bounds()
		bounds := append([]float64{math.Nextafter(lo, math.Inf(-1))}, levels...)
		bounds = append(bounds, hi)
		for i, polys := range tr.TraceBands(bounds) {
			c := ramp(float64(i) / float64(len(bounds)-2))
			for _, p := range polys {
				sc.bands = append(sc.bands, m.MapScreen(p))
				sc.bandColor = append(sc.bandColor, c)
			}
		}
	}
	for i, lines := range tr.TraceLevels(levels) {
		c := edgeColor
		if !opt.filled {
			c = ramp(float64(i) / math.Max(1, float64(len(levels)-1)))
		}
		for _, l := range lines {
			sc.lines = append(sc.lines, m.MapScreen(l))
			sc.lineColor = append(sc.lineColor, c)
		}
	}
	return sc, nil
}

// ramp returns a color from blue (0) to yellow (1).
func ramp(t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	lerp := func(a, b float64) uint8 { return uint8(math.Floor(a + t*(b-a) + 0.5)) }
	return color.RGBA{lerp(0x30, 0xf0), lerp(0x40, 0xd0), lerp(0xa0, 0x40), 0xff}
}

// hex returns c in CSS #rrggbb form.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
