// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/enthought/chaco-sub000/axis"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func (sc *scene) writePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, sc.width, sc.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	r := &raster{img: img, z: vector.NewRasterizer(sc.width, sc.height)}
	for _, g := range sc.grids {
		lines, err := g.Lines()
		if err != nil {
			return err
		}
		for _, l := range lines {
			r.stroke(l[:], 1)
		}
		r.fill(gridColor)
	}
	for i, p := range sc.bands {
		r.polygon(p)
		r.fill(sc.bandColor[i])
	}
	for i, l := range sc.lines {
		r.stroke(l, 1)
		r.fill(sc.lineColor[i])
	}
	r.stroke(sc.data, 2)
	r.fill(dataColor)

	for _, ax := range sc.axes {
		if err := r.axis(ax); err != nil {
			return err
		}
	}
	return png.Encode(w, img)
}

// raster accumulates paths in z and composites them onto img.
type raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// fill draws the accumulated paths in c and starts a new set.
func (r *raster) fill(c color.RGBA) {
	b := r.img.Bounds()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *raster) polygon(p [][2]float64) {
	for i, pt := range p {
		if i == 0 {
			r.z.MoveTo(float32(pt[0]), float32(pt[1]))
		} else {
			r.z.LineTo(float32(pt[0]), float32(pt[1]))
		}
	}
	r.z.ClosePath()
}

// stroke adds a polyline of the given width as one quadrilateral per
// segment. Every quadrilateral winds the same way, so overlaps at
// joints do not cancel.
func (r *raster) stroke(pts [][2]float64, width float64) {
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		dx, dy := q[0]-p[0], q[1]-p[1]
		d := math.Hypot(dx, dy)
		if d == 0 {
			continue
		}
		nx, ny := -dy/d*width/2, dx/d*width/2
		r.polygon([][2]float64{
			{p[0] + nx, p[1] + ny},
			{q[0] + nx, q[1] + ny},
			{q[0] - nx, q[1] - ny},
			{p[0] - nx, p[1] - ny},
		})
	}
}

func (r *raster) axis(ax *axis.Axis) error {
	marks, err := ax.Marks()
	if err != nil {
		return err
	}
	for _, m := range marks {
		r.stroke(m[:], 1)
	}
	r.fill(axisColor)

	pos, _ := ax.Positions()
	labels, _ := ax.Labels()
	d := &font.Drawer{Dst: r.img, Src: image.NewUniform(axisColor), Face: basicfont.Face7x13}
	ascent := basicfont.Face7x13.Ascent
	off := round(ax.LabelPos())
	for i, label := range labels {
		p := round(pos[i])
		width := d.MeasureString(label).Round()
		var x, y int
		switch ax.Orient {
		case axis.Bottom:
			x, y = p-width/2, off+ascent
		case axis.Top:
			x, y = p-width/2, off
		case axis.Left:
			x, y = off-width, p+ascent/2
		case axis.Right:
			x, y = off, p+ascent/2
		}
		d.Dot = fixed.P(x, y)
		d.DrawString(label)
	}
	return nil
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
