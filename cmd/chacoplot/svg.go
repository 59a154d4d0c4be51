// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strconv"

	"github.com/ajstarks/svgo"
)

func (sc *scene) writeSVG(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(sc.width, sc.height, `font-size="10px" font-family="sans-serif"`)
	defer canvas.End()

	a := sc.area
	canvas.Rect(int(a[0]), int(a[1]), int(a[2]-a[0]), int(a[3]-a[1]), "fill:"+hex(background))
	for _, g := range sc.grids {
		if err := g.Render(canvas); err != nil {
			return err
		}
	}
	for i, p := range sc.bands {
		canvas.Path(pathData(p, true), "stroke:none; fill:"+hex(sc.bandColor[i]))
	}
	for i, l := range sc.lines {
		canvas.Path(pathData(l, false), "fill:none; stroke-width:1; stroke:"+hex(sc.lineColor[i]))
	}
	canvas.Path(pathData(sc.data, false), "fill:none; stroke-width:2; stroke:"+hex(dataColor))
	for _, ax := range sc.axes {
		if err := ax.Render(canvas); err != nil {
			return err
		}
	}
	return nil
}

// pathData returns SVG path data through pts.
func pathData(pts [][2]float64, closed bool) string {
	path := []byte{}
	for i, p := range pts {
		if i == 0 {
			path = append(path, 'M')
		} else {
			path = append(path, 'L')
		}
		path = strconv.AppendFloat(path, p[0], 'g', 6, 64)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, p[1], 'g', 6, 64)
	}
	if closed {
		path = append(path, 'Z')
	}
	return string(path)
}
