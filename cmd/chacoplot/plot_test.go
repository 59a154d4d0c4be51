// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestWriteSVG(t *testing.T) {
	for _, opt := range []options{
		{width: 400, height: 300, levels: 5},
		{width: 400, height: 300, levels: 5, filled: true},
		{width: 400, height: 300, levels: 3, logX: true},
		{width: 400, height: 300, levels: 0, format: "svg"},
	} {
		var buf bytes.Buffer
		if err := writePlot(&buf, opt); err != nil {
			t.Errorf("%+v: %v", opt, err)
			continue
		}
		out := buf.String()
		if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
			t.Errorf("%+v: output is not an SVG document", opt)
		}
		// Two grids, two axes, the data line and at least one
		// contour.
		if n := strings.Count(out, "<path"); n < 6 && opt.levels > 0 {
			t.Errorf("%+v: want at least 6 paths; got %d", opt, n)
		}
		if opt.filled && !strings.Contains(out, "Z\"") {
			t.Errorf("%+v: want closed polygons", opt)
		}
	}
}

func TestWritePNG(t *testing.T) {
	for _, opt := range []options{
		{width: 200, height: 150, levels: 4, format: "png"},
		{width: 200, height: 150, levels: 4, filled: true, logX: true, format: "png"},
	} {
		var buf bytes.Buffer
		if err := writePlot(&buf, opt); err != nil {
			t.Errorf("%+v: %v", opt, err)
			continue
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Errorf("%+v: %v", opt, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != opt.width || b.Dy() != opt.height {
			t.Errorf("%+v: want %dx%d; got %v", opt, opt.width, opt.height, b)
		}
		// The corner lies outside the plot area and every axis.
		if got := color.RGBAModel.Convert(img.At(0, 0)); got != background {
			t.Errorf("%+v: corner: want %v; got %v", opt, background, got)
		}
		// Something other than background must be drawn inside
		// the plot area.
		drawn := false
		for y := margin; y < opt.height-margin && !drawn; y++ {
			for x := margin; x < opt.width-margin; x++ {
				if color.RGBAModel.Convert(img.At(x, y)) != background {
					drawn = true
					break
				}
			}
		}
		if !drawn {
			t.Errorf("%+v: plot area is blank", opt)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writePlot(&buf, options{width: 200, height: 200, format: "gif"}); err == nil {
		t.Errorf("want error for unknown format")
	}
}

func TestPathData(t *testing.T) {
	if got, want := pathData([][2]float64{{1, 2}, {3.5, 4}}, false), "M1 2L3.5 4"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
	if got, want := pathData([][2]float64{{0, 0}, {1, 0}, {1, 1}}, true), "M0 0L1 0L1 1Z"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
	if got, want := hex(ramp(0)), "#3040a0"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
	if got, want := hex(ramp(1)), "#f0d040"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
}
