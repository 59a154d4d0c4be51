// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis places tick marks, tick labels and grid lines along
// the screen interval of a 1-D mapper and renders them as SVG.
//
// An Axis or Grid computes its ticks from the mapper's range with a
// ticks.Generator and caches them until the mapper reports a change
// to its range or screen bounds.
package axis

import (
	"fmt"
	"math"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/enthought/chaco-sub000/mapper"
	"github.com/enthought/chaco-sub000/scales"
	"github.com/enthought/chaco-sub000/ticks"
)

// Orientation is the side of the plot area an axis is drawn on.
type Orientation int

const (
	Bottom Orientation = iota
	Top
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Horizontal reports whether an axis with orientation o runs along
// the x direction.
func (o Orientation) Horizontal() bool {
	return o == Bottom || o == Top
}

const (
	defaultTickLen = 4
	labelSep       = 2
)

// An Axis is a line of tick marks and labels along a mapper's screen
// interval.
type Axis struct {
	Orient Orientation

	// Pos is the screen coordinate of the axis line across its
	// direction: y for a horizontal axis, x for a vertical one.
	Pos float64

	// TickLen is the length of the tick marks. If 0, a default
	// is used.
	TickLen float64

	// Title is drawn centered beyond the labels, if non-empty.
	Title string

	c tickCache
}

// New returns an axis along m's screen interval. If gen is nil,
// ticks.Default is used.
func New(orient Orientation, m mapper.Mapper1D, gen ticks.Generator) *Axis {
	a := &Axis{Orient: orient}
	a.c.init(m, gen)
	return a
}

// Mapper returns the axis's mapper.
func (a *Axis) Mapper() mapper.Mapper1D { return a.c.m }

// SetMapper follows a different mapper.
func (a *Axis) SetMapper(m mapper.Mapper1D) { a.c.setMapper(m) }

// Generator returns the tick generator.
func (a *Axis) Generator() ticks.Generator { return a.c.gen }

// SetGenerator replaces the tick generator.
func (a *Axis) SetGenerator(gen ticks.Generator) {
	if gen == nil {
		gen = ticks.Default{}
	}
	a.c.gen = gen
	a.c.invalidate()
}

// TickInterval returns the requested tick spacing; see
// ticks.Request.Interval.
func (a *Axis) TickInterval() float64 { return a.c.interval }

// SetTickInterval sets the requested tick spacing. 0 chooses the
// spacing automatically.
func (a *Axis) SetTickInterval(interval float64) {
	a.c.interval = interval
	a.c.invalidate()
}

// SetFormatter sets the formatter for tick labels when the generator
// does not produce its own. If f is nil, scales.BasicFormatter is
// used.
func (a *Axis) SetFormatter(f scales.Formatter) {
	a.c.formatter = f
	a.c.invalidate()
}

// Release stops the axis from following its mapper.
func (a *Axis) Release() { a.c.release() }

// Ticks returns the tick values. If the mapper's range is inverted,
// it returns a *ticks.RangeError.
func (a *Axis) Ticks() ([]float64, error) {
	a.c.ensure()
	return a.c.values, a.c.err
}

// Positions returns the screen coordinates of the ticks.
func (a *Axis) Positions() ([]float64, error) {
	a.c.ensure()
	return a.c.pos, a.c.err
}

// Labels returns the tick labels.
func (a *Axis) Labels() ([]string, error) {
	a.c.ensure()
	return a.c.labels, a.c.err
}

func (a *Axis) tickLen() float64 {
	if a.TickLen == 0 {
		return defaultTickLen
	}
	return a.TickLen
}

// outLen returns the tick length signed to point away from the plot
// area.
func (a *Axis) outLen() float64 {
	l := a.tickLen()
	if a.Orient == Top || a.Orient == Left {
		l = -l
	}
	return l
}

// Marks returns the axis line followed by one segment per tick mark,
// in screen coordinates.
func (a *Axis) Marks() ([][2][2]float64, error) {
	pos, err := a.Positions()
	if err != nil || a.c.m == nil {
		return nil, err
	}
	lowPos, highPos := a.c.m.ScreenBounds()
	l := a.outLen()
	seg := func(along0, across0, along1, across1 float64) [2][2]float64 {
		if a.Orient.Horizontal() {
			return [2][2]float64{{along0, across0}, {along1, across1}}
		}
		return [2][2]float64{{across0, along0}, {across1, along1}}
	}
	marks := make([][2][2]float64, 0, len(pos)+1)
	marks = append(marks, seg(lowPos, a.Pos, highPos, a.Pos))
	for _, p := range pos {
		marks = append(marks, seg(p, a.Pos, p, a.Pos+l))
	}
	return marks, nil
}

// LabelPos returns the screen coordinate across the axis at which
// tick labels are anchored.
func (a *Axis) LabelPos() float64 {
	l := a.outLen()
	return a.Pos + l + math.Copysign(labelSep, l)
}

// Render draws the axis line, tick marks and labels on canvas.
func (a *Axis) Render(canvas *svg.SVG) error {
	pos, err := a.Positions()
	if err != nil || a.c.m == nil {
		return err
	}
	labels, _ := a.Labels()
	lowPos, highPos := a.c.m.ScreenBounds()
	l := a.outLen()

	var path []string
	if a.Orient.Horizontal() {
		path = append(path, fmt.Sprintf("M%.6g %.6gH%.6g", r(lowPos), r(a.Pos), r(highPos)))
		for _, p := range pos {
			path = append(path, fmt.Sprintf("M%.6g %.6gv%.6g", r(p), r(a.Pos), l))
		}
	} else {
		path = append(path, fmt.Sprintf("M%.6g %.6gV%.6g", r(a.Pos), r(lowPos), r(highPos)))
		for _, p := range pos {
			path = append(path, fmt.Sprintf("M%.6g %.6gh%.6g", r(a.Pos), r(p), l))
		}
	}
	canvas.Path(strings.Join(path, ""), "stroke:#888; stroke-width:1; fill:none")

	off := a.LabelPos()
	for i, label := range labels {
		p := round(pos[i])
		switch a.Orient {
		case Bottom:
			canvas.Text(p, round(off), label, `text-anchor="middle" dy="1em" fill="#888"`)
		case Top:
			canvas.Text(p, round(off), label, `text-anchor="middle" fill="#888"`)
		case Left:
			canvas.Text(round(off), p, label, `text-anchor="end" dy=".3em" fill="#888"`)
		case Right:
			canvas.Text(round(off), p, label, `text-anchor="start" dy=".3em" fill="#888"`)
		}
	}

	if a.Title != "" {
		mid := round((lowPos + highPos) / 2)
		// Leave room for a line of labels.
		t := round(a.Pos + 4*l)
		switch a.Orient {
		case Bottom:
			canvas.Text(mid, t, a.Title, `text-anchor="middle" dy="1em"`)
		case Top:
			canvas.Text(mid, t, a.Title, `text-anchor="middle"`)
		case Left:
			canvas.Text(t, mid, a.Title, fmt.Sprintf(`text-anchor="middle" transform="rotate(-90 %d %d)"`, t, mid))
		case Right:
			canvas.Text(t, mid, a.Title, fmt.Sprintf(`text-anchor="middle" transform="rotate(90 %d %d)"`, t, mid))
		}
	}
	return nil
}

// r rounds x to the nearest pixel.
func r(x float64) float64 {
	return math.Floor(x + 0.5)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
