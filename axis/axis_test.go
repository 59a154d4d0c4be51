// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ajstarks/svgo"
	"github.com/enthought/chaco-sub000/datarange"
	"github.com/enthought/chaco-sub000/mapper"
	"github.com/enthought/chaco-sub000/scales"
	"github.com/enthought/chaco-sub000/ticks"
)

var de = reflect.DeepEqual

func TestAxisTicks(t *testing.T) {
	r := datarange.NewFixed1D(0, 30)
	m := mapper.NewLinear(r, 0, 300)
	a := New(Bottom, m, nil)

	vals, err := a.Ticks()
	if want := []float64{0, 5, 10, 15, 20, 25, 30}; err != nil || !de(vals, want) {
		t.Errorf("want %v; got %v, %v", want, vals, err)
	}
	pos, _ := a.Positions()
	if want := []float64{0, 50, 100, 150, 200, 250, 300}; !de(pos, want) {
		t.Errorf("want %v; got %v", want, pos)
	}
	labels, _ := a.Labels()
	if want := []string{"0", "5", "10", "15", "20", "25", "30"}; !de(labels, want) {
		t.Errorf("want %v; got %v", want, labels)
	}

	// Changing the range invalidates the ticks.
	r.SetBounds(0, 100)
	vals, _ = a.Ticks()
	if want := []float64{0, 20, 40, 60, 80, 100}; !de(vals, want) {
		t.Errorf("after SetBounds: want %v; got %v", want, vals)
	}

	// So does changing the screen interval.
	m.SetScreenBounds(0, 500)
	pos, _ = a.Positions()
	if want := []float64{0, 100, 200, 300, 400, 500}; !de(pos, want) {
		t.Errorf("after SetScreenBounds: want %v; got %v", want, pos)
	}

	a.SetTickInterval(50)
	vals, _ = a.Ticks()
	if want := []float64{0, 50, 100}; !de(vals, want) {
		t.Errorf("interval 50: want %v; got %v", want, vals)
	}

	a.SetTickInterval(0)
	a.SetGenerator(ticks.ShowAll{Positions: []float64{1, 2}})
	vals, _ = a.Ticks()
	if want := []float64{1, 2}; !de(vals, want) {
		t.Errorf("ShowAll: want %v; got %v", want, vals)
	}
}

func TestAxisInverted(t *testing.T) {
	r := datarange.NewFixed1D(10, 0)
	a := New(Left, mapper.NewLinear(r, 200, 0), nil)
	_, err := a.Ticks()
	var re *ticks.RangeError
	if !errors.As(err, &re) {
		t.Errorf("want *ticks.RangeError; got %v", err)
	}
	if err := a.Render(svg.New(new(bytes.Buffer))); !errors.As(err, &re) {
		t.Errorf("Render: want *ticks.RangeError; got %v", err)
	}

	r.SetBounds(0, 10)
	if _, err := a.Ticks(); err != nil {
		t.Errorf("after fixing the range: want no error; got %v", err)
	}
}

func TestAxisLog(t *testing.T) {
	r := datarange.NewFixed1D(1, 1000)
	a := New(Bottom, mapper.NewLog(r, 0, 300), nil)
	vals, err := a.Ticks()
	if err != nil || len(vals) != 15 || vals[0] != 2 || vals[14] != 1000 {
		t.Errorf("want log ticks 2, 4, ..., 1000; got %v, %v", vals, err)
	}
}

func TestAxisLabeler(t *testing.T) {
	r := datarange.NewFixed1D(0, 100)
	gen := ticks.NewScales(scales.Fixed{Resolution: 1}, scales.Fixed{Resolution: 10})
	a := New(Bottom, mapper.NewLinear(r, 0, 700), gen)
	labels, err := a.Labels()
	if err != nil || len(labels) != 11 || labels[1] != "10" {
		t.Errorf("want labels every 10; got %v, %v", labels, err)
	}
}

func TestMapperSwap(t *testing.T) {
	m1 := mapper.NewLinear(datarange.NewFixed1D(0, 30), 0, 300)
	m2 := mapper.NewLinear(datarange.NewFixed1D(0, 100), 0, 300)
	a := New(Bottom, m1, nil)
	a.SetMapper(m2)
	if m1.Len() != 0 {
		t.Errorf("old mapper still has %d subscribers", m1.Len())
	}
	vals, _ := a.Ticks()
	if len(vals) != 6 {
		t.Errorf("want ticks of the new mapper; got %v", vals)
	}
	a.Release()
	if m2.Len() != 0 {
		t.Errorf("released mapper still has %d subscribers", m2.Len())
	}
}

func TestRender(t *testing.T) {
	r := datarange.NewFixed1D(0, 30)
	a := New(Bottom, mapper.NewLinear(r, 10, 310), nil)
	a.Pos = 200
	a.Title = "time (s)"

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(320, 240)
	if err := a.Render(canvas); err != nil {
		t.Fatal(err)
	}
	canvas.End()
	out := buf.String()
	for _, want := range []string{"M10 200H310", "M60 200v4", ">25</text>", ">time (s)</text>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarks(t *testing.T) {
	r := datarange.NewFixed1D(0, 30)
	a := New(Left, mapper.NewLinear(r, 310, 10), nil)
	a.Pos = 40
	marks, err := a.Marks()
	if err != nil || len(marks) != 8 {
		t.Fatalf("want 8 marks; got %v, %v", marks, err)
	}
	if want := [2][2]float64{{40, 310}, {40, 10}}; marks[0] != want {
		t.Errorf("axis line: want %v; got %v", want, marks[0])
	}
	if want := [2][2]float64{{40, 260}, {36, 260}}; marks[2] != want {
		t.Errorf("tick: want %v; got %v", want, marks[2])
	}
	if want, got := 34.0, a.LabelPos(); want != got {
		t.Errorf("label position: want %v; got %v", want, got)
	}

	r.SetBounds(30, 0)
	if _, err := a.Marks(); err == nil {
		t.Errorf("want error for inverted range")
	}
}

func TestGrid(t *testing.T) {
	r := datarange.NewFixed1D(0, 30)
	m := mapper.NewLinear(r, 0, 300)
	g := NewGrid(true, m, nil, 10, 110)
	lines, err := g.Lines()
	if err != nil || len(lines) != 7 {
		t.Fatalf("want 7 lines; got %v, %v", lines, err)
	}
	if want := [2][2]float64{{50, 10}, {50, 110}}; lines[1] != want {
		t.Errorf("want %v; got %v", want, lines[1])
	}

	h := NewGrid(false, m, nil, 0, 40)
	lines, _ = h.Lines()
	if want := [2][2]float64{{0, 50}, {40, 50}}; lines[1] != want {
		t.Errorf("horizontal: want %v; got %v", want, lines[1])
	}

	r.SetBounds(0, 100)
	if lines, _ := g.Lines(); len(lines) != 6 {
		t.Errorf("after SetBounds: want 6 lines; got %v", lines)
	}

	var buf bytes.Buffer
	if err := g.Render(svg.New(&buf)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "M60 10L60 110") {
		t.Errorf("output missing grid line:\n%s", buf.String())
	}

	r.SetBounds(100, 0)
	if err := g.Render(svg.New(&buf)); err == nil {
		t.Errorf("inverted range: want error")
	}
}
