// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"math"
	"testing"

	"github.com/enthought/chaco-sub000/datarange"
	"github.com/enthought/chaco-sub000/datasource"
	"github.com/enthought/chaco-sub000/event"
)

func aeq(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func updates(m interface {
	Subscribe(event.Event, func()) event.Subscription
}) *int {
	c := new(int)
	m.Subscribe(event.Updated, func() { *c++ })
	return c
}

func TestLinear(t *testing.T) {
	r := datarange.NewFixed1D(0, 10)
	m := NewLinear(r, 100, 200)
	for _, test := range []struct{ data, screen float64 }{
		{0, 100}, {5, 150}, {10, 200}, {-1, 90}, {12.5, 225},
	} {
		if got := m.MapScreen(test.data); !aeq(got, test.screen) {
			t.Errorf("MapScreen(%v): want %v; got %v", test.data, test.screen, got)
		}
		if got := m.MapData(test.screen); !aeq(got, test.data) {
			t.Errorf("MapData(%v): want %v; got %v", test.screen, test.data, got)
		}
	}
	if m.Sign() != 1 {
		t.Errorf("want sign 1; got %v", m.Sign())
	}
	if m.TickScale() != LinearTicks {
		t.Errorf("want %v; got %v", LinearTicks, m.TickScale())
	}
}

func checkMonotonic(t *testing.T, m Mapper1D, xs []float64) {
	t.Helper()
	sign := m.Sign()
	prev := m.MapScreen(xs[0])
	for _, x := range xs[1:] {
		s := m.MapScreen(x)
		if (s-prev)*sign < 0 {
			t.Errorf("%v not monotonic with sign %v at %v: %v then %v", m.TickScale(), sign, x, prev, s)
		}
		prev = s
	}
}

func TestRoundTrip(t *testing.T) {
	for _, test := range []struct {
		typ               TickScale
		lo, hi, low, high float64
	}{
		{LinearTicks, -3, 7, 0, 640},
		{LinearTicks, -3, 7, 480, 0},
		{LinearTicks, 1e-6, 2e-6, 10, 20},
		{LogTicks, 0.01, 1e4, 0, 500},
		{LogTicks, 1, 2, 300, 20},
	} {
		m := New1D(test.typ, datarange.NewFixed1D(test.lo, test.hi), test.low, test.high)
		var xs []float64
		for i := 1; i < 100; i++ {
			f := float64(i) / 100
			x := test.lo + f*(test.hi-test.lo)
			if test.typ == LogTicks {
				x = test.lo * math.Pow(test.hi/test.lo, f)
			}
			xs = append(xs, x)
			if got := m.MapData(m.MapScreen(x)); math.Abs(got-x) > 1e-9*math.Abs(x) {
				t.Errorf("%v [%v,%v]: MapData(MapScreen(%v)) = %v", test.typ, test.lo, test.hi, x, got)
			}
		}
		wantSign := 1.0
		if test.high < test.low {
			wantSign = -1
		}
		if m.Sign() != wantSign {
			t.Errorf("%v: want sign %v; got %v", test.typ, wantSign, m.Sign())
		}
		checkMonotonic(t, m, xs)

		// Mapping twice gives identical results.
		a, b := m.MapScreenArray(xs), m.MapScreenArray(xs)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("MapScreenArray not idempotent at %v: %v then %v", xs[i], a[i], b[i])
			}
		}
		ss := m.MapDataArray(a)
		if len(ss) != len(xs) || !aeq(ss[0], xs[0]) {
			t.Errorf("MapDataArray: want %v...; got %v...", xs[:1], ss[:1])
		}
	}
}

func TestCollapse(t *testing.T) {
	m := NewLinear(datarange.NewFixed1D(3, 3), 10, 90)
	for _, x := range []float64{-1, 3, 1e9} {
		if got := m.MapScreen(x); got != 10 {
			t.Errorf("MapScreen(%v) with empty range: want 10; got %v", x, got)
		}
	}
	if got := m.MapData(50); got != 3 {
		t.Errorf("MapData with empty range: want 3; got %v", got)
	}
	if m.Sign() != 0 {
		t.Errorf("want sign 0; got %v", m.Sign())
	}

	m = NewLinear(datarange.NewFixed1D(2, 4), 50, 50)
	if got := m.MapData(50); got != 2 {
		t.Errorf("MapData with empty screen: want 2; got %v", got)
	}
	if got := m.MapScreen(3); got != 50 {
		t.Errorf("MapScreen with empty screen: want 50; got %v", got)
	}
}

func TestInvalidate(t *testing.T) {
	r := datarange.NewFixed1D(0, 10)
	m := NewLinear(r, 0, 100)
	n := updates(m)
	if got := m.MapScreen(10); got != 100 {
		t.Fatalf("want 100; got %v", got)
	}

	r.SetBounds(0, 20)
	if got := m.MapScreen(10); got != 50 {
		t.Errorf("after range change: want 50; got %v", got)
	}
	m.SetHighPos(200)
	if got := m.MapScreen(10); got != 100 {
		t.Errorf("after SetHighPos: want 100; got %v", got)
	}
	m.SetLowPos(100)
	if got := m.MapScreen(10); got != 150 {
		t.Errorf("after SetLowPos: want 150; got %v", got)
	}
	if *n != 3 {
		t.Errorf("want 3 updates; got %d", *n)
	}

	// A data source change reaches the mapper through the range.
	src, err := datasource.NewArray([]float64{0, 40})
	if err != nil {
		t.Fatal(err)
	}
	r.Reset()
	r.Add(src)
	if got := m.MapScreen(20); got != 150 {
		t.Errorf("after source attach: want 150; got %v", got)
	}
	src.SetData([]float64{0, 10})
	if got := m.MapScreen(5); got != 150 {
		t.Errorf("after data change: want 150; got %v", got)
	}
}

func TestSharedRange(t *testing.T) {
	r := datarange.NewFixed1D(0, 1)
	m1 := NewLinear(r, 0, 10)
	m2 := NewLog(r, 0, 10)
	m3 := m1.Clone()
	if m3.Range() != r {
		t.Fatal("Clone copied the range")
	}
	m1.MapScreen(0)
	m2.MapScreen(1)
	m3.MapScreen(0)

	r.SetBounds(0, 2)
	if got := m1.MapScreen(1); got != 5 {
		t.Errorf("first mapper: want 5; got %v", got)
	}
	if got := m3.MapScreen(1); got != 5 {
		t.Errorf("clone: want 5; got %v", got)
	}
	// Log scale over [0, 2] is [0.1, 2].
	if got, want := m2.MapScreen(2), 10.0; !aeq(got, want) {
		t.Errorf("log mapper: want %v; got %v", want, got)
	}

	// A replaced range no longer affects the mapper.
	m3.SetRange(datarange.NewFixed1D(0, 10))
	r.SetBounds(0, 100)
	if got := m3.MapScreen(5); got != 5 {
		t.Errorf("after SetRange: want 5; got %v", got)
	}
}

func TestStretchData(t *testing.T) {
	r := datarange.NewFixed1D(0, 10)
	m := NewLinear(r, 0, 100)
	m.SetStretchData(false)
	n := updates(m)

	m.SetScreenBounds(0, 200)
	if lo, hi := r.Bounds(); lo != 0 || hi != 20 {
		t.Errorf("want range [0,20]; got [%v,%v]", lo, hi)
	}
	if got := m.MapScreen(20); got != 200 {
		t.Errorf("want 200; got %v", got)
	}
	if *n != 1 {
		t.Errorf("want 1 update; got %d", *n)
	}

	m.SetStretchData(true)
	m.SetScreenBounds(0, 100)
	if lo, hi := r.Bounds(); lo != 0 || hi != 20 {
		t.Errorf("want range unchanged at [0,20]; got [%v,%v]", lo, hi)
	}

	l := NewLog(datarange.NewFixed1D(1, 100), 0, 100)
	l.SetStretchData(false)
	l.SetScreenBounds(0, 150)
	if _, hi := l.Range().Bounds(); !aeq(hi, 1000) {
		t.Errorf("log: want range high 1000; got %v", hi)
	}
	if got := l.MapScreen(100); !aeq(got, 100) {
		t.Errorf("log: want 100; got %v", got)
	}
}

func TestLog(t *testing.T) {
	m := NewLog(datarange.NewFixed1D(1, 1000), 0, 300)
	for _, test := range []struct{ data, screen float64 }{
		{1, 0}, {10, 100}, {100, 200}, {1000, 300},
	} {
		if got := m.MapScreen(test.data); !aeq(got, test.screen) {
			t.Errorf("MapScreen(%v): want %v; got %v", test.data, test.screen, got)
		}
		if got := m.MapData(test.screen); !aeq(got, test.data) {
			t.Errorf("MapData(%v): want %v; got %v", test.screen, test.data, got)
		}
	}
	for _, x := range []float64{0, -5, math.NaN()} {
		if got := m.MapScreen(x); got != 0 {
			t.Errorf("MapScreen(%v): want fill value at 0; got %v", x, got)
		}
	}
	m.FillValue = 10
	if got := m.MapScreen(-1); !aeq(got, 100) {
		t.Errorf("MapScreen with fill 10: want 100; got %v", got)
	}
	if m.TickScale() != LogTicks {
		t.Errorf("want %v; got %v", LogTicks, m.TickScale())
	}
}

func TestLogSafeScale(t *testing.T) {
	m := NewLog(datarange.NewFixed1D(5, 5), 0, 100)
	got := m.MapScreen(5)
	if want := 100 * math.Log10(5); !aeq(got, want) {
		t.Errorf("MapScreen(5) over [5,5]: want %v; got %v", want, got)
	}
	if got := m.MapData(100); !aeq(got, 10) {
		t.Errorf("MapData(100) over [5,5]: want 10; got %v", got)
	}

	for _, test := range []struct{ lo, hi, safeLo, safeHi float64 }{
		{5, 5, 1, 10},
		{100, 100, 100, 1000},
		{0.5, 0.5, 0.1, 1},
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{0, 50, 1, 50},
		{-1, 0.5, 0.01, 0.5},
		{2, 8, 2, 8},
	} {
		lo, hi := SafeScale(test.lo, test.hi)
		if !aeq(lo, test.safeLo) || !aeq(hi, test.safeHi) {
			t.Errorf("SafeScale(%v, %v): want %v, %v; got %v, %v", test.lo, test.hi, test.safeLo, test.safeHi, lo, hi)
		}
	}
}

func TestPolar(t *testing.T) {
	m := NewPolar(datarange.NewFixed1D(0, 10), [2]float64{0, 0}, [2]float64{200, 100})
	in := [][2]float64{{0, 10}, {math.Pi / 2, 5}, {math.Pi, 2}, {-math.Pi / 4, 8}}
	want := [][2]float64{{150, 50}, {100, 75}, {90, 50}, {100 + 40/math.Sqrt2, 50 - 40/math.Sqrt2}}
	got := m.MapScreen(in)
	for i := range want {
		if !aeq(got[i][0], want[i][0]) || !aeq(got[i][1], want[i][1]) {
			t.Errorf("MapScreen(%v): want %v; got %v", in[i], want[i], got[i])
		}
	}
	back := m.MapData(got)
	for i := range in {
		if !aeq(back[i][0], in[i][0]) || !aeq(back[i][1], in[i][1]) {
			t.Errorf("MapData(MapScreen(%v)) = %v", in[i], back[i])
		}
	}

	n := updates(m)
	m.Range().SetBounds(0, 20)
	if got := m.MapScreen([][2]float64{{0, 10}}); !aeq(got[0][0], 125) {
		t.Errorf("after range change: want x 125; got %v", got[0][0])
	}
	if *n != 1 {
		t.Errorf("want 1 update; got %d", *n)
	}
}

func TestGrid(t *testing.T) {
	r := datarange.New2D()
	r.SetBounds([2]float64{0, 1}, [2]float64{10, 100})
	g := NewGrid(r, LinearTicks, LogTicks, [4]float64{0, 100, 0, 200})
	if g.X().TickScale() != LinearTicks || g.Y().TickScale() != LogTicks {
		t.Fatalf("want linear x and log y; got %v, %v", g.X().TickScale(), g.Y().TickScale())
	}

	in := [][2]float64{{5, 10}, {0, 1}, {10, 100}}
	want := [][2]float64{{50, 100}, {0, 0}, {100, 200}}
	got := g.MapScreen(in)
	for i := range want {
		if !aeq(got[i][0], want[i][0]) || !aeq(got[i][1], want[i][1]) {
			t.Errorf("MapScreen(%v): want %v; got %v", in[i], want[i], got[i])
		}
	}
	back := g.MapData(got)
	for i := range in {
		if !aeq(back[i][0], in[i][0]) || !aeq(back[i][1], in[i][1]) {
			t.Errorf("MapData(MapScreen(%v)) = %v", in[i], back[i])
		}
	}

	g.SetScreenBounds([4]float64{0, 50, 200, 0})
	if want, got := [4]float64{0, 50, 200, 0}, g.ScreenBounds(); want != got {
		t.Errorf("want screen bounds %v; got %v", want, got)
	}
	if got := g.MapScreen([][2]float64{{5, 10}}); !aeq(got[0][0], 25) || !aeq(got[0][1], 100) {
		t.Errorf("after resize: want (25, 100); got %v", got[0])
	}

	g.SetStretchData(false, true)
	g.SetScreenBounds([4]float64{0, 100, 200, 0})
	if want, got := [2]float64{20, 100}, r.High(); want != got {
		t.Errorf("want range high %v; got %v", want, got)
	}
}
