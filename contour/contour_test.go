// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/enthought/chaco-sub000/generic"
)

var de = reflect.DeepEqual

var (
	testXs = []float64{0, 1, 2, 3}
	testYs = []float64{10, 20, 30, 40}
	testZ  = [][]float64{
		{0, 0, 1, 2},
		{0, 1, 2, 3},
		{1, 2, 0, 3},
		{2, 3, 3, 3},
	}
)

func mustTracer(t *testing.T, xs, ys, z, mask generic.Slice) *Tracer {
	tr, err := NewTracer(xs, ys, z, mask)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestTrace(t *testing.T) {
	tr := mustTracer(t, testXs, testYs, testZ, nil)

	got := tr.Trace(0)
	want := []Line{
		{{1, 10}, {1, 10}, {0, 20}, {0, 20}},
		{{2, 30}, {2, 30}, {2, 30}, {2, 30}, {2, 30}},
	}
	if !de(got, want) {
		t.Errorf("level 0: want %v; got %v", want, got)
	}
	if got[0].Closed() || !got[1].Closed() {
		t.Errorf("want an open line and a closed loop")
	}

	// 3 is reached only on the edge of the domain.
	if got := tr.Trace(3); len(got) != 0 {
		t.Errorf("level 3: want no lines; got %v", got)
	}
	if got := tr.Trace(math.NaN()); len(got) != 0 {
		t.Errorf("NaN level: want no lines; got %v", got)
	}
}

func TestTraceLoop(t *testing.T) {
	tr := mustTracer(t, []float64{0, 1, 2}, []float64{0, 1, 2},
		[][]float64{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}}, nil)
	got := tr.Trace(1)
	// Clockwise, with the peak on the right.
	want := []Line{{{1, 0.5}, {0.5, 1}, {1, 1.5}, {1.5, 1}, {1, 0.5}}}
	if !de(got, want) {
		t.Errorf("want %v; got %v", want, got)
	}
}

func TestSaddle(t *testing.T) {
	xs, ys := []float64{0, 1}, []float64{0, 1}
	z := [][]float64{{1, 0}, {0, 1}}
	for _, test := range []struct {
		level float64
		want  []Line
	}{
		// The center, 0.5, is not above 0.5: the high corners
		// are separate.
		{0.5, []Line{{{0, 0.5}, {0.5, 0}}, {{1, 0.5}, {0.5, 1}}}},
		// The center is above 0.4: the low corners are
		// separate.
		{0.4, []Line{{{1, 0.4}, {0.6, 0}}, {{0, 0.6}, {0.4, 1}}}},
	} {
		for i := 0; i < 2; i++ {
			tr := mustTracer(t, xs, ys, z, nil)
			if got := tr.Trace(test.level); !de(got, test.want) {
				t.Errorf("level %v: want %v; got %v", test.level, test.want, got)
			}
		}
	}
}

func TestMask(t *testing.T) {
	mask := [][]bool{
		{false, false, false, false},
		{false, false, false, false},
		{false, false, true, false},
		{false, false, false, false},
	}
	tr := mustTracer(t, testXs, testYs, testZ, mask)
	want := []Line{{{1, 10}, {1, 10}, {0, 20}, {0, 20}}}
	if got := tr.Trace(0); !de(got, want) {
		t.Errorf("want %v; got %v", want, got)
	}

	// NaN samples are masked too.
	z := [][]float64{{0, 0, 1, 2}, {0, 1, 2, 3}, {1, 2, math.NaN(), 3}, {2, 3, 3, 3}}
	tr = mustTracer(t, testXs, testYs, z, nil)
	if got := tr.Trace(0); !de(got, want) {
		t.Errorf("NaN: want %v; got %v", want, got)
	}

	// So are infinite ones.
	wantBand := tr.TraceBand(-1, 1.5)
	for _, inf := range []float64{math.Inf(1), math.Inf(-1)} {
		zi := [][]float64{{0, 0, 1, 2}, {0, 1, 2, 3}, {1, 2, inf, 3}, {2, 3, 3, 3}}
		tr := mustTracer(t, testXs, testYs, zi, nil)
		if got := tr.Trace(0); !de(got, want) {
			t.Errorf("%v: want %v; got %v", inf, want, got)
		}
		if got := tr.TraceBand(-1, 1.5); !de(got, wantBand) {
			t.Errorf("%v band: want %v; got %v", inf, wantBand, got)
		}
	}

	// A field with no finite cells has no contours.
	tr = mustTracer(t, []float64{0, 1, 2}, []float64{0, 1}, [][]float64{{math.Inf(-1), math.Inf(1), 0}, {0, 0, 0}}, nil)
	if got := tr.Trace(0.5); len(got) != 0 {
		t.Errorf("infinite corners: want no lines; got %v", got)
	}
}

func TestMaskType(t *testing.T) {
	u8 := make([]uint8, 16)
	_, err := NewTracer(testXs, testYs, testZ, u8)
	var te *generic.TypeError
	if !errors.As(err, &te) {
		t.Errorf("uint8 mask: want *generic.TypeError; got %v", err)
	}

	if _, err := NewTracer(testXs, testYs, testZ, make([]bool, 16)); err != nil {
		t.Errorf("bool mask: want no error; got %v", err)
	}
	if _, err := NewTracer(testXs, testYs, testZ, make([]bool, 15)); err == nil {
		t.Errorf("short mask: want error")
	}
}

func TestNewField(t *testing.T) {
	f, err := NewField([]int{0, 1, 2}, []int32{5, 6}, []int{1, 2, 3, 4, 5, 6}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]float64{{1, 2, 3}, {4, 5, 6}}; !de(f.Z, want) {
		t.Errorf("want %v; got %v", want, f.Z)
	}
	if want := []float64{5, 6}; !de(f.Y, want) {
		t.Errorf("want %v; got %v", want, f.Y)
	}

	if _, err := NewField(testXs, testYs, testZ[:3], nil); err == nil {
		t.Errorf("short z: want error")
	}
	if _, err := NewField(testXs, testYs, []string{"a"}, nil); err == nil {
		t.Errorf("string z: want error")
	}

	if lo, hi := f.Bounds(); lo != 1 || hi != 6 {
		t.Errorf("Bounds: want 1, 6; got %v, %v", lo, hi)
	}
	if got, want := f.Levels(4), []float64{2, 3, 4, 5}; !de(got, want) {
		t.Errorf("Levels: want %v; got %v", want, got)
	}
}

func TestTraceBand(t *testing.T) {
	tr := mustTracer(t, []float64{0, 1, 2}, []float64{0, 1, 2},
		[][]float64{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}}, nil)

	peak := tr.TraceBand(1, 3)
	if len(peak) != 1 || len(peak[0]) != 8 {
		t.Fatalf("want one octagon; got %v", peak)
	}
	if a := peak[0].Area(); !(a > 0) || math.Abs(a-2.0/3) > 1e-12 {
		t.Errorf("want counter-clockwise area 2/3; got %v", a)
	}

	// The rest of the square has a hole where the peak is.
	rest := tr.TraceBand(-1, 1)
	if len(rest) != 2 {
		t.Fatalf("want an outer ring and a hole; got %v", rest)
	}
	outer, hole := rest[0], rest[1]
	if want := (Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}); !de(outer, want) {
		t.Errorf("outer: want %v; got %v", want, outer)
	}
	if a := hole.Area(); math.Abs(a+peak[0].Area()) > 1e-12 {
		t.Errorf("hole: want area %v; got %v", -peak[0].Area(), a)
	}

	all := tr.TraceBand(-1, 5)
	if want := []Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}; !de(all, want) {
		t.Errorf("want the whole square; got %v", all)
	}

	if got := tr.TraceBand(5, 6); len(got) != 0 {
		t.Errorf("empty band: want nothing; got %v", got)
	}
	if got := tr.TraceBand(1, 1); len(got) != 0 {
		t.Errorf("zero-width band: want nothing; got %v", got)
	}
}

func TestTraceBandMask(t *testing.T) {
	mask := [][]bool{{false, false, false}, {false, false, false}, {false, false, true}}
	tr := mustTracer(t, []float64{0, 1, 2}, []float64{0, 1, 2},
		[][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, mask)
	got := tr.TraceBand(-1, 1)
	want := []Polygon{{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}}
	if !de(got, want) {
		t.Errorf("want %v; got %v", want, got)
	}
}

func TestCache(t *testing.T) {
	tr := mustTracer(t, testXs, testYs, testZ, nil)
	a := tr.Trace(0)
	if b := tr.Trace(0); &a[0] != &b[0] {
		t.Errorf("repeated Trace was not cached")
	}

	z := [][]float64{{5, 5, 5, 5}, {5, 5, 5, 5}, {5, 5, 5, 5}, {5, 5, 5, 5}}
	if err := tr.SetData(testXs, testYs, z, nil); err != nil {
		t.Fatal(err)
	}
	if got := tr.Trace(0); len(got) != 0 {
		t.Errorf("after SetData: want no lines; got %v", got)
	}
	if err := tr.SetData(testXs, testYs, z, []int{1}); err == nil {
		t.Errorf("SetData with int mask: want error")
	}

	// Modifying the field in place needs Invalidate.
	tr.Field().Z[1][1] = -1
	if got := tr.Trace(0); len(got) != 0 {
		t.Errorf("before Invalidate: want cached result; got %v", got)
	}
	tr.Invalidate()
	if got := tr.Trace(0); len(got) != 1 || !got[0].Closed() {
		t.Errorf("after Invalidate: want one loop; got %v", got)
	}

	levels := []float64{-0.5, 0, 2}
	if got := tr.TraceLevels(levels); len(got) != 3 || len(got[0]) != 1 {
		t.Errorf("TraceLevels: got %v", got)
	}
	if got := tr.TraceBands(levels); len(got) != 2 {
		t.Errorf("TraceBands: got %v", got)
	}
}

func TestSample(t *testing.T) {
	f := Sample(func(x, y float64) float64 { return x * y }, []float64{1, 2, 3}, []float64{10, 20})
	if want := [][]float64{{10, 20, 30}, {20, 40, 60}}; !de(f.Z, want) {
		t.Errorf("want %v; got %v", want, f.Z)
	}

	fn := Function{Fn: func(x, y float64) float64 { return x + y }, N: 5, Widen: 2}
	f = fn.Field([]float64{1, 3}, []float64{0, 4, 2})
	if want := []float64{0, 1, 2, 3, 4}; !de(f.X, want) {
		t.Errorf("X: want %v; got %v", want, f.X)
	}
	if want := []float64{-2, 0, 2, 4, 6}; !de(f.Y, want) {
		t.Errorf("Y: want %v; got %v", want, f.Y)
	}
	if f.Z[4][4] != 10 {
		t.Errorf("want Z[4][4] = 10; got %v", f.Z[4][4])
	}

	if f := fn.Field(nil, []float64{1}); len(f.X) != 0 || len(f.Z) != 5 {
		t.Errorf("no x data: want no columns; got %v", f)
	}
}
