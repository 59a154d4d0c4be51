// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"math"

	"github.com/enthought/chaco-sub000/generic"
)

// A Tracer traces contours of a Field and caches the results for each
// level or band until the field changes.
//
// The slices returned by Trace and TraceBand are shared with the
// cache and must not be modified.
type Tracer struct {
	field *Field
	lines map[float64][]Line
	bands map[[2]float64][]Polygon
}

// NewTracer returns a Tracer over the field described by xs, ys, z
// and mask, as for NewField.
func NewTracer(xs, ys, z, mask generic.Slice) (*Tracer, error) {
	f, err := NewField(xs, ys, z, mask)
	if err != nil {
		return nil, err
	}
	return NewFieldTracer(f), nil
}

// NewFieldTracer returns a Tracer over f. If f is modified, the
// caller must call Invalidate.
func NewFieldTracer(f *Field) *Tracer {
	return &Tracer{field: f}
}

// Field returns the field being traced.
func (t *Tracer) Field() *Field {
	return t.field
}

// SetData replaces the field, as for NewField, and discards cached
// contours. On error, the Tracer is unchanged.
func (t *Tracer) SetData(xs, ys, z, mask generic.Slice) error {
	f, err := NewField(xs, ys, z, mask)
	if err != nil {
		return err
	}
	t.field = f
	t.Invalidate()
	return nil
}

// Invalidate discards cached contours.
func (t *Tracer) Invalidate() {
	t.lines, t.bands = nil, nil
}

// Trace returns the contour lines of the field at level. Open lines,
// which end where the valid data ends, come before closed loops.
// Each line keeps values above level on its right.
func (t *Tracer) Trace(level float64) []Line {
	if ls, ok := t.lines[level]; ok {
		return ls
	}
	ls := (&lineTracer{f: t.field, level: level}).trace()
	if !math.IsNaN(level) {
		if t.lines == nil {
			t.lines = make(map[float64][]Line)
		}
		t.lines[level] = ls
	}
	return ls
}

// TraceBand returns the polygons bounding the region where
// lo < z <= hi, including the parts of their boundaries that follow
// the edge of the valid data. It returns nil if lo >= hi.
func (t *Tracer) TraceBand(lo, hi float64) []Polygon {
	k := [2]float64{lo, hi}
	if ps, ok := t.bands[k]; ok {
		return ps
	}
	ps := (&bandTracer{f: t.field, lo: lo, hi: hi}).trace()
	if !math.IsNaN(lo) && !math.IsNaN(hi) {
		if t.bands == nil {
			t.bands = make(map[[2]float64][]Polygon)
		}
		t.bands[k] = ps
	}
	return ps
}

// TraceLevels returns the contour lines at each of levels.
func (t *Tracer) TraceLevels(levels []float64) [][]Line {
	out := make([][]Line, len(levels))
	for i, l := range levels {
		out[i] = t.Trace(l)
	}
	return out
}

// TraceBands returns the filled regions between each pair of
// consecutive levels.
func (t *Tracer) TraceBands(levels []float64) [][]Polygon {
	if len(levels) < 2 {
		return nil
	}
	out := make([][]Polygon, len(levels)-1)
	for i := range out {
		out[i] = t.TraceBand(levels[i], levels[i+1])
	}
	return out
}
