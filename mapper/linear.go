// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"github.com/aclements/go-moremath/scale"

	"github.com/enthought/chaco-sub000/datarange"
)

// Linear is an affine 1-D mapper.
type Linear struct {
	base
	linearTransform
}

// *Linear is a Mapper1D.
var _ Mapper1D = &Linear{}

// NewLinear returns a mapper from r onto [lowPos, highPos].
func NewLinear(r *datarange.Range1D, lowPos, highPos float64) *Linear {
	m := &Linear{}
	m.init(&m.linearTransform, r, lowPos, highPos)
	return m
}

type linearTransform struct {
	s                    scale.Linear
	pos0, span           float64
	nullData, nullScreen bool
}

func (t *linearTransform) compute(lo, hi, lowPos, highPos float64) {
	t.s = scale.Linear{Min: lo, Max: hi}
	t.pos0, t.span = lowPos, highPos-lowPos
	t.nullData = lo == hi
	t.nullScreen = t.span == 0
}

func (t *linearTransform) adjust(lo, hi, oldD, newD float64) (float64, bool) {
	dData := hi - lo
	if dData == 0 || oldD == 0 {
		return 0, false
	}
	return lo + dData/oldD*newD, true
}

func (m *Linear) MapScreen(x float64) float64 {
	m.ensure()
	if m.nullData {
		return m.pos0
	}
	return m.pos0 + m.s.Map(x)*m.span
}

func (m *Linear) MapData(s float64) float64 {
	m.ensure()
	if m.nullData || m.nullScreen {
		return m.rng.Low()
	}
	return m.s.Unmap((s - m.pos0) / m.span)
}

func (m *Linear) MapScreenArray(xs []float64) []float64 {
	return mapArray(m.MapScreen, xs)
}

func (m *Linear) MapDataArray(ss []float64) []float64 {
	return mapArray(m.MapData, ss)
}

func (m *Linear) TickScale() TickScale { return LinearTicks }

// Clone returns a new mapper with the same screen interval and
// settings. The clone shares m's range.
func (m *Linear) Clone() *Linear {
	m2 := NewLinear(m.rng, m.lowPos, m.highPos)
	m2.noStretch = m.noStretch
	return m2
}
