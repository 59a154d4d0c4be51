// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"math"

	"github.com/enthought/chaco-sub000/datarange"
)

// LogMinimum is the largest data value a Log mapper treats as
// unrepresentable.
const LogMinimum = 0.0

// Log is a logarithmic 1-D mapper.
//
// Data values <= LogMinimum and NaNs are replaced with FillValue
// before mapping. If the range does not lie above LogMinimum, or is
// empty, the mapper substitutes a safe interval (see SafeScale) so
// that mapping always produces finite results.
type Log struct {
	base
	logTransform

	// FillValue substitutes for unrepresentable inputs.
	FillValue float64
}

// *Log is a Mapper1D.
var _ Mapper1D = &Log{}

// NewLog returns a logarithmic mapper from r onto [lowPos, highPos]
// with a FillValue of 1.
func NewLog(r *datarange.Range1D, lowPos, highPos float64) *Log {
	m := &Log{FillValue: 1}
	m.init(&m.logTransform, r, lowPos, highPos)
	return m
}

type logTransform struct {
	// interOffset and interScale map log(x) to [0, 1].
	interOffset, interScale float64
	pos0, span              float64
	nullScreen              bool
}

// SafeScale returns the interval a Log mapper uses for the range
// [lo, hi]. Bounds below LogMinimum are raised to it. If the result
// is a single value, it is expanded to the enclosing decade, or to
// the decade above if the value is an exact power of ten. A lower
// bound at LogMinimum under a positive upper bound is replaced by
// the power of ten one decade below the upper bound's decade.
func SafeScale(lo, hi float64) (float64, float64) {
	lo, hi = math.Max(lo, LogMinimum), math.Max(hi, LogMinimum)
	if lo == hi {
		if lo == LogMinimum {
			return 1, 10
		}
		l := math.Log10(lo)
		lo = math.Pow(10, math.Floor(l))
		if math.Ceil(l) != math.Floor(l) {
			hi = math.Pow(10, math.Ceil(l))
		} else {
			hi = math.Pow(10, math.Ceil(l)+1)
		}
		return lo, hi
	}
	if lo <= LogMinimum {
		lo = math.Pow(10, math.Floor(math.Log10(hi))-1)
	}
	return lo, hi
}

func (t *logTransform) compute(lo, hi, lowPos, highPos float64) {
	lo, hi = SafeScale(lo, hi)
	t.interOffset = math.Log(lo)
	t.interScale = math.Log(hi) - t.interOffset
	t.pos0, t.span = lowPos, highPos-lowPos
	t.nullScreen = t.span == 0
}

func (t *logTransform) adjust(lo, hi, oldD, newD float64) (float64, bool) {
	if lo <= LogMinimum || hi <= LogMinimum || lo == hi || oldD == 0 {
		return 0, false
	}
	return lo * math.Pow(hi/lo, newD/oldD), true
}

func (m *Log) MapScreen(x float64) float64 {
	m.ensure()
	if x <= LogMinimum || math.IsNaN(x) {
		x = m.FillValue
	}
	return m.pos0 + (math.Log(x)-m.interOffset)/m.interScale*m.span
}

func (m *Log) MapData(s float64) float64 {
	m.ensure()
	if m.nullScreen {
		return m.rng.Low()
	}
	return math.Exp((s-m.pos0)/m.span*m.interScale + m.interOffset)
}

func (m *Log) MapScreenArray(xs []float64) []float64 {
	return mapArray(m.MapScreen, xs)
}

func (m *Log) MapDataArray(ss []float64) []float64 {
	return mapArray(m.MapData, ss)
}

func (m *Log) TickScale() TickScale { return LogTicks }

// Clone returns a new mapper with the same screen interval and
// settings. The clone shares m's range.
func (m *Log) Clone() *Log {
	m2 := NewLog(m.rng, m.lowPos, m.highPos)
	m2.noStretch = m.noStretch
	m2.FillValue = m.FillValue
	return m2
}
