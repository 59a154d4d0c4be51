// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/enthought/chaco-sub000/scales"
)

// Default generates nice ticks with AutoTicks on linear scales and
// LogAutoTicks on log scales.
type Default struct{}

func (Default) Ticks(r Request) ([]float64, error) {
	if ok, err := check(r); !ok {
		return nil, err
	}
	return autoTicks(r), nil
}

func autoTicks(r Request) []float64 {
	if r.Scale == LogScale {
		return LogAutoTicks(r.DataLow, r.DataHigh, r.BoundsLow, r.BoundsHigh, r.Interval)
	}
	return AutoTicks(r.DataLow, r.DataHigh, r.BoundsLow, r.BoundsHigh, r.Interval, r.UseEndpoints)
}

// minorMaxTicks is the tick goal for subdividing a major interval.
const minorMaxTicks = 6

// Minor generates ticks at a finer spacing than Default would for
// the same request. If the request's interval is automatic, the
// spacing is a nice subdivision of Default's automatic spacing.
type Minor struct{}

func (Minor) Ticks(r Request) ([]float64, error) {
	if ok, err := check(r); !ok {
		return nil, err
	}
	if r.Interval == 0 {
		if r.Scale == LogScale {
			// Every integer multiple within each decade.
			r.Interval = 1
		} else {
			major := AutoInterval(r.DataLow, r.DataHigh, DefaultMaxTicks)
			r.Interval = AutoInterval(0, major, minorMaxTicks)
		}
	}
	return autoTicks(r), nil
}

// ShowAll returns Positions as the ticks regardless of the data,
// bounds or interval. It is used for categorical axes.
type ShowAll struct {
	Positions []float64
}

func (g ShowAll) Ticks(r Request) ([]float64, error) {
	if ok, err := check(r); !ok {
		return nil, err
	}
	return append([]float64(nil), g.Positions...), nil
}

// A Labeler is a Generator that also chooses tick labels to fit the
// available screen space.
type Labeler interface {
	Generator
	TicksAndLabels(dataLow, dataHigh, screenLow, screenHigh float64) ([]float64, []string, error)
}

// DefaultCharWidth is the nominal width of a label character in
// screen units.
const DefaultCharWidth = 7.0

// defaultNumLabels is the number of ticks asked of a scale system
// when the request does not determine one.
const defaultNumLabels = 8

// Scales generates ticks and labels from a scales.System, which
// picks the best of several scales (for example, calendar units) for
// the range.
type Scales struct {
	System *scales.System

	// CharWidth is the width of a label character in screen
	// units. If 0, DefaultCharWidth is used.
	CharWidth float64
}

// NewScales returns a Scales generator over a System of ss.
func NewScales(ss ...scales.Scale) *Scales {
	return &Scales{System: scales.NewSystem(ss...)}
}

func (g *Scales) Ticks(r Request) ([]float64, error) {
	if ok, err := check(r); !ok {
		return nil, err
	}
	n := defaultNumLabels
	if r.Interval > 0 {
		lo, hi := r.bounds()
		n = int(math.Round((hi - lo) / r.Interval))
	}
	return g.System.Ticks(r.DataLow, r.DataHigh, n), nil
}

// TicksAndLabels returns ticks in [dataLow, dataHigh] and their
// labels, choosing a scale whose labels fit in the screen interval
// [screenLow, screenHigh].
func (g *Scales) TicksAndLabels(dataLow, dataHigh, screenLow, screenHigh float64) ([]float64, []string, error) {
	r := Request{DataLow: dataLow, DataHigh: dataHigh, BoundsLow: At(dataLow), BoundsHigh: At(dataHigh)}
	if ok, err := check(r); !ok || math.IsNaN(screenLow) || math.IsNaN(screenHigh) {
		return nil, nil, err
	}
	cw := g.CharWidth
	if cw <= 0 {
		cw = DefaultCharWidth
	}
	numChars := math.Abs(screenHigh-screenLow) / cw
	labels := g.System.Labels(dataLow, dataHigh, defaultNumLabels, numChars)
	ticks := make([]float64, len(labels))
	texts := make([]string, len(labels))
	for i, l := range labels {
		ticks[i], texts[i] = l.Value, l.Text
	}
	return ticks, texts, nil
}
