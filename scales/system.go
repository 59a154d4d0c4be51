// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import "math"

// DefaultFillRatio is the default fraction of the available space
// labels may fill.
const DefaultFillRatio = 0.3

// A System picks among several scales the one best suited to an
// interval.
type System struct {
	Scales []Scale

	// Default is used when Scales is empty or none of them
	// produces ticks. If nil, Default{} is used.
	Default Scale

	// FillRatio is the largest fraction of the available
	// characters that labels may fill. If 0, DefaultFillRatio is
	// used.
	FillRatio float64
}

// NewSystem returns a System of ss.
func NewSystem(ss ...Scale) *System {
	return &System{Scales: ss, Default: Default{}, FillRatio: DefaultFillRatio}
}

func (s *System) def() Scale {
	if s.Default == nil {
		return Default{}
	}
	return s.Default
}

// Ticks returns ticks on [start, end] from the scale whose tick count
// is closest to numTicks.
func (s *System) Ticks(start, end float64, numTicks int) []float64 {
	if start == end || math.IsNaN(start) || math.IsNaN(end) {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	return s.scaleFor(start, end, numTicks).Ticks(start, end, numTicks)
}

// scaleFor returns the scale whose tick count on [start, end] is
// closest to n. Earlier scales win ties.
func (s *System) scaleFor(start, end float64, n int) Scale {
	if len(s.Scales) == 0 {
		return s.def()
	}
	var best Scale
	bestDiff := math.Inf(1)
	for _, sc := range s.Scales {
		count := sc.NumTicks(start, end, n)
		if count < 1 {
			continue
		}
		if d := math.Abs(count - float64(n)); d < bestDiff {
			best, bestDiff = sc, d
		}
	}
	if best == nil {
		Warning.Printf("no scale has ticks on [%g, %g]; using default", start, end)
		return s.def()
	}
	return best
}

// Labels returns ticks and labels on [start, end].
//
// If charWidth, the number of characters that fit in the available
// space, is positive, the scale is chosen so the labels fill at most
// FillRatio of the space and their number is as close as possible to
// numLabels. If no scale fits, the one that fills the least space is
// used. Otherwise the scale is chosen as for Ticks.
func (s *System) Labels(start, end float64, numLabels int, charWidth float64) []Label {
	if start == end || math.IsNaN(start) || math.IsNaN(end) {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	if charWidth <= 0 || len(s.Scales) == 0 {
		return s.scaleFor(start, end, numLabels).Labels(start, end, numLabels, charWidth)
	}

	ratio := s.FillRatio
	if ratio == 0 {
		ratio = DefaultFillRatio
	}
	var fit, tight Scale
	fitDiff, tightFill := math.Inf(1), math.Inf(1)
	for _, sc := range s.Scales {
		count, width := sc.LabelWidth(start, end, numLabels, charWidth)
		if count == 0 {
			continue
		}
		fill := width / charWidth
		if fill <= ratio {
			if d := math.Abs(float64(count - numLabels)); d < fitDiff {
				fit, fitDiff = sc, d
			}
		} else if fill < tightFill {
			tight, tightFill = sc, fill
		}
	}
	sc := fit
	if sc == nil {
		sc = tight
	}
	if sc == nil {
		Warning.Printf("no scale has labels on [%g, %g]; using default", start, end)
		sc = s.def()
	}
	return sc.Labels(start, end, numLabels, charWidth)
}
