// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datarange implements the data-space intervals that mappers
// transform from.
//
// A Range1D owns a [low, high] interval. Each end is either fixed by
// the caller or derived from the data sources attached to the range,
// so that the interval follows the data as it changes. A Range2D pairs
// two independent Range1Ds for the x and y axes.
//
// Ranges are shared by reference: any number of mappers may hold the
// same range, and every one of them is notified (event.Updated)
// synchronously whenever the effective bounds change.
package datarange

import (
	"fmt"
	"math"
)

// Mode selects how one end of a range is determined.
type Mode int

const (
	// Auto fits the bound to the attached data.
	Auto Mode = iota

	// Track keeps the bound at a fixed distance (the tracking
	// amount) from the other bound. This gives a sliding window
	// that follows the data.
	Track

	// Fixed pins the bound to Setting.Value.
	Fixed
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Track:
		return "track"
	case Fixed:
		return "fixed"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// A Setting is the caller's choice for one end of a range. The
// zero Setting is Auto.
type Setting struct {
	Mode  Mode
	Value float64 // Only meaningful if Mode == Fixed.
}

// At returns a Fixed setting at v.
func At(v float64) Setting {
	return Setting{Fixed, v}
}

func (s Setting) String() string {
	if s.Mode == Fixed {
		return fmt.Sprint(s.Value)
	}
	return s.Mode.String()
}

// Policy holds the parameters CalcBounds uses to turn a data extent
// into range bounds.
type Policy struct {
	// Tight, if true, uses the data extent exactly. Otherwise,
	// Auto bounds are padded outward by Margin times the span of
	// the data.
	Tight  bool
	Margin float64

	// Epsilon is the minimum span of the range relative to the
	// magnitude of its low bound. Narrower computed ranges are
	// widened symmetrically to this span.
	Epsilon float64

	// TrackingAmount is the span used for Track bounds.
	TrackingAmount float64
}

// DefaultPolicy is the Policy of a new Range1D.
var DefaultPolicy = Policy{
	Tight:   true,
	Margin:  0.05,
	Epsilon: 1e-10,
}

// CalcBounds computes the bounds of a range whose ends are specified
// by low and high and whose attached data spans [dataLo, dataHi].
//
// Fixed ends are returned as given, even if that leaves lo > hi; such
// a range is rejected later, by whoever needs it to be ordered.
func CalcBounds(low, high Setting, dataLo, dataHi float64, p Policy) (lo, hi float64) {
	lo, hi = dataLo, dataHi
	if low.Mode == Fixed {
		lo = low.Value
	}
	if high.Mode == Fixed {
		hi = high.Value
	}
	if low.Mode == Track {
		lo = hi - p.TrackingAmount
	}
	if high.Mode == Track {
		hi = lo + p.TrackingAmount
	}
	if low.Mode == Fixed && high.Mode == Fixed {
		return lo, hi
	}

	if !p.Tight {
		pad := p.Margin * (hi - lo)
		if hi == lo {
			// Pad as if the data spanned one unit.
			pad = p.Margin
		}
		if low.Mode == Auto {
			lo -= pad
		}
		if high.Mode == Auto {
			hi += pad
		}
	}

	if lo <= hi {
		if minSpan := p.Epsilon * math.Abs(lo); hi-lo < minSpan {
			mid := lo/2 + hi/2
			lo, hi = mid-minSpan/2, mid+minSpan/2
		}
	}
	return lo, hi
}
