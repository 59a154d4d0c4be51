// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datarange

import (
	"fmt"
	"math"
	"sort"

	"github.com/enthought/chaco-sub000/datasource"
	"github.com/enthought/chaco-sub000/event"
)

// Range1D is a one-dimensional data-space interval.
//
// The zero Range1D is not usable; use New1D.
type Range1D struct {
	event.Notifier

	lowSetting, highSetting Setting
	policy                  Policy

	low, high float64
	// fitted records whether low and high have ever been fit to
	// real data. Until they have, empty ranges report [0, 1].
	fitted bool

	sources []attached
	// ext is a data extent supplied by an enclosing Range2D.
	ext extent
}

type attached struct {
	src datasource.Source
	sub event.Subscription
}

type extent struct {
	lo, hi float64
	ok     bool
}

func (e extent) union(lo, hi float64) extent {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return e
	}
	if !e.ok {
		return extent{lo, hi, true}
	}
	return extent{math.Min(e.lo, lo), math.Max(e.hi, hi), true}
}

// New1D returns an Auto/Auto range fit to sources. With no sources,
// the range is [0, 1].
func New1D(sources ...datasource.Source) *Range1D {
	r := &Range1D{policy: DefaultPolicy, low: 0, high: 1}
	r.Add(sources...)
	return r
}

// NewFixed1D returns a range with both ends fixed.
func NewFixed1D(low, high float64) *Range1D {
	r := New1D()
	r.SetBounds(low, high)
	return r
}

func (r *Range1D) String() string {
	return fmt.Sprintf("[%g,%g] (%s,%s)", r.low, r.high, r.lowSetting, r.highSetting)
}

// Low returns the effective lower bound.
func (r *Range1D) Low() float64 { return r.low }

// High returns the effective upper bound.
func (r *Range1D) High() float64 { return r.high }

// Bounds returns the effective bounds.
func (r *Range1D) Bounds() (low, high float64) { return r.low, r.high }

// LowSetting returns the setting of the lower bound.
func (r *Range1D) LowSetting() Setting { return r.lowSetting }

// HighSetting returns the setting of the upper bound.
func (r *Range1D) HighSetting() Setting { return r.highSetting }

// SetLow respecifies the lower bound.
func (r *Range1D) SetLow(s Setting) {
	r.lowSetting = s
	r.Refresh()
}

// SetHigh respecifies the upper bound.
func (r *Range1D) SetHigh(s Setting) {
	r.highSetting = s
	r.Refresh()
}

// SetSettings respecifies both bounds at once. Subscribers see a
// single update.
func (r *Range1D) SetSettings(low, high Setting) {
	r.lowSetting, r.highSetting = low, high
	r.Refresh()
}

// SetBounds fixes both bounds at once. Subscribers see a single
// update. low > high is accepted here; it is reported when ticks are
// generated for the range.
func (r *Range1D) SetBounds(low, high float64) {
	r.SetSettings(At(low), At(high))
}

// Reset returns both bounds to Auto.
func (r *Range1D) Reset() {
	r.SetSettings(Setting{}, Setting{})
}

// Policy returns the range's bound calculation parameters.
func (r *Range1D) Policy() Policy { return r.policy }

// SetPolicy replaces the bound calculation parameters and refits.
func (r *Range1D) SetPolicy(p Policy) {
	r.policy = p
	r.Refresh()
}

// SetTightBounds sets whether Auto bounds hug the data.
func (r *Range1D) SetTightBounds(tight bool) {
	r.policy.Tight = tight
	r.Refresh()
}

// SetMargin sets the relative padding applied when bounds are not
// tight.
func (r *Range1D) SetMargin(margin float64) {
	r.policy.Margin = margin
	r.Refresh()
}

// SetEpsilon sets the minimum relative span of the range.
func (r *Range1D) SetEpsilon(eps float64) {
	r.policy.Epsilon = eps
	r.Refresh()
}

// SetTrackingAmount sets the span of Track bounds.
func (r *Range1D) SetTrackingAmount(amount float64) {
	r.policy.TrackingAmount = amount
	r.Refresh()
}

// ScaleTrackingAmount multiplies the tracking amount by m, which
// zooms a tracking window in (m < 1) or out (m > 1).
func (r *Range1D) ScaleTrackingAmount(m float64) {
	r.SetTrackingAmount(r.policy.TrackingAmount * m)
}

// Sources returns the attached data sources.
func (r *Range1D) Sources() []datasource.Source {
	out := make([]datasource.Source, len(r.sources))
	for i, a := range r.sources {
		out[i] = a.src
	}
	return out
}

// Add attaches data sources to r. r refits whenever any of them
// changes.
func (r *Range1D) Add(sources ...datasource.Source) {
	for _, src := range sources {
		if r.index(src) >= 0 {
			continue
		}
		sub := src.Subscribe(event.DataChanged, r.Refresh)
		r.sources = append(r.sources, attached{src, sub})
	}
	if len(sources) > 0 {
		r.Refresh()
	}
}

// Remove detaches data sources from r.
func (r *Range1D) Remove(sources ...datasource.Source) {
	for _, src := range sources {
		i := r.index(src)
		if i < 0 {
			continue
		}
		src.Unsubscribe(r.sources[i].sub)
		r.sources = append(r.sources[:i], r.sources[i+1:]...)
	}
	if len(sources) > 0 {
		r.Refresh()
	}
}

func (r *Range1D) index(src datasource.Source) int {
	for i, a := range r.sources {
		if a.src == src {
			return i
		}
	}
	return -1
}

func (r *Range1D) setExtent(e extent) {
	r.ext = e
	r.Refresh()
}

// Refresh recomputes the effective bounds from the settings and the
// attached data, and notifies subscribers if they changed.
func (r *Range1D) Refresh() {
	ext := r.ext
	for _, a := range r.sources {
		if a.src.Len() == 0 {
			continue
		}
		ext = ext.union(a.src.Bounds())
	}

	var lo, hi float64
	if ext.ok {
		lo, hi = CalcBounds(r.lowSetting, r.highSetting, ext.lo, ext.hi, r.policy)
		r.fitted = true
	} else {
		lo, hi = r.emptyBounds()
	}
	r.set(lo, hi)
}

// emptyBounds computes the bounds of a range with no finite data.
// Auto ends keep their last fitted values, or [0, 1] if the range
// was never fit.
func (r *Range1D) emptyBounds() (lo, hi float64) {
	lo, hi = 0, 1
	if r.fitted {
		lo, hi = r.low, r.high
	}
	if r.lowSetting.Mode == Fixed {
		lo = r.lowSetting.Value
	}
	if r.highSetting.Mode == Fixed {
		hi = r.highSetting.Value
	}
	if r.lowSetting.Mode == Track {
		lo = hi - r.policy.TrackingAmount
	}
	if r.highSetting.Mode == Track {
		hi = lo + r.policy.TrackingAmount
	}
	return lo, hi
}

func (r *Range1D) set(lo, hi float64) {
	if lo == r.low && hi == r.high {
		return
	}
	r.low, r.high = lo, hi
	r.Notify(event.Updated)
}

// Contains reports whether x lies within the range.
func (r *Range1D) Contains(x float64) bool {
	return r.low <= x && x <= r.high
}

// ClipData returns the values of data that lie within the range.
func (r *Range1D) ClipData(data []float64) []float64 {
	var out []float64
	for _, x := range data {
		if r.Contains(x) {
			out = append(out, x)
		}
	}
	return out
}

// MaskData returns, for each value of data, whether it lies within
// the range.
func (r *Range1D) MaskData(data []float64) []bool {
	mask := make([]bool, len(data))
	for i, x := range data {
		mask[i] = r.Contains(x)
	}
	return mask
}

// BoundData returns the indexes of the first and last values of the
// ascending data that lie within the range. If none do, it returns
// -1, -1.
func (r *Range1D) BoundData(sorted []float64) (first, last int) {
	first = sort.SearchFloat64s(sorted, r.low)
	last = sort.Search(len(sorted), func(i int) bool { return sorted[i] > r.high }) - 1
	if first >= len(sorted) || last < first {
		return -1, -1
	}
	return first, last
}
