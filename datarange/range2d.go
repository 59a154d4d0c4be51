// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datarange

import (
	"fmt"

	"github.com/enthought/chaco-sub000/datasource"
	"github.com/enthought/chaco-sub000/event"
)

// Range2D is a rectangular data-space region made of two independent
// Range1Ds.
//
// Subscribers to the Range2D see one event.Updated for each logical
// change, even if both axes change. Subscribers to the individual
// axis ranges see that axis' changes.
type Range2D struct {
	event.Notifier

	x, y *Range1D

	sources []attached2D

	// batch > 0 while a multi-axis change is in progress.
	batch   int
	pending bool
}

type attached2D struct {
	src datasource.Source2D
	sub event.Subscription
}

// New2D returns an Auto range fit to sources.
func New2D(sources ...datasource.Source2D) *Range2D {
	r := &Range2D{x: New1D(), y: New1D()}
	r.x.Subscribe(event.Updated, r.axisUpdated)
	r.y.Subscribe(event.Updated, r.axisUpdated)
	r.Add(sources...)
	return r
}

func (r *Range2D) String() string {
	return fmt.Sprintf("x%v y%v", r.x, r.y)
}

// X returns the range of the x axis.
func (r *Range2D) X() *Range1D { return r.x }

// Y returns the range of the y axis.
func (r *Range2D) Y() *Range1D { return r.y }

// Low returns the (x, y) lower corner.
func (r *Range2D) Low() [2]float64 { return [2]float64{r.x.Low(), r.y.Low()} }

// High returns the (x, y) upper corner.
func (r *Range2D) High() [2]float64 { return [2]float64{r.x.High(), r.y.High()} }

func (r *Range2D) axisUpdated() {
	if r.batch > 0 {
		r.pending = true
		return
	}
	r.Notify(event.Updated)
}

// update runs f as a single logical change.
func (r *Range2D) update(f func()) {
	r.batch++
	f()
	r.batch--
	if r.batch == 0 && r.pending {
		r.pending = false
		r.Notify(event.Updated)
	}
}

// SetBounds fixes both corners at once.
func (r *Range2D) SetBounds(low, high [2]float64) {
	r.update(func() {
		r.x.SetBounds(low[0], high[0])
		r.y.SetBounds(low[1], high[1])
	})
}

// SetLow respecifies the lower corner.
func (r *Range2D) SetLow(x, y Setting) {
	r.update(func() {
		r.x.SetLow(x)
		r.y.SetLow(y)
	})
}

// SetHigh respecifies the upper corner.
func (r *Range2D) SetHigh(x, y Setting) {
	r.update(func() {
		r.x.SetHigh(x)
		r.y.SetHigh(y)
	})
}

// Reset returns all four bounds to Auto.
func (r *Range2D) Reset() {
	r.update(func() {
		r.x.Reset()
		r.y.Reset()
	})
}

// SetTightBounds sets tight bounds per axis.
func (r *Range2D) SetTightBounds(x, y bool) {
	r.update(func() {
		r.x.SetTightBounds(x)
		r.y.SetTightBounds(y)
	})
}

// SetEpsilon sets the minimum relative span per axis.
func (r *Range2D) SetEpsilon(x, y float64) {
	r.update(func() {
		r.x.SetEpsilon(x)
		r.y.SetEpsilon(y)
	})
}

// Add attaches 2-D data sources. Each axis range fits to the
// corresponding component of the sources' bounds.
func (r *Range2D) Add(sources ...datasource.Source2D) {
	for _, src := range sources {
		if r.index(src) >= 0 {
			continue
		}
		sub := src.Subscribe(event.DataChanged, r.Refresh)
		r.sources = append(r.sources, attached2D{src, sub})
	}
	if len(sources) > 0 {
		r.Refresh()
	}
}

// Remove detaches 2-D data sources.
func (r *Range2D) Remove(sources ...datasource.Source2D) {
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

func (r *Range2D) index(src datasource.Source2D) int {
	for i, a := range r.sources {
		if a.src == src {
			return i
		}
	}
	return -1
}

// Refresh refits both axes to the attached sources.
func (r *Range2D) Refresh() {
	var ex, ey extent
	for _, a := range r.sources {
		if a.src.Len() == 0 {
			continue
		}
		lo, hi := a.src.Bounds2D()
		ex = ex.union(lo[0], hi[0])
		ey = ey.union(lo[1], hi[1])
	}
	r.update(func() {
		r.x.setExtent(ex)
		r.y.setExtent(ey)
	})
}

// Contains reports whether p lies within the region.
func (r *Range2D) Contains(p [2]float64) bool {
	return r.x.Contains(p[0]) && r.y.Contains(p[1])
}

// ClipData returns the points that lie within the region.
func (r *Range2D) ClipData(pts [][2]float64) [][2]float64 {
	var out [][2]float64
	for _, p := range pts {
		if r.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// MaskData returns, for each point, whether it lies within the
// region.
func (r *Range2D) MaskData(pts [][2]float64) []bool {
	mask := make([]bool, len(pts))
	for i, p := range pts {
		mask[i] = r.Contains(p)
	}
	return mask
}
