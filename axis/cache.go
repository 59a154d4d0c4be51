// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"github.com/enthought/chaco-sub000/event"
	"github.com/enthought/chaco-sub000/mapper"
	"github.com/enthought/chaco-sub000/scales"
	"github.com/enthought/chaco-sub000/ticks"
)

// tickCache holds the ticks of a mapper's range and their screen
// positions. It is invalidated whenever the mapper fires
// event.Updated.
type tickCache struct {
	m   mapper.Mapper1D
	sub event.Subscription

	gen       ticks.Generator
	interval  float64
	formatter scales.Formatter

	valid  bool
	values []float64
	pos    []float64
	labels []string
	err    error
}

func (c *tickCache) init(m mapper.Mapper1D, gen ticks.Generator) {
	if gen == nil {
		gen = ticks.Default{}
	}
	c.gen = gen
	c.setMapper(m)
}

func (c *tickCache) setMapper(m mapper.Mapper1D) {
	if c.m != nil {
		c.m.Unsubscribe(c.sub)
	}
	c.m = m
	c.sub = m.Subscribe(event.Updated, c.invalidate)
	c.invalidate()
}

// release stops following the mapper.
func (c *tickCache) release() {
	if c.m != nil {
		c.m.Unsubscribe(c.sub)
		c.m = nil
	}
}

func (c *tickCache) invalidate() {
	c.valid = false
}

func (c *tickCache) ensure() {
	if c.valid {
		return
	}
	c.valid = true
	c.values, c.pos, c.labels, c.err = nil, nil, nil, nil
	if c.m == nil {
		return
	}

	lo, hi := c.m.Range().Bounds()
	if l, ok := c.gen.(ticks.Labeler); ok && c.interval == 0 {
		lowPos, highPos := c.m.ScreenBounds()
		c.values, c.labels, c.err = l.TicksAndLabels(lo, hi, lowPos, highPos)
	} else {
		scale := ticks.LinearScale
		if c.m.TickScale() == mapper.LogTicks {
			scale = ticks.LogScale
		}
		c.values, c.err = c.gen.Ticks(ticks.Request{
			DataLow:    lo,
			DataHigh:   hi,
			BoundsLow:  ticks.At(lo),
			BoundsHigh: ticks.At(hi),
			Interval:   c.interval,
			Scale:      scale,
		})
		if c.err == nil {
			f := c.formatter
			if f == nil {
				f = scales.BasicFormatter{}
			}
			c.labels = f.Format(c.values, len(c.values), 0)
		}
	}
	if c.err != nil {
		c.values, c.labels = nil, nil
		return
	}
	c.pos = c.m.MapScreenArray(c.values)
}
