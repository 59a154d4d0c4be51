// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/enthought/chaco-sub000/scales"
)

// logTickGoal is the number of ticks LogAutoTicks aims for.
const logTickGoal = 15

// logMultipliers are the within-decade spacings LogAutoTicks tries,
// densest first.
var logMultipliers = []float64{1, 2, 5}

// LogAutoTicks returns tick values for a logarithmic axis over
// [lower, upper], resolved from the data and bounds as in AutoTicks.
//
// If the range spans less than a decade, the ticks are linear. If it
// spans a moderate number of decades, there are ticks at multiples of
// interval within each decade; when interval is 0, the densest of
// 1, 2 and 5 that stays near the tick goal is used. Wider ranges get
// ticks at every decade, or every Nth decade.
//
// Ranges that reach zero or below have no log ticks.
func LogAutoTicks(dataLow, dataHigh float64, boundLow, boundHigh Bound, interval float64) []float64 {
	lower, upper := dataLow, dataHigh
	if !boundLow.Auto {
		lower = boundLow.Value
	}
	if !boundHigh.Auto {
		upper = boundHigh.Value
	}
	if dataLow <= 0 || lower <= 0 || upper <= 0 || !finite(lower, upper) {
		return nil
	}
	if interval < 0 {
		interval = 0
	}

	decades := math.Log10(upper) - math.Log10(lower)
	switch {
	case decades < 1:
		return AutoTicks(dataLow, dataHigh, boundLow, boundHigh, interval, false)

	case decades < (logTickGoal+1)/2 || interval != 0:
		muls := logMultipliers
		if interval != 0 {
			muls = []float64{interval}
		}
		var ticks []float64
		for _, m := range muls {
			ticks = decadeTicks(lower, upper, m)
			if len(ticks) < logTickGoal+3 {
				break
			}
		}
		return ticks
	}

	startLog, endLog := ceilLog10(lower), scales.FloorLog10(upper)
	step := (endLog - startLog + 8) / 9
	if step < 1 {
		step = 1
	}
	var ticks []float64
	for e := startLog; e < endLog; e += step {
		ticks = append(ticks, math.Pow10(e))
	}
	if (endLog-startLog)%step == 0 {
		ticks = append(ticks, math.Pow10(endLog))
	}
	return ticks
}

// decadeTicks returns the values m, 2m, ... 10 times each power of
// ten that lie in [lower, upper].
func decadeTicks(lower, upper, m float64) []float64 {
	muls := vec.Linspace(m, 10, int(math.Round(10/m)))
	var ticks []float64
	for e := scales.FloorLog10(lower); e < ceilLog10(upper); e++ {
		p := math.Pow10(e)
		for _, mul := range muls {
			t := p * mul
			if t < lower || t > upper {
				continue
			}
			// 10×10^e and 1×10^(e+1) are the same tick.
			if n := len(ticks); n > 0 && t <= ticks[n-1]*(1+1e-12) {
				continue
			}
			ticks = append(ticks, t)
		}
	}
	return ticks
}
