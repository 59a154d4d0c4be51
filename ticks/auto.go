// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/enthought/chaco-sub000/scales"
)

// magics are the nice mantissas AutoInterval chooses from, in order
// of preference.
var magics = []float64{1, 2, 2.5, 5, 10}

// maxCount limits the ticks AutoTicks will generate for a tiny
// explicit interval.
const maxCount = 1 << 20

// intervalMantissas are the mantissas TickIntervals steps through.
var intervalMantissas = []float64{2, 2.5, 5, 10}

// AutoTicks returns nice tick values covering [lower, upper], where
// each bound is either fixed or, if Auto, taken from the data and
// rounded out to the nearest tick.
//
// interval is the tick spacing. 0 chooses it with AutoInterval. A
// negative interval -N chooses a spacing giving exactly N intervals;
// if both bounds are Auto, they are then placed on that spacing.
//
// If useEndpoints is true, fixed bounds replace the first and last
// ticks. The result only contains ticks within the resolved bounds.
func AutoTicks(dataLow, dataHigh float64, boundLow, boundHigh Bound, interval float64, useEndpoints bool) []float64 {
	autoLow, autoHigh := boundLow.Auto, boundHigh.Auto
	lower, upper := dataLow, dataHigh
	if !autoLow {
		lower = boundLow.Value
	}
	if !autoHigh {
		upper = boundHigh.Value
	}
	if !finite(lower, upper, interval) {
		return nil
	}

	switch {
	case interval == 0:
		span := math.Abs(upper - lower)
		switch {
		case span == 0:
			interval = 0.5
			lower, upper = dataLow-0.5, dataHigh+0.5
		case isPow2(span) && isPow2(upper) && span > 4:
			interval = span / 4
		default:
			interval = AutoInterval(lower, upper, DefaultMaxTicks)
		}

	case interval < 0:
		n := math.Round(-interval)
		interval = TickIntervals(lower, upper, int(n))
		if autoLow && autoHigh {
			autoLow, autoHigh = false, false
			lower = interval * math.Floor(lower/interval)
			upper = lower + n*interval
		}
	}

	if autoLow || autoHigh {
		delta := 0.0
		if dataLow == dataHigh {
			delta = 0.01 * interval
		}
		lo, hi := AutoBounds(dataLow-delta, dataHigh+delta, interval)
		if autoLow {
			lower = lo
		}
		if autoHigh {
			upper = hi
		}
	}

	start := math.Floor(lower/interval) * interval
	end := math.Floor(upper/interval) * interval
	if start == end {
		// Never produce a zero-length axis.
		start -= interval
		lower = start
	}
	if upper > end {
		end += interval
	}

	count := int(math.Round((end-start)/interval)) + 1
	if count < 1 || count > maxCount {
		return nil
	}
	ticks := vec.Linspace(start, end, count)
	if len(ticks) < 2 {
		ticks = []float64{lower - lower*1e-7, lower}
	}
	if useEndpoints {
		if !autoLow {
			ticks[0] = lower
		}
		if !autoHigh {
			ticks[len(ticks)-1] = upper
		}
	}

	out := ticks[:0]
	for _, t := range ticks {
		if lower <= t && t <= upper {
			out = append(out, t)
		}
	}
	return out
}

// AutoInterval returns a nice tick spacing for the interval
// [lo, hi] that gives between 3 and maxTicks-1 intervals.
//
// It considers every division of the span into k intervals and every
// nice mantissa in {1, 2, 2.5, 5, 10}, and picks the pair whose
// mantissa is closest to the raw interval span/k. Exact ties go to
// the larger k, then to the smaller mantissa.
func AutoInterval(lo, hi float64, maxTicks int) float64 {
	span := math.Abs(hi - lo)
	if span == 0 || !finite(span) {
		return 1
	}
	if maxTicks < 4 {
		maxTicks = 4
	}

	best, bestDiff := 0.0, math.Inf(1)
	for k := maxTicks - 1; k >= 3; k-- {
		raw := span / float64(k)
		mag := math.Pow10(scales.FloorLog10(raw))
		mantissa := raw / mag
		for _, magic := range magics {
			if d := math.Abs(mantissa - magic); d < bestDiff {
				best, bestDiff = magic*mag, d
			}
		}
	}
	if best == 0 {
		// span underflowed.
		best = math.SmallestNonzeroFloat64
	}
	return best
}

// TickIntervals returns the smallest spacing with a mantissa in
// {2, 2.5, 5, 10} such that n intervals starting from the multiple
// of the spacing at or below lo reach hi.
func TickIntervals(lo, hi float64, n int) float64 {
	span := math.Abs(hi - lo)
	if span == 0 || !finite(span) {
		span = 1
	}
	if n < 1 {
		n = 1
	}
	raw := span / float64(n)

	var d float64
	for e := scales.FloorLog10(raw); e <= 308; e++ {
		for _, m := range intervalMantissas {
			d = m * math.Pow10(e)
			if d < raw {
				continue
			}
			if math.Floor(lo/d)*d+float64(n)*d >= hi {
				return d
			}
		}
	}
	return d
}

// CalcBound rounds endPoint out to a multiple of interval: up if
// isUpper, otherwise down. Values already within a relative 1e-5 of
// a multiple are returned unchanged.
func CalcBound(endPoint, interval float64, isUpper bool) float64 {
	q := math.Floor(endPoint / interval)
	rem := endPoint - q*interval
	if rem == 0 || (interval-rem)/interval < 1e-5 {
		return endPoint
	}
	c1, c2 := (q+1)*interval, q*interval
	if isUpper {
		return math.Max(c1, c2)
	}
	return math.Min(c1, c2)
}

// AutoBounds rounds [dataLow, dataHigh] out to multiples of interval.
func AutoBounds(dataLow, dataHigh, interval float64) (lower, upper float64) {
	return CalcBound(dataLow, interval, false), CalcBound(dataHigh, interval, true)
}

// isPow2 reports whether x is 2^n for some n > 0.
func isPow2(x float64) bool {
	frac, exp := math.Frexp(x)
	return x > 0 && frac == 0.5 && exp > 1
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// ceilLog10 returns ⌈log10(x)⌉ for x > 0.
func ceilLog10(x float64) int {
	e := scales.FloorLog10(x)
	if math.Pow10(e) < x {
		e++
	}
	return e
}
