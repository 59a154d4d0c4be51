// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales implements tick scales: rules that place ticks and
// labels on an interval, such as "nice numbers", "every 0.25", or
// "the 1st and 15th of each month".
//
// A System holds several scales and picks the one best suited to an
// interval and the space available for labels. NewCalendarSystem
// returns a System of time scales from microseconds to years.
package scales

import (
	"log"
	"math"
	"os"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// Warning is a logger for reporting conditions that don't prevent
// producing ticks, but may give unexpected results.
var Warning = log.New(os.Stderr, "[scales]", log.Lshortfile)

// A Label is a tick value and its text.
type Label struct {
	Value float64
	Text  string
}

// A Scale places ticks on intervals.
type Scale interface {
	// Ticks returns the ticks in [start, end]. desired is a hint
	// for the number of ticks; some scales ignore it.
	Ticks(start, end float64, desired int) []float64

	// NumTicks returns approximately len(Ticks(start, end,
	// desired)), without necessarily computing the ticks.
	NumTicks(start, end float64, desired int) float64

	// Labels returns the ticks in [start, end] with their labels.
	Labels(start, end float64, numLabels int, charWidth float64) []Label

	// LabelWidth estimates the number of labels and their total
	// width in characters.
	LabelWidth(start, end float64, numLabels int, charWidth float64) (count int, width float64)
}

// Heckbert returns nice tick bounds and spacing for about n ticks on
// [lo, hi], following Heckbert's "Nice numbers for graph labels". If
// enclose is true, the bounds lie within [lo, hi], otherwise they
// cover it.
func Heckbert(lo, hi float64, n int, enclose bool) (min, max, delta float64) {
	if hi == lo {
		return hi, lo, 0
	}
	if n == 0 {
		n = 1
	}
	span := nice(hi-lo, false)
	if n > 1 {
		n--
	}
	delta = nice(span/float64(n), true)
	if enclose {
		min = math.Ceil(lo/delta) * delta
		max = math.Floor(hi/delta) * delta
	} else {
		min = math.Floor(lo/delta) * delta
		max = math.Ceil(hi/delta) * delta
	}
	return min, max, delta
}

// nice returns a nice number near x: its mantissa is 1, 2.5, 5 or
// 10. If round is true, the nearest such number is returned,
// otherwise the smallest one >= x.
func nice(x float64, round bool) float64 {
	if x <= 0 {
		Warning.Printf("non-positive span %g passed to tick interval calculation", x)
		x = math.Abs(x)
		if x == 0 {
			return 0
		}
	}
	e := FloorLog10(x)
	f := x / math.Pow10(e)
	var nf float64
	if round {
		switch {
		case f < 1.75:
			nf = 1
		case f < 3.75:
			nf = 2.5
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2.5:
			nf = 2.5
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow10(e)
}

// FRange returns the values min, min+delta, ... up to max.
func FRange(min, max, delta float64) []float64 {
	if delta == 0 {
		return []float64{min}
	}
	count := int(math.Round((max-min)/delta)) + 1
	if count < 1 {
		return nil
	}
	return vec.Linspace(min, max, count)
}

// Default places Heckbert nice-number ticks.
type Default struct {
	// Formatter formats labels. If nil, BasicFormatter is used.
	Formatter Formatter
}

func (s Default) Ticks(start, end float64, desired int) []float64 {
	if math.IsNaN(start) || math.IsNaN(end) {
		return nil
	}
	if start == end {
		return []float64{start}
	}
	if start > end {
		start, end = end, start
	}
	min, max, delta := Heckbert(start, end, desired, true)
	return FRange(min, max, delta)
}

func (s Default) NumTicks(start, end float64, desired int) float64 {
	return float64(len(s.Ticks(start, end, desired)))
}

func (s Default) Labels(start, end float64, numLabels int, charWidth float64) []Label {
	return labels(s.Ticks(start, end, numLabels), s.Formatter, numLabels, charWidth)
}

func (s Default) LabelWidth(start, end float64, numLabels int, charWidth float64) (int, float64) {
	return estimateWidth(s.NumTicks(start, end, numLabels), s.Formatter, start, end, numLabels, charWidth)
}

// Fixed places ticks at every multiple of Resolution, offset by Zero.
type Fixed struct {
	Resolution, Zero float64
	Formatter        Formatter
}

func (s Fixed) Ticks(start, end float64, desired int) []float64 {
	if start == end || math.IsNaN(start) || math.IsNaN(end) || s.Resolution <= 0 {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	first := math.Ceil((start - s.Zero) / s.Resolution)
	last := math.Floor((end - s.Zero) / s.Resolution)
	if last-first+1 > maxTicks {
		return nil
	}
	var ticks []float64
	for i := first; i <= last; i++ {
		ticks = append(ticks, i*s.Resolution+s.Zero)
	}
	return ticks
}

func (s Fixed) NumTicks(start, end float64, desired int) float64 {
	if s.Resolution <= 0 {
		return 0
	}
	return math.Abs(end-start) / s.Resolution
}

func (s Fixed) Labels(start, end float64, numLabels int, charWidth float64) []Label {
	return labels(s.Ticks(start, end, numLabels), s.Formatter, numLabels, charWidth)
}

func (s Fixed) LabelWidth(start, end float64, numLabels int, charWidth float64) (int, float64) {
	return estimateWidth(s.NumTicks(start, end, numLabels), s.Formatter, start, end, numLabels, charWidth)
}

// Log places ticks for logarithmic axes: powers of ten (or every few
// powers of ten) across several decades, and nice numbers within a
// single decade. Intervals that reach zero or below have no ticks.
type Log struct {
	Formatter Formatter
}

func (s Log) Ticks(start, end float64, desired int) []float64 {
	if start > end {
		start, end = end, start
	}
	if !(start > 0) || math.IsInf(end, 0) {
		return nil
	}
	if start == end {
		return []float64{start}
	}
	if end/start < 10 {
		return Default{}.Ticks(start, end, desired)
	}
	if desired < 2 {
		desired = 2
	}
	ls, err := scale.NewLog(start, end, 10)
	if err != nil {
		Warning.Print(err)
		return nil
	}
	major, _ := ls.Ticks(scale.TickOptions{Max: desired})
	return major
}

func (s Log) NumTicks(start, end float64, desired int) float64 {
	return float64(len(s.Ticks(start, end, desired)))
}

func (s Log) Labels(start, end float64, numLabels int, charWidth float64) []Label {
	return labels(s.Ticks(start, end, numLabels), s.Formatter, numLabels, charWidth)
}

func (s Log) LabelWidth(start, end float64, numLabels int, charWidth float64) (int, float64) {
	return estimateWidth(s.NumTicks(start, end, numLabels), s.Formatter, start, end, numLabels, charWidth)
}

// Quant places the major ticks of a go-moremath quantitative scale.
type Quant struct {
	// New returns the scale for the interval [start, end].
	New func(start, end float64) (scale.Quantitative, error)

	Formatter Formatter
}

// LinearQuant returns a Quant over scale.Linear with the given tick
// base. A base of 0 alternates ticks at 1 and 5 times powers of ten.
func LinearQuant(base int) Quant {
	return Quant{New: func(start, end float64) (scale.Quantitative, error) {
		return &scale.Linear{Min: start, Max: end, Base: base}, nil
	}}
}

// LogQuant returns a Quant over scale.Log with the given base.
func LogQuant(base int) Quant {
	return Quant{New: func(start, end float64) (scale.Quantitative, error) {
		ls, err := scale.NewLog(start, end, base)
		if err != nil {
			return nil, err
		}
		return &ls, nil
	}}
}

func (s Quant) Ticks(start, end float64, desired int) []float64 {
	if start == end || math.IsNaN(start) || math.IsNaN(end) {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	q, err := s.New(start, end)
	if err != nil {
		Warning.Print(err)
		return nil
	}
	if desired < 2 {
		desired = 2
	}
	major, _ := q.Ticks(scale.TickOptions{Max: desired})
	return major
}

func (s Quant) NumTicks(start, end float64, desired int) float64 {
	return float64(len(s.Ticks(start, end, desired)))
}

func (s Quant) Labels(start, end float64, numLabels int, charWidth float64) []Label {
	return labels(s.Ticks(start, end, numLabels), s.Formatter, numLabels, charWidth)
}

func (s Quant) LabelWidth(start, end float64, numLabels int, charWidth float64) (int, float64) {
	return estimateWidth(s.NumTicks(start, end, numLabels), s.Formatter, start, end, numLabels, charWidth)
}

// maxTicks bounds the ticks a scale will enumerate.
const maxTicks = 1e6

func labels(ticks []float64, f Formatter, numLabels int, charWidth float64) []Label {
	if f == nil {
		f = BasicFormatter{}
	}
	texts := f.Format(ticks, numLabels, charWidth)
	ls := make([]Label, len(ticks))
	for i, t := range ticks {
		ls[i] = Label{t, texts[i]}
	}
	return ls
}

// estimateWidth estimates the label count and width of n ticks on
// [start, end] from the width of the labels at the ends.
func estimateWidth(n float64, f Formatter, start, end float64, numLabels int, charWidth float64) (int, float64) {
	if !(n >= 1) || math.IsInf(n, 0) {
		return 0, 0
	}
	if f == nil {
		f = BasicFormatter{}
	}
	ends := f.Format([]float64{start, end}, numLabels, charWidth)
	avg := float64(len(ends[0])+len(ends[1])) / 2
	count := int(math.Min(math.Round(n), maxTicks))
	return count, float64(count) * avg
}

// FloorLog10 returns ⌊log10(x)⌋ for x > 0, correcting math.Log10's
// rounding at powers of ten.
func FloorLog10(x float64) int {
	e := int(math.Floor(math.Log10(x)))
	if math.Pow10(e) > x {
		e--
	} else if math.Pow10(e+1) <= x {
		e++
	}
	return e
}
