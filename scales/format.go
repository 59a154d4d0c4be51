// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// A Formatter produces tick labels.
type Formatter interface {
	// Format returns a label for each tick. numLabels and
	// charWidth are the same hints given to Scale.Labels.
	Format(ticks []float64, numLabels int, charWidth float64) []string
}

// BasicFormatter formats numbers with a precision chosen from the
// span of the ticks, dropping trailing zeros. Small integers are
// formatted exactly.
type BasicFormatter struct{}

func (BasicFormatter) Format(ticks []float64, numLabels int, charWidth float64) []string {
	if len(ticks) == 0 {
		return nil
	}
	span := math.Abs(ticks[len(ticks)-1] - ticks[0])
	out := make([]string, len(ticks))
	for i, x := range ticks {
		out[i] = FormatNumber(x, span)
	}
	return out
}

// FormatNumber formats x as a label among ticks spanning span.
func FormatNumber(x, span float64) string {
	if x == 0 {
		// Avoid "-0".
		x = 0
	}
	if math.Abs(x) < 1e4 && x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', 0, 64)
	}

	var s string
	switch {
	case span < 1e-2:
		s = strconv.FormatFloat(x, 'e', 3, 64)
	case span < 1e-1:
		s = strconv.FormatFloat(x, 'f', 3, 64)
	case span > 1e5:
		s = strconv.FormatFloat(x, 'e', 1, 64)
	case span > 10:
		s = strconv.FormatFloat(x, 'f', 1, 64)
	default:
		s = strconv.FormatFloat(x, 'f', 2, 64)
	}

	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant, exp := trimZeros(s[:i]), s[i+1:]
		sign := ""
		switch exp[0] {
		case '-':
			sign = "-"
			exp = exp[1:]
		case '+':
			exp = exp[1:]
		}
		exp = strings.TrimLeft(exp, "0")
		if exp == "" {
			exp = "0"
		}
		return mant + "e" + sign + exp
	}
	return trimZeros(s)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

// TimeFormatter formats epoch-second ticks as times, with a layout
// chosen from the spacing of the ticks.
type TimeFormatter struct {
	// Resolution is the approximate spacing of the ticks in
	// seconds.
	Resolution float64

	// Location is the time zone of the labels. If nil, UTC.
	Location *time.Location
}

func (f TimeFormatter) Format(ticks []float64, numLabels int, charWidth float64) []string {
	layout := TimeLayout(f.Resolution)
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = SafeTime(t, loc).Format(layout)
	}
	return out
}

// TimeLayout returns the time.Format layout for ticks spaced res
// seconds apart.
func TimeLayout(res float64) string {
	switch {
	case res < 1e-3:
		return "05.000000"
	case res < 1:
		return "05.000"
	case res < 60:
		return "15:04:05"
	case res < 24*3600:
		return "15:04"
	case res < 28*24*3600:
		return "Jan 2"
	case res < 365*24*3600:
		return "Jan 2006"
	}
	return "2006"
}
