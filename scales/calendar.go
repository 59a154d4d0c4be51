// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"fmt"
	"math"
	"time"
)

// A Unit is a unit of time for calendar arithmetic.
type Unit int

const (
	Microseconds Unit = iota
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	// DayOfMonth and MonthOfYear are calendar anchors: a time
	// scale in these units places ticks on particular days of
	// each month or months of each year.
	DayOfMonth
	MonthOfYear
	Years
)

var unitNames = [...]string{
	Microseconds: "microseconds",
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
	DayOfMonth:   "day_of_month",
	MonthOfYear:  "month_of_year",
	Years:        "years",
}

// secsPerUnit approximates the length of each unit in seconds.
var secsPerUnit = [...]float64{
	Microseconds: 1e-6,
	Milliseconds: 1e-3,
	Seconds:      1,
	Minutes:      60,
	Hours:        3600,
	Days:         24 * 3600,
	DayOfMonth:   30 * 24 * 3600,
	MonthOfYear:  365 * 24 * 3600,
	Years:        365 * 24 * 3600,
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Seconds returns the approximate length of u in seconds. For
// DayOfMonth and MonthOfYear, it is the length of the enclosing
// month or year.
func (u Unit) Seconds() float64 {
	return secsPerUnit[u]
}

func (u Unit) calendar() bool {
	return u == DayOfMonth || u == MonthOfYear
}

// UnitError is returned for an unknown time unit name.
type UnitError struct {
	Unit string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("scales: unknown time unit %q", e.Unit)
}

// ParseUnit returns the Unit named name, such as "minutes" or
// "day_of_month".
func ParseUnit(name string) (Unit, error) {
	for u, n := range unitNames {
		if n == name {
			return Unit(u), nil
		}
	}
	return 0, &UnitError{name}
}

var (
	minTime = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	maxTime = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

// SafeTime converts epoch seconds to a time in loc. Times outside
// years 1 through 9999 are clamped to that range with a Warning.
func SafeTime(sec float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	switch {
	case math.IsNaN(sec):
		Warning.Print("NaN time; using the epoch")
		sec = 0
	case sec < float64(minTime.Unix()):
		Warning.Printf("time %g is before year 1; clamping", sec)
		return minTime.In(loc)
	case sec > float64(maxTime.Unix()):
		Warning.Printf("time %g is after year 9999; clamping", sec)
		return maxTime.In(loc)
	}
	whole := math.Floor(sec)
	ns := math.Round((sec - whole) * 1e9)
	return time.Unix(int64(whole), int64(ns)).In(loc)
}

// EpochSeconds returns t as seconds since the Unix epoch.
func EpochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Floor rounds t down to a multiple of n units, on the wall clock of
// t's location. Sub-day units are multiples from midnight (or from
// the start of the second, for Microseconds and Milliseconds). Days
// are multiples from the 1st of the month, months from January, and
// years from year 0.
func Floor(t time.Time, u Unit, n int) time.Time {
	if n < 1 {
		n = 1
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond()
	loc := t.Location()

	switch u {
	case Microseconds:
		step := 1000 * n
		ns = ns / step * step
	case Milliseconds:
		step := 1000000 * n
		ns = ns / step * step
	case Seconds:
		sod := (h*3600 + mi*60 + s) / n * n
		h, mi, s, ns = 0, 0, sod, 0
	case Minutes:
		mod := (h*60 + mi) / n * n
		h, mi, s, ns = 0, mod, 0, 0
	case Hours:
		h, mi, s, ns = h/n*n, 0, 0, 0
	case Days, DayOfMonth:
		d = 1 + (d-1)/n*n
		h, mi, s, ns = 0, 0, 0, 0
	case MonthOfYear:
		mo = time.Month(1 + (int(mo)-1)/n*n)
		d, h, mi, s, ns = 1, 0, 0, 0, 0
	case Years:
		y = y / n * n
		mo, d, h, mi, s, ns = time.January, 1, 0, 0, 0, 0
	}
	return time.Date(y, mo, d, h, mi, s, ns, loc)
}

// next returns the multiple of n units after t, which must already
// be a multiple.
func next(t time.Time, u Unit, n int) time.Time {
	var t2 time.Time
	switch u {
	case Days, DayOfMonth:
		t2 = t.AddDate(0, 0, n)
	case MonthOfYear:
		t2 = t.AddDate(0, n, 0)
	case Years:
		t2 = t.AddDate(n, 0, 0)
	default:
		t2 = t.Add(time.Duration(float64(n) * u.Seconds() * 1e9))
	}
	t2 = Floor(t2, u, n)
	if !t2.After(t) {
		// A repeated wall-clock hour at a DST change.
		t2 = t.Add(time.Duration(float64(n) * u.Seconds() * 1e9))
	}
	return t2
}

// maxRange bounds the length of TRange's result.
const maxRange = 1 << 20

// TRange returns the multiples of n units (see Floor) in
// [start, end], in start's location.
func TRange(start, end time.Time, u Unit, n int) []time.Time {
	if n < 1 {
		n = 1
	}
	end = end.In(start.Location())
	t := Floor(start, u, n)
	if t.Before(start) {
		t = next(t, u, n)
	}
	var out []time.Time
	for !t.After(end) && len(out) < maxRange {
		out = append(out, t)
		t = next(t, u, n)
	}
	return out
}
