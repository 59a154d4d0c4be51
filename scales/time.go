// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"sort"
	"time"
)

// TimeScale places ticks on epoch-second intervals at calendar
// boundaries.
//
// For arithmetic units (Microseconds through Days, and Years), ticks
// fall every Step units, aligned as by Floor. For DayOfMonth and
// MonthOfYear, ticks fall at midnight on each of the days of the
// month (or on the 1st of each of the months of the year) in Vals.
type TimeScale struct {
	Unit Unit
	Step int
	Vals []int

	// Location is the time zone whose calendar the ticks follow.
	// If nil, UTC.
	Location *time.Location

	// Formatter formats labels. If nil, a TimeFormatter for the
	// scale's resolution and location is used.
	Formatter Formatter
}

// NewTimeScale returns a time scale in unit u. For an arithmetic
// unit, vals[0] is the step (default 1). For a calendar unit, vals
// lists the days or months (default the 1st).
func NewTimeScale(u Unit, vals ...int) *TimeScale {
	s := &TimeScale{Unit: u, Step: 1}
	if u.calendar() {
		s.Vals = append([]int(nil), vals...)
		sort.Ints(s.Vals)
		if len(s.Vals) == 0 {
			s.Vals = []int{1}
		}
	} else if len(vals) > 0 && vals[0] > 0 {
		s.Step = vals[0]
	}
	return s
}

// ParseTimeScale is like NewTimeScale, but takes the unit by name.
func ParseTimeScale(unit string, vals ...int) (*TimeScale, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	return NewTimeScale(u, vals...), nil
}

func (s *TimeScale) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *TimeScale) step() int {
	if s.Step < 1 {
		return 1
	}
	return s.Step
}

// Resolution returns the approximate spacing of the ticks in seconds.
func (s *TimeScale) Resolution() float64 {
	if s.Unit.calendar() {
		n := len(s.Vals)
		if n == 0 {
			n = 1
		}
		return s.Unit.Seconds() / float64(n)
	}
	return float64(s.step()) * s.Unit.Seconds()
}

func (s *TimeScale) NumTicks(start, end float64, desired int) float64 {
	return math.Abs(end-start) / s.Resolution()
}

func (s *TimeScale) Ticks(start, end float64, desired int) []float64 {
	if start == end || math.IsNaN(start) || math.IsNaN(end) {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	if s.NumTicks(start, end, desired) > maxTicks {
		return nil
	}
	switch {
	case s.Unit.calendar():
		return s.calendarTicks(start, end)
	case s.Unit == Microseconds || s.Unit == Milliseconds:
		// Sub-second ticks do not depend on the calendar.
		return Fixed{Resolution: s.Resolution()}.Ticks(start, end, 0)
	}
	ts := TRange(SafeTime(start, s.loc()), SafeTime(end, s.loc()), s.Unit, s.step())
	ticks := make([]float64, len(ts))
	for i, t := range ts {
		ticks[i] = EpochSeconds(t)
	}
	return ticks
}

func (s *TimeScale) calendarTicks(start, end float64) []float64 {
	loc := s.loc()
	st, en := SafeTime(start, loc), SafeTime(end, loc)
	vals := s.Vals
	if len(vals) == 0 {
		vals = []int{1}
	}

	var ticks []float64
	add := func(t time.Time) {
		if !t.Before(st) && !t.After(en) {
			ticks = append(ticks, EpochSeconds(t))
		}
	}
	switch s.Unit {
	case DayOfMonth:
		for m := time.Date(st.Year(), st.Month(), 1, 0, 0, 0, 0, loc); !m.After(en); m = m.AddDate(0, 1, 0) {
			days := time.Date(m.Year(), m.Month()+1, 0, 0, 0, 0, 0, loc).Day()
			for _, d := range vals {
				if 1 <= d && d <= days {
					add(time.Date(m.Year(), m.Month(), d, 0, 0, 0, 0, loc))
				}
			}
		}
	case MonthOfYear:
		for y := st.Year(); y <= en.Year(); y++ {
			for _, mo := range vals {
				if 1 <= mo && mo <= 12 {
					add(time.Date(y, time.Month(mo), 1, 0, 0, 0, 0, loc))
				}
			}
		}
	}
	return ticks
}

func (s *TimeScale) formatter() Formatter {
	if s.Formatter != nil {
		return s.Formatter
	}
	return TimeFormatter{Resolution: s.Resolution(), Location: s.Location}
}

func (s *TimeScale) Labels(start, end float64, numLabels int, charWidth float64) []Label {
	return labels(s.Ticks(start, end, numLabels), s.formatter(), numLabels, charWidth)
}

func (s *TimeScale) LabelWidth(start, end float64, numLabels int, charWidth float64) (int, float64) {
	return estimateWidth(s.NumTicks(start, end, numLabels), s.formatter(), start, end, numLabels, charWidth)
}

// YearScale places ticks on January 1st of nice-numbered years.
type YearScale struct {
	Location  *time.Location
	Formatter Formatter
}

func (s YearScale) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s YearScale) Ticks(start, end float64, desired int) []float64 {
	if start == end || math.IsNaN(start) || math.IsNaN(end) {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	loc := s.loc()
	st, en := SafeTime(start, loc), SafeTime(end, loc)
	var ticks []float64
	for _, y := range (Default{}).Ticks(float64(st.Year()), float64(en.Year()), desired) {
		if y != math.Trunc(y) {
			continue
		}
		t := time.Date(int(y), time.January, 1, 0, 0, 0, 0, loc)
		if !t.Before(st) && !t.After(en) {
			ticks = append(ticks, EpochSeconds(t))
		}
	}
	return ticks
}

func (s YearScale) NumTicks(start, end float64, desired int) float64 {
	return float64(len(s.Ticks(start, end, desired)))
}

func (s YearScale) formatter() Formatter {
	if s.Formatter != nil {
		return s.Formatter
	}
	return TimeFormatter{Resolution: Years.Seconds(), Location: s.Location}
}

func (s YearScale) Labels(start, end float64, numLabels int, charWidth float64) []Label {
	return labels(s.Ticks(start, end, numLabels), s.formatter(), numLabels, charWidth)
}

func (s YearScale) LabelWidth(start, end float64, numLabels int, charWidth float64) (int, float64) {
	return estimateWidth(s.NumTicks(start, end, numLabels), s.formatter(), start, end, numLabels, charWidth)
}

// HMSScales returns the sub-day time scales of a calendar system.
func HMSScales(loc *time.Location) []Scale {
	var ss []Scale
	add := func(u Unit, steps ...int) {
		for _, n := range steps {
			ts := NewTimeScale(u, n)
			ts.Location = loc
			ss = append(ss, ts)
		}
	}
	add(Microseconds, 1, 5, 10, 50, 100, 500)
	add(Milliseconds, 1, 5, 10, 50, 100, 500)
	add(Seconds, 1, 5, 15, 30)
	add(Minutes, 1, 5, 15, 30)
	add(Hours, 1, 2, 3, 6, 12)
	return ss
}

// MDYScales returns the day, month and year scales of a calendar
// system.
func MDYScales(loc *time.Location) []Scale {
	var ss []Scale
	add := func(u Unit, vals ...int) {
		ts := NewTimeScale(u, vals...)
		ts.Location = loc
		ss = append(ss, ts)
	}
	add(Days, 1)
	add(DayOfMonth, 1, 8, 15, 22)
	add(DayOfMonth, 1, 15)
	add(MonthOfYear, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	add(MonthOfYear, 1, 4, 7, 10)
	add(MonthOfYear, 1, 7)
	return append(ss, YearScale{Location: loc})
}

// NewCalendarSystem returns a System of time scales from
// microseconds to years, following the calendar of loc (UTC if nil).
func NewCalendarSystem(loc *time.Location) *System {
	ss := append(HMSScales(loc), MDYScales(loc)...)
	return &System{Scales: ss, Default: Default{}, FillRatio: DefaultFillRatio}
}
