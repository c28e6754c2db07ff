// Package dateshift moves ISO-8601 dates and date-times by whole calendar
// days while keeping the textual shape of the input.
//
// A value parsed from "2024-01-15" formats back as a date, a value parsed
// from "2024-01-15 10:30:00.250+05:30" keeps its separator, fraction digits
// and offset. Days are added on the calendar (time.Time.AddDate) in a fixed
// offset location, so the wall clock never drifts.
package dateshift

import (
	"strings"
	"time"
)

const (
	minYear = 1
	maxYear = 9999

	// MaxOffsetDays is the number of days between 0001-01-01 and 9999-12-31.
	// Any larger offset cannot produce a representable result.
	MaxOffsetDays = 3652058
)

// Value is a parsed ISO-8601 date or date-time together with the layout
// it was written in.
type Value struct {
	t        time.Time
	layout   string
	dateOnly bool
}

// Parse parses s as an ISO-8601 date or date-time. Surrounding whitespace
// is not trimmed here; see Shift.
func Parse(s string) (Value, error) {
	if s == "" {
		return Value{}, &ParseError{Input: s, Err: ErrEmpty}
	}

	layout, dateOnly, ok := detectLayout(s)
	if !ok {
		return Value{}, &ParseError{Input: s, Err: ErrNotISO8601}
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return Value{}, &ParseError{Input: s, Err: err}
	}
	if t.Year() < minYear {
		return Value{}, &ParseError{Input: s, Err: ErrYearZero}
	}

	// time.Parse may attach time.Local when the offset matches it; pin the
	// offset so AddDate cannot pick up a DST transition.
	_, offset := t.Zone()
	t = t.In(time.FixedZone("", offset))

	return Value{t: t, layout: layout, dateOnly: dateOnly}, nil
}

// AddDays returns v moved by n calendar days.
func (v Value) AddDays(n int) Value {
	v.t = v.t.AddDate(0, 0, n)
	return v
}

// String formats v in the layout it was parsed from.
func (v Value) String() string {
	return v.t.Format(v.layout)
}

func (v Value) inRange() bool {
	y := v.t.Year()
	return y >= minYear && y <= maxYear
}

// Shift trims line, parses it, adds offsetDays calendar days and formats
// the result with the same components as the input. The result carries
// no trailing newline.
func Shift(line string, offsetDays int) (string, error) {
	s := strings.TrimSpace(line)

	v, err := Parse(s)
	if err != nil {
		return "", err
	}

	if offsetDays > MaxOffsetDays || offsetDays < -MaxOffsetDays {
		return "", &RangeError{Input: s, Offset: offsetDays}
	}
	shifted := v.AddDays(offsetDays)
	if !shifted.inRange() {
		return "", &RangeError{Input: s, Offset: offsetDays}
	}
	return shifted.String(), nil
}
