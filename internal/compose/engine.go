package compose

import (
	"strconv"
	"time"
)

// DigitsMode selects how numeric fields are rendered.
type DigitsMode int

const (
	// DigitsNumeric renders values at natural width ("7").
	DigitsNumeric DigitsMode = iota
	// Digits2 zero-pads values to the field width ("07").
	Digits2
)

// Date arithmetic over a single local wall-clock instant. All functions are
// pure; none of them clamps beyond what is documented.

// Get extracts one unit from date. Months are zero-based (0-11) even though
// they display one-based; AmPm yields 0 for the am half and 1 for pm.
func Get(date time.Time, u Unit) int {
	switch u {
	case Days:
		return date.Day()
	case Months:
		return int(date.Month()) - 1
	case Years:
		return date.Year()
	case Hours:
		return date.Hour()
	case Minutes:
		return date.Minute()
	case Seconds:
		return date.Second()
	case AmPm:
		if date.Hour() >= 12 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Set replaces one unit of date with v and returns the result. It does not
// clamp: setting day 31 in February normalizes per time.Date, so callers
// pre-clamp (day against DaysInMonth) when that matters.
func Set(date time.Time, u Unit, v int) time.Time {
	y, mo, d := date.Date()
	h, mi, s := date.Clock()
	ns := date.Nanosecond()
	switch u {
	case Days:
		d = v
	case Months:
		mo = time.Month(v + 1)
	case Years:
		y = v
	case Hours:
		h = v
	case Minutes:
		mi = v
	case Seconds:
		s = v
	case AmPm:
		if v == 1 && h < 12 {
			h += 12
		}
		if v == 0 && h >= 12 {
			h -= 12
		}
	}
	return time.Date(y, mo, d, h, mi, s, ns, date.Location())
}

// Add steps date by delta units with standard carry into neighbors
// (seconds past 59 roll the minute, month past December rolls the year).
// AmPm steps in half-day increments.
func Add(date time.Time, u Unit, delta int) time.Time {
	switch u {
	case Days:
		return date.AddDate(0, 0, delta)
	case Months:
		return date.AddDate(0, delta, 0)
	case Years:
		return date.AddDate(delta, 0, 0)
	case Hours:
		return date.Add(time.Duration(delta) * time.Hour)
	case Minutes:
		return date.Add(time.Duration(delta) * time.Minute)
	case Seconds:
		return date.Add(time.Duration(delta) * time.Second)
	case AmPm:
		return date.Add(time.Duration(delta) * 12 * time.Hour)
	default:
		return date
	}
}

// DaysInMonth reports the calendar-correct day count of date's month,
// including leap-year February.
func DaysInMonth(date time.Time) int {
	// Day 0 of next month is the last day of this month.
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}

func clampDay(date time.Time, d int) int {
	if d < 1 {
		return 1
	}
	if max := DaysInMonth(date); d > max {
		return max
	}
	return d
}

// ToggleAmPm shifts the hour across the am/pm boundary without touching any
// other unit. The minute, second and day are preserved.
func ToggleAmPm(date time.Time) time.Time {
	if date.Hour() >= 12 {
		return Set(date, Hours, date.Hour()-12)
	}
	return Set(date, Hours, date.Hour()+12)
}

// ForceAmPm moves date into the requested half (pm=true for the pm half).
// A date already in that half is returned unchanged.
func ForceAmPm(date time.Time, pm bool) time.Time {
	if pm == (date.Hour() >= 12) {
		return date
	}
	return ToggleAmPm(date)
}

// Format renders one unit as display text. Months render one-based; with
// hour12 the hour renders 1-12 (never 0-11); years always render 4 digits.
func Format(date time.Time, u Unit, hour12 bool, digits DigitsMode) string {
	switch u {
	case AmPm:
		if date.Hour() >= 12 {
			return "PM"
		}
		return "AM"
	case Years:
		return pad(date.Year(), 4)
	}

	v := Get(date, u)
	if u == Months {
		v++
	}
	if u == Hours && hour12 {
		v = v % 12
		if v == 0 {
			v = 12
		}
	}
	if digits == Digits2 {
		return pad(v, 2)
	}
	return strconv.Itoa(v)
}

func pad(n, width int) string {
	if n < 0 {
		n = 0
	}
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// SameSecond reports whether a and b denote the same instant at second
// resolution; sub-second differences are ignored.
func SameSecond(a, b time.Time) bool {
	return a.Truncate(time.Second).Equal(b.Truncate(time.Second))
}
