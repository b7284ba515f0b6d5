package compose

import "time"

// Unit identifies one editable part of a composite date/time value.
type Unit int

const (
	Days Unit = iota
	Months
	Years
	Hours
	Minutes
	Seconds
	AmPm
)

func (u Unit) String() string {
	switch u {
	case Days:
		return "days"
	case Months:
		return "months"
	case Years:
		return "years"
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	case AmPm:
		return "am/pm"
	default:
		return "unknown"
	}
}

// DisplayWidth is the number of character cells a field of this unit renders in.
func (u Unit) DisplayWidth() int {
	if u == Years {
		return 4
	}
	return 2
}

// maxBufferLen is how many digits a field accepts before it must commit.
// Years is the only 4-digit field; am/pm takes no digits at all.
func (u Unit) maxBufferLen() int {
	switch u {
	case Years:
		return 4
	case AmPm:
		return 0
	default:
		return 2
	}
}

// commitThreshold returns the largest leading digit that can still begin a
// valid two-digit value for this unit; any first digit above it commits
// immediately. A negative threshold means the unit never commits on one digit
// (years wait for four digits, am/pm is letter-keyed).
func (u Unit) commitThreshold(hour12 bool) int {
	switch u {
	case Days:
		return 3 // 4-9 cannot start a valid day-of-month
	case Months:
		return 1 // 2-9 cannot start a valid month
	case Hours:
		if hour12 {
			return 1 // only 1 can begin 10-12
		}
		return 2 // 1x and 2x continue to 10-23
	case Minutes, Seconds:
		return 5
	default:
		return -1
	}
}

// unitRange reports the inclusive value range of a unit at the given date.
// Days depends on the date's month; years and am/pm have no natural period
// and report ok=false.
func unitRange(date time.Time, u Unit) (lo, hi int, ok bool) {
	switch u {
	case Days:
		return 1, DaysInMonth(date), true
	case Months:
		return 0, 11, true
	case Hours:
		return 0, 23, true
	case Minutes, Seconds:
		return 0, 59, true
	default:
		return 0, 0, false
	}
}
