package compose

import "time"

// Bound is a min/max limit for the composite. A bound is either an absolute
// instant or the "current instant" sentinel, which is re-resolved against the
// wall clock at every validation, never captured early.
type Bound struct {
	at  time.Time
	now bool
}

// At bounds the composite by an absolute instant.
func At(t time.Time) *Bound { return &Bound{at: t} }

// Now bounds the composite by the current instant, re-resolved at each check.
func Now() *Bound { return &Bound{now: true} }

func (b *Bound) resolve(now func() time.Time) time.Time {
	if b.now {
		return now()
	}
	return b.at
}

// Options configure a Composer. They are mutable for the composer's lifetime
// through the composer's setter methods, which apply the required side
// effects (display resync, revalidation) inline.
type Options struct {
	// Min and Max clamp every candidate composite; nil means unbounded.
	Min *Bound
	Max *Bound

	// Hour12 renders and steps the hour on a 12-hour clock with an am/pm
	// field; off means a 24-hour clock.
	Hour12 bool

	// Digits selects zero-padded or natural-width field rendering.
	Digits DigitsMode

	// WrapAround makes Up/Down step a field within its own range without
	// carrying into neighbors, even when the composite is complete.
	WrapAround bool

	// SnapToStep rounds stepping onto multiples of the field's step size
	// instead of moving by a flat ±step.
	SnapToStep bool

	// WheelControl enables stepping from mouse-wheel events.
	WheelControl bool

	// DisallowPartial keeps every field committed at all times: fields can
	// never be cleared back to unset and the first Up/Down on a field
	// performs a real step rather than revealing the default.
	DisallowPartial bool

	// Steps holds per-unit step sizes for Up/Down/wheel; absent units step
	// by 1.
	Steps map[Unit]int
}

func (o Options) stepFor(u Unit) int {
	if s, ok := o.Steps[u]; ok && s > 0 {
		return s
	}
	return 1
}
