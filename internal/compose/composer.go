package compose

import (
	"strconv"
	"time"
)

// Composer owns the composite timestamp and orchestrates everything around
// it: field registration, keystroke disambiguation, validation against
// min/max, stepping, and change notification. All methods must be called from
// a single logical owner (one event-loop turn at a time); the composer does
// no locking of its own.
type Composer struct {
	reg  Registry
	opts Options

	// Wall clock, swapped out in tests. Min/max "now" bounds resolve
	// against it at validation time, never earlier.
	now func() time.Time

	ts      time.Time
	hasTS   bool
	prevTS  time.Time
	hasPrev bool

	focused    Unit
	hasFocused bool

	subs []func(time.Time, bool)
}

// New creates an empty composer; every field starts unset.
func New(opts Options) *Composer {
	return &Composer{opts: opts, now: time.Now}
}

// NewAt creates a composer seeded with an initial composite. Fields
// registered afterwards come up committed to it.
func NewAt(initial time.Time, opts Options) *Composer {
	c := New(opts)
	c.ts = initial
	c.hasTS = true
	return c
}

// OnChange subscribes to composite changes. The callback receives the new
// instant, or ok=false when the composite was cleared. It fires only for
// complete composites (and for clears); partial edits update silently.
func (c *Composer) OnChange(fn func(date time.Time, ok bool)) {
	c.subs = append(c.subs, fn)
}

func (c *Composer) notify(t time.Time, ok bool) {
	for _, fn := range c.subs {
		fn(t, ok)
	}
}

// Date returns the composite instant. It reports ok=false until every
// registered field holds a committed value.
func (c *Composer) Date() (time.Time, bool) {
	if !c.hasTS || !c.IsCompleted() {
		return time.Time{}, false
	}
	return c.ts, true
}

// IsCompleted reports whether every registered field has a committed value.
func (c *Composer) IsCompleted() bool {
	for _, f := range c.reg.Fields() {
		if f.unset {
			return false
		}
	}
	return true
}

// Fields exposes the registry's visual order (read-only).
func (c *Composer) Fields() []*Field { return c.reg.Fields() }

// Lookup returns the field for unit, or nil.
func (c *Composer) Lookup(unit Unit) *Field { return c.reg.Lookup(unit) }

// Options returns the current option set.
func (c *Composer) Options() Options { return c.opts }

// RegisterField binds a port to a unit. Units are unique per composer;
// re-registering rebinds the port. A seeded composite shows up in the new
// field immediately; under strict mode a fresh field commits the working
// date instead of starting unset, so digit fields always hold a committed
// value. The autofocus hint is consumed here, once.
func (c *Composer) RegisterField(port Port, unit Unit, autofocus bool) {
	f := c.reg.Add(unit, port)
	if !c.hasTS && c.opts.DisallowPartial {
		f.unset = false
		c.setComposite(c.base())
	}
	if c.hasTS {
		f.unset = false
		port.Write(Format(c.ts, unit, c.opts.Hour12, c.opts.Digits))
	}
	if autofocus {
		c.focusField(f)
	}
}

// DeregisterField removes a unit's field. Unknown units are a no-op.
func (c *Composer) DeregisterField(unit Unit) { c.reg.Remove(unit) }

// Reorder re-sorts fields to the given visual order.
func (c *Composer) Reorder(order []Unit) { c.reg.Reorder(order) }

// SetDate replaces the whole composite from outside, committing every field.
func (c *Composer) SetDate(t time.Time) {
	for _, f := range c.reg.Fields() {
		f.unset = false
		f.resetEntry()
	}
	c.setComposite(t)
	c.syncPorts()
}

// ClearDate unsets the whole composite and notifies subscribers with
// "no date" unconditionally.
func (c *Composer) ClearDate() {
	for _, f := range c.reg.Fields() {
		f.unset = true
		f.resetEntry()
		f.port.Write("")
	}
	c.clearComposite()
}

// Resync re-renders every committed field from the composite using the
// current hour12/digits options. Pending buffers are left alone.
func (c *Composer) Resync() { c.syncPorts() }

// --- options setters (side effects applied inline) ---

func (c *Composer) SetHour12(v bool) {
	c.opts.Hour12 = v
	c.syncPorts()
}

func (c *Composer) SetDigits(v DigitsMode) {
	c.opts.Digits = v
	c.syncPorts()
}

func (c *Composer) SetMinDate(b *Bound) {
	c.opts.Min = b
	c.revalidate()
}

func (c *Composer) SetMaxDate(b *Bound) {
	c.opts.Max = b
	c.revalidate()
}

func (c *Composer) SetWrapAround(v bool)   { c.opts.WrapAround = v }
func (c *Composer) SetSnapToStep(v bool)   { c.opts.SnapToStep = v }
func (c *Composer) SetWheelControl(v bool) { c.opts.WheelControl = v }

// SetDisallowPartial toggles strict mode. Enabling it commits the current
// working date into every unset field so the invariant "digit fields always
// hold a committed value" holds from this point on.
func (c *Composer) SetDisallowPartial(v bool) {
	c.opts.DisallowPartial = v
	if !v {
		return
	}
	base := c.base()
	dirty := false
	for _, f := range c.reg.Fields() {
		if f.unset {
			f.unset = false
			f.resetEntry()
			dirty = true
		}
	}
	if dirty {
		c.setComposite(base)
		c.syncPorts()
	}
}

// --- focus ---

// FocusNext moves focus from unit by offset fields and reports whether it
// moved. wrap keeps navigation inside the widget; without wrap an
// out-of-bounds target reports false so the caller can hand off to default
// navigation. Any pending buffer on the old field is flushed first.
func (c *Composer) FocusNext(unit Unit, offset int, wrap bool) bool {
	nav := Navigator{reg: &c.reg}
	f := nav.target(unit, offset, wrap)
	if f == nil {
		return false
	}
	c.focusField(f)
	return true
}

// FocusField focuses the field at visual index i; out of bounds is a no-op.
func (c *Composer) FocusField(i int) bool {
	f := c.reg.At(i)
	if f == nil {
		return false
	}
	c.focusField(f)
	return true
}

// FocusFirst implements root-level focus delegation: when the whole group
// gains focus, the first unset field (else the first field) takes it.
func (c *Composer) FocusFirst() bool {
	for _, f := range c.reg.Fields() {
		if f.unset {
			c.focusField(f)
			return true
		}
	}
	return c.FocusField(0)
}

// FocusIn records that unit gained focus through the embedding layer (click,
// programmatic focus). Cursor state is scoped to the focused field: any other
// field's pending entry is flushed and every cursor resets.
func (c *Composer) FocusIn(unit Unit) {
	f := c.reg.Lookup(unit)
	if f == nil {
		return
	}
	if c.hasFocused && c.focused != unit {
		c.flushPending()
	}
	for _, other := range c.reg.Fields() {
		if other != f {
			other.resetEntry()
		}
	}
	c.focused = unit
	c.hasFocused = true
}

// FocusOut returns a finalize action for the field losing focus. The
// embedding layer invokes it once it knows where focus landed; it flushes a
// still-buffered intermediate value into a committed one. Idempotent:
// invoking it after the field already committed is a no-op.
func (c *Composer) FocusOut(unit Unit) func() {
	f := c.reg.Lookup(unit)
	if f == nil {
		return func() {}
	}
	return func() { c.finalizeField(f) }
}

func (c *Composer) focusField(f *Field) {
	c.flushPending()
	for _, other := range c.reg.Fields() {
		if other != f {
			other.resetEntry()
		}
	}
	c.focused = f.unit
	c.hasFocused = true
	f.port.Focus()
}

func (c *Composer) flushPending() {
	if !c.hasFocused {
		return
	}
	if f := c.reg.Lookup(c.focused); f != nil {
		c.finalizeField(f)
	}
}

// finalizeField commits whatever is buffered on f, years included: on blur
// the entered digits are the final value even when fewer than four.
func (c *Composer) finalizeField(f *Field) {
	if f.cursor == 0 || f.buf == "" {
		return
	}
	v, err := strconv.Atoi(f.buf)
	if err != nil {
		f.resetEntry()
		return
	}
	c.commitField(f, c.clampEntry(f.unit, v))
}

// --- input events ---

// Digit feeds one numeric keystroke into unit's field. See the
// disambiguation rules on commitThreshold: a first digit that cannot begin a
// valid two-digit value commits at once and advances focus; otherwise the
// digit is buffered until the field's width is reached.
func (c *Composer) Digit(unit Unit, d int) {
	f := c.reg.Lookup(unit)
	if f == nil || d < 0 || d > 9 || unit == AmPm {
		return
	}

	if f.cursor == 0 {
		f.buf = strconv.Itoa(d)
		if th := unit.commitThreshold(c.opts.Hour12); th >= 0 && d > th {
			c.commitField(f, c.clampEntry(unit, d))
			c.advance(f)
			return
		}
		f.cursor = 1
		f.port.Write(f.buf)
		return
	}

	f.buf += strconv.Itoa(d)
	f.cursor++
	if f.cursor < f.unit.maxBufferLen() {
		// Years keep collecting: length is the sole commit signal.
		f.port.Write(f.buf)
		return
	}
	v, err := strconv.Atoi(f.buf)
	if err != nil {
		f.resetEntry()
		return
	}
	c.commitField(f, c.clampEntry(unit, v))
	c.advance(f)
}

// Letter handles the am/pm field's letter keys: 'a' forces the am half,
// 'p' the pm half, bypassing the numeric path entirely.
func (c *Composer) Letter(unit Unit, r rune) {
	f := c.reg.Lookup(unit)
	if f == nil || unit != AmPm {
		return
	}
	var pm bool
	switch r {
	case 'a', 'A':
		pm = false
	case 'p', 'P':
		pm = true
	default:
		return
	}
	f.unset = false
	c.setComposite(ForceAmPm(c.base(), pm))
	c.syncPorts()
	c.advance(f)
}

// ArrowUp steps unit's field up by one step.
func (c *Composer) ArrowUp(unit Unit) { c.step(unit, 1) }

// ArrowDown steps unit's field down by one step.
func (c *Composer) ArrowDown(unit Unit) { c.step(unit, -1) }

// Wheel steps from a mouse-wheel event; sign > 0 increments. Ignored unless
// wheel control is enabled.
func (c *Composer) Wheel(unit Unit, sign int) {
	if !c.opts.WheelControl || sign == 0 {
		return
	}
	if sign > 0 {
		c.step(unit, 1)
	} else {
		c.step(unit, -1)
	}
}

// Backspace trims the last buffered digit, or clears the whole committed
// value when no buffer is active. An emptied field goes unset and the
// composite's timestamp is cleared (remembered for re-entry). Strict mode
// makes this a no-op.
func (c *Composer) Backspace(unit Unit) {
	f := c.reg.Lookup(unit)
	if f == nil || c.opts.DisallowPartial {
		return
	}
	if f.cursor > 0 {
		f.buf = f.buf[:len(f.buf)-1]
		f.cursor--
		if f.cursor > 0 {
			f.port.Write(f.buf)
			return
		}
		f.buf = ""
	} else if f.unset {
		return
	}
	f.unset = true
	f.resetEntry()
	f.port.Write("")
	c.clearComposite()
}

// Delete immediately unsets the field, digit and am/pm fields alike, under
// the same strict-mode guard as Backspace.
func (c *Composer) Delete(unit Unit) {
	f := c.reg.Lookup(unit)
	if f == nil || c.opts.DisallowPartial || f.unset {
		return
	}
	f.unset = true
	f.resetEntry()
	f.port.Write("")
	c.clearComposite()
}

// Tab moves focus without wrapping so the widget boundary hands navigation
// back to the host. Reports whether focus moved.
func (c *Composer) Tab(unit Unit, shift bool) bool {
	offset := 1
	if shift {
		offset = -1
	}
	return c.FocusNext(unit, offset, false)
}

// --- stepping ---

func (c *Composer) step(unit Unit, dir int) {
	f := c.reg.Lookup(unit)
	if f == nil {
		return
	}
	// Up/Down implicitly commit any pending buffer before stepping.
	c.finalizeField(f)

	base := c.base()
	if f.unset && !c.opts.DisallowPartial {
		// First press on an unset field reveals the working value
		// instead of advancing it.
		f.unset = false
		c.setComposite(base)
		c.syncPorts()
		return
	}
	f.unset = false

	step := c.opts.stepFor(unit)
	delta := dir * step
	if c.opts.SnapToStep {
		delta = snapDelta(Get(base, unit), step, dir)
	}

	var next time.Time
	if c.opts.WrapAround || !c.IsCompleted() {
		// A partial composite must never carry across an undefined
		// neighbor, so wrap stepping is mandatory while incomplete.
		next = wrapUnit(base, unit, delta)
	} else {
		next = Add(base, unit, delta)
	}
	c.setComposite(next)
	c.syncPorts()
}

// snapDelta rounds onto the step grid: up to the next multiple above the
// current value, down to the next multiple below it. Near a field bound the
// grid target can exceed the period, so an increment under wrap stepping
// lands below the current value instead of carrying.
func snapDelta(v, step, dir int) int {
	if dir > 0 {
		return (floorDiv(v, step)+1)*step - v
	}
	return (ceilDiv(v, step)-1)*step - v
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int { return -floorDiv(-a, b) }

// wrapUnit steps unit within its own range, wrapping at the boundary without
// touching neighbors. Years and am/pm have no natural period; they delegate
// to whole-year addition.
func wrapUnit(base time.Time, unit Unit, delta int) time.Time {
	lo, hi, ok := unitRange(base, unit)
	if !ok {
		return Add(base, Years, delta)
	}
	period := hi - lo + 1
	v := Get(base, unit)
	nv := lo + mod(v-lo+delta, period)
	return setUnitClamped(base, unit, nv)
}

func mod(a, b int) int { return ((a % b) + b) % b }

// --- commit / validation ---

// clampEntry clamps a display-space entered value into the unit's valid
// range. Out-of-range input is never rejected, only clamped.
func (c *Composer) clampEntry(unit Unit, v int) int {
	base := c.base()
	switch unit {
	case Days:
		return clampInt(v, 1, DaysInMonth(base))
	case Months:
		return clampInt(v, 1, 12)
	case Hours:
		if c.opts.Hour12 {
			return clampInt(v, 1, 12)
		}
		return clampInt(v, 0, 23)
	case Minutes, Seconds:
		return clampInt(v, 0, 59)
	case Years:
		return clampInt(v, 1, 9999)
	default:
		return v
	}
}

// commitField finalizes a display-space value v into the composite: months
// convert to the zero-based internal form, a 12-hour entry reconciles with
// the current am/pm half, and month/year commits pre-clamp the day so short
// months never overflow through Set.
func (c *Composer) commitField(f *Field, v int) {
	base := c.base()
	var next time.Time
	switch f.unit {
	case Months:
		next = setUnitClamped(base, Months, v-1)
	case Years:
		next = setUnitClamped(base, Years, v)
	case Hours:
		if c.opts.Hour12 {
			h := v % 12
			if Get(base, AmPm) == 1 {
				h += 12
			}
			next = Set(base, Hours, h)
		} else {
			next = Set(base, Hours, v)
		}
	default:
		next = Set(base, f.unit, v)
	}
	f.unset = false
	f.resetEntry()
	c.setComposite(next)
	c.syncPorts()
}

// setUnitClamped is Set with the day pre-clamped against the target
// month/year, so Jan 31 -> Feb lands on Feb 28/29 instead of normalizing
// into March.
func setUnitClamped(base time.Time, unit Unit, v int) time.Time {
	switch unit {
	case Months, Years:
		probe := Set(Set(base, Days, 1), unit, v)
		return Set(probe, Days, clampDay(probe, Get(base, Days)))
	case Days:
		return Set(base, Days, clampDay(base, v))
	default:
		return Set(base, unit, v)
	}
}

func (c *Composer) advance(f *Field) {
	// Stay put on the last field; completion is not a reason to wrap back.
	c.FocusNext(f.unit, 1, false)
}

// base is the working date edits compose against: the current composite,
// else the remembered previous composite, else the wall clock.
func (c *Composer) base() time.Time {
	if c.hasTS {
		return c.ts
	}
	if c.hasPrev {
		return c.prevTS
	}
	return c.now().Truncate(time.Second)
}

func (c *Composer) clamp(candidate time.Time) time.Time {
	if c.opts.Min != nil {
		if min := c.opts.Min.resolve(c.now); candidate.Before(min) {
			candidate = min
		}
	}
	if c.opts.Max != nil {
		if max := c.opts.Max.resolve(c.now); candidate.After(max) {
			candidate = max
		}
	}
	return candidate
}

// setComposite validates, clamps and stores a candidate composite.
// Min/max bounds resolve at this call ("now" means now, not construction
// time) and clamping always wins over the raw value. While incomplete, a
// candidate equal to the stored timestamp at second granularity is dropped
// to avoid partial churn; notification fires only once complete.
func (c *Composer) setComposite(candidate time.Time) {
	candidate = c.clamp(candidate)
	if !c.IsCompleted() && c.hasTS && SameSecond(candidate, c.ts) {
		return
	}
	c.ts = candidate
	c.hasTS = true
	c.hasPrev = false
	if c.IsCompleted() {
		c.notify(c.ts, true)
	}
}

// clearComposite drops the timestamp, remembering it so a partial re-entry
// can reuse its context, and notifies with "no date" unconditionally.
func (c *Composer) clearComposite() {
	if c.hasTS {
		c.prevTS = c.ts
		c.hasPrev = true
		c.hasTS = false
	}
	c.notify(time.Time{}, false)
}

// revalidate re-clamps the stored composite after a min/max change.
func (c *Composer) revalidate() {
	if !c.hasTS {
		return
	}
	clamped := c.clamp(c.ts)
	if SameSecond(clamped, c.ts) {
		return
	}
	c.ts = clamped
	if c.IsCompleted() {
		c.notify(c.ts, true)
	}
	c.syncPorts()
}

// syncPorts re-renders every committed field from the working date. Fields
// that are unset or mid-entry keep their current display.
func (c *Composer) syncPorts() {
	src := c.base()
	for _, f := range c.reg.Fields() {
		if f.unset || f.cursor > 0 {
			continue
		}
		f.port.Write(Format(src, f.unit, c.opts.Hour12, c.opts.Digits))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
