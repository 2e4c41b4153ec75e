// Package countdown computes the remaining time to an event in a
// selectable display unit. All functions are pure: callers re-sample
// the current instant on every tick and pass it in.
package countdown

import "time"

// Unit is a display unit for a remaining-time quantity.
type Unit int

const (
	Days Unit = iota
	Hours
	Minutes
	Seconds
)

// Label returns the lowercase display label for the unit.
func (u Unit) Label() string {
	switch u {
	case Days:
		return "days"
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return "unknown"
	}
}

// Next cycles to the following unit, wrapping from seconds back to days.
func (u Unit) Next() Unit {
	switch u {
	case Days:
		return Hours
	case Hours:
		return Minutes
	case Minutes:
		return Seconds
	default:
		return Days
	}
}

// Remaining returns the floor-truncated difference between target and
// now in the requested unit. The raw value may be negative when the
// target has passed; clamping is a presentation concern.
func Remaining(target, now time.Time, unit Unit) int64 {
	d := target.Sub(now)
	switch unit {
	case Days:
		return int64(d / (24 * time.Hour))
	case Hours:
		return int64(d / time.Hour)
	case Minutes:
		return int64(d / time.Minute)
	default:
		return int64(d / time.Second)
	}
}

// DisplayRemaining clamps Remaining at zero for rendering. expired is
// true when the target is at or before now; callers render a "passed"
// state instead of a count.
func DisplayRemaining(target, now time.Time, unit Unit) (value int64, expired bool) {
	if !target.After(now) {
		return 0, true
	}
	v := Remaining(target, now, unit)
	if v < 0 {
		v = 0
	}
	return v, false
}

// Compact returns the remaining quantity in an auto-selected unit for
// list rows. The selection order is a fixed tie-break table, kept in
// sync with the detail view for consistent display:
//
//	more than 7 days out  -> days
//	at least 1 day out    -> hours
//	12 or more hours out  -> minutes
//	any time left at all  -> seconds
//	otherwise             -> expired
func Compact(target, now time.Time) (value int64, unit Unit, expired bool) {
	days := Remaining(target, now, Days)
	if days > 7 {
		return days, Days, false
	}
	if days >= 1 {
		return Remaining(target, now, Hours), Hours, false
	}
	if Remaining(target, now, Hours) >= 12 {
		return Remaining(target, now, Minutes), Minutes, false
	}
	if secs := Remaining(target, now, Seconds); secs > 0 {
		return secs, Seconds, false
	}
	return 0, Seconds, true
}
