// Package interval holds half-open time interval helpers shared by the
// reservation validator, the availability projector and the statistics
// aggregator.
package interval

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any instant.
// Touching intervals (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapDuration returns the length of the intersection, or zero when the
// intervals are disjoint.
func OverlapDuration(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// Contains reports whether t lies within [start, end], both ends inclusive.
func Contains(start, end, t time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// MinuteIsQuarterAligned reports whether t falls on :00, :15, :30 or :45.
// Seconds are not inspected.
func MinuteIsQuarterAligned(t time.Time) bool {
	return t.Minute()%15 == 0
}

// DayBounds returns the first and last representable instant of the calendar
// day containing t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, 999999000, t.Location())
	return start, end
}
