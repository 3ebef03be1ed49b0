package resource

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

func (t TimeOfDay) Hour() int         { return t.minutes / 60 }
func (t TimeOfDay) Minute() int       { return t.minutes % 60 }
func (t TimeOfDay) MinutesOfDay() int { return t.minutes }

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

type OpeningHours struct {
	open  TimeOfDay
	close TimeOfDay
}

func NewOpeningHours(open, close TimeOfDay) (OpeningHours, error) {
	if !open.Before(close) {
		return OpeningHours{}, ErrOpeningAfterClosing
	}
	return OpeningHours{open: open, close: close}, nil
}

func (h OpeningHours) Open() TimeOfDay  { return h.open }
func (h OpeningHours) Close() TimeOfDay { return h.close }

// Contains compares the wall-clock part of instant, in its own location,
// against [open, close] inclusive.
func (h OpeningHours) Contains(instant time.Time) bool {
	sinceMidnight := time.Duration(instant.Hour())*time.Hour +
		time.Duration(instant.Minute())*time.Minute +
		time.Duration(instant.Second())*time.Second +
		time.Duration(instant.Nanosecond())
	return sinceMidnight >= time.Duration(h.open.minutes)*time.Minute &&
		sinceMidnight <= time.Duration(h.close.minutes)*time.Minute
}
