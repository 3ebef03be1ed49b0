//go:build unit

package interval_test

import (
	"testing"
	"time"

	"resource-booking/internal/domain/interval"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		expected                   bool
	}{
		{name: "identical windows", aStart: at(9, 0), aEnd: at(10, 0), bStart: at(9, 0), bEnd: at(10, 0), expected: true},
		{name: "partial overlap at end", aStart: at(9, 0), aEnd: at(10, 0), bStart: at(9, 30), bEnd: at(11, 0), expected: true},
		{name: "b contained in a", aStart: at(8, 0), aEnd: at(12, 0), bStart: at(9, 0), bEnd: at(10, 0), expected: true},
		{name: "touching at a end", aStart: at(9, 0), aEnd: at(10, 0), bStart: at(10, 0), bEnd: at(11, 0), expected: false},
		{name: "touching at a start", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(9, 0), bEnd: at(10, 0), expected: false},
		{name: "disjoint", aStart: at(9, 0), aEnd: at(10, 0), bStart: at(11, 0), bEnd: at(12, 0), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, interval.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.expected, interval.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd), "overlap must be symmetric")
		})
	}
}

func TestOverlapDuration(t *testing.T) {
	t.Run("clamped intersection", func(t *testing.T) {
		assert.Equal(t, 30*time.Minute, interval.OverlapDuration(at(9, 0), at(10, 0), at(9, 30), at(11, 0)))
	})

	t.Run("containment returns inner length", func(t *testing.T) {
		assert.Equal(t, time.Hour, interval.OverlapDuration(at(8, 0), at(12, 0), at(9, 0), at(10, 0)))
	})

	t.Run("disjoint is zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), interval.OverlapDuration(at(9, 0), at(10, 0), at(11, 0), at(12, 0)))
	})

	t.Run("touching is zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), interval.OverlapDuration(at(9, 0), at(10, 0), at(10, 0), at(12, 0)))
	})
}

func TestMinuteIsQuarterAligned(t *testing.T) {
	for _, m := range []int{0, 15, 30, 45} {
		assert.True(t, interval.MinuteIsQuarterAligned(at(9, m)), "minute %d", m)
	}
	for _, m := range []int{1, 10, 14, 16, 44, 59} {
		assert.False(t, interval.MinuteIsQuarterAligned(at(9, m)), "minute %d", m)
	}
}

func TestDayBounds(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	start, end := interval.DayBounds(time.Date(2025, time.March, 30, 15, 4, 0, 0, paris))

	assert.Equal(t, time.Date(2025, time.March, 30, 0, 0, 0, 0, paris), start)
	assert.Equal(t, time.Date(2025, time.March, 30, 23, 59, 59, 999999000, paris), end)
	assert.True(t, interval.Contains(start, end, time.Date(2025, time.March, 30, 23, 59, 59, 0, paris)))
	assert.False(t, interval.Contains(start, end, time.Date(2025, time.March, 31, 0, 0, 0, 0, paris)))
}
