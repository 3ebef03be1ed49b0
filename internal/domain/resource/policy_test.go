//go:build unit

package resource_test

import (
	"testing"
	"time"

	"resource-booking/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, open, close string) *resource.OpeningHours {
	t.Helper()
	o, err := resource.ParseTimeOfDay(open)
	require.NoError(t, err)
	c, err := resource.ParseTimeOfDay(close)
	require.NoError(t, err)
	h, err := resource.NewOpeningHours(o, c)
	require.NoError(t, err)
	return &h
}

func TestMaxDuration(t *testing.T) {
	assert.Equal(t, 8*time.Hour, resource.MaxDuration(resource.TypeRoom))
	assert.Equal(t, 24*time.Hour, resource.MaxDuration(resource.TypeVehicle))
	assert.Equal(t, 8*time.Hour, resource.MaxDuration(resource.TypeEquipment))
	assert.Equal(t, 8*time.Hour, resource.MaxDuration(resource.Type("boat")))
}

func TestAppliesOpeningHours(t *testing.T) {
	assert.True(t, resource.AppliesOpeningHours(resource.TypeRoom))
	assert.False(t, resource.AppliesOpeningHours(resource.TypeVehicle))
	assert.False(t, resource.AppliesOpeningHours(resource.TypeEquipment))
}

func TestIsOpenAt(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2025, time.May, 5, h, m, 0, 0, time.UTC) }

	room, err := resource.NewResource(resource.Params{
		Name: "Salle Jaures", Type: resource.TypeRoom, Capacity: 10,
		OpeningHours: mustHours(t, "08:00", "18:00"), State: resource.StateActive,
	})
	require.NoError(t, err)

	t.Run("room within hours", func(t *testing.T) {
		assert.True(t, resource.IsOpenAt(room, day(8, 0)))
		assert.True(t, resource.IsOpenAt(room, day(12, 30)))
		assert.True(t, resource.IsOpenAt(room, day(18, 0)))
	})

	t.Run("room outside hours", func(t *testing.T) {
		assert.False(t, resource.IsOpenAt(room, day(7, 59)))
		assert.False(t, resource.IsOpenAt(room, day(18, 1)))
	})

	t.Run("closing boundary honors sub-second precision", func(t *testing.T) {
		assert.False(t, resource.IsOpenAt(room, day(18, 0).Add(500*time.Millisecond)))
		assert.False(t, resource.IsOpenAt(room, day(18, 0).Add(time.Nanosecond)))
		assert.True(t, resource.IsOpenAt(room, day(17, 59).Add(59*time.Second+999*time.Millisecond)))
		assert.False(t, resource.IsOpenAt(room, day(7, 59).Add(59*time.Second+999*time.Millisecond)))
	})

	t.Run("room without hours is always open", func(t *testing.T) {
		open, err := resource.NewResource(resource.Params{
			Name: "Salle Libre", Type: resource.TypeRoom, Capacity: 4, State: resource.StateActive,
		})
		require.NoError(t, err)
		assert.True(t, resource.IsOpenAt(open, day(3, 0)))
	})

	t.Run("vehicle is always open", func(t *testing.T) {
		van, err := resource.NewResource(resource.Params{
			Name: "Kangoo", Type: resource.TypeVehicle, Capacity: 2, State: resource.StateActive,
		})
		require.NoError(t, err)
		assert.True(t, resource.IsOpenAt(van, day(23, 45)))
	})
}

func TestNewResource(t *testing.T) {
	valid := func() resource.Params {
		return resource.Params{Name: "Projector", Type: resource.TypeEquipment, Capacity: 1, State: resource.StateActive}
	}

	testCases := []struct {
		name   string
		mutate func(p *resource.Params)
		errIs  error
	}{
		{name: "valid equipment", mutate: func(*resource.Params) {}},
		{name: "name too short", mutate: func(p *resource.Params) { p.Name = "ab" }, errIs: resource.ErrResourceNameTooShort},
		{name: "blank name", mutate: func(p *resource.Params) { p.Name = "   " }, errIs: resource.ErrEmptyResourceName},
		{name: "unknown type", mutate: func(p *resource.Params) { p.Type = "boat" }, errIs: resource.ErrInvalidResourceType},
		{name: "zero capacity", mutate: func(p *resource.Params) { p.Capacity = 0 }, errIs: resource.ErrInvalidCapacity},
		{name: "missing state", mutate: func(p *resource.Params) { p.State = "" }, errIs: resource.ErrEmptyState},
		{
			name:   "opening hours on equipment",
			mutate: func(p *resource.Params) { p.OpeningHours = mustHours(t, "08:00", "18:00") },
			errIs:  resource.ErrOpeningHoursNotAllowed,
		},
		{
			name: "opening hours on room",
			mutate: func(p *resource.Params) {
				p.Type = resource.TypeRoom
				p.OpeningHours = mustHours(t, "08:00", "18:00")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(&p)
			actual, err := resource.NewResource(p)
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
			require.Nil(t, actual)
		})
	}

	t.Run("opening must precede closing", func(t *testing.T) {
		open, _ := resource.NewTimeOfDay(18, 0)
		closing, _ := resource.NewTimeOfDay(8, 0)
		_, err := resource.NewOpeningHours(open, closing)
		require.ErrorIs(t, err, resource.ErrOpeningAfterClosing)

		_, err = resource.NewOpeningHours(open, open)
		require.ErrorIs(t, err, resource.ErrOpeningAfterClosing)
	})
}
