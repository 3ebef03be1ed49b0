package resource

import "time"

const DefaultMaxDuration = 8 * time.Hour

var maxDurationByType = map[Type]time.Duration{
	TypeRoom:      8 * time.Hour,
	TypeVehicle:   24 * time.Hour,
	TypeEquipment: 8 * time.Hour,
}

// MaxDuration is the longest reservation allowed for a resource type.
// Unrecognized types fall back to DefaultMaxDuration.
func MaxDuration(t Type) time.Duration {
	if d, ok := maxDurationByType[t]; ok {
		return d
	}
	return DefaultMaxDuration
}

func AppliesOpeningHours(t Type) bool {
	return t == TypeRoom
}

func IsOpenAt(r *Resource, instant time.Time) bool {
	if !AppliesOpeningHours(r.Type()) {
		return true
	}
	hours := r.OpeningHours()
	if hours == nil {
		return true
	}
	return hours.Contains(instant)
}
