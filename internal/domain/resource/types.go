package resource

type Type string

const (
	TypeRoom      Type = "room"
	TypeVehicle   Type = "vehicle"
	TypeEquipment Type = "equipment"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRoom, TypeVehicle, TypeEquipment:
		return true
	default:
		return false
	}
}

// State is the lifecycle label of a resource. Labels other than the
// constants below are kept verbatim; only StateActive is bookable.
type State string

const (
	StateActive      State = "active"
	StateInactive    State = "inactive"
	StateMaintenance State = "maintenance"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsActive() bool {
	return s == StateActive
}
