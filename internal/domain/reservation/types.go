package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation still holds its slot. Active
// reservations block conflicting proposals and count toward occupancy.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	default:
		return false
	}
}

func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"
	ActionMarkNoShow Action = "no_show"
	ActionComplete   Action = "complete"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionConfirm, ActionCancel, ActionMarkNoShow, ActionComplete:
		return true
	default:
		return false
	}
}
