package user

import "github.com/google/uuid"

// Actor is the authenticated user issuing a command.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
