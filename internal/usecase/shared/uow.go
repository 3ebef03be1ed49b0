package shared

import (
	"context"
	"time"

	"resource-booking/internal/domain/availability"
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
	// Reads: Single query operations using implicit transactions
	Reads() Reads
}

type Tx interface {
	// LockResource serializes writers of one resource until the transaction ends.
	LockResource(ctx context.Context, resourceID uuid.UUID) error
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Reads() Reads
}

type Reads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	// ListResources returns one page of matching resources and the total match count.
	ListResources(ctx context.Context, filter ResourceFilter) ([]*resource.Resource, int, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationsForResource(ctx context.Context, resourceID uuid.UUID, filter ReservationFilter) ([]*reservation.Reservation, error)
	OverridesForResource(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*availability.Override, error)
}

// ReservationFilter narrows a resource's reservations. Empty Statuses
// matches all; a zero From or To leaves that side of the window open.
type ReservationFilter struct {
	Statuses []reservation.Status
	From     time.Time
	To       time.Time
}

type ResourceSort string

const (
	SortByName     ResourceSort = "name"
	SortByCapacity ResourceSort = "capacity"
	SortByType     ResourceSort = "type"
)

func (s ResourceSort) IsValid() bool {
	switch s {
	case SortByName, SortByCapacity, SortByType:
		return true
	default:
		return false
	}
}

// ResourceFilter selects and pages resources. Nil pointers and a zero
// MinCapacity leave their criterion unset.
type ResourceFilter struct {
	Type        *resource.Type
	SiteID      *uuid.UUID
	Active      *bool
	MinCapacity int
	SortBy      ResourceSort
	Descending  bool
	Offset      int
	Limit       int
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
