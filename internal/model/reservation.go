package model

import (
	"fmt"
	"time"
)

// TimeLayout is the timestamp format used everywhere a reservation
// interval crosses the program boundary: data files, prompts and
// rendered tables.
const TimeLayout = "02/01/2006 15:04"

// ReservationStatus is the state of a reservation in its lifecycle.
// The progression is strictly forward:
//
//	PROVISIONAL → CONFIRMED → COMPLETED
//
// with CANCELLED reachable from PROVISIONAL and CONFIRMED.  COMPLETED
// is terminal; cancelling an already cancelled reservation is a
// permitted no-op.  The constant value is the symbolic name written
// to the data file.
type ReservationStatus string

const (
	StatusProvisional ReservationStatus = "PROVISIONAL"
	StatusConfirmed   ReservationStatus = "CONFIRMED"
	StatusCompleted   ReservationStatus = "COMPLETED"
	StatusCancelled   ReservationStatus = "CANCELLED"
)

// ReservationStatuses lists every valid status in menu order.
var ReservationStatuses = []ReservationStatus{
	StatusProvisional,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

var statusLabels = map[ReservationStatus]string{
	StatusProvisional: "Provisional",
	StatusConfirmed:   "Confirmed",
	StatusCompleted:   "Completed",
	StatusCancelled:   "Cancelled",
}

// Label returns the display text for the status.
func (s ReservationStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseReservationStatus converts a symbolic name back into a
// ReservationStatus.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	st := ReservationStatus(s)
	if _, ok := statusLabels[st]; !ok {
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
	return st, nil
}

// Reservation books a resource for a customer over the half-open
// interval [Start, End).  Customer and Resource are non-owning
// references resolved through the repositories at creation or load
// time; either may be nil if the referenced record was deleted after
// the reservation was made; the reservation then keeps a dangling,
// display-only reference, since deletions do not cascade.
//
// Invariants, enforced by the booking service:
//   - End is strictly after Start.
//   - The interval never overlaps another non-cancelled reservation
//     for the same resource.
//   - Status only moves forward through the lifecycle above.
type Reservation struct {
	ID       int64
	Customer *Customer
	Resource *Resource
	Start    time.Time
	End      time.Time
	Status   ReservationStatus
	Note     string
}

// CustomerID returns the owning customer's id, or 0 when the
// reference is unresolved.
func (r *Reservation) CustomerID() int64 {
	if r.Customer == nil {
		return 0
	}
	return r.Customer.ID
}

// ResourceID returns the target resource's id, or 0 when the
// reference is unresolved.
func (r *Reservation) ResourceID() int64 {
	if r.Resource == nil {
		return 0
	}
	return r.Resource.ID
}

// Overlaps reports whether the reservation's interval intersects the
// half-open window [start, end).  Touching endpoints do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.Start.Before(end) && r.End.After(start)
}
