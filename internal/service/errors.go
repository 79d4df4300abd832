package service

// Each failure mode is a distinct error type so callers can tell
// them apart with errors.As and render them however they like; the
// service itself never swallows or wraps them.

import (
	"fmt"
	"time"

	"github.com/iliyamo/booking-manager/internal/model"
)

// CustomerNotFoundError reports a customer id that does not exist at
// the time of the call.
type CustomerNotFoundError struct {
	ID int64
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer with id %d not found", e.ID)
}

// ResourceNotFoundError reports a resource id that does not exist at
// the time of the call.
type ResourceNotFoundError struct {
	ID int64
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource with id %d not found", e.ID)
}

// ReservationNotFoundError reports a reservation id that does not
// exist at the time of the call.
type ReservationNotFoundError struct {
	ID int64
}

func (e *ReservationNotFoundError) Error() string {
	return fmt.Sprintf("reservation with id %d not found", e.ID)
}

// InvalidReservationError reports a structurally invalid request:
// end not after start, start in the past, or duration over the
// 24-hour maximum.
type InvalidReservationError struct {
	Reason string
}

func (e *InvalidReservationError) Error() string {
	return "invalid reservation: " + e.Reason
}

// ResourceUnavailableError reports that the requested interval
// conflicts with an existing non-cancelled reservation.  It carries
// the resource id and the requested interval for diagnostics.
type ResourceUnavailableError struct {
	ResourceID int64
	Start      time.Time
	End        time.Time
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("resource %d is not available between %s and %s",
		e.ResourceID, e.Start.Format(model.TimeLayout), e.End.Format(model.TimeLayout))
}

// NotAllowedError reports a status transition or edit that is
// illegal for the reservation's current status.
type NotAllowedError struct {
	Reason string
}

func (e *NotAllowedError) Error() string {
	return "operation not allowed: " + e.Reason
}
