// Package service implements the availability engine: reservation
// validation, the open-interval overlap rule and the status state
// machine.  All mutations of a reservation's status or interval go
// through this package; the menu layer and the stores never change
// them directly.
package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/iliyamo/booking-manager/internal/model"
	"github.com/iliyamo/booking-manager/internal/repository"
)

// maxDuration is the longest interval a single reservation may span.
const maxDuration = 24 * time.Hour

// BookingService validates and mutates reservations against the
// three record stores.  The check-then-act sequence in Create and
// Modify (read existing reservations, decide availability, write) is
// only safe because exactly one actor operates on the stores at a
// time; concurrent use would need the sequence wrapped in a critical
// section per resource.
type BookingService struct {
	reservations *repository.ReservationRepo
	customers    *repository.CustomerRepo
	resources    *repository.ResourceRepo
	clock        Clock
}

// NewBookingService constructs a BookingService over the given
// stores.  A nil clock defaults to the system clock.
func NewBookingService(reservations *repository.ReservationRepo, customers *repository.CustomerRepo, resources *repository.ResourceRepo, clock Clock) *BookingService {
	if reservations == nil || customers == nil || resources == nil {
		panic("nil repository passed to NewBookingService")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &BookingService{
		reservations: reservations,
		customers:    customers,
		resources:    resources,
		clock:        clock,
	}
}

// Create validates and persists a new reservation in PROVISIONAL
// status.  Checks run in order: the customer must exist, the
// resource must exist, the interval must be ordered, must not start
// in the past and must not exceed 24 hours, and the resource must be
// free over [start, end) with respect to every non-cancelled
// reservation.
func (s *BookingService) Create(customerID, resourceID int64, start, end time.Time, note string) (*model.Reservation, error) {
	customer, ok := s.customers.FindByID(customerID)
	if !ok {
		return nil, &CustomerNotFoundError{ID: customerID}
	}
	resource, ok := s.resources.FindByID(resourceID)
	if !ok {
		return nil, &ResourceNotFoundError{ID: resourceID}
	}
	if !end.After(start) {
		return nil, &InvalidReservationError{Reason: "end must be after start"}
	}
	if start.Before(s.clock.Now()) {
		return nil, &InvalidReservationError{Reason: "cannot create reservations in the past"}
	}
	if end.Sub(start) > maxDuration {
		return nil, &InvalidReservationError{Reason: "reservation cannot exceed 24 hours"}
	}
	if !s.IsAvailable(resourceID, start, end) {
		return nil, &ResourceUnavailableError{ResourceID: resourceID, Start: start, End: end}
	}

	res := &model.Reservation{
		Customer: customer,
		Resource: resource,
		Start:    start,
		End:      end,
		Status:   model.StatusProvisional,
		Note:     note,
	}
	return s.reservations.Save(res), nil
}

// IsAvailable reports whether the resource is free over the
// half-open interval [start, end).  Two intervals overlap iff
// existing.Start < end && existing.End > start; cancelled
// reservations never block.
func (s *BookingService) IsAvailable(resourceID int64, start, end time.Time) bool {
	for _, existing := range s.reservations.FindByResource(resourceID) {
		if existing.Status == model.StatusCancelled {
			continue
		}
		if existing.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// Confirm moves a PROVISIONAL reservation to CONFIRMED.
func (s *BookingService) Confirm(id int64) error {
	res, ok := s.reservations.FindByID(id)
	if !ok {
		return &ReservationNotFoundError{ID: id}
	}
	if res.Status != model.StatusProvisional {
		return &NotAllowedError{Reason: "only provisional reservations can be confirmed"}
	}
	res.Status = model.StatusConfirmed
	s.reservations.Save(res)
	return nil
}

// Complete moves a reservation to COMPLETED.  Cancelled and already
// completed reservations are rejected.
func (s *BookingService) Complete(id int64) error {
	res, ok := s.reservations.FindByID(id)
	if !ok {
		return &ReservationNotFoundError{ID: id}
	}
	if res.Status == model.StatusCancelled {
		return &NotAllowedError{Reason: "cannot complete a cancelled reservation"}
	}
	if res.Status == model.StatusCompleted {
		return &NotAllowedError{Reason: "reservation is already completed"}
	}
	res.Status = model.StatusCompleted
	s.reservations.Save(res)
	return nil
}

// Cancel moves a reservation to CANCELLED.  Only COMPLETED is
// rejected; cancelling an already cancelled reservation is an
// accepted no-op transition.
func (s *BookingService) Cancel(id int64) error {
	res, ok := s.reservations.FindByID(id)
	if !ok {
		return &ReservationNotFoundError{ID: id}
	}
	if res.Status == model.StatusCompleted {
		return &NotAllowedError{Reason: "cannot cancel a completed reservation"}
	}
	res.Status = model.StatusCancelled
	s.reservations.Save(res)
	return nil
}

// Modify edits a reservation's interval and note.  Completed and
// cancelled reservations are rejected.  When either bound actually
// changes, the new interval is re-validated for ordering and
// re-checked for overlap against every other non-cancelled
// reservation on the same resource; the reservation's own current
// booking never conflicts with itself.  A nil note leaves the note
// untouched; a non-nil note overwrites it even when the interval is
// unchanged.
func (s *BookingService) Modify(id int64, newStart, newEnd time.Time, note *string) (*model.Reservation, error) {
	res, ok := s.reservations.FindByID(id)
	if !ok {
		return nil, &ReservationNotFoundError{ID: id}
	}
	if res.Status == model.StatusCompleted || res.Status == model.StatusCancelled {
		return nil, &NotAllowedError{Reason: fmt.Sprintf("cannot modify a %s reservation", res.Status.Label())}
	}

	if !res.Start.Equal(newStart) || !res.End.Equal(newEnd) {
		if !newEnd.After(newStart) {
			return nil, &InvalidReservationError{Reason: "end must be after start"}
		}
		for _, other := range s.reservations.FindByResource(res.ResourceID()) {
			if other.ID == id || other.Status == model.StatusCancelled {
				continue
			}
			if other.Overlaps(newStart, newEnd) {
				return nil, &ResourceUnavailableError{ResourceID: res.ResourceID(), Start: newStart, End: newEnd}
			}
		}
		res.Start = newStart
		res.End = newEnd
	}

	if note != nil {
		res.Note = *note
	}
	return s.reservations.Save(res), nil
}

// ActiveForResource returns the non-cancelled reservations on the
// resource whose interval intersects [start, end), ordered by start
// time.  The menu uses it to show what blocks an unavailable window.
func (s *BookingService) ActiveForResource(resourceID int64, start, end time.Time) []*model.Reservation {
	var out []*model.Reservation
	for _, res := range s.reservations.FindByResource(resourceID) {
		if res.Status == model.StatusCancelled {
			continue
		}
		if res.Overlaps(start, end) {
			out = append(out, res)
		}
	}
	return out
}

// ByCustomer returns the customer's reservations ordered by start time.
func (s *BookingService) ByCustomer(customerID int64) []*model.Reservation {
	return s.reservations.FindByCustomer(customerID)
}

// ByResource returns the resource's reservations ordered by start time.
func (s *BookingService) ByResource(resourceID int64) []*model.Reservation {
	return s.reservations.FindByResource(resourceID)
}

// ByPeriod returns the reservations intersecting [start, end),
// ordered by start time.
func (s *BookingService) ByPeriod(start, end time.Time) []*model.Reservation {
	return s.reservations.FindByPeriod(start, end)
}

// ByStatus returns the reservations in the given status ordered by
// start time.
func (s *BookingService) ByStatus(status model.ReservationStatus) []*model.Reservation {
	return s.reservations.FindByStatus(status)
}

// All returns every reservation ordered by start time.
func (s *BookingService) All() []*model.Reservation {
	out := s.reservations.FindAll()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
