package shell

import (
	"fmt"

	"github.com/iliyamo/booking-manager/internal/model"
)

func (s *Shell) listAllReservations() {
	s.banner("ALL RESERVATIONS")
	printReservations(s.booking.All())
	s.pause()
}

func (s *Shell) reservationsByCustomer() {
	s.banner("RESERVATIONS BY CUSTOMER")
	id := s.readID("Customer id (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}
	printReservations(s.booking.ByCustomer(id))
	s.pause()
}

func (s *Shell) reservationsByResource() {
	s.banner("RESERVATIONS BY RESOURCE")
	id := s.readID("Resource id (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}
	printReservations(s.booking.ByResource(id))
	s.pause()
}

func (s *Shell) reservationsByStatus() {
	s.banner("RESERVATIONS BY STATUS")
	fmt.Println("Available statuses:")
	for i, st := range model.ReservationStatuses {
		fmt.Printf("  %d. %s\n", i+1, st.Label())
	}
	status := model.ReservationStatuses[s.readInt("Status: ", 1, len(model.ReservationStatuses))-1]
	fmt.Println()
	printReservations(s.booking.ByStatus(status))
	s.pause()
}

// reservationsByPeriod lists reservations whose interval intersects
// the requested window, not only those fully contained in it.
func (s *Shell) reservationsByPeriod() {
	s.banner("SEARCH BY PERIOD")
	start, err := s.readTime("From (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}
	end, err := s.readTime("To   (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}
	fmt.Println()
	printReservations(s.booking.ByPeriod(start, end))
	s.pause()
}
