package shell

import (
	"fmt"
	"sort"
)

func (s *Shell) createReservation() {
	s.banner("CREATE RESERVATION")

	customers := s.customers.FindAll()
	if len(customers) == 0 {
		fmt.Println("No customers registered. Create a customer first.")
		s.pause()
		return
	}
	resources := s.resources.FindAll()
	if len(resources) == 0 {
		fmt.Println("No resources registered. Create a resource first.")
		s.pause()
		return
	}

	fmt.Println("Customers:")
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	for _, c := range customers {
		fmt.Printf("  %d. %s\n", c.ID, c.FullName())
	}
	customerID := s.readID("\nCustomer id (empty to cancel): ")
	if customerID == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}

	fmt.Println("\nResources:")
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	for _, r := range resources {
		fmt.Printf("  %d. %s (%s)\n", r.ID, r.Name, r.Kind.Label())
	}
	resourceID := s.readID("\nResource id (empty to cancel): ")
	if resourceID == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}

	start, err := s.readTime("\nStart (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}
	end, err := s.readTime("End   (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}
	note := s.readLine("Note (optional): ")

	res, err := s.booking.Create(customerID, resourceID, start, end, note)
	if err != nil {
		fmt.Println("\nError:", err)
		s.pause()
		return
	}
	fmt.Printf("\nReservation created with id %d.\n\n", res.ID)
	fmt.Println(reservationDetail(res))
	s.pause()
}

func (s *Shell) confirmReservation() {
	s.banner("CONFIRM RESERVATION")
	id := s.readID("Reservation id (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}
	if err := s.booking.Confirm(id); err != nil {
		fmt.Println("\nError:", err)
	} else {
		fmt.Println("\nReservation confirmed.")
	}
	s.pause()
}

func (s *Shell) completeReservation() {
	s.banner("COMPLETE RESERVATION")
	id := s.readID("Reservation id (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}
	if err := s.booking.Complete(id); err != nil {
		fmt.Println("\nError:", err)
	} else {
		fmt.Println("\nReservation completed.")
	}
	s.pause()
}

func (s *Shell) cancelReservation() {
	s.banner("CANCEL RESERVATION")
	id := s.readID("Reservation id (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}
	if err := s.booking.Cancel(id); err != nil {
		fmt.Println("\nError:", err)
	} else {
		fmt.Println("\nReservation cancelled.")
	}
	s.pause()
}

func (s *Shell) modifyReservation() {
	s.banner("MODIFY RESERVATION")
	id := s.readID("Reservation id (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}

	start, err := s.readTime("\nNew start (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}
	end, err := s.readTime("New end   (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}

	var note *string
	if line := s.readLine("New note (empty to keep current): "); line != "" {
		note = &line
	}

	res, err := s.booking.Modify(id, start, end, note)
	if err != nil {
		fmt.Println("\nError:", err)
		s.pause()
		return
	}
	fmt.Println("\nReservation updated.")
	fmt.Println()
	fmt.Println(reservationDetail(res))
	s.pause()
}

func (s *Shell) checkAvailability() {
	s.banner("CHECK AVAILABILITY")
	resourceID := s.readID("Resource id (empty to cancel): ")
	if resourceID == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}
	start, err := s.readTime("\nStart (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}
	end, err := s.readTime("End   (dd/MM/yyyy HH:mm): ")
	if err != nil {
		badTimeFormat()
		s.pause()
		return
	}

	if s.booking.IsAvailable(resourceID, start, end) {
		fmt.Println("\nThe resource is AVAILABLE for the requested period.")
	} else {
		fmt.Println("\nThe resource is NOT available for the requested period.")
		fmt.Println("\nConflicting reservations:")
		for _, r := range s.booking.ActiveForResource(resourceID, start, end) {
			fmt.Println("  -", formatReservation(r))
		}
	}
	s.pause()
}

func (s *Shell) showReservationDetail() {
	s.banner("RESERVATION DETAILS")
	id := s.readID("Reservation id (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}
	res, ok := s.reservations.FindByID(id)
	if !ok {
		fmt.Println("\nReservation not found!")
		s.pause()
		return
	}
	fmt.Println()
	fmt.Println(reservationDetail(res))
	s.pause()
}
