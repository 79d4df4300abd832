package shell

import (
	"fmt"
	"sort"

	"github.com/iliyamo/booking-manager/internal/model"
)

func (s *Shell) createCustomer() {
	s.banner("CREATE CUSTOMER")
	c := &model.Customer{
		FirstName: s.readLine("First name: "),
		LastName:  s.readLine("Last name: "),
		Email:     s.readLine("Email: "),
		Phone:     s.readLine("Phone: "),
	}
	s.customers.Save(c)
	fmt.Printf("\nCustomer created with id %d.\n", c.ID)
	s.pause()
}

func (s *Shell) listCustomers() {
	s.banner("CUSTOMERS")
	list := s.customers.FindAll()
	if len(list) == 0 {
		fmt.Println("No customers registered.")
		s.pause()
		return
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	fmt.Printf("Total customers: %d\n\n", len(list))
	for _, c := range list {
		fmt.Println(formatCustomer(c))
	}
	s.pause()
}

// deleteCustomer removes a customer after warning when they still
// own reservations that are neither cancelled nor completed.
// Deleting never cascades: the reservations keep a dangling
// reference.
func (s *Shell) deleteCustomer() {
	s.banner("DELETE CUSTOMER")
	id := s.readID("Customer id to delete (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}

	active := false
	for _, r := range s.booking.ByCustomer(id) {
		if r.Status != model.StatusCancelled && r.Status != model.StatusCompleted {
			active = true
			break
		}
	}
	if active {
		fmt.Println("\nWARNING: this customer has active reservations!")
		if !s.confirm("Delete anyway? (y/n): ") {
			fmt.Println("Deletion cancelled.")
			s.pause()
			return
		}
	}

	if s.customers.Delete(id) {
		fmt.Println("\nCustomer deleted.")
	} else {
		fmt.Println("\nCustomer not found!")
	}
	s.pause()
}
