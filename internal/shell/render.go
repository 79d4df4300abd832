package shell

import (
	"fmt"

	"github.com/iliyamo/booking-manager/internal/model"
)

const rule = "----------------------------------------------------------------------------------------------------------------------"

func formatCustomer(c *model.Customer) string {
	return fmt.Sprintf("ID: %-4d | %-15s %-15s | %-30s | %s",
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone)
}

func formatResource(r *model.Resource) string {
	return fmt.Sprintf("ID: %-4d | %-20s | %-16s | capacity %-4d | %s",
		r.ID, r.Name, r.Kind.Label(), r.Capacity, r.Description)
}

// formatReservation renders a one-line summary.  Dangling customer
// or resource references render as "n/a" rather than failing.
func formatReservation(r *model.Reservation) string {
	customer := "n/a"
	if r.Customer != nil {
		customer = r.Customer.FullName()
	}
	resource := "n/a"
	if r.Resource != nil {
		resource = r.Resource.Name
	}
	return fmt.Sprintf("ID: %-4d | Customer: %-25s | Resource: %-20s | %s - %s | %s",
		r.ID, customer, resource,
		r.Start.Format(model.TimeLayout), r.End.Format(model.TimeLayout),
		r.Status.Label())
}

func reservationDetail(r *model.Reservation) string {
	customer := "n/a"
	if r.Customer != nil {
		customer = fmt.Sprintf("%s (id %d, %s)", r.Customer.FullName(), r.Customer.ID, r.Customer.Email)
	}
	resource := "n/a"
	if r.Resource != nil {
		resource = fmt.Sprintf("%s (id %d, %s)", r.Resource.Name, r.Resource.ID, r.Resource.Kind.Label())
	}
	note := r.Note
	if note == "" {
		note = "none"
	}
	return fmt.Sprintf("RESERVATION %d\n  Customer: %s\n  Resource: %s\n  Period:   %s - %s\n  Status:   %s\n  Note:     %s",
		r.ID, customer, resource,
		r.Start.Format(model.TimeLayout), r.End.Format(model.TimeLayout),
		r.Status.Label(), note)
}

func printReservations(list []*model.Reservation) {
	if len(list) == 0 {
		fmt.Println("No reservations found.")
		return
	}
	fmt.Printf("Total reservations: %d\n\n", len(list))
	fmt.Println(rule)
	for _, r := range list {
		fmt.Println(formatReservation(r))
	}
	fmt.Println(rule)
}
