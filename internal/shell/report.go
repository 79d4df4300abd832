package shell

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/iliyamo/booking-manager/internal/model"
)

// statistics prints aggregate counts over the three stores.
func (s *Shell) statistics() {
	s.banner("SYSTEM STATISTICS")

	customers := s.customers.FindAll()
	resources := s.resources.FindAll()
	reservations := s.booking.All()

	fmt.Println("GENERAL:")
	fmt.Printf("  Customers registered: %d\n", len(customers))
	fmt.Printf("  Resources available:  %d\n", len(resources))
	fmt.Printf("  Total reservations:   %d\n", len(reservations))

	fmt.Println("\nRESERVATIONS BY STATUS:")
	byStatus := make(map[model.ReservationStatus]int)
	for _, r := range reservations {
		byStatus[r.Status]++
	}
	for _, st := range model.ReservationStatuses {
		count := byStatus[st]
		pct := 0.0
		if len(reservations) > 0 {
			pct = float64(count) * 100 / float64(len(reservations))
		}
		fmt.Printf("  %-12s: %-4d (%.1f%%)\n", st.Label(), count, pct)
	}

	fmt.Println("\nRESOURCES BY KIND:")
	byKind := make(map[model.ResourceKind]int)
	for _, r := range resources {
		byKind[r.Kind]++
	}
	for _, k := range model.ResourceKinds {
		if byKind[k] > 0 {
			fmt.Printf("  %-16s: %d\n", k.Label(), byKind[k])
		}
	}

	now := time.Now()
	weekAhead := now.Add(7 * 24 * time.Hour)
	upcoming := 0
	for _, r := range reservations {
		if r.Status != model.StatusCancelled && r.Start.After(now) && r.Start.Before(weekAhead) {
			upcoming++
		}
	}
	fmt.Printf("\nUPCOMING: %d reservations in the next 7 days\n", upcoming)

	fmt.Println("\nDATA FILES:")
	fmt.Printf("  %s (customers)\n", s.cfg.CustomersPath())
	fmt.Printf("  %s (resources)\n", s.cfg.ResourcesPath())
	fmt.Printf("  %s (reservations)\n", s.cfg.ReservationsPath())

	s.pause()
}

// exportReport writes a PDF listing every reservation, ordered by
// start time, to the configured report path.
func (s *Shell) exportReport() {
	s.banner("EXPORT PDF REPORT")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format(model.TimeLayout)))
	pdf.Ln(10)

	reservations := s.booking.All()
	if len(reservations) == 0 {
		pdf.Cell(0, 8, "No reservations recorded.")
	}
	for _, r := range reservations {
		customer := "n/a"
		if r.Customer != nil {
			customer = r.Customer.FullName()
		}
		resource := "n/a"
		if r.Resource != nil {
			resource = r.Resource.Name
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("#%d  %s - %s",
			r.ID, r.Start.Format(model.TimeLayout), r.End.Format(model.TimeLayout)))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s   Resource: %s   Status: %s",
			customer, resource, r.Status.Label()))
		pdf.Ln(5)
		if r.Note != "" {
			pdf.Cell(0, 6, "Note: "+r.Note)
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	path := s.cfg.ReportPath()
	if err := pdf.OutputFileAndClose(path); err != nil {
		fmt.Println("\nError writing report:", err)
	} else {
		fmt.Println("\nReport written to", path)
	}
	s.pause()
}
