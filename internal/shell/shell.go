// Package shell implements the interactive text menu.  It collects
// raw input, hands identifiers and timestamps to the booking service
// and renders the outcome; it never mutates a reservation's status
// or interval except through the service.
package shell

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/iliyamo/booking-manager/internal/config"
	"github.com/iliyamo/booking-manager/internal/repository"
	"github.com/iliyamo/booking-manager/internal/service"
)

// Shell drives the menu loop over stdin.
type Shell struct {
	in           *bufio.Scanner
	customers    *repository.CustomerRepo
	resources    *repository.ResourceRepo
	reservations *repository.ReservationRepo
	booking      *service.BookingService
	cfg          config.Config
}

// New constructs a Shell reading from stdin.
func New(customers *repository.CustomerRepo, resources *repository.ResourceRepo, reservations *repository.ReservationRepo, booking *service.BookingService, cfg config.Config) *Shell {
	return &Shell{
		in:           bufio.NewScanner(os.Stdin),
		customers:    customers,
		resources:    resources,
		reservations: reservations,
		booking:      booking,
		cfg:          cfg,
	}
}

// Run loops over the main menu until the user exits.  Exiting saves
// every store.
func (s *Shell) Run() {
	for {
		s.printMenu()
		switch s.readInt("Choice: ", 0, 21) {
		case 1:
			s.createCustomer()
		case 2:
			s.listCustomers()
		case 3:
			s.deleteCustomer()
		case 4:
			s.createResource()
		case 5:
			s.listResources()
		case 6:
			s.deleteResource()
		case 7:
			s.createReservation()
		case 8:
			s.listAllReservations()
		case 9:
			s.reservationsByCustomer()
		case 10:
			s.reservationsByResource()
		case 11:
			s.reservationsByStatus()
		case 12:
			s.confirmReservation()
		case 13:
			s.completeReservation()
		case 14:
			s.cancelReservation()
		case 15:
			s.modifyReservation()
		case 16:
			s.checkAvailability()
		case 17:
			s.reservationsByPeriod()
		case 18:
			s.showReservationDetail()
		case 19:
			s.statistics()
		case 20:
			s.exportReport()
		case 21:
			s.saveAll()
			fmt.Println("\nData saved.")
			s.pause()
		case 0:
			s.saveAll()
			fmt.Println("\nGoodbye! Data saved to file.")
			return
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Println()
	fmt.Println("==================== BOOKING MANAGER ====================")
	fmt.Println("CUSTOMERS:")
	fmt.Println("   1. Create customer")
	fmt.Println("   2. List customers")
	fmt.Println("   3. Delete customer")
	fmt.Println("RESOURCES:")
	fmt.Println("   4. Create resource")
	fmt.Println("   5. List resources")
	fmt.Println("   6. Delete resource")
	fmt.Println("RESERVATIONS:")
	fmt.Println("   7. Create reservation")
	fmt.Println("   8. List all reservations")
	fmt.Println("   9. Reservations by customer")
	fmt.Println("  10. Reservations by resource")
	fmt.Println("  11. Reservations by status")
	fmt.Println("  12. Confirm reservation")
	fmt.Println("  13. Complete reservation")
	fmt.Println("  14. Cancel reservation")
	fmt.Println("  15. Modify reservation")
	fmt.Println("  16. Check resource availability")
	fmt.Println("  17. Search reservations by period")
	fmt.Println("  18. Reservation details")
	fmt.Println("REPORTS:")
	fmt.Println("  19. System statistics")
	fmt.Println("  20. Export PDF report")
	fmt.Println("DATA:")
	fmt.Println("  21. Save data")
	fmt.Println("   0. Exit (saves automatically)")
	fmt.Println("=========================================================")
}

// saveAll flushes every store to disk.  IO failures are logged and
// the session keeps running; persistence is retried on the next save.
func (s *Shell) saveAll() {
	if err := s.customers.SaveToFile(s.cfg.CustomersPath()); err != nil {
		log.Printf("saving customers: %v", err)
	}
	if err := s.resources.SaveToFile(s.cfg.ResourcesPath()); err != nil {
		log.Printf("saving resources: %v", err)
	}
	if err := s.reservations.SaveToFile(s.cfg.ReservationsPath()); err != nil {
		log.Printf("saving reservations: %v", err)
	}
}
