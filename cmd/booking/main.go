package main // Entry point package

import (
	"log"
	"os"

	"github.com/iliyamo/booking-manager/internal/config"
	"github.com/iliyamo/booking-manager/internal/repository"
	"github.com/iliyamo/booking-manager/internal/service"
	"github.com/iliyamo/booking-manager/internal/shell"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment defaults")
	}
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("creating data dir %s: %v", cfg.DataDir, err)
	}

	customers := repository.NewCustomerRepo()
	resources := repository.NewResourceRepo()
	reservations := repository.NewReservationRepo()

	// Persistence failures degrade to an empty or partial store; an
	// interactive session can still run and save later.
	if err := customers.LoadFromFile(cfg.CustomersPath()); err != nil {
		log.Printf("loading customers: %v", err)
	}
	if err := resources.LoadFromFile(cfg.ResourcesPath()); err != nil {
		log.Printf("loading resources: %v", err)
	}
	if err := reservations.LoadFromFile(cfg.ReservationsPath(), customers, resources); err != nil {
		log.Printf("loading reservations: %v", err)
	}

	booking := service.NewBookingService(reservations, customers, resources, service.SystemClock{})

	sh := shell.New(customers, resources, reservations, booking, cfg)
	sh.Run()
}
