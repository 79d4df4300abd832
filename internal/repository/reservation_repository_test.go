package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iliyamo/booking-manager/internal/model"
)

func seedStores(t *testing.T) (*CustomerRepo, *ResourceRepo, *ReservationRepo, *model.Customer, *model.Resource) {
	t.Helper()
	customers := NewCustomerRepo()
	resources := NewResourceRepo()
	reservations := NewReservationRepo()
	c := customers.Save(&model.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	r := resources.Save(&model.Resource{Name: "Room A", Kind: model.KindConferenceRoom, Capacity: 8})
	return customers, resources, reservations, c, r
}

func at(h int) time.Time {
	return time.Date(2030, 5, 1, h, 0, 0, 0, time.UTC)
}

func TestReservationFiltersSortedByStart(t *testing.T) {
	_, _, reservations, c, r := seedStores(t)

	// Inserted out of order on purpose.
	reservations.Save(&model.Reservation{Customer: c, Resource: r, Start: at(15), End: at(16), Status: model.StatusConfirmed})
	reservations.Save(&model.Reservation{Customer: c, Resource: r, Start: at(9), End: at(10), Status: model.StatusProvisional})
	reservations.Save(&model.Reservation{Customer: c, Resource: r, Start: at(12), End: at(13), Status: model.StatusProvisional})

	checkSorted := func(name string, list []*model.Reservation, want int) {
		t.Helper()
		if len(list) != want {
			t.Fatalf("%s returned %d reservations, want %d", name, len(list), want)
		}
		for i := 1; i < len(list); i++ {
			if list[i].Start.Before(list[i-1].Start) {
				t.Errorf("%s not sorted by start: %v before %v", name, list[i].Start, list[i-1].Start)
			}
		}
	}

	checkSorted("FindByCustomer", reservations.FindByCustomer(c.ID), 3)
	checkSorted("FindByResource", reservations.FindByResource(r.ID), 3)
	checkSorted("FindByStatus", reservations.FindByStatus(model.StatusProvisional), 2)
	checkSorted("FindByPeriod", reservations.FindByPeriod(at(0), at(23)), 3)
}

func TestReservationFindByPeriodIntersects(t *testing.T) {
	_, _, reservations, c, r := seedStores(t)
	reservations.Save(&model.Reservation{Customer: c, Resource: r, Start: at(10), End: at(12), Status: model.StatusConfirmed})

	// Straddling the window edge still matches; touching it does not.
	if got := reservations.FindByPeriod(at(11), at(14)); len(got) != 1 {
		t.Errorf("window [11,14) matched %d, want 1", len(got))
	}
	if got := reservations.FindByPeriod(at(12), at(14)); len(got) != 0 {
		t.Errorf("window [12,14) matched %d, want 0", len(got))
	}
}

func TestReservationFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	customers, resources, reservations, c, r := seedStores(t)

	saved := reservations.Save(&model.Reservation{
		Customer: c, Resource: r,
		Start: at(10), End: at(12),
		Status: model.StatusConfirmed,
		Note:   `bring the "good" projector, please`,
	})
	dangling := reservations.Save(&model.Reservation{
		Start: at(14), End: at(15),
		Status: model.StatusProvisional,
	})

	customersPath := filepath.Join(dir, "customers.csv")
	resourcesPath := filepath.Join(dir, "resources.csv")
	reservationsPath := filepath.Join(dir, "reservations.csv")
	if err := customers.SaveToFile(customersPath); err != nil {
		t.Fatal(err)
	}
	if err := resources.SaveToFile(resourcesPath); err != nil {
		t.Fatal(err)
	}
	if err := reservations.SaveToFile(reservationsPath); err != nil {
		t.Fatal(err)
	}

	loadedCustomers := NewCustomerRepo()
	loadedResources := NewResourceRepo()
	loadedReservations := NewReservationRepo()
	if err := loadedCustomers.LoadFromFile(customersPath); err != nil {
		t.Fatal(err)
	}
	if err := loadedResources.LoadFromFile(resourcesPath); err != nil {
		t.Fatal(err)
	}
	if err := loadedReservations.LoadFromFile(reservationsPath, loadedCustomers, loadedResources); err != nil {
		t.Fatal(err)
	}

	got, ok := loadedReservations.FindByID(saved.ID)
	if !ok {
		t.Fatalf("reservation %d missing after reload", saved.ID)
	}
	if !got.Start.Equal(saved.Start) || !got.End.Equal(saved.End) {
		t.Errorf("interval = %v-%v, want %v-%v", got.Start, got.End, saved.Start, saved.End)
	}
	if got.Status != model.StatusConfirmed || got.Note != saved.Note {
		t.Errorf("status/note = %v/%q, want %v/%q", got.Status, got.Note, saved.Status, saved.Note)
	}
	if got.Customer == nil || got.Customer.ID != c.ID {
		t.Error("customer reference not resolved on reload")
	}
	if got.Resource == nil || got.Resource.ID != r.ID {
		t.Error("resource reference not resolved on reload")
	}

	gotDangling, ok := loadedReservations.FindByID(dangling.ID)
	if !ok {
		t.Fatalf("reservation %d missing after reload", dangling.ID)
	}
	if gotDangling.Customer != nil || gotDangling.Resource != nil {
		t.Error("empty reference fields must reload as nil references")
	}
}

func TestReservationLoadUnresolvedReferenceIsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.csv")
	data := "id,clienteId,risorsaId,dataOraInizio,dataOraFine,stato,note\n" +
		"1,99,88,01/05/2030 10:00,01/05/2030 12:00,CONFIRMED,orphan\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	reservations := NewReservationRepo()
	if err := reservations.LoadFromFile(path, NewCustomerRepo(), NewResourceRepo()); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	got, ok := reservations.FindByID(1)
	if !ok {
		t.Fatal("row with unresolved references must still load")
	}
	if got.Customer != nil || got.Resource != nil {
		t.Error("unresolved foreign ids must load as nil references")
	}
}

func TestReservationLoadSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.csv")
	data := "id,clienteId,risorsaId,dataOraInizio,dataOraFine,stato,note\n" +
		"1,,,01/05/2030 10:00,01/05/2030 12:00,CONFIRMED,ok\n" +
		"2,,,not-a-date,01/05/2030 12:00,CONFIRMED,bad start\n" +
		"3,,,01/05/2030 10:00,01/05/2030 12:00,SOMEDAY,bad status\n" +
		"4,,,01/05/2030 13:00,01/05/2030 14:00,PROVISIONAL,ok\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	reservations := NewReservationRepo()
	if err := reservations.LoadFromFile(path, NewCustomerRepo(), NewResourceRepo()); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if len(reservations.FindAll()) != 2 {
		t.Fatalf("loaded %d reservations, want 2", len(reservations.FindAll()))
	}
	if next := reservations.Save(&model.Reservation{Start: at(20), End: at(21), Status: model.StatusProvisional}); next.ID != 5 {
		t.Errorf("next id = %d, want 5", next.ID)
	}
}
