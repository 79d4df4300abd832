package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iliyamo/booking-manager/internal/model"
)

func TestCustomerSaveAssignsSequentialIDs(t *testing.T) {
	repo := NewCustomerRepo()

	a := repo.Save(&model.Customer{FirstName: "Ada"})
	b := repo.Save(&model.Customer{FirstName: "Bruno"})
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a.ID, b.ID)
	}

	// A caller-supplied id at or above the counter advances it.
	repo.Save(&model.Customer{ID: 10, FirstName: "Carla"})
	c := repo.Save(&model.Customer{FirstName: "Dino"})
	if c.ID != 11 {
		t.Errorf("id after explicit 10 = %d, want 11", c.ID)
	}
}

func TestCustomerDeleteDoesNotReuseID(t *testing.T) {
	repo := NewCustomerRepo()
	a := repo.Save(&model.Customer{FirstName: "Ada"})

	if !repo.Delete(a.ID) {
		t.Fatal("Delete(existing) = false, want true")
	}
	if repo.Delete(a.ID) {
		t.Error("Delete(missing) = true, want false")
	}

	b := repo.Save(&model.Customer{FirstName: "Bruno"})
	if b.ID != 2 {
		t.Errorf("id after delete = %d, want 2", b.ID)
	}
}

func TestCustomerFindByEmailCaseInsensitive(t *testing.T) {
	repo := NewCustomerRepo()
	repo.Save(&model.Customer{FirstName: "Ada", Email: "Ada@Example.com"})
	repo.Save(&model.Customer{FirstName: "Bruno", Email: "bruno@example.com"})

	got := repo.FindByEmail("ada@example.COM")
	if len(got) != 1 || got[0].FirstName != "Ada" {
		t.Errorf("FindByEmail = %v, want the single Ada record", got)
	}
}

func TestCustomerFileRoundTripWithQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")

	repo := NewCustomerRepo()
	tricky := repo.Save(&model.Customer{
		FirstName: `Anna "Nina"`,
		LastName:  "De, Rossi",
		Email:     "anna@example.com",
		Phone:     "+39 333\n1234567",
	})
	repo.Save(&model.Customer{FirstName: "Bruno", LastName: "Bianchi", Email: "b@example.com", Phone: "555"})

	if err := repo.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded := NewCustomerRepo()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	got, ok := loaded.FindByID(tricky.ID)
	if !ok {
		t.Fatalf("customer %d missing after reload", tricky.ID)
	}
	if got.FirstName != tricky.FirstName || got.LastName != tricky.LastName || got.Phone != tricky.Phone {
		t.Errorf("reloaded = %+v, want %+v", got, tricky)
	}

	// Counter resumes past the highest loaded id.
	next := loaded.Save(&model.Customer{FirstName: "Carla"})
	if next.ID != 3 {
		t.Errorf("next id after reload = %d, want 3", next.ID)
	}
}

func TestCustomerLoadMissingFileIsNoOp(t *testing.T) {
	repo := NewCustomerRepo()
	repo.Save(&model.Customer{FirstName: "Ada"})

	if err := repo.LoadFromFile(filepath.Join(t.TempDir(), "absent.csv")); err != nil {
		t.Fatalf("LoadFromFile(missing): %v", err)
	}
	if len(repo.FindAll()) != 1 {
		t.Error("load of a missing file must leave the store untouched")
	}
}

func TestCustomerLoadSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	data := "id,nome,cognome,email,telefono\n" +
		"1,Ada,Lovelace,ada@example.com,111\n" +
		"zz,Bad,Id,bad@example.com,222\n" +
		"3,Short,row\n" +
		"4,Dino,Verdi,dino@example.com,444\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := NewCustomerRepo()
	if err := repo.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if len(repo.FindAll()) != 2 {
		t.Fatalf("loaded %d customers, want 2", len(repo.FindAll()))
	}
	if _, ok := repo.FindByID(1); !ok {
		t.Error("customer 1 missing")
	}
	if _, ok := repo.FindByID(4); !ok {
		t.Error("customer 4 missing")
	}
	if next := repo.Save(&model.Customer{FirstName: "Eva"}); next.ID != 5 {
		t.Errorf("next id = %d, want 5", next.ID)
	}
}
