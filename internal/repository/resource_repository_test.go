package repository

import (
	"path/filepath"
	"testing"

	"github.com/iliyamo/booking-manager/internal/model"
)

func TestResourceFindByKind(t *testing.T) {
	repo := NewResourceRepo()
	repo.Save(&model.Resource{Name: "Room A", Kind: model.KindConferenceRoom, Capacity: 8})
	repo.Save(&model.Resource{Name: "Table 1", Kind: model.KindRestaurantTable, Capacity: 4})
	repo.Save(&model.Resource{Name: "Room B", Kind: model.KindConferenceRoom, Capacity: 20})

	rooms := repo.FindByKind(model.KindConferenceRoom)
	if len(rooms) != 2 {
		t.Errorf("FindByKind(conference room) returned %d, want 2", len(rooms))
	}
	if got := repo.FindByKind(model.KindSportsField); len(got) != 0 {
		t.Errorf("FindByKind(sports field) returned %d, want 0", len(got))
	}
}

func TestResourceFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.csv")

	repo := NewResourceRepo()
	saved := repo.Save(&model.Resource{
		Name:        "Field, north",
		Description: `the "big" one`,
		Kind:        model.KindSportsField,
		Capacity:    22,
	})
	if err := repo.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded := NewResourceRepo()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	got, ok := loaded.FindByID(saved.ID)
	if !ok {
		t.Fatalf("resource %d missing after reload", saved.ID)
	}
	if got.Name != saved.Name || got.Description != saved.Description || got.Kind != saved.Kind || got.Capacity != saved.Capacity {
		t.Errorf("reloaded = %+v, want %+v", got, saved)
	}
}
