package shell

import (
	"fmt"
	"sort"
	"time"

	"github.com/iliyamo/booking-manager/internal/model"
)

func (s *Shell) createResource() {
	s.banner("CREATE RESOURCE")
	name := s.readLine("Name: ")
	description := s.readLine("Description: ")

	fmt.Println("\nAvailable kinds:")
	for i, k := range model.ResourceKinds {
		fmt.Printf("  %d. %s\n", i+1, k.Label())
	}
	kind := model.ResourceKinds[s.readInt("Kind: ", 1, len(model.ResourceKinds))-1]

	capacity := s.readInt("Capacity: ", 1, 100000)

	r := &model.Resource{Name: name, Description: description, Kind: kind, Capacity: capacity}
	s.resources.Save(r)
	fmt.Printf("\nResource created with id %d.\n", r.ID)
	s.pause()
}

func (s *Shell) listResources() {
	s.banner("RESOURCES")
	list := s.resources.FindAll()
	if len(list) == 0 {
		fmt.Println("No resources registered.")
		s.pause()
		return
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	fmt.Printf("Total resources: %d\n\n", len(list))
	for _, r := range list {
		fmt.Println(formatResource(r))
	}
	s.pause()
}

// deleteResource removes a resource after warning when it still has
// future non-cancelled reservations.  No cascading here either.
func (s *Shell) deleteResource() {
	s.banner("DELETE RESOURCE")
	id := s.readID("Resource id to delete (empty to cancel): ")
	if id == 0 {
		fmt.Println("Operation cancelled.")
		s.pause()
		return
	}

	now := time.Now()
	future := false
	for _, r := range s.booking.ByResource(id) {
		if r.Status != model.StatusCancelled && r.Start.After(now) {
			future = true
			break
		}
	}
	if future {
		fmt.Println("\nWARNING: this resource has future reservations!")
		if !s.confirm("Delete anyway? (y/n): ") {
			fmt.Println("Deletion cancelled.")
			s.pause()
			return
		}
	}

	if s.resources.Delete(id) {
		fmt.Println("\nResource deleted.")
	} else {
		fmt.Println("\nResource not found!")
	}
	s.pause()
}
