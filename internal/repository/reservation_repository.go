package repository

import (
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/iliyamo/booking-manager/internal/model"
)

// ReservationRepo is the in-memory store for reservations.  It owns
// the stored instances and their identifiers; the validation rules
// that decide whether a reservation may exist at all live in the
// booking service, never here.  Reservations are not exposed for
// deletion: cancellation is a status, not a removal.
type ReservationRepo struct {
	items  map[int64]*model.Reservation
	nextID int64
}

// NewReservationRepo returns an empty reservation store.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{items: make(map[int64]*model.Reservation), nextID: 1}
}

// Save inserts or overwrites the reservation keyed by its id,
// assigning the next sequential id when the reservation has none.
func (r *ReservationRepo) Save(res *model.Reservation) *model.Reservation {
	if res.ID == 0 {
		res.ID = r.nextID
		r.nextID++
	} else if res.ID >= r.nextID {
		r.nextID = res.ID + 1
	}
	r.items[res.ID] = res
	return res
}

// FindByID returns the reservation with the given id, if present.
func (r *ReservationRepo) FindByID(id int64) (*model.Reservation, bool) {
	res, ok := r.items[id]
	return res, ok
}

// FindAll returns every stored reservation in unspecified order.
func (r *ReservationRepo) FindAll() []*model.Reservation {
	out := make([]*model.Reservation, 0, len(r.items))
	for _, res := range r.items {
		out = append(out, res)
	}
	return out
}

// FindByCustomer returns the reservations owned by the given
// customer, ordered by start time ascending.  Reservations whose
// customer reference is unresolved never match.
func (r *ReservationRepo) FindByCustomer(customerID int64) []*model.Reservation {
	var out []*model.Reservation
	for _, res := range r.items {
		if res.Customer != nil && res.Customer.ID == customerID {
			out = append(out, res)
		}
	}
	return sortByStart(out)
}

// FindByResource returns the reservations targeting the given
// resource, ordered by start time ascending.
func (r *ReservationRepo) FindByResource(resourceID int64) []*model.Reservation {
	var out []*model.Reservation
	for _, res := range r.items {
		if res.Resource != nil && res.Resource.ID == resourceID {
			out = append(out, res)
		}
	}
	return sortByStart(out)
}

// FindByPeriod returns the reservations whose interval intersects the
// half-open window [start, end), ordered by start time ascending.
// Intersection, not containment: a reservation straddling a window
// edge is included.
func (r *ReservationRepo) FindByPeriod(start, end time.Time) []*model.Reservation {
	var out []*model.Reservation
	for _, res := range r.items {
		if res.Overlaps(start, end) {
			out = append(out, res)
		}
	}
	return sortByStart(out)
}

// FindByStatus returns the reservations in the given status, ordered
// by start time ascending.
func (r *ReservationRepo) FindByStatus(status model.ReservationStatus) []*model.Reservation {
	var out []*model.Reservation
	for _, res := range r.items {
		if res.Status == status {
			out = append(out, res)
		}
	}
	return sortByStart(out)
}

// Delete removes the reservation with the given id and reports
// whether an entry existed.  Only file reloads use this; the menu
// never deletes reservations.
func (r *ReservationRepo) Delete(id int64) bool {
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	return true
}

func sortByStart(rs []*model.Reservation) []*model.Reservation {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Start.Before(rs[j].Start) })
	return rs
}

var reservationHeader = []string{"id", "clienteId", "risorsaId", "dataOraInizio", "dataOraFine", "stato", "note"}

// SaveToFile writes every reservation to path as delimited text.
// Unresolved customer or resource references are written as empty
// fields; timestamps use model.TimeLayout and stato holds the
// status's symbolic name.
func (r *ReservationRepo) SaveToFile(path string) error {
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		res := r.items[id]
		customerID := ""
		if res.Customer != nil {
			customerID = strconv.FormatInt(res.Customer.ID, 10)
		}
		resourceID := ""
		if res.Resource != nil {
			resourceID = strconv.FormatInt(res.Resource.ID, 10)
		}
		rows = append(rows, []string{
			strconv.FormatInt(res.ID, 10),
			customerID,
			resourceID,
			res.Start.Format(model.TimeLayout),
			res.End.Format(model.TimeLayout),
			string(res.Status),
			res.Note,
		})
	}
	return writeRecords(path, reservationHeader, rows)
}

// LoadFromFile replaces the store's contents with the records parsed
// from path.  Foreign ids are resolved through the customer and
// resource stores at load time; an id that no longer resolves loads
// as a nil reference rather than failing the row.  The id counter is
// reset to max(id)+1 and unparsable rows are skipped with a
// diagnostic.
func (r *ReservationRepo) LoadFromFile(path string, customers *CustomerRepo, resources *ResourceRepo) error {
	rows, err := readRecords(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	items := make(map[int64]*model.Reservation, len(rows))
	var maxID int64
	for _, row := range rows {
		if len(row) < 7 {
			log.Printf("%s: skipping row with %d fields, want 7", path, len(row))
			continue
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil || id <= 0 {
			log.Printf("%s: skipping row with bad id %q", path, row[0])
			continue
		}
		start, err := time.Parse(model.TimeLayout, row[3])
		if err != nil {
			log.Printf("%s: skipping row %d: bad start %q", path, id, row[3])
			continue
		}
		end, err := time.Parse(model.TimeLayout, row[4])
		if err != nil {
			log.Printf("%s: skipping row %d: bad end %q", path, id, row[4])
			continue
		}
		status, err := model.ParseReservationStatus(row[5])
		if err != nil {
			log.Printf("%s: skipping row %d: %v", path, id, err)
			continue
		}

		var customer *model.Customer
		if row[1] != "" {
			customerID, err := strconv.ParseInt(row[1], 10, 64)
			if err != nil {
				log.Printf("%s: skipping row %d: bad customer id %q", path, id, row[1])
				continue
			}
			customer, _ = customers.FindByID(customerID)
		}
		var resource *model.Resource
		if row[2] != "" {
			resourceID, err := strconv.ParseInt(row[2], 10, 64)
			if err != nil {
				log.Printf("%s: skipping row %d: bad resource id %q", path, id, row[2])
				continue
			}
			resource, _ = resources.FindByID(resourceID)
		}

		items[id] = &model.Reservation{
			ID:       id,
			Customer: customer,
			Resource: resource,
			Start:    start,
			End:      end,
			Status:   status,
			Note:     row[6],
		}
		if id > maxID {
			maxID = id
		}
	}

	r.items = items
	r.nextID = maxID + 1
	return nil
}
