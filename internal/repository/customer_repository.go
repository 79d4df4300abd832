package repository

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/iliyamo/booking-manager/internal/model"
)

// CustomerRepo is the in-memory store for customers, keyed by id,
// with flat-file persistence.  Identifiers are assigned sequentially
// starting at 1 and are never reused, not even after a deletion.
// The store has no internal locking: the application is a single
// interactive session with exactly one actor.
type CustomerRepo struct {
	items  map[int64]*model.Customer
	nextID int64
}

// NewCustomerRepo returns an empty customer store.
func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{items: make(map[int64]*model.Customer), nextID: 1}
}

// Save inserts or overwrites the customer keyed by its id.  A zero
// id receives the next sequential identifier; a caller-supplied id
// at or above the counter advances the counter past it, so records
// reloaded from file never collide with new ones.
func (r *CustomerRepo) Save(c *model.Customer) *model.Customer {
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	} else if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	r.items[c.ID] = c
	return c
}

// FindByID returns the customer with the given id, if present.
func (r *CustomerRepo) FindByID(id int64) (*model.Customer, bool) {
	c, ok := r.items[id]
	return c, ok
}

// FindAll returns every stored customer in unspecified order.
func (r *CustomerRepo) FindAll() []*model.Customer {
	out := make([]*model.Customer, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out
}

// FindByEmail returns all customers whose email matches,
// case-insensitively.
func (r *CustomerRepo) FindByEmail(email string) []*model.Customer {
	var out []*model.Customer
	for _, c := range r.items {
		if strings.EqualFold(c.Email, email) {
			out = append(out, c)
		}
	}
	return out
}

// Delete removes the customer with the given id and reports whether
// an entry existed.  The id is never handed out again.
func (r *CustomerRepo) Delete(id int64) bool {
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	return true
}

var customerHeader = []string{"id", "nome", "cognome", "email", "telefono"}

// SaveToFile writes every customer to path as delimited text, one
// record per line after the header, ordered by id.
func (r *CustomerRepo) SaveToFile(path string) error {
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		c := r.items[id]
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
		})
	}
	return writeRecords(path, customerHeader, rows)
}

// LoadFromFile replaces the store's contents with the records parsed
// from path and resets the id counter to max(id)+1.  A missing file
// or one without data rows leaves the store untouched.  Rows that
// fail to parse are skipped with a diagnostic.
func (r *CustomerRepo) LoadFromFile(path string) error {
	rows, err := readRecords(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	items := make(map[int64]*model.Customer, len(rows))
	var maxID int64
	for _, row := range rows {
		if len(row) < 5 {
			log.Printf("%s: skipping row with %d fields, want 5", path, len(row))
			continue
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil || id <= 0 {
			log.Printf("%s: skipping row with bad id %q", path, row[0])
			continue
		}
		items[id] = &model.Customer{
			ID:        id,
			FirstName: row[1],
			LastName:  row[2],
			Email:     row[3],
			Phone:     row[4],
		}
		if id > maxID {
			maxID = id
		}
	}

	r.items = items
	r.nextID = maxID + 1
	return nil
}
