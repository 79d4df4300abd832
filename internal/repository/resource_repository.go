package repository

import (
	"log"
	"sort"
	"strconv"

	"github.com/iliyamo/booking-manager/internal/model"
)

// ResourceRepo is the in-memory store for bookable resources.  It
// follows the same id-assignment and persistence contract as
// CustomerRepo.
type ResourceRepo struct {
	items  map[int64]*model.Resource
	nextID int64
}

// NewResourceRepo returns an empty resource store.
func NewResourceRepo() *ResourceRepo {
	return &ResourceRepo{items: make(map[int64]*model.Resource), nextID: 1}
}

// Save inserts or overwrites the resource keyed by its id, assigning
// the next sequential id when the resource has none.
func (r *ResourceRepo) Save(res *model.Resource) *model.Resource {
	if res.ID == 0 {
		res.ID = r.nextID
		r.nextID++
	} else if res.ID >= r.nextID {
		r.nextID = res.ID + 1
	}
	r.items[res.ID] = res
	return res
}

// FindByID returns the resource with the given id, if present.
func (r *ResourceRepo) FindByID(id int64) (*model.Resource, bool) {
	res, ok := r.items[id]
	return res, ok
}

// FindAll returns every stored resource in unspecified order.
func (r *ResourceRepo) FindAll() []*model.Resource {
	out := make([]*model.Resource, 0, len(r.items))
	for _, res := range r.items {
		out = append(out, res)
	}
	return out
}

// FindByKind returns all resources of the given kind.
func (r *ResourceRepo) FindByKind(kind model.ResourceKind) []*model.Resource {
	var out []*model.Resource
	for _, res := range r.items {
		if res.Kind == kind {
			out = append(out, res)
		}
	}
	return out
}

// Delete removes the resource with the given id and reports whether
// an entry existed.
func (r *ResourceRepo) Delete(id int64) bool {
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	return true
}

var resourceHeader = []string{"id", "nome", "descrizione", "tipo", "capacita"}

// SaveToFile writes every resource to path as delimited text.  The
// tipo column holds the kind's symbolic name, not its display label.
func (r *ResourceRepo) SaveToFile(path string) error {
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		res := r.items[id]
		rows = append(rows, []string{
			strconv.FormatInt(res.ID, 10),
			res.Name,
			res.Description,
			string(res.Kind),
			strconv.Itoa(res.Capacity),
		})
	}
	return writeRecords(path, resourceHeader, rows)
}

// LoadFromFile replaces the store's contents with the records parsed
// from path, with the same no-op and row-skipping behavior as the
// customer store.
func (r *ResourceRepo) LoadFromFile(path string) error {
	rows, err := readRecords(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	items := make(map[int64]*model.Resource, len(rows))
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
		kind, err := model.ParseResourceKind(row[3])
		if err != nil {
			log.Printf("%s: skipping row %d: %v", path, id, err)
			continue
		}
		capacity, err := strconv.Atoi(row[4])
		if err != nil || capacity <= 0 {
			log.Printf("%s: skipping row %d: bad capacity %q", path, id, row[4])
			continue
		}
		items[id] = &model.Resource{
			ID:          id,
			Name:        row[1],
			Description: row[2],
			Kind:        kind,
			Capacity:    capacity,
		}
		if id > maxID {
			maxID = id
		}
	}

	r.items = items
	r.nextID = maxID + 1
	return nil
}
