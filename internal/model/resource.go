package model

import "fmt"

// ResourceKind classifies what a bookable resource physically is.
// The constant value is the symbolic name written to the data file;
// Label() returns the human-readable text shown in menus and reports.
type ResourceKind string

const (
	KindConferenceRoom  ResourceKind = "CONFERENCE_ROOM"
	KindRestaurantTable ResourceKind = "RESTAURANT_TABLE"
	KindWorkstation     ResourceKind = "WORKSTATION"
	KindSportsField     ResourceKind = "SPORTS_FIELD"
	KindService         ResourceKind = "SERVICE"
)

// ResourceKinds lists every valid kind in menu order.
var ResourceKinds = []ResourceKind{
	KindConferenceRoom,
	KindRestaurantTable,
	KindWorkstation,
	KindSportsField,
	KindService,
}

var kindLabels = map[ResourceKind]string{
	KindConferenceRoom:  "Conference Room",
	KindRestaurantTable: "Restaurant Table",
	KindWorkstation:     "Workstation",
	KindSportsField:     "Sports Field",
	KindService:         "Service",
}

// Label returns the display text for the kind, or the symbolic name
// itself for an unknown value.
func (k ResourceKind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseResourceKind converts a symbolic name back into a ResourceKind.
func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(s)
	if _, ok := kindLabels[k]; !ok {
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
	return k, nil
}

// Resource is something that can be reserved for a time interval:
// a room, a table, a workstation, a sports field or a generic
// service.  Like Customer, ID 0 means the resource has not been
// persisted yet.
//
// Fields:
//  ID          – unique positive identifier, 0 until saved.
//  Name        – short display name.
//  Description – free-text description.
//  Kind        – what the resource is (see ResourceKind).
//  Capacity    – how many people the resource accommodates, > 0.
type Resource struct {
	ID          int64
	Name        string
	Description string
	Kind        ResourceKind
	Capacity    int
}
