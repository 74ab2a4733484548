package store

import (
	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// SchemaVersion marks the current layout of the persisted document.
const SchemaVersion = 1

// Document is the single aggregate structure holding every persisted
// collection. It is always read and written as a whole.
type Document struct {
	SchemaVersion int               `json:"schema_version"`
	Users         []models.User     `json:"users"`
	Schedules     []models.Schedule `json:"schedules"`
	Vehicles      []models.Vehicle  `json:"vehicles"`
	Trips         []models.Trip     `json:"trips"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the cached document to mutation outside the store's lock.
func (d *Document) Clone() *Document {
	c := &Document{
		SchemaVersion: d.SchemaVersion,
		Users:         make([]models.User, len(d.Users)),
		Schedules:     make([]models.Schedule, len(d.Schedules)),
		Vehicles:      make([]models.Vehicle, len(d.Vehicles)),
		Trips:         make([]models.Trip, len(d.Trips)),
	}
	copy(c.Users, d.Users)
	copy(c.Schedules, d.Schedules)
	copy(c.Vehicles, d.Vehicles)
	copy(c.Trips, d.Trips)
	return c
}

// NextUserID returns the next monotonic user ID.
func (d *Document) NextUserID() int {
	max := 0
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// NextTripID returns the next monotonic trip ID.
func (d *Document) NextTripID() int {
	max := 0
	for _, t := range d.Trips {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// SeedDocument builds the initial document: the fixed departure board and
// the three shuttles, with no users or trips yet.
func SeedDocument() *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Users:         []models.User{},
		Schedules: []models.Schedule{
			{ID: 1, Time: "06:00", Period: "AM", Halte: "Gedung Telkom", Vehicle: "TucTuc #01", Status: models.ScheduleAvailable},
			{ID: 2, Time: "06:15", Period: "AM", Halte: "Sukabirus", Vehicle: "TucTuc #02", Status: models.ScheduleAvailable},
			{ID: 3, Time: "06:30", Period: "AM", Halte: "Yogya Sukapura", Vehicle: "TucTuc #01", Status: models.ScheduleArriving},
			{ID: 4, Time: "06:45", Period: "AM", Halte: "Gedung Telkom", Vehicle: "TucTuc #03", Status: models.ScheduleAvailable},
			{ID: 5, Time: "07:00", Period: "AM", Halte: "MB Tel-U", Vehicle: "TucTuc #01", Status: models.ScheduleFull},
			{ID: 6, Time: "07:15", Period: "AM", Halte: "Jalan Raya", Vehicle: "TucTuc #02", Status: models.ScheduleAvailable},
			{ID: 7, Time: "07:30", Period: "AM", Halte: "Sukapura", Vehicle: "TucTuc #03", Status: models.ScheduleAvailable},
			{ID: 8, Time: "07:45", Period: "AM", Halte: "Gedung Telkom", Vehicle: "TucTuc #01", Status: models.ScheduleArriving},
			{ID: 9, Time: "08:00", Period: "AM", Halte: "Gerbang Tel-U", Vehicle: "TucTuc #02", Status: models.ScheduleAvailable},
			{ID: 10, Time: "08:15", Period: "AM", Halte: "Sukabirus", Vehicle: "TucTuc #01", Status: models.ScheduleAvailable},
		},
		Vehicles: []models.Vehicle{
			{ID: 1, Name: "TucTuc #01", Status: "online", CurrentHalte: "Sukabirus", Passengers: 8, Lat: -6.9768, Lng: 107.6265},
			{ID: 2, Name: "TucTuc #02", Status: "online", CurrentHalte: "Gedung Telkom", Passengers: 12, Lat: -6.9733, Lng: 107.6307},
			{ID: 3, Name: "TucTuc #03", Status: "online", CurrentHalte: "Yogya Sukapura", Passengers: 4, Lat: -6.9772, Lng: 107.6335},
		},
		Trips: []models.Trip{},
	}
}
