package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
	"github.com/tuctuc-telu/shuttle-tracker/internal/store"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// Repo defines the record access operations over the document store.
type Repo interface {
	FindUserByNIM(ctx context.Context, nim string) (*models.User, error)
	CreateUser(ctx context.Context, name, nim, password, faculty string) (int, error)
	VerifyPassword(password, hash string) bool

	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	ListSchedulesByHalte(ctx context.Context, halte string) ([]models.Schedule, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	UpdateVehiclePosition(ctx context.Context, id int, lat, lng float64, halte string) error

	CreateTrip(ctx context.Context, userID int, vehicle, halteFrom, halteTo string) (int, error)
	ListTripsByUser(ctx context.Context, userID int) ([]models.Trip, error)

	Stats(ctx context.Context) (*models.Stats, error)
}

// DocumentRepo implements Repo over the whole-document store. Each
// operation is one load (and, when mutating, one save) of the document.
type DocumentRepo struct {
	Store *store.Store
}

// NewDocumentRepo creates a repo over the given store.
func NewDocumentRepo(s *store.Store) *DocumentRepo {
	return &DocumentRepo{Store: s}
}

// FindUserByNIM finds a user by their login identifier.
func (r *DocumentRepo) FindUserByNIM(ctx context.Context, nim string) (*models.User, error) {
	doc, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.NIM == nim {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser hashes the password and appends a new student account,
// returning its ID. NIM uniqueness is the caller's responsibility.
func (r *DocumentRepo) CreateUser(ctx context.Context, name, nim, password, faculty string) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	if faculty == "" {
		faculty = "Fakultas Informatika"
	}

	var id int
	err = r.Store.Update(func(doc *store.Document) {
		id = doc.NextUserID()
		doc.Users = append(doc.Users, models.User{
			ID:           id,
			Name:         name,
			NIM:          nim,
			PasswordHash: string(hash),
			Faculty:      faculty,
			Role:         models.RoleStudent,
			CreatedAt:    time.Now(),
		})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// VerifyPassword checks a raw password against a stored bcrypt hash.
func (r *DocumentRepo) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ListSchedules returns the full departure board.
func (r *DocumentRepo) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	doc, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Schedules, nil
}

// ListSchedulesByHalte returns departures from one halte.
func (r *DocumentRepo) ListSchedulesByHalte(ctx context.Context, halte string) ([]models.Schedule, error) {
	doc, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	filtered := []models.Schedule{}
	for _, s := range doc.Schedules {
		if s.Halte == halte {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// ListVehicles returns all shuttles.
func (r *DocumentRepo) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	doc, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Vehicles, nil
}

// UpdateVehiclePosition moves a shuttle to a new position. An unknown id
// leaves the document unchanged; position updates are last-writer-wins.
func (r *DocumentRepo) UpdateVehiclePosition(ctx context.Context, id int, lat, lng float64, halte string) error {
	return r.Store.Update(func(doc *store.Document) {
		for i := range doc.Vehicles {
			if doc.Vehicles[i].ID == id {
				doc.Vehicles[i].Lat = lat
				doc.Vehicles[i].Lng = lng
				doc.Vehicles[i].CurrentHalte = halte
				return
			}
		}
	})
}

// CreateTrip appends a new trip stamped with the current time and
// returns its ID. The user reference is not validated.
func (r *DocumentRepo) CreateTrip(ctx context.Context, userID int, vehicle, halteFrom, halteTo string) (int, error) {
	var id int
	err := r.Store.Update(func(doc *store.Document) {
		id = doc.NextTripID()
		doc.Trips = append(doc.Trips, models.Trip{
			ID:        id,
			UserID:    userID,
			Vehicle:   vehicle,
			HalteFrom: halteFrom,
			HalteTo:   halteTo,
			TripDate:  time.Now(),
		})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListTripsByUser returns the user's trips in reverse insertion order
// (most recently recorded first). This is deliberately append-order, not
// a timestamp sort.
func (r *DocumentRepo) ListTripsByUser(ctx context.Context, userID int) ([]models.Trip, error) {
	doc, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	trips := []models.Trip{}
	for i := len(doc.Trips) - 1; i >= 0; i-- {
		if doc.Trips[i].UserID == userID {
			trips = append(trips, doc.Trips[i])
		}
	}
	return trips, nil
}

// Stats derives the admin dashboard counts from the current document.
func (r *DocumentRepo) Stats(ctx context.Context) (*models.Stats, error) {
	doc, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	stats := &models.Stats{TotalTrips: len(doc.Trips)}
	for _, u := range doc.Users {
		if u.Role == models.RoleStudent {
			stats.TotalStudents++
		}
	}
	for _, v := range doc.Vehicles {
		if v.Status == "online" {
			stats.ActiveVehicles++
		}
	}
	return stats, nil
}
