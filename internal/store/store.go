package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// AdminAccount is a bootstrap admin reconciled into the document at
// startup.
type AdminAccount struct {
	Name     string
	NIM      string
	Password string
}

// DefaultAdmins are the accounts guaranteed to exist with role=admin.
var DefaultAdmins = []AdminAccount{
	{
		Name:     "Rayvan Alifarlo",
		NIM:      "rayvanalifarlo@student.telkomuniversity.ac.id",
		Password: "admin123",
	},
	{
		Name:     "Muhammad Fiqri Habibi",
		NIM:      "muhammadfiqrihabibi@student.telkomuniversity.ac.id",
		Password: "admin123",
	},
}

// Store owns the persisted document. Every load-mutate-save cycle runs
// under its mutex, so interleaved handlers cannot lose each other's
// writes. A backend write failure is logged and swallowed; the cached
// copy then remains the source of truth for the process lifetime.
type Store struct {
	mu      sync.Mutex
	backend Backend
	cache   *Document
}

// New creates a store over an explicit backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Open selects the storage tier once: Mongo when a URI is configured,
// otherwise the JSON file at path when its directory is writable,
// otherwise memory only.
func Open(path, mongoURI string) (*Store, error) {
	if mongoURI != "" {
		backend, err := ConnectMongo(mongoURI)
		if err != nil {
			return nil, fmt.Errorf("open mongo backend: %w", err)
		}
		log.WithField("backend", "mongo").Info("Document store opened")
		return New(backend), nil
	}

	file := &FileBackend{Path: path}
	if !file.Writable() {
		log.WithField("path", path).Warn("Storage not writable, falling back to in-memory store; data will not survive restarts")
		return New(&MemoryBackend{}), nil
	}
	log.WithFields(log.Fields{"backend": "file", "path": path}).Info("Document store opened")
	return New(file), nil
}

// Load returns a snapshot of the current document: the cached copy if
// present, else the backend's copy, else a freshly seeded document
// (which is persisted before being returned).
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

func (s *Store) load() (*Document, error) {
	if s.cache != nil {
		return s.cache, nil
	}

	doc, err := s.backend.ReadDocument()
	if errors.Is(err, ErrNoDocument) {
		doc = SeedDocument()
		s.save(doc)
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	s.cache = doc
	return doc, nil
}

// Save replaces the cached document unconditionally, then attempts to
// persist it. A persistence failure is a warning, not an error: callers
// cannot distinguish "durably saved" from "held only in memory".
func (s *Store) Save(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(doc.Clone())
}

func (s *Store) save(doc *Document) {
	s.cache = doc
	if err := s.backend.WriteDocument(doc); err != nil {
		log.WithError(err).Warn("Failed to persist document; changes held in memory only")
	}
}

// Update runs one read-modify-write cycle under the store's lock.
func (s *Store) Update(mutate func(doc *Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	mutate(doc)
	s.save(doc)
	return nil
}

// EnsureAdmins reconciles the default admin accounts into the document.
// Missing accounts are created; existing ones are forced back to
// role=admin with the default name, and their password is re-hashed only
// when the stored hash no longer matches the default, so running this
// twice is a no-op on content.
func (s *Store) EnsureAdmins(admins []AdminAccount) error {
	return s.Update(func(doc *Document) {
		doc.SchemaVersion = SchemaVersion
		for _, admin := range admins {
			idx := -1
			for i, u := range doc.Users {
				if u.NIM == admin.NIM {
					idx = i
					break
				}
			}

			if idx == -1 {
				hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
				if err != nil {
					log.WithError(err).WithField("nim", admin.NIM).Error("Failed to hash admin password")
					continue
				}
				doc.Users = append(doc.Users, models.User{
					ID:           doc.NextUserID(),
					Name:         admin.Name,
					NIM:          admin.NIM,
					PasswordHash: string(hash),
					Faculty:      "Administrator",
					Role:         models.RoleAdmin,
					CreatedAt:    time.Now(),
				})
				log.WithField("nim", admin.NIM).Info("Created admin account")
				continue
			}

			doc.Users[idx].Role = models.RoleAdmin
			doc.Users[idx].Name = admin.Name
			if bcrypt.CompareHashAndPassword([]byte(doc.Users[idx].PasswordHash), []byte(admin.Password)) != nil {
				hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
				if err != nil {
					log.WithError(err).WithField("nim", admin.NIM).Error("Failed to hash admin password")
					continue
				}
				doc.Users[idx].PasswordHash = string(hash)
				log.WithField("nim", admin.NIM).Info("Reset admin password to default")
			}
		}
	})
}
