// Package tracker owns every mutation of the live collections: habit CRUD,
// entry toggles, planned tasks with their habit-completion reconciliation,
// and day notes. All derived numbers live in score and streak; this package
// only reads whole collections, mutates, and writes them back.
package tracker

import (
	"time"

	"github.com/nleeper/cadence/internal/storage"
)

type Service struct {
	store *storage.Store
	now   func() time.Time
}

func New(store *storage.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// NewWithClock injects a fixed clock for tests.
func NewWithClock(store *storage.Store, now func() time.Time) *Service {
	return &Service{
		store: store,
		now:   now,
	}
}

func (s *Service) Store() *storage.Store {
	return s.store
}

// Today returns the current calendar day per the service clock.
func (s *Service) Today() string {
	return s.now().Format("2006-01-02")
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
