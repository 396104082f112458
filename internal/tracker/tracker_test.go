package tracker

import (
	"testing"
	"time"

	"github.com/nleeper/cadence/internal/models"
	"github.com/nleeper/cadence/internal/storage"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryKV())
	return NewWithClock(store, func() time.Time { return testNow })
}

func mustAddHabit(t *testing.T, s *Service, name string, priority models.Priority) models.Habit {
	t.Helper()
	habit, err := s.AddHabit(name, "", priority, "")
	if err != nil {
		t.Fatalf("AddHabit(%s) failed: %v", name, err)
	}
	return habit
}

func findEntry(t *testing.T, s *Service, habitID, date string) (models.HabitEntry, bool) {
	t.Helper()
	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	for _, e := range entries {
		if e.HabitID == habitID && e.Date == date {
			return e, true
		}
	}
	return models.HabitEntry{}, false
}
