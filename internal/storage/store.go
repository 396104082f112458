package storage

import (
	"encoding/json"
	"fmt"

	"github.com/nleeper/cadence/internal/models"
)

// Collection keys. Year archives use one key per year.
const (
	KeyHabits        = "habits"
	KeyEntries       = "entries"
	KeyPlannedTasks  = "planned-tasks"
	KeyDayNotes      = "day-notes"
	KeyArchivedYears = "archived-years"
	KeyLastYearCheck = "last-year-check"
)

// YearKey returns the store key holding the archive for a calendar year.
func YearKey(year int) string {
	return fmt.Sprintf("year-%d", year)
}

// Store exposes the typed collections over a raw KV. Every read returns the
// whole collection and every write replaces it; callers filter and mutate
// in memory.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Init() error  { return s.kv.Init() }
func (s *Store) Load() error  { return s.kv.Load() }
func (s *Store) Close() error { return s.kv.Close() }
func (s *Store) Path() string { return s.kv.Path() }

func getCollection[T any](s *Store, key string) ([]T, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s collection: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}

	return out, nil
}

func setValue(s *Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	return s.kv.Set(key, raw)
}

func (s *Store) Habits() ([]models.Habit, error) {
	return getCollection[models.Habit](s, KeyHabits)
}

func (s *Store) SaveHabits(habits []models.Habit) error {
	return setValue(s, KeyHabits, habits)
}

func (s *Store) Entries() ([]models.HabitEntry, error) {
	return getCollection[models.HabitEntry](s, KeyEntries)
}

func (s *Store) SaveEntries(entries []models.HabitEntry) error {
	return setValue(s, KeyEntries, entries)
}

func (s *Store) PlannedTasks() ([]models.PlannedTask, error) {
	return getCollection[models.PlannedTask](s, KeyPlannedTasks)
}

func (s *Store) SavePlannedTasks(tasks []models.PlannedTask) error {
	return setValue(s, KeyPlannedTasks, tasks)
}

func (s *Store) DayNotes() ([]models.DayNote, error) {
	return getCollection[models.DayNote](s, KeyDayNotes)
}

func (s *Store) SaveDayNotes(notes []models.DayNote) error {
	return setValue(s, KeyDayNotes, notes)
}

func (s *Store) ArchivedYears() ([]int, error) {
	return getCollection[int](s, KeyArchivedYears)
}

func (s *Store) SaveArchivedYears(years []int) error {
	return setValue(s, KeyArchivedYears, years)
}

// YearArchive returns the snapshot for a year. The second return is false
// when no archive exists for that year.
func (s *Store) YearArchive(year int) (models.YearArchive, bool, error) {
	raw, ok, err := s.kv.Get(YearKey(year))
	if err != nil || !ok {
		return models.YearArchive{}, false, err
	}

	var archive models.YearArchive
	if err := json.Unmarshal(raw, &archive); err != nil {
		return models.YearArchive{}, false, fmt.Errorf("failed to parse archive for %d: %w", year, err)
	}

	return archive, true, nil
}

func (s *Store) SaveYearArchive(archive models.YearArchive) error {
	return setValue(s, YearKey(archive.Year), archive)
}

// LastYearCheck returns the persisted rollover marker. The second return is
// false when no check has ever run.
func (s *Store) LastYearCheck() (int, bool, error) {
	raw, ok, err := s.kv.Get(KeyLastYearCheck)
	if err != nil || !ok {
		return 0, false, err
	}

	var year int
	if err := json.Unmarshal(raw, &year); err != nil {
		return 0, false, fmt.Errorf("failed to parse last year check marker: %w", err)
	}

	return year, true, nil
}

func (s *Store) SaveLastYearCheck(year int) error {
	return setValue(s, KeyLastYearCheck, year)
}
