// Package archive partitions habit history by calendar year. A persisted
// marker records the last year the rollover check ran; when a new year is
// detected with live entries from before it, the whole live set is
// snapshotted into an immutable YearArchive and the entries collection is
// reset. Habits are never reset, only entries.
package archive

import (
	"sort"
	"time"

	"github.com/nleeper/cadence/internal/logger"
	"github.com/nleeper/cadence/internal/models"
	"github.com/nleeper/cadence/internal/storage"
)

type Manager struct {
	store *storage.Store
	now   func() time.Time
}

func NewManager(store *storage.Store) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

// NewManagerWithClock injects a fixed clock for tests.
func NewManagerWithClock(store *storage.Store, now func() time.Time) *Manager {
	return &Manager{
		store: store,
		now:   now,
	}
}

// CheckYearRollover runs the once-per-session year boundary check. When the
// persisted marker is absent or behind the current year and the live
// entries include at least one date from a previous year, the live set is
// archived and entries are cleared. The marker always advances to the
// current year. Returns whether the marker moved.
//
// The whole live entry set snapshots under a single key: the most recent
// entry year before the current one (the year being closed out). Live
// entries spanning several past years still land in that one snapshot; the
// import backfill path is the one that partitions strictly by entry year.
//
// The snapshot, index, entries-clear, and marker writes are not atomic. The
// ordering makes an interruption recoverable: a rerun overwrites the same
// snapshot, the index merge skips duplicates, and the marker only advances
// last.
func (m *Manager) CheckYearRollover() (bool, error) {
	currentYear := m.now().Year()

	marker, ok, err := m.store.LastYearCheck()
	if err != nil {
		return false, err
	}
	if ok && marker >= currentYear {
		return false, nil
	}

	entries, err := m.store.Entries()
	if err != nil {
		return false, err
	}

	closingYear := 0
	for _, e := range entries {
		if y := models.YearOf(e.Date); y != 0 && y < currentYear && y > closingYear {
			closingYear = y
		}
	}

	if closingYear != 0 {
		if err := m.snapshot(closingYear); err != nil {
			return false, err
		}
		if err := m.store.SaveEntries([]models.HabitEntry{}); err != nil {
			return false, err
		}
		logger.Info("year rolled over", "closedYear", closingYear, "archivedEntries", len(entries))
	}

	if err := m.store.SaveLastYearCheck(currentYear); err != nil {
		return false, err
	}
	return true, nil
}

// ArchiveNow snapshots the live habits and entries under the current
// calendar year.
func (m *Manager) ArchiveNow() error {
	return m.snapshot(m.now().Year())
}

// snapshot writes the live collections as the archive for year and
// registers the year in the index.
func (m *Manager) snapshot(year int) error {
	habits, err := m.store.Habits()
	if err != nil {
		return err
	}
	entries, err := m.store.Entries()
	if err != nil {
		return err
	}

	if err := m.store.SaveYearArchive(models.YearArchive{
		Year:       year,
		Habits:     habits,
		Entries:    entries,
		ArchivedAt: m.now().UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}

	return m.registerYears([]int{year})
}

// registerYears merges years into the descending archived-years index
// without duplicates.
func (m *Manager) registerYears(years []int) error {
	index, err := m.store.ArchivedYears()
	if err != nil {
		return err
	}

	present := make(map[int]bool, len(index))
	for _, y := range index {
		present[y] = true
	}

	changed := false
	for _, y := range years {
		if !present[y] {
			index = append(index, y)
			present[y] = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	sort.Sort(sort.Reverse(sort.IntSlice(index)))
	return m.store.SaveArchivedYears(index)
}

// Import fully replaces the live habits and entries with a backup payload,
// then backfills per-year archives: every entry dated before the current
// year lands in that year's archive, while current-year entries stay live.
// Habits in each backfilled archive are those created on or before its
// year. The backup's ExportedAt is ignored.
func (m *Manager) Import(b models.Backup) error {
	currentYear := m.now().Year()

	live := make([]models.HabitEntry, 0, len(b.Entries))
	byYear := make(map[int][]models.HabitEntry)
	for _, e := range b.Entries {
		y := models.YearOf(e.Date)
		switch {
		case y == 0:
			// Unparseable date; drop rather than mis-file.
			logger.Warn("skipping entry with invalid date", "habitId", e.HabitID, "date", e.Date)
		case y < currentYear:
			byYear[y] = append(byYear[y], e)
		default:
			live = append(live, e)
		}
	}

	if err := m.store.SaveHabits(b.Habits); err != nil {
		return err
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	for _, y := range years {
		var habits []models.Habit
		for _, h := range b.Habits {
			if created := models.YearOf(h.CreatedAt); created != 0 && created <= y {
				habits = append(habits, h)
			}
		}
		if err := m.store.SaveYearArchive(models.YearArchive{
			Year:       y,
			Habits:     habits,
			Entries:    byYear[y],
			ArchivedAt: m.now().UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	if err := m.registerYears(years); err != nil {
		return err
	}

	if err := m.store.SaveEntries(live); err != nil {
		return err
	}

	logger.Info("backup imported", "habits", len(b.Habits), "liveEntries", len(live), "archivedYears", len(years))
	return nil
}

// ArchivedYears returns the descending index of archived years.
func (m *Manager) ArchivedYears() ([]int, error) {
	return m.store.ArchivedYears()
}

// Archive returns the snapshot for one year; the second return is false
// when the year was never archived.
func (m *Manager) Archive(year int) (models.YearArchive, bool, error) {
	return m.store.YearArchive(year)
}
