package tracker

import "github.com/nleeper/cadence/internal/models"

// NoteForDate returns the day note for a date; the second return is false
// when none exists.
func (s *Service) NoteForDate(date string) (models.DayNote, bool, error) {
	notes, err := s.store.DayNotes()
	if err != nil {
		return models.DayNote{}, false, err
	}
	for _, n := range notes {
		if n.Date == date {
			return n, true, nil
		}
	}
	return models.DayNote{}, false, nil
}

// SaveNote creates or replaces the note for a date. An empty note deletes
// the record.
func (s *Service) SaveNote(date, note string) error {
	notes, err := s.store.DayNotes()
	if err != nil {
		return err
	}

	kept := make([]models.DayNote, 0, len(notes))
	for _, n := range notes {
		if n.Date != date {
			kept = append(kept, n)
		}
	}

	if note != "" {
		kept = append(kept, models.DayNote{
			Date:      date,
			Note:      note,
			CreatedAt: s.timestamp(),
		})
	}

	return s.store.SaveDayNotes(kept)
}
