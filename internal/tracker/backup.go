package tracker

import "github.com/nleeper/cadence/internal/models"

// Export returns the full backup payload of live habits and entries.
func (s *Service) Export() (models.Backup, error) {
	habits, err := s.store.Habits()
	if err != nil {
		return models.Backup{}, err
	}
	entries, err := s.store.Entries()
	if err != nil {
		return models.Backup{}, err
	}

	return models.Backup{
		Habits:     habits,
		Entries:    entries,
		ExportedAt: s.timestamp(),
	}, nil
}
