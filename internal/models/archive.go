package models

// YearArchive is an immutable snapshot of habits and entries as they stood
// when a calendar year was archived. Once written for a year it is only
// read, never modified, by the live application.
type YearArchive struct {
	Year       int          `json:"year"`
	Habits     []Habit      `json:"habits"`
	Entries    []HabitEntry `json:"entries"`
	ArchivedAt string       `json:"archivedAt"` // RFC3339 timestamp
}

// Backup is the export/import payload. ExportedAt is informational and
// ignored on import.
type Backup struct {
	Habits     []Habit      `json:"habits"`
	Entries    []HabitEntry `json:"entries"`
	ExportedAt string       `json:"exportedAt"`
}
