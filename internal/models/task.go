package models

// PlannedTask is a discrete to-do item for a specific date, optionally
// linked to a habit. A task with an empty HabitID is standalone and never
// contributes to any habit's score.
type PlannedTask struct {
	ID          string   `json:"id"`
	HabitID     string   `json:"habitId,omitempty"`
	Date        string   `json:"date"` // YYYY-MM-DD format
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	CompletedAt string   `json:"completedAt,omitempty"` // RFC3339 timestamp
	CreatedAt   string   `json:"createdAt"`             // RFC3339 timestamp
	Order       int      `json:"order"`
	Recurring   bool     `json:"recurring,omitempty"`
}

// Standalone reports whether the task is unlinked to any habit.
func (t PlannedTask) Standalone() bool {
	return t.HabitID == ""
}

// DayNote is the single freeform note for one calendar day, keyed by date.
type DayNote struct {
	Date      string `json:"date"` // YYYY-MM-DD format
	Note      string `json:"note"`
	CreatedAt string `json:"createdAt"` // RFC3339 timestamp
}
