package models

// Priority is the weight tier assigned to habits and planned tasks.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// PriorityPoints maps each priority tier to its fixed point value. Every
// scoring computation in the application consumes this table.
var PriorityPoints = map[Priority]int{
	PriorityLow:      1,
	PriorityMedium:   2,
	PriorityHigh:     3,
	PriorityCritical: 5,
}

// PriorityColors holds the default display color per tier.
var PriorityColors = map[Priority]string{
	PriorityLow:      "#64748b",
	PriorityMedium:   "#3b82f6",
	PriorityHigh:     "#f59e0b",
	PriorityCritical: "#ef4444",
}

// Points returns the point value for p, or 0 for an unknown tier.
func (p Priority) Points() int {
	return PriorityPoints[p]
}

// Valid reports whether p is one of the four known tiers.
func (p Priority) Valid() bool {
	_, ok := PriorityPoints[p]
	return ok
}

// Habit represents a recurring behavior to track.
type Habit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Color       string   `json:"color"`
	CreatedAt   string   `json:"createdAt"` // YYYY-MM-DD format
	Archived    bool     `json:"archived"`
	Order       int      `json:"order"`
}

// HabitEntry represents a single day's record of a habit. At most one entry
// exists per (habit, date) pair.
type HabitEntry struct {
	HabitID     string   `json:"habitId"`
	Date        string   `json:"date"` // YYYY-MM-DD format
	Completed   bool     `json:"completed"`
	CompletedAt string   `json:"completedAt,omitempty"` // RFC3339 timestamp
	Note        string   `json:"note,omitempty"`
	Tasks       []string `json:"tasks,omitempty"` // linked PlannedTask IDs
	// CompletionPercentage is derived from linked tasks; nil means 100.
	CompletionPercentage *float64 `json:"completionPercentage,omitempty"`
}

// Pct returns the entry's completion percentage, defaulting to 100 when the
// entry has no task-derived percentage.
func (e HabitEntry) Pct() float64 {
	if e.CompletionPercentage == nil {
		return 100
	}
	return *e.CompletionPercentage
}

// HabitStats is the derived per-habit summary shown alongside a habit.
type HabitStats struct {
	HabitID          string `json:"habitId"`
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
	TotalCompletions int    `json:"totalCompletions"`
	CompletionRate   int    `json:"completionRate"` // rounded percentage
}
