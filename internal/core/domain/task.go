package domain

import "time"

// TaskType classifies the kind of content a planner task schedules.
type TaskType string

const (
	TaskVideo    TaskType = "VIDEO"
	TaskCaption  TaskType = "CAPTION"
	TaskStrategy TaskType = "STRATEGY"
)

// TaskStatus is the publication state of a planner task. No operation
// currently flips a task to published; the value exists for display.
type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskPublished TaskStatus = "PUBLISHED"
)

// PlannerTask is a scheduled piece of content with a target date,
// platform, and status. Tasks are append-only: they are never mutated in
// place and survive logout.
type PlannerTask struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Type     TaskType   `json:"type"`
	Platform string     `json:"platform"`
	Date     time.Time  `json:"date"`
	Status   TaskStatus `json:"status"`
	Color    string     `json:"color"`
}

// OnDate reports whether the task falls on the given calendar day
// (day granularity, compared in UTC).
func (t PlannerTask) OnDate(day time.Time) bool {
	ty, tm, td := t.Date.UTC().Date()
	dy, dm, dd := day.UTC().Date()
	return ty == dy && tm == dm && td == dd
}
