// Package tasks implements the ownership-scoped garden task store.
package tasks

import "time"

// Priorities a task can have.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	// Due is when the task must be done. Reminder is an optional lead time in
	// minutes; ReminderTime is the client-computed moment to alert at. Both
	// are stored verbatim, the server does no scheduling.
	Due          time.Time  `json:"due"`
	Reminder     *int       `json:"reminder,omitempty"`
	ReminderTime *time.Time `json:"reminderTime,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Completed    bool       `json:"completed"`
	UserID       string     `json:"userId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
