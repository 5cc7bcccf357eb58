// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// StatusOpen marks a task as not started.
	StatusOpen TaskStatus = "OPEN"
	// StatusInProgress marks a task as being worked on.
	StatusInProgress TaskStatus = "IN_PROGRESS"
	// StatusDone marks a task as completed and eligible for evaluation.
	StatusDone TaskStatus = "DONE"
)

// Valid reports whether the status is one of the known values.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a domain model of a unit of work assigned within a team.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	Deadline    *time.Time
	CreatorID   int64
	AssigneeID  int64
}

// TaskPatch carries a partial update; nil fields keep prior values.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Deadline    *time.Time
}
