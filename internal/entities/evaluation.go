// Package entities contains core business entities.
package entities

import "time"

// Evaluation scores a completed task. A task holds at most one, enforced by
// a uniqueness constraint on the task reference.
type Evaluation struct {
	ID          int64
	Score       int
	CreatedAt   time.Time
	TaskID      int64
	EvaluatorID int64
}
