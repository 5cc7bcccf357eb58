// Package entities contains core business entities.
package entities

import "time"

// Comment is a free-form note attached to a task.
type Comment struct {
	ID        int64
	Text      string
	CreatedAt time.Time
	TaskID    int64
	AuthorID  int64
}
