// Package entities contains core business entities.
package entities

import "time"

// Meeting is a domain model of a scheduled slot shared by its participants.
// The participant set is non-empty and always includes the creator.
type Meeting struct {
	ID           int64
	Title        string
	StartTime    time.Time
	EndTime      time.Time
	CreatorID    int64
	Participants []int64
}

// Overlaps reports whether the meeting intersects the half-open interval
// [start, end). Touching endpoints do not overlap.
func (m Meeting) Overlaps(start, end time.Time) bool {
	return m.StartTime.Before(end) && m.EndTime.After(start)
}

// MeetingPatch carries a partial update; nil fields keep prior values.
// A non-nil Participants slice replaces the whole participant set.
type MeetingPatch struct {
	Title        *string
	StartTime    *time.Time
	EndTime      *time.Time
	Participants []int64
}
