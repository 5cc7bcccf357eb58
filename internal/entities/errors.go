// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrForbidden is returned when the policy denies an action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrMeetingNotFound signals missing meeting.
	ErrMeetingNotFound = errors.New("meeting not found")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrEmailTaken signals registration with an already used email.
	ErrEmailTaken = errors.New("email taken")
	// ErrInvalidInterval signals a meeting whose end is not after its start.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrSchedulingConflict signals a double-booked participant.
	ErrSchedulingConflict = errors.New("scheduling conflict")
	// ErrCrossTeamAssignment signals creator and assignee on different teams.
	ErrCrossTeamAssignment = errors.New("cross-team assignment")
	// ErrTaskNotDone signals evaluation of a task that is not DONE.
	ErrTaskNotDone = errors.New("task not done")
	// ErrAlreadyEvaluated signals a second evaluation for the same task.
	ErrAlreadyEvaluated = errors.New("already evaluated")
	// ErrInvalidScore signals an evaluation score outside [1,5].
	ErrInvalidScore = errors.New("invalid score")
)

// ConflictError names the participant and meeting blocking a proposed slot.
type ConflictError struct {
	UserID    int64
	MeetingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("scheduling conflict: user %d is booked in meeting %d", e.UserID, e.MeetingID)
}

func (e *ConflictError) Unwrap() error { return ErrSchedulingConflict }
