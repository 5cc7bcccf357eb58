// Package api defines the JSON shapes exchanged with clients.
package api

import "time"

// ErrorCode enumerates machine-readable error identifiers.
type ErrorCode string

const (
	UNAUTHORIZED        ErrorCode = "UNAUTHORIZED"
	FORBIDDEN           ErrorCode = "FORBIDDEN"
	NOTFOUND            ErrorCode = "NOT_FOUND"
	INVALIDARGUMENT     ErrorCode = "INVALID_ARGUMENT"
	TEAMEXISTS          ErrorCode = "TEAM_EXISTS"
	EMAILTAKEN          ErrorCode = "EMAIL_TAKEN"
	INVALIDINTERVAL     ErrorCode = "INVALID_INTERVAL"
	SCHEDULINGCONFLICT  ErrorCode = "SCHEDULING_CONFLICT"
	CROSSTEAMASSIGNMENT ErrorCode = "CROSS_TEAM_ASSIGNMENT"
	TASKNOTDONE         ErrorCode = "TASK_NOT_DONE"
	ALREADYEVALUATED    ErrorCode = "ALREADY_EVALUATED"
	INVALIDSCORE        ErrorCode = "INVALID_SCORE"
	INTERNAL            ErrorCode = "INTERNAL"
)

// ErrorBody carries the code and human-readable message of a failure.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the envelope for every non-2xx reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// User is the transport shape of a registered person.
type User struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	TeamID *int64 `json:"team_id,omitempty"`
}

// Team is the transport shape of a team with its members.
type Team struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	InviteCode *string `json:"invite_code,omitempty"`
	AdminID    int64   `json:"admin_id"`
	Members    []User  `json:"members"`
}

// Task is the transport shape of a task.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatorID   int64      `json:"creator_id"`
	AssigneeID  int64      `json:"assignee_id"`
}

// Meeting is the transport shape of a meeting.
type Meeting struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	CreatorID    int64     `json:"creator_id"`
	Participants []int64   `json:"participants"`
}

// Evaluation is the transport shape of a task score.
type Evaluation struct {
	ID          int64     `json:"id"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
	TaskID      int64     `json:"task_id"`
	EvaluatorID int64     `json:"evaluator_id"`
}

// Comment is the transport shape of a task comment.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	TaskID    int64     `json:"task_id"`
	AuthorID  int64     `json:"author_id"`
}

// RegisterUserRequest creates a user record.
type RegisterUserRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// CreateTeamRequest creates a team with the actor as admin.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// JoinTeamRequest enrolls the actor via invite code.
type JoinTeamRequest struct {
	InviteCode string `json:"invite_code"`
}

// ChangeRoleRequest sets a member's role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// CreateTaskRequest creates a task assigned within the actor's team.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	AssigneeID  int64      `json:"assignee_id"`
}

// UpdateTaskRequest is a partial patch; absent fields keep prior values.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// AddCommentRequest attaches a comment to a task.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// SubmitEvaluationRequest scores a completed task.
type SubmitEvaluationRequest struct {
	Score int `json:"score"`
}

// CreateMeetingRequest schedules a meeting.
type CreateMeetingRequest struct {
	Title          string    `json:"title"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	ParticipantIDs []int64   `json:"participant_ids"`
}

// UpdateMeetingRequest is a partial patch; a present participant list
// replaces the whole set.
type UpdateMeetingRequest struct {
	Title          *string    `json:"title,omitempty"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	ParticipantIDs []int64    `json:"participant_ids,omitempty"`
}
