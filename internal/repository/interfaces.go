// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Ainaz03/EM-BMS/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, email string, role entities.Role) (*entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	SetUserTeam(ctx context.Context, userID int64, teamID *int64) error
	SetUserRole(ctx context.Context, userID int64, role entities.Role) error
}

// TeamInterface exposes team-related operations. CreateTeam issues the
// team's invite code and attaches the admin as its first member in one
// transaction.
type TeamInterface interface {
	CreateTeam(ctx context.Context, name string, adminID int64) (*entities.Team, error)
	GetTeam(ctx context.Context, id int64) (*entities.Team, error)
	GetTeamByInviteCode(ctx context.Context, code string) (*entities.Team, error)
}

// TaskInterface exposes task, comment and evaluation operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, id int64) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ListTeamTasks(ctx context.Context, teamID int64) ([]entities.Task, error)
	AddComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error)
	CreateEvaluation(ctx context.Context, eval entities.Evaluation) (*entities.Evaluation, error)
}

// MeetingInterface exposes meeting operations. Create and Update run the
// participant conflict check inside the same transaction as the write.
type MeetingInterface interface {
	CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error)
	GetMeeting(ctx context.Context, id int64) (*entities.Meeting, error)
	UpdateMeeting(ctx context.Context, id int64, patch entities.MeetingPatch) (*entities.Meeting, error)
	DeleteMeeting(ctx context.Context, id int64) error
	ListUserMeetings(ctx context.Context, userID int64) ([]entities.Meeting, error)
}
