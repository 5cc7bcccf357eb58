package usecase

import (
	"context"
	"time"

	"github.com/Ainaz03/EM-BMS/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	RegisterUser(ctx context.Context, email string, role entities.Role) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team-related operations for delivery layer.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, actorID int64, name string) (*entities.Team, error)
	Team(ctx context.Context, actorID, teamID int64) (*entities.Team, error)
	JoinTeam(ctx context.Context, actorID int64, inviteCode string) (*entities.Team, error)
	AddMember(ctx context.Context, actorID, teamID, userID int64) error
	RemoveMember(ctx context.Context, actorID, teamID, userID int64) error
	ChangeMemberRole(ctx context.Context, actorID, teamID, userID int64, role entities.Role) error
}

// TaskUsecaseInterface abstracts task lifecycle operations for delivery layer.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, actorID int64, title string, description *string, deadline *time.Time, assigneeID int64) (*entities.Task, error)
	UpdateTask(ctx context.Context, actorID, taskID int64, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, actorID, taskID int64) error
	AddComment(ctx context.Context, actorID, taskID int64, text string) (*entities.Comment, error)
	SubmitEvaluation(ctx context.Context, actorID, taskID int64, score int) (*entities.Evaluation, error)
	ListTeamTasks(ctx context.Context, actorID int64) ([]entities.Task, error)
}

// MeetingUsecaseInterface abstracts meeting scheduling for delivery layer.
type MeetingUsecaseInterface interface {
	CreateMeeting(ctx context.Context, actorID int64, title string, start, end time.Time, participants []int64) (*entities.Meeting, error)
	UpdateMeeting(ctx context.Context, actorID, meetingID int64, patch entities.MeetingPatch) (*entities.Meeting, error)
	DeleteMeeting(ctx context.Context, actorID, meetingID int64) error
	ListUserMeetings(ctx context.Context, actorID int64) ([]entities.Meeting, error)
}
