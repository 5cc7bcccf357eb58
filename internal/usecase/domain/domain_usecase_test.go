package domain

import (
	"context"
	"testing"
	"time"

	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, email string, role entities.Role) (*entities.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) SetUserTeam(ctx context.Context, userID int64, teamID *int64) error {
	args := m.Called(ctx, userID, teamID)
	return args.Error(0)
}

func (m *repoMock) SetUserRole(ctx context.Context, userID int64, role entities.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *repoMock) CreateTeam(ctx context.Context, name string, adminID int64) (*entities.Team, error) {
	args := m.Called(ctx, name, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeamByInviteCode(ctx context.Context, code string) (*entities.Team, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) ListTeamTasks(ctx context.Context, teamID int64) ([]entities.Task, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) AddComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *repoMock) CreateEvaluation(ctx context.Context, eval entities.Evaluation) (*entities.Evaluation, error) {
	args := m.Called(ctx, eval)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Evaluation), args.Error(1)
}

func (m *repoMock) CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	args := m.Called(ctx, meeting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Meeting), args.Error(1)
}

func (m *repoMock) GetMeeting(ctx context.Context, id int64) (*entities.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Meeting), args.Error(1)
}

func (m *repoMock) UpdateMeeting(ctx context.Context, id int64, patch entities.MeetingPatch) (*entities.Meeting, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Meeting), args.Error(1)
}

func (m *repoMock) DeleteMeeting(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) ListUserMeetings(ctx context.Context, userID int64) ([]entities.Meeting, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Meeting), args.Error(1)
}

func newUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func teamPtr(v int64) *int64 { return &v }

func TestUsecase_RegisterUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.RegisterUser(context.Background(), "not-an-email", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_RegisterUserDefaultsRole(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := &entities.User{ID: 1, Email: "a@b.c", Role: entities.RoleUser}
	repo.On("CreateUser", mock.Anything, "a@b.c", entities.RoleUser).Return(expected, nil)

	user, err := uc.RegisterUser(context.Background(), " a@b.c ", "")
	require.NoError(t, err)
	require.Equal(t, expected, user)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateTaskForbiddenForWorker(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	worker := &entities.User{ID: 1, Role: entities.RoleUser, TeamID: teamPtr(10)}
	mate := &entities.User{ID: 2, Role: entities.RoleUser, TeamID: teamPtr(10)}
	repo.On("GetUser", mock.Anything, int64(1)).Return(worker, nil)
	repo.On("GetUser", mock.Anything, int64(2)).Return(mate, nil)

	_, err := uc.CreateTask(context.Background(), 1, "deploy", nil, nil, 2)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTaskCrossTeam(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	manager := &entities.User{ID: 1, Role: entities.RoleManager, TeamID: teamPtr(10)}
	stranger := &entities.User{ID: 2, Role: entities.RoleUser, TeamID: teamPtr(20)}
	repo.On("GetUser", mock.Anything, int64(1)).Return(manager, nil)
	repo.On("GetUser", mock.Anything, int64(2)).Return(stranger, nil)

	_, err := uc.CreateTask(context.Background(), 1, "deploy", nil, nil, 2)
	require.ErrorIs(t, err, entities.ErrCrossTeamAssignment)
}

func TestUsecase_CreateTaskDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	manager := &entities.User{ID: 1, Role: entities.RoleManager, TeamID: teamPtr(10)}
	mate := &entities.User{ID: 2, Role: entities.RoleUser, TeamID: teamPtr(10)}
	repo.On("GetUser", mock.Anything, int64(1)).Return(manager, nil)
	repo.On("GetUser", mock.Anything, int64(2)).Return(mate, nil)

	expected := &entities.Task{ID: 7, Title: "deploy", CreatorID: 1, AssigneeID: 2, Status: entities.StatusOpen}
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool {
		return task.Title == "deploy" && task.CreatorID == 1 && task.AssigneeID == 2
	})).Return(expected, nil)

	task, err := uc.CreateTask(context.Background(), 1, "  deploy  ", nil, nil, 2)
	require.NoError(t, err)
	require.Equal(t, expected, task)
	repo.AssertExpectations(t)
}

func TestUsecase_SubmitEvaluationScoreOutOfRange(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	manager := &entities.User{ID: 1, Role: entities.RoleManager, TeamID: teamPtr(10)}
	task := &entities.Task{ID: 7, Status: entities.StatusDone, CreatorID: 1, AssigneeID: 2}
	repo.On("GetUser", mock.Anything, int64(1)).Return(manager, nil)
	repo.On("GetTask", mock.Anything, int64(7)).Return(task, nil)

	for _, score := range []int{0, 6, -1} {
		_, err := uc.SubmitEvaluation(context.Background(), 1, 7, score)
		require.ErrorIs(t, err, entities.ErrInvalidScore, "score %d", score)
	}
	repo.AssertNotCalled(t, "CreateEvaluation", mock.Anything, mock.Anything)
}

func TestUsecase_SubmitEvaluationTaskNotDone(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	manager := &entities.User{ID: 1, Role: entities.RoleManager, TeamID: teamPtr(10)}
	task := &entities.Task{ID: 7, Status: entities.StatusInProgress, CreatorID: 1, AssigneeID: 2}
	repo.On("GetUser", mock.Anything, int64(1)).Return(manager, nil)
	repo.On("GetTask", mock.Anything, int64(7)).Return(task, nil)

	_, err := uc.SubmitEvaluation(context.Background(), 1, 7, 4)
	require.ErrorIs(t, err, entities.ErrTaskNotDone)
}

func TestUsecase_SubmitEvaluationForbiddenForWorker(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	worker := &entities.User{ID: 2, Role: entities.RoleUser, TeamID: teamPtr(10)}
	manager := &entities.User{ID: 1, Role: entities.RoleManager, TeamID: teamPtr(10)}
	task := &entities.Task{ID: 7, Status: entities.StatusDone, CreatorID: 1, AssigneeID: 2}
	repo.On("GetUser", mock.Anything, int64(2)).Return(worker, nil)
	repo.On("GetUser", mock.Anything, int64(1)).Return(manager, nil)
	repo.On("GetTask", mock.Anything, int64(7)).Return(task, nil)

	_, err := uc.SubmitEvaluation(context.Background(), 2, 7, 4)
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUsecase_SubmitEvaluationBoundaryScores(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	manager := &entities.User{ID: 1, Role: entities.RoleManager, TeamID: teamPtr(10)}
	task := &entities.Task{ID: 7, Status: entities.StatusDone, CreatorID: 1, AssigneeID: 2}
	repo.On("GetUser", mock.Anything, int64(1)).Return(manager, nil)
	repo.On("GetTask", mock.Anything, int64(7)).Return(task, nil)
	repo.On("CreateEvaluation", mock.Anything, mock.Anything).Return(&entities.Evaluation{ID: 1, TaskID: 7}, nil)

	for _, score := range []int{1, 5} {
		_, err := uc.SubmitEvaluation(context.Background(), 1, 7, score)
		require.NoError(t, err, "score %d", score)
	}
}

func TestUsecase_CreateMeetingInvalidInterval(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := uc.CreateMeeting(context.Background(), 1, "sync", start, start, nil)
	require.ErrorIs(t, err, entities.ErrInvalidInterval)

	_, err = uc.CreateMeeting(context.Background(), 1, "sync", start, start.Add(-time.Hour), nil)
	require.ErrorIs(t, err, entities.ErrInvalidInterval)
	repo.AssertNotCalled(t, "CreateMeeting", mock.Anything, mock.Anything)
}

func TestUsecase_CreateMeetingIncludesCreatorOnce(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	creator := &entities.User{ID: 1, Role: entities.RoleUser, TeamID: teamPtr(10)}
	repo.On("GetUser", mock.Anything, int64(1)).Return(creator, nil)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	repo.On("CreateMeeting", mock.Anything, mock.MatchedBy(func(m entities.Meeting) bool {
		return len(m.Participants) == 3 &&
			m.Participants[0] == 1 && m.Participants[1] == 2 && m.Participants[2] == 3
	})).Return(&entities.Meeting{ID: 5}, nil)

	_, err := uc.CreateMeeting(context.Background(), 1, "sync", start, end, []int64{2, 1, 3, 2})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateMeetingForbiddenForNonCreator(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	actor := &entities.User{ID: 2, Role: entities.RoleUser, TeamID: teamPtr(10)}
	meeting := &entities.Meeting{ID: 5, CreatorID: 1}
	repo.On("GetUser", mock.Anything, int64(2)).Return(actor, nil)
	repo.On("GetMeeting", mock.Anything, int64(5)).Return(meeting, nil)

	_, err := uc.UpdateMeeting(context.Background(), 2, 5, entities.MeetingPatch{})
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUsecase_JoinTeamAlreadyEnrolled(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	enrolled := &entities.User{ID: 1, Role: entities.RoleUser, TeamID: teamPtr(10)}
	repo.On("GetUser", mock.Anything, int64(1)).Return(enrolled, nil)

	_, err := uc.JoinTeam(context.Background(), 1, "ABC12345")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "SetUserTeam", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_ChangeMemberRoleAdminImmutable(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	systemAdmin := &entities.User{ID: 9, Role: entities.RoleAdmin}
	teamAdmin := &entities.User{ID: 1, Role: entities.RoleUser, TeamID: teamPtr(10)}
	team := &entities.Team{ID: 10, AdminID: 1}
	repo.On("GetUser", mock.Anything, int64(9)).Return(systemAdmin, nil)
	repo.On("GetUser", mock.Anything, int64(1)).Return(teamAdmin, nil)
	repo.On("GetTeam", mock.Anything, int64(10)).Return(team, nil)

	err := uc.ChangeMemberRole(context.Background(), 9, 10, 1, entities.RoleManager)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "SetUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_RemoveMemberAdminRefused(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	teamAdmin := &entities.User{ID: 1, Role: entities.RoleUser, TeamID: teamPtr(10)}
	team := &entities.Team{ID: 10, AdminID: 1}
	repo.On("GetUser", mock.Anything, int64(1)).Return(teamAdmin, nil)
	repo.On("GetTeam", mock.Anything, int64(10)).Return(team, nil)

	err := uc.RemoveMember(context.Background(), 1, 10, 1)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_ListTeamTasksTeamless(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	loner := &entities.User{ID: 1, Role: entities.RoleUser}
	repo.On("GetUser", mock.Anything, int64(1)).Return(loner, nil)

	tasks, err := uc.ListTeamTasks(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, tasks)
	repo.AssertNotCalled(t, "ListTeamTasks", mock.Anything, mock.Anything)
}
