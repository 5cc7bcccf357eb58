package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/policy"
)

// CreateTask creates a task in the actor's team. Creator and assignee must
// belong to the same team.
func (u *Usecase) CreateTask(ctx context.Context, actorID int64, title string, description *string, deadline *time.Time, assigneeID int64) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	title = strings.TrimSpace(title)
	if title == "" {
		u.log.Errorw("failed to create task: missing title")
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	assignee, err := u.repo.GetUser(ctx, assigneeID)
	if err != nil {
		return nil, err
	}

	if !policy.Decide(*actor, policy.CreateTask, policy.Target{}) {
		return nil, entities.ErrForbidden
	}
	if !actor.SameTeam(*assignee) {
		u.log.Errorw("failed to create task: cross-team assignment", "creator_id", actorID, "assignee_id", assigneeID)
		return nil, entities.ErrCrossTeamAssignment
	}

	return u.repo.CreateTask(ctx, entities.Task{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		CreatorID:   actor.ID,
		AssigneeID:  assignee.ID,
	})
}

// UpdateTask applies a partial patch; unsupplied fields retain prior values.
// Any status is reachable from any other.
func (u *Usecase) UpdateTask(ctx context.Context, actorID, taskID int64, patch entities.TaskPatch) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *patch.Status)
	}

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	creator, err := u.repo.GetUser(ctx, task.CreatorID)
	if err != nil {
		return nil, err
	}

	if !policy.Decide(*actor, policy.UpdateTask, policy.Target{Task: task, TaskCreator: creator}) {
		return nil, entities.ErrForbidden
	}

	return u.repo.UpdateTask(ctx, taskID, patch)
}

// DeleteTask removes a task. Creator only.
func (u *Usecase) DeleteTask(ctx context.Context, actorID, taskID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return err
	}
	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	if !policy.Decide(*actor, policy.DeleteTask, policy.Target{Task: task}) {
		return entities.ErrForbidden
	}

	return u.repo.DeleteTask(ctx, taskID)
}

// AddComment attaches a comment. Open to teammates of the task's creator or
// assignee.
func (u *Usecase) AddComment(ctx context.Context, actorID, taskID int64, text string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", entities.ErrInvalidArgument)
	}

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	creator, err := u.repo.GetUser(ctx, task.CreatorID)
	if err != nil {
		return nil, err
	}
	assignee, err := u.repo.GetUser(ctx, task.AssigneeID)
	if err != nil {
		return nil, err
	}

	if !policy.Decide(*actor, policy.AddComment, policy.Target{Task: task, TaskCreator: creator, TaskAssignee: assignee}) {
		return nil, entities.ErrForbidden
	}

	return u.repo.AddComment(ctx, entities.Comment{Text: text, TaskID: task.ID, AuthorID: actor.ID})
}

// SubmitEvaluation scores a completed task, once. Fails when the task is not
// DONE, already holds an evaluation, or the score is outside [1,5].
func (u *Usecase) SubmitEvaluation(ctx context.Context, actorID, taskID int64, score int) (*entities.Evaluation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	creator, err := u.repo.GetUser(ctx, task.CreatorID)
	if err != nil {
		return nil, err
	}

	if !policy.Decide(*actor, policy.CreateEvaluation, policy.Target{Task: task, TaskCreator: creator}) {
		return nil, entities.ErrForbidden
	}
	if score < 1 || score > 5 {
		u.log.Errorw("failed to evaluate task: score out of range", "task_id", taskID, "score", score)
		return nil, entities.ErrInvalidScore
	}
	if task.Status != entities.StatusDone {
		return nil, entities.ErrTaskNotDone
	}

	return u.repo.CreateEvaluation(ctx, entities.Evaluation{Score: score, TaskID: task.ID, EvaluatorID: actor.ID})
}

// ListTeamTasks returns the tasks of the actor's team; empty when the actor
// is teamless.
func (u *Usecase) ListTeamTasks(ctx context.Context, actorID int64) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.TeamID == nil {
		return []entities.Task{}, nil
	}

	return u.repo.ListTeamTasks(ctx, *actor.TeamID)
}
