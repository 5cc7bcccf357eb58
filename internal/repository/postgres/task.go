package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ainaz03/EM-BMS/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTaskQuery = `
INSERT INTO tasks(title, description, status, deadline, creator_id, assignee_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`
	selectTaskQuery = `
SELECT id, title, description, status, created_at, deadline, creator_id, assignee_id
FROM tasks WHERE id=$1`
	updateTaskQuery = `
UPDATE tasks SET
    title       = COALESCE($2, title),
    description = COALESCE($3, description),
    status      = COALESCE($4, status),
    deadline    = COALESCE($5, deadline)
WHERE id=$1
RETURNING id, title, description, status, created_at, deadline, creator_id, assignee_id`
	deleteTaskQuery      = `DELETE FROM tasks WHERE id=$1`
	selectTeamTasksQuery = `
SELECT t.id, t.title, t.description, t.status, t.created_at, t.deadline, t.creator_id, t.assignee_id
FROM tasks t
JOIN users c ON c.id = t.creator_id
WHERE c.team_id=$1
ORDER BY t.created_at`
	insertCommentQuery = `
INSERT INTO comments(text, task_id, author_id) VALUES ($1, $2, $3)
RETURNING id, created_at`
	insertEvaluationQuery = `
INSERT INTO evaluations(score, task_id, evaluator_id) VALUES ($1, $2, $3)
RETURNING id, created_at`
)

// CreateTask inserts a task in OPEN state.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	err := p.db.QueryRow(ctx, insertTaskQuery,
		task.Title, task.Description, string(entities.StatusOpen), task.Deadline, task.CreatorID, task.AssigneeID,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert task: %w", err)
	}

	task.Status = entities.StatusOpen
	p.log.Infow("task created", "task_id", task.ID, "creator_id", task.CreatorID, "assignee_id", task.AssigneeID)
	return &task, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	var t entities.Task
	err := p.db.QueryRow(ctx, selectTaskQuery, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.Deadline, &t.CreatorID, &t.AssigneeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// UpdateTask applies a partial patch; nil fields keep their prior values.
func (p *Postgres) UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error) {
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	var t entities.Task
	err := p.db.QueryRow(ctx, updateTaskQuery, id, patch.Title, patch.Description, status, patch.Deadline).
		Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.Deadline, &t.CreatorID, &t.AssigneeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	p.log.Infow("task updated", "task_id", id)
	return &t, nil
}

// DeleteTask removes a task with its comments and evaluation.
func (p *Postgres) DeleteTask(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}

	p.log.Infow("task deleted", "task_id", id)
	return nil
}

// ListTeamTasks returns tasks whose creator belongs to the team.
func (p *Postgres) ListTeamTasks(ctx context.Context, teamID int64) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, selectTeamTasksQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		var t entities.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.Deadline, &t.CreatorID, &t.AssigneeID); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// AddComment attaches a comment to a task.
func (p *Postgres) AddComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	err := p.db.QueryRow(ctx, insertCommentQuery, comment.Text, comment.TaskID, comment.AuthorID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			if pgErrConstraint(err) == "comments_task_id_fkey" {
				return nil, entities.ErrTaskNotFound
			}
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	p.log.Infow("comment added", "task_id", comment.TaskID, "author_id", comment.AuthorID)
	return &comment, nil
}

// CreateEvaluation inserts the single evaluation a task may hold. The unique
// index on task_id makes a racing second insert fail deterministically.
func (p *Postgres) CreateEvaluation(ctx context.Context, eval entities.Evaluation) (*entities.Evaluation, error) {
	err := p.db.QueryRow(ctx, insertEvaluationQuery, eval.Score, eval.TaskID, eval.EvaluatorID).
		Scan(&eval.ID, &eval.CreatedAt)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return nil, entities.ErrAlreadyEvaluated
		}
		if pgErrCode(err) == codeForeignKeyViolation {
			if pgErrConstraint(err) == "evaluations_task_id_fkey" {
				return nil, entities.ErrTaskNotFound
			}
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert evaluation: %w", err)
	}

	p.log.Infow("evaluation created", "task_id", eval.TaskID, "score", eval.Score)
	return &eval, nil
}
