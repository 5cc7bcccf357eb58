package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ainaz03/EM-BMS/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertUserQuery     = `INSERT INTO users(email, role) VALUES($1, $2) RETURNING id`
	selectUserQuery     = `SELECT id, email, role, team_id FROM users WHERE id=$1`
	updateUserTeamQuery = `UPDATE users SET team_id=$2 WHERE id=$1`
	updateUserRoleQuery = `UPDATE users SET role=$2 WHERE id=$1`
)

// CreateUser inserts a new user with the given email and role.
func (p *Postgres) CreateUser(ctx context.Context, email string, role entities.Role) (*entities.User, error) {
	var id int64
	if err := p.db.QueryRow(ctx, insertUserQuery, email, string(role)).Scan(&id); err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return nil, entities.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user registered", "user_id", id, "role", role)
	return &entities.User{ID: id, Email: email, Role: role}, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, id).Scan(&u.ID, &u.Email, &u.Role, &u.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// SetUserTeam attaches or detaches a user's team membership.
func (p *Postgres) SetUserTeam(ctx context.Context, userID int64, teamID *int64) error {
	tag, err := p.db.Exec(ctx, updateUserTeamQuery, userID, teamID)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return entities.ErrTeamNotFound
		}
		return fmt.Errorf("set user team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}

// SetUserRole updates a user's role.
func (p *Postgres) SetUserRole(ctx context.Context, userID int64, role entities.Role) error {
	tag, err := p.db.Exec(ctx, updateUserRoleQuery, userID, string(role))
	if err != nil {
		return fmt.Errorf("set user role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}
