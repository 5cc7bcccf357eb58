package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/invite"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery        = `INSERT INTO teams(name, invite_code, admin_id) VALUES($1, $2, $3) RETURNING id`
	selectTeamQuery        = `SELECT id, name, invite_code, admin_id FROM teams WHERE id=$1`
	selectTeamByCodeQuery  = `SELECT id, name, invite_code, admin_id FROM teams WHERE invite_code=$1`
	selectCodeTakenQuery   = `SELECT EXISTS(SELECT 1 FROM teams WHERE invite_code=$1)`
	selectTeamMembersQuery = `SELECT id, email, role, team_id FROM users WHERE team_id=$1 ORDER BY id`
	attachAdminToTeamQuery = `UPDATE users SET team_id=$2 WHERE id=$1`
)

// CreateTeam inserts a team with a freshly issued invite code and attaches
// the admin as its first member. The invite_code unique index backs the
// generator's check-then-insert, so a racing duplicate only causes a retry.
func (p *Postgres) CreateTeam(ctx context.Context, name string, adminID int64) (*entities.Team, error) {
	var teamID int64

	for attempt := 0; ; attempt++ {
		id, err := p.createTeamTx(ctx, name, adminID)
		if err == nil {
			teamID = id
			break
		}
		if errors.Is(err, errInviteCodeTaken) && attempt < serializationRetries {
			p.log.Warnw("invite code collision, regenerating", "team", name, "attempt", attempt)
			continue
		}
		return nil, err
	}

	p.log.Infow("team created", "team", name, "team_id", teamID, "admin_id", adminID)
	return p.GetTeam(ctx, teamID)
}

// errInviteCodeTaken is internal to the create/retry loop and never escapes.
var errInviteCodeTaken = errors.New("invite code taken")

func (p *Postgres) createTeamTx(ctx context.Context, name string, adminID int64) (int64, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	code, err := invite.GenerateUnique(ctx, invite.DefaultAlphabet, p.inviteLen, func(ctx context.Context, c string) (bool, error) {
		var taken bool
		if err := tx.QueryRow(ctx, selectCodeTakenQuery, c).Scan(&taken); err != nil {
			return false, err
		}
		return taken, nil
	})
	if err != nil {
		return 0, fmt.Errorf("generate invite code: %w", err)
	}

	var teamID int64
	if err := tx.QueryRow(ctx, insertTeamQuery, name, code, adminID).Scan(&teamID); err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			if pgErrConstraint(err) == "teams_invite_code_key" {
				return 0, errInviteCodeTaken
			}
			return 0, entities.ErrTeamExists
		}
		if pgErrCode(err) == codeForeignKeyViolation {
			return 0, entities.ErrUserNotFound
		}
		return 0, fmt.Errorf("insert team: %w", err)
	}

	if _, err := tx.Exec(ctx, attachAdminToTeamQuery, adminID, teamID); err != nil {
		return 0, fmt.Errorf("attach admin: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return teamID, nil
}

// GetTeam fetches a team with its members by id.
func (p *Postgres) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, selectTeamQuery, id).Scan(&t.ID, &t.Name, &t.InviteCode, &t.AdminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	if err := p.loadMembers(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTeamByInviteCode fetches a team with its members by invite code.
func (p *Postgres) GetTeamByInviteCode(ctx context.Context, code string) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, selectTeamByCodeQuery, code).Scan(&t.ID, &t.Name, &t.InviteCode, &t.AdminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team by code: %w", err)
	}

	if err := p.loadMembers(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (p *Postgres) loadMembers(ctx context.Context, t *entities.Team) error {
	rows, err := p.db.Query(ctx, selectTeamMembersQuery, t.ID)
	if err != nil {
		return fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.TeamID); err != nil {
			return fmt.Errorf("scan members: %w", err)
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate members: %w", err)
	}

	t.Members = members
	return nil
}
