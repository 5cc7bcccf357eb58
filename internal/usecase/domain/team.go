package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/policy"
)

// CreateTeam creates a team with the actor as its admin and first member;
// the team's invite code is issued inside the creating transaction.
func (u *Usecase) CreateTeam(ctx context.Context, actorID int64, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(*actor, policy.CreateTeam, policy.Target{}) {
		return nil, entities.ErrForbidden
	}

	return u.repo.CreateTeam(ctx, name, actor.ID)
}

// Team returns a team with members. Visible to its members and its admin.
func (u *Usecase) Team(ctx context.Context, actorID, teamID int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	member := actor.TeamID != nil && *actor.TeamID == team.ID
	if !member && actor.ID != team.AdminID && actor.Role != entities.RoleAdmin {
		return nil, entities.ErrForbidden
	}
	return team, nil
}

// JoinTeam enrolls the actor into the team holding the invite code.
func (u *Usecase) JoinTeam(ctx context.Context, actorID int64, inviteCode string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	inviteCode = strings.TrimSpace(inviteCode)
	if inviteCode == "" {
		return nil, fmt.Errorf("%w: invite code is required", entities.ErrInvalidArgument)
	}

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.TeamID != nil {
		u.log.Errorw("failed to join team: user already enrolled", "user_id", actorID)
		return nil, fmt.Errorf("%w: user already belongs to a team", entities.ErrInvalidArgument)
	}

	team, err := u.repo.GetTeamByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	if err := u.repo.SetUserTeam(ctx, actor.ID, &team.ID); err != nil {
		return nil, err
	}

	return u.repo.GetTeam(ctx, team.ID)
}

// AddMember attaches a user to the team. Team admin only.
func (u *Usecase) AddMember(ctx context.Context, actorID, teamID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return err
	}
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !policy.Decide(*actor, policy.AddMember, policy.Target{Team: team, MemberID: userID}) {
		return entities.ErrForbidden
	}

	member, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if member.TeamID != nil {
		if *member.TeamID == team.ID {
			return nil
		}
		return fmt.Errorf("%w: user already belongs to another team", entities.ErrInvalidArgument)
	}

	return u.repo.SetUserTeam(ctx, userID, &team.ID)
}

// RemoveMember detaches a user from the team. Team admin only; the admin
// cannot be removed from their own team.
func (u *Usecase) RemoveMember(ctx context.Context, actorID, teamID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return err
	}
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !policy.Decide(*actor, policy.RemoveMember, policy.Target{Team: team, MemberID: userID}) {
		return entities.ErrForbidden
	}
	if userID == team.AdminID {
		return fmt.Errorf("%w: cannot remove the team admin", entities.ErrInvalidArgument)
	}

	member, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if member.TeamID == nil || *member.TeamID != team.ID {
		return fmt.Errorf("%w: user is not a member of the team", entities.ErrInvalidArgument)
	}

	return u.repo.SetUserTeam(ctx, userID, nil)
}

// ChangeMemberRole updates a member's role. The team admin's own role is
// immutable for every actor.
func (u *Usecase) ChangeMemberRole(ctx context.Context, actorID, teamID, userID int64, role entities.Role) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, role)
	}

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return err
	}
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	member, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if member.TeamID == nil || *member.TeamID != team.ID {
		return fmt.Errorf("%w: user is not a member of the team", entities.ErrInvalidArgument)
	}
	if !policy.Decide(*actor, policy.ChangeMemberRole, policy.Target{Team: team, MemberID: userID}) {
		return entities.ErrForbidden
	}

	return u.repo.SetUserRole(ctx, userID, role)
}
