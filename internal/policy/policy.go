// Package policy is the single decision table for role-based access control.
// Decide is a pure function over snapshots of actor and target state; it
// performs no I/O and never mutates its inputs.
package policy

import "github.com/Ainaz03/EM-BMS/internal/entities"

// Action enumerates every mutation the orchestrator guards.
type Action string

const (
	CreateTeam       Action = "create_team"
	AddMember        Action = "add_member"
	RemoveMember     Action = "remove_member"
	ChangeMemberRole Action = "change_member_role"
	CreateTask       Action = "create_task"
	UpdateTask       Action = "update_task"
	DeleteTask       Action = "delete_task"
	CreateEvaluation Action = "create_evaluation"
	CreateMeeting    Action = "create_meeting"
	UpdateMeeting    Action = "update_meeting"
	DeleteMeeting    Action = "delete_meeting"
	AddComment       Action = "add_comment"
)

// Target carries the state snapshots a rule may consult. Only the fields
// relevant to the action need to be set.
type Target struct {
	Team         *entities.Team
	Task         *entities.Task
	TaskCreator  *entities.User
	TaskAssignee *entities.User
	Meeting      *entities.Meeting
	// MemberID is the subject of member-scoped actions.
	MemberID int64
}

// Decide reports whether the actor may perform the action on the target.
// Rules are evaluated in order, first match wins. The team admin's role is
// immutable for every actor, including system admins.
func Decide(actor entities.User, action Action, target Target) bool {
	if action == ChangeMemberRole && target.Team != nil && target.MemberID == target.Team.AdminID {
		return false
	}

	if actor.Role == entities.RoleAdmin {
		return true
	}

	switch action {
	case CreateTeam:
		return true
	case AddMember, RemoveMember, ChangeMemberRole:
		return target.Team != nil && actor.ID == target.Team.AdminID
	case CreateTask:
		return actor.Role == entities.RoleManager && actor.TeamID != nil
	case UpdateTask:
		if target.Task != nil && actor.ID == target.Task.CreatorID {
			return true
		}
		return actor.Role == entities.RoleManager &&
			target.TaskCreator != nil && actor.SameTeam(*target.TaskCreator)
	case DeleteTask:
		return target.Task != nil && actor.ID == target.Task.CreatorID
	case CreateEvaluation:
		return actor.Role == entities.RoleManager &&
			target.TaskCreator != nil && actor.SameTeam(*target.TaskCreator)
	case AddComment:
		if target.TaskCreator != nil && actor.SameTeam(*target.TaskCreator) {
			return true
		}
		return target.TaskAssignee != nil && actor.SameTeam(*target.TaskAssignee)
	case CreateMeeting:
		return true
	case UpdateMeeting, DeleteMeeting:
		return target.Meeting != nil && actor.ID == target.Meeting.CreatorID
	}

	return false
}
