// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:     u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
		TeamID: u.TeamID,
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	members := make([]api.User, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, ToAPIUser(m))
	}

	return api.Team{
		ID:         t.ID,
		Name:       t.Name,
		InviteCode: t.InviteCode,
		AdminID:    t.AdminID,
		Members:    members,
	}
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	return api.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		Deadline:    t.Deadline,
		CreatorID:   t.CreatorID,
		AssigneeID:  t.AssigneeID,
	}
}

// ToAPITaskList maps a slice of tasks to the transport slice.
func ToAPITaskList(list []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}

// ToAPIMeeting maps entities.Meeting to transport model.
func ToAPIMeeting(m entities.Meeting) api.Meeting {
	participants := make([]int64, len(m.Participants))
	copy(participants, m.Participants)

	return api.Meeting{
		ID:           m.ID,
		Title:        m.Title,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		CreatorID:    m.CreatorID,
		Participants: participants,
	}
}

// ToAPIMeetingList maps a slice of meetings to the transport slice.
func ToAPIMeetingList(list []entities.Meeting) []api.Meeting {
	res := make([]api.Meeting, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMeeting(m))
	}
	return res
}

// ToAPIEvaluation maps entities.Evaluation to transport model.
func ToAPIEvaluation(e entities.Evaluation) api.Evaluation {
	return api.Evaluation{
		ID:          e.ID,
		Score:       e.Score,
		CreatedAt:   e.CreatedAt,
		TaskID:      e.TaskID,
		EvaluatorID: e.EvaluatorID,
	}
}

// ToAPIComment maps entities.Comment to transport model.
func ToAPIComment(c entities.Comment) api.Comment {
	return api.Comment{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
	}
}

// FromAPITaskPatch builds a domain patch from the transport request.
func FromAPITaskPatch(src api.UpdateTaskRequest) entities.TaskPatch {
	patch := entities.TaskPatch{
		Title:       src.Title,
		Description: src.Description,
		Deadline:    src.Deadline,
	}
	if src.Status != nil {
		s := entities.TaskStatus(*src.Status)
		patch.Status = &s
	}
	return patch
}

// FromAPIMeetingPatch builds a domain patch from the transport request.
func FromAPIMeetingPatch(src api.UpdateMeetingRequest) entities.MeetingPatch {
	return entities.MeetingPatch{
		Title:        src.Title,
		StartTime:    src.StartTime,
		EndTime:      src.EndTime,
		Participants: src.ParticipantIDs,
	}
}
