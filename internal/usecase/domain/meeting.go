package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/policy"
)

// CreateMeeting schedules a meeting. The creator is always a participant;
// the slot must not double-book anyone in the set.
func (u *Usecase) CreateMeeting(ctx context.Context, actorID int64, title string, start, end time.Time, participants []int64) (*entities.Meeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if !end.After(start) {
		u.log.Errorw("failed to create meeting: end not after start", "start", start, "end", end)
		return nil, entities.ErrInvalidInterval
	}

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(*actor, policy.CreateMeeting, policy.Target{}) {
		return nil, entities.ErrForbidden
	}

	return u.repo.CreateMeeting(ctx, entities.Meeting{
		Title:        title,
		StartTime:    start,
		EndTime:      end,
		CreatorID:    actor.ID,
		Participants: withCreator(participants, actor.ID),
	})
}

// UpdateMeeting patches a meeting, re-running the conflict check over the
// effective participant set and interval. Creator or system admin only.
func (u *Usecase) UpdateMeeting(ctx context.Context, actorID, meetingID int64, patch entities.MeetingPatch) (*entities.Meeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	meeting, err := u.repo.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(*actor, policy.UpdateMeeting, policy.Target{Meeting: meeting}) {
		return nil, entities.ErrForbidden
	}

	if patch.Participants != nil {
		patch.Participants = withCreator(patch.Participants, meeting.CreatorID)
	}

	return u.repo.UpdateMeeting(ctx, meetingID, patch)
}

// DeleteMeeting cancels a meeting. Creator or system admin only.
func (u *Usecase) DeleteMeeting(ctx context.Context, actorID, meetingID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	actor, err := u.repo.GetUser(ctx, actorID)
	if err != nil {
		return err
	}
	meeting, err := u.repo.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	if !policy.Decide(*actor, policy.DeleteMeeting, policy.Target{Meeting: meeting}) {
		return entities.ErrForbidden
	}

	return u.repo.DeleteMeeting(ctx, meetingID)
}

// ListUserMeetings returns every meeting the actor participates in.
func (u *Usecase) ListUserMeetings(ctx context.Context, actorID int64) ([]entities.Meeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.GetUser(ctx, actorID); err != nil {
		return nil, err
	}

	return u.repo.ListUserMeetings(ctx, actorID)
}

// withCreator deduplicates the participant set and guarantees the creator is
// part of it.
func withCreator(participants []int64, creatorID int64) []int64 {
	seen := map[int64]struct{}{creatorID: {}}
	res := []int64{creatorID}
	for _, id := range participants {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
