package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ainaz03/EM-BMS/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectBookedMeetingsQuery = `
SELECT m.id, m.start_time, m.end_time, mp.user_id
FROM meetings m
JOIN meeting_participants mp ON mp.meeting_id = m.id
WHERE mp.user_id = ANY($1) AND m.id <> $2
ORDER BY m.start_time`
	insertMeetingQuery       = `INSERT INTO meetings(title, start_time, end_time, creator_id) VALUES ($1, $2, $3, $4) RETURNING id`
	insertParticipantQuery   = `INSERT INTO meeting_participants(meeting_id, user_id) VALUES ($1, $2)`
	selectMeetingQuery       = `SELECT id, title, start_time, end_time, creator_id FROM meetings WHERE id=$1`
	selectMeetingLockedQuery = `SELECT id, title, start_time, end_time, creator_id FROM meetings WHERE id=$1 FOR UPDATE`
	selectParticipantsQuery  = `SELECT user_id FROM meeting_participants WHERE meeting_id=$1 ORDER BY user_id`
	updateMeetingQuery       = `UPDATE meetings SET title=$2, start_time=$3, end_time=$4 WHERE id=$1`
	deleteParticipantsQuery  = `DELETE FROM meeting_participants WHERE meeting_id=$1`
	deleteMeetingQuery       = `DELETE FROM meetings WHERE id=$1`
	selectUserMeetingsQuery  = `
SELECT m.id, m.title, m.start_time, m.end_time, m.creator_id
FROM meetings m
JOIN meeting_participants mp ON mp.meeting_id = m.id
WHERE mp.user_id=$1
ORDER BY m.start_time`
)

// CreateMeeting persists a meeting after checking every participant's
// calendar inside one serializable transaction. A conflict surfaces as a
// ConflictError naming the blocked participant; a serialization loss against
// a concurrent writer is retried.
func (p *Postgres) CreateMeeting(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	var (
		res *entities.Meeting
		err error
	)
	for attempt := 0; attempt < serializationRetries; attempt++ {
		res, err = p.createMeetingTx(ctx, meeting)
		if !isSerializationFailure(err) {
			break
		}
		p.log.Warnw("meeting create serialization retry", "attempt", attempt)
	}
	return res, err
}

func (p *Postgres) createMeetingTx(ctx context.Context, meeting entities.Meeting) (*entities.Meeting, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.checkConflicts(ctx, tx, meeting.Participants, meeting.StartTime, meeting.EndTime, 0); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(ctx, insertMeetingQuery,
		meeting.Title, meeting.StartTime, meeting.EndTime, meeting.CreatorID,
	).Scan(&meeting.ID); err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	for _, userID := range meeting.Participants {
		if _, err := tx.Exec(ctx, insertParticipantQuery, meeting.ID, userID); err != nil {
			if pgErrCode(err) == codeForeignKeyViolation {
				return nil, entities.ErrUserNotFound
			}
			return nil, fmt.Errorf("insert participant: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("meeting created", "meeting_id", meeting.ID, "participants", len(meeting.Participants))
	return &meeting, nil
}

// UpdateMeeting re-resolves the interval and participant set, re-runs the
// conflict check excluding the meeting itself, and commits field update and
// participant replacement atomically.
func (p *Postgres) UpdateMeeting(ctx context.Context, id int64, patch entities.MeetingPatch) (*entities.Meeting, error) {
	var (
		res *entities.Meeting
		err error
	)
	for attempt := 0; attempt < serializationRetries; attempt++ {
		res, err = p.updateMeetingTx(ctx, id, patch)
		if !isSerializationFailure(err) {
			break
		}
		p.log.Warnw("meeting update serialization retry", "meeting_id", id, "attempt", attempt)
	}
	return res, err
}

func (p *Postgres) updateMeetingTx(ctx context.Context, id int64, patch entities.MeetingPatch) (*entities.Meeting, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var m entities.Meeting
	if err := tx.QueryRow(ctx, selectMeetingLockedQuery, id).
		Scan(&m.ID, &m.Title, &m.StartTime, &m.EndTime, &m.CreatorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}

	m.Participants, err = p.readParticipants(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.StartTime != nil {
		m.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		m.EndTime = *patch.EndTime
	}
	if patch.Participants != nil {
		m.Participants = patch.Participants
	}

	if !m.EndTime.After(m.StartTime) {
		return nil, entities.ErrInvalidInterval
	}

	if err := p.checkConflicts(ctx, tx, m.Participants, m.StartTime, m.EndTime, id); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, updateMeetingQuery, id, m.Title, m.StartTime, m.EndTime); err != nil {
		return nil, fmt.Errorf("update meeting: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteParticipantsQuery, id); err != nil {
		return nil, fmt.Errorf("clear participants: %w", err)
	}
	for _, userID := range m.Participants {
		if _, err := tx.Exec(ctx, insertParticipantQuery, id, userID); err != nil {
			if pgErrCode(err) == codeForeignKeyViolation {
				return nil, entities.ErrUserNotFound
			}
			return nil, fmt.Errorf("insert participant: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("meeting updated", "meeting_id", id)
	return &m, nil
}

// checkConflicts scans every booked slot of the given participants and fails
// on the first overlap with [start, end). Touching endpoints are allowed.
func (p *Postgres) checkConflicts(ctx context.Context, tx pgx.Tx, participants []int64, start, end time.Time, excludeID int64) error {
	rows, err := tx.Query(ctx, selectBookedMeetingsQuery, participants, excludeID)
	if err != nil {
		return fmt.Errorf("select booked meetings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing entities.Meeting
		var userID int64
		if err := rows.Scan(&existing.ID, &existing.StartTime, &existing.EndTime, &userID); err != nil {
			return fmt.Errorf("scan booked meeting: %w", err)
		}
		if existing.Overlaps(start, end) {
			return &entities.ConflictError{UserID: userID, MeetingID: existing.ID}
		}
	}
	return rows.Err()
}

// GetMeeting fetches a meeting with its participants.
func (p *Postgres) GetMeeting(ctx context.Context, id int64) (*entities.Meeting, error) {
	var m entities.Meeting
	err := p.db.QueryRow(ctx, selectMeetingQuery, id).
		Scan(&m.ID, &m.Title, &m.StartTime, &m.EndTime, &m.CreatorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}

	m.Participants, err = p.readParticipants(ctx, p.db, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMeeting removes a meeting and its participant rows.
func (p *Postgres) DeleteMeeting(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteMeetingQuery, id)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMeetingNotFound
	}

	p.log.Infow("meeting deleted", "meeting_id", id)
	return nil
}

// ListUserMeetings returns every meeting the user participates in.
func (p *Postgres) ListUserMeetings(ctx context.Context, userID int64) ([]entities.Meeting, error) {
	rows, err := p.db.Query(ctx, selectUserMeetingsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list user meetings: %w", err)
	}
	defer rows.Close()

	meetings := make([]entities.Meeting, 0)
	for rows.Next() {
		var m entities.Meeting
		if err := rows.Scan(&m.ID, &m.Title, &m.StartTime, &m.EndTime, &m.CreatorID); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}

	for i := range meetings {
		parts, err := p.readParticipants(ctx, p.db, meetings[i].ID)
		if err != nil {
			return nil, err
		}
		meetings[i].Participants = parts
	}
	return meetings, nil
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (p *Postgres) readParticipants(ctx context.Context, q queryer, meetingID int64) ([]int64, error) {
	rows, err := q.Query(ctx, selectParticipantsQuery, meetingID)
	if err != nil {
		return nil, fmt.Errorf("select participants: %w", err)
	}
	defer rows.Close()

	parts := make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		parts = append(parts, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return parts, nil
}
