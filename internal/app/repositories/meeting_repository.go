package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/db"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// IMeetingRepository defines the interface for meetup database operations
type IMeetingRepository interface {
	CreateWithHost(ctx context.Context, meeting *models.Meeting) error
	GetAll(ctx context.Context) ([]*models.Meeting, error)
	GetByID(ctx context.Context, id int64) (*models.Meeting, error)
	Delete(ctx context.Context, id int64) error
}

// MeetingRepository handles meetup database operations
type MeetingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithHost inserts a meeting and registers the host as its first
// participant in one transaction. A rollback leaves neither row behind.
func (r *MeetingRepository) CreateWithHost(ctx context.Context, meeting *models.Meeting) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		now := time.Now()
		insertSQL, args, err := r.sb.Insert("meetings").
			Columns("host_user_id", "title", "location", "meeting_time", "max_participants", "created_at").
			Values(meeting.HostUserID, meeting.Title, meeting.Location,
				meeting.MeetingTime, meeting.MaxParticipants, now).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert meeting query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertSQL, args...).Scan(&meeting.ID); err != nil {
			return fmt.Errorf("error inserting meeting: %w", err)
		}
		meeting.CreatedAt = now

		hostSQL, args, err := r.sb.Insert("meeting_participants").
			Columns("meeting_id", "user_id", "joined_at").
			Values(meeting.ID, meeting.HostUserID, now).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert host participant query: %w", err)
		}

		if _, err := tx.Exec(ctx, hostSQL, args...); err != nil {
			return fmt.Errorf("error inserting host participant: %w", err)
		}
		return nil
	})
}

// GetAll lists meetings newest meeting time first, hosts resolved
func (r *MeetingRepository) GetAll(ctx context.Context) ([]*models.Meeting, error) {
	sql, args, err := r.sb.Select(
		"m.id", "m.host_user_id", "m.title", "m.location", "m.meeting_time",
		"m.max_participants", "m.created_at", "u.username",
	).
		From("meetings m").
		Join("users u ON u.id = m.host_user_id").
		OrderBy("m.meeting_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list meetings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing meetings: %w", err)
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		var m models.Meeting
		var host models.User
		err := rows.Scan(
			&m.ID, &m.HostUserID, &m.Title, &m.Location, &m.MeetingTime,
			&m.MaxParticipants, &m.CreatedAt, &host.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning meeting row: %w", err)
		}
		host.ID = m.HostUserID
		m.Host = &host
		meetings = append(meetings, &m)
	}

	return meetings, nil
}

// GetByID retrieves a single meeting
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	sql, args, err := r.sb.Select(
		"id", "host_user_id", "title", "location", "meeting_time",
		"max_participants", "created_at",
	).
		From("meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get meeting query: %w", err)
	}

	var m models.Meeting
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&m.ID, &m.HostUserID, &m.Title, &m.Location, &m.MeetingTime,
		&m.MaxParticipants, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}
	return &m, nil
}

// Delete removes a meeting's participants and then the meeting itself in
// one transaction; a failure leaves both intact.
func (r *MeetingRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		participantsSQL, args, err := r.sb.Delete("meeting_participants").
			Where(squirrel.Eq{"meeting_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete participants query: %w", err)
		}

		if _, err := tx.Exec(ctx, participantsSQL, args...); err != nil {
			return fmt.Errorf("error deleting participants: %w", err)
		}

		meetingSQL, args, err := r.sb.Delete("meetings").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete meeting query: %w", err)
		}

		result, err := tx.Exec(ctx, meetingSQL, args...)
		if err != nil {
			return fmt.Errorf("error deleting meeting: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrMeetingNotFound
		}
		return nil
	})
}
