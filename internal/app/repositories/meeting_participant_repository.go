package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seojun/meeplehub/internal/db"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
	"github.com/seojun/meeplehub/internal/pkg/dberrors"
)

// IMeetingParticipantRepository defines the interface for participant
// database operations
type IMeetingParticipantRepository interface {
	IsParticipant(ctx context.Context, meetingID, userID int64) (bool, error)
	CountByMeetingID(ctx context.Context, meetingID int64) (int, error)
	GetCountsByMeetingIDs(ctx context.Context, meetingIDs []int64) (map[int64]int, error)
	AddParticipant(ctx context.Context, meetingID, userID int64, maxParticipants int) error
}

// MeetingParticipantRepository handles participant database operations
type MeetingParticipantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMeetingParticipantRepository creates a new MeetingParticipantRepository
func NewMeetingParticipantRepository(db *pgxpool.Pool) *MeetingParticipantRepository {
	return &MeetingParticipantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// IsParticipant checks whether a user already joined a meeting
func (r *MeetingParticipantRepository) IsParticipant(ctx context.Context, meetingID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("meeting_participants").
		Where(squirrel.Eq{"meeting_id": meetingID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build participant check query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking participant: %w", err)
	}
	return true, nil
}

// CountByMeetingID returns the live participant count of a meeting
func (r *MeetingParticipantRepository) CountByMeetingID(ctx context.Context, meetingID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("meeting_participants").
		Where(squirrel.Eq{"meeting_id": meetingID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build participant count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting participants: %w", err)
	}
	return count, nil
}

// GetCountsByMeetingIDs returns participant counts for multiple meetings
func (r *MeetingParticipantRepository) GetCountsByMeetingIDs(ctx context.Context, meetingIDs []int64) (map[int64]int, error) {
	if len(meetingIDs) == 0 {
		return make(map[int64]int), nil
	}

	sql, args, err := r.sb.Select("meeting_id", "COUNT(*)").
		From("meeting_participants").
		Where(squirrel.Eq{"meeting_id": meetingIDs}).
		GroupBy("meeting_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build participant counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting participants: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var meetingID int64
		var count int
		if err := rows.Scan(&meetingID, &count); err != nil {
			return nil, fmt.Errorf("error scanning count row: %w", err)
		}
		counts[meetingID] = count
	}

	return counts, nil
}

// AddParticipant inserts a participant row and re-checks capacity inside
// the same transaction. Two racing joins can both pass the service-level
// capacity check; the loser of the race is rolled back here. The UNIQUE
// (meeting_id, user_id) constraint backs the duplicate guard the same way.
func (r *MeetingParticipantRepository) AddParticipant(ctx context.Context, meetingID, userID int64, maxParticipants int) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertSQL, args, err := r.sb.Insert("meeting_participants").
			Columns("meeting_id", "user_id", "joined_at").
			Values(meetingID, userID, time.Now()).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert participant query: %w", err)
		}

		if _, err := tx.Exec(ctx, insertSQL, args...); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyJoined
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrMeetingNotFound
			}
			return fmt.Errorf("error inserting participant: %w", err)
		}

		countSQL, args, err := r.sb.Select("COUNT(*)").
			From("meeting_participants").
			Where(squirrel.Eq{"meeting_id": meetingID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build capacity check query: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx, countSQL, args...).Scan(&count); err != nil {
			return fmt.Errorf("error re-checking capacity: %w", err)
		}
		if count > maxParticipants {
			return apperrors.ErrMeetingFull
		}
		return nil
	})
}
