package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/db"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
	"github.com/seojun/meeplehub/internal/pkg/dberrors"
)

// IGameReviewRepository defines the interface for review database operations
type IGameReviewRepository interface {
	GetByGameID(ctx context.Context, gameID int64) ([]*models.GameReview, error)
	CreateAndRecomputeAverage(ctx context.Context, review *models.GameReview) error
}

// GameReviewRepository handles review database operations
type GameReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGameReviewRepository creates a new GameReviewRepository
func NewGameReviewRepository(db *pgxpool.Pool) *GameReviewRepository {
	return &GameReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByGameID lists a game's reviews newest first, authors resolved
func (r *GameReviewRepository) GetByGameID(ctx context.Context, gameID int64) ([]*models.GameReview, error) {
	sql, args, err := r.sb.Select(
		"gr.id", "gr.board_game_id", "gr.user_id", "gr.rating", "gr.content",
		"gr.created_at", "u.nickname",
	).
		From("game_reviews gr").
		Join("users u ON u.id = gr.user_id").
		Where(squirrel.Eq{"gr.board_game_id": gameID}).
		OrderBy("gr.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.GameReview
	for rows.Next() {
		var rv models.GameReview
		var author models.User
		err := rows.Scan(
			&rv.ID, &rv.BoardGameID, &rv.UserID, &rv.Rating, &rv.Content,
			&rv.CreatedAt, &author.Nickname,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		author.ID = rv.UserID
		rv.Author = &author
		reviews = append(reviews, &rv)
	}

	return reviews, nil
}

// CreateAndRecomputeAverage inserts the review and refreshes the game's
// average rating from all of its reviews in one transaction, so a reader
// never sees the new review without the new mean.
func (r *GameReviewRepository) CreateAndRecomputeAverage(ctx context.Context, review *models.GameReview) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		now := time.Now()
		insertSQL, args, err := r.sb.Insert("game_reviews").
			Columns("board_game_id", "user_id", "rating", "content", "created_at").
			Values(review.BoardGameID, review.UserID, review.Rating, review.Content, now).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert review query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertSQL, args...).Scan(&review.ID); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrGameNotFound
			}
			return fmt.Errorf("error inserting review: %w", err)
		}
		review.CreatedAt = now

		updateSQL := `
			UPDATE board_games
			SET average_rating = (
				SELECT AVG(rating)::NUMERIC(4,2)
				FROM game_reviews
				WHERE board_game_id = $1
			)
			WHERE id = $1
		`
		result, err := tx.Exec(ctx, updateSQL, review.BoardGameID)
		if err != nil {
			return fmt.Errorf("error recomputing average rating: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrGameNotFound
		}
		return nil
	})
}
