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
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
	"github.com/seojun/meeplehub/internal/pkg/dberrors"
)

// ITokenRepository defines the interface for refresh token database operations
type ITokenRepository interface {
	Create(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetByValue(ctx context.Context, token string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// TokenRepository handles refresh token database operations
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a new refresh token
func (r *TokenRepository) Create(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	sql, args, err := r.sb.Insert("refresh_tokens").
		Columns("token", "user_id", "expiry_date", "revoked", "created_at").
		Values(token, userID, expiryDate, false, time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create token query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "refresh_tokens_token_key") {
			return apperrors.ErrTokenInvalid
		}
		return fmt.Errorf("error creating refresh token: %w", err)
	}

	return nil
}

// GetByValue retrieves a refresh token by its value
func (r *TokenRepository) GetByValue(ctx context.Context, token string) (*models.RefreshToken, error) {
	sql, args, err := r.sb.Select("id", "user_id", "token", "expiry_date", "revoked", "created_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get token query: %w", err)
	}

	var t models.RefreshToken
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&t.ID, &t.UserID, &t.Token, &t.ExpiryDate, &t.Revoked, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	return &t, nil
}

// Revoke marks a refresh token as revoked
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke token query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

// DeleteExpired removes refresh tokens past their expiry date
func (r *TokenRepository) DeleteExpired(ctx context.Context) error {
	sql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.Lt{"expiry_date": time.Now()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete expired tokens query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting expired refresh tokens: %w", err)
	}

	return nil
}
