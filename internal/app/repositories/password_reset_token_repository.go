package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// IPasswordResetTokenRepository defines the interface for reset token
// database operations
type IPasswordResetTokenRepository interface {
	Create(ctx context.Context, email, token string, expiryTime time.Time) error
	GetLatestValid(ctx context.Context, email, token string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64) error
	HasVerifiedToken(ctx context.Context, email string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) error
}

// PasswordResetTokenRepository manages password reset tokens in the database
type PasswordResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewPasswordResetTokenRepository creates a new PasswordResetTokenRepository
func NewPasswordResetTokenRepository(db *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{
		db: db,
	}
}

// Create stores a new unconsumed reset token
func (r *PasswordResetTokenRepository) Create(ctx context.Context, email, token string, expiryTime time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (email, token, expiry_time, used, created_at)
		VALUES ($1, $2, $3, false, $4)
	`

	_, err := r.db.Exec(ctx, query, email, token, expiryTime, time.Now())
	if err != nil {
		return fmt.Errorf("error creating password reset token: %w", err)
	}

	return nil
}

// GetLatestValid selects the most-recently-expiring unconsumed token that
// matches (email, token) exactly. Several outstanding tokens per email are
// allowed; the newest one wins.
func (r *PasswordResetTokenRepository) GetLatestValid(ctx context.Context, email, token string) (*models.PasswordResetToken, error) {
	query := `
		SELECT id, email, token, expiry_time, used, created_at
		FROM password_reset_tokens
		WHERE email = $1 AND token = $2 AND used = false
		ORDER BY expiry_time DESC
		LIMIT 1
	`

	var t models.PasswordResetToken
	err := r.db.QueryRow(ctx, query, email, token).Scan(
		&t.ID, &t.Email, &t.Token, &t.ExpiryTime, &t.Used, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error retrieving password reset token: %w", err)
	}

	return &t, nil
}

// MarkUsed marks a token as consumed so it cannot verify twice
func (r *PasswordResetTokenRepository) MarkUsed(ctx context.Context, id int64) error {
	query := `
		UPDATE password_reset_tokens
		SET used = true
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error marking token as used: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

// HasVerifiedToken reports whether the email holds a consumed token that is
// still inside its validity window. Passing verification flips used to
// true, so this is the proof that the code step was completed recently.
func (r *PasswordResetTokenRepository) HasVerifiedToken(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT 1
		FROM password_reset_tokens
		WHERE email = $1 AND used = true AND expiry_time > $2
		LIMIT 1
	`

	var one int
	err := r.db.QueryRow(ctx, query, email, time.Now()).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking verified token: %w", err)
	}

	return true, nil
}

// DeleteByEmail removes all tokens for an email, spent and outstanding
func (r *PasswordResetTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `
		DELETE FROM password_reset_tokens
		WHERE email = $1
	`

	_, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("error deleting password reset tokens for email: %w", err)
	}

	return nil
}

// DeleteExpired removes all expired tokens
func (r *PasswordResetTokenRepository) DeleteExpired(ctx context.Context) error {
	query := `
		DELETE FROM password_reset_tokens
		WHERE expiry_time < $1
	`

	_, err := r.db.Exec(ctx, query, time.Now())
	if err != nil {
		return fmt.Errorf("error deleting expired password reset tokens: %w", err)
	}

	return nil
}
