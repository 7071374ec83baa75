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
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	NicknameExists(ctx context.Context, nickname string) (bool, error)
	NicknameHeldByOther(ctx context.Context, nickname string, userID int64) (bool, error)

	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var userColumns = []string{
	"id", "username", "email", "password", "nickname", "gender", "age",
	"profile_image_url", "game_preference", "role", "created_at", "updated_at",
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.Nickname,
		&u.Gender,
		&u.Age,
		&u.ProfileImageURL,
		&u.GamePreference,
		&u.RoleType,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and populates its generated ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("users").
		Columns("username", "email", "password", "nickname", "gender", "age",
			"profile_image_url", "game_preference", "role", "created_at", "updated_at").
		Values(user.Username, user.Email, user.Password, user.Nickname, user.Gender,
			user.Age, user.ProfileImageURL, user.GamePreference, user.RoleType, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by exact username match
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) exists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing exists query: %w", err)
	}
	return true, nil
}

// UsernameExists checks if a username is already registered
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"username": username})
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"email": email})
}

// NicknameExists checks if a nickname is already registered
func (r *UserRepository) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"nickname": nickname})
}

// NicknameHeldByOther checks if a nickname belongs to a user other than userID
func (r *UserRepository) NicknameHeldByOther(ctx context.Context, nickname string, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.And{
			squirrel.Eq{"nickname": nickname},
			squirrel.NotEq{"id": userID},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build nickname query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing nickname query: %w", err)
	}
	return true, nil
}

// UpdateProfile overwrites the mutable profile fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		Set("nickname", user.Nickname).
		Set("gender", user.Gender).
		Set("age", user.Age).
		Set("profile_image_url", user.ProfileImageURL).
		Set("game_preference", user.GamePreference).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdatePasswordByEmail overwrites a user's password hash
func (r *UserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", passwordHash).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
