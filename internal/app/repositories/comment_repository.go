package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
	"github.com/seojun/meeplehub/internal/pkg/dberrors"
)

// ICommentRepository defines the interface for comment database operations
type ICommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID int64) ([]*models.Comment, error)
}

// CommentRepository handles comment database operations
type CommentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new comment. Post existence is enforced by the FK.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("comments").
		Columns("post_id", "user_id", "content", "created_at").
		Values(comment.PostID, comment.UserID, comment.Content, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create comment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&comment.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("error creating comment: %w", err)
	}

	comment.CreatedAt = now
	return nil
}

// GetByPostID lists a post's comments oldest first, authors resolved
func (r *CommentRepository) GetByPostID(ctx context.Context, postID int64) ([]*models.Comment, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.post_id", "c.user_id", "c.content", "c.created_at", "u.nickname",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"c.post_id": postID}).
		OrderBy("c.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		var author models.User
		err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt, &author.Nickname)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		author.ID = c.UserID
		c.Author = &author
		comments = append(comments, &c)
	}

	return comments, nil
}
