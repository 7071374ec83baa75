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

// IPostRepository defines the interface for board post database operations
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetAll(ctx context.Context, category string) ([]*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetDetailAndIncrementView(ctx context.Context, id int64) (*models.Post, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
	GetCommentCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int, error)
}

// PostRepository handles board post database operations
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new post with a zero view count
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("posts").
		Columns("user_id", "category", "title", "content", "view_count", "created_at").
		Values(post.UserID, post.Category, post.Title, post.Content, 0, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create post query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&post.ID); err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	post.ViewCount = 0
	post.CreatedAt = now
	return nil
}

// GetAll lists posts newest first, with authors resolved. An empty or "all"
// category disables the filter.
func (r *PostRepository) GetAll(ctx context.Context, category string) ([]*models.Post, error) {
	query := r.sb.Select(
		"p.id", "p.user_id", "p.category", "p.title", "p.content",
		"p.view_count", "p.created_at", "u.nickname",
	).
		From("posts p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at DESC")

	if category != "" && category != models.CategoryAll {
		query = query.Where(squirrel.Eq{"p.category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var p models.Post
		var author models.User
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Category, &p.Title, &p.Content,
			&p.ViewCount, &p.CreatedAt, &author.Nickname,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		author.ID = p.UserID
		p.Author = &author
		posts = append(posts, &p)
	}

	return posts, nil
}

// GetByID retrieves a post without touching the view counter
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	sql, args, err := r.sb.Select(
		"id", "user_id", "category", "title", "content", "view_count", "created_at",
	).
		From("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	var p models.Post
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.Category, &p.Title, &p.Content, &p.ViewCount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}
	return &p, nil
}

// GetDetailAndIncrementView bumps the view counter and returns the updated
// post with its author resolved. Reading a detail is not idempotent: every
// call counts as one view.
func (r *PostRepository) GetDetailAndIncrementView(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		UPDATE posts p
		SET view_count = view_count + 1
		FROM users u
		WHERE p.id = $1 AND u.id = p.user_id
		RETURNING p.id, p.user_id, p.category, p.title, p.content,
		          p.view_count, p.created_at, u.nickname
	`

	var p models.Post
	var author models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Category, &p.Title, &p.Content,
		&p.ViewCount, &p.CreatedAt, &author.Nickname,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post detail: %w", err)
	}

	author.ID = p.UserID
	p.Author = &author
	return &p, nil
}

// Update replaces the title and content of a post
func (r *PostRepository) Update(ctx context.Context, id int64, title, content string) error {
	sql, args, err := r.sb.Update("posts").
		Set("title", title).
		Set("content", content).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update post query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// Delete removes a post. Comments go with it through the FK cascade.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete post query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// GetCommentCountsByPostIDs retrieves the comment count for multiple posts
func (r *PostRepository) GetCommentCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int, error) {
	if len(postIDs) == 0 {
		return make(map[int64]int), nil
	}

	sql, args, err := r.sb.Select("post_id", "COUNT(*)").
		From("comments").
		Where(squirrel.Eq{"post_id": postIDs}).
		GroupBy("post_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build comment counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting comments: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var postID int64
		var count int
		if err := rows.Scan(&postID, &count); err != nil {
			return nil, fmt.Errorf("error scanning count row: %w", err)
		}
		counts[postID] = count
	}

	return counts, nil
}
