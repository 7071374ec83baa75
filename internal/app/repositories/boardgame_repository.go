package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// IBoardGameRepository defines the interface for catalog database operations
type IBoardGameRepository interface {
	GetAll(ctx context.Context) ([]*models.BoardGame, error)
	GetByID(ctx context.Context, id int64) (*models.BoardGame, error)
	Search(ctx context.Context, query, category string) ([]*models.BoardGame, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, game *models.BoardGame) error
}

// BoardGameRepository handles catalog database operations
type BoardGameRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBoardGameRepository creates a new BoardGameRepository
func NewBoardGameRepository(db *pgxpool.Pool) *BoardGameRepository {
	return &BoardGameRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var boardGameColumns = []string{
	"id", "name_ko", "name_en", "category", "category_description",
	"min_players", "max_players", "play_time_min", "difficulty",
	"average_rating", "designer", "image_url", "external_link",
}

func scanBoardGame(row pgx.Row) (*models.BoardGame, error) {
	var g models.BoardGame
	err := row.Scan(
		&g.ID, &g.NameKo, &g.NameEn, &g.Category, &g.CategoryDescription,
		&g.MinPlayers, &g.MaxPlayers, &g.PlayTimeMin, &g.Difficulty,
		&g.AverageRating, &g.Designer, &g.ImageURL, &g.ExternalLink,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetAll lists the whole catalog
func (r *BoardGameRepository) GetAll(ctx context.Context) ([]*models.BoardGame, error) {
	return r.Search(ctx, "", "")
}

// GetByID retrieves a single catalog entry
func (r *BoardGameRepository) GetByID(ctx context.Context, id int64) (*models.BoardGame, error) {
	sql, args, err := r.sb.Select(boardGameColumns...).
		From("board_games").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get game query: %w", err)
	}

	game, err := scanBoardGame(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("error retrieving game: %w", err)
	}
	return game, nil
}

// Search filters the catalog by category and by substring match on either
// localized name. Both filters are optional; "" or "all" skips the
// category filter and an empty query skips the name filter.
func (r *BoardGameRepository) Search(ctx context.Context, query, category string) ([]*models.BoardGame, error) {
	builder := r.sb.Select(boardGameColumns...).
		From("board_games").
		OrderBy("id ASC")

	if category != "" && category != models.CategoryAll {
		builder = builder.Where(squirrel.Eq{"category": category})
	}
	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.Like{"name_ko": pattern},
			squirrel.Like{"name_en": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search games query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching games: %w", err)
	}
	defer rows.Close()

	var games []*models.BoardGame
	for rows.Next() {
		game, err := scanBoardGame(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning game row: %w", err)
		}
		games = append(games, game)
	}

	return games, nil
}

// Count returns the number of catalog entries
func (r *BoardGameRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM board_games").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting games: %w", err)
	}
	return count, nil
}

// Insert stores a catalog entry with its externally assigned ID
func (r *BoardGameRepository) Insert(ctx context.Context, game *models.BoardGame) error {
	sql, args, err := r.sb.Insert("board_games").
		Columns(boardGameColumns...).
		Values(
			game.ID, game.NameKo, game.NameEn, game.Category, game.CategoryDescription,
			game.MinPlayers, game.MaxPlayers, game.PlayTimeMin, game.Difficulty,
			game.AverageRating, game.Designer, game.ImageURL, game.ExternalLink,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert game query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting game: %w", err)
	}
	return nil
}
