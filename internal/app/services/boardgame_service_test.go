package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

func TestSearchGamesPassesFilters(t *testing.T) {
	gameRepo := &fakeBoardGameRepo{
		searchFn: func(ctx context.Context, query, category string) ([]*models.BoardGame, error) {
			assert.Equal(t, "catan", query)
			assert.Equal(t, "strategy", category)
			return []*models.BoardGame{
				{ID: 1, NameKo: "카탄", NameEn: "Catan", Category: "strategy", AverageRating: 8.5},
			}, nil
		},
	}

	svc := NewBoardGameService(gameRepo, &fakeGameReviewRepo{}, &fakeUserRepo{}, zerolog.Nop())

	games, err := svc.SearchGames(context.Background(), "catan", "strategy")
	require.NoError(t, err)
	require.Len(t, games, 1)

	assert.Equal(t, "Catan", games[0].NameEn)
	assert.InDelta(t, 8.5, games[0].AverageRating, 0.001)
}

func TestGetGameDetailIncludesReviews(t *testing.T) {
	gameRepo := &fakeBoardGameRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.BoardGame, error) {
			return &models.BoardGame{
				ID: 1, NameEn: "Catan", Difficulty: 2.3, AverageRating: 8.0,
			}, nil
		},
	}
	reviewRepo := &fakeGameReviewRepo{
		getByGameIDFn: func(ctx context.Context, gameID int64) ([]*models.GameReview, error) {
			return []*models.GameReview{
				{ID: 3, BoardGameID: 1, Rating: 9, Content: "great", Author: &models.User{Nickname: "Alice"}},
				{ID: 2, BoardGameID: 1, Rating: 7, Author: &models.User{Nickname: "Bob"}},
			}, nil
		},
	}

	svc := NewBoardGameService(gameRepo, reviewRepo, &fakeUserRepo{}, zerolog.Nop())

	detail, err := svc.GetGameDetail(context.Background(), 1)
	require.NoError(t, err)

	// Difficulty and rating travel separately
	assert.InDelta(t, 2.3, detail.Difficulty, 0.001)
	assert.InDelta(t, 8.0, detail.AverageRating, 0.001)
	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, "Alice", detail.Reviews[0].AuthorNickname)
}

func TestGetGameDetailMissingGame(t *testing.T) {
	gameRepo := &fakeBoardGameRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.BoardGame, error) {
			return nil, apperrors.ErrGameNotFound
		},
	}

	svc := NewBoardGameService(gameRepo, &fakeGameReviewRepo{}, &fakeUserRepo{}, zerolog.Nop())

	_, err := svc.GetGameDetail(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrGameNotFound)
}

func TestAddReviewRequiresKnownReviewer(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}

	svc := NewBoardGameService(&fakeBoardGameRepo{}, &fakeGameReviewRepo{}, userRepo, zerolog.Nop())

	_, err := svc.AddReview(context.Background(), 1, 99, &dto.CreateReviewRequest{Rating: 8})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAddReviewPersistsThroughRecompute(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Nickname: "Alice"}, nil
		},
	}

	var persisted *models.GameReview
	reviewRepo := &fakeGameReviewRepo{
		createAndRecomputeAverageFn: func(ctx context.Context, review *models.GameReview) error {
			review.ID = 5
			persisted = review
			return nil
		},
	}

	svc := NewBoardGameService(&fakeBoardGameRepo{}, reviewRepo, userRepo, zerolog.Nop())

	review, err := svc.AddReview(context.Background(), 1, 7, &dto.CreateReviewRequest{Rating: 9, Content: "great"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), review.ID)
	assert.Equal(t, int64(1), persisted.BoardGameID)
	assert.Equal(t, int64(7), persisted.UserID)
	assert.Equal(t, 9, persisted.Rating)
}

func TestAddReviewUnknownGame(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
	reviewRepo := &fakeGameReviewRepo{
		createAndRecomputeAverageFn: func(ctx context.Context, review *models.GameReview) error {
			return apperrors.ErrGameNotFound
		},
	}

	svc := NewBoardGameService(&fakeBoardGameRepo{}, reviewRepo, userRepo, zerolog.Nop())

	_, err := svc.AddReview(context.Background(), 404, 7, &dto.CreateReviewRequest{Rating: 8})
	assert.ErrorIs(t, err, apperrors.ErrGameNotFound)
}
