package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/repositories"
)

// BoardGameService defines the interface for catalog operations
type BoardGameService interface {
	GetAllGames(ctx context.Context) ([]dto.BoardGameSummaryResponse, error)
	SearchGames(ctx context.Context, query, category string) ([]dto.BoardGameSummaryResponse, error)
	GetGameDetail(ctx context.Context, gameID int64) (*dto.BoardGameDetailResponse, error)
	AddReview(ctx context.Context, gameID, userID int64, req *dto.CreateReviewRequest) (*models.GameReview, error)
}

// boardGameServiceImpl implements BoardGameService
type boardGameServiceImpl struct {
	gameRepo   repositories.IBoardGameRepository
	reviewRepo repositories.IGameReviewRepository
	userRepo   repositories.IUserRepository
	logger     zerolog.Logger
}

// NewBoardGameService creates a new BoardGameService
func NewBoardGameService(
	gameRepo repositories.IBoardGameRepository,
	reviewRepo repositories.IGameReviewRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) BoardGameService {
	return &boardGameServiceImpl{
		gameRepo:   gameRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func toGameSummaries(games []*models.BoardGame) []dto.BoardGameSummaryResponse {
	summaries := make([]dto.BoardGameSummaryResponse, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, dto.BoardGameSummaryResponse{
			GameID:        g.ID,
			NameKo:        g.NameKo,
			NameEn:        g.NameEn,
			Category:      g.Category,
			AverageRating: g.AverageRating,
			ImageURL:      g.ImageURL,
		})
	}
	return summaries
}

// GetAllGames lists the whole catalog
func (s *boardGameServiceImpl) GetAllGames(ctx context.Context) ([]dto.BoardGameSummaryResponse, error) {
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toGameSummaries(games), nil
}

// SearchGames filters the catalog. Category and name query are independent
// and combinable; an empty query with a category returns the whole category.
func (s *boardGameServiceImpl) SearchGames(ctx context.Context, query, category string) ([]dto.BoardGameSummaryResponse, error) {
	games, err := s.gameRepo.Search(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return toGameSummaries(games), nil
}

// GetGameDetail loads a catalog entry with all its reviews
func (s *boardGameServiceImpl) GetGameDetail(ctx context.Context, gameID int64) (*dto.BoardGameDetailResponse, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	detail := &dto.BoardGameDetailResponse{
		GameID:              game.ID,
		NameKo:              game.NameKo,
		NameEn:              game.NameEn,
		Category:            game.Category,
		CategoryDescription: game.CategoryDescription,
		MinPlayers:          game.MinPlayers,
		MaxPlayers:          game.MaxPlayers,
		PlayTimeMin:         game.PlayTimeMin,
		Difficulty:          game.Difficulty,
		AverageRating:       game.AverageRating,
		Designer:            game.Designer,
		ImageURL:            game.ImageURL,
		ExternalLink:        game.ExternalLink,
		Reviews:             make([]dto.ReviewResponse, 0, len(reviews)),
	}
	for _, r := range reviews {
		detail.Reviews = append(detail.Reviews, dto.ReviewResponse{
			ReviewID:       r.ID,
			AuthorNickname: r.Author.Nickname,
			Rating:         r.Rating,
			Content:        r.Content,
			CreatedAt:      r.CreatedAt,
		})
	}

	return detail, nil
}

// AddReview persists a review and refreshes the game's average rating in
// one transaction. The new mean includes the review just added.
func (s *boardGameServiceImpl) AddReview(ctx context.Context, gameID, userID int64, req *dto.CreateReviewRequest) (*models.GameReview, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	review := &models.GameReview{
		BoardGameID: gameID,
		UserID:      userID,
		Rating:      req.Rating,
		Content:     req.Content,
	}

	if err := s.reviewRepo.CreateAndRecomputeAverage(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	s.logger.Info().
		Int64("gameID", gameID).
		Int64("userID", userID).
		Int("rating", req.Rating).
		Msg("Review added")

	return review, nil
}
