package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/services"
	"github.com/seojun/meeplehub/internal/middleware"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// BoardGameController handles board game catalog and review operations
type BoardGameController struct {
	gameService services.BoardGameService
	logger      zerolog.Logger
}

// NewBoardGameController creates a new BoardGameController
func NewBoardGameController(gameService services.BoardGameService, logger zerolog.Logger) *BoardGameController {
	return &BoardGameController{
		gameService: gameService,
		logger:      logger,
	}
}

// GetGames lists the full board game catalog
// @Summary List board games
// @Description Lists every board game in the catalog
// @Tags boardgames
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.BoardGameSummaryResponse} "Games retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /boardgames [get]
func (c *BoardGameController) GetGames(ctx *gin.Context) {
	games, err := c.gameService.GetAllGames(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list games")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: games})
}

// SearchGames searches the catalog by name and category
// @Summary Search board games
// @Description Filters the catalog by category and a name substring. Both filters are optional.
// @Tags boardgames
// @Produce json
// @Param query query string false "Name search, matched against Korean and English names"
// @Param category query string false "Category filter, 'all' or empty returns every category"
// @Success 200 {object} dto.APIResponse{data=[]dto.BoardGameSummaryResponse} "Games retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /boardgames/search [get]
func (c *BoardGameController) SearchGames(ctx *gin.Context) {
	query := ctx.Query("query")
	category := ctx.Query("category")

	games, err := c.gameService.SearchGames(ctx.Request.Context(), query, category)
	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Str("category", category).Msg("Failed to search games")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: games})
}

// GetGameDetail returns one board game with its reviews
// @Summary Get board game detail
// @Description Returns a single board game with its reviews, newest first
// @Tags boardgames
// @Produce json
// @Param gameId path int true "Board game ID"
// @Success 200 {object} dto.APIResponse{data=dto.BoardGameDetailResponse} "Game retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid game ID"
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /boardgames/{gameId} [get]
func (c *BoardGameController) GetGameDetail(ctx *gin.Context) {
	gameID, err := strconv.ParseInt(ctx.Param("gameId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid game ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	detail, err := c.gameService.GetGameDetail(ctx.Request.Context(), gameID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("gameID", gameID).Msg("Failed to load game detail")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: detail})
}

// AddReview adds a review to a board game
// @Summary Review a board game
// @Description Adds a rating and optional text review. The game's average rating is recomputed.
// @Tags boardgames
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gameId path int true "Board game ID"
// @Param request body dto.CreateReviewRequest true "Rating and review text"
// @Success 200 {object} dto.APIResponse{data=models.GameReview} "Review created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or unknown reviewer"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /boardgames/{gameId}/reviews [post]
func (c *BoardGameController) AddReview(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	gameID, err := strconv.ParseInt(ctx.Param("gameId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid game ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid review payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	review, err := c.gameService.AddReview(ctx.Request.Context(), gameID, userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("gameID", gameID).Int64("userID", userID).Msg("Failed to add review")
		// A token for a deleted account is a bad request here, not a missing resource
		if errors.Is(err, apperrors.ErrUserNotFound) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown reviewer account")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("gameID", gameID).Int64("reviewID", review.ID).Msg("Review added")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: review})
}
