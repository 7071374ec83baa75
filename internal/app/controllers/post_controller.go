package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/services"
	"github.com/seojun/meeplehub/internal/middleware"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// PostController handles discussion board operations
type PostController struct {
	postService services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, logger zerolog.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// GetPosts lists board posts
// @Summary List posts
// @Description Lists posts newest first, optionally filtered by category
// @Tags posts
// @Produce json
// @Param category query string false "Category filter, 'all' or empty returns every post"
// @Success 200 {object} dto.APIResponse{data=[]dto.PostSummaryResponse} "Posts retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *PostController) GetPosts(ctx *gin.Context) {
	category := ctx.Query("category")

	posts, err := c.postService.GetPosts(ctx.Request.Context(), category)
	if err != nil {
		c.logger.Error().Err(err).Str("category", category).Msg("Failed to list posts")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: posts})
}

// CreatePost creates a new board post
// @Summary Create a post
// @Description Creates a new post authored by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=models.Post} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create post payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create post")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("postID", post.ID).Int64("userID", userID).Msg("Post created")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: post})
}

// GetPostDetail returns one post with its comments
// @Summary Get post detail
// @Description Returns a single post with its comments. Each read increments the view counter.
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostDetailResponse} "Post retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{postId} [get]
func (c *PostController) GetPostDetail(ctx *gin.Context) {
	postID, err := strconv.ParseInt(ctx.Param("postId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	detail, err := c.postService.GetPostDetail(ctx.Request.Context(), postID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("postID", postID).Msg("Failed to load post detail")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: detail})
}

// UpdatePost updates a post owned by the caller
// @Summary Update a post
// @Description Updates the title and content of a post. Only the author may update.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param request body dto.UpdatePostRequest true "Updated content"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{postId} [put]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	postID, err := strconv.ParseInt(ctx.Param("postId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update post payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.postService.UpdatePost(ctx.Request.Context(), postID, userID, &req); err != nil {
		c.logger.Warn().Err(err).Int64("postID", postID).Int64("userID", userID).Msg("Failed to update post")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Post updated"},
	})
}

// DeletePost deletes a post owned by the caller
// @Summary Delete a post
// @Description Deletes a post and its comments. Only the author may delete.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 401 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{postId} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	postID, err := strconv.ParseInt(ctx.Param("postId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.postService.DeletePost(ctx.Request.Context(), postID, userID); err != nil {
		c.logger.Warn().Err(err).Int64("postID", postID).Int64("userID", userID).Msg("Failed to delete post")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("postID", postID).Msg("Post deleted")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Post deleted"},
	})
}

// GetComments lists the comments under a post
// @Summary List comments
// @Description Lists the comments of a post, oldest first
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommentResponse} "Comments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{postId}/comments [get]
func (c *PostController) GetComments(ctx *gin.Context) {
	postID, err := strconv.ParseInt(ctx.Param("postId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	comments, err := c.postService.GetComments(ctx.Request.Context(), postID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("postID", postID).Msg("Failed to list comments")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: comments})
}

// CreateComment adds a comment to a post
// @Summary Create a comment
// @Description Adds a comment to a post as the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=models.Comment} "Comment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{postId}/comments [post]
func (c *PostController) CreateComment(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	postID, err := strconv.ParseInt(ctx.Param("postId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create comment payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	comment, err := c.postService.CreateComment(ctx.Request.Context(), postID, userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("postID", postID).Int64("userID", userID).Msg("Failed to create comment")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: comment})
}
