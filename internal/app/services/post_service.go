package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/repositories"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// PostService defines the interface for board operations
type PostService interface {
	GetPosts(ctx context.Context, category string) ([]dto.PostSummaryResponse, error)
	CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*models.Post, error)
	GetPostDetail(ctx context.Context, postID int64) (*dto.PostDetailResponse, error)
	UpdatePost(ctx context.Context, postID, userID int64, req *dto.UpdatePostRequest) error
	DeletePost(ctx context.Context, postID, userID int64) error
	GetComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error)
	CreateComment(ctx context.Context, postID, userID int64, req *dto.CreateCommentRequest) (*models.Comment, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	postRepo    repositories.IPostRepository
	commentRepo repositories.ICommentRepository
	logger      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.IPostRepository,
	commentRepo repositories.ICommentRepository,
	logger zerolog.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// GetPosts lists posts newest first, comment counts resolved at read time
func (s *postServiceImpl) GetPosts(ctx context.Context, category string) ([]dto.PostSummaryResponse, error) {
	posts, err := s.postRepo.GetAll(ctx, category)
	if err != nil {
		return nil, err
	}

	postIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}

	counts, err := s.postRepo.GetCommentCountsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.PostSummaryResponse, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, dto.PostSummaryResponse{
			PostID:         p.ID,
			Category:       p.Category,
			Title:          p.Title,
			AuthorNickname: p.Author.Nickname,
			CreatedAt:      p.CreatedAt,
			ViewCount:      p.ViewCount,
			CommentCount:   counts[p.ID],
		})
	}

	return summaries, nil
}

// CreatePost persists a new post for the authenticated author
func (s *postServiceImpl) CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		UserID:   userID,
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info().Int64("postID", post.ID).Int64("userID", userID).Msg("Post created")
	return post, nil
}

// GetPostDetail loads a post with its comments. The read counts as a view:
// the counter is incremented as part of the same lookup.
func (s *postServiceImpl) GetPostDetail(ctx context.Context, postID int64) (*dto.PostDetailResponse, error) {
	post, err := s.postRepo.GetDetailAndIncrementView(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	detail := &dto.PostDetailResponse{
		PostID:         post.ID,
		Title:          post.Title,
		Category:       post.Category,
		Content:        post.Content,
		AuthorNickname: post.Author.Nickname,
		CreatedAt:      post.CreatedAt,
		ViewCount:      post.ViewCount,
		Comments:       make([]dto.CommentResponse, 0, len(comments)),
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, dto.CommentResponse{
			CommentID:      c.ID,
			Content:        c.Content,
			AuthorNickname: c.Author.Nickname,
			CreatedAt:      c.CreatedAt,
		})
	}

	return detail, nil
}

// UpdatePost replaces title and content. Only the author may edit, and a
// missing post is reported distinctly from a foreign one.
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID, userID int64, req *dto.UpdatePostRequest) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.NewCustomError(apperrors.ErrNotPostAuthor, "Only the author can edit this post")
	}

	return s.postRepo.Update(ctx, postID, req.Title, req.Content)
}

// DeletePost removes a post and, through the store cascade, its comments
func (s *postServiceImpl) DeletePost(ctx context.Context, postID, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.NewCustomError(apperrors.ErrNotPostAuthor, "Only the author can delete this post")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info().Int64("postID", postID).Int64("userID", userID).Msg("Post deleted")
	return nil
}

// GetComments lists a post's comments in chronological reading order
func (s *postServiceImpl) GetComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, dto.CommentResponse{
			CommentID:      c.ID,
			Content:        c.Content,
			AuthorNickname: c.Author.Nickname,
			CreatedAt:      c.CreatedAt,
		})
	}

	return responses, nil
}

// CreateComment persists a comment on a post
func (s *postServiceImpl) CreateComment(ctx context.Context, postID, userID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
