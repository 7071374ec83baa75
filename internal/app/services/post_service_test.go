package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

func TestGetPostsResolvesCommentCounts(t *testing.T) {
	postRepo := &fakePostRepo{
		getAllFn: func(ctx context.Context, category string) ([]*models.Post, error) {
			assert.Equal(t, "free", category)
			return []*models.Post{
				{ID: 1, Title: "First", Category: "free", ViewCount: 10, Author: &models.User{Nickname: "Alice"}},
				{ID: 2, Title: "Second", Category: "free", Author: &models.User{Nickname: "Bob"}},
			}, nil
		},
		getCommentCountsFn: func(ctx context.Context, postIDs []int64) (map[int64]int, error) {
			assert.Equal(t, []int64{1, 2}, postIDs)
			return map[int64]int{1: 4}, nil
		},
	}

	svc := NewPostService(postRepo, &fakeCommentRepo{}, zerolog.Nop())

	posts, err := svc.GetPosts(context.Background(), "free")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, 4, posts[0].CommentCount)
	assert.Equal(t, "Alice", posts[0].AuthorNickname)
	assert.Equal(t, 0, posts[1].CommentCount)
}

func TestGetPostDetailCountsView(t *testing.T) {
	incremented := false
	postRepo := &fakePostRepo{
		getDetailAndIncrementViewFn: func(ctx context.Context, id int64) (*models.Post, error) {
			incremented = true
			return &models.Post{
				ID: 1, Title: "First", Content: "body", ViewCount: 11,
				CreatedAt: time.Now(),
				Author:    &models.User{Nickname: "Alice"},
			}, nil
		},
	}
	commentRepo := &fakeCommentRepo{
		getByPostIDFn: func(ctx context.Context, postID int64) ([]*models.Comment, error) {
			return []*models.Comment{
				{ID: 5, PostID: 1, Content: "nice", Author: &models.User{Nickname: "Bob"}},
			}, nil
		},
	}

	svc := NewPostService(postRepo, commentRepo, zerolog.Nop())

	detail, err := svc.GetPostDetail(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, incremented)
	assert.Equal(t, 11, detail.ViewCount)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Bob", detail.Comments[0].AuthorNickname)
}

func TestUpdatePostAuthorization(t *testing.T) {
	postRepo := &fakePostRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Post, error) {
			if id != 1 {
				return nil, apperrors.ErrPostNotFound
			}
			return &models.Post{ID: 1, UserID: 7}, nil
		},
		updateFn: func(ctx context.Context, id int64, title, content string) error {
			return nil
		},
	}

	svc := NewPostService(postRepo, &fakeCommentRepo{}, zerolog.Nop())
	req := &dto.UpdatePostRequest{Title: "new title", Content: "new body"}

	t.Run("missing post", func(t *testing.T) {
		err := svc.UpdatePost(context.Background(), 404, 7, req)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("foreign post", func(t *testing.T) {
		err := svc.UpdatePost(context.Background(), 1, 8, req)
		assert.ErrorIs(t, err, apperrors.ErrNotPostAuthor)
	})

	t.Run("own post", func(t *testing.T) {
		err := svc.UpdatePost(context.Background(), 1, 7, req)
		assert.NoError(t, err)
	})
}

func TestDeletePostAuthorization(t *testing.T) {
	deleted := false
	postRepo := &fakePostRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 7}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	svc := NewPostService(postRepo, &fakeCommentRepo{}, zerolog.Nop())

	err := svc.DeletePost(context.Background(), 1, 8)
	assert.ErrorIs(t, err, apperrors.ErrNotPostAuthor)
	assert.False(t, deleted)

	err = svc.DeletePost(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCreateCommentPropagatesMissingPost(t *testing.T) {
	commentRepo := &fakeCommentRepo{
		createFn: func(ctx context.Context, comment *models.Comment) error {
			return apperrors.ErrPostNotFound
		},
	}

	svc := NewPostService(&fakePostRepo{}, commentRepo, zerolog.Nop())

	_, err := svc.CreateComment(context.Background(), 404, 7, &dto.CreateCommentRequest{Content: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestCreateCommentSetsAuthorAndPost(t *testing.T) {
	var created *models.Comment
	commentRepo := &fakeCommentRepo{
		createFn: func(ctx context.Context, comment *models.Comment) error {
			comment.ID = 9
			created = comment
			return nil
		},
	}

	svc := NewPostService(&fakePostRepo{}, commentRepo, zerolog.Nop())

	comment, err := svc.CreateComment(context.Background(), 1, 7, &dto.CreateCommentRequest{Content: "hello"})
	require.NoError(t, err)

	assert.Equal(t, int64(9), comment.ID)
	assert.Equal(t, int64(1), created.PostID)
	assert.Equal(t, int64(7), created.UserID)
}
