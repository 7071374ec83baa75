package dto

import "time"

// CreatePostRequest represents a new board post
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Content  string `json:"content" binding:"required"`
}

// UpdatePostRequest represents a post edit (title and content only)
type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PostSummaryResponse is one row of the board listing
type PostSummaryResponse struct {
	PostID         int64     `json:"postId"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	AuthorNickname string    `json:"authorNickname"`
	CreatedAt      time.Time `json:"createdAt"`
	ViewCount      int       `json:"viewCount"`
	CommentCount   int       `json:"commentCount"`
}

// PostDetailResponse is the full post view including its comments
type PostDetailResponse struct {
	PostID         int64             `json:"postId"`
	Title          string            `json:"title"`
	Category       string            `json:"category"`
	Content        string            `json:"content"`
	AuthorNickname string            `json:"authorNickname"`
	CreatedAt      time.Time         `json:"createdAt"`
	ViewCount      int               `json:"viewCount"`
	Comments       []CommentResponse `json:"comments"`
}

// CreateCommentRequest represents a new comment on a post
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is one comment resolved with its author
type CommentResponse struct {
	CommentID      int64     `json:"commentId"`
	Content        string    `json:"content"`
	AuthorNickname string    `json:"authorNickname"`
	CreatedAt      time.Time `json:"createdAt"`
}
