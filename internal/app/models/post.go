package models

import "time"

// Post represents a discussion-board post
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Category  string    `json:"category" db:"category"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ViewCount int       `json:"viewCount" db:"view_count"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author   *User      `json:"author,omitempty"`
	Comments []*Comment `json:"comments,omitempty"`
}

// Comment represents a comment on a post. Comments are removed only
// through the parent post's cascade delete.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
