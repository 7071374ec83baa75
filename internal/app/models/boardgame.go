package models

import "time"

// BoardGame represents a catalog entry. IDs are assigned externally by the
// catalog seed rather than generated by the database.
//
// Difficulty is the designer-assigned weight set at seed time;
// AverageRating is the community review mean maintained by the review
// recompute. The two are stored separately and both are served on reads.
type BoardGame struct {
	ID                  int64   `json:"id" db:"id"`
	NameKo              string  `json:"nameKo" db:"name_ko"`
	NameEn              string  `json:"nameEn" db:"name_en"`
	Category            string  `json:"category" db:"category"`
	CategoryDescription string  `json:"categoryDescription" db:"category_description"`
	MinPlayers          int     `json:"minPlayers" db:"min_players"`
	MaxPlayers          int     `json:"maxPlayers" db:"max_players"`
	PlayTimeMin         int     `json:"playTimeMin" db:"play_time_min"`
	Difficulty          float64 `json:"difficulty" db:"difficulty"`
	AverageRating       float64 `json:"averageRating" db:"average_rating"`
	Designer            string  `json:"designer" db:"designer"`
	ImageURL            string  `json:"imageUrl" db:"image_url"`
	ExternalLink        string  `json:"externalLink" db:"external_link"`

	// Related entities
	Reviews []*GameReview `json:"reviews,omitempty"`
}

// GameReview represents a user review of a board game. Reviews are
// immutable once created.
type GameReview struct {
	ID          int64     `json:"id" db:"id"`
	BoardGameID int64     `json:"boardGameId" db:"board_game_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Rating      int       `json:"rating" db:"rating"` // 1..10
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
