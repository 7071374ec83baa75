package dto

import "time"

// BoardGameSummaryResponse is one row of the catalog listing
type BoardGameSummaryResponse struct {
	GameID        int64   `json:"gameId"`
	NameKo        string  `json:"nameKo"`
	NameEn        string  `json:"nameEn"`
	Category      string  `json:"category"`
	AverageRating float64 `json:"averageRating"`
	ImageURL      string  `json:"imageUrl"`
}

// BoardGameDetailResponse is the full catalog entry with its reviews
type BoardGameDetailResponse struct {
	GameID              int64            `json:"gameId"`
	NameKo              string           `json:"nameKo"`
	NameEn              string           `json:"nameEn"`
	Category            string           `json:"category"`
	CategoryDescription string           `json:"categoryDescription"`
	MinPlayers          int              `json:"minPlayers"`
	MaxPlayers          int              `json:"maxPlayers"`
	PlayTimeMin         int              `json:"playTimeMin"`
	Difficulty          float64          `json:"difficulty"`
	AverageRating       float64          `json:"averageRating"`
	Designer            string           `json:"designer"`
	ImageURL            string           `json:"imageUrl"`
	ExternalLink        string           `json:"externalLink"`
	Reviews             []ReviewResponse `json:"reviews"`
}

// CreateReviewRequest represents a new game review
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=10"`
	Content string `json:"content"`
}

// ReviewResponse is one review resolved with its author
type ReviewResponse struct {
	ReviewID       int64     `json:"reviewId"`
	AuthorNickname string    `json:"authorNickname"`
	Rating         int       `json:"rating"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}
