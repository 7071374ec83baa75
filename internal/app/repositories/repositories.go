package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository               *UserRepository
	PostRepository               *PostRepository
	CommentRepository            *CommentRepository
	BoardGameRepository          *BoardGameRepository
	GameReviewRepository         *GameReviewRepository
	MeetingRepository            *MeetingRepository
	MeetingParticipantRepository *MeetingParticipantRepository
	PasswordResetTokenRepository *PasswordResetTokenRepository
	TokenRepository              *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:               NewUserRepository(db),
		PostRepository:               NewPostRepository(db),
		CommentRepository:            NewCommentRepository(db),
		BoardGameRepository:          NewBoardGameRepository(db),
		GameReviewRepository:         NewGameReviewRepository(db),
		MeetingRepository:            NewMeetingRepository(db),
		MeetingParticipantRepository: NewMeetingParticipantRepository(db),
		PasswordResetTokenRepository: NewPasswordResetTokenRepository(db),
		TokenRepository:              NewTokenRepository(db),
	}
}
