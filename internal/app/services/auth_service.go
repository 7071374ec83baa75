package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/repositories"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
	"github.com/seojun/meeplehub/internal/pkg/auth"
	"github.com/seojun/meeplehub/internal/pkg/email"
)

// AuthService defines the interface for account operations
type AuthService interface {
	CheckUsernameExists(ctx context.Context, username string) (bool, error)
	CheckNicknameExists(ctx context.Context, nickname string) (bool, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	SendResetCode(ctx context.Context, emailAddr string) error
	VerifyResetCode(ctx context.Context, emailAddr, code string) error
	ResetPassword(ctx context.Context, emailAddr, newPassword string) error
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo        repositories.IUserRepository
	resetTokenRepo  repositories.IPasswordResetTokenRepository
	tokenRepo       repositories.ITokenRepository
	jwtService      *auth.JWTService
	emailService    email.EmailService
	resetCodeExpiry time.Duration
	logger          zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	resetTokenRepo repositories.IPasswordResetTokenRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	resetCodeExpiry time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:        userRepo,
		resetTokenRepo:  resetTokenRepo,
		tokenRepo:       tokenRepo,
		jwtService:      jwtService,
		emailService:    emailService,
		resetCodeExpiry: resetCodeExpiry,
		logger:          logger,
	}
}

// CheckUsernameExists reports whether a username is already registered
func (s *authServiceImpl) CheckUsernameExists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.UsernameExists(ctx, username)
}

// CheckNicknameExists reports whether a nickname is already registered
func (s *authServiceImpl) CheckNicknameExists(ctx context.Context, nickname string) (bool, error) {
	return s.userRepo.NicknameExists(ctx, nickname)
}

// Register creates a new account. Uniqueness is checked sequentially,
// username then email then nickname, failing on the first violation with
// its own sentinel so the API layer can decide how much to reveal.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	taken, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	taken, err = s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	taken, err = s.userRepo.NicknameExists(ctx, req.Nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to check nickname: %w", err)
	}
	if taken {
		return nil, apperrors.ErrNicknameTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Nickname: req.Nickname,
		RoleType: models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("username", user.Username).
		Msg("User registered")

	return user, nil
}

// Login verifies credentials and issues a token pair. A missing user and a
// wrong password produce the same outcome so callers cannot tell which
// check failed.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a valid refresh token for a new token pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenInvalid
	}
	if time.Now().After(stored.ExpiryDate) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.Create(ctx, refreshToken, user.ID, expiry); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &dto.TokenResponse{
		UserID:                user.ID,
		Nickname:              user.Nickname,
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}

// SendResetCode issues a 6-digit reset code for the email and dispatches
// it. No user with that email means no token and no mail.
func (s *authServiceImpl) SendResetCode(ctx context.Context, emailAddr string) error {
	if _, err := s.userRepo.GetByEmail(ctx, emailAddr); err != nil {
		return err
	}

	code, err := email.GenerateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	expiry := time.Now().Add(s.resetCodeExpiry)
	if err := s.resetTokenRepo.Create(ctx, emailAddr, code, expiry); err != nil {
		return fmt.Errorf("failed to persist reset code: %w", err)
	}

	if err := s.emailService.SendPasswordResetEmail(emailAddr, code); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info().Str("email", emailAddr).Msg("Password reset code sent")
	return nil
}

// VerifyResetCode checks a submitted code against the most-recently-expiring
// unconsumed token and marks it used on success. The password itself is not
// touched here; this is the confirmation step only.
func (s *authServiceImpl) VerifyResetCode(ctx context.Context, emailAddr, code string) error {
	token, err := s.resetTokenRepo.GetLatestValid(ctx, emailAddr, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.ErrInvalidResetCode
		}
		return fmt.Errorf("failed to look up reset code: %w", err)
	}

	if time.Now().After(token.ExpiryTime) {
		return apperrors.ErrInvalidResetCode
	}

	if err := s.resetTokenRepo.MarkUsed(ctx, token.ID); err != nil {
		return fmt.Errorf("failed to consume reset code: %w", err)
	}

	// Opportunistic cleanup of stale codes
	if err := s.resetTokenRepo.DeleteExpired(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to clean up expired reset codes")
	}

	return nil
}

// ResetPassword overwrites the password hash. It requires a verified reset
// code for the email that is still inside its validity window, so the
// verify step cannot be skipped.
func (s *authServiceImpl) ResetPassword(ctx context.Context, emailAddr, newPassword string) error {
	if _, err := s.userRepo.GetByEmail(ctx, emailAddr); err != nil {
		return err
	}

	verified, err := s.resetTokenRepo.HasVerifiedToken(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("failed to check reset verification: %w", err)
	}
	if !verified {
		return apperrors.ErrResetNotVerified
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(ctx, emailAddr, hash); err != nil {
		return err
	}

	if err := s.resetTokenRepo.DeleteByEmail(ctx, emailAddr); err != nil {
		s.logger.Warn().Err(err).Str("email", emailAddr).Msg("Failed to clean up reset codes after password change")
	}

	s.logger.Info().Str("email", emailAddr).Msg("Password reset completed")
	return nil
}

// GetProfile retrieves a user's profile
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile overwrites the profile fields. The nickname must not be
// held by a different user; on conflict nothing is written.
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) error {
	taken, err := s.userRepo.NicknameHeldByOther(ctx, req.Nickname, userID)
	if err != nil {
		return fmt.Errorf("failed to check nickname: %w", err)
	}
	if taken {
		return apperrors.NewCustomError(apperrors.ErrNicknameTaken, "Nickname is already in use by another account")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Nickname = req.Nickname
	user.Gender = req.Gender
	user.Age = req.Age
	user.ProfileImageURL = req.ProfileImageURL
	user.GamePreference = req.GamePreference

	return s.userRepo.UpdateProfile(ctx, user)
}
