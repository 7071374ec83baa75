// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/services"
	"github.com/seojun/meeplehub/internal/middleware"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// AuthController handles account and authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// CheckUsername reports whether a username is still available
// @Summary Check username availability
// @Description Checks whether the given username is already registered
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CheckUsernameRequest true "Username to check"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityResponse} "Username is available"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Username is already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/check-username [post]
func (c *AuthController) CheckUsername(ctx *gin.Context) {
	var req dto.CheckUsernameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid check-username request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exists, err := c.authService.CheckUsernameExists(ctx.Request.Context(), req.Username)
	if err != nil {
		c.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to check username")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username is already in use")
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.AvailabilityResponse{Available: true}})
}

// CheckNickname reports whether a nickname is still available
// @Summary Check nickname availability
// @Description Checks whether the given nickname is already registered
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CheckNicknameRequest true "Nickname to check"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityResponse} "Nickname is available"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Nickname is already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/check-nickname [post]
func (c *AuthController) CheckNickname(ctx *gin.Context) {
	var req dto.CheckNicknameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid check-nickname request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exists, err := c.authService.CheckNicknameExists(ctx.Request.Context(), req.Nickname)
	if err != nil {
		c.logger.Error().Err(err).Str("nickname", req.Nickname).Msg("Failed to check nickname")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Nickname is already in use")
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.AvailabilityResponse{Available: true}})
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new user account with the provided username, email, password and nickname
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Username, email or nickname already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userID", user.ID).
		Str("username", user.Username).
		Msg("User registered")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.RegisterResponse{
			UserID:   user.ID,
			Username: user.Username,
			Nickname: user.Nickname,
		},
	})
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user by username and password and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", req.Username).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tokenResponse})
}

// RefreshToken handles refresh token request
// @Summary Refresh access token
// @Description Creates a new token pair using a valid refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token refreshed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired refresh token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid refresh token request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tokenResponse, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Refresh token failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tokenResponse})
}

// SendResetCode handles a password reset request
// @Summary Request a password reset code
// @Description Sends a 6-digit verification code to the given email address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Email address"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Reset code sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "No account with this email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/send-reset-code [post]
func (c *AuthController) SendResetCode(ctx *gin.Context) {
	var req dto.EmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid reset code request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.SendResetCode(ctx.Request.Context(), req.Email); err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to send reset code")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("Password reset code sent")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Verification code has been sent. Please check your inbox."},
	})
}

// VerifyResetCode handles verification of a password reset code
// @Summary Verify a password reset code
// @Description Verifies the 6-digit code sent to the user's email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerificationRequest true "Email and verification code"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Code verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/verify-code [post]
func (c *AuthController) VerifyResetCode(ctx *gin.Context) {
	var req dto.VerificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid verification request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.VerifyResetCode(ctx.Request.Context(), req.Email, req.Token); err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Reset code verification failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("Password reset code verified")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Verification code confirmed. You can now reset your password."},
	})
}

// ResetPassword handles setting a new password after code verification
// @Summary Reset password
// @Description Sets a new password for the account. Requires a previously verified reset code.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password reset"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or code not verified"
// @Failure 404 {object} dto.ErrorResponse "No account with this email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/reset-password-final [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid reset password request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), req.Email, req.NewPassword); err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Password reset failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("Password reset completed")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Password has been reset. Please log in with your new password."},
	})
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Description Returns the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	user, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to load profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ProfileResponse{
			Username:        user.Username,
			Email:           user.Email,
			Nickname:        user.Nickname,
			Gender:          user.Gender,
			Age:             user.Age,
			ProfileImageURL: user.ProfileImageURL,
			GamePreference:  user.GamePreference,
		},
	})
}

// UpdateProfile updates the authenticated user's profile fields
// @Summary Update own profile
// @Description Updates nickname and optional profile fields of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 409 {object} dto.ErrorResponse "Nickname already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.UpdateProfile(ctx.Request.Context(), userID, &req); err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Profile updated"},
	})
}
