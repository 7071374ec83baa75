package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// errorDetail builds the response detail for err, preferring a contextual
// message attached by the service over the generic fallback.
func errorDetail(err error, code dto.ErrorCode, fallback string) *dto.ErrorDetail {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return dto.NewErrorDetail(code, customErr.Message)
	}
	return dto.NewErrorDetail(code, fallback)
}

// HandleAPIError translates service errors into HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeInvalidCredentials, "Invalid username or password"),
		})
	case errors.Is(err, apperrors.ErrNotPostAuthor):
		// 401 rather than 403: mutation endpoints answer as if the caller
		// were unauthenticated when the post belongs to someone else
		c.JSON(401, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeUnauthorized, "Only the author can modify this post"),
		})
	case errors.Is(err, apperrors.ErrInvalidResetCode):
		c.JSON(401, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeInvalidResetCode, "Invalid or expired verification code"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeTokenNotFound, "Token not found"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeResourceNotFound, "User not found"),
		})
	case errors.Is(err, apperrors.ErrPostNotFound):
		c.JSON(404, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeResourceNotFound, "Post not found"),
		})
	case errors.Is(err, apperrors.ErrGameNotFound):
		c.JSON(404, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeResourceNotFound, "Board game not found"),
		})
	case errors.Is(err, apperrors.ErrMeetingNotFound):
		c.JSON(404, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeResourceNotFound, "Meeting not found"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrUsernameTaken), errors.Is(err, apperrors.ErrEmailTaken):
		// Merged message: do not reveal whether the username or the email
		// was the one already registered
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username or email already in use"),
		})
	case errors.Is(err, apperrors.ErrNicknameTaken):
		c.JSON(409, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeResourceAlreadyExists, "Nickname already in use"),
		})
	case errors.Is(err, apperrors.ErrAlreadyJoined):
		c.JSON(409, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeConflict, "Already joined this meeting"),
		})
	case errors.Is(err, apperrors.ErrMeetingFull):
		c.JSON(409, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeConflict, "Meeting is full"),
		})
	case errors.Is(err, apperrors.ErrHostAlreadyParticipant):
		c.JSON(400, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeConflict, "The host is already a participant of this meeting"),
		})
	case errors.Is(err, apperrors.ErrResetNotVerified):
		c.JSON(400, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeValidationFailed, "Verification code has not been confirmed for this email"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeValidationFailed, "Invalid request"),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: errorDetail(err, dto.ErrorCodeConflict, "Conflict"),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
