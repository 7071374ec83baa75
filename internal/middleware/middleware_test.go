package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
	"github.com/seojun/meeplehub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not post author", apperrors.ErrNotPostAuthor, http.StatusUnauthorized},
		{"invalid reset code", apperrors.ErrInvalidResetCode, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"post not found", apperrors.ErrPostNotFound, http.StatusNotFound},
		{"game not found", apperrors.ErrGameNotFound, http.StatusNotFound},
		{"meeting not found", apperrors.ErrMeetingNotFound, http.StatusNotFound},
		{"username taken", apperrors.ErrUsernameTaken, http.StatusConflict},
		{"email taken", apperrors.ErrEmailTaken, http.StatusConflict},
		{"nickname taken", apperrors.ErrNicknameTaken, http.StatusConflict},
		{"already joined", apperrors.ErrAlreadyJoined, http.StatusConflict},
		{"meeting full", apperrors.ErrMeetingFull, http.StatusConflict},
		{"host already participant", apperrors.ErrHostAlreadyParticipant, http.StatusBadRequest},
		{"reset not verified", apperrors.ErrResetNotVerified, http.StatusBadRequest},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleAPIErrorMergesUsernameAndEmailConflict(t *testing.T) {
	for _, err := range []error{apperrors.ErrUsernameTaken, apperrors.ErrEmailTaken} {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

		HandleAPIError(c, err)

		var resp dto.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		// Same message either way so callers cannot probe which field collided
		assert.Equal(t, "Username or email already in use", resp.Error.Message)
	}
}

func TestHandleAPIErrorSurfacesContextualMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrMeetingFull, "Meeting is full (4 participants max)"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Meeting is full (4 participants max)", resp.Error.Message)
}

func TestHandleAPIErrorKeepsMergedConflictOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	// A contextual message must never leak which identifier collided
	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrUsernameTaken, "username meeple_fan is registered"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Username or email already in use", resp.Error.Message)
}

func newAuthTestRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	mw := NewAuthMiddleware(jwtService)
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
	})
	router := newAuthTestRouter(jwtService)

	access, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Username: "meeple_fan"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":7`)
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
	})
	router := newAuthTestRouter(jwtService)

	t.Run("no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:       "middleware-test-secret",
			AccessTokenExp:  -time.Minute,
			RefreshTokenExp: time.Hour,
		})
		access, _, _, _, err := expiredService.GenerateTokenPair(&models.User{ID: 7, Username: "meeple_fan"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), string(dto.ErrorCodeExpiredToken))
	})
}
