package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun/meeplehub/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "meeplehub-test",
	})
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 7, Username: "meeple_fan", RoleType: models.RoleUser}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	assert.NotEmpty(t, refresh)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)
	assert.Equal(t, int((720 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "meeple_fan", claims.Username)
	assert.Equal(t, string(models.RoleUser), claims.RoleType)
	assert.Equal(t, "meeplehub-test", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 7, Username: "meeple_fan"}

	access, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := testService(time.Hour)
	verifier := NewJWTService(JWTConfig{
		SecretKey:       "a-different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
	})

	access, _, _, _, err := issuer.GenerateTokenPair(&models.User{ID: 7, Username: "meeple_fan"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsRejectsEmptyIdentity(t *testing.T) {
	svc := testService(time.Hour)

	// A token signed for a user without an ID must not authenticate
	access, _, _, _, err := svc.GenerateTokenPair(&models.User{Username: "meeple_fan"})
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
