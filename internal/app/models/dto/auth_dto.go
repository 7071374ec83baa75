package dto

// CheckUsernameRequest asks whether a username is still available
type CheckUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// CheckNicknameRequest asks whether a nickname is still available
type CheckNicknameRequest struct {
	Nickname string `json:"nickname" binding:"required"`
}

// AvailabilityResponse reports the result of an existence check
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nickname string `json:"nickname" binding:"required"`
}

// RegisterResponse represents the newly created account
type RegisterResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents a successful authentication result
type TokenResponse struct {
	UserID                int64  `json:"userId"`
	Nickname              string `json:"nickname"`
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents a refresh token exchange request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// EmailRequest carries the address for the reset-code step
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerificationRequest carries the email and the code the user typed in
type VerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required,len=6"`
}

// ResetPasswordRequest represents the final step of password recovery
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ProfileResponse represents a user's profile
type ProfileResponse struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	Gender          string `json:"gender"`
	Age             int    `json:"age"`
	ProfileImageURL string `json:"profileImageUrl"`
	GamePreference  string `json:"gamePreference"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Nickname        string `json:"nickname" binding:"required"`
	Gender          string `json:"gender"`
	Age             int    `json:"age" binding:"omitempty,gte=0"`
	ProfileImageURL string `json:"profileImageUrl"`
	GamePreference  string `json:"gamePreference"`
}
