package models

import "time"

// PasswordResetToken stores a 6-digit verification code issued for a
// password reset request. Used marks that the code passed verification;
// a reset is only accepted against a used token that is still inside
// its validity window.
type PasswordResetToken struct {
	ID         int64     `json:"id" db:"id"`
	Email      string    `json:"email" db:"email"`
	Token      string    `json:"token" db:"token"`
	ExpiryTime time.Time `json:"expiryTime" db:"expiry_time"`
	Used       bool      `json:"used" db:"used"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// RefreshToken is an opaque token exchanged for a new access token pair.
type RefreshToken struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Token      string    `json:"token" db:"token"`
	ExpiryDate time.Time `json:"expiryDate" db:"expiry_date"`
	Revoked    bool      `json:"revoked" db:"revoked"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
