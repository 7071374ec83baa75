package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64     `json:"id" db:"id" example:"1"`                                        // Unique identifier for the user
	Username        string    `json:"username" db:"username" example:"meeple_fan"`                   // Login identifier, unique
	Email           string    `json:"email" db:"email" example:"user@example.com"`                   // User's email address, unique
	Password        string    `json:"-" db:"password"`                                               // User's hashed password (excluded from JSON)
	Nickname        string    `json:"nickname" db:"nickname" example:"MeepleFan"`                    // Display name, unique
	Gender          string    `json:"gender" db:"gender" example:"other"`                            // Profile field, free text
	Age             int       `json:"age" db:"age" example:"27"`                                     // Profile field
	ProfileImageURL string    `json:"profileImageUrl" db:"profile_image_url"`                        // External image URL, may be empty
	GamePreference  string    `json:"gamePreference" db:"game_preference" example:"strategy, party"` // Free-text board-game preference
	RoleType        RoleType  `json:"roleType" db:"role" example:"USER"`                             // User's role
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`                                     // Timestamp when the user was created
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`                                     // Timestamp when the user was last updated
}
