package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The db tags document the users table layout; keep them aligned with the
// column names in the initial migration.
func TestUserDBTagsMatchTableColumns(t *testing.T) {
	want := map[string]string{
		"ID":              "id",
		"Username":        "username",
		"Email":           "email",
		"Password":        "password",
		"Nickname":        "nickname",
		"Gender":          "gender",
		"Age":             "age",
		"ProfileImageURL": "profile_image_url",
		"GamePreference":  "game_preference",
		"RoleType":        "role",
		"CreatedAt":       "created_at",
		"UpdatedAt":       "updated_at",
	}

	userType := reflect.TypeOf(User{})
	for i := 0; i < userType.NumField(); i++ {
		field := userType.Field(i)
		assert.Equal(t, want[field.Name], field.Tag.Get("db"), field.Name)
	}
}
