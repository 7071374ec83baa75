package models

// RoleType defines the user role type
type RoleType string

const (
	RoleUser  RoleType = "USER"
	RoleAdmin RoleType = "ADMIN"
)

// CategoryAll is the sentinel value that disables category filtering
// on post and board-game listings. An empty string behaves the same way.
const CategoryAll = "all"
