package models

import "time"

// Meeting represents a scheduled game meetup. The host is always a
// participant; creating a meeting registers the host atomically.
type Meeting struct {
	ID              int64     `json:"id" db:"id"`
	HostUserID      int64     `json:"hostUserId" db:"host_user_id"`
	Title           string    `json:"title" db:"title"`
	Location        string    `json:"location" db:"location"`
	MeetingTime     time.Time `json:"meetingTime" db:"meeting_time"`
	MaxParticipants int       `json:"maxParticipants" db:"max_participants"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Host             *User                 `json:"host,omitempty"`
	Participants     []*MeetingParticipant `json:"participants,omitempty"`
	ParticipantCount int                   `json:"participantCount" db:"participant_count"`
}

// MeetingParticipant links a user to a meeting they joined.
type MeetingParticipant struct {
	ID        int64     `json:"id" db:"id"`
	MeetingID int64     `json:"meetingId" db:"meeting_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	JoinedAt  time.Time `json:"joinedAt" db:"joined_at"`

	User *User `json:"user,omitempty"`
}
