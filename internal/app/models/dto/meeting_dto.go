package dto

import "time"

// CreateMeetingRequest represents a new meetup. The host is the
// authenticated caller, never part of the payload.
type CreateMeetingRequest struct {
	Title           string    `json:"title" binding:"required"`
	Location        string    `json:"location" binding:"required"`
	MeetingTime     time.Time `json:"meetingTime" binding:"required"`
	MaxParticipants int       `json:"maxParticipants" binding:"required,gte=2,lte=100"`
}

// MeetingSummaryResponse is one row of the meetup listing
type MeetingSummaryResponse struct {
	MeetingID           int64     `json:"meetingId"`
	Title               string    `json:"title"`
	Location            string    `json:"location"`
	MeetingTime         time.Time `json:"meetingTime"`
	CurrentParticipants int       `json:"currentParticipants"`
	MaxParticipants     int       `json:"maxParticipants"`
	HostUsername        string    `json:"hostUsername"`
}
