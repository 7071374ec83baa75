package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/repositories"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// MeetingService defines the interface for meetup operations
type MeetingService interface {
	CreateMeeting(ctx context.Context, hostUserID int64, req *dto.CreateMeetingRequest) (*models.Meeting, error)
	GetMeetings(ctx context.Context) ([]dto.MeetingSummaryResponse, error)
	JoinMeeting(ctx context.Context, meetingID, userID int64) error
	DeleteMeeting(ctx context.Context, meetingID int64) error
}

// meetingServiceImpl implements MeetingService
type meetingServiceImpl struct {
	meetingRepo     repositories.IMeetingRepository
	participantRepo repositories.IMeetingParticipantRepository
	userRepo        repositories.IUserRepository
	logger          zerolog.Logger
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(
	meetingRepo repositories.IMeetingRepository,
	participantRepo repositories.IMeetingParticipantRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) MeetingService {
	return &meetingServiceImpl{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// CreateMeeting creates a meetup and registers the host as its first
// participant in one transaction
func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, hostUserID int64, req *dto.CreateMeetingRequest) (*models.Meeting, error) {
	if _, err := s.userRepo.GetByID(ctx, hostUserID); err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		HostUserID:      hostUserID,
		Title:           req.Title,
		Location:        req.Location,
		MeetingTime:     req.MeetingTime,
		MaxParticipants: req.MaxParticipants,
	}

	if err := s.meetingRepo.CreateWithHost(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.logger.Info().
		Int64("meetingID", meeting.ID).
		Int64("hostUserID", hostUserID).
		Msg("Meeting created")

	return meeting, nil
}

// GetMeetings lists all meetups, newest meeting time first, each annotated
// with its host username and live participant count
func (s *meetingServiceImpl) GetMeetings(ctx context.Context) ([]dto.MeetingSummaryResponse, error) {
	meetings, err := s.meetingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	meetingIDs := make([]int64, 0, len(meetings))
	for _, m := range meetings {
		meetingIDs = append(meetingIDs, m.ID)
	}

	counts, err := s.participantRepo.GetCountsByMeetingIDs(ctx, meetingIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.MeetingSummaryResponse, 0, len(meetings))
	for _, m := range meetings {
		summaries = append(summaries, dto.MeetingSummaryResponse{
			MeetingID:           m.ID,
			Title:               m.Title,
			Location:            m.Location,
			MeetingTime:         m.MeetingTime,
			CurrentParticipants: counts[m.ID],
			MaxParticipants:     m.MaxParticipants,
			HostUsername:        m.Host.Username,
		})
	}

	return summaries, nil
}

// JoinMeeting adds a user to a meetup. Checks run in a fixed order: the
// duplicate guard before the meeting lookup, then existence, then capacity.
// A duplicate join by the host gets its own outcome as a convenience.
func (s *meetingServiceImpl) JoinMeeting(ctx context.Context, meetingID, userID int64) error {
	joined, err := s.participantRepo.IsParticipant(ctx, meetingID, userID)
	if err != nil {
		return err
	}
	if joined {
		meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
		if err == nil && meeting.HostUserID == userID {
			return apperrors.ErrHostAlreadyParticipant
		}
		return apperrors.ErrAlreadyJoined
	}

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return err
	}

	count, err := s.participantRepo.CountByMeetingID(ctx, meetingID)
	if err != nil {
		return err
	}
	if count >= meeting.MaxParticipants {
		return apperrors.NewCustomError(apperrors.ErrMeetingFull,
			fmt.Sprintf("Meeting is full (%d participants max)", meeting.MaxParticipants))
	}

	if err := s.participantRepo.AddParticipant(ctx, meetingID, userID, meeting.MaxParticipants); err != nil {
		return err
	}

	s.logger.Info().
		Int64("meetingID", meetingID).
		Int64("userID", userID).
		Msg("User joined meeting")

	return nil
}

// DeleteMeeting removes a meetup and all of its participant rows as one
// transactional operation
func (s *meetingServiceImpl) DeleteMeeting(ctx context.Context, meetingID int64) error {
	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		return err
	}

	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return err
	}

	s.logger.Info().Int64("meetingID", meetingID).Msg("Meeting deleted")
	return nil
}
