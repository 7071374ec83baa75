package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun/meeplehub/internal/app/models"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

func TestCreateMeetingRequiresExistingHost(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}

	svc := NewMeetingService(&fakeMeetingRepo{}, &fakeParticipantRepo{}, userRepo, zerolog.Nop())

	_, err := svc.CreateMeeting(context.Background(), 99, &dto.CreateMeetingRequest{
		Title:           "Friday Catan",
		Location:        "Hongdae cafe",
		MeetingTime:     time.Now().Add(48 * time.Hour),
		MaxParticipants: 4,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCreateMeetingRegistersHost(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Username: "host_user"}, nil
		},
	}

	var created *models.Meeting
	meetingRepo := &fakeMeetingRepo{
		createWithHostFn: func(ctx context.Context, meeting *models.Meeting) error {
			meeting.ID = 11
			created = meeting
			return nil
		},
	}

	svc := NewMeetingService(meetingRepo, &fakeParticipantRepo{}, userRepo, zerolog.Nop())

	meetingTime := time.Now().Add(48 * time.Hour)
	meeting, err := svc.CreateMeeting(context.Background(), 7, &dto.CreateMeetingRequest{
		Title:           "Friday Catan",
		Location:        "Hongdae cafe",
		MeetingTime:     meetingTime,
		MaxParticipants: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), meeting.ID)
	assert.Equal(t, int64(7), created.HostUserID)
	assert.Equal(t, 4, created.MaxParticipants)
}

func TestGetMeetingsAnnotatesCounts(t *testing.T) {
	meetingRepo := &fakeMeetingRepo{
		getAllFn: func(ctx context.Context) ([]*models.Meeting, error) {
			return []*models.Meeting{
				{ID: 1, Title: "Catan night", MaxParticipants: 4, Host: &models.User{Username: "alice_host"}},
				{ID: 2, Title: "Wingspan morning", MaxParticipants: 5, Host: &models.User{Username: "bob_host"}},
			}, nil
		},
	}
	participantRepo := &fakeParticipantRepo{
		getCountsFn: func(ctx context.Context, meetingIDs []int64) (map[int64]int, error) {
			assert.Equal(t, []int64{1, 2}, meetingIDs)
			return map[int64]int{1: 3}, nil
		},
	}

	svc := NewMeetingService(meetingRepo, participantRepo, &fakeUserRepo{}, zerolog.Nop())

	summaries, err := svc.GetMeetings(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, 3, summaries[0].CurrentParticipants)
	assert.Equal(t, "alice_host", summaries[0].HostUsername)
	// A meeting with no participant rows reads as zero
	assert.Equal(t, 0, summaries[1].CurrentParticipants)
}

func TestJoinMeetingOutcomes(t *testing.T) {
	meeting := &models.Meeting{ID: 1, HostUserID: 7, MaxParticipants: 4}

	t.Run("host rejoining own meeting", func(t *testing.T) {
		participantRepo := &fakeParticipantRepo{
			isParticipantFn: func(ctx context.Context, meetingID, userID int64) (bool, error) {
				return true, nil
			},
		}
		meetingRepo := &fakeMeetingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*models.Meeting, error) {
				return meeting, nil
			},
		}
		svc := NewMeetingService(meetingRepo, participantRepo, &fakeUserRepo{}, zerolog.Nop())

		err := svc.JoinMeeting(context.Background(), 1, 7)
		assert.ErrorIs(t, err, apperrors.ErrHostAlreadyParticipant)
	})

	t.Run("duplicate join by guest", func(t *testing.T) {
		participantRepo := &fakeParticipantRepo{
			isParticipantFn: func(ctx context.Context, meetingID, userID int64) (bool, error) {
				return true, nil
			},
		}
		meetingRepo := &fakeMeetingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*models.Meeting, error) {
				return meeting, nil
			},
		}
		svc := NewMeetingService(meetingRepo, participantRepo, &fakeUserRepo{}, zerolog.Nop())

		err := svc.JoinMeeting(context.Background(), 1, 8)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
	})

	t.Run("meeting does not exist", func(t *testing.T) {
		participantRepo := &fakeParticipantRepo{
			isParticipantFn: func(ctx context.Context, meetingID, userID int64) (bool, error) {
				return false, nil
			},
		}
		meetingRepo := &fakeMeetingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*models.Meeting, error) {
				return nil, apperrors.ErrMeetingNotFound
			},
		}
		svc := NewMeetingService(meetingRepo, participantRepo, &fakeUserRepo{}, zerolog.Nop())

		err := svc.JoinMeeting(context.Background(), 404, 8)
		assert.ErrorIs(t, err, apperrors.ErrMeetingNotFound)
	})

	t.Run("meeting full", func(t *testing.T) {
		participantRepo := &fakeParticipantRepo{
			isParticipantFn: func(ctx context.Context, meetingID, userID int64) (bool, error) {
				return false, nil
			},
			countByMeetingIDFn: func(ctx context.Context, meetingID int64) (int, error) {
				return 4, nil
			},
		}
		meetingRepo := &fakeMeetingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*models.Meeting, error) {
				return meeting, nil
			},
		}
		svc := NewMeetingService(meetingRepo, participantRepo, &fakeUserRepo{}, zerolog.Nop())

		err := svc.JoinMeeting(context.Background(), 1, 8)
		assert.ErrorIs(t, err, apperrors.ErrMeetingFull)
		assert.EqualError(t, err, "Meeting is full (4 participants max)")
	})

	t.Run("successful join", func(t *testing.T) {
		added := false
		participantRepo := &fakeParticipantRepo{
			isParticipantFn: func(ctx context.Context, meetingID, userID int64) (bool, error) {
				return false, nil
			},
			countByMeetingIDFn: func(ctx context.Context, meetingID int64) (int, error) {
				return 2, nil
			},
			addParticipantFn: func(ctx context.Context, meetingID, userID int64, maxParticipants int) error {
				added = true
				assert.Equal(t, 4, maxParticipants)
				return nil
			},
		}
		meetingRepo := &fakeMeetingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*models.Meeting, error) {
				return meeting, nil
			},
		}
		svc := NewMeetingService(meetingRepo, participantRepo, &fakeUserRepo{}, zerolog.Nop())

		err := svc.JoinMeeting(context.Background(), 1, 8)
		require.NoError(t, err)
		assert.True(t, added)
	})
}

func TestDeleteMeeting(t *testing.T) {
	t.Run("missing meeting", func(t *testing.T) {
		meetingRepo := &fakeMeetingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*models.Meeting, error) {
				return nil, apperrors.ErrMeetingNotFound
			},
		}
		svc := NewMeetingService(meetingRepo, &fakeParticipantRepo{}, &fakeUserRepo{}, zerolog.Nop())

		err := svc.DeleteMeeting(context.Background(), 404)
		assert.ErrorIs(t, err, apperrors.ErrMeetingNotFound)
	})

	t.Run("existing meeting", func(t *testing.T) {
		deleted := false
		meetingRepo := &fakeMeetingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*models.Meeting, error) {
				return &models.Meeting{ID: id}, nil
			},
			deleteFn: func(ctx context.Context, id int64) error {
				deleted = true
				return nil
			},
		}
		svc := NewMeetingService(meetingRepo, &fakeParticipantRepo{}, &fakeUserRepo{}, zerolog.Nop())

		err := svc.DeleteMeeting(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
