package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/seojun/meeplehub/internal/app/models/dto"
	"github.com/seojun/meeplehub/internal/app/services"
	"github.com/seojun/meeplehub/internal/middleware"
	"github.com/seojun/meeplehub/internal/pkg/apperrors"
)

// MeetingController handles meetup scheduling operations
type MeetingController struct {
	meetingService services.MeetingService
	logger         zerolog.Logger
}

// NewMeetingController creates a new MeetingController
func NewMeetingController(meetingService services.MeetingService, logger zerolog.Logger) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
		logger:         logger,
	}
}

// GetMeetings lists scheduled meetups
// @Summary List meetings
// @Description Lists meetups ordered by meeting time, latest first, with participant counts
// @Tags meetings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MeetingSummaryResponse} "Meetings retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings [get]
func (c *MeetingController) GetMeetings(ctx *gin.Context) {
	meetings, err := c.meetingService.GetMeetings(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list meetings")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: meetings})
}

// CreateMeeting schedules a new meetup
// @Summary Create a meeting
// @Description Schedules a meetup hosted by the authenticated user. The host joins automatically.
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMeetingRequest true "Meeting details"
// @Success 201 {object} dto.APIResponse{data=models.Meeting} "Meeting created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings [post]
func (c *MeetingController) CreateMeeting(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create meeting payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	meeting, err := c.meetingService.CreateMeeting(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("hostUserID", userID).Msg("Failed to create meeting")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("meetingID", meeting.ID).Int64("hostUserID", userID).Msg("Meeting created")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: meeting})
}

// JoinMeeting adds the caller to a meetup
// @Summary Join a meeting
// @Description Adds the authenticated user as a participant if the meetup has free seats
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param meetingId path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Joined"
// @Failure 400 {object} dto.ErrorResponse "Invalid meeting ID or host joining own meeting"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 409 {object} dto.ErrorResponse "Already joined or meeting full"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings/{meetingId}/join [post]
func (c *MeetingController) JoinMeeting(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	meetingID, err := strconv.ParseInt(ctx.Param("meetingId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid meeting ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.meetingService.JoinMeeting(ctx.Request.Context(), meetingID, userID); err != nil {
		c.logger.Warn().Err(err).Int64("meetingID", meetingID).Int64("userID", userID).Msg("Failed to join meeting")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("meetingID", meetingID).Int64("userID", userID).Msg("User joined meeting")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Joined the meeting"},
	})
}

// DeleteMeeting removes a meetup
// @Summary Delete a meeting
// @Description Deletes a meetup and its participant records
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param meetingId path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Meeting deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid meeting ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings/{meetingId} [delete]
func (c *MeetingController) DeleteMeeting(ctx *gin.Context) {
	if _, ok := middleware.GetUserID(ctx); !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	meetingID, err := strconv.ParseInt(ctx.Param("meetingId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid meeting ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.meetingService.DeleteMeeting(ctx.Request.Context(), meetingID); err != nil {
		c.logger.Warn().Err(err).Int64("meetingID", meetingID).Msg("Failed to delete meeting")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("meetingID", meetingID).Msg("Meeting deleted")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Meeting deleted"},
	})
}
