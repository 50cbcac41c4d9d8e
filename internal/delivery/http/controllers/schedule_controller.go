package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"salesoutreach/internal/delivery/http/helpers"
	"salesoutreach/internal/domain"
)

// SetScheduleRequest is the request body for POST and PUT /campaigns/{campaignID}/schedule.
type SetScheduleRequest struct {
	StartDate      string `json:"start_date"`
	StartTime      string `json:"start_time"`
	Timezone       string `json:"timezone"`
	DailySendLimit int    `json:"daily_send_limit"`
}

// SetScheduleSuccessResponse is the success response envelope for the schedule write endpoints (200/201).
type SetScheduleSuccessResponse struct {
	Data  *domain.Schedule  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *ScheduleController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(verr.Violations, "; "))
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// setSchedule handles both POST and PUT: the schedule is a single row per
// campaign and writes replace it wholesale.
func (c *ScheduleController) setSchedule(w http.ResponseWriter, r *http.Request, successStatus int) {
	campaignID := r.PathValue("campaignID")
	if campaignID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing campaignID")
		return
	}
	var req SetScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	schedule, err := c.Service.SetSchedule(r.Context(), campaignID, domain.ScheduleInput{
		StartDate:      req.StartDate,
		StartTime:      req.StartTime,
		Timezone:       req.Timezone,
		DailySendLimit: req.DailySendLimit,
	})
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, successStatus, schedule)
}

// CreateSchedule godoc
// @Summary Create a campaign schedule
// @Description Sets the campaign's send schedule: local start date and time, IANA timezone, and daily send limit (1-500). A campaign has at most one schedule; posting again replaces it.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Param schedule body SetScheduleRequest true "Schedule data"
// @Success 201 {object} controllers.SetScheduleSuccessResponse "data contains the stored schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (all violations reported together)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (campaign)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID}/schedule [post]
func (c *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	c.setSchedule(w, r, http.StatusCreated)
}

// UpdateSchedule godoc
// @Summary Replace a campaign schedule
// @Description Replaces every field of the campaign's schedule. Quota counters for past and current days are not affected.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Param schedule body SetScheduleRequest true "Schedule data"
// @Success 200 {object} controllers.SetScheduleSuccessResponse "data contains the stored schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (all violations reported together)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (campaign)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID}/schedule [put]
func (c *ScheduleController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	c.setSchedule(w, r, http.StatusOK)
}

// GetScheduleSuccessResponse is the success response envelope for GET /campaigns/{campaignID}/schedule (200).
type GetScheduleSuccessResponse struct {
	Data  *domain.Schedule  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetSchedule godoc
// @Summary Get a campaign schedule
// @Description Returns the campaign's schedule, or 404 when none is configured.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} controllers.GetScheduleSuccessResponse "data contains the schedule"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID}/schedule [get]
func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("campaignID")
	if campaignID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing campaignID")
		return
	}
	schedule, err := c.Service.GetSchedule(r.Context(), campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "schedule not found")
			return
		}
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schedule)
}

// DeleteScheduleResponse is the data payload for DELETE /campaigns/{campaignID}/schedule (200).
type DeleteScheduleResponse struct {
	Status string `json:"status"`
}

// DeleteScheduleSuccessResponse is the success response envelope for DELETE /campaigns/{campaignID}/schedule (200).
type DeleteScheduleSuccessResponse struct {
	Data  DeleteScheduleResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// DeleteSchedule godoc
// @Summary Delete a campaign schedule
// @Description Removes the campaign's schedule so it has no automatic pacing. Quota history is kept.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} controllers.DeleteScheduleSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID}/schedule [delete]
func (c *ScheduleController) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("campaignID")
	if campaignID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing campaignID")
		return
	}
	if err := c.Service.DeleteSchedule(r.Context(), campaignID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "schedule not found")
			return
		}
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteScheduleResponse{Status: "deleted"})
}
