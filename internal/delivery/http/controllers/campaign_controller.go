package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"salesoutreach/internal/delivery/http/helpers"
	"salesoutreach/internal/domain"
)

// CreateCampaignRequest is the request body for POST /campaigns. Only name is accepted.
type CreateCampaignRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateCampaignRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateCampaignSuccessResponse is the success response envelope for POST /campaigns (201).
type CreateCampaignSuccessResponse struct {
	Data  *domain.Campaign  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CampaignController struct {
	Logger  *slog.Logger
	Service domain.CampaignService
	Now     func() time.Time
}

func NewCampaignController(logger *slog.Logger, svc domain.CampaignService) *CampaignController {
	return &CampaignController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// writeServiceError maps domain errors to HTTP responses. Unexpected errors
// are logged and become 500s.
func (c *CampaignController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(verr.Violations, "; "))
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "campaign not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// CreateCampaign godoc
// @Summary Create a campaign
// @Description Create a new outreach campaign in draft status. Only name is accepted; id, status and timestamps are server-generated.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaign body CreateCampaignRequest true "Campaign data (name only)"
// @Success 201 {object} controllers.CreateCampaignSuccessResponse "data contains the created campaign"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns [post]
func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	campaign, err := c.Service.CreateCampaign(r.Context(), req.Name)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, campaign)
}

// ListCampaignsResponse is the data payload for GET /campaigns (200).
type ListCampaignsResponse struct {
	Items      []*domain.Campaign     `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListCampaignsSuccessResponse is the success response envelope for GET /campaigns (200).
type ListCampaignsSuccessResponse struct {
	Data  ListCampaignsResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ListCampaigns godoc
// @Summary List campaigns
// @Description Returns a paginated list of campaigns, newest first. Use page and page_size query params.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListCampaignsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns [get]
func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	campaigns, total, err := c.Service.ListCampaigns(r.Context(), params)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCampaignsResponse{Items: campaigns, Pagination: meta})
}

// GetCampaignSuccessResponse is the success response envelope for GET /campaigns/{campaignID} (200).
type GetCampaignSuccessResponse struct {
	Data  *domain.CampaignDetail `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// GetCampaign godoc
// @Summary Get a campaign
// @Description Returns the campaign with its schedule (if any) and today's send counts for the campaign's timezone.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} controllers.GetCampaignSuccessResponse "data contains the campaign detail"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID} [get]
func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("campaignID")
	if campaignID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing campaignID")
		return
	}
	detail, err := c.Service.GetCampaign(r.Context(), campaignID, c.Now())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// ListScheduledCampaignsSuccessResponse is the success response envelope for GET /campaigns/scheduled (200).
type ListScheduledCampaignsSuccessResponse struct {
	Data  []*domain.ScheduledCampaign `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// ListScheduledCampaigns godoc
// @Summary List active scheduled campaigns
// @Description Returns active campaigns that have a schedule, each with its resolved UTC start instant. This is the set the dispatch worker considers.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListScheduledCampaignsSuccessResponse "data is an array of scheduled campaigns"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/scheduled [get]
func (c *CampaignController) ListScheduledCampaigns(w http.ResponseWriter, r *http.Request) {
	scheduled, err := c.Service.ListScheduledCampaigns(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	if scheduled == nil {
		scheduled = []*domain.ScheduledCampaign{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, scheduled)
}

// TransitionSuccessResponse is the success response envelope for the campaign lifecycle endpoints (200).
type TransitionSuccessResponse struct {
	Data  *domain.Campaign  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StartCampaign godoc
// @Summary Start or resume a campaign
// @Description Moves a draft or paused campaign to active. Starting a draft requires at least one lead. Resuming keeps the existing schedule and quota history.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} controllers.TransitionSuccessResponse "data contains the updated campaign"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (transition not allowed)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID}/start [post]
func (c *CampaignController) StartCampaign(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.Service.StartCampaign)
}

// PauseCampaign godoc
// @Summary Pause a campaign
// @Description Moves an active campaign to paused. The dispatcher stops sending before the next email; the schedule and quota history are kept.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} controllers.TransitionSuccessResponse "data contains the updated campaign"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (transition not allowed)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID}/pause [post]
func (c *CampaignController) PauseCampaign(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.Service.PauseCampaign)
}

// CompleteCampaign godoc
// @Summary Complete a campaign
// @Description Marks the campaign completed. Completed is terminal; no further transitions are allowed.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} controllers.TransitionSuccessResponse "data contains the updated campaign"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (transition not allowed)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaigns/{campaignID}/complete [post]
func (c *CampaignController) CompleteCampaign(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.Service.CompleteCampaign)
}

func (c *CampaignController) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (*domain.Campaign, error)) {
	campaignID := r.PathValue("campaignID")
	if campaignID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing campaignID")
		return
	}
	campaign, err := op(r.Context(), campaignID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campaign)
}
