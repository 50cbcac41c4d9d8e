package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"salesoutreach/internal/delivery/http/controllers"
	"salesoutreach/internal/delivery/http/middleware"
	"salesoutreach/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	campaignController *controllers.CampaignController,
	scheduleController *controllers.ScheduleController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Campaigns
	mux.HandleFunc("POST /campaigns", auth(campaignController.CreateCampaign))
	mux.HandleFunc("GET /campaigns", auth(campaignController.ListCampaigns))
	// Registered before the {campaignID} pattern so "scheduled" is not taken as an ID.
	mux.HandleFunc("GET /campaigns/scheduled", auth(campaignController.ListScheduledCampaigns))
	mux.HandleFunc("GET /campaigns/{campaignID}", auth(campaignController.GetCampaign))
	mux.HandleFunc("POST /campaigns/{campaignID}/start", auth(campaignController.StartCampaign))
	mux.HandleFunc("POST /campaigns/{campaignID}/pause", auth(campaignController.PauseCampaign))
	mux.HandleFunc("POST /campaigns/{campaignID}/complete", auth(campaignController.CompleteCampaign))

	// Schedules
	mux.HandleFunc("POST /campaigns/{campaignID}/schedule", auth(scheduleController.CreateSchedule))
	mux.HandleFunc("GET /campaigns/{campaignID}/schedule", auth(scheduleController.GetSchedule))
	mux.HandleFunc("PUT /campaigns/{campaignID}/schedule", auth(scheduleController.UpdateSchedule))
	mux.HandleFunc("DELETE /campaigns/{campaignID}/schedule", auth(scheduleController.DeleteSchedule))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
