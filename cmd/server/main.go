package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"salesoutreach/config"
	"salesoutreach/docs"
	"salesoutreach/internal/adapters/auth"
	delivery "salesoutreach/internal/delivery/http"
	"salesoutreach/internal/delivery/http/controllers"
	"salesoutreach/internal/delivery/http/middleware"
	"salesoutreach/internal/repository/postgres"
	"salesoutreach/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Sales Outreach API
// @version 1.0
// @description Campaign scheduling and daily send quota backend for the sales outreach dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	campaignRepo := postgres.NewCampaignRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	quotaRepo := postgres.NewQuotaRepository(db)
	leadRepo := postgres.NewLeadRepository(db)

	campaignService := services.NewCampaignService(campaignRepo, scheduleRepo, leadRepo, quotaRepo, serviceTimeout)
	scheduleService := services.NewScheduleService(scheduleRepo, campaignRepo, serviceTimeout)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	campaignController := controllers.NewCampaignController(logger, campaignService)
	scheduleController := controllers.NewScheduleController(logger, scheduleService)

	mux := delivery.NewRouter(campaignController, scheduleController, verifier, logger)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
