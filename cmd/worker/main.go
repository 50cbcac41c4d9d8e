package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"salesoutreach/config"
	"salesoutreach/internal/adapters/email"
	"salesoutreach/internal/repository/postgres"
	"salesoutreach/internal/services"
)

const serviceTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

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

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("init mailer", "err", err)
		os.Exit(1)
	}

	campaignRepo := postgres.NewCampaignRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	quotaRepo := postgres.NewQuotaRepository(db)
	leadRepo := postgres.NewLeadRepository(db)
	emailRepo := postgres.NewOutreachEmailRepository(db)

	quota := services.NewQuotaTracker(quotaRepo, serviceTimeout)
	planner := services.NewDispatchPlanner(campaignRepo, scheduleRepo, leadRepo, quota, serviceTimeout)
	dispatcher := services.NewDispatcher(campaignRepo, scheduleRepo, leadRepo, emailRepo, planner, quota, mailer, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := cron.New()
	_, err = c.AddFunc("@every "+cfg.DispatchInterval.String(), func() {
		if err := dispatcher.RunOnce(ctx, time.Now()); err != nil {
			logger.Error("dispatch run failed", "err", err)
		}
	})
	if err != nil {
		logger.Error("schedule dispatch tick", "err", err)
		os.Exit(1)
	}

	logger.Info("worker started", "interval", cfg.DispatchInterval.String())
	c.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("worker shutting down")
	cancel()
	// Wait for an in-flight run to finish.
	<-c.Stop().Done()
}
