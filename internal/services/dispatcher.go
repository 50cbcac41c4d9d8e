package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salesoutreach/internal/domain"
)

// Dispatcher drives due campaigns through plan -> send -> record. It is the
// caller side of the planner contract: an Eligible decision is a provisional
// reservation, quota is consumed only after the transport confirms a send.
type Dispatcher struct {
	campaignRepo domain.CampaignRepository
	scheduleRepo domain.ScheduleRepository
	leadRepo     domain.LeadRepository
	emailRepo    domain.OutreachEmailRepository
	planner      domain.DispatchPlanner
	quota        domain.QuotaTracker
	mailer       domain.Mailer
	logger       *slog.Logger
}

// NewDispatcher wires a Dispatcher.
func NewDispatcher(
	campaignRepo domain.CampaignRepository,
	scheduleRepo domain.ScheduleRepository,
	leadRepo domain.LeadRepository,
	emailRepo domain.OutreachEmailRepository,
	planner domain.DispatchPlanner,
	quota domain.QuotaTracker,
	mailer domain.Mailer,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		campaignRepo: campaignRepo,
		scheduleRepo: scheduleRepo,
		leadRepo:     leadRepo,
		emailRepo:    emailRepo,
		planner:      planner,
		quota:        quota,
		mailer:       mailer,
		logger:       logger,
	}
}

// RunOnce checks every active scheduled campaign once and dispatches due
// sends. It is invoked by the worker tick; failures in one campaign do not
// stop the others.
func (d *Dispatcher) RunOnce(ctx context.Context, now time.Time) error {
	log := d.logger.With("run_id", uuid.NewString())

	campaigns, err := d.campaignRepo.ListActiveScheduled(ctx)
	if err != nil {
		return fmt.Errorf("list active scheduled campaigns: %w", err)
	}
	log.Info("dispatch run", "campaigns", len(campaigns))

	for _, c := range campaigns {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.dispatchCampaign(ctx, log, c.ID, now); err != nil {
			log.Error("campaign dispatch failed", "campaign_id", c.ID, "err", err)
		}
	}
	return nil
}

func (d *Dispatcher) dispatchCampaign(ctx context.Context, log *slog.Logger, campaignID string, now time.Time) error {
	plan, err := d.planner.PlanBatch(ctx, campaignID, now)
	if err != nil {
		return fmt.Errorf("plan batch: %w", err)
	}
	eligible := plan.EligibleLeadIDs()
	if len(eligible) == 0 {
		log.Debug("nothing to send", "campaign_id", campaignID, "decisions", len(plan.Decisions))
		return nil
	}

	schedule, err := d.scheduleRepo.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get schedule: %w", err)
	}

	leads, err := d.leadRepo.ListEligibleByCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("list eligible leads: %w", err)
	}
	leadsByID := make(map[string]*domain.Lead, len(leads))
	for _, lead := range leads {
		leadsByID[lead.ID] = lead
	}

	sent := 0
	for _, leadID := range eligible {
		if err := ctx.Err(); err != nil {
			return err
		}

		// A pause takes effect for plans made after it; for sends planned
		// before it, checking here is this caller's responsibility.
		campaign, err := d.campaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("recheck campaign: %w", err)
		}
		if campaign.Status != domain.CampaignActive {
			log.Info("campaign no longer active, stopping batch", "campaign_id", campaignID, "status", campaign.Status)
			break
		}

		lead, ok := leadsByID[leadID]
		if !ok {
			continue
		}

		email, err := d.emailRepo.GetApprovedByLead(ctx, campaignID, leadID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				log.Debug("no approved email for lead", "campaign_id", campaignID, "lead_id", leadID)
				continue
			}
			return fmt.Errorf("get approved email: %w", err)
		}

		if err := d.mailer.Send(ctx, lead.Email, email.Subject, email.Body, ""); err != nil {
			log.Warn("send failed", "campaign_id", campaignID, "lead_id", leadID, "err", err)
			if err := d.emailRepo.MarkFailed(ctx, email.ID, err.Error()); err != nil {
				log.Error("mark failed", "email_id", email.ID, "err", err)
			}
			continue
		}

		if err := d.emailRepo.MarkSent(ctx, email.ID, now); err != nil {
			log.Error("mark sent", "email_id", email.ID, "err", err)
		}

		if err := d.quota.RecordSend(ctx, campaignID, schedule, plan.SendDay); err != nil {
			if errors.Is(err, domain.ErrQuotaExceeded) {
				// A concurrent dispatcher consumed the remaining quota; the
				// rest of this batch waits for the next send-day.
				log.Info("quota exhausted mid-batch", "campaign_id", campaignID, "send_day", plan.SendDay.String())
				break
			}
			return fmt.Errorf("record send: %w", err)
		}
		sent++
	}

	log.Info("campaign dispatched", "campaign_id", campaignID, "eligible", len(eligible), "sent", sent)
	return nil
}
