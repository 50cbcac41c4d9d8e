package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesoutreach/internal/domain"
)

type dispatchPlanner struct {
	campaignRepo   domain.CampaignRepository
	scheduleRepo   domain.ScheduleRepository
	leadRepo       domain.LeadRepository
	quota          domain.QuotaTracker
	contextTimeout time.Duration
}

// NewDispatchPlanner returns the DispatchPlanner. Planning is read-only: it
// never sends and never consumes quota.
func NewDispatchPlanner(
	campaignRepo domain.CampaignRepository,
	scheduleRepo domain.ScheduleRepository,
	leadRepo domain.LeadRepository,
	quota domain.QuotaTracker,
	timeout time.Duration,
) domain.DispatchPlanner {
	return &dispatchPlanner{
		campaignRepo:   campaignRepo,
		scheduleRepo:   scheduleRepo,
		leadRepo:       leadRepo,
		quota:          quota,
		contextTimeout: timeout,
	}
}

func (p *dispatchPlanner) PlanBatch(ctx context.Context, campaignID string, now time.Time) (*domain.DispatchPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
	defer cancel()

	campaign, err := p.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	leads, err := p.leadRepo.ListEligibleByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list eligible leads: %w", err)
	}

	plan := &domain.DispatchPlan{
		CampaignID: campaignID,
		PlannedAt:  now,
		Decisions:  make([]domain.DispatchDecision, 0, len(leads)),
	}

	if campaign.Status != domain.CampaignActive {
		markAll(plan, leads, domain.OutcomeSkippedCampaignNotActive)
		return plan, nil
	}

	schedule, err := p.scheduleRepo.GetByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No schedule means no automatic pacing; manual sends fall
			// outside this engine.
			return plan, nil
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	start, err := schedule.ResolveStart()
	if err != nil {
		return nil, fmt.Errorf("resolve start: %w", err)
	}
	if now.Before(start) {
		markAll(plan, leads, domain.OutcomeSkippedNotStarted)
		return plan, nil
	}

	day, err := schedule.SendDay(now)
	if err != nil {
		return nil, fmt.Errorf("send day: %w", err)
	}
	plan.SendDay = day

	remaining, err := p.quota.RemainingQuota(ctx, campaignID, schedule, now)
	if err != nil {
		return nil, fmt.Errorf("remaining quota: %w", err)
	}

	for i, lead := range leads {
		outcome := domain.OutcomeEligible
		if i >= remaining {
			outcome = domain.OutcomeSkippedQuotaExhausted
		}
		plan.Decisions = append(plan.Decisions, domain.DispatchDecision{LeadID: lead.ID, Outcome: outcome})
	}
	return plan, nil
}

func markAll(plan *domain.DispatchPlan, leads []*domain.Lead, outcome domain.DispatchOutcome) {
	for _, lead := range leads {
		plan.Decisions = append(plan.Decisions, domain.DispatchDecision{LeadID: lead.ID, Outcome: outcome})
	}
}
