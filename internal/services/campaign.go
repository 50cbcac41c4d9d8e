package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salesoutreach/internal/domain"
)

type campaignService struct {
	campaignRepo   domain.CampaignRepository
	scheduleRepo   domain.ScheduleRepository
	leadRepo       domain.LeadRepository
	quotaRepo      domain.QuotaRepository
	contextTimeout time.Duration
}

// NewCampaignService returns the CampaignService backed by the given repositories.
func NewCampaignService(
	campaignRepo domain.CampaignRepository,
	scheduleRepo domain.ScheduleRepository,
	leadRepo domain.LeadRepository,
	quotaRepo domain.QuotaRepository,
	timeout time.Duration,
) domain.CampaignService {
	return &campaignService{
		campaignRepo:   campaignRepo,
		scheduleRepo:   scheduleRepo,
		leadRepo:       leadRepo,
		quotaRepo:      quotaRepo,
		contextTimeout: timeout,
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, name string) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("name is required")
	}

	now := time.Now()
	campaign := domain.NewCampaign(strings.TrimSpace(name), now, now)
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return campaign, nil
}

func (s *campaignService) GetCampaign(ctx context.Context, id string, now time.Time) (*domain.CampaignDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	detail := &domain.CampaignDetail{Campaign: campaign}

	schedule, err := s.scheduleRepo.GetByCampaignID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return detail, nil
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	detail.Schedule = schedule

	day, err := schedule.SendDay(now)
	if err != nil {
		return nil, fmt.Errorf("send day: %w", err)
	}
	sent, err := s.quotaRepo.GetSentCount(ctx, id, day)
	if err != nil {
		return nil, fmt.Errorf("get sent count: %w", err)
	}
	detail.SentToday = sent
	detail.RemainingToday = schedule.DailySendLimit - sent
	if detail.RemainingToday < 0 {
		detail.RemainingToday = 0
	}
	return detail, nil
}

func (s *campaignService) ListCampaigns(ctx context.Context, p domain.PaginationParams) ([]*domain.Campaign, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	campaigns, total, err := s.campaignRepo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list campaigns: %w", err)
	}
	if campaigns == nil {
		campaigns = []*domain.Campaign{}
	}
	return campaigns, total, nil
}

func (s *campaignService) ListScheduledCampaigns(ctx context.Context) ([]*domain.ScheduledCampaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	campaigns, err := s.campaignRepo.ListActiveScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scheduled campaigns: %w", err)
	}

	out := make([]*domain.ScheduledCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		schedule, err := s.scheduleRepo.GetByCampaignID(ctx, c.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get schedule for campaign %s: %w", c.ID, err)
		}
		start, err := schedule.ResolveStart()
		if err != nil {
			return nil, fmt.Errorf("resolve start for campaign %s: %w", c.ID, err)
		}
		out = append(out, &domain.ScheduledCampaign{
			Campaign:     c,
			Schedule:     schedule,
			StartInstant: start,
		})
	}
	return out, nil
}

func (s *campaignService) StartCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	if !domain.CanTransition(campaign.Status, domain.CampaignActive) {
		return nil, transitionError(campaign.Status, domain.CampaignActive)
	}

	// Starting a draft requires at least one associated lead. Resuming a
	// paused campaign does not re-check: its leads were validated on first
	// start, and resuming never resets quota history or the schedule.
	if campaign.Status == domain.CampaignDraft {
		count, err := s.leadRepo.CountByCampaign(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("count leads: %w", err)
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: cannot start a campaign with no leads", domain.ErrInvalidTransition)
		}
	}

	return s.transition(ctx, campaign, domain.CampaignActive)
}

func (s *campaignService) PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.transitionByID(ctx, id, domain.CampaignPaused)
}

func (s *campaignService) CompleteCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.transitionByID(ctx, id, domain.CampaignCompleted)
}

func (s *campaignService) transitionByID(ctx context.Context, id string, to domain.CampaignStatus) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if !domain.CanTransition(campaign.Status, to) {
		return nil, transitionError(campaign.Status, to)
	}
	return s.transition(ctx, campaign, to)
}

func (s *campaignService) transition(ctx context.Context, campaign *domain.Campaign, to domain.CampaignStatus) (*domain.Campaign, error) {
	if err := s.campaignRepo.UpdateStatus(ctx, campaign.ID, to); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	campaign.Status = to
	campaign.UpdatedAt = time.Now()
	return campaign, nil
}

func transitionError(from, to domain.CampaignStatus) error {
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
}
