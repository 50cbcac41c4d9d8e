package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesoutreach/internal/domain"
)

type scheduleService struct {
	scheduleRepo   domain.ScheduleRepository
	campaignRepo   domain.CampaignRepository
	contextTimeout time.Duration
}

// NewScheduleService returns the ScheduleService backed by the given repositories.
func NewScheduleService(scheduleRepo domain.ScheduleRepository, campaignRepo domain.CampaignRepository, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		scheduleRepo:   scheduleRepo,
		campaignRepo:   campaignRepo,
		contextTimeout: timeout,
	}
}

func (s *scheduleService) SetSchedule(ctx context.Context, campaignID string, in domain.ScheduleInput) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sched, verr := buildSchedule(campaignID, in)
	if verr != nil {
		return nil, verr
	}

	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	now := time.Now()
	sched.CreatedAt = now
	sched.UpdatedAt = now
	if err := s.scheduleRepo.Upsert(ctx, sched); err != nil {
		return nil, fmt.Errorf("upsert schedule: %w", err)
	}
	return sched, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, campaignID string) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sched, err := s.scheduleRepo.GetByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return sched, nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, campaignID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.scheduleRepo.DeleteByCampaignID(ctx, campaignID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

// buildSchedule validates every field of the input and reports all violations
// together. A past start date is accepted: once the campaign is active it is
// immediately eligible to send, still capped by the daily quota.
func buildSchedule(campaignID string, in domain.ScheduleInput) (*domain.Schedule, *domain.ValidationError) {
	var violations []string
	sched := &domain.Schedule{
		CampaignID:     campaignID,
		Timezone:       in.Timezone,
		DailySendLimit: in.DailySendLimit,
	}

	if in.StartDate == "" {
		violations = append(violations, "start_date is required")
	} else if d, err := domain.ParseDate(in.StartDate); err != nil {
		violations = append(violations, "start_date must be a valid date in YYYY-MM-DD form")
	} else {
		sched.StartDate = d
	}

	if in.StartTime == "" {
		violations = append(violations, "start_time is required")
	} else if tod, err := domain.ParseTimeOfDay(in.StartTime); err != nil {
		violations = append(violations, "start_time must be a valid 24-hour time in HH:MM or HH:MM:SS form")
	} else {
		sched.StartTime = tod
	}

	if in.Timezone == "" {
		violations = append(violations, "timezone is required")
	} else if _, err := time.LoadLocation(in.Timezone); err != nil {
		violations = append(violations, fmt.Sprintf("timezone %q is not a recognized IANA zone name", in.Timezone))
	}

	if in.DailySendLimit < domain.MinDailySendLimit || in.DailySendLimit > domain.MaxDailySendLimit {
		violations = append(violations, fmt.Sprintf("daily_send_limit must be between %d and %d", domain.MinDailySendLimit, domain.MaxDailySendLimit))
	}

	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}
	return sched, nil
}
