package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesoutreach/internal/domain"
)

type quotaTracker struct {
	quotaRepo      domain.QuotaRepository
	contextTimeout time.Duration
}

// NewQuotaTracker returns the QuotaTracker backed by the given repository.
func NewQuotaTracker(quotaRepo domain.QuotaRepository, timeout time.Duration) domain.QuotaTracker {
	return &quotaTracker{
		quotaRepo:      quotaRepo,
		contextTimeout: timeout,
	}
}

func (q *quotaTracker) RemainingQuota(ctx context.Context, campaignID string, schedule *domain.Schedule, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, q.contextTimeout)
	defer cancel()

	day, err := schedule.SendDay(now)
	if err != nil {
		return 0, err
	}
	sent, err := q.quotaRepo.GetSentCount(ctx, campaignID, day)
	if err != nil {
		return 0, fmt.Errorf("get sent count: %w", err)
	}
	remaining := schedule.DailySendLimit - sent
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (q *quotaTracker) RecordSend(ctx context.Context, campaignID string, schedule *domain.Schedule, day domain.Date) error {
	ctx, cancel := context.WithTimeout(ctx, q.contextTimeout)
	defer cancel()

	_, err := q.quotaRepo.Increment(ctx, campaignID, day, schedule.DailySendLimit)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return domain.ErrQuotaExceeded
		}
		return fmt.Errorf("increment quota: %w", err)
	}
	return nil
}
