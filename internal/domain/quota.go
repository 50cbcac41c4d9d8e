package domain

import (
	"context"
	"time"
)

// DailyQuota counts emails dispatched for a campaign on one send-day. Rows are
// created lazily on the first recorded send of a day, never decremented, and
// kept as inert history once the day rolls over. Replacing a campaign's
// schedule does not touch them.
type DailyQuota struct {
	CampaignID string    `json:"campaign_id"`
	SendDay    Date      `json:"send_day"`
	SentCount  int       `json:"sent_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// QuotaRepository defines storage for daily quota counters.
type QuotaRepository interface {
	// GetSentCount returns the sent count for the campaign and send-day.
	// A missing row counts as 0.
	GetSentCount(ctx context.Context, campaignID string, day Date) (int, error)
	// Increment records one send. The limit check and the increment happen in
	// one indivisible step; when the counter is already at limit it returns
	// ErrQuotaExceeded and the new count is not written. Concurrent callers
	// for the same (campaign, day) must never jointly exceed the limit.
	Increment(ctx context.Context, campaignID string, day Date, limit int) (newCount int, err error)
}

// QuotaTracker enforces a campaign's daily send cap.
type QuotaTracker interface {
	// RemainingQuota returns limit minus the sent count for the send-day that
	// now falls on in the schedule's timezone.
	RemainingQuota(ctx context.Context, campaignID string, schedule *Schedule, now time.Time) (int, error)
	// RecordSend consumes one unit of quota for the given send-day. Call it
	// only after the transport confirms a successful send.
	RecordSend(ctx context.Context, campaignID string, schedule *Schedule, day Date) error
}
