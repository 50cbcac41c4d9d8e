package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesoutreach/internal/domain"
)

func quotaSchedule(limit int) *domain.Schedule {
	return &domain.Schedule{
		CampaignID:     "cmp-1",
		StartDate:      domain.Date{Year: 2025, Month: time.June, Day: 1},
		StartTime:      domain.TimeOfDay{Hour: 9},
		Timezone:       "America/New_York",
		DailySendLimit: limit,
	}
}

func TestQuotaTracker_RemainingQuota(t *testing.T) {
	// 2025-06-02 18:00 UTC is 14:00 in New York, send day 2025-06-02.
	now := time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC)
	day := domain.Date{Year: 2025, Month: time.June, Day: 2}

	tests := []struct {
		name  string
		limit int
		sent  int
		want  int
	}{
		{"untouched day", 50, 0, 50},
		{"partially used", 50, 20, 30},
		{"exhausted", 50, 50, 0},
		{"overshoot clamps to zero", 50, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeQuotaRepo()
			repo.setCount("cmp-1", day, tt.sent)
			tracker := NewQuotaTracker(repo, testTimeout)

			got, err := tracker.RemainingQuota(context.Background(), "cmp-1", quotaSchedule(tt.limit), now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuotaTracker_SendDayFollowsCampaignTimezone(t *testing.T) {
	repo := newFakeQuotaRepo()
	tracker := NewQuotaTracker(repo, testTimeout)

	// 2025-06-03 02:00 UTC is still 2025-06-02 22:00 in New York.
	now := time.Date(2025, time.June, 3, 2, 0, 0, 0, time.UTC)
	repo.setCount("cmp-1", domain.Date{Year: 2025, Month: time.June, Day: 2}, 49)

	got, err := tracker.RemainingQuota(context.Background(), "cmp-1", quotaSchedule(50), now)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "the UTC date rolled over but the campaign-local day did not")
}

func TestQuotaTracker_RecordSend(t *testing.T) {
	repo := newFakeQuotaRepo()
	tracker := NewQuotaTracker(repo, testTimeout)
	day := domain.Date{Year: 2025, Month: time.June, Day: 2}
	sched := quotaSchedule(2)

	require.NoError(t, tracker.RecordSend(context.Background(), "cmp-1", sched, day))
	require.NoError(t, tracker.RecordSend(context.Background(), "cmp-1", sched, day))
	err := tracker.RecordSend(context.Background(), "cmp-1", sched, day)
	require.ErrorIs(t, err, domain.ErrQuotaExceeded)

	count, err := repo.GetSentCount(context.Background(), "cmp-1", day)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestQuotaTracker_RecordSend_NeverExceedsLimitUnderContention(t *testing.T) {
	const (
		limit   = 10
		workers = 50
	)
	repo := newFakeQuotaRepo()
	tracker := NewQuotaTracker(repo, testTimeout)
	day := domain.Date{Year: 2025, Month: time.June, Day: 2}
	sched := quotaSchedule(limit)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tracker.RecordSend(context.Background(), "cmp-1", sched, day)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case assert.ErrorIs(t, err, domain.ErrQuotaExceeded):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, accepted)
	assert.Equal(t, workers-limit, rejected)

	count, err := repo.GetSentCount(context.Background(), "cmp-1", day)
	require.NoError(t, err)
	assert.Equal(t, limit, count)
}

func TestQuotaTracker_DaysAreIndependent(t *testing.T) {
	repo := newFakeQuotaRepo()
	tracker := NewQuotaTracker(repo, testTimeout)
	sched := quotaSchedule(1)

	monday := domain.Date{Year: 2025, Month: time.June, Day: 2}
	tuesday := domain.Date{Year: 2025, Month: time.June, Day: 3}

	require.NoError(t, tracker.RecordSend(context.Background(), "cmp-1", sched, monday))
	require.ErrorIs(t, tracker.RecordSend(context.Background(), "cmp-1", sched, monday), domain.ErrQuotaExceeded)
	require.NoError(t, tracker.RecordSend(context.Background(), "cmp-1", sched, tuesday))
}
