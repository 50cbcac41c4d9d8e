package postgres

import (
	"context"
	"database/sql"
	"errors"

	"salesoutreach/internal/domain"
)

type quotaRepository struct {
	DB *sql.DB
}

// NewQuotaRepository returns a domain.QuotaRepository implemented with Postgres.
func NewQuotaRepository(db *sql.DB) domain.QuotaRepository {
	return &quotaRepository{DB: db}
}

func (r *quotaRepository) GetSentCount(ctx context.Context, campaignID string, day domain.Date) (int, error) {
	query := `
		SELECT sent_count
		FROM campaign_daily_quotas
		WHERE campaign_id = $1 AND send_day = $2
	`
	var count int
	err := r.DB.QueryRowContext(ctx, query, campaignID, day.String()).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

func (r *quotaRepository) Increment(ctx context.Context, campaignID string, day domain.Date, limit int) (int, error) {
	// Check and increment in one statement so concurrent dispatchers cannot
	// jointly exceed the limit. No row back means the counter was already at
	// the limit (the WHERE rejected the update) or the limit is zero.
	query := `
		INSERT INTO campaign_daily_quotas (campaign_id, send_day, sent_count, created_at, updated_at)
		VALUES ($1, $2, 1, NOW(), NOW())
		ON CONFLICT (campaign_id, send_day) DO UPDATE SET
			sent_count = campaign_daily_quotas.sent_count + 1,
			updated_at = NOW()
		WHERE campaign_daily_quotas.sent_count < $3
		RETURNING sent_count
	`
	if limit < 1 {
		return 0, domain.ErrQuotaExceeded
	}
	var count int
	err := r.DB.QueryRowContext(ctx, query, campaignID, day.String(), limit).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrQuotaExceeded
		}
		return 0, err
	}
	return count, nil
}
