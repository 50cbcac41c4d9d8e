package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"salesoutreach/internal/domain"
)

type scheduleRepository struct {
	DB *sql.DB
}

// NewScheduleRepository returns a domain.ScheduleRepository implemented with Postgres.
func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{DB: db}
}

func (r *scheduleRepository) Upsert(ctx context.Context, s *domain.Schedule) error {
	// One schedule per campaign: a second write replaces every field.
	query := `
		INSERT INTO campaign_schedules (campaign_id, start_date, start_time, timezone, daily_send_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (campaign_id) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			start_time = EXCLUDED.start_time,
			timezone = EXCLUDED.timezone,
			daily_send_limit = EXCLUDED.daily_send_limit,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.CampaignID, s.StartDate.String(), s.StartTime.String(), s.Timezone, s.DailySendLimit, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *scheduleRepository) GetByCampaignID(ctx context.Context, campaignID string) (*domain.Schedule, error) {
	query := `
		SELECT campaign_id, start_date, start_time, timezone, daily_send_limit, created_at, updated_at
		FROM campaign_schedules
		WHERE campaign_id = $1
	`
	s := &domain.Schedule{}
	var startDate time.Time
	var startTime string
	err := r.DB.QueryRowContext(ctx, query, campaignID).Scan(
		&s.CampaignID, &startDate, &startTime, &s.Timezone, &s.DailySendLimit, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.StartDate = domain.DateOf(startDate)
	tod, err := domain.ParseTimeOfDay(startTime)
	if err != nil {
		return nil, fmt.Errorf("parse stored start_time %q: %w", startTime, err)
	}
	s.StartTime = tod
	return s, nil
}

func (r *scheduleRepository) DeleteByCampaignID(ctx context.Context, campaignID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM campaign_schedules WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
