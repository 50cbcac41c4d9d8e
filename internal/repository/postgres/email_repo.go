package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salesoutreach/internal/domain"
)

type outreachEmailRepository struct {
	DB *sql.DB
}

// NewOutreachEmailRepository returns a domain.OutreachEmailRepository implemented with Postgres.
func NewOutreachEmailRepository(db *sql.DB) domain.OutreachEmailRepository {
	return &outreachEmailRepository{DB: db}
}

func (r *outreachEmailRepository) GetApprovedByLead(ctx context.Context, campaignID, leadID string) (*domain.OutreachEmail, error) {
	query := `
		SELECT id, campaign_id, lead_id, subject, body, status, last_error, sent_at, created_at, updated_at
		FROM outreach_emails
		WHERE campaign_id = $1 AND lead_id = $2 AND status = $3
		ORDER BY updated_at DESC
		LIMIT 1
	`
	e := &domain.OutreachEmail{}
	var lastErrNull sql.NullString
	var sentAtNull sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, campaignID, leadID, domain.EmailStatusApproved).Scan(
		&e.ID, &e.CampaignID, &e.LeadID, &e.Subject, &e.Body, &e.Status,
		&lastErrNull, &sentAtNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if lastErrNull.Valid {
		e.LastError = lastErrNull.String
	}
	if sentAtNull.Valid {
		e.SentAt = &sentAtNull.Time
	}
	return e, nil
}

func (r *outreachEmailRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE outreach_emails
		SET status = $2, sent_at = $3, last_error = NULL, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, domain.EmailStatusSent, at)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *outreachEmailRepository) MarkFailed(ctx context.Context, id, reason string) error {
	query := `
		UPDATE outreach_emails
		SET status = $2, last_error = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, domain.EmailStatusFailed, reason)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
