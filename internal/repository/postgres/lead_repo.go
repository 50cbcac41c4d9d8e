package postgres

import (
	"context"
	"database/sql"

	"salesoutreach/internal/domain"
)

type leadRepository struct {
	DB *sql.DB
}

// NewLeadRepository returns a domain.LeadRepository implemented with Postgres.
func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{DB: db}
}

func (r *leadRepository) ListEligibleByCampaign(ctx context.Context, campaignID string) ([]*domain.Lead, error) {
	// Eligible: still "new" and never sent an outreach email. Creation order
	// keeps plans deterministic across ticks.
	query := `
		SELECT l.id, l.campaign_id, l.email, l.name, l.status, l.created_at
		FROM leads l
		WHERE l.campaign_id = $1
		  AND l.status = $2
		  AND NOT EXISTS (
			SELECT 1 FROM outreach_emails e
			WHERE e.lead_id = l.id AND e.status = $3
		  )
		ORDER BY l.created_at, l.id
	`
	rows, err := r.DB.QueryContext(ctx, query, campaignID, domain.LeadStatusNew, domain.EmailStatusSent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		l := &domain.Lead{}
		if err := rows.Scan(&l.ID, &l.CampaignID, &l.Email, &l.Name, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *leadRepository) CountByCampaign(ctx context.Context, campaignID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads WHERE campaign_id = $1`, campaignID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
