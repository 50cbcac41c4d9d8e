package postgres

import (
	"context"
	"database/sql"
	"errors"

	"salesoutreach/internal/domain"
)

type campaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) domain.CampaignRepository {
	return &campaignRepository{
		DB: db,
	}
}

func (r *campaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	query := `
		INSERT INTO campaigns (name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Name, c.Status, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	query := `
		SELECT id, name, status, created_at, updated_at
		FROM campaigns
		WHERE id = $1
	`
	c := &domain.Campaign{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *campaignRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Campaign, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, status, created_at, updated_at
		FROM campaigns
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		c := &domain.Campaign{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, total, rows.Err()
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	query := `
		UPDATE campaigns
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *campaignRepository) ListActiveScheduled(ctx context.Context) ([]*domain.Campaign, error) {
	query := `
		SELECT c.id, c.name, c.status, c.created_at, c.updated_at
		FROM campaigns c
		JOIN campaign_schedules s ON s.campaign_id = c.id
		WHERE c.status = $1
		ORDER BY c.created_at, c.id
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.CampaignActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		c := &domain.Campaign{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
