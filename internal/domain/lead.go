package domain

import (
	"context"
	"time"
)

// Lead outreach statuses. "new" is the only status eligible for dispatch.
const (
	LeadStatusNew          = "new"
	LeadStatusContacted    = "contacted"
	LeadStatusReplied      = "replied"
	LeadStatusBounced      = "bounced"
	LeadStatusUnsubscribed = "unsubscribed"
)

// Lead is a campaign contact. Lead CRUD and CSV import live elsewhere; this
// core reads leads only to decide dispatch eligibility.
// swagger:model Lead
type Lead struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeadRepository is the read-only lead eligibility source.
type LeadRepository interface {
	// ListEligibleByCampaign returns leads that have not been sent an outreach
	// email and are not excluded by status, ordered by creation time then ID
	// so plans are deterministic and fair.
	ListEligibleByCampaign(ctx context.Context, campaignID string) ([]*Lead, error)
	// CountByCampaign returns the number of leads associated with the
	// campaign, used by the draft -> active guard.
	CountByCampaign(ctx context.Context, campaignID string) (int, error)
}
