package domain

import (
	"context"
	"time"
)

// Outreach email statuses. Drafting and approval happen in the external
// research/drafting flow; this core only consumes approved rows and records
// the send result.
const (
	EmailStatusDraft    = "draft"
	EmailStatusApproved = "approved"
	EmailStatusSent     = "sent"
	EmailStatusFailed   = "failed"
)

// OutreachEmail is a drafted outreach email for one lead of a campaign.
// swagger:model OutreachEmail
type OutreachEmail struct {
	ID         string     `json:"id"`
	CampaignID string     `json:"campaign_id"`
	LeadID     string     `json:"lead_id"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	Status     string     `json:"status"`
	LastError  string     `json:"last_error,omitempty"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// OutreachEmailRepository defines storage operations for outreach emails used
// by the dispatcher.
type OutreachEmailRepository interface {
	// GetApprovedByLead returns the approved email for the lead in the
	// campaign, or ErrNotFound when none is approved yet.
	GetApprovedByLead(ctx context.Context, campaignID, leadID string) (*OutreachEmail, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// Mailer is the outbound email transport provider (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}
