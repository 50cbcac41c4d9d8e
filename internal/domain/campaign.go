package domain

import (
	"context"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted:
		return true
	}
	return false
}

// transitions is the allowed-target table per status. completed is terminal.
var transitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:     {CampaignActive, CampaignCompleted},
	CampaignActive:    {CampaignPaused, CampaignCompleted},
	CampaignPaused:    {CampaignActive, CampaignCompleted},
	CampaignCompleted: {},
}

// CanTransition reports whether a campaign may move from one status to another.
func CanTransition(from, to CampaignStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Campaign represents an outreach campaign. At most one Schedule exists per
// campaign; a campaign without a schedule has no automatic pacing.
// swagger:model Campaign
type Campaign struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    CampaignStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewCampaign returns a draft Campaign. ID is typically set by the repository on create.
func NewCampaign(name string, createdAt, updatedAt time.Time) *Campaign {
	return &Campaign{
		Name:      name,
		Status:    CampaignDraft,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// CampaignDetail bundles a campaign with its schedule and today's quota usage.
type CampaignDetail struct {
	Campaign       *Campaign `json:"campaign"`
	Schedule       *Schedule `json:"schedule,omitempty"`
	SentToday      int       `json:"sent_today"`
	RemainingToday int       `json:"remaining_today"`
}

// ScheduledCampaign is a campaign with a schedule and its resolved start instant.
type ScheduledCampaign struct {
	Campaign     *Campaign `json:"campaign"`
	Schedule     *Schedule `json:"schedule"`
	StartInstant time.Time `json:"start_instant"`
}

// CampaignRepository defines the interface for campaign storage.
type CampaignRepository interface {
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	List(ctx context.Context, p PaginationParams) ([]*Campaign, int, error)
	UpdateStatus(ctx context.Context, id string, status CampaignStatus) error
	// ListActiveScheduled returns active campaigns that have a schedule, the
	// set the dispatcher considers on each tick.
	ListActiveScheduled(ctx context.Context) ([]*Campaign, error)
}

// CampaignService defines campaign CRUD and lifecycle transitions.
type CampaignService interface {
	CreateCampaign(ctx context.Context, name string) (*Campaign, error)
	GetCampaign(ctx context.Context, id string, now time.Time) (*CampaignDetail, error)
	ListCampaigns(ctx context.Context, p PaginationParams) ([]*Campaign, int, error)
	ListScheduledCampaigns(ctx context.Context) ([]*ScheduledCampaign, error)
	// StartCampaign moves draft or paused to active. Starting a draft requires
	// at least one associated lead.
	StartCampaign(ctx context.Context, id string) (*Campaign, error)
	PauseCampaign(ctx context.Context, id string) (*Campaign, error)
	// CompleteCampaign marks the campaign completed. The lead-tracking
	// collaborator calls this when every lead reaches a terminal outcome; the
	// service enforces only the transition table.
	CompleteCampaign(ctx context.Context, id string) (*Campaign, error)
}
