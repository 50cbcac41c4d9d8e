package domain

import (
	"context"
	"time"
)

// DispatchOutcome classifies each lead in a dispatch plan.
type DispatchOutcome string

const (
	OutcomeEligible                 DispatchOutcome = "eligible"
	OutcomeSkippedNotStarted        DispatchOutcome = "skipped_not_started"
	OutcomeSkippedQuotaExhausted    DispatchOutcome = "skipped_quota_exhausted"
	OutcomeSkippedCampaignNotActive DispatchOutcome = "skipped_campaign_not_active"
)

// DispatchDecision pairs a lead with the planner's outcome for it.
type DispatchDecision struct {
	LeadID  string          `json:"lead_id"`
	Outcome DispatchOutcome `json:"outcome"`
}

// DispatchPlan is the ordered decision list produced by the planner. It is a
// plan, not a reservation: quota is only consumed by RecordSend after a
// confirmed transport success, so two racing planners are resolved there.
type DispatchPlan struct {
	CampaignID string             `json:"campaign_id"`
	PlannedAt  time.Time          `json:"planned_at"`
	SendDay    Date               `json:"send_day"`
	Decisions  []DispatchDecision `json:"decisions"`
}

// EligibleLeadIDs returns the lead IDs marked eligible, in plan order.
func (p *DispatchPlan) EligibleLeadIDs() []string {
	var ids []string
	for _, d := range p.Decisions {
		if d.Outcome == OutcomeEligible {
			ids = append(ids, d.LeadID)
		}
	}
	return ids
}

// DispatchPlanner produces send decisions for a campaign at a given instant.
// Planning performs no sends and consumes no quota; calling it repeatedly
// without intervening RecordSend calls yields the identical plan.
type DispatchPlanner interface {
	PlanBatch(ctx context.Context, campaignID string, now time.Time) (*DispatchPlan, error)
}
