package services

// Shared in-memory fakes for service tests.

import (
	"context"
	"fmt"
	"sync"
	"time"

	"salesoutreach/internal/domain"
)

type fakeCampaignRepo struct {
	mu           sync.Mutex
	byID         map[string]*domain.Campaign
	order        []string
	nextID       int
	scheduleRepo *fakeScheduleRepo // for ListActiveScheduled; may be nil

	createErr error
	getErr    error
	updateErr error
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{byID: make(map[string]*domain.Campaign), nextID: 1}
}

func (f *fakeCampaignRepo) Create(ctx context.Context, c *domain.Campaign) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = fmt.Sprintf("cmp-%d", f.nextID)
	f.nextID++
	f.byID[c.ID] = c
	f.order = append(f.order, c.ID)
	return nil
}

func (f *fakeCampaignRepo) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaignRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Campaign, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*domain.Campaign
	for _, id := range f.order {
		all = append(all, f.byID[id])
	}
	total := len(all)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Limit()
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (f *fakeCampaignRepo) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	return nil
}

func (f *fakeCampaignRepo) ListActiveScheduled(ctx context.Context) ([]*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Campaign
	for _, id := range f.order {
		c := f.byID[id]
		if c.Status != domain.CampaignActive {
			continue
		}
		if f.scheduleRepo != nil && f.scheduleRepo.has(id) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// addCampaign seeds a campaign directly, bypassing Create.
func (f *fakeCampaignRepo) addCampaign(id string, status domain.CampaignStatus) *domain.Campaign {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &domain.Campaign{ID: id, Name: id, Status: status, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.byID[id] = c
	f.order = append(f.order, id)
	return c
}

type fakeScheduleRepo struct {
	mu         sync.Mutex
	byCampaign map[string]domain.Schedule

	upsertErr error
	getErr    error
	deleteErr error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{byCampaign: make(map[string]domain.Schedule)}
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, s *domain.Schedule) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byCampaign[s.CampaignID] = *s
	return nil
}

func (f *fakeScheduleRepo) GetByCampaignID(ctx context.Context, campaignID string) (*domain.Schedule, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byCampaign[campaignID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (f *fakeScheduleRepo) DeleteByCampaignID(ctx context.Context, campaignID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byCampaign[campaignID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byCampaign, campaignID)
	return nil
}

func (f *fakeScheduleRepo) has(campaignID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byCampaign[campaignID]
	return ok
}

type fakeLeadRepo struct {
	mu              sync.Mutex
	leadsByCampaign map[string][]*domain.Lead

	listErr  error
	countErr error
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leadsByCampaign: make(map[string][]*domain.Lead)}
}

func (f *fakeLeadRepo) addLeads(campaignID string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < n; i++ {
		idx := len(f.leadsByCampaign[campaignID]) + 1
		f.leadsByCampaign[campaignID] = append(f.leadsByCampaign[campaignID], &domain.Lead{
			ID:         fmt.Sprintf("%s-lead-%d", campaignID, idx),
			CampaignID: campaignID,
			Email:      fmt.Sprintf("lead%d@example.com", idx),
			Name:       fmt.Sprintf("Lead %d", idx),
			Status:     domain.LeadStatusNew,
			CreatedAt:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(idx) * time.Minute),
		})
	}
}

func (f *fakeLeadRepo) ListEligibleByCampaign(ctx context.Context, campaignID string) ([]*domain.Lead, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Lead(nil), f.leadsByCampaign[campaignID]...), nil
}

func (f *fakeLeadRepo) CountByCampaign(ctx context.Context, campaignID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.leadsByCampaign[campaignID]), nil
}

// fakeQuotaRepo mimics the repository's compare-and-increment contract: the
// limit check and the increment are one step under the lock.
type fakeQuotaRepo struct {
	mu     sync.Mutex
	counts map[string]int

	getErr error
	incErr error
}

func newFakeQuotaRepo() *fakeQuotaRepo {
	return &fakeQuotaRepo{counts: make(map[string]int)}
}

func quotaKey(campaignID string, day domain.Date) string {
	return campaignID + "|" + day.String()
}

func (f *fakeQuotaRepo) setCount(campaignID string, day domain.Date, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[quotaKey(campaignID, day)] = n
}

func (f *fakeQuotaRepo) GetSentCount(ctx context.Context, campaignID string, day domain.Date) (int, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[quotaKey(campaignID, day)], nil
}

func (f *fakeQuotaRepo) Increment(ctx context.Context, campaignID string, day domain.Date, limit int) (int, error) {
	if f.incErr != nil {
		return 0, f.incErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := quotaKey(campaignID, day)
	if f.counts[key] >= limit {
		return 0, domain.ErrQuotaExceeded
	}
	f.counts[key]++
	return f.counts[key], nil
}

type fakeEmailRepo struct {
	mu     sync.Mutex
	byLead map[string]*domain.OutreachEmail // campaignID|leadID -> approved email
	sent   []string
	failed map[string]string // email ID -> reason
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{byLead: make(map[string]*domain.OutreachEmail), failed: make(map[string]string)}
}

func (f *fakeEmailRepo) addApproved(campaignID, leadID, subject, body string) *domain.OutreachEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := &domain.OutreachEmail{
		ID:         fmt.Sprintf("em-%s-%s", campaignID, leadID),
		CampaignID: campaignID,
		LeadID:     leadID,
		Subject:    subject,
		Body:       body,
		Status:     domain.EmailStatusApproved,
	}
	f.byLead[campaignID+"|"+leadID] = e
	return e
}

func (f *fakeEmailRepo) GetApprovedByLead(ctx context.Context, campaignID, leadID string) (*domain.OutreachEmail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byLead[campaignID+"|"+leadID]
	if !ok || e.Status != domain.EmailStatusApproved {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmailRepo) MarkSent(ctx context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, id)
	for _, e := range f.byLead {
		if e.ID == id {
			e.Status = domain.EmailStatusSent
			sentAt := at
			e.SentAt = &sentAt
		}
	}
	return nil
}

func (f *fakeEmailRepo) MarkFailed(ctx context.Context, id, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[id] = reason
	for _, e := range f.byLead {
		if e.ID == id {
			e.Status = domain.EmailStatusFailed
			e.LastError = reason
		}
	}
	return nil
}

type sentMail struct {
	To      string
	Subject string
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]error // recipient -> error
	onSend  func(to string)  // called after each successful send
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]error)}
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.mu.Lock()
	if err, ok := f.failFor[to]; ok {
		f.mu.Unlock()
		return err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject})
	hook := f.onSend
	f.mu.Unlock()
	if hook != nil {
		hook(to)
	}
	return nil
}
