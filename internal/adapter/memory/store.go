// Package memory provides in-process implementations of the repository
// ports. They back the use case and platform client tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type monitoringKey struct {
	campaignID int64
	kind       domain.MonitoringType
}

// Store keeps every table in maps guarded by one RWMutex.
type Store struct {
	mu sync.RWMutex

	campaigns  map[int64]domain.Campaign
	urls       map[int64]domain.URLRecord
	monitoring map[monitoringKey]domain.MonitoringEntry
	budgetLog  []domain.BudgetContribution
	apiErrors  map[int64]domain.APIErrorLog
	actions    []domain.ActionLog

	nextID int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		campaigns:  make(map[int64]domain.Campaign),
		urls:       make(map[int64]domain.URLRecord),
		monitoring: make(map[monitoringKey]domain.MonitoringEntry),
		apiErrors:  make(map[int64]domain.APIErrorLog),
	}
}

// Ports exposes the store through the repository interfaces.
func (s *Store) Ports() port.Store {
	return port.Store{
		Campaigns:  s,
		URLs:       urlRepo{s},
		Monitoring: monitoringRepo{s},
		BudgetLog:  budgetLogRepo{s},
		APIErrors:  apiErrorRepo{s},
		Actions:    actionRepo{s},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// PutCampaign inserts or replaces a campaign row.
func (s *Store) PutCampaign(c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.SpendState == "" {
		c.SpendState = domain.SpendStateNormal
	}
	s.campaigns[c.ID] = c
}

// PutURL inserts or replaces a URL row.
func (s *Store) PutURL(u domain.URLRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Status == "" {
		u.Status = domain.URLStatusActive
	}
	s.urls[u.ID] = u
}

// Actions returns a copy of the action log.
func (s *Store) Actions() []domain.ActionLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.actions)
}

// APIErrors returns every error log row ordered by id.
func (s *Store) APIErrors() []domain.APIErrorLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.APIErrorLog, 0, len(s.apiErrors))
	for _, e := range s.apiErrors {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b domain.APIErrorLog) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// GetCampaign implements port.CampaignRepository.
func (s *Store) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return &c, nil
}

func (s *Store) ListControllable(_ context.Context) ([]domain.Campaign, error) {
	return s.listCampaigns(func(c *domain.Campaign) bool { return c.Controllable() }), nil
}

func (s *Store) ListWithExternalID(_ context.Context) ([]domain.Campaign, error) {
	return s.listCampaigns(func(c *domain.Campaign) bool { return c.ExtID() != "" }), nil
}

func (s *Store) listCampaigns(keep func(*domain.Campaign) bool) []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if keep(&c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (s *Store) UpdateSpend(_ context.Context, id int64, upd domain.SpendUpdate) error {
	return s.updateCampaign(id, func(c *domain.Campaign) {
		c.DailySpent = upd.Amount
		date, checked := upd.Date, upd.CheckedAt
		c.DailySpentDate = &date
		c.LastSpentCheck = &checked
	})
}

func (s *Store) ApplySpendTransition(_ context.Context, id int64, tr domain.SpendTransition) error {
	return s.updateCampaign(id, func(c *domain.Campaign) {
		c.SpendState = tr.State
		if tr.LastActionAt != nil {
			c.LastActionAt = ptr(*tr.LastActionAt)
		}
		switch {
		case tr.ClearWaitUntil:
			c.HighSpendWaitUntil = nil
		case tr.WaitUntil != nil:
			c.HighSpendWaitUntil = ptr(*tr.WaitUntil)
		}
		switch {
		case tr.ClearCalcTime:
			c.HighSpendBudgetCalcTime = nil
		case tr.CalcTime != nil:
			c.HighSpendBudgetCalcTime = ptr(*tr.CalcTime)
		}
		if tr.DailyBudget != nil {
			c.DailyBudget = ptr(*tr.DailyBudget)
		}
	})
}

func (s *Store) UpdateThresholds(_ context.Context, id int64, t domain.Thresholds) error {
	return s.updateCampaign(id, func(c *domain.Campaign) {
		c.MinPauseClicks = ptr(t.MinPause)
		c.MinActivateClicks = ptr(t.MinReactivate)
	})
}

func (s *Store) UpdateLastVerified(_ context.Context, id int64, status string, at time.Time) error {
	return s.updateCampaign(id, func(c *domain.Campaign) {
		c.LastVerifiedStatus = &status
		c.LastVerifiedAt = &at
	})
}

func (s *Store) updateCampaign(id int64, fn func(*domain.Campaign)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	fn(&c)
	s.campaigns[id] = c
	return nil
}

type urlRepo struct{ s *Store }

func (r urlRepo) ListActiveByCampaign(_ context.Context, campaignID int64) ([]domain.URLRecord, error) {
	return r.list(func(u domain.URLRecord) bool { return u.CampaignID == campaignID }), nil
}

func (r urlRepo) ListActiveCreatedAfter(_ context.Context, campaignID int64, t time.Time) ([]domain.URLRecord, error) {
	out := r.list(func(u domain.URLRecord) bool { return u.CampaignID == campaignID && u.CreatedAt.After(t) })
	slices.SortStableFunc(out, func(a, b domain.URLRecord) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (r urlRepo) list(keep func(domain.URLRecord) bool) []domain.URLRecord {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.URLRecord
	for _, u := range r.s.urls {
		if u.IsActive() && keep(u) {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b domain.URLRecord) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

type monitoringRepo struct{ s *Store }

func (r monitoringRepo) Upsert(_ context.Context, e domain.MonitoringEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := monitoringKey{e.CampaignID, e.Type}
	if prev, ok := r.s.monitoring[k]; ok && prev.Active {
		e.AddedAt = prev.AddedAt
	}
	e.Active = true
	r.s.monitoring[k] = e
	return nil
}

func (r monitoringRepo) Deactivate(_ context.Context, campaignID int64, t domain.MonitoringType, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := monitoringKey{campaignID, t}
	e, ok := r.s.monitoring[k]
	if !ok || !e.Active {
		return nil
	}
	e.Active = false
	e.UpdatedAt = at
	r.s.monitoring[k] = e
	return nil
}

func (r monitoringRepo) Get(_ context.Context, campaignID int64, t domain.MonitoringType) (*domain.MonitoringEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.monitoring[monitoringKey{campaignID, t}]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r monitoringRepo) ListActive(_ context.Context) ([]domain.MonitoringEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.MonitoringEntry
	for _, e := range r.s.monitoring {
		if e.Active {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b domain.MonitoringEntry) int {
		return cmp.Or(cmp.Compare(a.CampaignID, b.CampaignID), cmp.Compare(a.Type, b.Type))
	})
	return out, nil
}

type budgetLogRepo struct{ s *Store }

func (r budgetLogRepo) Append(_ context.Context, items []domain.BudgetContribution) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	added := 0
	for _, it := range items {
		dup := slices.ContainsFunc(r.s.budgetLog, func(c domain.BudgetContribution) bool {
			return c.CampaignID == it.CampaignID && c.URLID == it.URLID
		})
		if dup {
			continue
		}
		it.ID = r.s.id()
		r.s.budgetLog = append(r.s.budgetLog, it)
		added++
	}
	return added, nil
}

func (r budgetLogRepo) ListByCampaign(_ context.Context, campaignID int64) ([]domain.BudgetContribution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.BudgetContribution
	for _, c := range r.s.budgetLog {
		if c.CampaignID == campaignID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r budgetLogRepo) Clear(_ context.Context, campaignID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.budgetLog = slices.DeleteFunc(r.s.budgetLog, func(c domain.BudgetContribution) bool {
		return c.CampaignID == campaignID
	})
	return nil
}

type apiErrorRepo struct{ s *Store }

func (r apiErrorRepo) Create(_ context.Context, e *domain.APIErrorLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = r.s.id()
	r.s.apiErrors[e.ID] = *e
	return nil
}

func (r apiErrorRepo) FindUnresolved(_ context.Context, operation, externalID string) (*domain.APIErrorLog, error) {
	var found *domain.APIErrorLog
	for _, e := range r.s.APIErrors() {
		if !e.Resolved && e.Operation == operation && e.ExternalID == externalID {
			found = &e
		}
	}
	return found, nil
}

func (r apiErrorRepo) RecordRetry(_ context.Context, id int64, message string, statusCode *int, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.apiErrors[id]
	if !ok {
		return domain.ErrAPIErrorNotFound
	}
	e.RetryCount++
	e.ErrorMessage = message
	e.StatusCode = statusCode
	e.UpdatedAt = at
	r.s.apiErrors[id] = e
	return nil
}

func (r apiErrorRepo) Resolve(_ context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.apiErrors[id]
	if !ok {
		return domain.ErrAPIErrorNotFound
	}
	e.Resolved = true
	e.ResolvedAt = &at
	e.UpdatedAt = at
	r.s.apiErrors[id] = e
	return nil
}

func (r apiErrorRepo) List(_ context.Context, offset, limit int) ([]domain.APIErrorLog, int64, error) {
	all := r.s.APIErrors()
	slices.Reverse(all)
	total := int64(len(all))
	if offset >= len(all) {
		return []domain.APIErrorLog{}, total, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], total, nil
}

type actionRepo struct{ s *Store }

func (r actionRepo) Record(_ context.Context, entry domain.ActionLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entry.ID = r.s.id()
	r.s.actions = append(r.s.actions, entry)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
