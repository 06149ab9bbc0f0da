package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/adapter/statuscache"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// fakePlatform is a stateful stand-in for the ad platform. Mutations change
// the state returned by GetStatus.
type fakePlatform struct {
	mu        sync.Mutex
	campaigns map[string]*domain.ExternalStatus
	spend     map[string]float64
	spendErr  map[string]error
	calls     map[string]int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		campaigns: make(map[string]*domain.ExternalStatus),
		spend:     make(map[string]float64),
		spendErr:  make(map[string]error),
		calls:     make(map[string]int),
	}
}

func (p *fakePlatform) put(ext string, active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.campaigns[ext] = &domain.ExternalStatus{ExternalID: ext, Active: active}
}

func (p *fakePlatform) setActive(ext string, active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.campaigns[ext].Active = active
}

func (p *fakePlatform) setSpend(ext string, v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spend[ext] = v
}

func (p *fakePlatform) count(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[op]
}

func (p *fakePlatform) status(ext string) domain.ExternalStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return *p.campaigns[ext]
}

func (p *fakePlatform) GetStatus(_ context.Context, ext string) (domain.ExternalStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls["get_status"]++
	st := *p.campaigns[ext]
	st.ObservedAt = time.Time{}
	return st, nil
}

func (p *fakePlatform) Pause(_ context.Context, ext string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls["pause"]++
	p.campaigns[ext].Active = false
	return nil
}

func (p *fakePlatform) Activate(_ context.Context, ext string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls["activate"]++
	p.campaigns[ext].Active = true
	return nil
}

func (p *fakePlatform) SetDailyBudget(_ context.Context, ext string, amount float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls["set_budget"]++
	p.campaigns[ext].DailyBudget = amount
	return nil
}

func (p *fakePlatform) SetScheduleEndTime(_ context.Context, ext string, end time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls["set_schedule_end"]++
	p.campaigns[ext].ScheduleEndTime = end.UTC().Format(domain.ScheduleTimeLayout)
	return nil
}

func (p *fakePlatform) GetSpend(_ context.Context, ext string, _, _ time.Time) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls["get_spend"]++
	if err := p.spendErr[ext]; err != nil {
		return 0, err
	}
	return p.spend[ext], nil
}

type testEnv struct {
	store    *memory.Store
	platform *fakePlatform
	clock    *fakeClock
	uc       *ControlUseCase
}

var testStart = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// newTestEnv builds a use case over the in-memory store, the fake platform
// and a memory status cache sharing the fake clock.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := &fakeClock{now: testStart}
	store := memory.NewStore()
	platform := newFakePlatform()

	opts := DefaultOptions()
	uc := NewControlUseCase(Deps{
		Store:    store.Ports(),
		Platform: platform,
		Cache:    statuscache.NewMemory(opts.StatusTTL, clock, nil),
		Clock:    clock,
	}, opts)
	t.Cleanup(uc.Stop)

	return &testEnv{store: store, platform: platform, clock: clock, uc: uc}
}

// addCampaign stores an enabled campaign linked to ext and registers it on
// the fake platform.
func (e *testEnv) addCampaign(id int64, ext string, active bool) {
	e.store.PutCampaign(domain.Campaign{
		ID:               id,
		Name:             "campaign",
		ExternalID:       &ext,
		Enabled:          true,
		PricePerThousand: 2,
	})
	e.platform.put(ext, active)
}

func (e *testEnv) addURL(id, campaignID, limit, clicks int64, created time.Time) {
	e.store.PutURL(domain.URLRecord{
		ID:         id,
		CampaignID: campaignID,
		Status:     domain.URLStatusActive,
		ClickLimit: limit,
		Clicks:     clicks,
		CreatedAt:  created,
	})
}

func (e *testEnv) campaign(t *testing.T, id int64) *domain.Campaign {
	t.Helper()
	c, err := e.store.GetCampaign(context.Background(), id)
	if err != nil {
		t.Fatalf("load campaign %d: %v", id, err)
	}
	return c
}

func (e *testEnv) watched(t *testing.T, id int64, kind domain.MonitoringType) bool {
	t.Helper()
	ok, err := e.uc.registry.IsWatched(context.Background(), id, kind)
	if err != nil {
		t.Fatalf("registry lookup: %v", err)
	}
	return ok
}

func (e *testEnv) sweep(t *testing.T, kind port.SweepKind) port.SweepReport {
	t.Helper()
	rep, err := e.uc.RunSweep(context.Background(), kind)
	if err != nil {
		t.Fatalf("%s sweep: %v", kind, err)
	}
	return rep
}

func ptr[T any](v T) *T {
	return &v
}
