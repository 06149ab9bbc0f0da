package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type counter struct {
	mu    sync.Mutex
	calls map[port.SweepKind]int
}

func (c *counter) inc(kind port.SweepKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[kind]++
}

func (c *counter) get(kind port.SweepKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[kind]
}

func TestSchedulerRunsEveryJob(t *testing.T) {
	svc := mocks.NewMockControlUseCase(t)
	c := &counter{calls: map[port.SweepKind]int{}}
	svc.EXPECT().RunSweep(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, kind port.SweepKind) (port.SweepReport, error) {
			c.inc(kind)
			if kind == port.SweepReassert {
				return port.SweepReport{}, errors.New("store down")
			}
			return port.SweepReport{Sweep: kind}, nil
		})

	s := New(svc, []Job{
		{Kind: port.SweepSpend, Interval: 5 * time.Millisecond},
		{Kind: port.SweepReassert, Interval: 5 * time.Millisecond},
		{Kind: port.SweepThreshold, Interval: 0},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	stop := s.Start(context.Background())
	assert.Eventually(t, func() bool {
		return c.get(port.SweepSpend) >= 2 && c.get(port.SweepReassert) >= 2
	}, time.Second, time.Millisecond)
	stop()

	after := c.get(port.SweepSpend)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, c.get(port.SweepSpend), "no runs after stop")
	assert.Zero(t, c.get(port.SweepThreshold))
}

func TestJobsFromConfig(t *testing.T) {
	jobs := JobsFromConfig(configs.Scheduler{
		SpendInterval:     time.Minute,
		ThresholdInterval: 2 * time.Minute,
		EmptyURLInterval:  3 * time.Minute,
		ReassertInterval:  4 * time.Minute,
	})

	assert.Len(t, jobs, len(port.SweepKinds))
	for i, kind := range port.SweepKinds {
		assert.Equal(t, kind, jobs[i].Kind)
		assert.Equal(t, time.Duration(i+1)*time.Minute, jobs[i].Interval)
	}
}
