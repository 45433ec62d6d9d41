// Package monitor keeps a background eye on the upstream prediction service
// so the console's health endpoint can report its status without probing on
// every request.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/augurhq/augur/internal/logger"
)

const probeTimeout = 10 * time.Second

// HealthChecker probes the upstream service liveness endpoint
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Status is the result of the most recent upstream probe
type Status struct {
	Healthy   bool      `json:"healthy"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

// Monitor periodically probes the upstream service
type Monitor struct {
	checker  HealthChecker
	cron     *cron.Cron
	interval string
	running  bool
	mu       sync.RWMutex
	status   Status
}

// New creates a monitor probing at the given interval (a duration string,
// e.g. "30s")
func New(checker HealthChecker, interval string) *Monitor {
	return &Monitor{
		checker:  checker,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start runs an immediate probe and schedules periodic re-probes
func (m *Monitor) Start() error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("monitor already running")
	}
	if _, err := m.cron.AddFunc("@every "+m.interval, m.probe); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to schedule health probe: %w", err)
	}
	m.running = true
	m.mu.Unlock()

	m.probe()
	m.cron.Start()

	logger.Info("Upstream monitor started (interval %s)", m.interval)
	return nil
}

// Stop stops the periodic probes
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	m.cron.Stop()
	m.running = false

	logger.Info("Upstream monitor stopped")
}

// Status returns the result of the most recent probe
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	status := Status{CheckedAt: time.Now().UTC()}
	if err := m.checker.Health(ctx); err != nil {
		status.Error = err.Error()
		logger.Warning("Upstream health probe failed: %v", err)
	} else {
		status.Healthy = true
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}
