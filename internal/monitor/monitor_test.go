package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Health(ctx context.Context) error {
	return f.err
}

func TestProbeRecordsHealthy(t *testing.T) {
	m := New(&fakeChecker{}, "1h")

	m.probe()

	status := m.Status()
	assert.True(t, status.Healthy)
	assert.Empty(t, status.Error)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestProbeRecordsFailure(t *testing.T) {
	m := New(&fakeChecker{err: errors.New("connection refused")}, "1h")

	m.probe()

	status := m.Status()
	assert.False(t, status.Healthy)
	assert.Contains(t, status.Error, "connection refused")
}

func TestStartProbesImmediatelyAndRejectsDoubleStart(t *testing.T) {
	m := New(&fakeChecker{}, "1h")
	require.NoError(t, m.Start())
	defer m.Stop()

	assert.True(t, m.Status().Healthy, "Start must run an initial probe")
	assert.Error(t, m.Start())
}

func TestStartRejectsBadInterval(t *testing.T) {
	m := New(&fakeChecker{}, "not-a-duration")
	assert.Error(t, m.Start())
}

func TestStopIsIdempotent(t *testing.T) {
	m := New(&fakeChecker{}, "1h")
	require.NoError(t, m.Start())
	m.Stop()
	m.Stop()
}
