package agent

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/maze"
)

// TestMetrics checks the counters after one success and one failure.
func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Algorithm = "bfs"
	cfg.Goal = maze.Position{X: 5, Y: 1}
	a, err := New(cfg, WithMetrics(m))
	require.NoError(t, err)

	require.NoError(t, a.Register(maze.MustParse("%%%%%%%\n%    %%\n%P   .%\n%%%%%%%")))
	expanded := a.Expanded()
	require.Positive(t, expanded)
	// the goal is out of bounds on this board
	require.Error(t, a.Register(maze.MustParse("%%%%%\n%%%.%\n%P%.%\n%%%%%")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.plans.WithLabelValues("bfs", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.plans.WithLabelValues("bfs", "error")))
	assert.Equal(t, float64(expanded), testutil.ToFloat64(m.expanded.WithLabelValues("bfs")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
	assert.Equal(t, 1, testutil.CollectAndCount(m.cost), "failures record no cost")

	_, err = NewMetrics(reg)
	require.Error(t, err, "duplicate registration")
}

// TestMetrics_Nil checks that a nil *Metrics is a no-op.
func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.observe(BFS, nil, 0, nil) })
}

// TestResultLabel maps outcomes onto labels.
func TestResultLabel(t *testing.T) {
	assert.Equal(t, "ok", resultLabel(nil))
	assert.Equal(t, "error", resultLabel(assert.AnError))
}
