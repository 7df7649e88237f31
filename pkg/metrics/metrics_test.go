package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPlan(t *testing.T) {
	m := NewManager()

	m.RecordPlan("rotation", 32, 45, 20*time.Millisecond, map[string]float64{
		"a": 20, "b": 12, "c": 32,
	})
	m.RecordPlan("fixture", 16, 10, 5*time.Millisecond, map[string]float64{"a": 8, "b": 8})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.plansTotal.WithLabelValues("rotation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.plansTotal.WithLabelValues("fixture")))
	assert.Equal(t, 48.0, testutil.ToFloat64(m.blocksSimulated))
	assert.Equal(t, float64(32*45+16*10), testutil.ToFloat64(m.lineupsEvaluated))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.validLineups))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.minutesSpread))
}

func TestRecordPlanError(t *testing.T) {
	m := NewManager()

	m.RecordPlanError("rotation")
	m.RecordPlanError("rotation")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.planErrors.WithLabelValues("rotation")))
}

func TestWithNamespace(t *testing.T) {
	m := NewManager(WithNamespace("test"))
	m.RecordPlanError("rotation")

	count, err := testutil.GatherAndCount(m.Registry(), "test_rotation_plan_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWriteTextfile(t *testing.T) {
	m := NewManager()
	m.RecordPlan("rotation", 4, 5, time.Millisecond, map[string]float64{"a": 4, "b": 1})

	path := filepath.Join(t.TempDir(), "wcr.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `wcr_rotation_plans_total{kind="rotation"} 1`)
	assert.Contains(t, string(content), "wcr_rotation_minutes_spread 3")
}

func TestSpread(t *testing.T) {
	assert.Equal(t, 0.0, spread(nil))
	assert.Equal(t, 0.0, spread(map[string]float64{"a": 5}))
	assert.Equal(t, 7.5, spread(map[string]float64{"a": 10, "b": 2.5, "c": 6}))
}
