package metrics

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/vspace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsRecomputations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splines")
	defer teardown()

	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)
	called := 0
	cfg := splines.Config[float64]{
		Space:       vspace.Float{},
		OnRecompute: func(splines.RecomputeEvent) { called++ },
	}
	s, err := splines.New(Instrument(cfg, rec, "test"))
	require.NoError(t, err)
	s.Insert(0, 1)
	s.Insert(1, 2)
	s.Insert(2, 0)
	_, err = s.Evaluate(0.5)
	require.NoError(t, err)
	_, err = s.Evaluate(1.5) // no recomputation
	require.NoError(t, err)
	s.Insert(3, 1)
	_, err = s.Evaluate(2.5)
	require.NoError(t, err)

	assert.Equal(t, 2, called, "previous hook must still be called")
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.recomputes.WithLabelValues("test")))
	assert.Equal(t, 4.0, testutil.ToFloat64(rec.nodes.WithLabelValues("test")))
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRecorderSeparatesSplines(t *testing.T) {
	rec := NewRecorder(nil)
	rec.Observe("a", splines.RecomputeEvent{Nodes: 3})
	rec.Observe("a", splines.RecomputeEvent{Nodes: 5})
	rec.Observe("b", splines.RecomputeEvent{Nodes: 7})
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.recomputes.WithLabelValues("a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.recomputes.WithLabelValues("b")))
	assert.Equal(t, 5.0, testutil.ToFloat64(rec.nodes.WithLabelValues("a")))
}
