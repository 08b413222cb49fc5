package graph

import (
	"testing"

	"github.com/3plates/steadyflow/pkg/metrics"
	"github.com/3plates/steadyflow/pkg/storage"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit_RecordsMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	g, err := New(WithMetrics(reg))
	require.NoError(t, err)

	g, err = g.AddNode(storage.Node{ID: "a"})
	require.NoError(t, err)

	promReg := reg.GetPrometheusRegistry()
	families, err := promReg.Gather()
	require.NoError(t, err)

	found := make(map[string]bool)
	for _, f := range families {
		found[f.GetName()] = true
	}
	assert.True(t, found["steadyflow_commits_total"])
	assert.True(t, found["steadyflow_graph_nodes_total"])
	assert.True(t, found["steadyflow_cycle_checks_total"])
	assert.Equal(t, 1, g.NumNodes())
}

func TestCommit_RecordsCycleRejectionMetric(t *testing.T) {
	reg := metrics.NewRegistry()
	g, err := New(WithMetrics(reg), WithSeedNodes(storage.Node{ID: "a"}, storage.Node{ID: "b"}), WithSeedEdges(edge("a", "b")))
	require.NoError(t, err)

	_, err = g.AddEdge(edge("b", "a"))
	require.Error(t, err)

	var metric dto.Metric
	require.NoError(t, reg.CycleRejectionsTotal.Write(&metric))
	assert.Equal(t, float64(1), metric.Counter.GetValue())
}

func TestCommit_EmptyChangeLogIsNoOp(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	g2, err := g.WithMutations(func(m *storage.Mutator) {})
	require.NoError(t, err)
	assert.Equal(t, g, g2)
}
