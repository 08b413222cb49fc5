package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "steadyflow_graph_nodes_total",
			Help: "Current number of nodes in the graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "steadyflow_graph_edges_total",
			Help: "Current number of edges in the graph",
		},
	)

	r.GraphLayersTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "steadyflow_graph_layers_total",
			Help: "Current number of layers in use",
		},
	)

	r.CommitsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "steadyflow_commits_total",
			Help: "Total number of batch commits by outcome",
		},
		[]string{"status"},
	)

	r.CommitDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steadyflow_commit_duration_seconds",
			Help:    "Batch commit duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"status"},
	)

	r.CycleChecksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "steadyflow_cycle_checks_total",
			Help: "Total number of cycle detector runs by mode",
		},
		[]string{"mode"},
	)

	r.CycleRejectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "steadyflow_cycle_rejections_total",
			Help: "Total number of commits rejected for introducing a cycle",
		},
	)

	r.LayerUpdateDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "steadyflow_layer_update_duration_seconds",
			Help:    "Layer updater pass duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)
}
