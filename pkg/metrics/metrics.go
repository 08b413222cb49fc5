package metrics

import "time"

// RecordCommit records a batch commit's outcome and latency. status is one
// of "committed", "cycle_rejected", or "unknown_endpoint".
func (r *Registry) RecordCommit(status string, duration time.Duration) {
	r.CommitsTotal.WithLabelValues(status).Inc()
	r.CommitDuration.WithLabelValues(status).Observe(duration.Seconds())
	if status == "cycle_rejected" {
		r.CycleRejectionsTotal.Inc()
	}
}

// RecordCycleCheck records which cycle detection mode ran for a commit.
// mode is "full" or "incremental".
func (r *Registry) RecordCycleCheck(mode string) {
	r.CycleChecksTotal.WithLabelValues(mode).Inc()
}

// RecordLayerUpdate records a layer updater pass's duration.
func (r *Registry) RecordLayerUpdate(duration time.Duration) {
	r.LayerUpdateDuration.Observe(duration.Seconds())
}

// UpdateGraphShape sets the graph-shape gauges from a point-in-time
// snapshot, typically the committed graph's counts taken right after a
// commit.
func (r *Registry) UpdateGraphShape(nodes, edges, layers int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
	r.GraphLayersTotal.Set(float64(layers))
}
