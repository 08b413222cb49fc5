package graph

import (
	"errors"
	"time"

	"github.com/3plates/steadyflow/pkg/algorithms"
	"github.com/3plates/steadyflow/pkg/logging"
	"github.com/3plates/steadyflow/pkg/storage"
)

// commit runs the three-stage pipeline against a candidate built from g:
// apply the change log, detect a cycle against the *prior* (pre-batch)
// layering, then restore the layering invariant over the dirty set. On any
// failure g is returned unchanged - the candidate, and everything built
// toward it, is simply discarded, since a Graph is a plain value and g
// itself was never touched.
func (g Graph) commit(cl storage.ChangeLog) (Graph, error) {
	if cl.IsEmpty() {
		return g, nil
	}

	log := g.logger.With(logging.Component("graph"), logging.Operation("commit"))

	start := time.Now()
	candidate := g.inner
	candidate.Prior = &g.inner

	applied, dirty, err := candidate.ApplyChangeLog(cl)
	if err != nil {
		g.recordCommit("unknown_endpoint", time.Since(start))
		fields := []logging.Field{logging.Error(err), logging.Count(len(dirty))}
		var graphErr *storage.GraphError
		if errors.As(err, &graphErr) && graphErr.Entity == "edge" {
			fields = append(fields, logging.EdgeID(graphErr.ID))
		}
		log.Warn("commit rejected", fields...)
		return g, err
	}

	changed := len(cl.AddedNodes) + len(cl.AddedEdges)
	mode := algorithms.ModeFor(applied.NumNodes(), changed, g.thresholds)
	if err := algorithms.DetectCycleWithThresholds(applied, cl.AddedEdges, changed, g.thresholds); err != nil {
		g.recordCycleCheck(mode)
		g.recordCommit("cycle_rejected", time.Since(start))
		fields := []logging.Field{logging.Error(err), logging.String("mode", mode)}
		var cycleErr *storage.CycleError
		if errors.As(err, &cycleErr) && len(cycleErr.Cycle) > 0 {
			fields = append(fields, logging.NodeID(string(cycleErr.Cycle[0])))
		}
		log.Warn("commit rejected", fields...)
		return g, err
	}
	g.recordCycleCheck(mode)

	layerStart := time.Now()
	applied = algorithms.UpdateLayers(applied, dirty)
	g.recordLayerUpdate(time.Since(layerStart))

	out := Graph{inner: applied, metrics: g.metrics, logger: g.logger, thresholds: g.thresholds}
	g.recordCommit("committed", time.Since(start))
	g.recordGraphShape(out)
	log.Debug("commit applied",
		logging.Count(len(dirty)),
		logging.String("mode", mode),
		logging.Int("num_nodes", out.NumNodes()),
		logging.Int("num_edges", out.NumEdges()),
		logging.Int("num_layers", out.NumLayers()),
	)
	return out, nil
}

func (g Graph) recordCommit(status string, d time.Duration) {
	if g.metrics != nil {
		g.metrics.RecordCommit(status, d)
	}
}

func (g Graph) recordCycleCheck(mode string) {
	if g.metrics != nil {
		g.metrics.RecordCycleCheck(mode)
	}
}

func (g Graph) recordLayerUpdate(d time.Duration) {
	if g.metrics != nil {
		g.metrics.RecordLayerUpdate(d)
	}
}

func (g Graph) recordGraphShape(out Graph) {
	if g.metrics != nil {
		g.metrics.UpdateGraphShape(out.NumNodes(), out.NumEdges(), out.NumLayers())
	}
}
