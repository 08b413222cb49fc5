// Package graph is the public facade over the persistent graph engine in
// pkg/storage: the Graph type callers actually construct, query and mutate.
// It owns nothing the lower layers don't already provide - its job is to
// orchestrate a commit (apply, detect, re-layer) and report it, leaving the
// structural-sharing and algorithmic work to pkg/storage and pkg/algorithms.
package graph

import (
	"github.com/3plates/steadyflow/pkg/algorithms"
	"github.com/3plates/steadyflow/pkg/logging"
	"github.com/3plates/steadyflow/pkg/metrics"
	"github.com/3plates/steadyflow/pkg/storage"
)

// Graph is an immutable, versioned graph value. Every mutation method
// returns a new Graph (or the receiver unchanged, on error); the receiver
// itself is never modified.
type Graph struct {
	inner      storage.Graph
	metrics    *metrics.Registry
	logger     logging.Logger
	thresholds algorithms.Thresholds
}

// Option configures a Graph's ambient collaborators and seed data at
// construction time.
type Option func(*options)

type options struct {
	prior      *Graph
	nodes      []storage.Node
	edges      []storage.Edge
	metrics    *metrics.Registry
	logger     logging.Logger
	thresholds *algorithms.Thresholds
}

// WithPrior establishes structural sharing with an existing Graph: the new
// Graph's version chain points back at prior.
func WithPrior(prior Graph) Option {
	return func(o *options) { o.prior = &prior }
}

// WithSeedNodes queues nodes to be added in the first commit, immediately
// after construction.
func WithSeedNodes(nodes ...storage.Node) Option {
	return func(o *options) { o.nodes = append(o.nodes, nodes...) }
}

// WithSeedEdges queues edges to be added in the first commit, immediately
// after construction.
func WithSeedEdges(edges ...storage.Edge) Option {
	return func(o *options) { o.edges = append(o.edges, edges...) }
}

// WithMetrics attaches a Registry that every subsequent commit records to.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) { o.metrics = r }
}

// WithLogger attaches a structured logger every subsequent commit writes to.
// Defaults to logging.NewNopLogger() when omitted.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithThresholds overrides the hybrid cycle detector's full-vs-incremental
// gate, normally algorithms.DefaultThresholds(). Typically sourced from
// pkg/config.EngineConfig rather than set by hand.
func WithThresholds(th algorithms.Thresholds) Option {
	return func(o *options) { o.thresholds = &th }
}

// New returns the empty graph, or, with WithPrior, a graph starting from the
// prior version's contents; either can be seeded with initial nodes and
// initial edges. Seeding nodes/edges runs as one commit,
// so it is subject to the same atomicity and cycle-rejection rules as any
// other mutation.
func New(opts ...Option) (Graph, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	g := Graph{
		inner:      storage.NewGraph(),
		metrics:    cfg.metrics,
		logger:     cfg.logger,
		thresholds: algorithms.DefaultThresholds(),
	}
	if g.logger == nil {
		g.logger = logging.NewNopLogger()
	}
	if cfg.thresholds != nil {
		g.thresholds = *cfg.thresholds
	}
	if cfg.prior != nil {
		g.inner = cfg.prior.inner
		g.inner.Prior = &cfg.prior.inner
	}

	if len(cfg.nodes) == 0 && len(cfg.edges) == 0 {
		return g, nil
	}
	return g.WithMutations(func(m *storage.Mutator) {
		for _, n := range cfg.nodes {
			m.AddNode(n)
		}
		for _, e := range cfg.edges {
			m.AddEdge(e)
		}
	})
}

// Prior returns the graph version this one was committed from, and whether
// one exists (false for the root version).
func (g Graph) Prior() (Graph, bool) {
	if g.inner.Prior == nil {
		return Graph{}, false
	}
	return Graph{inner: *g.inner.Prior, metrics: g.metrics, logger: g.logger, thresholds: g.thresholds}, true
}

// IsEmpty reports whether the graph holds no nodes.
func (g Graph) IsEmpty() bool { return g.inner.IsEmpty() }

// NumNodes returns the number of nodes in the graph.
func (g Graph) NumNodes() int { return g.inner.NumNodes() }

// NumEdges returns the number of edges in the graph.
func (g Graph) NumEdges() int { return g.inner.NumEdges() }

// HasNode reports whether id is present.
func (g Graph) HasNode(id storage.NodeID) bool { return g.inner.HasNode(id) }

// HasEdge reports whether id is present.
func (g Graph) HasEdge(id storage.EdgeID) bool { return g.inner.HasEdge(id) }

// GetNode retrieves a node by id.
func (g Graph) GetNode(id storage.NodeID) (storage.Node, bool) { return g.inner.GetNode(id) }

// GetEdge retrieves an edge by id.
func (g Graph) GetEdge(id storage.EdgeID) (storage.Edge, bool) { return g.inner.GetEdge(id) }

// NodeIDs returns every node id, lexicographically sorted.
func (g Graph) NodeIDs() []storage.NodeID { return g.inner.NodeIDs() }

// EdgeIDs returns every edge id, lexicographically sorted.
func (g Graph) EdgeIDs() []storage.EdgeID { return g.inner.EdgeIDs() }

// Nodes returns every node value, ordered by id.
func (g Graph) Nodes() []storage.Node {
	ids := g.inner.NodeIDs()
	out := make([]storage.Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.inner.GetNode(id); ok {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every edge value, ordered by id.
func (g Graph) Edges() []storage.Edge {
	ids := g.inner.EdgeIDs()
	out := make([]storage.Edge, 0, len(ids))
	for _, id := range ids {
		if e, ok := g.inner.GetEdge(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// PredNodes returns the distinct source nodes of id's incoming edges, sorted.
func (g Graph) PredNodes(id storage.NodeID) []storage.NodeID { return g.inner.PredNodes(id) }

// SuccNodes returns the distinct target nodes of id's outgoing edges, sorted.
func (g Graph) SuccNodes(id storage.NodeID) []storage.NodeID { return g.inner.SuccNodes(id) }

// PredEdges returns the incoming edge ids of id, sorted.
func (g Graph) PredEdges(id storage.NodeID) []storage.EdgeID { return g.inner.PredEdges(id) }

// SuccEdges returns the outgoing edge ids of id, sorted.
func (g Graph) SuccEdges(id storage.NodeID) []storage.EdgeID { return g.inner.SuccEdges(id) }

// LayerOf returns the layer id a node is assigned to. False if id is absent,
// consistent with HasNode - never panics, never returns an error.
func (g Graph) LayerOf(id storage.NodeID) (storage.LayerID, bool) { return g.inner.LayerOf(id) }

// IndexOf returns the positional layer index a node is assigned to.
func (g Graph) IndexOf(id storage.NodeID) (int, bool) { return g.inner.IndexOf(id) }

// NumLayers returns the number of layers currently in use.
func (g Graph) NumLayers() int { return g.inner.NumLayers() }

// LayerNodes returns the node ids assigned to the layer at positional index,
// sorted, or nil if index is out of range.
func (g Graph) LayerNodes(index int) []storage.NodeID { return g.inner.LayerNodes(index) }

// Layers returns every layer's nodes, ordered by positional index - the
// internal-but-observable layer structure the test suite exercises directly.
func (g Graph) Layers() [][]storage.NodeID {
	out := make([][]storage.NodeID, g.inner.NumLayers())
	for i := range out {
		out[i] = g.inner.LayerNodes(i)
	}
	return out
}
