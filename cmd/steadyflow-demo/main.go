// Command steadyflow-demo builds a small graph through the pkg/graph facade
// and prints its resulting layering, driven entirely against this module's
// in-process API rather than an HTTP server.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/3plates/steadyflow/pkg/config"
	"github.com/3plates/steadyflow/pkg/graph"
	"github.com/3plates/steadyflow/pkg/logging"
	"github.com/3plates/steadyflow/pkg/metrics"
	"github.com/3plates/steadyflow/pkg/storage"
	"github.com/google/uuid"
)

func main() {
	cfg := config.DefaultEngineConfig()
	reg := metrics.NewRegistry()
	logger := logging.NewJSONLogger(logWriter{}, logging.ParseLevel(cfg.LogLevel))

	g, err := graph.New(
		graph.WithEngineConfig(cfg),
		graph.WithMetrics(reg),
		graph.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("new graph: %v", err)
	}

	build := storage.NodeID(uuid.NewString())
	test := storage.NodeID(uuid.NewString())
	deploy := storage.NodeID(uuid.NewString())

	g, err = g.AddNodes(
		storage.Node{ID: build, Data: "build"},
		storage.Node{ID: test, Data: "test"},
		storage.Node{ID: deploy, Data: "deploy"},
	)
	if err != nil {
		log.Fatalf("add nodes: %v", err)
	}

	g, err = g.AddEdges(
		storage.Edge{ID: storage.DeriveEdgeID(build, test, "", ""), SourceID: build, TargetID: test},
		storage.Edge{ID: storage.DeriveEdgeID(test, deploy, "", ""), SourceID: test, TargetID: deploy},
	)
	if err != nil {
		log.Fatalf("add edges: %v", err)
	}

	fmt.Printf("nodes=%d edges=%d layers=%d\n", g.NumNodes(), g.NumEdges(), g.NumLayers())
	for i, layer := range g.Layers() {
		fmt.Printf("layer %d: %v\n", i, layer)
	}

	if _, err := g.AddEdge(storage.Edge{ID: storage.DeriveEdgeID(deploy, build, "", ""), SourceID: deploy, TargetID: build}); err != nil {
		fmt.Printf("rejected cyclic edge as expected: %v\n", err)
	}
}

// logWriter adapts the demo's stdout logging to logging.JSONLogger without
// pulling in os.Stdout at package scope, so tests importing this package
// (none currently do) wouldn't spam output as a side effect of import.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	fmt.Print(time.Now().Format(time.RFC3339), " ", string(p))
	return len(p), nil
}
