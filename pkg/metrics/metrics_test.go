package metrics

import (
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.GraphNodesTotal == nil {
		t.Error("GraphNodesTotal not initialized")
	}
	if r.CommitsTotal == nil {
		t.Error("CommitsTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()
	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordCommit(t *testing.T) {
	r := NewRegistry()

	r.RecordCommit("committed", 10*time.Millisecond)
	r.RecordCommit("committed", 20*time.Millisecond)
	r.RecordCommit("cycle_rejected", 5*time.Millisecond)

	committed, err := r.CommitsTotal.GetMetricWithLabelValues("committed")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := committed.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("committed counter = %v, want 2", metric.Counter.GetValue())
	}

	var rejected dto.Metric
	if err := r.CycleRejectionsTotal.Write(&rejected); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if rejected.Counter.GetValue() != 1 {
		t.Errorf("CycleRejectionsTotal = %v, want 1", rejected.Counter.GetValue())
	}
}

func TestRecordCycleCheck(t *testing.T) {
	r := NewRegistry()

	r.RecordCycleCheck("full")
	r.RecordCycleCheck("incremental")
	r.RecordCycleCheck("incremental")

	incremental, err := r.CycleChecksTotal.GetMetricWithLabelValues("incremental")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := incremental.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("incremental counter = %v, want 2", metric.Counter.GetValue())
	}
}

func TestRecordLayerUpdate(t *testing.T) {
	r := NewRegistry()

	r.RecordLayerUpdate(1 * time.Millisecond)
	r.RecordLayerUpdate(2 * time.Millisecond)

	var metric dto.Metric
	if err := r.LayerUpdateDuration.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("sample count = %v, want 2", metric.Histogram.GetSampleCount())
	}
}

func TestUpdateGraphShape(t *testing.T) {
	r := NewRegistry()

	r.UpdateGraphShape(10, 15, 4)

	var metric dto.Metric
	if err := r.GraphNodesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 10 {
		t.Errorf("GraphNodesTotal = %v, want 10", metric.Gauge.GetValue())
	}

	if err := r.GraphEdgesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 15 {
		t.Errorf("GraphEdgesTotal = %v, want 15", metric.Gauge.GetValue())
	}

	if err := r.GraphLayersTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 4 {
		t.Errorf("GraphLayersTotal = %v, want 4", metric.Gauge.GetValue())
	}
}

func TestSystemMetrics(t *testing.T) {
	r := NewRegistry()

	r.UptimeSeconds.Set(3600)
	r.GoRoutines.Set(50)
	r.MemoryAllocBytes.Set(1024 * 1024 * 100)
	r.MemorySysBytes.Set(1024 * 1024 * 200)

	var metric dto.Metric
	if err := r.UptimeSeconds.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 3600 {
		t.Errorf("UptimeSeconds = %v, want 3600", metric.Gauge.GetValue())
	}
}

func TestGetPrometheusRegistry(t *testing.T) {
	r := NewRegistry()
	promRegistry := r.GetPrometheusRegistry()
	if promRegistry == nil {
		t.Fatal("GetPrometheusRegistry() returned nil")
	}

	metrics, err := promRegistry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	if len(metrics) == 0 {
		t.Error("No metrics registered")
	}

	expectedMetrics := []string{
		"steadyflow_graph_nodes_total",
		"steadyflow_commits_total",
		"steadyflow_uptime_seconds",
	}

	metricNames := make(map[string]bool)
	for _, m := range metrics {
		metricNames[m.GetName()] = true
	}
	for _, expected := range expectedMetrics {
		if !metricNames[expected] {
			t.Errorf("Expected metric %s not found", expected)
		}
	}
}

func TestMetricNaming(t *testing.T) {
	r := NewRegistry()
	promRegistry := r.GetPrometheusRegistry()

	metrics, err := promRegistry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	for _, m := range metrics {
		name := m.GetName()
		if !strings.HasPrefix(name, "steadyflow_") {
			t.Errorf("Metric %s does not have steadyflow_ prefix", name)
		}
	}
}

func TestConcurrentCommitRecording(t *testing.T) {
	r := NewRegistry()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				r.RecordCommit("committed", 1*time.Millisecond)
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	committed, err := r.CommitsTotal.GetMetricWithLabelValues("committed")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := committed.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1000 {
		t.Errorf("Counter = %v, want 1000", metric.Counter.GetValue())
	}
}

func BenchmarkRecordCommit(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordCommit("committed", 5*time.Millisecond)
	}
}

func BenchmarkUpdateGraphShape(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.UpdateGraphShape(i, i*2, i/4)
	}
}
