package network

import (
	"math"
	"testing"
	"time"
)

func triangleGraph() *Graph {
	return &Graph{
		StartID: 1,
		Nodes: map[int64]*Node{
			1: {DocumentID: 1, CreatedAt: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)},
			2: {DocumentID: 2, CreatedAt: time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)},
			3: {DocumentID: 3}, // stub node, zero creation time
		},
		Edges: []Edge{
			{RelationID: 1, SourceDocumentID: 1, TargetDocumentID: 2, Confidence: 0.9},
			{RelationID: 2, SourceDocumentID: 1, TargetDocumentID: 3, Confidence: 0.5},
			{RelationID: 3, SourceDocumentID: 2, TargetDocumentID: 3, Confidence: 0.8},
		},
	}
}

func TestComputeMetrics(t *testing.T) {
	g := triangleGraph()
	m := ComputeMetrics(g)

	if m.NodeCount != 3 || m.EdgeCount != 3 {
		t.Errorf("counts = %d nodes / %d edges", m.NodeCount, m.EdgeCount)
	}
	if math.Abs(m.Density-0.5) > 1e-9 {
		t.Errorf("Density = %.3f, want 0.5", m.Density)
	}

	if g.Nodes[1].OutDegree != 2 || g.Nodes[1].InDegree != 0 {
		t.Errorf("node 1 degrees = in %d / out %d", g.Nodes[1].InDegree, g.Nodes[1].OutDegree)
	}
	if g.Nodes[3].InDegree != 2 || g.Nodes[3].OutDegree != 0 {
		t.Errorf("node 3 degrees = in %d / out %d", g.Nodes[3].InDegree, g.Nodes[3].OutDegree)
	}
}

func TestComputeMetricsResetsDegrees(t *testing.T) {
	g := triangleGraph()
	ComputeMetrics(g)
	ComputeMetrics(g)
	if g.Nodes[1].OutDegree != 2 {
		t.Errorf("degrees accumulated across recomputes: %d", g.Nodes[1].OutDegree)
	}
}

func TestConfidenceStats(t *testing.T) {
	m := ComputeMetrics(triangleGraph())

	cs := m.Confidence
	if math.Abs(cs.Mean-(0.9+0.5+0.8)/3) > 1e-9 {
		t.Errorf("Mean = %.4f", cs.Mean)
	}
	if cs.Min != 0.5 || cs.Max != 0.9 {
		t.Errorf("Min/Max = %.2f/%.2f", cs.Min, cs.Max)
	}
	if cs.HighCount != 2 {
		t.Errorf("HighCount = %d, want 2 (0.8 counts as high)", cs.HighCount)
	}
}

func TestTemporalSpan(t *testing.T) {
	m := ComputeMetrics(triangleGraph())

	ts := m.Temporal
	if !ts.Earliest.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("Earliest = %v", ts.Earliest)
	}
	if !ts.Latest.Equal(time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("Latest = %v", ts.Latest)
	}
	if ts.DistinctDates != 2 {
		t.Errorf("DistinctDates = %d, want 2 (stub node excluded)", ts.DistinctDates)
	}
}

func TestMetricsDegenerateGraphs(t *testing.T) {
	single := &Graph{StartID: 1, Nodes: map[int64]*Node{1: {DocumentID: 1}}}
	m := ComputeMetrics(single)
	if m.Density != 0 {
		t.Errorf("single-node density = %.3f", m.Density)
	}
	if m.Confidence != (ConfidenceStats{}) {
		t.Errorf("edgeless confidence stats = %+v", m.Confidence)
	}
	if m.Temporal.DistinctDates != 0 {
		t.Errorf("DistinctDates = %d", m.Temporal.DistinctDates)
	}
}
