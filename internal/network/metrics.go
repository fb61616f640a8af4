// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package network

import "time"

// highConfidence is the edge-confidence threshold counted separately in
// the distribution.
const highConfidence = 0.8

// ConfidenceStats summarizes edge confidences in a graph.
type ConfidenceStats struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`

	// HighCount is the number of edges with confidence >= 0.8.
	HighCount int `json:"high_count" yaml:"high_count"`
}

// TemporalSpan summarizes node creation times in a graph. Zero creation
// times (deleted or stub nodes) are excluded.
type TemporalSpan struct {
	Earliest      time.Time `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest        time.Time `json:"latest,omitempty" yaml:"latest,omitempty"`
	DistinctDates int       `json:"distinct_dates" yaml:"distinct_dates"`
}

// Metrics aggregates a built graph.
type Metrics struct {
	NodeCount  int             `json:"node_count" yaml:"node_count"`
	EdgeCount  int             `json:"edge_count" yaml:"edge_count"`
	Density    float64         `json:"density" yaml:"density"`
	Confidence ConfidenceStats `json:"confidence" yaml:"confidence"`
	Temporal   TemporalSpan    `json:"temporal" yaml:"temporal"`
}

// ComputeMetrics fills in per-node degrees in place and returns the
// graph-level aggregates. Density is directed: edges over
// nodes × (nodes−1), zero for graphs of one node or fewer.
func ComputeMetrics(g *Graph) Metrics {
	for _, node := range g.Nodes {
		node.InDegree = 0
		node.OutDegree = 0
	}
	for _, edge := range g.Edges {
		if src, ok := g.Nodes[edge.SourceDocumentID]; ok {
			src.OutDegree++
		}
		if dst, ok := g.Nodes[edge.TargetDocumentID]; ok {
			dst.InDegree++
		}
	}

	m := Metrics{
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}

	if m.NodeCount > 1 {
		m.Density = float64(m.EdgeCount) / float64(m.NodeCount*(m.NodeCount-1))
	}

	m.Confidence = confidenceStats(g.Edges)
	m.Temporal = temporalSpan(g)
	return m
}

func confidenceStats(edges []Edge) ConfidenceStats {
	if len(edges) == 0 {
		return ConfidenceStats{}
	}

	stats := ConfidenceStats{Min: edges[0].Confidence, Max: edges[0].Confidence}
	sum := 0.0
	for _, e := range edges {
		sum += e.Confidence
		if e.Confidence < stats.Min {
			stats.Min = e.Confidence
		}
		if e.Confidence > stats.Max {
			stats.Max = e.Confidence
		}
		if e.Confidence >= highConfidence {
			stats.HighCount++
		}
	}
	stats.Mean = sum / float64(len(edges))
	return stats
}

func temporalSpan(g *Graph) TemporalSpan {
	var span TemporalSpan
	dates := make(map[string]bool)

	for _, node := range g.Nodes {
		if node.CreatedAt.IsZero() {
			continue
		}
		if span.Earliest.IsZero() || node.CreatedAt.Before(span.Earliest) {
			span.Earliest = node.CreatedAt
		}
		if node.CreatedAt.After(span.Latest) {
			span.Latest = node.CreatedAt
		}
		dates[node.CreatedAt.Format("2006-01-02")] = true
	}

	span.DistinctDates = len(dates)
	return span
}
