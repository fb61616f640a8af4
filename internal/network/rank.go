// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package network

import "sort"

// Influence weights. Citations received count four times as much as
// citations made.
const (
	inDegreeWeight  = 2.0
	outDegreeWeight = 0.5
)

// rankLimit is the number of nodes RankInfluence returns.
const rankLimit = 10

// RankedNode is one entry in an influence ranking.
type RankedNode struct {
	DocumentID int64   `json:"document_id" yaml:"document_id"`
	Title      string  `json:"title,omitempty" yaml:"title,omitempty"`
	InDegree   int     `json:"in_degree" yaml:"in_degree"`
	OutDegree  int     `json:"out_degree" yaml:"out_degree"`
	Score      float64 `json:"score" yaml:"score"`
}

// RankInfluence scores every node by weighted degree and returns the top
// ten by descending score. Ties keep ascending document id order, so the
// ranking is deterministic.
func RankInfluence(g *Graph) []RankedNode {
	ComputeMetrics(g)

	ranked := make([]RankedNode, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		ranked = append(ranked, RankedNode{
			DocumentID: node.DocumentID,
			Title:      node.Title,
			InDegree:   node.InDegree,
			OutDegree:  node.OutDegree,
			Score:      float64(node.InDegree)*inDegreeWeight + float64(node.OutDegree)*outDegreeWeight,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DocumentID < ranked[j].DocumentID
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > rankLimit {
		ranked = ranked[:rankLimit]
	}
	return ranked
}
