// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package network

import (
	"context"
	"fmt"
	"sort"

	"github.com/Jackela/citegraph/pkg/types"
)

// DefaultMinClusterSize is the smallest cluster reported when the caller
// does not choose a minimum.
const DefaultMinClusterSize = 3

// Cluster is a maximal set of documents mutually reachable through
// relations treated as undirected. InternalEdges counts relations with
// both endpoints inside the cluster, a cohesion signal.
type Cluster struct {
	DocumentIDs   []int64 `json:"document_ids" yaml:"document_ids"`
	Size          int     `json:"size" yaml:"size"`
	InternalEdges int     `json:"internal_edges" yaml:"internal_edges"`
}

// DetectClusters finds connected components over the full relation set
// and returns those of at least minSize documents (default 3 when
// minSize <= 0). Relations without a resolved target contribute no
// adjacency. Every document appears in at most one cluster.
func DetectClusters(ctx context.Context, storage Storage, minSize int) ([]Cluster, error) {
	if minSize <= 0 {
		minSize = DefaultMinClusterSize
	}

	relations, err := storage.AllRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("network: fetching relations: %w", err)
	}

	adjacency := make(map[int64][]int64)
	for _, rel := range relations {
		if !rel.Resolved() {
			continue
		}
		adjacency[rel.SourceDocumentID] = append(adjacency[rel.SourceDocumentID], rel.TargetDocumentID)
		adjacency[rel.TargetDocumentID] = append(adjacency[rel.TargetDocumentID], rel.SourceDocumentID)
	}

	// Deterministic component order regardless of map iteration.
	docIDs := make([]int64, 0, len(adjacency))
	for id := range adjacency {
		docIDs = append(docIDs, id)
	}
	sort.Slice(docIDs, func(i, j int) bool { return docIDs[i] < docIDs[j] })

	visited := make(map[int64]bool)
	var clusters []Cluster

	for _, start := range docIDs {
		if visited[start] {
			continue
		}

		members := collectComponent(start, adjacency, visited)
		if len(members) < minSize {
			continue
		}

		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		clusters = append(clusters, Cluster{
			DocumentIDs:   members,
			Size:          len(members),
			InternalEdges: countInternalEdges(members, relations),
		})
	}

	return clusters, nil
}

// collectComponent walks the undirected component containing start with
// an explicit stack, marking everything it reaches as visited.
func collectComponent(start int64, adjacency map[int64][]int64, visited map[int64]bool) []int64 {
	var members []int64
	stack := []int64{start}
	visited[start] = true

	for len(stack) > 0 {
		docID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, docID)

		for _, neighbor := range adjacency[docID] {
			if !visited[neighbor] {
				visited[neighbor] = true
				stack = append(stack, neighbor)
			}
		}
	}
	return members
}

// countInternalEdges counts relations with both endpoints inside the
// cluster.
func countInternalEdges(members []int64, relations []types.CitationRelation) int {
	inCluster := make(map[int64]bool, len(members))
	for _, id := range members {
		inCluster[id] = true
	}

	count := 0
	for _, rel := range relations {
		if rel.Resolved() && inCluster[rel.SourceDocumentID] && inCluster[rel.TargetDocumentID] {
			count++
		}
	}
	return count
}
