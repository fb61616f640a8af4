// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package network builds transient citation graphs from stored relations
// and computes analytics over them: degree metrics, influence ranking,
// and connected-component clustering. Graphs are per-query values,
// never persisted.
package network

import (
	"context"
	"fmt"
	"time"

	"github.com/Jackela/citegraph/pkg/types"
)

// Traversal depth bounds. Depth is validated, not clamped: a caller
// asking for depth 7 gets an error, not a silently smaller graph.
const (
	MinDepth = 1
	MaxDepth = 3
)

// Storage is the read surface the graph components need. A document
// deleted mid-traversal surfaces as GetDocument returning (nil, nil)
// and the neighbor is simply excluded.
type Storage interface {
	GetDocument(ctx context.Context, id int64) (*types.Document, error)
	OutgoingRelations(ctx context.Context, docID int64) ([]types.CitationRelation, error)
	IncomingRelations(ctx context.Context, docID int64) ([]types.CitationRelation, error)
	AllRelations(ctx context.Context) ([]types.CitationRelation, error)
}

// Node describes one document in a built graph. Degrees are filled in by
// ComputeMetrics.
type Node struct {
	DocumentID int64     `json:"document_id" yaml:"document_id"`
	Title      string    `json:"title,omitempty" yaml:"title,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	InDegree   int       `json:"in_degree" yaml:"in_degree"`
	OutDegree  int       `json:"out_degree" yaml:"out_degree"`
}

// Edge describes one relation between two graph nodes. Parallel edges
// between the same document pair are deliberate: distinct citations can
// link the same documents.
type Edge struct {
	RelationID       int64              `json:"relation_id" yaml:"relation_id"`
	SourceDocumentID int64              `json:"source_document_id" yaml:"source_document_id"`
	TargetDocumentID int64              `json:"target_document_id" yaml:"target_document_id"`
	Type             types.RelationType `json:"type" yaml:"type"`
	Confidence       float64            `json:"confidence" yaml:"confidence"`
}

// Graph is the transient result of one bounded traversal.
type Graph struct {
	StartID int64           `json:"start_id" yaml:"start_id"`
	Nodes   map[int64]*Node `json:"nodes" yaml:"nodes"`
	Edges   []Edge          `json:"edges" yaml:"edges"`
}

// Builder performs bounded bidirectional traversals against storage.
type Builder struct {
	storage Storage
}

// NewBuilder returns a Builder reading from storage.
func NewBuilder(storage Storage) *Builder {
	return &Builder{storage: storage}
}

// frontierItem is one pending document in the traversal work list.
type frontierItem struct {
	docID int64
	depth int
}

// Build traverses outgoing and incoming relations from the start
// document up to maxDepth and returns the resulting graph. maxDepth
// outside [MinDepth, MaxDepth] is a validation error. The start document
// is always a node, even with zero relations or when it has been deleted
// from storage. Storage errors propagate unchanged.
func (b *Builder) Build(ctx context.Context, startID int64, maxDepth int) (*Graph, error) {
	if startID <= 0 {
		return nil, fmt.Errorf("network: start document id must be positive, got %d", startID)
	}
	if maxDepth < MinDepth || maxDepth > MaxDepth {
		return nil, fmt.Errorf("network: depth %d outside valid range [%d,%d]", maxDepth, MinDepth, MaxDepth)
	}

	g := &Graph{
		StartID: startID,
		Nodes:   make(map[int64]*Node),
	}

	visited := make(map[int64]bool)
	seenEdges := make(map[int64]bool)

	if err := b.addNode(ctx, g, startID); err != nil {
		return nil, err
	}
	// The start node survives even when its document record is gone.
	if _, ok := g.Nodes[startID]; !ok {
		g.Nodes[startID] = &Node{DocumentID: startID}
	}

	frontier := []frontierItem{{docID: startID, depth: 0}}
	visited[startID] = true

	for len(frontier) > 0 {
		item := frontier[0]
		frontier = frontier[1:]

		outgoing, err := b.storage.OutgoingRelations(ctx, item.docID)
		if err != nil {
			return nil, fmt.Errorf("network: fetching outgoing relations for %d: %w", item.docID, err)
		}
		incoming, err := b.storage.IncomingRelations(ctx, item.docID)
		if err != nil {
			return nil, fmt.Errorf("network: fetching incoming relations for %d: %w", item.docID, err)
		}

		for _, rel := range append(outgoing, incoming...) {
			neighbor := rel.TargetDocumentID
			if rel.TargetDocumentID == item.docID {
				neighbor = rel.SourceDocumentID
			}
			// Unresolved targets are dead ends, not errors.
			if neighbor == 0 {
				continue
			}

			known := g.Nodes[neighbor] != nil
			if !known {
				if err := b.addNode(ctx, g, neighbor); err != nil {
					return nil, err
				}
				// Deleted neighbor: skip the relation entirely.
				if g.Nodes[neighbor] == nil {
					continue
				}
			}

			if !seenEdges[rel.ID] {
				seenEdges[rel.ID] = true
				g.Edges = append(g.Edges, Edge{
					RelationID:       rel.ID,
					SourceDocumentID: rel.SourceDocumentID,
					TargetDocumentID: rel.TargetDocumentID,
					Type:             rel.Type,
					Confidence:       rel.Confidence,
				})
			}

			if item.depth < maxDepth && !visited[neighbor] {
				visited[neighbor] = true
				frontier = append(frontier, frontierItem{docID: neighbor, depth: item.depth + 1})
			}
		}
	}

	return g, nil
}

// addNode fetches a document and adds it to the graph. A missing
// document adds nothing.
func (b *Builder) addNode(ctx context.Context, g *Graph, docID int64) error {
	doc, err := b.storage.GetDocument(ctx, docID)
	if err != nil {
		return fmt.Errorf("network: fetching document %d: %w", docID, err)
	}
	if doc == nil {
		return nil
	}
	g.Nodes[docID] = &Node{
		DocumentID: doc.ID,
		Title:      doc.Title,
		CreatedAt:  doc.CreatedAt,
	}
	return nil
}
