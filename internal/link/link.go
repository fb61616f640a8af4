// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package link resolves extracted citations against the registered
// document collection, creating citation relations where a citation's
// title matches a document's title.
package link

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Jackela/citegraph/pkg/types"
)

// DefaultThreshold is the minimum title similarity for a link.
const DefaultThreshold = 0.5

// Storage is the store surface the linker needs.
type Storage interface {
	ListDocuments(ctx context.Context) ([]types.Document, error)
	CitationsByDocument(ctx context.Context, docID int64) ([]types.Citation, error)
	OutgoingRelations(ctx context.Context, docID int64) ([]types.CitationRelation, error)
	CreateRelation(ctx context.Context, r *types.CitationRelation) error
}

// Summary holds counts from a linking run.
type Summary struct {
	Linked  int
	Skipped int
}

// Run matches every titled citation against the other documents' titles
// by token-set similarity and creates a "cites" relation for each match
// at or above threshold, using the similarity as the relation
// confidence. Citations already carrying a relation to the same target
// are skipped, so repeated runs are idempotent.
func Run(ctx context.Context, storage Storage, threshold float64, w io.Writer) (Summary, error) {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}

	docs, err := storage.ListDocuments(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing documents: %w", err)
	}

	var summary Summary
	for _, doc := range docs {
		citations, err := storage.CitationsByDocument(ctx, doc.ID)
		if err != nil {
			return summary, fmt.Errorf("fetching citations for doc-%d: %w", doc.ID, err)
		}
		existing, err := storage.OutgoingRelations(ctx, doc.ID)
		if err != nil {
			return summary, fmt.Errorf("fetching relations for doc-%d: %w", doc.ID, err)
		}

		linked := make(map[[2]int64]bool, len(existing))
		for _, rel := range existing {
			linked[[2]int64{rel.SourceCitationID, rel.TargetDocumentID}] = true
		}

		for _, c := range citations {
			if c.Title == "" {
				continue
			}

			target, score := bestMatch(c.Title, doc.ID, docs)
			if target == 0 || score < threshold {
				continue
			}
			if linked[[2]int64{c.ID, target}] {
				summary.Skipped++
				continue
			}

			rel := types.CitationRelation{
				SourceDocumentID: doc.ID,
				SourceCitationID: c.ID,
				TargetDocumentID: target,
				Type:             types.RelationCites,
				Confidence:       score,
			}
			if err := storage.CreateRelation(ctx, &rel); err != nil {
				return summary, fmt.Errorf("creating relation for citation %d: %w", c.ID, err)
			}
			linked[[2]int64{c.ID, target}] = true
			summary.Linked++
			fmt.Fprintf(w, "linked  doc-%d -> doc-%d (%.2f) %q\n", doc.ID, target, score, c.Title)
		}
	}

	fmt.Fprintf(w, "\nlinked: %d, skipped: %d\n", summary.Linked, summary.Skipped)
	return summary, nil
}

// bestMatch returns the document whose title is most similar to the
// citation title, excluding the owning document. A zero id means no
// candidate at all.
func bestMatch(title string, ownID int64, docs []types.Document) (int64, float64) {
	citeTokens := tokenize(title)
	if len(citeTokens) == 0 {
		return 0, 0
	}

	var (
		best      int64
		bestScore float64
	)
	for _, doc := range docs {
		if doc.ID == ownID {
			continue
		}
		score := jaccard(citeTokens, tokenize(doc.Title))
		if score > bestScore {
			best = doc.ID
			bestScore = score
		}
	}
	return best, bestScore
}

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// tokenize lowercases a title and returns its word set.
func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range tokenRe.FindAllString(strings.ToLower(s), -1) {
		tokens[tok] = true
	}
	return tokens
}

// jaccard is intersection over union of two token sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
