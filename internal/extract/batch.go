// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Jackela/citegraph/pkg/types"
)

// DocumentSource lists registered documents with their extracted text.
type DocumentSource interface {
	ListDocuments(ctx context.Context) ([]types.Document, error)
}

// CitationSink persists the citations parsed from one document,
// replacing any previous extraction for it.
type CitationSink interface {
	ReplaceDocumentCitations(ctx context.Context, docID int64, citations []types.Citation) error
}

// BatchSummary holds counts from a batch parsing run.
type BatchSummary struct {
	Parsed  int
	Skipped int
	Failed  int
}

// Total returns the number of documents processed.
func (s BatchSummary) Total() int {
	return s.Parsed + s.Skipped + s.Failed
}

// HasFailures reports whether any documents failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ParseAll parses every registered document and persists the results.
// Documents are independent, so parses run concurrently up to
// cfg.Workers (default 4). A storage failure on one document is counted
// and reported on w without aborting the rest.
func ParseAll(ctx context.Context, p *Parser, src DocumentSource, sink CitationSink, cfg types.ExtractionConfig, useExternal bool, w io.Writer) (BatchSummary, error) {
	docs, err := src.ListDocuments(ctx)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("listing documents: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	var (
		mu      sync.Mutex
		summary BatchSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, doc := range docs {
		g.Go(func() error {
			if doc.Content == "" {
				mu.Lock()
				fmt.Fprintf(w, "skipped doc-%d: no text\n", doc.ID)
				summary.Skipped++
				mu.Unlock()
				return nil
			}

			citations := p.Parse(gctx, doc.ID, doc.Content, useExternal)

			if err := sink.ReplaceDocumentCitations(gctx, doc.ID, citations); err != nil {
				mu.Lock()
				fmt.Fprintf(w, "failed  doc-%d: %v\n", doc.ID, err)
				summary.Failed++
				mu.Unlock()
				return nil
			}

			mu.Lock()
			fmt.Fprintf(w, "parsed  doc-%d (%d citations)\n", doc.ID, len(citations))
			summary.Parsed++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nparsed: %d, skipped: %d, failed: %d\n",
		summary.Parsed, summary.Skipped, summary.Failed)
	return summary, nil
}
