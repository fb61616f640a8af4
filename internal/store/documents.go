// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Jackela/citegraph/pkg/types"
)

// CreateDocument registers a document with its extracted text and
// returns the stored record with its assigned id.
func (s *Store) CreateDocument(ctx context.Context, title, content string) (*types.Document, error) {
	if title == "" {
		return nil, fmt.Errorf("document: title must not be empty")
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (title, content, created_at) VALUES (?, ?, ?)`,
		title, content, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading document id: %w", err)
	}

	return &types.Document{ID: id, Title: title, Content: content, CreatedAt: now}, nil
}

// GetDocument returns a document by id, or (nil, nil) when it does not
// exist. Graph traversal relies on the nil result to treat deleted
// neighbors as dead ends rather than errors.
func (s *Store) GetDocument(ctx context.Context, id int64) (*types.Document, error) {
	var (
		doc       types.Document
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at FROM documents WHERE id = ?`, id,
	).Scan(&doc.ID, &doc.Title, &doc.Content, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying document %d: %w", id, err)
	}
	doc.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &doc, nil
}

// ListDocuments returns all documents in insertion order, including
// their full text.
func (s *Store) ListDocuments(ctx context.Context) ([]types.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created_at FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []types.Document
	for rows.Next() {
		var (
			doc       types.Document
			createdAt string
		)
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document and, through the cascade, its
// citations. Relations pointing at the document become orphans until
// CleanupOrphans runs.
func (s *Store) DeleteDocument(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting document %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("document %d not found", id)
	}
	return nil
}
