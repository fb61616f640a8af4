// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Jackela/citegraph/pkg/types"
)

const relationColumns = `id, source_document_id, source_citation_id, target_document_id, target_citation_id, relation_type, confidence, created_at`

// CreateRelation validates and inserts a directed citation relation,
// filling in its id and creation time. A zero target document id is
// stored as NULL: the cited work is external or not yet resolved.
func (s *Store) CreateRelation(ctx context.Context, r *types.CitationRelation) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO relations (source_document_id, source_citation_id, target_document_id, target_citation_id, relation_type, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SourceDocumentID, r.SourceCitationID,
		nullableID(r.TargetDocumentID), nullableID(r.TargetCitationID),
		string(r.Type), r.Confidence, r.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting relation: %w", err)
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading relation id: %w", err)
	}
	return nil
}

// GetRelation returns a relation by id, or (nil, nil) when it does not exist.
func (s *Store) GetRelation(ctx context.Context, id int64) (*types.CitationRelation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+relationColumns+` FROM relations WHERE id = ?`, id)
	r, err := scanRelation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying relation %d: %w", id, err)
	}
	return r, nil
}

// UpdateRelation validates and rewrites the target, type, and confidence
// of an existing relation.
func (s *Store) UpdateRelation(ctx context.Context, r *types.CitationRelation) error {
	if err := r.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE relations SET target_document_id = ?, target_citation_id = ?, relation_type = ?, confidence = ?
		 WHERE id = ?`,
		nullableID(r.TargetDocumentID), nullableID(r.TargetCitationID),
		string(r.Type), r.Confidence, r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating relation %d: %w", r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating relation %d: %w", r.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("relation %d not found", r.ID)
	}
	return nil
}

// DeleteRelation removes a relation by id.
func (s *Store) DeleteRelation(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM relations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting relation %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting relation %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("relation %d not found", id)
	}
	return nil
}

// OutgoingRelations returns the relations a document asserts as source.
func (s *Store) OutgoingRelations(ctx context.Context, docID int64) ([]types.CitationRelation, error) {
	return s.queryRelations(ctx,
		`SELECT `+relationColumns+` FROM relations WHERE source_document_id = ? ORDER BY id`, docID)
}

// IncomingRelations returns the relations that resolve to a document as
// target.
func (s *Store) IncomingRelations(ctx context.Context, docID int64) ([]types.CitationRelation, error) {
	return s.queryRelations(ctx,
		`SELECT `+relationColumns+` FROM relations WHERE target_document_id = ? ORDER BY id`, docID)
}

// AllRelations returns every stored relation. The cluster detector works
// over this full set.
func (s *Store) AllRelations(ctx context.Context) ([]types.CitationRelation, error) {
	return s.queryRelations(ctx,
		`SELECT `+relationColumns+` FROM relations ORDER BY id`)
}

// CleanupOrphans removes relations with a dangling endpoint: a missing
// source citation or document, or a non-null target that no longer
// resolves. It returns the number of relations removed and is safe to
// run repeatedly.
func (s *Store) CleanupOrphans(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM relations WHERE
			source_document_id NOT IN (SELECT id FROM documents)
			OR source_citation_id NOT IN (SELECT id FROM citations)
			OR (target_document_id IS NOT NULL AND target_document_id NOT IN (SELECT id FROM documents))
			OR (target_citation_id IS NOT NULL AND target_citation_id NOT IN (SELECT id FROM citations))`)
	if err != nil {
		return 0, fmt.Errorf("cleaning up orphan relations: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleaning up orphan relations: %w", err)
	}
	return removed, nil
}

// --- scanning helpers ---

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func scanRelation(row rowScanner) (*types.CitationRelation, error) {
	var (
		r            types.CitationRelation
		targetDoc    sql.NullInt64
		targetCite   sql.NullInt64
		relationType string
		createdAt    string
	)
	err := row.Scan(&r.ID, &r.SourceDocumentID, &r.SourceCitationID,
		&targetDoc, &targetCite, &relationType, &r.Confidence, &createdAt)
	if err != nil {
		return nil, err
	}
	if targetDoc.Valid {
		r.TargetDocumentID = targetDoc.Int64
	}
	if targetCite.Valid {
		r.TargetCitationID = targetCite.Int64
	}
	r.Type = types.RelationType(relationType)
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &r, nil
}

func (s *Store) queryRelations(ctx context.Context, query string, args ...any) ([]types.CitationRelation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying relations: %w", err)
	}
	defer rows.Close()

	var relations []types.CitationRelation
	for rows.Next() {
		r, err := scanRelation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning relation: %w", err)
		}
		relations = append(relations, *r)
	}
	return relations, rows.Err()
}
