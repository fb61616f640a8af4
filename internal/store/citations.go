// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Jackela/citegraph/pkg/types"
)

const citationColumns = `id, document_id, raw_text, author, title, year, venue, doi, citation_type, confidence, created_at`

// CreateCitation validates and inserts a citation, filling in its id and
// creation time.
func (s *Store) CreateCitation(ctx context.Context, c *types.Citation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Type == "" {
		c.Type = types.TypeUnknown
	}
	c.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO citations (document_id, raw_text, author, title, year, venue, doi, citation_type, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.DocumentID, c.RawText, c.Author, c.Title, c.Year, c.Venue, c.DOI,
		string(c.Type), c.Confidence, c.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting citation: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading citation id: %w", err)
	}
	return nil
}

// GetCitation returns a citation by id, or (nil, nil) when it does not exist.
func (s *Store) GetCitation(ctx context.Context, id int64) (*types.Citation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+citationColumns+` FROM citations WHERE id = ?`, id)
	c, err := scanCitation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying citation %d: %w", id, err)
	}
	return c, nil
}

// UpdateCitation validates and rewrites the editable fields of an
// existing citation.
func (s *Store) UpdateCitation(ctx context.Context, c *types.Citation) error {
	if err := c.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE citations SET raw_text = ?, author = ?, title = ?, year = ?, venue = ?, doi = ?, citation_type = ?, confidence = ?
		 WHERE id = ?`,
		c.RawText, c.Author, c.Title, c.Year, c.Venue, c.DOI, string(c.Type), c.Confidence, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating citation %d: %w", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating citation %d: %w", c.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("citation %d not found", c.ID)
	}
	return nil
}

// DeleteCitation removes a citation by id.
func (s *Store) DeleteCitation(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM citations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting citation %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting citation %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("citation %d not found", id)
	}
	return nil
}

// CitationsByDocument returns all citations owned by a document, ordered
// by descending confidence.
func (s *Store) CitationsByDocument(ctx context.Context, docID int64) ([]types.Citation, error) {
	return s.queryCitations(ctx,
		`SELECT `+citationColumns+` FROM citations WHERE document_id = ? ORDER BY confidence DESC, id`,
		docID)
}

// ReplaceDocumentCitations atomically replaces a document's citations
// with a fresh extraction. Every citation is validated before the old
// rows are touched.
func (s *Store) ReplaceDocumentCitations(ctx context.Context, docID int64, citations []types.Citation) error {
	for i := range citations {
		if citations[i].DocumentID == 0 {
			citations[i].DocumentID = docID
		}
		if err := citations[i].Validate(); err != nil {
			return fmt.Errorf("citation %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM citations WHERE document_id = ?`, docID); err != nil {
		return fmt.Errorf("deleting old citations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO citations (document_id, raw_text, author, title, year, venue, doi, citation_type, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for i := range citations {
		c := &citations[i]
		citationType := c.Type
		if citationType == "" {
			citationType = types.TypeUnknown
		}
		res, err := stmt.ExecContext(ctx,
			c.DocumentID, c.RawText, c.Author, c.Title, c.Year, c.Venue, c.DOI,
			string(citationType), c.Confidence, now,
		)
		if err != nil {
			return fmt.Errorf("inserting citation %d: %w", i, err)
		}
		if c.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("reading citation id: %w", err)
		}
	}

	return tx.Commit()
}

// SearchByAuthor returns citations whose author field contains the query
// text, case-insensitively, ordered by descending confidence.
func (s *Store) SearchByAuthor(ctx context.Context, query string, limit int) ([]types.Citation, error) {
	return s.queryCitations(ctx,
		`SELECT `+citationColumns+` FROM citations
		 WHERE author != '' AND author LIKE ? COLLATE NOCASE
		 ORDER BY confidence DESC, id LIMIT ?`,
		"%"+query+"%", s.limit(limit))
}

// SearchByTitle returns citations whose title matches the full-text
// query, ranked by relevance.
func (s *Store) SearchByTitle(ctx context.Context, query string, limit int) ([]types.Citation, error) {
	return s.queryCitations(ctx,
		`SELECT `+prefixedCitationColumns("c")+`
		 FROM citations_fts
		 JOIN citations c ON c.id = citations_fts.rowid
		 WHERE citations_fts MATCH ?
		 ORDER BY citations_fts.rank LIMIT ?`,
		fmt.Sprintf(`title:%q`, query), s.limit(limit))
}

// FindByDOI returns all citations carrying the exact DOI.
func (s *Store) FindByDOI(ctx context.Context, doi string) ([]types.Citation, error) {
	return s.queryCitations(ctx,
		`SELECT `+citationColumns+` FROM citations WHERE doi = ? ORDER BY id`, doi)
}

// FindByYearRange returns citations published within [from, to] inclusive.
func (s *Store) FindByYearRange(ctx context.Context, from, to, limit int) ([]types.Citation, error) {
	if from > to {
		return nil, fmt.Errorf("year range: from %d exceeds to %d", from, to)
	}
	return s.queryCitations(ctx,
		`SELECT `+citationColumns+` FROM citations
		 WHERE year BETWEEN ? AND ? ORDER BY year, id LIMIT ?`,
		from, to, s.limit(limit))
}

// CitationStats aggregates the stored citations.
type CitationStats struct {
	Total         int            `json:"total" yaml:"total"`
	Complete      int            `json:"complete" yaml:"complete"`
	AvgConfidence float64        `json:"avg_confidence" yaml:"avg_confidence"`
	ByType        map[string]int `json:"by_type" yaml:"by_type"`
	ByYear        map[int]int    `json:"by_year" yaml:"by_year"`
}

// Stats returns aggregate statistics over all citations. Complete means
// author, title, and year were all extracted.
func (s *Store) Stats(ctx context.Context) (*CitationStats, error) {
	stats := &CitationStats{
		ByType: make(map[string]int),
		ByYear: make(map[int]int),
	}

	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*),
			count(*) FILTER (WHERE author != '' AND title != '' AND year != 0),
			avg(confidence)
		 FROM citations`,
	).Scan(&stats.Total, &stats.Complete, &avg)
	if err != nil {
		return nil, fmt.Errorf("querying citation totals: %w", err)
	}
	if avg.Valid {
		stats.AvgConfidence = avg.Float64
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT citation_type, count(*) FROM citations GROUP BY citation_type`)
	if err != nil {
		return nil, fmt.Errorf("querying type breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("scanning type breakdown: %w", err)
		}
		stats.ByType[t] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	yearRows, err := s.db.QueryContext(ctx,
		`SELECT year, count(*) FROM citations WHERE year != 0 GROUP BY year`)
	if err != nil {
		return nil, fmt.Errorf("querying year breakdown: %w", err)
	}
	defer yearRows.Close()
	for yearRows.Next() {
		var y, n int
		if err := yearRows.Scan(&y, &n); err != nil {
			return nil, fmt.Errorf("scanning year breakdown: %w", err)
		}
		stats.ByYear[y] = n
	}
	return stats, yearRows.Err()
}

// --- scanning helpers ---

func (s *Store) limit(limit int) int {
	if limit <= 0 {
		return s.maxResults
	}
	return limit
}

func prefixedCitationColumns(alias string) string {
	return alias + `.id, ` + alias + `.document_id, ` + alias + `.raw_text, ` +
		alias + `.author, ` + alias + `.title, ` + alias + `.year, ` +
		alias + `.venue, ` + alias + `.doi, ` + alias + `.citation_type, ` +
		alias + `.confidence, ` + alias + `.created_at`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCitation(row rowScanner) (*types.Citation, error) {
	var (
		c            types.Citation
		citationType string
		createdAt    string
	)
	err := row.Scan(&c.ID, &c.DocumentID, &c.RawText, &c.Author, &c.Title,
		&c.Year, &c.Venue, &c.DOI, &citationType, &c.Confidence, &createdAt)
	if err != nil {
		return nil, err
	}
	c.Type = types.CitationType(citationType)
	c.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &c, nil
}

func (s *Store) queryCitations(ctx context.Context, query string, args ...any) ([]types.Citation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying citations: %w", err)
	}
	defer rows.Close()

	var citations []types.Citation
	for rows.Next() {
		c, err := scanCitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning citation: %w", err)
		}
		citations = append(citations, *c)
	}
	return citations, rows.Err()
}
