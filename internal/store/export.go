// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Jackela/citegraph/pkg/types"
)

// ExportEntry pairs a citation with its owning document's title.
type ExportEntry struct {
	types.Citation `yaml:",inline"`
	DocumentTitle  string `json:"document_title,omitempty" yaml:"document_title,omitempty"`
}

// ExportYAML writes every stored citation, grouped under its document,
// to the given path.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every stored citation to the given path as indented
// JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+prefixedCitationColumns("c")+`, d.title
		 FROM citations c
		 LEFT JOIN documents d ON d.id = c.document_id
		 ORDER BY c.document_id, c.confidence DESC, c.id`)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	defer rows.Close()

	var entries []ExportEntry
	for rows.Next() {
		var (
			entry     ExportEntry
			docTitle  *string
			citeType  string
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.DocumentID, &entry.RawText,
			&entry.Author, &entry.Title, &entry.Year, &entry.Venue, &entry.DOI,
			&citeType, &entry.Confidence, &createdAt, &docTitle); err != nil {
			return nil, fmt.Errorf("scanning export row: %w", err)
		}
		entry.Type = types.CitationType(citeType)
		entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		if docTitle != nil {
			entry.DocumentTitle = *docTitle
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
