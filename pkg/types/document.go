// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Document is a registered text source. The content arrives already
// extracted; this engine never reads PDFs or other binary formats.
type Document struct {
	// ID is the storage-assigned identifier. Always positive once persisted.
	ID int64 `json:"id" yaml:"id"`

	// Title is the document title as supplied at ingestion.
	Title string `json:"title" yaml:"title"`

	// Content is the full extracted plain text.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// CreatedAt is the ingestion time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
