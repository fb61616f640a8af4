// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// CitationType categorizes the venue of a cited work.
type CitationType string

const (
	TypeJournal    CitationType = "journal"
	TypeConference CitationType = "conference"
	TypeBook       CitationType = "book"
	TypeThesis     CitationType = "thesis"
	TypeUnknown    CitationType = "unknown"
)

// Plausible publication year range accepted by extraction and validation.
const (
	MinYear = 1900
	MaxYear = 2030
)

// Citation is one bibliographic reference found in a document's text.
// Author, Title, Year, Venue, and DOI are optional: the zero value means
// the field could not be extracted.
type Citation struct {
	// ID is the storage-assigned identifier. Zero until persisted.
	ID int64 `json:"id" yaml:"id"`

	// DocumentID identifies the owning document. Always positive.
	DocumentID int64 `json:"document_id" yaml:"document_id"`

	// RawText is the matched span exactly as it appeared in the source.
	// Never empty.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Author is the normalized lead author ("Surname, I." or
	// "Surname et al.").
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Title is the cited work's title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Year is the publication year, within [MinYear, MaxYear]. Zero when
	// no plausible year was found.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Venue is the journal, conference, or publisher.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// DOI is the Digital Object Identifier, without URL prefix.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Type is the venue category inferred from keywords.
	Type CitationType `json:"type" yaml:"type"`

	// Confidence estimates extraction correctness from field completeness,
	// in [0.0, 1.0].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// CreatedAt is set by storage on insert.
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Validate reports whether the citation satisfies the structural invariants.
// An out-of-range value is an error, never silently clamped.
func (c *Citation) Validate() error {
	if c.DocumentID <= 0 {
		return fmt.Errorf("citation: document id must be positive, got %d", c.DocumentID)
	}
	if c.RawText == "" {
		return fmt.Errorf("citation: raw text must not be empty")
	}
	if c.Confidence < 0.0 || c.Confidence > 1.0 {
		return fmt.Errorf("citation: confidence %.3f out of range [0,1]", c.Confidence)
	}
	if c.Year != 0 && (c.Year < MinYear || c.Year > MaxYear) {
		return fmt.Errorf("citation: year %d outside plausible range [%d,%d]", c.Year, MinYear, MaxYear)
	}
	return nil
}

// IsComplete reports whether the three core fields were all extracted.
func (c *Citation) IsComplete() bool {
	return c.Author != "" && c.Title != "" && c.Year != 0
}

// RelationType identifies the direction semantics of a citation relation.
type RelationType string

const (
	RelationCites   RelationType = "cites"
	RelationCitedBy RelationType = "cited_by"
)

// CitationRelation is a directed edge asserting that a (document, citation)
// pair cites a target document. The target side is optional: a zero
// TargetDocumentID marks an external or unresolved work.
type CitationRelation struct {
	// ID is the storage-assigned identifier. Zero until persisted.
	ID int64 `json:"id" yaml:"id"`

	// SourceDocumentID is the document the citation was found in.
	SourceDocumentID int64 `json:"source_document_id" yaml:"source_document_id"`

	// SourceCitationID is the citation asserting the relation.
	SourceCitationID int64 `json:"source_citation_id" yaml:"source_citation_id"`

	// TargetDocumentID is the cited document, or zero when unresolved.
	TargetDocumentID int64 `json:"target_document_id,omitempty" yaml:"target_document_id,omitempty"`

	// TargetCitationID is the matching citation in the target document,
	// or zero.
	TargetCitationID int64 `json:"target_citation_id,omitempty" yaml:"target_citation_id,omitempty"`

	// Type is the relation semantics, normally RelationCites.
	Type RelationType `json:"type" yaml:"type"`

	// Confidence estimates how certain the link between source and target is.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// CreatedAt is set by storage on insert.
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Validate reports whether the relation satisfies the structural invariants.
func (r *CitationRelation) Validate() error {
	if r.SourceDocumentID <= 0 {
		return fmt.Errorf("relation: source document id must be positive, got %d", r.SourceDocumentID)
	}
	if r.SourceCitationID <= 0 {
		return fmt.Errorf("relation: source citation id must be positive, got %d", r.SourceCitationID)
	}
	if r.TargetDocumentID < 0 || r.TargetCitationID < 0 {
		return fmt.Errorf("relation: target ids must not be negative")
	}
	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return fmt.Errorf("relation: confidence %.3f out of range [0,1]", r.Confidence)
	}
	if r.Type == "" {
		return fmt.Errorf("relation: type must not be empty")
	}
	return nil
}

// Resolved reports whether the relation's target references a known document.
func (r *CitationRelation) Resolved() bool {
	return r.TargetDocumentID > 0
}
