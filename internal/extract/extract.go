// Package extract finds bibliographic citations in plain document text.
// The pipeline is pure and stateless: boilerplate filtering, span
// validation, per-field pattern cascades, keyword type classification,
// completeness scoring, and a merge step for an optional structured
// extraction service.
package extract

import (
	"context"
	"sort"

	"github.com/Jackela/citegraph/pkg/types"
)

// Candidate is one structured citation candidate as produced by an
// external extraction service, before conversion to a Citation.
type Candidate struct {
	RawText    string  `json:"raw_text" yaml:"raw_text"`
	Author     string  `json:"author,omitempty" yaml:"author,omitempty"`
	Title      string  `json:"title,omitempty" yaml:"title,omitempty"`
	Year       int     `json:"year,omitempty" yaml:"year,omitempty"`
	Venue      string  `json:"venue,omitempty" yaml:"venue,omitempty"`
	DOI        string  `json:"doi,omitempty" yaml:"doi,omitempty"`
	Type       string  `json:"type,omitempty" yaml:"type,omitempty"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// ExternalExtractor is the capability an external extraction service
// exposes. Implementations may fail freely; the parser treats absence
// and failure identically, as "no primary candidates".
type ExternalExtractor interface {
	Extract(ctx context.Context, text string) ([]Candidate, error)
}

// Parser runs the extraction pipeline. The zero value parses with the
// rule-based cascade only.
type Parser struct {
	external ExternalExtractor
}

// NewParser returns a Parser. external may be nil.
func NewParser(external ExternalExtractor) *Parser {
	return &Parser{external: external}
}

// Parse extracts citations from text for the given owning document.
// When useExternal is set and a service is configured, its candidates
// become the primary source and the rule-based results only fill gaps.
// Parse never fails: malformed or empty input yields an empty list, and
// a panic inside one candidate's extraction discards that candidate only.
// Results are ordered by descending confidence.
func (p *Parser) Parse(ctx context.Context, docID int64, text string, useExternal bool) []types.Citation {
	fallback := p.parseRules(docID, text)

	var primary []types.Citation
	if useExternal && p.external != nil {
		if candidates, err := p.external.Extract(ctx, text); err == nil {
			primary = convertCandidates(candidates, docID)
		}
	}

	merged := Merge(primary, fallback)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})
	return merged
}

// parseRules runs the cascade over every accepted candidate span.
func (p *Parser) parseRules(docID int64, text string) []types.Citation {
	var citations []types.Citation
	for _, span := range CandidateSpans(text) {
		if !ValidCandidate(span) {
			continue
		}
		if c, ok := extractOne(docID, span); ok {
			citations = append(citations, c)
		}
	}
	return citations
}

// extractOne builds a Citation from a single accepted span. A panic in
// any cascade is contained here so one bad span cannot abort the parse.
func extractOne(docID int64, span string) (c types.Citation, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	c = types.Citation{
		DocumentID: docID,
		RawText:    span,
		Author:     ExtractAuthor(span),
		Title:      ExtractTitle(span),
		Year:       ExtractYear(span),
		Venue:      ExtractVenue(span),
		DOI:        ExtractDOI(span),
		Type:       ClassifyType(span),
	}
	c.Confidence = ScoreConfidence(&c)

	if err := c.Validate(); err != nil {
		return types.Citation{}, false
	}
	return c, true
}

// convertCandidates turns external candidates into citations, dropping
// any that violate the structural invariants.
func convertCandidates(candidates []Candidate, docID int64) []types.Citation {
	var citations []types.Citation
	for _, cand := range candidates {
		c := types.Citation{
			DocumentID: docID,
			RawText:    cand.RawText,
			Author:     cand.Author,
			Title:      cand.Title,
			Year:       cand.Year,
			Venue:      cand.Venue,
			DOI:        cand.DOI,
			Type:       candidateType(cand.Type),
			Confidence: cand.Confidence,
		}
		if c.Confidence == 0 {
			c.Confidence = ScoreConfidence(&c)
		}
		if err := c.Validate(); err != nil {
			continue
		}
		citations = append(citations, c)
	}
	return citations
}

func candidateType(s string) types.CitationType {
	switch t := types.CitationType(s); t {
	case types.TypeJournal, types.TypeConference, types.TypeBook, types.TypeThesis:
		return t
	}
	return types.TypeUnknown
}
