package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jackela/citegraph/pkg/types"
)

func TestCitationCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	c := types.Citation{
		DocumentID: doc.ID,
		RawText:    "Smith, J. (2023). Test Paper. Journal of Testing, 1(1), 1-10.",
		Author:     "Smith, J.",
		Title:      "Test Paper",
		Year:       2023,
		Venue:      "Journal of Testing",
		Type:       types.TypeJournal,
		Confidence: 0.85,
	}
	require.NoError(t, s.CreateCitation(ctx, &c))
	assert.Positive(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := s.GetCitation(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Smith, J.", got.Author)
	assert.Equal(t, types.TypeJournal, got.Type)
	assert.Equal(t, 0.85, got.Confidence)

	got.Title = "Revised Title"
	got.Confidence = 0.9
	require.NoError(t, s.UpdateCitation(ctx, got))

	updated, err := s.GetCitation(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Revised Title", updated.Title)
	assert.Equal(t, 0.9, updated.Confidence)

	require.NoError(t, s.DeleteCitation(ctx, c.ID))
	gone, err := s.GetCitation(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.Error(t, s.DeleteCitation(ctx, c.ID))
}

func TestCreateCitationDefaultsType(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	c := types.Citation{DocumentID: doc.ID, RawText: "untyped span", Confidence: 0.2}
	require.NoError(t, s.CreateCitation(ctx, &c))

	got, err := s.GetCitation(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.TypeUnknown, got.Type)
}

func TestCreateCitationInvalid(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	tests := []struct {
		name string
		c    types.Citation
	}{
		{"missing document", types.Citation{RawText: "x", Confidence: 0.5}},
		{"empty raw text", types.Citation{DocumentID: doc.ID, Confidence: 0.5}},
		{"confidence above one", types.Citation{DocumentID: doc.ID, RawText: "x", Confidence: 1.5}},
		{"implausible year", types.Citation{DocumentID: doc.ID, RawText: "x", Year: 1234, Confidence: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, s.CreateCitation(ctx, &tt.c))
		})
	}
}

func TestCitationsByDocumentOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")
	other := mustDocument(t, s, "Other", "text")

	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "low", Confidence: 0.3})
	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "high", Confidence: 0.9})
	mustCitation(t, s, types.Citation{DocumentID: other.ID, RawText: "elsewhere", Confidence: 0.99})

	got, err := s.CitationsByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "high", got[0].RawText)
	assert.Equal(t, "low", got[1].RawText)
}

func TestReplaceDocumentCitations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "old one", Confidence: 0.4})
	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "old two", Confidence: 0.5})

	fresh := []types.Citation{
		{RawText: "new entry", Confidence: 0.7},
	}
	require.NoError(t, s.ReplaceDocumentCitations(ctx, doc.ID, fresh))
	assert.Positive(t, fresh[0].ID, "replacement fills in ids")

	got, err := s.CitationsByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new entry", got[0].RawText)
	assert.Equal(t, doc.ID, got[0].DocumentID)
}

func TestReplaceDocumentCitationsValidatesFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "survivor", Confidence: 0.4})

	bad := []types.Citation{
		{RawText: "fine", Confidence: 0.5},
		{RawText: "", Confidence: 0.5}, // invalid
	}
	require.Error(t, s.ReplaceDocumentCitations(ctx, doc.ID, bad))

	got, err := s.CitationsByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "survivor", got[0].RawText, "failed replace must not touch existing rows")
}

func TestSearchByAuthor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "a", Author: "Smith, J.", Confidence: 0.5})
	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "b", Author: "Vaswani et al.", Confidence: 0.9})
	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "c", Confidence: 0.5})

	got, err := s.SearchByAuthor(ctx, "smith", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Smith, J.", got[0].Author)

	none, err := s.SearchByAuthor(ctx, "nobody", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchByTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	mustCitation(t, s, types.Citation{
		DocumentID: doc.ID, RawText: "a", Author: "Vaswani et al.",
		Title: "Attention Is All You Need", Confidence: 0.9,
	})
	mustCitation(t, s, types.Citation{
		DocumentID: doc.ID, RawText: "b", Author: "Attention, B.",
		Title: "Unrelated Work", Confidence: 0.5,
	})

	got, err := s.SearchByTitle(ctx, "attention", 0)
	require.NoError(t, err)
	require.Len(t, got, 1, "title search must not match author text")
	assert.Equal(t, "Attention Is All You Need", got[0].Title)
}

func TestSearchByTitleReflectsUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	c := mustCitation(t, s, types.Citation{
		DocumentID: doc.ID, RawText: "a", Title: "Original Phrase", Confidence: 0.5,
	})

	c.Title = "Replacement Wording"
	require.NoError(t, s.UpdateCitation(ctx, c))

	stale, err := s.SearchByTitle(ctx, "original", 0)
	require.NoError(t, err)
	assert.Empty(t, stale)

	fresh, err := s.SearchByTitle(ctx, "replacement", 0)
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestFindByDOI(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "a", DOI: "10.1234/abcd", Confidence: 0.5})
	mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "b", DOI: "10.9999/zzzz", Confidence: 0.5})

	got, err := s.FindByDOI(ctx, "10.1234/abcd")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].RawText)
}

func TestFindByYearRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doc := mustDocument(t, s, "Host", "text")

	for _, year := range []int{2001, 2010, 2020} {
		mustCitation(t, s, types.Citation{DocumentID: doc.ID, RawText: "y", Year: year, Confidence: 0.5})
	}

	got, err := s.FindByYearRange(ctx, 2001, 2010, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2001, got[0].Year)
	assert.Equal(t, 2010, got[1].Year)

	_, err = s.FindByYearRange(ctx, 2020, 2001, 0)
	assert.Error(t, err, "inverted range is rejected")
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.AvgConfidence)

	doc := mustDocument(t, s, "Host", "text")
	mustCitation(t, s, types.Citation{
		DocumentID: doc.ID, RawText: "a", Author: "Smith, J.", Title: "Full",
		Year: 2020, Type: types.TypeJournal, Confidence: 0.8,
	})
	mustCitation(t, s, types.Citation{
		DocumentID: doc.ID, RawText: "b", Year: 2020, Confidence: 0.4,
	})

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Complete)
	assert.InDelta(t, 0.6, stats.AvgConfidence, 1e-9)
	assert.Equal(t, 1, stats.ByType["journal"])
	assert.Equal(t, 1, stats.ByType["unknown"])
	assert.Equal(t, 2, stats.ByYear[2020])
}
