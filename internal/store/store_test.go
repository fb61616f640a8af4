package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jackela/citegraph/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func mustDocument(t *testing.T, s *Store, title, content string) *types.Document {
	t.Helper()
	doc, err := s.CreateDocument(context.Background(), title, content)
	require.NoError(t, err)
	return doc
}

func mustCitation(t *testing.T, s *Store, c types.Citation) *types.Citation {
	t.Helper()
	require.NoError(t, s.CreateCitation(context.Background(), &c))
	return &c
}

func TestOpenReusesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(types.StoreConfig{Path: path})
	require.NoError(t, err)
	doc := mustDocument(t, s1, "Paper A", "text")
	require.NoError(t, s1.Close())

	s2, err := Open(types.StoreConfig{Path: path})
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.GetDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Paper A", got.Title)
}

func TestCreateGetDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := mustDocument(t, s, "Attention Is All You Need", "full text here")
	assert.Positive(t, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())

	got, err := s.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Content, got.Content)

	// Missing documents are (nil, nil), not an error.
	missing, err := s.GetDocument(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateDocumentEmptyTitle(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateDocument(context.Background(), "", "text")
	assert.Error(t, err)
}

func TestListDocuments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	docs, err := s.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	a := mustDocument(t, s, "First", "a")
	b := mustDocument(t, s, "Second", "b")

	docs, err = s.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, a.ID, docs[0].ID)
	assert.Equal(t, b.ID, docs[1].ID)
}

func TestDeleteDocumentCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := mustDocument(t, s, "Doomed", "text")
	cit := mustCitation(t, s, types.Citation{
		DocumentID: doc.ID,
		RawText:    "Smith, J. (2023). Test Paper.",
		Confidence: 0.5,
	})

	require.NoError(t, s.DeleteDocument(ctx, doc.ID))

	gone, err := s.GetCitation(ctx, cit.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "citations must cascade with their document")

	assert.Error(t, s.DeleteDocument(ctx, doc.ID), "second delete reports not found")
}
