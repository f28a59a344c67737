package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mddlabs/mddctl/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "drafts.db")
	s, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestStorage_SaveAndGetDraft(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	draft := &storage.Draft{
		ID:        uuid.New().String(),
		Title:     "Generics in practice",
		Content:   "A long read about type parameters.",
		TopicID:   "t7",
		UpdatedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, s.SaveDraft(ctx, draft))

	got, err := s.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.Title, got.Title)
	assert.Equal(t, draft.TopicID, got.TopicID)
	assert.True(t, draft.UpdatedAt.Equal(got.UpdatedAt))
}

func TestStorage_GetDraft_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetDraft(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrDraftNotFound)
}

func TestStorage_SaveDraft_Overwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	draft := &storage.Draft{ID: "d1", Title: "first"}
	require.NoError(t, s.SaveDraft(ctx, draft))

	draft.Title = "second"
	require.NoError(t, s.SaveDraft(ctx, draft))

	got, err := s.GetDraft(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)

	drafts, err := s.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestStorage_ListDrafts_MostRecentFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	base := time.Now()
	for i, title := range []string{"oldest", "middle", "newest"} {
		draft := &storage.Draft{
			ID:        uuid.New().String(),
			Title:     title,
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.SaveDraft(ctx, draft))
	}

	drafts, err := s.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, "newest", drafts[0].Title)
	assert.Equal(t, "oldest", drafts[2].Title)
}

func TestStorage_DeleteDraft(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	draft := &storage.Draft{ID: "d1", Title: "bye"}
	require.NoError(t, s.SaveDraft(ctx, draft))
	require.NoError(t, s.DeleteDraft(ctx, "d1"))

	_, err := s.GetDraft(ctx, "d1")
	assert.ErrorIs(t, err, storage.ErrDraftNotFound)

	assert.ErrorIs(t, s.DeleteDraft(ctx, "d1"), storage.ErrDraftNotFound)
}
