package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "categories.yaml")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	return fs
}

func TestFileStore_SeedsDefaults(t *testing.T) {
	t.Parallel()

	fs := newTestFileStore(t)

	cats, err := fs.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, len(DefaultCategories()))
	assert.Equal(t, "Movies", cats[0].Name)
	assert.NotEmpty(t, cats[0].Cards)
}

func TestFileStore_CategoryLifecycle(t *testing.T) {
	t.Parallel()

	fs := newTestFileStore(t)
	ctx := context.Background()

	created, err := fs.CreateCategory(ctx, "Songs")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	cats, err := fs.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(DefaultCategories())+1)

	require.NoError(t, fs.DeleteCategory(ctx, created.ID))

	cats, err = fs.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(DefaultCategories()))
}

func TestFileStore_CardLifecycle(t *testing.T) {
	t.Parallel()

	fs := newTestFileStore(t)
	ctx := context.Background()

	cat, err := fs.CreateCategory(ctx, "Songs")
	require.NoError(t, err)

	card, err := fs.AddCard(ctx, cat.ID, "Bohemian Rhapsody")
	require.NoError(t, err)
	assert.Equal(t, "Bohemian Rhapsody", card.Text)

	// Changes survive a reopen
	fs2, err := NewFileStore(fs.path)
	require.NoError(t, err)
	cats, err := fs2.ListCategories(ctx)
	require.NoError(t, err)

	var found bool
	for _, c := range cats {
		if c.ID == cat.ID {
			found = true
			require.Len(t, c.Cards, 1)
		}
	}
	assert.True(t, found)

	require.NoError(t, fs.DeleteCard(ctx, cat.ID, card.ID))
	cats, err = fs.ListCategories(ctx)
	require.NoError(t, err)
	for _, c := range cats {
		if c.ID == cat.ID {
			assert.Empty(t, c.Cards)
		}
	}
}

func TestFileStore_DeleteCardMissingCategory(t *testing.T) {
	t.Parallel()

	fs := newTestFileStore(t)
	assert.Error(t, fs.DeleteCard(context.Background(), "nope", "card"))
}
