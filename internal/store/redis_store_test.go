package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreWithClient(client)
}

func TestRedisStore_CategoryLifecycle(t *testing.T) {
	t.Parallel()

	rs := newTestRedisStore(t)
	ctx := context.Background()

	// Empty store lists nothing
	cats, err := rs.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)

	// Create
	created, err := rs.CreateCategory(ctx, "Movies")
	require.NoError(t, err)
	assert.Equal(t, "Movies", created.Name)
	assert.NotEmpty(t, created.ID)

	cats, err = rs.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, created.ID, cats[0].ID)

	// Delete
	require.NoError(t, rs.DeleteCategory(ctx, created.ID))
	cats, err = rs.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestRedisStore_CardLifecycle(t *testing.T) {
	t.Parallel()

	rs := newTestRedisStore(t)
	ctx := context.Background()

	cat, err := rs.CreateCategory(ctx, "Series")
	require.NoError(t, err)

	card, err := rs.AddCard(ctx, cat.ID, "Breaking Bad")
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", card.Text)

	_, err = rs.AddCard(ctx, cat.ID, "Dark")
	require.NoError(t, err)

	cats, err := rs.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Len(t, cats[0].Cards, 2)

	require.NoError(t, rs.DeleteCard(ctx, cat.ID, card.ID))

	cats, err = rs.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats[0].Cards, 1)
	assert.Equal(t, "Dark", cats[0].Cards[0].Text)
}

func TestRedisStore_AddCardToMissingCategory(t *testing.T) {
	t.Parallel()

	rs := newTestRedisStore(t)
	_, err := rs.AddCard(context.Background(), "nope", "text")
	assert.Error(t, err)
}
