package wishlist

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_AddListExists(t *testing.T) {
	s := setupTestRedis(t)
	ctx := context.Background()

	it, err := s.Add(ctx, 1, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), it.ID)
	assert.False(t, it.CreatedAt.IsZero())

	got, err := s.ListForSession(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ProductID)

	ok, err := s.Exists(ctx, 1, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, 1, "xyz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_DuplicatesAllowed(t *testing.T) {
	s := setupTestRedis(t)
	ctx := context.Background()

	first, err := s.Add(ctx, 1, "abc")
	require.NoError(t, err)
	second, err := s.Add(ctx, 1, "abc")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := s.ListForSession(ctx, "abc")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRedisStore_Remove(t *testing.T) {
	s := setupTestRedis(t)
	ctx := context.Background()

	it, err := s.Add(ctx, 1, "abc")
	require.NoError(t, err)

	ok, err := s.Remove(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	exists, err := s.Exists(ctx, 1, "abc")
	require.NoError(t, err)
	assert.False(t, exists)

	ok, err = s.Remove(ctx, it.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
