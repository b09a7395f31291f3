package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SetThenGet_ReturnsValue", func(t *testing.T) {
		repo := NewCacheRepository()

		err := repo.Set(ctx, "key", []byte("value"), time.Minute)
		require.NoError(t, err)

		got, err := repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), got)
	})

	t.Run("MissingKey_ReturnsCacheMiss", func(t *testing.T) {
		repo := NewCacheRepository()

		_, err := repo.Get(ctx, "absent")

		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("ExpiredKey_ReturnsCacheMiss", func(t *testing.T) {
		repo := NewCacheRepository()

		err := repo.Set(ctx, "key", []byte("value"), time.Nanosecond)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)

		_, err = repo.Get(ctx, "key")
		assert.ErrorIs(t, err, ErrCacheMiss)

		exists, err := repo.Exists(ctx, "key")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete_RemovesKey", func(t *testing.T) {
		repo := NewCacheRepository()
		require.NoError(t, repo.Set(ctx, "key", []byte("value"), time.Minute))

		require.NoError(t, repo.Delete(ctx, "key"))

		_, err := repo.Get(ctx, "key")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Exists_ReflectsPresence", func(t *testing.T) {
		repo := NewCacheRepository()
		require.NoError(t, repo.Set(ctx, "key", []byte("value"), time.Minute))

		exists, err := repo.Exists(ctx, "key")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ZeroTTL_DefaultsToLongLived", func(t *testing.T) {
		repo := NewCacheRepository()
		require.NoError(t, repo.Set(ctx, "key", []byte("value"), 0))

		got, err := repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), got)
	})
}
