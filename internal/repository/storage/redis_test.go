package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Connects to a running server", func(t *testing.T) {
		// Given: a running redis
		mr := miniredis.RunT(t)

		// When: connecting to it
		st, err := NewRedisStorage(ctx, mr.Addr())

		// Then: the connection should be usable and closable
		require.NoError(t, err)
		require.NoError(t, st.Connection.Set(ctx, "key", "value", 0).Err())
		assert.NoError(t, st.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		// Given: a redis that has been shut down
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		// When: connecting to it
		_, err := NewRedisStorage(ctx, addr)

		// Then: the ping error should be returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to Redis")
	})
}
