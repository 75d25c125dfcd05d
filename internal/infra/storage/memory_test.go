//go:build unit

package storage_test

import (
	"context"
	"testing"

	"rental-booking/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is not an error", func(t *testing.T) {
		s := storage.NewMemoryStore()

		v, ok, err := s.GetItem(ctx, "scope-a", storage.KeyReservationCart)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		s := storage.NewMemoryStore()

		require.NoError(t, s.SetItem(ctx, "scope-a", storage.KeyReservationCart, `[{"id":5}]`))

		v, ok, err := s.GetItem(ctx, "scope-a", storage.KeyReservationCart)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":5}]`, v)
	})

	t.Run("scopes are isolated", func(t *testing.T) {
		s := storage.NewMemoryStore()

		require.NoError(t, s.SetItem(ctx, "scope-a", storage.KeyOrders, "[]"))

		_, ok, err := s.GetItem(ctx, "scope-b", storage.KeyOrders)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
