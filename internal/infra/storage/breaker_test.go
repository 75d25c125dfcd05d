//go:build unit

package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/storage"
	storagemock "rental-booking/tests/mock/storage"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBackendDown = errors.New("connection refused")

func TestBreakerStore_TripsAfterConsecutiveFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	next := storagemock.NewMockStore(ctrl)
	next.EXPECT().SetItem(ctx, "scope", storage.KeyOrders, "[]").Return(errBackendDown).Times(3)

	s := storage.WithBreaker(next, storage.BreakerSettings{
		Name:             "test",
		FailureThreshold: 3,
		OpenTimeout:      time.Minute,
	})

	for range 3 {
		err := s.SetItem(ctx, "scope", storage.KeyOrders, "[]")
		require.ErrorIs(t, err, errBackendDown)
	}
	assert.Equal(t, gobreaker.StateOpen, s.State())

	// open breaker short-circuits without touching the backend
	err := s.SetItem(ctx, "scope", storage.KeyOrders, "[]")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}

func TestBreakerStore_QuotaErrorsDoNotTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	quotaErr := infra.WrapRepoErr("too big", nil, infra.KindQuotaExceeded)
	next := storagemock.NewMockStore(ctrl)
	next.EXPECT().SetItem(ctx, "scope", storage.KeyOrders, gomock.Any()).Return(quotaErr).Times(5)

	s := storage.WithBreaker(next, storage.BreakerSettings{FailureThreshold: 2, OpenTimeout: time.Minute})

	for range 5 {
		err := s.SetItem(ctx, "scope", storage.KeyOrders, "huge")
		assert.True(t, infra.IsKind(err, infra.KindQuotaExceeded))
	}
	assert.Equal(t, gobreaker.StateClosed, s.State())
}

func TestBreakerStore_GetItemPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	next := storagemock.NewMockStore(ctrl)
	next.EXPECT().GetItem(ctx, "scope", storage.KeyReservationCart).Return("", false, nil)
	next.EXPECT().GetItem(ctx, "scope", storage.KeyOrders).Return("[]", true, nil)

	s := storage.WithBreaker(next, storage.BreakerSettings{OpenTimeout: time.Minute})

	v, ok, err := s.GetItem(ctx, "scope", storage.KeyReservationCart)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	v, ok, err = s.GetItem(ctx, "scope", storage.KeyOrders)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}
