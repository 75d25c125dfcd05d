package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rental-booking/internal/infra"

	"github.com/sony/gobreaker/v2"
)

type BreakerSettings struct {
	Name             string
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// BreakerStore trips after consecutive backend failures so a dead redis or
// postgres surfaces as KindUnavailable immediately instead of per-request timeouts.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker[string]
}

func WithBreaker(next Store, s BreakerSettings) *BreakerStore {
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// quota rejections are caller errors and must not trip the breaker
		IsSuccessful: func(err error) bool {
			return err == nil || infra.IsKind(err, infra.KindQuotaExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("storage breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &BreakerStore{next: next, cb: cb}
}

// State reports the breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerStore) GetItem(ctx context.Context, scope, key string) (string, bool, error) {
	var found bool
	v, err := b.cb.Execute(func() (string, error) {
		v, ok, err := b.next.GetItem(ctx, scope, key)
		found = ok
		return v, err
	})
	if err != nil {
		return "", false, b.classify(err)
	}
	return v, found, nil
}

func (b *BreakerStore) SetItem(ctx context.Context, scope, key, value string) error {
	_, err := b.cb.Execute(func() (string, error) {
		return "", b.next.SetItem(ctx, scope, key, value)
	})
	return b.classify(err)
}

func (b *BreakerStore) Ping(ctx context.Context) error {
	_, err := b.cb.Execute(func() (string, error) {
		return "", b.next.Ping(ctx)
	})
	return b.classify(err)
}

func (b *BreakerStore) classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return infra.WrapRepoErr("client storage unavailable", err, infra.KindUnavailable)
	}
	return err
}
