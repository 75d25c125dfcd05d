package storage

import (
	"context"
	"fmt"

	"rental-booking/internal/infra"
)

// QuotaStore rejects values larger than limit bytes, mirroring the per-origin
// quota a browser enforces on local storage writes.
type QuotaStore struct {
	next  Store
	limit int
}

func WithQuota(next Store, limit int) *QuotaStore {
	return &QuotaStore{next: next, limit: limit}
}

func (q *QuotaStore) GetItem(ctx context.Context, scope, key string) (string, bool, error) {
	return q.next.GetItem(ctx, scope, key)
}

func (q *QuotaStore) SetItem(ctx context.Context, scope, key, value string) error {
	if q.limit > 0 && len(key)+len(value) > q.limit {
		return infra.WrapRepoErr(
			fmt.Sprintf("value for %q exceeds quota of %d bytes", key, q.limit),
			nil,
			infra.KindQuotaExceeded,
		)
	}
	return q.next.SetItem(ctx, scope, key, value)
}

func (q *QuotaStore) Ping(ctx context.Context) error {
	return q.next.Ping(ctx)
}
