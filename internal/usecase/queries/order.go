package queries

import (
	"context"
	"log/slog"

	"rental-booking/internal/domain/order"
	"rental-booking/internal/infra/storage"
)

type OrderQueries interface {
	// ListOrders returns the scope's order history, oldest first. Unreadable
	// history reads as empty.
	ListOrders(ctx context.Context, scope string) []order.Order
}

type orderQueriesImpl struct {
	store  storage.Store
	logger *slog.Logger
}

func NewOrderQueries(store storage.Store, logger *slog.Logger) OrderQueries {
	return &orderQueriesImpl{store: store, logger: logger}
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, scope string) []order.Order {
	raw, _, err := q.store.GetItem(ctx, scope, storage.KeyOrders)
	if err != nil {
		q.logger.WarnContext(ctx, "order history unreadable",
			slog.String("scope", scope),
			slog.String("error", err.Error()))
		return []order.Order{}
	}
	return order.DecodeHistory(raw)
}
