package commands

import (
	"context"
	"log/slog"

	"rental-booking/internal/domain/cart"
	"rental-booking/internal/domain/order"
	"rental-booking/internal/infra/storage"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
)

type Submission struct {
	CustomerInfo  order.CustomerInfo
	PaymentMethod string
}

type OrderCommands interface {
	// PlaceOrder validates the submission, appends an order built from the
	// current cart to the scope's history and then clears the cart. A
	// validation failure leaves storage untouched. When the history write
	// fails the cart is kept. An unreadable cart places nothing and returns an
	// errs.ErrStorageRead error. When only the final clear fails the stored
	// order is returned alongside an errs.ErrStorageWrite error.
	PlaceOrder(ctx context.Context, scope string, sub Submission) (*order.Order, error)
}

type orderCommandsImpl struct {
	carts  CartManager
	store  storage.Store
	ids    *order.IDGenerator
	clock  clock.Clock
	logger *slog.Logger
}

func NewOrderCommands(
	carts CartManager,
	store storage.Store,
	ids *order.IDGenerator,
	clock clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		carts:  carts,
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

func (o *orderCommandsImpl) PlaceOrder(ctx context.Context, scope string, sub Submission) (*order.Order, error) {
	if err := order.Validate(sub.CustomerInfo); err != nil {
		return nil, err
	}
	payment, err := order.ParsePaymentMethod(sub.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var placed *order.Order
	err = o.carts.ClearAfter(ctx, scope, func(snapshot *cart.Cart) error {
		created, err := order.New(sub.CustomerInfo, payment, snapshot, o.ids.Next(), o.clock.Now())
		if err != nil {
			return err
		}
		if err := o.appendHistory(ctx, scope, created); err != nil {
			return err
		}
		placed = created
		return nil
	})

	if placed == nil {
		return nil, err
	}
	if err != nil {
		o.logger.ErrorContext(ctx, "order stored but reservation cart not cleared",
			slog.String("scope", scope),
			slog.String("order_id", placed.OrderID),
			slog.String("error", err.Error()))
		return placed, err
	}

	o.logger.InfoContext(ctx, "order placed",
		slog.String("scope", scope),
		slog.String("order_id", placed.OrderID),
		slog.Int("items", len(placed.OrderItems)),
		slog.Int64("total", placed.TotalAmount))
	return placed, nil
}

func (o *orderCommandsImpl) appendHistory(ctx context.Context, scope string, created *order.Order) error {
	raw, _, err := o.store.GetItem(ctx, scope, storage.KeyOrders)
	if err != nil {
		// appending to history we could not read would drop earlier orders
		return errs.Mark(errs.Wrap(err, "read order history"), errs.ErrStorageWrite)
	}

	history := append(order.DecodeHistory(raw), *created)
	encoded, err := order.EncodeHistory(history)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "encode order history"), errs.ErrStorageWrite)
	}
	if err := o.store.SetItem(ctx, scope, storage.KeyOrders, encoded); err != nil {
		return errs.Mark(errs.Wrap(err, "write order history"), errs.ErrStorageWrite)
	}
	return nil
}
