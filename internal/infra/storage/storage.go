package storage

import (
	"context"
)

// Keys owned by the reservation cart manager and order creation.
const (
	KeyReservationCart = "reservationCart"
	KeyOrders          = "orders"
)

// Store is a string-valued key/value store partitioned by scope, the server-side
// counterpart of a browser origin's local storage. A missing key is reported
// with ok == false and a nil error.
type Store interface {
	GetItem(ctx context.Context, scope, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, scope, key, value string) error
	Ping(ctx context.Context) error
}
