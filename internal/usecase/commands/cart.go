package commands

import (
	"context"
	"log/slog"

	"rental-booking/internal/domain/cart"
	"rental-booking/internal/infra/storage"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/notify"
)

// Selection is what the detail view hands over once the offer, timing and
// quantity are resolved. The manager stores it as given.
type Selection struct {
	OfferID   int
	Timing    string
	UnitPrice int64
	Quantity  int
	Name      string
	Image     string
	Category  string
	Features  []string
}

func (s Selection) lineItem() cart.LineItem {
	return cart.LineItem{
		ID:       s.OfferID,
		Name:     s.Name,
		Timing:   s.Timing,
		Image:    s.Image,
		Price:    s.UnitPrice,
		Quantity: s.Quantity,
		Category: s.Category,
		Features: append([]string(nil), s.Features...),
	}
}

// CartManager is the only writer of the reservationCart key. Every mutation is
// persisted before the change notification goes out; when the write fails the
// attempted cart is returned together with an error marked errs.ErrStorageWrite
// and nothing is announced. A mutation whose read fails returns a nil cart and
// an error marked errs.ErrStorageRead without writing. Only LoadCart and
// Snapshot treat an unreadable cart as empty.
type CartManager interface {
	LoadCart(ctx context.Context, scope string) *cart.Cart
	AddOrMergeItem(ctx context.Context, scope string, sel Selection) (*cart.Cart, error)
	SetQuantity(ctx context.Context, scope string, key cart.Key, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, scope string, key cart.Key) (*cart.Cart, error)
	Clear(ctx context.Context, scope string) (*cart.Cart, error)
	Snapshot(ctx context.Context, scope string) *cart.Cart
	Subscribe(scope string, h notify.Handler) (unsubscribe func())

	// ClearAfter runs fn with a snapshot while holding the scope, then clears
	// the cart if fn succeeded. Nothing else can mutate the cart in between.
	// fn is not called when the cart cannot be read.
	ClearAfter(ctx context.Context, scope string, fn func(snapshot *cart.Cart) error) error
}

type cartManagerImpl struct {
	store   storage.Store
	channel *notify.Channel
	locks   *scopeLocks
	logger  *slog.Logger
}

func NewCartManager(store storage.Store, channel *notify.Channel, logger *slog.Logger) CartManager {
	return &cartManagerImpl{
		store:   store,
		channel: channel,
		locks:   newScopeLocks(),
		logger:  logger,
	}
}

func (m *cartManagerImpl) LoadCart(ctx context.Context, scope string) *cart.Cart {
	return m.load(ctx, scope)
}

func (m *cartManagerImpl) AddOrMergeItem(ctx context.Context, scope string, sel Selection) (*cart.Cart, error) {
	return m.mutate(ctx, scope, func(c *cart.Cart) {
		c.AddOrMerge(sel.lineItem())
	})
}

func (m *cartManagerImpl) SetQuantity(ctx context.Context, scope string, key cart.Key, quantity int) (*cart.Cart, error) {
	return m.mutate(ctx, scope, func(c *cart.Cart) {
		c.SetQuantity(key, quantity)
	})
}

func (m *cartManagerImpl) RemoveItem(ctx context.Context, scope string, key cart.Key) (*cart.Cart, error) {
	return m.mutate(ctx, scope, func(c *cart.Cart) {
		c.Remove(key)
	})
}

func (m *cartManagerImpl) Clear(ctx context.Context, scope string) (*cart.Cart, error) {
	return m.mutate(ctx, scope, func(c *cart.Cart) {
		c.Clear()
	})
}

func (m *cartManagerImpl) Snapshot(ctx context.Context, scope string) *cart.Cart {
	return m.load(ctx, scope).Clone()
}

func (m *cartManagerImpl) Subscribe(scope string, h notify.Handler) func() {
	return m.channel.Subscribe(scope, h)
}

func (m *cartManagerImpl) ClearAfter(ctx context.Context, scope string, fn func(snapshot *cart.Cart) error) error {
	unlock := m.locks.lock(scope)
	defer unlock()

	current, err := m.loadStrict(ctx, scope)
	if err != nil {
		return err
	}
	if err := fn(current.Clone()); err != nil {
		return err
	}

	empty := cart.Empty()
	if err := m.persist(ctx, scope, empty); err != nil {
		return err
	}
	m.channel.Notify(scope, 0)
	return nil
}

// mutate is the read-modify-write cycle shared by every write operation.
func (m *cartManagerImpl) mutate(ctx context.Context, scope string, op func(*cart.Cart)) (*cart.Cart, error) {
	unlock := m.locks.lock(scope)
	defer unlock()

	c, err := m.loadStrict(ctx, scope)
	if err != nil {
		return nil, err
	}
	op(c)

	if err := m.persist(ctx, scope, c); err != nil {
		return c, err
	}
	m.channel.Notify(scope, c.TotalItemCount())
	return c, nil
}

func (m *cartManagerImpl) load(ctx context.Context, scope string) *cart.Cart {
	raw, ok, err := m.store.GetItem(ctx, scope, storage.KeyReservationCart)
	if err != nil {
		m.logger.WarnContext(ctx, "reservation cart unreadable, starting empty",
			slog.String("scope", scope),
			slog.String("error", err.Error()))
		return cart.Empty()
	}
	if !ok {
		return cart.Empty()
	}
	return cart.Decode(raw)
}

// loadStrict is the read half of a write. Writing over a cart we could not
// read would destroy it, so unlike load it reports the failure.
func (m *cartManagerImpl) loadStrict(ctx context.Context, scope string) (*cart.Cart, error) {
	raw, ok, err := m.store.GetItem(ctx, scope, storage.KeyReservationCart)
	if err != nil {
		m.logger.ErrorContext(ctx, "reservation cart read failed",
			slog.String("scope", scope),
			slog.String("error", err.Error()))
		return nil, errs.Mark(errs.Wrap(err, "read reservation cart"), errs.ErrStorageRead)
	}
	if !ok {
		return cart.Empty(), nil
	}
	return cart.Decode(raw), nil
}

func (m *cartManagerImpl) persist(ctx context.Context, scope string, c *cart.Cart) error {
	raw, err := cart.Encode(c)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "encode reservation cart"), errs.ErrStorageWrite)
	}
	if err := m.store.SetItem(ctx, scope, storage.KeyReservationCart, raw); err != nil {
		m.logger.ErrorContext(ctx, "reservation cart write failed",
			slog.String("scope", scope),
			slog.Int("items", len(c.Items)),
			slog.String("error", err.Error()))
		return errs.Mark(err, errs.ErrStorageWrite)
	}
	return nil
}
