package notify

import (
	"log/slog"
	"sync"
)

// Change is the single event type: the cart of Scope now holds Count units.
type Change struct {
	Scope string
	Count int
}

type Handler func(Change)

type subscription struct {
	id      uint64
	handler Handler
}

// Channel is an in-process, per-scope pub/sub. Handlers run synchronously on
// the notifying goroutine in subscription order.
type Channel struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]subscription
	logger *slog.Logger
}

func NewChannel(logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.Default()
	}
	return &Channel{
		subs:   make(map[string][]subscription),
		logger: logger,
	}
}

// Subscribe registers h for changes on scope. The returned func removes it and
// is safe to call more than once.
func (c *Channel) Subscribe(scope string, h Handler) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs[scope] = append(c.subs[scope], subscription{id: id, handler: h})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { c.remove(scope, id) })
	}
}

func (c *Channel) remove(scope string, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.subs[scope]
	for i, s := range list {
		if s.id == id {
			// copy so an in-flight Notify keeps iterating its own snapshot
			next := make([]subscription, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(c.subs, scope)
			} else {
				c.subs[scope] = next
			}
			return
		}
	}
}

func (c *Channel) Notify(scope string, count int) {
	c.mu.RLock()
	list := c.subs[scope]
	c.mu.RUnlock()

	change := Change{Scope: scope, Count: count}
	for _, s := range list {
		c.deliver(s, change)
	}
}

func (c *Channel) deliver(s subscription, change Change) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("cart change handler panicked",
				slog.String("scope", change.Scope),
				slog.Any("panic", r))
		}
	}()
	s.handler(change)
}

func (c *Channel) SubscriberCount(scope string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs[scope])
}
