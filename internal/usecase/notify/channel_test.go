//go:build unit

package notify_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"rental-booking/internal/usecase/notify"

	"github.com/stretchr/testify/assert"
)

func newChannel() *notify.Channel {
	return notify.NewChannel(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestChannel_DeliversInSubscriptionOrder(t *testing.T) {
	ch := newChannel()
	var got []string

	ch.Subscribe("s1", func(c notify.Change) { got = append(got, "first") })
	ch.Subscribe("s1", func(c notify.Change) { got = append(got, "second") })

	ch.Notify("s1", 3)

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestChannel_CarriesCount(t *testing.T) {
	ch := newChannel()
	var got notify.Change

	ch.Subscribe("s1", func(c notify.Change) { got = c })
	ch.Notify("s1", 7)

	assert.Equal(t, notify.Change{Scope: "s1", Count: 7}, got)
}

func TestChannel_ScopesAreIsolated(t *testing.T) {
	ch := newChannel()
	calls := 0

	ch.Subscribe("s1", func(notify.Change) { calls++ })
	ch.Notify("s2", 1)

	assert.Zero(t, calls)
}

func TestChannel_NotifyWithoutSubscribers(t *testing.T) {
	ch := newChannel()
	assert.NotPanics(t, func() { ch.Notify("nobody", 0) })
}

func TestChannel_Unsubscribe(t *testing.T) {
	ch := newChannel()
	calls := 0

	unsubscribe := ch.Subscribe("s1", func(notify.Change) { calls++ })
	assert.Equal(t, 1, ch.SubscriberCount("s1"))

	unsubscribe()
	unsubscribe()
	ch.Notify("s1", 1)

	assert.Zero(t, calls)
	assert.Zero(t, ch.SubscriberCount("s1"))
}

func TestChannel_UnsubscribeLeavesOthers(t *testing.T) {
	ch := newChannel()
	var got []int

	first := ch.Subscribe("s1", func(c notify.Change) { got = append(got, 1) })
	ch.Subscribe("s1", func(c notify.Change) { got = append(got, 2) })

	first()
	ch.Notify("s1", 1)

	assert.Equal(t, []int{2}, got)
}

func TestChannel_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	ch := newChannel()
	delivered := false

	ch.Subscribe("s1", func(notify.Change) { panic("boom") })
	ch.Subscribe("s1", func(notify.Change) { delivered = true })

	assert.NotPanics(t, func() { ch.Notify("s1", 2) })
	assert.True(t, delivered)
}

func TestChannel_UnsubscribeDuringNotify(t *testing.T) {
	ch := newChannel()
	calls := 0

	var unsubscribe func()
	unsubscribe = ch.Subscribe("s1", func(notify.Change) {
		calls++
		unsubscribe()
	})

	ch.Notify("s1", 1)
	ch.Notify("s1", 2)

	assert.Equal(t, 1, calls)
}

func TestChannel_ConcurrentSubscribeAndNotify(t *testing.T) {
	ch := newChannel()
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsubscribe := ch.Subscribe("s1", func(notify.Change) {})
			unsubscribe()
		}()
		go func() {
			defer wg.Done()
			ch.Notify("s1", 1)
		}()
	}
	wg.Wait()

	assert.Zero(t, ch.SubscriberCount("s1"))
}
