package order

import (
	"strconv"
	"sync"

	"rental-booking/internal/pkg/clock"
)

const idPrefix = "ORD-"

// IDGenerator issues timestamp-derived order ids that are strictly increasing
// within the process, even when the clock does not advance between calls.
type IDGenerator struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

func NewIDGenerator(c clock.Clock) *IDGenerator {
	return &IDGenerator{clock: c}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.clock.Now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return idPrefix + strconv.FormatInt(n, 10)
}
