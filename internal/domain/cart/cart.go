package cart

import (
	"encoding/json"
	"math"
	"slices"
)

// MaxQuantity bounds a single line item. Together with MaxUnitPrice it keeps
// Price * Quantity inside int64.
const (
	MaxQuantity  = 999
	MaxUnitPrice = math.MaxInt64 / MaxQuantity
)

// Key identifies a line item. Timing is empty for flat-price offers.
type Key struct {
	OfferID int
	Timing  string
}

// LineItem is one reservable selection. Price is the unit price captured when
// the item was added or last updated; TotalPrice is always Price * Quantity.
type LineItem struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Timing     string   `json:"timing"`
	Image      string   `json:"img"`
	Price      int64    `json:"price"`
	Quantity   int      `json:"quantity"`
	TotalPrice int64    `json:"totalPrice"`
	Category   string   `json:"category"`
	Features   []string `json:"features"`
}

func (li LineItem) Key() Key {
	return Key{OfferID: li.ID, Timing: li.Timing}
}

func (li *LineItem) recompute() {
	li.TotalPrice = li.Price * int64(li.Quantity)
}

// ClampQuantity maps any quantity into [1, MaxQuantity].
func ClampQuantity(q int) int {
	return min(max(q, 1), MaxQuantity)
}

type Cart struct {
	Items []LineItem
}

func Empty() *Cart {
	return &Cart{Items: []LineItem{}}
}

func (c *Cart) TotalItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.TotalPrice
	}
	return sum
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) indexOf(key Key) int {
	return slices.IndexFunc(c.Items, func(it LineItem) bool { return it.Key() == key })
}

func (c *Cart) Find(key Key) (LineItem, bool) {
	i := c.indexOf(key)
	if i < 0 {
		return LineItem{}, false
	}
	return c.Items[i], true
}

// AddOrMerge replaces quantity and unit price of an existing item with the same
// key (last write wins, quantities are not summed) or appends a new item.
func (c *Cart) AddOrMerge(item LineItem) {
	item.Quantity = ClampQuantity(item.Quantity)
	item.recompute()

	if i := c.indexOf(item.Key()); i >= 0 {
		existing := &c.Items[i]
		existing.Price = item.Price
		existing.Quantity = item.Quantity
		existing.recompute()
		return
	}
	c.Items = append(c.Items, item)
}

// SetQuantity is a no-op when the key is absent.
func (c *Cart) SetQuantity(key Key, quantity int) {
	i := c.indexOf(key)
	if i < 0 {
		return
	}
	c.Items[i].Quantity = ClampQuantity(quantity)
	c.Items[i].recompute()
}

func (c *Cart) Remove(key Key) {
	if i := c.indexOf(key); i >= 0 {
		c.Items = slices.Delete(c.Items, i, i+1)
	}
}

func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// Normalize drops records that cannot be line items, merges duplicate keys
// (later record wins), clamps quantities and recomputes every total.
func (c *Cart) Normalize() {
	out := make([]LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ID <= 0 || it.Price < 0 || it.Price > MaxUnitPrice {
			continue
		}
		it.Quantity = ClampQuantity(it.Quantity)
		it.recompute()

		if i := slices.IndexFunc(out, func(o LineItem) bool { return o.Key() == it.Key() }); i >= 0 {
			out[i] = it
			continue
		}
		out = append(out, it)
	}
	c.Items = out
}

// Clone returns a deep copy sharing no slices with c.
func (c *Cart) Clone() *Cart {
	out := &Cart{Items: make([]LineItem, len(c.Items))}
	for i, it := range c.Items {
		it.Features = slices.Clone(it.Features)
		out.Items[i] = it
	}
	return out
}

// Decode reads the stored representation. Anything unreadable is an empty cart.
func Decode(raw string) *Cart {
	c := Empty()
	if raw == "" {
		return c
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return c
	}
	c.Items = items
	c.Normalize()
	return c
}

func Encode(c *Cart) (string, error) {
	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
