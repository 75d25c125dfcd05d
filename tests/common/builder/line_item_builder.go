//go:build unit || e2e

package builder

import (
	"rental-booking/internal/domain/cart"
	"rental-booking/internal/domain/offer"
	"rental-booking/internal/usecase/commands"
)

type LineItemBuilder struct {
	OfferID  int
	Name     string
	Timing   string
	Image    string
	Price    int64
	Quantity int
	Category string
	Features []string
}

func NewLineItemBuilder() *LineItemBuilder {
	return &LineItemBuilder{
		OfferID:  5,
		Name:     "Greenride",
		Timing:   "Half Day",
		Image:    "/images/greenride-car.png",
		Price:    95000,
		Quantity: 1,
		Category: offer.CategoryCar,
		Features: []string{"Electric Car"},
	}
}

func (b *LineItemBuilder) With(mutate func(*LineItemBuilder)) *LineItemBuilder {
	mutate(b)
	return b
}

func (b *LineItemBuilder) WithTiming(timing string, price int64) *LineItemBuilder {
	b.Timing = timing
	b.Price = price
	return b
}

// Flat turns the builder into a single-price offer with no timing.
func (b *LineItemBuilder) Flat(id int, name string, price int64) *LineItemBuilder {
	b.OfferID = id
	b.Name = name
	b.Timing = ""
	b.Price = price
	b.Image = "/images/" + name + ".jpg"
	b.Features = nil
	return b
}

func (b *LineItemBuilder) WithQuantity(q int) *LineItemBuilder {
	b.Quantity = q
	return b
}

func (b *LineItemBuilder) Key() cart.Key {
	return cart.Key{OfferID: b.OfferID, Timing: b.Timing}
}

// Build methods
func (b *LineItemBuilder) BuildDomain() cart.LineItem {
	return cart.LineItem{
		ID:         b.OfferID,
		Name:       b.Name,
		Timing:     b.Timing,
		Image:      b.Image,
		Price:      b.Price,
		Quantity:   b.Quantity,
		TotalPrice: b.Price * int64(b.Quantity),
		Category:   b.Category,
		Features:   append([]string(nil), b.Features...),
	}
}

func (b *LineItemBuilder) BuildSelection() commands.Selection {
	return commands.Selection{
		OfferID:   b.OfferID,
		Timing:    b.Timing,
		UnitPrice: b.Price,
		Quantity:  b.Quantity,
		Name:      b.Name,
		Image:     b.Image,
		Category:  b.Category,
		Features:  append([]string(nil), b.Features...),
	}
}

// BuildAddRequestMap is the JSON body posted by the detail view.
func (b *LineItemBuilder) BuildAddRequestMap() map[string]any {
	return map[string]any{
		"offerId":  b.OfferID,
		"timing":   b.Timing,
		"quantity": b.Quantity,
	}
}
