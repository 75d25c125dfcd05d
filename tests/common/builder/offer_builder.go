//go:build unit || e2e

package builder

import (
	"rental-booking/internal/domain/offer"
)

type OfferBuilder struct {
	offer offer.Offer
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{offer: offer.Offer{
		ID:          5,
		Title:       "Greenride",
		Category:    offer.CategoryCar,
		Description: "The first e-mobility solution in Cameroon.",
		Image:       "/images/greenride-car.png",
		TimingOptions: []offer.TimingOption{
			{Label: "On time", Price: 10000},
			{Label: "Half Day", Price: 95000},
		},
		Features: []string{"Electric Car"},
		Tags:     []string{"SEDAN", "special"},
	}}
}

func (b *OfferBuilder) With(mutate func(*offer.Offer)) *OfferBuilder {
	mutate(&b.offer)
	return b
}

func (b *OfferBuilder) Flat(id int, title string, price int64) *OfferBuilder {
	p := offer.Amount(price)
	b.offer = offer.Offer{
		ID:       id,
		Title:    title,
		Category: offer.CategoryCar,
		Image:    "/images/" + title + ".jpg",
		Price:    &p,
	}
	return b
}

func (b *OfferBuilder) Build() offer.Offer {
	return b.offer
}

// Catalog returns the fixture catalog used across handler and usecase tests.
func Catalog() []offer.Offer {
	minP, maxP := offer.Amount(70000), offer.Amount(101000)
	return []offer.Offer{
		NewOfferBuilder().Build(),
		NewOfferBuilder().Flat(2, "SUZUKI VITARA", 7500).With(func(o *offer.Offer) { o.Tags = []string{"SUV"} }).Build(),
		NewOfferBuilder().Flat(3, "SUZUKI DZIRE", 75000).With(func(o *offer.Offer) { o.Tags = []string{"special"} }).Build(),
		{
			ID:       4,
			Title:    "Day Package",
			Category: offer.CategoryPackage,
			MinPrice: &minP,
			MaxPrice: &maxP,
		},
	}
}
