package commands

import (
	"strings"

	"rental-booking/internal/domain/offer"
)

// SelectionFor resolves what the detail view adds to the cart. An offer with
// timing options refuses an empty timing; the price is captured now and does
// not follow later catalog changes.
func SelectionFor(o *offer.Offer, timing string, quantity int) (Selection, error) {
	timing = strings.TrimSpace(timing)

	price, err := o.UnitPrice(timing)
	if err != nil {
		return Selection{}, err
	}

	return Selection{
		OfferID:   o.ID,
		Timing:    timing,
		UnitPrice: price,
		Quantity:  quantity,
		Name:      o.Title,
		Image:     o.PrimaryImage(),
		Category:  o.Category,
		Features:  append([]string(nil), o.Features...),
	}, nil
}
