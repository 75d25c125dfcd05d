package response

import (
	"rental-booking/internal/domain/offer"
	"rental-booking/internal/usecase/queries"
)

type OfferResponse struct {
	offer.Offer
	PriceLabel     string `json:"priceLabel"`
	RequiresTiming bool   `json:"requiresTiming"`
}

type OfferPageResponse struct {
	Offers     []OfferResponse `json:"offers"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalPages int             `json:"totalPages"`
}

func FromOffer(o *offer.Offer) OfferResponse {
	return OfferResponse{
		Offer:          *o,
		PriceLabel:     o.PriceLabel(),
		RequiresTiming: o.RequiresTiming(),
	}
}

func FromOffers(offers []offer.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		out = append(out, FromOffer(&offers[i]))
	}
	return out
}

func FromOfferPage(p queries.Page) *OfferPageResponse {
	return &OfferPageResponse{
		Offers:     FromOffers(p.Offers),
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}
