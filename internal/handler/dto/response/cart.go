package response

import (
	"rental-booking/internal/domain/cart"
	"rental-booking/internal/domain/offer"
)

type LineItemResponse struct {
	cart.LineItem
	DisplayPrice string `json:"displayPrice"`
}

type CartResponse struct {
	Items          []LineItemResponse `json:"items"`
	TotalItemCount int                `json:"totalItemCount"`
	Subtotal       int64              `json:"subtotal"`
	Total          int64              `json:"total"`
	DisplayTotal   string             `json:"displayTotal"`
	IsEmpty        bool               `json:"isEmpty"`
	Warning        string             `json:"warning,omitempty"`
}

type CountResponse struct {
	Count int `json:"count"`
}

func FromCart(c *cart.Cart) *CartResponse {
	items := make([]LineItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, LineItemResponse{
			LineItem:     it,
			DisplayPrice: offer.FormatPrice(it.TotalPrice),
		})
	}

	// no fees or discounts exist, so total equals subtotal
	subtotal := c.Subtotal()
	return &CartResponse{
		Items:          items,
		TotalItemCount: c.TotalItemCount(),
		Subtotal:       subtotal,
		Total:          subtotal,
		DisplayTotal:   offer.FormatPrice(subtotal),
		IsEmpty:        c.IsEmpty(),
	}
}
