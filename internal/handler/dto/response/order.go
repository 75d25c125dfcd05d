package response

import (
	"rental-booking/internal/domain/offer"
	"rental-booking/internal/domain/order"
)

type OrderResponse struct {
	*order.Order
	DisplayTotal string `json:"displayTotal"`
	Warning      string `json:"warning,omitempty"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		Order:        o,
		DisplayTotal: offer.FormatPrice(o.TotalAmount),
	}
}

func FromOrders(orders []order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromOrder(&orders[i]))
	}
	return out
}
