package order

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rental-booking/internal/domain/cart"
	"rental-booking/internal/domain/offer"

	"github.com/jinzhu/copier"
)

type PaymentMethod string

const (
	PaymentMobile PaymentMethod = "mobile" // Orange Money / MTN Money
	PaymentCheck  PaymentMethod = "check"
	PaymentAgency PaymentMethod = "agency"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMobile, PaymentCheck, PaymentAgency:
		return true
	default:
		return false
	}
}

// ParsePaymentMethod defaults an empty selection to mobile money.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if strings.TrimSpace(s) == "" {
		return PaymentMobile, nil
	}
	p := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return p, nil
}

const DefaultCountry = "Cameroon"

type CustomerInfo struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Company       string `json:"company"`
	Country       string `json:"country"`
	Pickup        string `json:"pickup"`
	Arrival       string `json:"arrival"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Notes         string `json:"notes"`
	CreateAccount bool   `json:"createAccount"`
}

// Item is a line item frozen at submission time plus display fields.
type Item struct {
	cart.LineItem
	DisplayName  string `json:"displayName"`
	DisplayPrice string `json:"displayPrice"`
}

type Order struct {
	CustomerInfo  CustomerInfo  `json:"customerInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	OrderItems    []Item        `json:"orderItems"`
	TotalAmount   int64         `json:"totalAmount"`
	OrderDate     string        `json:"orderDate"`
	OrderID       string        `json:"orderId"`
}

// New builds an order from a cart snapshot. The items are deep-copied so the
// order never observes later cart mutations.
func New(info CustomerInfo, payment PaymentMethod, snapshot *cart.Cart, id string, now time.Time) (*Order, error) {
	if err := Validate(info); err != nil {
		return nil, err
	}
	if !payment.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if strings.TrimSpace(info.Country) == "" {
		info.Country = DefaultCountry
	}

	var lines []cart.LineItem
	if err := copier.CopyWithOption(&lines, &snapshot.Items, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("snapshot cart items: %w", err)
	}

	items := make([]Item, 0, len(lines))
	var total int64
	for _, li := range lines {
		li.TotalPrice = li.Price * int64(li.Quantity)
		total += li.TotalPrice
		items = append(items, Item{
			LineItem:     li,
			DisplayName:  DisplayName(li),
			DisplayPrice: offer.FormatPrice(li.TotalPrice),
		})
	}

	return &Order{
		CustomerInfo:  info,
		PaymentMethod: payment,
		OrderItems:    items,
		TotalAmount:   total,
		OrderDate:     now.UTC().Format(time.RFC3339),
		OrderID:       id,
	}, nil
}

// DisplayName renders "Greenride – On time × 2" or "SUZUKI VITARA × 1".
func DisplayName(li cart.LineItem) string {
	name := li.Name
	if li.Timing != "" && !strings.Contains(name, li.Timing) {
		name += " – " + li.Timing
	}
	return fmt.Sprintf("%s × %d", name, li.Quantity)
}

// DecodeHistory reads the stored order history; unreadable history is empty.
func DecodeHistory(raw string) []Order {
	if raw == "" {
		return []Order{}
	}
	var orders []Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil || orders == nil {
		return []Order{}
	}
	return orders
}

func EncodeHistory(orders []Order) (string, error) {
	if orders == nil {
		orders = []Order{}
	}
	b, err := json.Marshal(orders)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
