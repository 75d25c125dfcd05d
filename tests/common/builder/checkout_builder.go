//go:build unit || e2e

package builder

import (
	"rental-booking/internal/domain/order"
	"rental-booking/internal/usecase/commands"
)

type CheckoutBuilder struct {
	Info    order.CustomerInfo
	Payment string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Info: order.CustomerInfo{
			FirstName: "Aline",
			LastName:  "Mbarga",
			Country:   order.DefaultCountry,
			Pickup:    "Douala Airport",
			Arrival:   "Bonapriso",
			Phone:     "+237 6 99 00 00 00",
			Email:     "aline@example.com",
			Notes:     "Arriving on the evening flight",
		},
		Payment: order.PaymentMobile.String(),
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildCustomerInfo() order.CustomerInfo {
	return b.Info
}

func (b *CheckoutBuilder) BuildSubmission() commands.Submission {
	return commands.Submission{
		CustomerInfo:  b.Info,
		PaymentMethod: b.Payment,
	}
}

// BuildRequestMap is the JSON body posted by the checkout form.
func (b *CheckoutBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"customerInfo": map[string]any{
			"firstName":     b.Info.FirstName,
			"lastName":      b.Info.LastName,
			"company":       b.Info.Company,
			"country":       b.Info.Country,
			"pickup":        b.Info.Pickup,
			"arrival":       b.Info.Arrival,
			"phone":         b.Info.Phone,
			"email":         b.Info.Email,
			"notes":         b.Info.Notes,
			"createAccount": b.Info.CreateAccount,
		},
		"paymentMethod": b.Payment,
	}
}
