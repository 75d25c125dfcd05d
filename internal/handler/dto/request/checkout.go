package request

import (
	"rental-booking/internal/domain/order"
	"rental-booking/internal/usecase/commands"
)

// Required fields are checked by the order domain so that every missing one
// can be reported at once.
type CustomerInfoRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Company       string `json:"company"`
	Country       string `json:"country"`
	Pickup        string `json:"pickup"`
	Arrival       string `json:"arrival"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Notes         string `json:"notes" binding:"max=2000"`
	CreateAccount bool   `json:"createAccount"`
}

type CheckoutRequest struct {
	CustomerInfo  CustomerInfoRequest `json:"customerInfo"`
	PaymentMethod string              `json:"paymentMethod"`
}

func (r CheckoutRequest) ToSubmission() commands.Submission {
	ci := r.CustomerInfo
	return commands.Submission{
		CustomerInfo: order.CustomerInfo{
			FirstName:     ci.FirstName,
			LastName:      ci.LastName,
			Company:       ci.Company,
			Country:       ci.Country,
			Pickup:        ci.Pickup,
			Arrival:       ci.Arrival,
			Phone:         ci.Phone,
			Email:         ci.Email,
			Notes:         ci.Notes,
			CreateAccount: ci.CreateAccount,
		},
		PaymentMethod: r.PaymentMethod,
	}
}
