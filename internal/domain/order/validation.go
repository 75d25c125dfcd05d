package order

import (
	"errors"
	"strings"
)

var (
	ErrValidation           = errors.New("checkout validation failed")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// ValidationError lists the required checkout fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validate is a presence check only; formats are not inspected.
func Validate(info CustomerInfo) error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", info.FirstName},
		{"lastName", info.LastName},
		{"phone", info.Phone},
		{"email", info.Email},
		{"pickup", info.Pickup},
		{"arrival", info.Arrival},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
