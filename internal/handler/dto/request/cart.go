package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"rental-booking/internal/domain/cart"
	"rental-booking/internal/pkg/patch"
)

// Quantity accepts a JSON number or numeric string. Anything unparsable reads
// as zero, which the cart clamps to one. Values past cart.MaxQuantity saturate.
type Quantity int

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = 0
		return nil
	}

	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			*q = 0
			return nil
		}
	} else {
		s = string(b)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	switch {
	case err != nil && !errors.Is(err, strconv.ErrRange), math.IsNaN(f), f < 1:
		*q = 0
	case f > cart.MaxQuantity:
		*q = cart.MaxQuantity
	default:
		*q = Quantity(int(f))
	}
	return nil
}

type AddItemRequest struct {
	OfferID  int       `json:"offerId" binding:"required,gt=0"`
	Timing   string    `json:"timing"`
	Quantity *Quantity `json:"quantity"`
}

func (r AddItemRequest) GetQuantity() int {
	return int(patch.Coalesce(r.Quantity, Quantity(1)))
}

type UpdateQuantityRequest struct {
	OfferID  int      `json:"offerId" binding:"required,gt=0"`
	Timing   string   `json:"timing"`
	Quantity Quantity `json:"quantity"`
}

func (r UpdateQuantityRequest) Key() cart.Key {
	return cart.Key{OfferID: r.OfferID, Timing: strings.TrimSpace(r.Timing)}
}

type RemoveItemQuery struct {
	OfferID int    `form:"offerId" binding:"required,gt=0"`
	Timing  string `form:"timing"`
}

func (r RemoveItemQuery) Key() cart.Key {
	return cart.Key{OfferID: r.OfferID, Timing: strings.TrimSpace(r.Timing)}
}
