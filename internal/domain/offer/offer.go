package offer

import (
	"errors"
	"strings"
)

var (
	ErrTimingRequired = errors.New("offer requires a timing selection")
	ErrUnknownTiming  = errors.New("unknown timing option")
	ErrNoPrice        = errors.New("offer has no price")
)

const (
	CategoryCar     = "Car"
	CategoryPackage = "Package"

	TagSpecial = "special"
)

type TimingOption struct {
	Label string `json:"label"`
	Price Amount `json:"price"`
}

// Offer is a read-only catalog record. Either Price (flat) or MinPrice/MaxPrice
// (range) is set; TimingOptions carries per-timing prices when present.
type Offer struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	Category      string         `json:"category"`
	Description   string         `json:"description,omitempty"`
	Image         string         `json:"img,omitempty"`
	Price         *Amount        `json:"price,omitempty"`
	MinPrice      *Amount        `json:"min_price,omitempty"`
	MaxPrice      *Amount        `json:"max_price,omitempty"`
	TimingOptions []TimingOption `json:"timingOptions,omitempty"`
	Features      []string       `json:"features,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	Gallery       []string       `json:"gallery,omitempty"`
}

func (o *Offer) RequiresTiming() bool {
	return len(o.TimingOptions) > 0
}

func (o *Offer) TimingByLabel(label string) (TimingOption, bool) {
	for _, t := range o.TimingOptions {
		if t.Label == label {
			return t, true
		}
	}
	return TimingOption{}, false
}

// UnitPrice resolves the price a selection is captured at.
func (o *Offer) UnitPrice(timing string) (int64, error) {
	if o.RequiresTiming() {
		if timing == "" {
			return 0, ErrTimingRequired
		}
		opt, ok := o.TimingByLabel(timing)
		if !ok {
			return 0, ErrUnknownTiming
		}
		return opt.Price.Int64(), nil
	}

	if timing != "" {
		return 0, ErrUnknownTiming
	}
	if o.Price != nil {
		return o.Price.Int64(), nil
	}
	if o.MinPrice != nil {
		return o.MinPrice.Int64(), nil
	}
	return 0, ErrNoPrice
}

func (o *Offer) LowestPrice() int64 {
	low, _ := o.priceBounds()
	return low
}

func (o *Offer) HighestPrice() int64 {
	_, high := o.priceBounds()
	return high
}

func (o *Offer) priceBounds() (int64, int64) {
	var prices []int64
	for _, t := range o.TimingOptions {
		prices = append(prices, t.Price.Int64())
	}
	for _, p := range []*Amount{o.Price, o.MinPrice, o.MaxPrice} {
		if p != nil {
			prices = append(prices, p.Int64())
		}
	}
	if len(prices) == 0 {
		return 0, 0
	}

	low, high := prices[0], prices[0]
	for _, p := range prices[1:] {
		low = min(low, p)
		high = max(high, p)
	}
	return low, high
}

// PriceLabel is the catalog card text, e.g. "10,000 CFA - 95,000 CFA".
func (o *Offer) PriceLabel() string {
	low, high := o.priceBounds()
	if low == high {
		return FormatPrice(low)
	}
	return FormatPrice(low) + " - " + FormatPrice(high)
}

func (o *Offer) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// PrimaryImage falls back to the first gallery entry.
func (o *Offer) PrimaryImage() string {
	if o.Image != "" {
		return o.Image
	}
	if len(o.Gallery) > 0 {
		return o.Gallery[0]
	}
	return ""
}
