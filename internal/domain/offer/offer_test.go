//go:build unit

package offer_test

import (
	"encoding/json"
	"testing"

	"rental-booking/internal/domain/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v int64) *offer.Amount {
	a := offer.Amount(v)
	return &a
}

func greenride() offer.Offer {
	return offer.Offer{
		ID:       5,
		Title:    "Greenride",
		Category: offer.CategoryCar,
		TimingOptions: []offer.TimingOption{
			{Label: "On time", Price: 10000},
			{Label: "Half Day", Price: 95000},
		},
	}
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name    string
		offer   offer.Offer
		timing  string
		want    int64
		wantErr error
	}{
		{name: "timing option price", offer: greenride(), timing: "Half Day", want: 95000},
		{name: "missing timing on timed offer", offer: greenride(), timing: "", wantErr: offer.ErrTimingRequired},
		{name: "unknown timing", offer: greenride(), timing: "Weekly", wantErr: offer.ErrUnknownTiming},
		{name: "flat price", offer: offer.Offer{ID: 2, Price: amount(7500)}, want: 7500},
		{name: "flat offer rejects timing", offer: offer.Offer{ID: 2, Price: amount(7500)}, timing: "Half Day", wantErr: offer.ErrUnknownTiming},
		{name: "range falls back to minimum", offer: offer.Offer{ID: 3, MinPrice: amount(70000), MaxPrice: amount(101000)}, want: 70000},
		{name: "no price at all", offer: offer.Offer{ID: 4}, wantErr: offer.ErrNoPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.offer.UnitPrice(tt.timing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceLabel(t *testing.T) {
	o := greenride()
	assert.Equal(t, "10,000 CFA - 95,000 CFA", o.PriceLabel())
	assert.Equal(t, int64(10000), o.LowestPrice())
	assert.Equal(t, int64(95000), o.HighestPrice())

	flat := offer.Offer{Price: amount(75000)}
	assert.Equal(t, "75,000 CFA", flat.PriceLabel())
}

func TestAmountUnmarshal(t *testing.T) {
	var o offer.Offer
	err := json.Unmarshal([]byte(`{"id":1,"title":"SUZUKI DZIRE","price":"75,000","min_price":70000,"max_price":"101000"}`), &o)
	require.NoError(t, err)

	require.NotNil(t, o.Price)
	assert.Equal(t, int64(75000), o.Price.Int64())
	assert.Equal(t, int64(70000), o.MinPrice.Int64())
	assert.Equal(t, int64(101000), o.MaxPrice.Int64())

	err = json.Unmarshal([]byte(`{"id":1,"price":"abc"}`), &o)
	assert.Error(t, err)

	var whole offer.Offer
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"price":75000.0}`), &whole))
	assert.Equal(t, int64(75000), whole.Price.Int64())

	for _, raw := range []string{
		`{"id":1,"price":75000.5}`,
		`{"id":1,"price":-100}`,
		`{"id":1,"price":"-7,500"}`,
		`{"id":1,"price":1e19}`,
		`{"id":1,"price":"9,000,000,000,000"}`,
	} {
		var bad offer.Offer
		err := json.Unmarshal([]byte(raw), &bad)
		assert.ErrorIs(t, err, offer.ErrInvalidAmount, raw)
	}
}

func TestHasTagAndImage(t *testing.T) {
	o := offer.Offer{Tags: []string{"SUV", "Special"}, Gallery: []string{"/images/a.jpg"}}
	assert.True(t, o.HasTag(offer.TagSpecial))
	assert.False(t, o.HasTag("sedan"))
	assert.Equal(t, "/images/a.jpg", o.PrimaryImage())
}
