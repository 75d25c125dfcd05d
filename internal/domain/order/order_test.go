//go:build unit

package order_test

import (
	"testing"
	"time"

	"rental-booking/internal/domain/cart"
	"rental-booking/internal/domain/order"
	"rental-booking/internal/pkg/clock"
	"rental-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := builder.NewCheckoutBuilder().BuildCustomerInfo()
	require.NoError(t, order.Validate(valid))

	tests := []struct {
		name   string
		mutate func(*order.CustomerInfo)
		fields []string
	}{
		{name: "empty phone", mutate: func(c *order.CustomerInfo) { c.Phone = "" }, fields: []string{"phone"}},
		{name: "whitespace email", mutate: func(c *order.CustomerInfo) { c.Email = "   " }, fields: []string{"email"}},
		{
			name:   "locations missing",
			mutate: func(c *order.CustomerInfo) { c.Pickup, c.Arrival = "", "" },
			fields: []string{"pickup", "arrival"},
		},
		{
			name:   "everything missing",
			mutate: func(c *order.CustomerInfo) { *c = order.CustomerInfo{} },
			fields: []string{"firstName", "lastName", "phone", "email", "pickup", "arrival"},
		},
		{name: "optional fields may be empty", mutate: func(c *order.CustomerInfo) { c.Company, c.Notes = "", "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := valid
			tt.mutate(&info)

			err := order.Validate(info)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, order.ErrValidation)
			var vErr *order.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.fields, vErr.Fields)
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	info := builder.NewCheckoutBuilder().BuildCustomerInfo()

	c := cart.Empty()
	c.AddOrMerge(builder.NewLineItemBuilder().WithTiming("On time", 10000).WithQuantity(2).BuildDomain())
	c.AddOrMerge(builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
		b.OfferID, b.Name, b.Timing, b.Price = 2, "SUZUKI VITARA", "", 7500
	}).BuildDomain())

	t.Run("snapshot with totals and display fields", func(t *testing.T) {
		o, err := order.New(info, order.PaymentAgency, c, "ORD-1", now)
		require.NoError(t, err)

		assert.Equal(t, "ORD-1", o.OrderID)
		assert.Equal(t, "2025-03-01T10:00:00Z", o.OrderDate)
		assert.Equal(t, order.PaymentAgency, o.PaymentMethod)
		assert.Equal(t, int64(27500), o.TotalAmount)
		require.Len(t, o.OrderItems, 2)
		assert.Equal(t, "Greenride – On time × 2", o.OrderItems[0].DisplayName)
		assert.Equal(t, "20,000 CFA", o.OrderItems[0].DisplayPrice)
		assert.Equal(t, "SUZUKI VITARA × 1", o.OrderItems[1].DisplayName)
	})

	t.Run("isolated from later cart changes", func(t *testing.T) {
		o, err := order.New(info, order.PaymentMobile, c, "ORD-2", now)
		require.NoError(t, err)

		c.Items[0].Features[0] = "changed"
		c.Clear()

		require.Len(t, o.OrderItems, 2)
		assert.Equal(t, "Electric Car", o.OrderItems[0].Features[0])
	})

	t.Run("country defaults to Cameroon", func(t *testing.T) {
		noCountry := info
		noCountry.Country = ""
		o, err := order.New(noCountry, order.PaymentMobile, cart.Empty(), "ORD-3", now)
		require.NoError(t, err)
		assert.Equal(t, order.DefaultCountry, o.CustomerInfo.Country)
		assert.Empty(t, o.OrderItems)
		assert.Equal(t, int64(0), o.TotalAmount)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		bad := info
		bad.Phone = ""
		_, err := order.New(bad, order.PaymentMobile, c, "ORD-4", now)
		assert.ErrorIs(t, err, order.ErrValidation)

		_, err = order.New(info, order.PaymentMethod("card"), c, "ORD-4", now)
		assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	p, err := order.ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentMobile, p)

	p, err = order.ParsePaymentMethod(" Check ")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentCheck, p)

	_, err = order.ParsePaymentMethod("paypal")
	assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
}

func TestIDGenerator(t *testing.T) {
	mc := clock.NewMockClock(time.UnixMilli(1700000000000))
	gen := order.NewIDGenerator(mc)

	first := gen.Next()
	second := gen.Next()
	mc.Add(-time.Second)
	third := gen.Next()

	assert.Equal(t, "ORD-1700000000000", first)
	assert.Equal(t, "ORD-1700000000001", second)
	assert.Equal(t, "ORD-1700000000002", third)
}

func TestHistoryCodec(t *testing.T) {
	assert.Empty(t, order.DecodeHistory(""))
	assert.Empty(t, order.DecodeHistory("garbage"))
	assert.Empty(t, order.DecodeHistory("null"))

	o, err := order.New(builder.NewCheckoutBuilder().BuildCustomerInfo(), order.PaymentMobile, cart.Empty(), "ORD-9", time.Now())
	require.NoError(t, err)

	raw, err := order.EncodeHistory([]order.Order{*o})
	require.NoError(t, err)
	decoded := order.DecodeHistory(raw)
	require.Len(t, decoded, 1)
	assert.Equal(t, "ORD-9", decoded[0].OrderID)
}
