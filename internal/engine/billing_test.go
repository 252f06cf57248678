package engine

import (
	"testing"

	"restropos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name     string
		discount Discount
		subtotal float64
		want     float64
	}{
		{"fixed", Discount{Mode: DiscountFixed, Value: 50}, 980, 50},
		{"fixed capped at subtotal", Discount{Mode: DiscountFixed, Value: 2000}, 980, 980},
		{"fixed negative clamped", Discount{Mode: DiscountFixed, Value: -10}, 980, 0},
		{"percentage", Discount{Mode: DiscountPercentage, Value: 10}, 980, 98},
		{"percentage over 100 clamped", Discount{Mode: DiscountPercentage, Value: 150}, 980, 980},
		{"percentage negative clamped", Discount{Mode: DiscountPercentage, Value: -5}, 980, 0},
		{"full percentage", Discount{Mode: DiscountPercentage, Value: 100}, 980, 980},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.discount.Amount(tc.subtotal), 1e-9)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	tax := computeTax(980, 0, 5.25)
	assert.InDelta(t, 51.45, tax, 1e-9)
	assert.InDelta(t, 1031.45, computeTotal(980, 0, tax, 0), 1e-9)

	// Full discount on everything still yields a non-negative total.
	tax = computeTax(980, 980, 5.25)
	assert.InDelta(t, 0.0, tax, 1e-9)
	assert.InDelta(t, 0.0, computeTotal(980, 980, tax, 0), 1e-9)
}

func TestApplyPercentageDiscount(t *testing.T) {
	eng, db, _ := newTestEngine(t)

	order, err := eng.CreateOrder(dineInInput(t, db))
	require.NoError(t, err)

	order, err = eng.ApplyDiscount(order.ID, Discount{Mode: DiscountPercentage, Value: 10})
	require.NoError(t, err)

	assert.InDelta(t, 98.0, order.Discount, 1e-9)
	assert.InDelta(t, 46.305, order.Tax, 1e-9)
	assert.InDelta(t, 928.305, order.Total, 1e-9)
	assert.InDelta(t, 980.0, order.Subtotal, 1e-9)
}

func TestApplyFixedDiscountCapped(t *testing.T) {
	eng, db, _ := newTestEngine(t)

	order, err := eng.CreateOrder(dineInInput(t, db))
	require.NoError(t, err)

	order, err = eng.ApplyDiscount(order.ID, Discount{Mode: DiscountFixed, Value: 5000})
	require.NoError(t, err)

	assert.InDelta(t, 980.0, order.Discount, 1e-9)
	assert.InDelta(t, 0.0, order.Tax, 1e-9)
	assert.InDelta(t, 0.0, order.Total, 1e-9)
}

func TestApplyDiscountRejectedAfterPayment(t *testing.T) {
	eng, db, _ := newTestEngine(t)

	order, err := eng.CreateOrder(dineInInput(t, db))
	require.NoError(t, err)

	_, err = eng.ProcessPayment(order.ID, PaymentInput{
		PaymentMethod: string(models.PaymentMethodCash),
		AmountPaid:    1100,
	})
	require.NoError(t, err)

	_, err = eng.ApplyDiscount(order.ID, Discount{Mode: DiscountFixed, Value: 100})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplyDiscountUnknownMode(t *testing.T) {
	eng, db, _ := newTestEngine(t)

	order, err := eng.CreateOrder(dineInInput(t, db))
	require.NoError(t, err)

	_, err = eng.ApplyDiscount(order.ID, Discount{Mode: "loyalty", Value: 10})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplyDiscountReusesTaxRateSnapshot(t *testing.T) {
	eng, db, settings := newTestEngine(t)

	order, err := eng.CreateOrder(dineInInput(t, db))
	require.NoError(t, err)

	settings.rate = 20

	order, err = eng.ApplyDiscount(order.ID, Discount{Mode: DiscountPercentage, Value: 10})
	require.NoError(t, err)

	// Still 5.25%, not 20%.
	assert.InDelta(t, (980-98)*0.0525, order.Tax, 1e-9)
}
