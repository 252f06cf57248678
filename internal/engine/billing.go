package engine

// DiscountMode selects how a requested discount is interpreted.
type DiscountMode string

const (
	DiscountFixed      DiscountMode = "fixed"
	DiscountPercentage DiscountMode = "percentage"
)

// Discount is a computation-time input; only the resulting amount is stored
// on the order.
type Discount struct {
	Mode  DiscountMode
	Value float64
}

// Amount resolves the discount against a subtotal. Fixed amounts are clamped
// to [0, subtotal]; percentages are clamped to [0, 100] before applying.
func (d Discount) Amount(subtotal float64) float64 {
	value := d.Value
	if value < 0 {
		value = 0
	}

	var amount float64
	switch d.Mode {
	case DiscountPercentage:
		if value > 100 {
			value = 100
		}
		amount = subtotal * value / 100
	default:
		amount = value
	}

	if amount > subtotal {
		amount = subtotal
	}
	return amount
}

// computeTax applies the snapshotted tax rate (percent) to the discounted
// subtotal.
func computeTax(subtotal, discount, taxRatePercent float64) float64 {
	return (subtotal - discount) * taxRatePercent / 100
}

// computeTotal derives the order total. Discount never exceeds subtotal and
// the remaining terms are non-negative, so the result cannot go below zero.
func computeTotal(subtotal, discount, tax, deliveryCharges float64) float64 {
	return subtotal - discount + tax + deliveryCharges
}
