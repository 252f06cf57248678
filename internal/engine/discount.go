package engine

import (
	"restropos/internal/models"
)

// ApplyDiscount recomputes the bill of an unpaid order with a new discount.
// The stored subtotal, tax-rate snapshot and delivery charges are reused;
// only discount, tax and total change. Paid and terminal orders are rejected.
func (e *Engine) ApplyDiscount(orderID uint, discount Discount) (*models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if discount.Mode != DiscountFixed && discount.Mode != DiscountPercentage {
		return nil, validationError("unknown discount mode %q", discount.Mode)
	}

	order, err := e.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == string(models.PaymentStatusPaid) {
		return nil, validationError("order %s is already paid", order.OrderNumber)
	}
	if models.OrderStatus(order.Status).IsTerminal() {
		return nil, validationError("order %s is %s", order.OrderNumber, order.Status)
	}

	amount := discount.Amount(order.Subtotal)
	tax := computeTax(order.Subtotal, amount, order.TaxRate)
	total := computeTotal(order.Subtotal, amount, tax, order.DeliveryCharges)

	updates := map[string]interface{}{
		"discount": amount,
		"tax":      tax,
		"total":    total,
	}
	if err := e.db.Model(order).Updates(updates).Error; err != nil {
		return nil, persistenceError(err)
	}

	order.Discount = amount
	order.Tax = tax
	order.Total = total
	return order, nil
}
