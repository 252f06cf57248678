package engine

import (
	"fmt"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

// PaymentInput carries how an order is being paid.
type PaymentInput struct {
	PaymentMethod string  `json:"paymentMethod"`
	AmountPaid    float64 `json:"amountPaid"`
}

// PaymentResult is returned to the caller after a successful payment.
// Change is derived, not stored on the order.
type PaymentResult struct {
	Order  *models.Order `json:"order"`
	Change float64       `json:"change"`
}

// ProcessPayment settles an order: marks it paid and completed, records
// method, amount and time, frees a dine-in table, and returns the change.
// Underpayment and repeat payment are rejected without touching the order.
func (e *Engine) ProcessPayment(orderID uint, input PaymentInput) (*PaymentResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, validationError("unknown payment method %q", input.PaymentMethod)
	}
	if input.AmountPaid < 0 {
		return nil, validationError("amount paid must not be negative")
	}

	order, err := e.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus == string(models.PaymentStatusPaid) {
		return nil, fmt.Errorf("%w: order %s", ErrAlreadyPaid, order.OrderNumber)
	}
	if order.Status == string(models.OrderStatusCancelled) {
		return nil, validationError("order %s is cancelled", order.OrderNumber)
	}
	if input.AmountPaid < order.Total {
		return nil, fmt.Errorf("%w: paid %.2f of %.2f", ErrInsufficientPayment, input.AmountPaid, order.Total)
	}

	paidAt := e.now()
	err = e.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"payment_status": string(models.PaymentStatusPaid),
			"payment_method": input.PaymentMethod,
			"amount_paid":    input.AmountPaid,
			"paid_at":        paidAt,
			"status":         string(models.OrderStatusCompleted),
		}
		if err := tx.Model(order).Updates(updates).Error; err != nil {
			return err
		}
		if order.Type == string(models.OrderTypeDineIn) {
			return releaseTableForOrder(tx, order.ID)
		}
		return nil
	})
	if err != nil {
		return nil, persistenceError(err)
	}

	order.PaymentStatus = string(models.PaymentStatusPaid)
	order.PaymentMethod = input.PaymentMethod
	order.AmountPaid = input.AmountPaid
	order.PaidAt = &paidAt
	order.Status = string(models.OrderStatusCompleted)

	return &PaymentResult{
		Order:  order,
		Change: input.AmountPaid - order.Total,
	}, nil
}
