package engine

import (
	"fmt"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

// UpdateStatus moves an order to the target status. Targets not reachable
// from the current status are rejected. When a dine-in order completes, its
// table is freed in the same transaction. Totals are never recomputed here.
func (e *Engine) UpdateStatus(orderID uint, target string) (*models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !models.ValidOrderStatus(target) {
		return nil, validationError("unknown order status %q", target)
	}

	order, err := e.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	current := models.OrderStatus(order.Status)
	next := models.OrderStatus(target)
	if !current.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Update("status", target).Error; err != nil {
			return err
		}
		if next == models.OrderStatusCompleted && order.Type == string(models.OrderTypeDineIn) {
			return releaseTableForOrder(tx, order.ID)
		}
		return nil
	})
	if err != nil {
		return nil, persistenceError(err)
	}

	order.Status = target
	return order, nil
}
