package engine

import (
	"strings"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

// OrderItemInput names a menu item and quantity for a new order.
type OrderItemInput struct {
	MenuItemID          uint   `json:"menuItemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

// CreateOrderInput carries everything needed to create an order.
type CreateOrderInput struct {
	CustomerName    string           `json:"customerName"`
	Type            string           `json:"type"`
	TableNumber     *int             `json:"tableNumber"`
	DeliveryAddress string           `json:"deliveryAddress"`
	DeliveryCharges float64          `json:"deliveryCharges"`
	Items           []OrderItemInput `json:"items"`
	Discount        *Discount        `json:"discount"`
	WaiterName      string           `json:"waiterName"`
	Notes           string           `json:"notes"`
}

// CreateOrder validates the input, computes the bill, allocates an order
// number and persists the order. For dine-in orders the referenced table is
// marked occupied and linked back to the order in the same transaction.
// Validation failures leave the store untouched.
func (e *Engine) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validateCreate(&input); err != nil {
		return nil, err
	}

	var table *models.Table
	if input.Type == string(models.OrderTypeDineIn) {
		t, err := e.lookupAssignableTable(*input.TableNumber)
		if err != nil {
			return nil, err
		}
		table = t
	}

	items, subtotal, err := e.resolveItems(input.Items)
	if err != nil {
		return nil, err
	}

	taxRate, err := e.settings.TaxRatePercent()
	if err != nil {
		return nil, persistenceError(err)
	}

	var discount float64
	if input.Discount != nil {
		discount = input.Discount.Amount(subtotal)
	}

	deliveryCharges := 0.0
	if input.Type == string(models.OrderTypeDelivery) {
		deliveryCharges = input.DeliveryCharges
	}

	tax := computeTax(subtotal, discount, taxRate)

	order := models.Order{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		Type:            input.Type,
		TableNumber:     input.TableNumber,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		DeliveryCharges: deliveryCharges,
		Items:           items,
		Subtotal:        subtotal,
		Discount:        discount,
		TaxRate:         taxRate,
		Tax:             tax,
		Total:           computeTotal(subtotal, discount, tax, deliveryCharges),
		Status:          string(models.OrderStatusPending),
		PaymentStatus:   string(models.PaymentStatusPending),
		PaymentMethod:   string(models.PaymentMethodPending),
		WaiterName:      strings.TrimSpace(input.WaiterName),
		Notes:           input.Notes,
	}
	if input.Type != string(models.OrderTypeDineIn) {
		order.TableNumber = nil
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		number, err := nextOrderNumber(tx, e.now())
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if table != nil {
			updates := map[string]interface{}{
				"status":           string(models.TableStatusOccupied),
				"customer_name":    order.CustomerName,
				"current_order_id": order.ID,
			}
			if err := tx.Model(&models.Table{}).Where("id = ?", table.ID).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, persistenceError(err)
	}

	return &order, nil
}

func (e *Engine) validateCreate(input *CreateOrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return validationError("customer name is required")
	}
	if !models.ValidOrderType(input.Type) {
		return validationError("unknown order type %q", input.Type)
	}
	if len(input.Items) == 0 {
		return validationError("order must contain at least one item")
	}
	for i, item := range input.Items {
		if item.Quantity < 1 {
			return validationError("item %d: quantity must be at least 1", i+1)
		}
	}
	if input.Type == string(models.OrderTypeDineIn) && input.TableNumber == nil {
		return validationError("table number is required for dine-in orders")
	}
	if input.Type == string(models.OrderTypeDelivery) {
		if strings.TrimSpace(input.DeliveryAddress) == "" {
			return validationError("delivery address is required for delivery orders")
		}
		if input.DeliveryCharges < 0 {
			return validationError("delivery charges must not be negative")
		}
	}
	if input.Discount != nil && input.Discount.Mode != DiscountFixed && input.Discount.Mode != DiscountPercentage {
		return validationError("unknown discount mode %q", input.Discount.Mode)
	}
	return nil
}

// lookupAssignableTable loads the table for a dine-in order and requires it
// to be available for assignment.
func (e *Engine) lookupAssignableTable(number int) (*models.Table, error) {
	var table models.Table
	if err := e.db.Where("number = ?", number).First(&table).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, notFoundError("table %d does not exist", number)
		}
		return nil, persistenceError(err)
	}
	if table.Status != string(models.TableStatusAvailable) {
		return nil, validationError("table %d is %s", number, table.Status)
	}
	return &table, nil
}

// resolveItems snapshots title and unit price from the menu and computes
// line totals and the subtotal.
func (e *Engine) resolveItems(inputs []OrderItemInput) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	var subtotal float64

	for _, in := range inputs {
		var menuItem models.MenuItem
		if err := e.db.First(&menuItem, in.MenuItemID).Error; err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return nil, 0, notFoundError("menu item %d does not exist", in.MenuItemID)
			}
			return nil, 0, persistenceError(err)
		}
		if !menuItem.IsAvailable {
			return nil, 0, validationError("menu item %q is not available", menuItem.Title)
		}

		lineTotal := menuItem.Price * float64(in.Quantity)
		items = append(items, models.OrderItem{
			MenuItemID:          menuItem.ID,
			Title:               menuItem.Title,
			UnitPrice:           menuItem.Price,
			Quantity:            in.Quantity,
			LineTotal:           lineTotal,
			SpecialInstructions: in.SpecialInstructions,
		})
		subtotal += lineTotal
	}
	return items, subtotal, nil
}

// GetOrder loads an order with its items.
func (e *Engine) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := e.db.Preload("Items").First(&order, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, notFoundError("order %d does not exist", id)
		}
		return nil, persistenceError(err)
	}
	return &order, nil
}

// DeleteOrder removes the order and its items. Any table still linked to the
// order is freed in the same transaction. This is a hard removal, not a
// refund workflow; payment history is not reversed anywhere.
func (e *Engine) DeleteOrder(id uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, err := e.GetOrder(id)
	if err != nil {
		return err
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(order).Error; err != nil {
			return err
		}
		return releaseTableForOrder(tx, order.ID)
	})
	if err != nil {
		return persistenceError(err)
	}
	return nil
}
