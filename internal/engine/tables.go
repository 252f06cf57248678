package engine

import (
	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

var freedTableFields = map[string]interface{}{
	"status":           string(models.TableStatusAvailable),
	"customer_name":    "",
	"current_order_id": nil,
}

// releaseTableForOrder frees whichever table is linked to the order.
// A takeaway or already-freed order matches no rows, which is fine.
func releaseTableForOrder(tx *gorm.DB, orderID uint) error {
	return tx.Model(&models.Table{}).
		Where("current_order_id = ?", orderID).
		Updates(freedTableFields).Error
}

// FreeTable explicitly releases a table: status back to available, customer
// name and order link cleared. Freeing an available table is a no-op.
func (e *Engine) FreeTable(tableID uint) (*models.Table, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var table models.Table
	if err := e.db.First(&table, tableID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, notFoundError("table %d does not exist", tableID)
		}
		return nil, persistenceError(err)
	}

	if err := e.db.Model(&table).Updates(freedTableFields).Error; err != nil {
		return nil, persistenceError(err)
	}

	table.Status = string(models.TableStatusAvailable)
	table.CustomerName = ""
	table.CurrentOrderID = nil
	return &table, nil
}

// AssignTable seats a walk-in customer without an order yet.
func (e *Engine) AssignTable(tableID uint, customerName string) (*models.Table, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var table models.Table
	if err := e.db.First(&table, tableID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, notFoundError("table %d does not exist", tableID)
		}
		return nil, persistenceError(err)
	}
	if table.Status != string(models.TableStatusAvailable) {
		return nil, validationError("table %d is %s", table.Number, table.Status)
	}

	updates := map[string]interface{}{
		"status":        string(models.TableStatusOccupied),
		"customer_name": customerName,
	}
	if err := e.db.Model(&table).Updates(updates).Error; err != nil {
		return nil, persistenceError(err)
	}

	table.Status = string(models.TableStatusOccupied)
	table.CustomerName = customerName
	return &table, nil
}
