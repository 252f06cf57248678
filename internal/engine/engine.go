// Package engine implements the order and billing core: order creation,
// the status state machine, payment processing, discount arithmetic,
// order-number generation and table-occupancy synchronization.
//
// Tables and orders are only loosely coupled (Table.Number vs
// Order.TableNumber, Table.CurrentOrderID back-reference); the store enforces
// no referential integrity, so every order-affecting operation here updates
// the paired table itself, inside the same transaction as the order write.
package engine

import (
	"sync"
	"time"

	"github.com/jinzhu/gorm"
)

// SettingsProvider supplies the current tax rate. The engine snapshot-reads
// it once per order creation and stores it on the order.
type SettingsProvider interface {
	TaxRatePercent() (float64, error)
}

// Engine executes all order lifecycle operations against the store.
type Engine struct {
	db       *gorm.DB
	settings SettingsProvider

	// mu serializes the order-number counter and table occupancy
	// read-modify-writes. Lost updates there mean duplicate order numbers
	// or two orders owning one table, so a single-writer section it is.
	mu sync.Mutex

	now func() time.Time
}

// New creates an engine over the given store and settings source.
func New(db *gorm.DB, settings SettingsProvider) *Engine {
	return &Engine{
		db:       db,
		settings: settings,
		now:      time.Now,
	}
}
