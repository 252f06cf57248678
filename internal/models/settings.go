package models

import (
	"github.com/jinzhu/gorm"
)

// Settings holds the restaurant-wide configuration. A single row is kept in
// the store; TaxRatePercent is snapshot-read by the billing engine at order
// creation, so editing it never changes already-created orders.
type Settings struct {
	gorm.Model
	RestaurantName string
	TaxRatePercent float64
	Currency       string
	Address        string
	Phone          string
	Email          string
	GSTIN          string
	Website        string
}

// Counter is a named durable counter. The "order_number" row backs order
// numbering; it increases monotonically across restarts and never resets.
type Counter struct {
	gorm.Model
	Name  string `gorm:"unique_index"`
	Value int64
}

// OrderNumberCounter is the counter row used for order numbering.
const OrderNumberCounter = "order_number"
