package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Order represents a customer order and its billed totals
type Order struct {
	gorm.Model
	OrderNumber     string `gorm:"unique_index"`
	CustomerName    string
	Type            string // dine-in, takeaway, delivery
	TableNumber     *int   // set for dine-in orders only
	DeliveryAddress string
	DeliveryCharges float64
	Items           []OrderItem `gorm:"foreignkey:OrderID"`
	Subtotal        float64
	Discount        float64
	TaxRate         float64 // percent, snapshotted from settings at creation
	Tax             float64
	Total           float64
	Status          string
	PaymentStatus   string
	PaymentMethod   string
	AmountPaid      float64
	PaidAt          *time.Time
	WaiterName      string
	Notes           string
}

// OrderItem represents a single line item in an order. Title and UnitPrice
// are copied from the menu item at creation time so later menu edits do not
// change what was billed.
type OrderItem struct {
	gorm.Model
	OrderID             uint
	MenuItemID          uint
	Title               string
	UnitPrice           float64
	Quantity            int
	LineTotal           float64
	SpecialInstructions string
}

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions lists the targets reachable from each status.
// Completed and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from its current status
// to the target status.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status changes are allowed.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// ValidOrderStatus reports whether the value names a known status.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[OrderStatus(s)]
	return ok
}

// OrderType represents how an order is fulfilled
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

// ValidOrderType reports whether the value names a known fulfillment type.
func ValidOrderType(t string) bool {
	switch OrderType(t) {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodUPI     PaymentMethod = "upi"
	PaymentMethodOnline  PaymentMethod = "online"
	PaymentMethodPending PaymentMethod = "pending"
)

// ValidPaymentMethod reports whether the value names a known payment method.
func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI,
		PaymentMethodOnline, PaymentMethodPending:
		return true
	}
	return false
}
