package models

import (
	"github.com/jinzhu/gorm"
)

// Table represents a physical table in the dining area. CurrentOrderID is a
// loose back-reference to the dine-in order occupying it; the engine keeps it
// in sync on every order-affecting operation, the store enforces nothing.
type Table struct {
	gorm.Model
	Number         int `gorm:"unique_index"`
	Capacity       int
	Location       string
	Status         string
	CustomerName   string
	CurrentOrderID *uint
}

// TableStatus represents the occupancy state of a table
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusCleaning  TableStatus = "cleaning"
)

// ValidTableStatus reports whether the value names a known table status.
func ValidTableStatus(s string) bool {
	switch TableStatus(s) {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved, TableStatusCleaning:
		return true
	}
	return false
}

// TableLocation represents where a table is placed
type TableLocation string

const (
	TableLocationMainHall    TableLocation = "main-hall"
	TableLocationTerrace     TableLocation = "terrace"
	TableLocationPrivateRoom TableLocation = "private-room"
	TableLocationBar         TableLocation = "bar"
)
