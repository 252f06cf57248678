// Package dashboard aggregates order, revenue and table statistics for the
// front-of-house overview screen.
package dashboard

import (
	"time"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

// RevenueStats sums order totals for the usual reporting windows.
type RevenueStats struct {
	Today  float64 `json:"today"`
	Weekly float64 `json:"weekly"`
}

// OrderStats counts today's orders by status.
type OrderStats struct {
	Today     int `json:"today"`
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Completed int `json:"completed"`
}

// TableStats summarizes the floor.
type TableStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
}

// PopularDish is a menu item ranked by units sold over the last 7 days.
type PopularDish struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Stats is the full dashboard payload.
type Stats struct {
	Revenue       RevenueStats  `json:"revenue"`
	Orders        OrderStats    `json:"orders"`
	Tables        TableStats    `json:"tables"`
	PopularDishes []PopularDish `json:"popularDishes"`
}

// Collect computes the dashboard statistics as of now.
func Collect(db *gorm.DB, now time.Time) (*Stats, error) {
	stats := &Stats{PopularDishes: []PopularDish{}}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	var todaysOrders []models.Order
	if err := db.Where("created_at >= ? AND created_at < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Find(&todaysOrders).Error; err != nil {
		return nil, err
	}

	stats.Orders.Today = len(todaysOrders)
	for _, order := range todaysOrders {
		stats.Revenue.Today += order.Total
		switch models.OrderStatus(order.Status) {
		case models.OrderStatusPending:
			stats.Orders.Pending++
		case models.OrderStatusPreparing:
			stats.Orders.Preparing++
		case models.OrderStatusReady:
			stats.Orders.Ready++
		case models.OrderStatusCompleted:
			stats.Orders.Completed++
		}
	}

	row := db.Model(&models.Order{}).
		Where("created_at >= ?", weekStart).
		Select("COALESCE(SUM(total), 0)").Row()
	if err := row.Scan(&stats.Revenue.Weekly); err != nil {
		return nil, err
	}

	var tables []models.Table
	if err := db.Find(&tables).Error; err != nil {
		return nil, err
	}
	stats.Tables.Total = len(tables)
	for _, table := range tables {
		switch models.TableStatus(table.Status) {
		case models.TableStatusAvailable:
			stats.Tables.Available++
		case models.TableStatusOccupied:
			stats.Tables.Occupied++
		case models.TableStatusReserved:
			stats.Tables.Reserved++
		}
	}

	dishes, err := popularDishes(db, weekStart, 10)
	if err != nil {
		return nil, err
	}
	stats.PopularDishes = dishes

	return stats, nil
}

// popularDishes ranks menu items by units sold since the cutoff.
func popularDishes(db *gorm.DB, since time.Time, limit int) ([]PopularDish, error) {
	rows, err := db.Table("order_items").
		Select("order_items.title, SUM(order_items.quantity) AS units, SUM(order_items.line_total) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", since).
		Group("order_items.title").
		Order("units DESC").
		Limit(limit).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []PopularDish{}
	for rows.Next() {
		var dish PopularDish
		if err := rows.Scan(&dish.Name, &dish.Orders, &dish.Revenue); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}
