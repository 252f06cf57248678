package api

import (
	"net/http"
	"strconv"
	"time"

	"restropos/internal/engine"
	"restropos/internal/models"
	"restropos/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// GetOrders lists orders newest first, optionally filtered by status, type
// and date (YYYY-MM-DD).
func (s *Server) GetOrders(c *gin.Context) {
	query := s.db.Preload("Items").Order("created_at DESC")

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if orderType := c.Query("type"); orderType != "" && orderType != "all" {
		query = query.Where("type = ?", orderType)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		query = query.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order with its items.
func (s *Server) GetOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.engine.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder creates a new order through the engine.
func (s *Server) CreateOrder(c *gin.Context) {
	var input engine.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.engine.CreateOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}

	s.monitor.IncrementCounter("orders_created")
	monitoring.OrdersCreated.WithLabelValues(order.Type).Inc()

	c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus moves an order through its state machine.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.engine.UpdateStatus(id, body.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	monitoring.StatusTransitions.WithLabelValues(order.Status).Inc()

	c.JSON(http.StatusOK, order)
}

// ApplyDiscount recomputes an unpaid order's bill with a new discount.
func (s *Server) ApplyDiscount(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var discount engine.Discount
	if err := c.ShouldBindJSON(&discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.engine.ApplyDiscount(id, discount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ProcessPayment settles an order and reports the change due.
func (s *Server) ProcessPayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input engine.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.engine.ProcessPayment(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	s.monitor.IncrementCounter("payments_processed")
	monitoring.PaymentsProcessed.WithLabelValues(result.Order.PaymentMethod).Inc()
	monitoring.RevenueCollected.Add(result.Order.Total)

	c.JSON(http.StatusOK, result)
}

// DeleteOrder removes an order and frees its table.
func (s *Server) DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.engine.DeleteOrder(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SearchOrders matches customer name, order number or table number against
// the q parameter.
func (s *Server) SearchOrders(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusOK, []models.Order{})
		return
	}

	pattern := "%" + term + "%"
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("customer_name LIKE ? OR order_number LIKE ? OR CAST(table_number AS TEXT) LIKE ?",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
