package api

import (
	"net/http"
	"strconv"

	"restropos/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// GetTables lists tables in floor order, optionally filtered by status.
func (s *Server) GetTables(c *gin.Context) {
	query := s.db.Order("number ASC")
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var tables []models.Table
	if err := query.Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tables)
}

// GetTableByNumber looks a table up by its floor number.
func (s *Server) GetTableByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table number must be an integer"})
		return
	}

	var table models.Table
	if err := s.db.Where("number = ?", number).First(&table).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

// CreateTable adds a table to the floor plan.
func (s *Server) CreateTable(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if table.Number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table number must be positive"})
		return
	}
	if table.Capacity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table capacity must be at least 1"})
		return
	}

	table.Status = string(models.TableStatusAvailable)
	table.CustomerName = ""
	table.CurrentOrderID = nil

	if err := s.db.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, table)
}

// UpdateTable changes a table's static attributes or status.
func (s *Server) UpdateTable(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var body struct {
		Capacity *int    `json:"capacity"`
		Location *string `json:"location"`
		Status   *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if body.Capacity != nil {
		updates["capacity"] = *body.Capacity
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.Status != nil {
		if !models.ValidTableStatus(*body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown table status"})
			return
		}
		updates["status"] = *body.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&table).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if err := s.db.First(&table, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

// AssignTable seats a customer at a table without creating an order.
func (s *Server) AssignTable(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body struct {
		CustomerName string `json:"customerName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.CustomerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer name is required"})
		return
	}

	table, err := s.engine.AssignTable(id, body.CustomerName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// FreeTable explicitly releases a table.
func (s *Server) FreeTable(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := s.engine.FreeTable(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// DeleteTable removes a table from the floor plan.
func (s *Server) DeleteTable(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	if table.Status == string(models.TableStatusOccupied) {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete an occupied table"})
		return
	}

	if err := s.db.Unscoped().Delete(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
