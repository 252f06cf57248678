package api

import (
	"errors"
	"net/http"

	"restropos/internal/engine"
	"restropos/internal/monitoring"
	"restropos/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Server is the REST surface over the order engine and the record store
type Server struct {
	Router    *gin.Engine
	db        *gorm.DB
	engine    *engine.Engine
	settings  *settings.Service
	monitor   *monitoring.Monitor
	jwtSecret string
}

// NewServer creates the API server and wires up all routes
func NewServer(db *gorm.DB, eng *engine.Engine, settingsSvc *settings.Service, jwtSecret string) *Server {
	server := &Server{
		Router:    gin.Default(),
		db:        db,
		engine:    eng,
		settings:  settingsSvc,
		monitor:   monitoring.NewMonitor(),
		jwtSecret: jwtSecret,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Restaurant POS API is running"})
	})

	s.Router.POST("/auth/login", s.Login)
	s.Router.POST("/auth/register", s.Register)

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.Authentication())
	{
		// Order lifecycle
		v1.GET("/orders", s.GetOrders)
		v1.GET("/orders/search", s.SearchOrders)
		v1.GET("/orders/:id", s.GetOrder)
		v1.POST("/orders", s.CreateOrder)
		v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
		v1.PATCH("/orders/:id/discount", s.ApplyDiscount)
		v1.POST("/orders/:id/payment", s.ProcessPayment)
		v1.DELETE("/orders/:id", s.DeleteOrder)

		// Floor plan
		v1.GET("/tables", s.GetTables)
		v1.GET("/tables/number/:number", s.GetTableByNumber)
		v1.POST("/tables", s.CreateTable)
		v1.PUT("/tables/:id", s.UpdateTable)
		v1.POST("/tables/:id/assign", s.AssignTable)
		v1.POST("/tables/:id/free", s.FreeTable)
		v1.DELETE("/tables/:id", s.DeleteTable)

		// Menu
		v1.GET("/menu", s.GetMenuItems)
		v1.GET("/menu/search", s.SearchMenuItems)
		v1.GET("/menu/:id", s.GetMenuItem)
		v1.POST("/menu", s.CreateMenuItem)
		v1.PUT("/menu/:id", s.UpdateMenuItem)
		v1.DELETE("/menu/:id", s.DeleteMenuItem)

		v1.GET("/categories", s.GetCategories)
		v1.POST("/categories", s.CreateCategory)
		v1.PUT("/categories/:id", s.UpdateCategory)
		v1.DELETE("/categories/:id", s.DeleteCategory)

		// Settings and dashboard
		v1.GET("/settings", s.GetSettings)
		v1.PUT("/settings", s.UpdateSettings)
		v1.GET("/dashboard/stats", s.GetDashboardStats)
		v1.GET("/dashboard/runtime", s.GetRuntimeMetrics)
	}
}

// respondError maps engine error kinds to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrInvalidTransition),
		errors.Is(err, engine.ErrAlreadyPaid):
		status = http.StatusConflict
	case errors.Is(err, engine.ErrInsufficientPayment):
		status = http.StatusPaymentRequired
	case errors.Is(err, engine.ErrPersistence):
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
