package api

import (
	"net/http"
	"time"

	"restropos/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns today's revenue and order counts, table
// occupancy, and the popular dishes of the last 7 days.
func (s *Server) GetDashboardStats(c *gin.Context) {
	stats, err := dashboard.Collect(s.db, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRuntimeMetrics exposes the in-process monitor counters and uptime.
func (s *Server) GetRuntimeMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
