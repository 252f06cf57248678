package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the restaurant settings row.
func (s *Server) GetSettings(c *gin.Context) {
	settings, err := s.settings.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies changed settings fields. The tax rate change only
// affects orders created afterwards; existing orders keep their snapshot.
func (s *Server) UpdateSettings(c *gin.Context) {
	var body struct {
		RestaurantName *string  `json:"restaurantName"`
		TaxRatePercent *float64 `json:"taxRatePercent"`
		Currency       *string  `json:"currency"`
		Address        *string  `json:"address"`
		Phone          *string  `json:"phone"`
		Email          *string  `json:"email"`
		GSTIN          *string  `json:"gstin"`
		Website        *string  `json:"website"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if body.RestaurantName != nil {
		updates["restaurant_name"] = *body.RestaurantName
	}
	if body.TaxRatePercent != nil {
		if *body.TaxRatePercent < 0 || *body.TaxRatePercent > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tax rate must be between 0 and 100"})
			return
		}
		updates["tax_rate_percent"] = *body.TaxRatePercent
	}
	if body.Currency != nil {
		updates["currency"] = *body.Currency
	}
	if body.Address != nil {
		updates["address"] = *body.Address
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.GSTIN != nil {
		updates["gstin"] = *body.GSTIN
	}
	if body.Website != nil {
		updates["website"] = *body.Website
	}

	settings, err := s.settings.Update(updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
