// Package settings reads and updates the restaurant-wide settings row and
// acts as the tax-rate source for the billing engine.
package settings

import (
	"fmt"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

// Defaults returns the settings seeded on first run.
func Defaults() models.Settings {
	return models.Settings{
		RestaurantName: "Termiz Restaurant",
		TaxRatePercent: 5.25,
		Currency:       "PKR",
		Address:        "123 Food Street, Karachi, Pakistan",
		Phone:          "+92 300 1234567",
		Email:          "info@termizrestaurant.com",
		GSTIN:          "PK-123456789",
		Website:        "www.termizrestaurant.com",
	}
}

// Service loads and updates the singleton settings row.
type Service struct {
	db *gorm.DB
}

// NewService creates a settings service over the store.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the current settings, falling back to defaults when the row
// has not been seeded yet.
func (s *Service) Get() (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.First(&settings).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			defaults := Defaults()
			return &defaults, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Update applies changed fields and returns the stored settings.
func (s *Service) Update(updates map[string]interface{}) (*models.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	if settings.ID == 0 {
		if err := s.db.Create(settings).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return nil, err
	}
	var fresh models.Settings
	if err := s.db.First(&fresh, settings.ID).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

// TaxRatePercent returns the current tax rate for billing. Callers snapshot
// it per order; later settings edits never touch existing orders.
func (s *Service) TaxRatePercent() (float64, error) {
	settings, err := s.Get()
	if err != nil {
		return 0, err
	}
	return settings.TaxRatePercent, nil
}

// CurrencySymbol maps the configured currency code to a display symbol.
func (s *Service) CurrencySymbol() string {
	settings, err := s.Get()
	if err != nil {
		return ""
	}
	switch settings.Currency {
	case "PKR", "INR":
		return "Rs"
	case "USD":
		return "$"
	default:
		return settings.Currency + " "
	}
}

// FormatCurrency renders an amount for receipts and summaries.
func (s *Service) FormatCurrency(amount float64) string {
	return fmt.Sprintf("%s%.2f", s.CurrencySymbol(), amount)
}
