package models

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
)

// Category groups menu items for display
type Category struct {
	gorm.Model
	Name         string `gorm:"unique_index"`
	Color        string
	Description  string
	DisplayOrder int
}

// MenuItem represents a dish on the menu
type MenuItem struct {
	gorm.Model
	Title           string
	Description     string
	Price           float64
	CategoryID      uint
	Category        *Category `gorm:"foreignkey:CategoryID"`
	Image           string
	IsAvailable     bool
	PreparationTime int    // minutes
	Ingredients     string // comma-separated
	SpicyLevel      string
	DisplayOrder    int
}

// SpicyLevel represents how hot a dish is
type SpicyLevel string

const (
	SpicyLevelNone     SpicyLevel = "none"
	SpicyLevelMild     SpicyLevel = "mild"
	SpicyLevelMedium   SpicyLevel = "medium"
	SpicyLevelHot      SpicyLevel = "hot"
	SpicyLevelExtraHot SpicyLevel = "extra-hot"
)

// ValidateMenuItem validates a menu item before it is stored
func ValidateMenuItem(item *MenuItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("menu item title is required")
	}
	if item.Price <= 0 {
		return fmt.Errorf("menu item price must be greater than 0")
	}
	if item.PreparationTime < 0 {
		return fmt.Errorf("menu item preparation time must not be negative")
	}
	return nil
}

// IngredientList splits the stored ingredient string into its parts.
func (mi *MenuItem) IngredientList() []string {
	if mi.Ingredients == "" {
		return nil
	}
	parts := strings.Split(mi.Ingredients, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// HasIngredient checks if the item contains a specific ingredient
func (mi *MenuItem) HasIngredient(ingredient string) bool {
	for _, ing := range mi.IngredientList() {
		if strings.EqualFold(ing, ingredient) {
			return true
		}
	}
	return false
}
