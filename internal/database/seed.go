package database

import (
	"log"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

// SeedDefaultData ensures essential data exists in the database: the settings
// row, the order-number counter, the floor plan and a starter menu. Existing
// rows are never overwritten, so re-running at startup is safe.
func SeedDefaultData(db *gorm.DB, settings models.Settings) {
	seedSettings(db, settings)
	seedCounter(db)
	seedTables(db)
	seedMenu(db)
}

func seedSettings(db *gorm.DB, defaults models.Settings) {
	var count int64
	db.Model(&models.Settings{}).Count(&count)
	if count == 0 {
		if err := db.Create(&defaults).Error; err != nil {
			log.Printf("Failed to seed settings: %v", err)
		}
	}
}

func seedCounter(db *gorm.DB) {
	var count int64
	db.Model(&models.Counter{}).Where("name = ?", models.OrderNumberCounter).Count(&count)
	if count == 0 {
		counter := models.Counter{Name: models.OrderNumberCounter, Value: 1}
		if err := db.Create(&counter).Error; err != nil {
			log.Printf("Failed to seed order counter: %v", err)
		}
	}
}

func seedTables(db *gorm.DB) {
	var count int64
	db.Model(&models.Table{}).Count(&count)
	if count > 0 {
		return
	}

	tables := []models.Table{
		{Number: 1, Capacity: 4, Location: "main-hall", Status: string(models.TableStatusAvailable)},
		{Number: 2, Capacity: 6, Location: "main-hall", Status: string(models.TableStatusAvailable)},
		{Number: 3, Capacity: 2, Location: "terrace", Status: string(models.TableStatusAvailable)},
		{Number: 4, Capacity: 4, Location: "main-hall", Status: string(models.TableStatusAvailable)},
		{Number: 5, Capacity: 8, Location: "private-room", Status: string(models.TableStatusAvailable)},
		{Number: 6, Capacity: 4, Location: "terrace", Status: string(models.TableStatusAvailable)},
	}
	for i := range tables {
		if err := db.Create(&tables[i]).Error; err != nil {
			log.Printf("Failed to seed table %d: %v", tables[i].Number, err)
		}
	}
}

func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "Starters", Color: "bg-red-500", Description: "Appetizers and small bites", DisplayOrder: 1},
		{Name: "Main Course", Color: "bg-purple-500", Description: "Main dishes and entrees", DisplayOrder: 2},
		{Name: "Beverages", Color: "bg-blue-500", Description: "Drinks and refreshments", DisplayOrder: 3},
		{Name: "Desserts", Color: "bg-pink-500", Description: "Sweet treats and desserts", DisplayOrder: 4},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Printf("Failed to seed category %s: %v", categories[i].Name, err)
		}
	}

	items := []models.MenuItem{
		{Title: "Chicken Biryani", Price: 450, CategoryID: categories[1].ID, Description: "Traditional rice dish with chicken and spices", PreparationTime: 25, IsAvailable: true, Ingredients: "Basmati Rice, Chicken, Spices", SpicyLevel: string(models.SpicyLevelMedium)},
		{Title: "Seekh Kebab", Price: 320, CategoryID: categories[0].ID, Description: "Minced meat kebabs with traditional spices", PreparationTime: 20, IsAvailable: true, Ingredients: "Minced Meat, Spices, Herbs", SpicyLevel: string(models.SpicyLevelMedium)},
		{Title: "Chicken Karahi", Price: 650, CategoryID: categories[1].ID, Description: "Wok-cooked chicken curry", PreparationTime: 30, IsAvailable: true, Ingredients: "Chicken, Tomatoes, Ginger, Garlic", SpicyLevel: string(models.SpicyLevelMedium)},
		{Title: "Mutton Karahi", Price: 850, CategoryID: categories[1].ID, Description: "Wok-cooked mutton curry", PreparationTime: 35, IsAvailable: true, Ingredients: "Mutton, Tomatoes, Ginger, Garlic", SpicyLevel: string(models.SpicyLevelHot)},
		{Title: "Fish Curry", Price: 750, CategoryID: categories[1].ID, Description: "Spicy fish curry with coconut milk", PreparationTime: 20, IsAvailable: true, Ingredients: "Fish, Spices, Coconut Milk", SpicyLevel: string(models.SpicyLevelMedium)},
		{Title: "Fresh Lime", Price: 80, CategoryID: categories[2].ID, Description: "Fresh lime soda with mint", PreparationTime: 5, IsAvailable: true, Ingredients: "Lime, Soda, Mint, Sugar", SpicyLevel: string(models.SpicyLevelNone)},
		{Title: "Mango Lassi", Price: 150, CategoryID: categories[2].ID, Description: "Sweet yogurt drink with mango", PreparationTime: 5, IsAvailable: true, Ingredients: "Yogurt, Mango, Sugar", SpicyLevel: string(models.SpicyLevelNone)},
		{Title: "Gulab Jamun", Price: 120, CategoryID: categories[3].ID, Description: "Sweet milk balls in sugar syrup", PreparationTime: 10, IsAvailable: true, Ingredients: "Milk, Sugar, Flour", SpicyLevel: string(models.SpicyLevelNone)},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Printf("Failed to seed menu item %s: %v", items[i].Title, err)
		}
	}
}

// SeedAdminUser creates the default admin account when no users exist.
func SeedAdminUser(db *gorm.DB, email, password string) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	admin := models.User{Name: "Admin", Email: email, Role: string(models.UserRoleAdmin), IsActive: true}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	}
}
