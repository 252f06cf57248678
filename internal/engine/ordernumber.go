package engine

import (
	"fmt"
	"time"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
)

// nextOrderNumber allocates the next order number inside the given
// transaction: ORD + YYYYMMDD + zero-padded counter value. The counter row is
// durable and increases monotonically across restarts; it is not reset at
// midnight, so the numeric suffix does not restart daily. Allocation and the
// order insert share one transaction, so a failed creation rolls the counter
// back and the number is reused by the next attempt.
func nextOrderNumber(tx *gorm.DB, at time.Time) (string, error) {
	var counter models.Counter
	if err := tx.Where("name = ?", models.OrderNumberCounter).First(&counter).Error; err != nil {
		return "", fmt.Errorf("load order counter: %w", err)
	}

	number := fmt.Sprintf("ORD%s%03d", at.Format("20060102"), counter.Value)

	if err := tx.Model(&counter).Update("value", counter.Value+1).Error; err != nil {
		return "", fmt.Errorf("advance order counter: %w", err)
	}
	return number, nil
}
