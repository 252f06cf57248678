package engine

import (
	"fmt"
	"testing"
	"time"

	"restropos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumberFormat(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	eng.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}

	order, err := eng.CreateOrder(dineInInput(t, db))
	require.NoError(t, err)
	assert.Equal(t, "ORD20260831001", order.OrderNumber)
}

func TestOrderNumbersAreSequential(t *testing.T) {
	eng, db, _ := newTestEngine(t)
	eng.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}

	for i := 1; i <= 3; i++ {
		input := dineInInput(t, db)
		input.Type = string(models.OrderTypeTakeaway)
		input.TableNumber = nil

		order, err := eng.CreateOrder(input)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ORD20260831%03d", i), order.OrderNumber)
	}

	var counter models.Counter
	require.NoError(t, db.Where("name = ?", models.OrderNumberCounter).First(&counter).Error)
	assert.Equal(t, int64(4), counter.Value)
}

// The counter is global and durable: it keeps counting across a day
// boundary instead of restarting at 001.
func TestOrderNumberCounterDoesNotResetDaily(t *testing.T) {
	eng, db, _ := newTestEngine(t)

	day := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	eng.now = func() time.Time { return day }

	input := dineInInput(t, db)
	input.Type = string(models.OrderTypeTakeaway)
	input.TableNumber = nil

	first, err := eng.CreateOrder(input)
	require.NoError(t, err)
	assert.Equal(t, "ORD20260831001", first.OrderNumber)

	day = time.Date(2026, 9, 1, 0, 30, 0, 0, time.UTC)
	second, err := eng.CreateOrder(input)
	require.NoError(t, err)
	assert.Equal(t, "ORD20260901002", second.OrderNumber)
}

func TestOrderNumberRollsBackWithFailedCreation(t *testing.T) {
	eng, db, _ := newTestEngine(t)

	input := dineInInput(t, db)
	order, err := eng.CreateOrder(input)
	require.NoError(t, err)
	assert.Equal(t, "ORD"+order.CreatedAt.Format("20060102")+"001", order.OrderNumber)

	// Table 4 is now occupied, so the same dine-in input fails validation
	// before any write; the counter must not have advanced.
	_, err = eng.CreateOrder(input)
	require.Error(t, err)

	var counter models.Counter
	require.NoError(t, db.Where("name = ?", models.OrderNumberCounter).First(&counter).Error)
	assert.Equal(t, int64(2), counter.Value)
}

func TestMissingCounterFailsCreation(t *testing.T) {
	eng, db, _ := newTestEngine(t)

	require.NoError(t, db.Unscoped().Where("name = ?", models.OrderNumberCounter).
		Delete(&models.Counter{}).Error)

	_, err := eng.CreateOrder(dineInInput(t, db))
	assert.ErrorIs(t, err, ErrPersistence)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}
