package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restropos/internal/api"
	"restropos/internal/database"
	"restropos/internal/engine"
	"restropos/internal/models"
	"restropos/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*api.Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	database.SeedDefaultData(db, settings.Defaults())
	database.SeedAdminUser(db, "admin@example.com", "admin123")

	settingsSvc := settings.NewService(db)
	eng := engine.New(db, settingsSvc)
	return api.NewServer(db, eng, settingsSvc, testSecret), db
}

func login(t *testing.T, server *api.Server) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	server.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

func doJSON(server *api.Server, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	server.Router.ServeHTTP(w, req)
	return w
}

func firstMenuItemID(t *testing.T, db *gorm.DB, title string) uint {
	t.Helper()
	var item models.MenuItem
	require.NoError(t, db.Where("title = ?", title).First(&item).Error)
	return item.ID
}

func TestHealthCheck(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(server, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticationRequired(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(server, "GET", "/api/v1/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(server, "GET", "/api/v1/orders", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(server, "POST", "/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	server, db := newTestServer(t)
	token := login(t, server)

	payload := map[string]interface{}{
		"customerName": "Ali Ahmed",
		"type":         "dine-in",
		"tableNumber":  4,
		"items": []map[string]interface{}{
			{"menuItemId": firstMenuItemID(t, db, "Chicken Biryani"), "quantity": 2},
			{"menuItemId": firstMenuItemID(t, db, "Fresh Lime"), "quantity": 1},
		},
	}

	w := doJSON(server, "POST", "/api/v1/orders", token, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.InDelta(t, 980.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 1031.45, order.Total, 1e-9)
	assert.NotEmpty(t, order.OrderNumber)

	// Table 4 shows occupied through the API as well.
	w = doJSON(server, "GET", "/api/v1/tables/number/4", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var table models.Table
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))
	assert.Equal(t, string(models.TableStatusOccupied), table.Status)
}

func TestCreateOrderValidationMapsTo400(t *testing.T) {
	server, _ := newTestServer(t)
	token := login(t, server)

	w := doJSON(server, "POST", "/api/v1/orders", token, map[string]interface{}{
		"customerName": "",
		"type":         "dine-in",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	server, db := newTestServer(t)
	token := login(t, server)

	payload := map[string]interface{}{
		"customerName": "Ali Ahmed",
		"type":         "takeaway",
		"items": []map[string]interface{}{
			{"menuItemId": firstMenuItemID(t, db, "Fresh Lime"), "quantity": 2},
		},
	}
	w := doJSON(server, "POST", "/api/v1/orders", token, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	// Skipping a state is a conflict.
	w = doJSON(server, "PATCH", fmt.Sprintf("/api/v1/orders/%d/status", order.ID), token,
		map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(server, "PATCH", fmt.Sprintf("/api/v1/orders/%d/status", order.ID), token,
		map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Underpayment maps to 402 and leaves the order alone.
	w = doJSON(server, "POST", fmt.Sprintf("/api/v1/orders/%d/payment", order.ID), token,
		map[string]interface{}{"paymentMethod": "cash", "amountPaid": 1.0})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = doJSON(server, "POST", fmt.Sprintf("/api/v1/orders/%d/payment", order.ID), token,
		map[string]interface{}{"paymentMethod": "cash", "amountPaid": 200.0})
	require.Equal(t, http.StatusOK, w.Code)

	var result engine.PaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Greater(t, result.Change, 0.0)
	assert.Equal(t, string(models.OrderStatusCompleted), result.Order.Status)

	// Second payment is a conflict.
	w = doJSON(server, "POST", fmt.Sprintf("/api/v1/orders/%d/payment", order.ID), token,
		map[string]interface{}{"paymentMethod": "cash", "amountPaid": 200.0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMissingOrderMapsTo404(t *testing.T) {
	server, _ := newTestServer(t)
	token := login(t, server)

	w := doJSON(server, "GET", "/api/v1/orders/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	token := login(t, server)

	w := doJSON(server, "GET", "/api/v1/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Contains(t, stats, "revenue")
	assert.Contains(t, stats, "orders")
	assert.Contains(t, stats, "tables")
	assert.Contains(t, stats, "popularDishes")
}

func TestSettingsRoundTrip(t *testing.T) {
	server, _ := newTestServer(t)
	token := login(t, server)

	w := doJSON(server, "PUT", "/api/v1/settings", token, map[string]interface{}{
		"taxRatePercent": 16.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(server, "GET", "/api/v1/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings models.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, 16.0, settings.TaxRatePercent)

	w = doJSON(server, "PUT", "/api/v1/settings", token, map[string]interface{}{
		"taxRatePercent": 150.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuEndpoints(t *testing.T) {
	server, _ := newTestServer(t)
	token := login(t, server)

	w := doJSON(server, "GET", "/api/v1/menu", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.NotEmpty(t, items)

	w = doJSON(server, "POST", "/api/v1/menu", token, map[string]interface{}{
		"Title": "", "Price": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(server, "GET", "/api/v1/menu/search?q=Biryani", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestFreeTableEndpoint(t *testing.T) {
	server, db := newTestServer(t)
	token := login(t, server)

	var table models.Table
	require.NoError(t, db.Where("number = ?", 2).First(&table).Error)

	w := doJSON(server, "POST", fmt.Sprintf("/api/v1/tables/%d/assign", table.ID), token,
		map[string]string{"customerName": "Walk In"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(server, "POST", fmt.Sprintf("/api/v1/tables/%d/free", table.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Where("number = ?", 2).First(&table).Error)
	assert.Equal(t, string(models.TableStatusAvailable), table.Status)
}
