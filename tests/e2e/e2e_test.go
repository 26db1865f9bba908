package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"petshop/internal/database"
	"petshop/internal/domain"
	"petshop/internal/pkg/jwt"
	"petshop/internal/repository"
	"petshop/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type env struct {
	router *gin.Engine
	db     *gorm.DB
	items  *repository.ItemRepository
	carts  *repository.CartRepository
	users  *repository.UserRepository
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(filepath.Join(t.TempDir(), "petshop.db"))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	jwtService := jwt.New("e2e-secret", time.Hour)

	return &env{
		router: server.BuildRouter(db, jwtService, 1),
		db:     db,
		items:  repository.NewItemRepository(db),
		carts:  repository.NewCartRepository(db),
		users:  repository.NewUserRepository(db),
	}
}

func (e *env) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	return w, parsed
}

func (e *env) seedItem(t *testing.T, name string, category domain.ItemCategory, price, stock int64) int64 {
	t.Helper()
	it := &domain.Item{
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, e.items.Create(context.Background(), it))
	return it.ID
}

func (e *env) stockOf(t *testing.T, itemID int64) int64 {
	t.Helper()
	it, err := e.items.GetByID(context.Background(), itemID)
	require.NoError(t, err)
	return it.Stock
}

func data(t *testing.T, parsed map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := parsed["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", parsed)
	return d
}

func errorCode(t *testing.T, parsed map[string]interface{}) string {
	t.Helper()
	e, ok := parsed["error"].(map[string]interface{})
	require.True(t, ok, "response has no error object: %v", parsed)
	return e["code"].(string)
}

func TestCheckoutPayFlow(t *testing.T) {
	e := newEnv(t)
	foodID := e.seedItem(t, "Dog Food", domain.CategoryFood, 50000, 10)

	w, parsed := e.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"user_id": 1,
		"items":   []gin.H{{"item_id": foodID, "quantity": 3}},
		"bank":    "BRI",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	d := data(t, parsed)
	orderID := int64(d["order_id"].(float64))
	vaNumber := d["va_number"].(string)
	assert.Equal(t, float64(150000), d["total"])
	assert.Equal(t, "awaiting_payment", d["status"])
	assert.Equal(t, "1234", vaNumber[:4])

	assert.Equal(t, int64(7), e.stockOf(t, foodID))

	w, parsed = e.do(t, http.MethodPut, "/api/v1/orders/"+itoa(orderID)+"/pay", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "awaiting_confirmation", data(t, parsed)["status"])

	// Paying twice must be rejected and must not touch the order.
	w, parsed = e.do(t, http.MethodPut, "/api/v1/orders/"+itoa(orderID)+"/pay", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATE_TRANSITION", errorCode(t, parsed))

	w, parsed = e.do(t, http.MethodGet, "/api/v1/orders/"+itoa(orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	o := data(t, parsed)["order"].(map[string]interface{})
	assert.Equal(t, vaNumber, o["va_number"])
	assert.Equal(t, "awaiting_confirmation", o["status"])
}

func TestCancelRestoresStock(t *testing.T) {
	e := newEnv(t)
	foodID := e.seedItem(t, "Cat Food", domain.CategoryFood, 45000, 5)

	w, parsed := e.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"user_id": 1,
		"items":   []gin.H{{"item_id": foodID, "quantity": 4}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := int64(data(t, parsed)["order_id"].(float64))
	require.Equal(t, int64(1), e.stockOf(t, foodID))

	w, parsed = e.do(t, http.MethodPut, "/api/v1/orders/"+itoa(orderID)+"/cancel", gin.H{"reason": "changed my mind"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", data(t, parsed)["status"])
	assert.Equal(t, "changed my mind", data(t, parsed)["cancel_reason"])

	assert.Equal(t, int64(5), e.stockOf(t, foodID))

	// A cancelled order cannot be paid.
	w, parsed = e.do(t, http.MethodPut, "/api/v1/orders/"+itoa(orderID)+"/pay", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATE_TRANSITION", errorCode(t, parsed))
}

func TestCancelRejectedAfterDelivery(t *testing.T) {
	e := newEnv(t)
	foodID := e.seedItem(t, "Dog Food", domain.CategoryFood, 50000, 10)

	w, parsed := e.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"user_id": 1,
		"items":   []gin.H{{"item_id": foodID, "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := int64(data(t, parsed)["order_id"].(float64))
	require.Equal(t, int64(7), e.stockOf(t, foodID))

	w, _ = e.do(t, http.MethodPut, "/api/v1/admin/orders/"+itoa(orderID)+"/status", gin.H{
		"status": "delivered",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A delivered order is terminal for the customer: no cancel, no restock.
	w, parsed = e.do(t, http.MethodPut, "/api/v1/orders/"+itoa(orderID)+"/cancel", nil)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "INVALID_STATE_TRANSITION", errorCode(t, parsed))
	assert.Equal(t, int64(7), e.stockOf(t, foodID))
}

func TestConcurrentCheckoutsNeverOversell(t *testing.T) {
	e := newEnv(t)
	foodID := e.seedItem(t, "Dog Food", domain.CategoryFood, 50000, 10)

	const attempts = 8
	const qty = 3

	body, err := json.Marshal(gin.H{
		"user_id": 1,
		"items":   []gin.H{{"item_id": foodID, "quantity": qty}},
	})
	require.NoError(t, err)

	codes := make(chan int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			e.router.ServeHTTP(w, req)
			codes <- w.Code
		}()
	}
	wg.Wait()
	close(codes)

	var successes int64
	for code := range codes {
		if code == http.StatusCreated {
			successes++
		}
	}

	// Stock 10, quantity 3: at most 3 checkouts can win, and whatever wins
	// must be exactly accounted for.
	require.GreaterOrEqual(t, successes, int64(1))
	assert.LessOrEqual(t, successes, int64(3))

	stock := e.stockOf(t, foodID)
	assert.Equal(t, 10-qty*successes, stock)
	assert.GreaterOrEqual(t, stock, int64(0))
}

func TestCheckoutInsufficientStock(t *testing.T) {
	e := newEnv(t)
	foodID := e.seedItem(t, "Dog Food", domain.CategoryFood, 50000, 2)

	w, parsed := e.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"user_id": 1,
		"items":   []gin.H{{"item_id": foodID, "quantity": 3}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, parsed))
	assert.Equal(t, int64(2), e.stockOf(t, foodID))
}

func TestCheckoutClearsCart(t *testing.T) {
	e := newEnv(t)
	foodID := e.seedItem(t, "Dog Food", domain.CategoryFood, 50000, 10)

	w, _ := e.do(t, http.MethodPost, "/api/v1/cart", gin.H{
		"user_id": 7, "item_id": foodID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = e.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"user_id": 7,
		"items":   []gin.H{{"item_id": foodID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, parsed := e.do(t, http.MethodGet, "/api/v1/cart/user/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, data(t, parsed)["items"])
}

func TestBookingFallbackPriceAndTransferVA(t *testing.T) {
	e := newEnv(t)
	e.seedItem(t, "Grooming Premium", domain.CategoryService, 85000, 0)

	// Catalog-priced booking over transfer gets a VA.
	w, parsed := e.do(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"user_id":        3,
		"service_name":   "Grooming Premium",
		"booking_date":   "2026-09-20",
		"booking_time":   "09:00",
		"payment_method": "bank transfer",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	d := data(t, parsed)
	assert.Equal(t, float64(85000), d["total"])
	assert.NotEmpty(t, d["va_number"])

	// Unknown service falls back to the default price; cash gets no VA.
	w, parsed = e.do(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"user_id":      3,
		"service_name": "Dragon Taming",
		"booking_date": "2026-09-21",
		"booking_time": "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	d = data(t, parsed)
	assert.Equal(t, float64(50000), d["total"])
	assert.Nil(t, d["va_number"])
}

func TestAdminOverrideAndStats(t *testing.T) {
	e := newEnv(t)
	foodID := e.seedItem(t, "Dog Food", domain.CategoryFood, 50000, 10)

	w, parsed := e.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"user_id": 1,
		"items":   []gin.H{{"item_id": foodID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := int64(data(t, parsed)["order_id"].(float64))

	// Override skips the lifecycle guards entirely.
	w, _ = e.do(t, http.MethodPut, "/api/v1/admin/orders/"+itoa(orderID)+"/status", gin.H{
		"status": "shipped", "reason": "manual dispatch",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, parsed = e.do(t, http.MethodGet, "/api/v1/orders/"+itoa(orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	o := data(t, parsed)["order"].(map[string]interface{})
	assert.Equal(t, "shipped", o["status"])

	// Shipped counts as paid revenue.
	w, parsed = e.do(t, http.MethodGet, "/api/v1/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(50000), data(t, parsed)["order_revenue"])
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
