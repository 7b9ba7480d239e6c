package analyticsController

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedseem-infohub/Yelo-Backend/models"
	"github.com/vedseem-infohub/Yelo-Backend/store"
)

func newTestRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/analytics", GetAnalytics(s))
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetAnalyticsWeekRevenueExcludesCancelled(t *testing.T) {
	mem, s := store.NewMemory()
	now := time.Now()
	userID := primitive.NewObjectID()
	mem.OrdersData = []models.Order{
		{
			ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 1000,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusPlaced,
			PaymentMethod: "UPI", CreatedAt: now,
		},
		{
			ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 500,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusCancelled,
			PaymentMethod: "COD", CreatedAt: now,
		},
	}

	w, body := doGet(t, newTestRouter(s), "/analytics?dateRange=week")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	kpis := data["kpis"].(map[string]interface{})

	totalRevenue := kpis["totalRevenue"].(map[string]interface{})
	assert.Equal(t, 1000.0, totalRevenue["value"])
	assert.Equal(t, "₹1k", totalRevenue["display"])
	// no previous-period activity, so any revenue reads as +100%
	assert.Equal(t, 100.0, totalRevenue["change"])
	assert.Equal(t, true, totalRevenue["isPositive"])

	// order count ignores status
	orders := kpis["orders"].(map[string]interface{})
	assert.Equal(t, 2.0, orders["value"])

	avg := kpis["avgOrderValue"].(map[string]interface{})
	assert.Equal(t, 500.0, avg["value"])

	// both payment methods appear, unfiltered
	methods := data["paymentMethodDistribution"].([]interface{})
	assert.Len(t, methods, 2)

	trend := data["revenueTrend"].([]interface{})
	require.Len(t, trend, 7)
	today := trend[6].(map[string]interface{})
	assert.Equal(t, 1000.0, today["value"])
}

func TestGetAnalyticsTrendLengths(t *testing.T) {
	_, s := store.NewMemory()
	r := newTestRouter(s)

	tests := []struct {
		dateRange string
		buckets   int
	}{
		{"month", 6},
		{"week", 7},
		{"year", 12},
	}
	for _, tt := range tests {
		t.Run(tt.dateRange, func(t *testing.T) {
			w, body := doGet(t, r, "/analytics?dateRange="+tt.dateRange)
			require.Equal(t, http.StatusOK, w.Code)
			data := body["data"].(map[string]interface{})
			assert.Len(t, data["revenueTrend"].([]interface{}), tt.buckets)
			assert.Equal(t, tt.dateRange, data["dateRange"])
		})
	}
}

func TestGetAnalyticsCategoryDistribution(t *testing.T) {
	mem, s := store.NewMemory()
	now := time.Now()
	shoes := primitive.NewObjectID()
	bags := primitive.NewObjectID()
	untagged := primitive.NewObjectID()
	mem.ProductsData = []models.Product{
		{ID: shoes, Name: "Runner", Category: "Footwear", IsActive: true},
		{ID: bags, Name: "Tote", Category: "Bags", IsActive: true},
		{ID: untagged, Name: "Mystery", IsActive: true},
	}
	mem.OrdersData = []models.Order{
		{
			ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), TotalAmount: 700,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusDelivered,
			CreatedAt: now,
			Items: []models.OrderItem{
				{ProductID: shoes, Price: 200, Quantity: 2},
				{ProductID: bags, Price: 100, Quantity: 2},
				{ProductID: untagged, Price: 100, Quantity: 1},
			},
		},
	}

	w, body := doGet(t, newTestRouter(s), "/analytics?dateRange=month")
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	rows := data["categoryDistribution"].([]interface{})
	require.Len(t, rows, 3)

	top := rows[0].(map[string]interface{})
	assert.Equal(t, "Footwear", top["category"])
	assert.Equal(t, 400.0, top["revenue"])

	// sorted by revenue descending; missing category gets the sentinel label
	second := rows[1].(map[string]interface{})
	assert.Equal(t, "Bags", second["category"])
	last := rows[2].(map[string]interface{})
	assert.Equal(t, "Uncategorized", last["category"])

	// per-category revenue never exceeds total period revenue
	var sum float64
	for _, raw := range rows {
		sum += raw.(map[string]interface{})["revenue"].(float64)
	}
	kpis := data["kpis"].(map[string]interface{})
	total := kpis["totalRevenue"].(map[string]interface{})["value"].(float64)
	assert.LessOrEqual(t, sum, total)
}

func TestGetAnalyticsStoreErrorFailsWhole(t *testing.T) {
	mem, s := store.NewMemory()
	mem.Err = errors.New("connection reset")

	w, body := doGet(t, newTestRouter(s), "/analytics")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "connection reset", body["message"])
}
