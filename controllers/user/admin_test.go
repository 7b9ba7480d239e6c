package userControllers

import (
	"encoding/json"
	"fmt"
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

func newAdminRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/admin/stats", GetUserStats(s))
	r.GET("/users/admin/list", GetUsersList(s))
	r.DELETE("/users/admin/:id", DeleteUser(s))
	r.GET("/users/admin/:id", GetUserDetails(s))
	return r
}

func do(t *testing.T, r *gin.Engine, method, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	r.ServeHTTP(w, req)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func seedUser(mem *store.Memory, name string, active bool, createdAt time.Time) primitive.ObjectID {
	id := primitive.NewObjectID()
	mem.UsersData = append(mem.UsersData, models.User{
		ID: id, Name: name, Email: name + "@example.com",
		IsActive: active, CreatedAt: createdAt,
	})
	return id
}

func TestGetUserStats(t *testing.T) {
	mem, s := store.NewMemory()
	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	seedUser(mem, "a", true, now)
	seedUser(mem, "b", true, now)
	seedUser(mem, "c", true, lastMonth)
	seedUser(mem, "d", false, lastMonth)

	w, body := do(t, newAdminRouter(s), http.MethodGet, "/users/admin/stats")
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 3.0, data["activeUsers"])
	assert.Equal(t, 2.0, data["currentMonthUsers"])
	assert.Equal(t, 2.0, data["lastMonthUsers"])
	assert.Equal(t, 0.0, data["percentChange"])
}

func TestGetUserStatsNoPriorMonth(t *testing.T) {
	mem, s := store.NewMemory()
	seedUser(mem, "only", true, time.Now())

	_, body := do(t, newAdminRouter(s), http.MethodGet, "/users/admin/stats")
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 100.0, data["percentChange"])
}

func TestGetUsersListPaginationAndRollup(t *testing.T) {
	mem, s := store.NewMemory()
	base := time.Now().Add(-24 * time.Hour)
	var ids []primitive.ObjectID
	for i := 0; i < 25; i++ {
		ids = append(ids, seedUser(mem, fmt.Sprintf("user%02d", i), true, base.Add(time.Duration(i)*time.Minute)))
	}
	// newest user has two orders; revenue rollup counts every order
	newest := ids[24]
	mem.OrdersData = []models.Order{
		{ID: primitive.NewObjectID(), UserID: newest, TotalAmount: 300,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusDelivered, CreatedAt: base},
		{ID: primitive.NewObjectID(), UserID: newest, TotalAmount: 200,
			PaymentStatus: models.PaymentStatusUnpaid, OrderStatus: models.OrderStatusPlaced, CreatedAt: base},
	}

	w, body := do(t, newAdminRouter(s), http.MethodGet, "/users/admin/list?page=2&limit=10")
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	users := data["users"].([]interface{})
	require.Len(t, users, 10)

	// page 2 of newest-first: user14 down to user05
	first := users[0].(map[string]interface{})
	assert.Equal(t, "user14", first["name"])

	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, 2.0, pagination["currentPage"])
	assert.Equal(t, 3.0, pagination["totalPages"])
	assert.Equal(t, 25.0, pagination["totalUsers"])
	assert.Equal(t, 10.0, pagination["limit"])

	// rollup on page 1
	_, body = do(t, newAdminRouter(s), http.MethodGet, "/users/admin/list")
	users = body["data"].(map[string]interface{})["users"].([]interface{})
	top := users[0].(map[string]interface{})
	assert.Equal(t, "user24", top["name"])
	assert.Equal(t, 2.0, top["totalOrders"])
	assert.Equal(t, 500.0, top["totalRevenue"])
}

func TestGetUserDetails(t *testing.T) {
	mem, s := store.NewMemory()
	now := time.Now()
	userID := seedUser(mem, "ravi", true, now.Add(-48*time.Hour))
	productID := primitive.NewObjectID()
	mem.ProductsData = []models.Product{
		{ID: productID, Name: "Sneaker", Slug: "sneaker", Price: 500, IsActive: true},
	}
	mem.OrdersData = []models.Order{
		{ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 1000,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusDelivered,
			CreatedAt: now.Add(-2 * time.Hour),
			Items:     []models.OrderItem{{ProductID: productID, Price: 500, Quantity: 2}}},
		{ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 400,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusPlaced,
			CreatedAt: now.Add(-1 * time.Hour)},
		{ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 900,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusCancelled,
			CreatedAt: now.Add(-3 * time.Hour)},
	}

	w, body := do(t, newAdminRouter(s), http.MethodGet, "/users/admin/"+userID.Hex())
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})

	revenue := data["revenue"].(map[string]interface{})
	assert.Equal(t, 1400.0, revenue["totalRevenue"])
	assert.Equal(t, 3.0, revenue["totalOrders"])
	assert.Equal(t, 1.0, revenue["completedOrders"])
	assert.Equal(t, 1.0, revenue["pendingOrders"])
	assert.Equal(t, 1.0, revenue["cancelledOrders"])
	assert.Equal(t, 700.0, revenue["averageOrderValue"])
	assert.NotNil(t, revenue["lastOrderDate"])

	orders := data["orders"].([]interface{})
	require.Len(t, orders, 3)
	// newest first; the delivered order carries the resolved product
	newest := orders[0].(map[string]interface{})
	assert.Equal(t, 400.0, newest["totalAmount"])
	delivered := orders[1].(map[string]interface{})
	items := delivered["items"].([]interface{})
	require.Len(t, items, 1)
	product := items[0].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, "Sneaker", product["name"])
	assert.Equal(t, "sneaker", product["slug"])
}

func TestGetUserDetailsNotFound(t *testing.T) {
	_, s := store.NewMemory()
	w, body := do(t, newAdminRouter(s), http.MethodGet, "/users/admin/"+primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestGetUserDetailsInvalidID(t *testing.T) {
	_, s := store.NewMemory()
	w, _ := do(t, newAdminRouter(s), http.MethodGet, "/users/admin/not-a-hex-id")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUserCascades(t *testing.T) {
	mem, s := store.NewMemory()
	now := time.Now()
	userID := seedUser(mem, "gone", true, now)
	otherID := seedUser(mem, "stays", true, now)
	for i := 0; i < 3; i++ {
		mem.OrdersData = append(mem.OrdersData, models.Order{
			ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 100,
			PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusDelivered, CreatedAt: now,
		})
	}
	mem.OrdersData = append(mem.OrdersData, models.Order{
		ID: primitive.NewObjectID(), UserID: otherID, TotalAmount: 50,
		PaymentStatus: models.PaymentStatusPaid, OrderStatus: models.OrderStatusDelivered, CreatedAt: now,
	})

	w, body := do(t, newAdminRouter(s), http.MethodDelete, "/users/admin/"+userID.Hex())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User and 3 associated order(s) deleted successfully", body["message"])

	// user and all their orders are gone; the other user's order survives
	assert.Len(t, mem.UsersData, 1)
	assert.Len(t, mem.OrdersData, 1)
	assert.Equal(t, otherID, mem.OrdersData[0].UserID)
}

func TestDeleteUserNotFound(t *testing.T) {
	mem, s := store.NewMemory()
	seedUser(mem, "someone", true, time.Now())

	w, _ := do(t, newAdminRouter(s), http.MethodDelete, "/users/admin/"+primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, mem.UsersData, 1)
}
