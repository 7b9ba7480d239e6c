package userControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedseem-infohub/Yelo-Backend/models"
	"github.com/vedseem-infohub/Yelo-Backend/store"
	"github.com/vedseem-infohub/Yelo-Backend/utils"
)

// GetUserStats reports the active-user count and the month-over-month
// registration trend.
// GET /users/admin/stats
func GetUserStats(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		now := time.Now()
		startOfCurrentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		startOfLastMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())

		activeUsers, err := s.Users.CountActive(ctx)
		if err != nil {
			failUsers(c, err, "Failed to fetch user statistics")
			return
		}
		currentMonthUsers, err := s.Users.CountCreatedBetween(ctx, startOfCurrentMonth, time.Time{})
		if err != nil {
			failUsers(c, err, "Failed to fetch user statistics")
			return
		}
		lastMonthUsers, err := s.Users.CountCreatedBetween(ctx, startOfLastMonth, startOfCurrentMonth)
		if err != nil {
			failUsers(c, err, "Failed to fetch user statistics")
			return
		}

		percentChange := utils.Round2(utils.PercentChange(float64(currentMonthUsers), float64(lastMonthUsers)))

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"activeUsers":       activeUsers,
				"currentMonthUsers": currentMonthUsers,
				"lastMonthUsers":    lastMonthUsers,
				"percentChange":     percentChange,
			},
		})
	}
}

type userListRow struct {
	models.User
	TotalOrders  int64   `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// GetUsersList returns a page of users newest first, each enriched with its
// order count and revenue through a single rollup aggregation.
// GET /users/admin/list?page=1&limit=10
func GetUsersList(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}
		skip := (page - 1) * limit

		totalUsers, err := s.Users.CountAll(ctx)
		if err != nil {
			failUsers(c, err, "Failed to fetch users list")
			return
		}
		users, err := s.Users.List(ctx, skip, limit)
		if err != nil {
			failUsers(c, err, "Failed to fetch users list")
			return
		}

		rows, err := attachOrderStats(c, s, users)
		if err != nil {
			failUsers(c, err, "Failed to fetch users list")
			return
		}

		totalPages := (totalUsers + limit - 1) / limit

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"users": rows,
				"pagination": gin.H{
					"currentPage": page,
					"totalPages":  totalPages,
					"totalUsers":  totalUsers,
					"limit":       limit,
				},
			},
		})
	}
}

// attachOrderStats joins the per-user order rollup onto the listed users.
func attachOrderStats(c *gin.Context, s *store.Store, users []models.User) ([]userListRow, error) {
	ids := make([]primitive.ObjectID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	stats, err := s.Orders.StatsByUser(c.Request.Context(), ids)
	if err != nil {
		return nil, err
	}
	byUser := make(map[primitive.ObjectID]store.UserOrderStats, len(stats))
	for _, st := range stats {
		byUser[st.UserID] = st
	}
	rows := make([]userListRow, 0, len(users))
	for _, u := range users {
		st := byUser[u.ID]
		rows = append(rows, userListRow{User: u, TotalOrders: st.TotalOrders, TotalRevenue: st.TotalRevenue})
	}
	return rows, nil
}

// GetUserDetails returns one user with the full order history (product
// references resolved) and a revenue summary.
// GET /users/admin/:id
func GetUserDetails(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
			return
		}

		user, err := s.Users.FindByID(ctx, userID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if err != nil {
			failUsers(c, err, "Failed to fetch user details")
			return
		}

		orders, err := s.Orders.FindByUser(ctx, userID)
		if err != nil {
			failUsers(c, err, "Failed to fetch user details")
			return
		}
		if err := resolveOrderProducts(c, s, orders); err != nil {
			failUsers(c, err, "Failed to fetch user details")
			return
		}

		var totalRevenue float64
		var completed, pending, cancelled, paid int
		for _, o := range orders {
			if o.IsRevenue() {
				totalRevenue += o.TotalAmount
				paid++
			}
			switch o.OrderStatus {
			case models.OrderStatusDelivered, models.OrderStatusCompleted:
				completed++
			case models.OrderStatusPlaced, models.OrderStatusConfirmed:
				pending++
			case models.OrderStatusCancelled:
				cancelled++
			}
		}
		averageOrderValue := 0.0
		if paid > 0 {
			averageOrderValue = utils.Round2(totalRevenue / float64(paid))
		}
		var lastOrderDate interface{}
		if len(orders) > 0 {
			lastOrderDate = orders[0].CreatedAt
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"user": user,
				"revenue": gin.H{
					"totalRevenue":      totalRevenue,
					"totalOrders":       len(orders),
					"completedOrders":   completed,
					"pendingOrders":     pending,
					"cancelledOrders":   cancelled,
					"averageOrderValue": averageOrderValue,
					"lastOrderDate":     lastOrderDate,
				},
				"orders": orders,
			},
		})
	}
}

// resolveOrderProducts fills each order item's product summary from one
// batched product fetch.
func resolveOrderProducts(c *gin.Context, s *store.Store, orders []models.Order) error {
	seen := map[primitive.ObjectID]bool{}
	var ids []primitive.ObjectID
	for _, o := range orders {
		for _, item := range o.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	products, err := s.Products.FindByIDs(c.Request.Context(), ids)
	if err != nil {
		return err
	}
	byID := make(map[primitive.ObjectID]models.ProductSummary, len(products))
	for _, p := range products {
		byID[p.ID] = models.ProductSummary{Name: p.Name, Slug: p.Slug, Images: p.Images, Price: p.Price}
	}
	for i := range orders {
		for j := range orders[i].Items {
			if summary, ok := byID[orders[i].Items[j].ProductID]; ok {
				s := summary
				orders[i].Items[j].Product = &s
			}
		}
	}
	return nil
}

// DeleteUser removes a user and cascades to all of their orders. Orders go
// first; if the user delete then fails the orders stay gone (no transaction,
// matching the rest of the store).
// DELETE /users/admin/:id
func DeleteUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
			return
		}

		if _, err := s.Users.FindByID(ctx, userID); err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			failUsers(c, err, "Failed to delete user")
			return
		}

		deleted, err := s.Orders.DeleteByUser(ctx, userID)
		if err != nil {
			failUsers(c, err, "Failed to delete user")
			return
		}
		if deleted > 0 {
			log.Info().Str("user", userID.Hex()).Int64("orders", deleted).Msg("Deleted orders for user")
		}

		if err := s.Users.Delete(ctx, userID); err != nil {
			failUsers(c, err, "Failed to delete user")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("User and %d associated order(s) deleted successfully", deleted),
		})
	}
}

func failUsers(c *gin.Context, err error, fallback string) {
	log.Error().Err(err).Msg(fallback)
	message := err.Error()
	if message == "" {
		message = fallback
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}
