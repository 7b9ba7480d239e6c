package analyticsController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vedseem-infohub/Yelo-Backend/store"
	"github.com/vedseem-infohub/Yelo-Backend/utils"
)

const topCategories = 10

type trendPoint struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type categoryRow struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Orders   int64   `json:"orders"`
}

type paymentMethodRow struct {
	Method  string  `json:"method"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// GetAnalytics computes the admin dashboard payload for the requested date
// range (week|month|year, default month). Any store error aborts the whole
// computation; no partial results.
// GET /analytics?dateRange=month
func GetAnalytics(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		dateRange := c.DefaultQuery("dateRange", "month")
		now := time.Now()
		period := ResolvePeriod(dateRange, now)
		ctx := c.Request.Context()

		totalRevenue, err := s.Orders.RevenueBetween(ctx, period.Start, time.Time{})
		if err != nil {
			fail(c, err)
			return
		}
		previousRevenue, err := s.Orders.RevenueBetween(ctx, period.PrevStart, period.Start)
		if err != nil {
			fail(c, err)
			return
		}

		// Order counts are over all orders in range, regardless of status.
		currentOrders, err := s.Orders.CountBetween(ctx, period.Start, time.Time{})
		if err != nil {
			fail(c, err)
			return
		}
		previousOrders, err := s.Orders.CountBetween(ctx, period.PrevStart, period.Start)
		if err != nil {
			fail(c, err)
			return
		}

		avgOrderValue := 0.0
		if currentOrders > 0 {
			avgOrderValue = totalRevenue / float64(currentOrders)
		}
		previousAvgOrderValue := 0.0
		if previousOrders > 0 {
			previousAvgOrderValue = previousRevenue / float64(previousOrders)
		}

		newCustomers, err := s.Users.CountCreatedBetween(ctx, period.Start, time.Time{})
		if err != nil {
			fail(c, err)
			return
		}
		previousNewCustomers, err := s.Users.CountCreatedBetween(ctx, period.PrevStart, period.Start)
		if err != nil {
			fail(c, err)
			return
		}

		trend := make([]trendPoint, 0, 12)
		for _, b := range TrendBuckets(dateRange, now) {
			revenue, err := s.Orders.RevenueBetween(ctx, b.Start, b.End)
			if err != nil {
				fail(c, err)
				return
			}
			trend = append(trend, trendPoint{
				Label:   b.Label,
				Value:   revenue,
				Display: utils.FormatCurrencyK(revenue),
			})
		}

		categories, err := s.Orders.CategoryRevenue(ctx, period.Start, topCategories)
		if err != nil {
			fail(c, err)
			return
		}
		categoryDistribution := make([]categoryRow, 0, len(categories))
		for _, row := range categories {
			category := row.Category
			if category == "" {
				category = "Uncategorized"
			}
			categoryDistribution = append(categoryDistribution, categoryRow{
				Category: category,
				Revenue:  row.Revenue,
				Orders:   row.Orders,
			})
		}

		methods, err := s.Orders.PaymentMethodBreakdown(ctx, period.Start)
		if err != nil {
			fail(c, err)
			return
		}
		paymentMethodDistribution := make([]paymentMethodRow, 0, len(methods))
		for _, row := range methods {
			method := row.Method
			if method == "" {
				method = "Unknown"
			}
			paymentMethodDistribution = append(paymentMethodDistribution, paymentMethodRow{
				Method:  method,
				Count:   row.Count,
				Revenue: row.Revenue,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"kpis": gin.H{
					"totalRevenue": newKPI(totalRevenue, utils.FormatCurrencyK(totalRevenue), previousRevenue),
					"orders": newKPI(float64(currentOrders),
						utils.FormatCount(currentOrders), float64(previousOrders)),
					"avgOrderValue": newKPI(avgOrderValue,
						utils.FormatCurrency(avgOrderValue), previousAvgOrderValue),
					"newCustomers": newKPI(float64(newCustomers),
						utils.FormatCount(newCustomers), float64(previousNewCustomers)),
				},
				"revenueTrend":              trend,
				"categoryDistribution":      categoryDistribution,
				"paymentMethodDistribution": paymentMethodDistribution,
				"dateRange":                 dateRange,
			},
		})
	}
}

func fail(c *gin.Context, err error) {
	log.Error().Err(err).Msg("Failed to compute analytics")
	message := err.Error()
	if message == "" {
		message = "Failed to fetch analytics"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}
