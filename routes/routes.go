package routes

import (
	"github.com/gin-gonic/gin"

	analyticsController "github.com/vedseem-infohub/Yelo-Backend/controllers/analytics"
	"github.com/vedseem-infohub/Yelo-Backend/middleware"
	"github.com/vedseem-infohub/Yelo-Backend/store"
)

// SetupRoutes is the single entry-point that wires up the analytics, user
// and vendor route groups.
func SetupRoutes(r *gin.Engine, s *store.Store) {
	// Admin dashboard analytics (API-key protected)
	r.GET("/analytics", middleware.ValidateAPIKey, analyticsController.GetAnalytics(s))

	SetupUserRoutes(r, s)
	SetupVendorRoutes(r, s)
}
