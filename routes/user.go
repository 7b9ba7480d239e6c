package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/vedseem-infohub/Yelo-Backend/controllers/user"
	"github.com/vedseem-infohub/Yelo-Backend/middleware"
	"github.com/vedseem-infohub/Yelo-Backend/store"
)

// SetupUserRoutes registers the "/users/*" endpoints: an API-key-protected
// admin group and JWT-protected self-service routes.
func SetupUserRoutes(r *gin.Engine, s *store.Store) {
	users := r.Group("/users")

	admin := users.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/stats", userControllers.GetUserStats(s))
		admin.GET("/list", userControllers.GetUsersList(s))
		admin.GET("/export-excel", userControllers.ExportUsersToExcel(s))
		// DELETE registered before GET /:id, mirroring the admin client's
		// expectation that the specific routes win.
		admin.DELETE("/:id", userControllers.DeleteUser(s))
		admin.GET("/:id", userControllers.GetUserDetails(s))
	}

	users.PUT("/profile", middleware.ValidateToken, userControllers.UpdateProfile(s))
	users.PUT("/address", middleware.ValidateToken, userControllers.UpdateAddress(s))
	users.GET("/me", middleware.ValidateToken, userControllers.GetMe(s))
}
