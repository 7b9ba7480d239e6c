package routes

import (
	"github.com/gin-gonic/gin"

	vendorControllers "github.com/vedseem-infohub/Yelo-Backend/controllers/vendor"
	"github.com/vedseem-infohub/Yelo-Backend/store"
)

// SetupVendorRoutes registers the "/vendors/*" endpoints. Specific sub-paths
// (/slug/:slug, /:id/details, /:id/products, /:id/commission) must be
// registered before the bare /:id handlers so they aren't shadowed.
func SetupVendorRoutes(r *gin.Engine, s *store.Store) {
	vendors := r.Group("/vendors")
	{
		vendors.POST("", vendorControllers.CreateVendor(s))
		vendors.GET("", vendorControllers.GetAllVendors(s))
		vendors.GET("/slug/:slug", vendorControllers.GetVendorBySlug(s))
		vendors.GET("/:id/details", vendorControllers.GetVendorDetails(s))
		// :id carries the vendor slug here; gin allows only one wildcard
		// name per path segment.
		vendors.GET("/:id/products", vendorControllers.GetVendorProducts(s))
		vendors.GET("/:id", vendorControllers.GetVendorByID(s))
		vendors.PUT("/:id/commission", vendorControllers.UpdateCommission(s))
		vendors.PUT("/:id", vendorControllers.UpdateVendor(s))
		vendors.DELETE("/:id", vendorControllers.DeleteVendor(s))
	}
}
