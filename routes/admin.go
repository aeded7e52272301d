package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Ezequielp19/sistema-ventas/controllers/product"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
)

// SetupAdminRoutes registers the "/admin/*" back-office endpoints,
// which can inspect any store. Requires the API-key middleware.
func SetupAdminRoutes(r *gin.Engine, store database.RecordStore) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/stores/:storeId/products", productcontroller.GetStoreProducts(store))
	}
}
