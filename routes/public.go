package routes

import (
	"github.com/gin-gonic/gin"

	catalogcontroller "github.com/Ezequielp19/sistema-ventas/controllers/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
)

// SetupPublicRoutes registers the read-only storefront: the catalog
// page and its websocket live feed. No authentication.
func SetupPublicRoutes(r *gin.Engine, store database.RecordStore, hub *catalogcontroller.Hub) {
	stores := r.Group("/stores")
	{
		stores.GET("/:storeId", catalogcontroller.GetCatalog(store))
		stores.GET("/:storeId/live", hub.Live())
	}
}
