package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/blob"
	catalogcontroller "github.com/Ezequielp19/sistema-ventas/controllers/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
)

// SetupRoutes is the single entry point that wires up the auth, owner,
// back-office, and public route groups.
func SetupRoutes(r *gin.Engine, store database.RecordStore, uploads *blob.Uploader, hub *catalogcontroller.Hub) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// Store-owner routes (JWT-protected)
	SetupOwnerRoutes(r, store, uploads, hub)

	// Back-office routes (API-key-protected)
	SetupAdminRoutes(r, store)

	// Public storefront
	SetupPublicRoutes(r, store, hub)
}
