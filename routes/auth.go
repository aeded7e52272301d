package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/auth"
)

// SetupAuthRoutes registers the session endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login)
	}
}
