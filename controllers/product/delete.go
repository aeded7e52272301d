package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
)

// DeleteProduct removes a product by key. Deletion is a plain key
// removal; there is no soft delete.
func DeleteProduct(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)
		key := c.Param("key")

		raw, err := store.RawProduct(c.Request.Context(), storeID, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		if raw == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := store.DeleteProduct(c.Request.Context(), storeID, key); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
