package stockcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
)

// GetStock lists products through the inventory filters (status
// relative to each product's minimum, absolute level) together with
// the low-stock alerts.
func GetStock(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)

		products, err := store.Products(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		filtered := catalog.FilterStock(products, c.Query("status"), c.Query("level"))
		c.JSON(http.StatusOK, gin.H{
			"page":     catalog.Paginate(filtered, page, catalog.AdminPageSize),
			"lowStock": catalog.LowStock(products),
		})
	}
}

// AddStock increments a product's stock count. The write is a single
// stock-field update, not a whole-record overwrite.
func AddStock(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)
		key := c.Param("key")

		var req struct {
			Quantity int `json:"quantity" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
			return
		}

		raw, err := store.RawProduct(c.Request.Context(), storeID, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		if raw == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		newStock := raw.Stock + req.Quantity
		if err := store.SetStock(c.Request.Context(), storeID, key, newStock); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"key": key, "stock": newStock})
	}
}
