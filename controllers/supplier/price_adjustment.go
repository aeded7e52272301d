package suppliercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
	"github.com/Ezequielp19/sistema-ventas/pricing"
)

type priceAdjustmentRequest struct {
	// Scope is a supplier key or "all".
	Scope      string  `json:"scope" binding:"required"`
	Percentage float64 `json:"percentage"`
	Direction  string  `json:"direction" binding:"required"`
}

// PreviewPriceAdjustment reports how many products a scope would
// touch, for the confirmation prompt shown before the batch runs.
func PreviewPriceAdjustment(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)
		scope := c.DefaultQuery("scope", pricing.AllSuppliers)

		products, err := store.Products(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"scope": scope,
			"count": pricing.Count(products, scope),
		})
	}
}

// ApplyPriceAdjustment plans the price batch for a scope and submits
// it as one atomic multi-key update. Nothing is written when planning
// fails, and the store applies the batch all-or-nothing.
func ApplyPriceAdjustment(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)

		var req priceAdjustmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scope and direction are required"})
			return
		}
		direction, err := pricing.ParseDirection(req.Direction)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		products, err := store.Products(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		updates, err := pricing.Plan(products, req.Scope, req.Percentage, direction)
		if err != nil {
			if errors.Is(err, pricing.ErrExcessiveDecrease) || errors.Is(err, pricing.ErrNegativePercentage) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to plan price adjustment"})
			return
		}

		if err := store.ApplyPriceBatch(c.Request.Context(), storeID, updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply price adjustment"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"updated": len(updates),
			"scope":   req.Scope,
		})
	}
}
