package suppliercontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ezequielp19/sistema-ventas/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
	"github.com/Ezequielp19/sistema-ventas/models"
)

type supplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// GetSuppliers lists the owner's suppliers, paginated like the admin
// tables.
func GetSuppliers(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.StoreID(c)

		suppliers, err := store.Suppliers(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers"})
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		total := len(suppliers)
		totalPages := (total + catalog.AdminPageSize - 1) / catalog.AdminPageSize
		start := (page - 1) * catalog.AdminPageSize
		end := start + catalog.AdminPageSize
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"items":      suppliers[start:end],
			"page":       page,
			"totalPages": totalPages,
			"total":      total,
		})
	}
}

// CreateSupplier adds a supplier under a fresh key.
func CreateSupplier(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.StoreID(c)

		var req supplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		key := uuid.NewString()
		supplier := models.Supplier{
			Name:    req.Name,
			Contact: req.Contact,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
		}
		if err := store.SaveSupplier(c.Request.Context(), userID, key, supplier); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
			return
		}

		supplier.Key = key
		c.JSON(http.StatusCreated, supplier)
	}
}

// UpdateSupplier overwrites a supplier record.
func UpdateSupplier(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.StoreID(c)
		key := c.Param("key")

		var req supplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		supplier := models.Supplier{
			Name:    req.Name,
			Contact: req.Contact,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
		}
		if err := store.SaveSupplier(c.Request.Context(), userID, key, supplier); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
			return
		}

		supplier.Key = key
		c.JSON(http.StatusOK, supplier)
	}
}

// DeleteSupplier removes a supplier. Products referencing it keep the
// dangling key; their supplier reference is optional by design.
func DeleteSupplier(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.StoreID(c)
		key := c.Param("key")

		if err := store.DeleteSupplier(c.Request.Context(), userID, key); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
	}
}
