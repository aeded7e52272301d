package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/blob"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
)

// UpdateProduct updates an existing product. Accepts the same fields
// as CreateProduct; only the fields present in the form change, and
// new images are appended to the existing ones. The record is written
// back whole: last writer wins.
func UpdateProduct(store database.RecordStore, uploads *blob.Uploader) gin.HandlerFunc {
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

		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}
		parseInt := func(val string) *int {
			if val == "" {
				return nil
			}
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
			return nil
		}

		if v := c.PostForm("name"); v != "" {
			raw.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			raw.Description = v
		}
		if v := parseFloat(c.PostForm("salePrice")); v != nil {
			// Writing the canonical field retires the legacy alias.
			raw.SalePrice = v
			raw.Price = nil
		}
		if v := parseInt(c.PostForm("stock")); v != nil {
			raw.Stock = *v
		}
		if v := parseInt(c.PostForm("minStock")); v != nil {
			raw.MinStock = v
		}
		if v := c.PostForm("category"); v != "" {
			raw.Category = v
			raw.Type = ""
		}
		if v := c.PostForm("supplier"); v != "" {
			raw.Supplier = v
		}
		if v := c.PostForm("featured"); v != "" {
			raw.Featured = v == "true"
		}
		if v := c.PostForm("active"); v != "" {
			active := v == "true"
			raw.Active = &active
		}

		newImages, err := uploadImages(c, uploads, storeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(newImages) > 0 {
			if len(raw.Images) == 0 && raw.Image != "" {
				raw.Images = []string{raw.Image}
			}
			raw.Images = append(raw.Images, newImages...)
		}
		if len(raw.Images) > 0 {
			raw.Image = raw.Images[0]
		}

		if err := store.SaveProduct(c.Request.Context(), storeID, key, *raw); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, raw.Normalize(key))
	}
}
