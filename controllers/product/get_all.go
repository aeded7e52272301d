package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
)

// pageParam parses the 1-based page query parameter, defaulting to 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GetProducts lists the owner's products with the admin filters:
// search, category, and supplier, all products included regardless of
// visibility.
func GetProducts(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		listProducts(c, store, middleware.StoreID(c))
	}
}

// GetStoreProducts is the back-office variant, addressing any store by
// id.
func GetStoreProducts(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		listProducts(c, store, c.Param("storeId"))
	}
}

func listProducts(c *gin.Context, store database.RecordStore, storeID string) {
	products, err := store.Products(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	filtered := catalog.FilterAdmin(
		products,
		c.Query("search"),
		c.DefaultQuery("category", catalog.All),
		c.DefaultQuery("supplier", catalog.All),
	)

	c.JSON(http.StatusOK, gin.H{
		"page":       catalog.Paginate(filtered, pageParam(c), catalog.AdminPageSize),
		"categories": catalog.Facets(products),
	})
}
