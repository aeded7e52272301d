package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/blob"
	catalogcontroller "github.com/Ezequielp19/sistema-ventas/controllers/catalog"
	productcontroller "github.com/Ezequielp19/sistema-ventas/controllers/product"
	stockcontroller "github.com/Ezequielp19/sistema-ventas/controllers/stock"
	storeconfigcontroller "github.com/Ezequielp19/sistema-ventas/controllers/storeconfig"
	suppliercontroller "github.com/Ezequielp19/sistema-ventas/controllers/supplier"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
)

// refreshLiveFeed pushes a fresh snapshot to the store's live clients
// after any successful write.
func refreshLiveFeed(hub *catalogcontroller.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method == http.MethodGet || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		hub.Refresh(context.Background(), middleware.StoreID(c))
	}
}

// SetupOwnerRoutes registers all "/api/*" endpoints. Requires a
// session JWT; the store id comes from the token, so an owner can only
// touch their own store.
func SetupOwnerRoutes(r *gin.Engine, store database.RecordStore, uploads *blob.Uploader, hub *catalogcontroller.Hub) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken, refreshLiveFeed(hub))
	{
		products := api.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(store))
			products.POST("", productcontroller.CreateProduct(store, uploads))
			products.PUT("/:key", productcontroller.UpdateProduct(store, uploads))
			products.DELETE("/:key", productcontroller.DeleteProduct(store))
			products.GET("/export", productcontroller.ExportProducts(store))
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", suppliercontroller.GetSuppliers(store))
			suppliers.POST("", suppliercontroller.CreateSupplier(store))
			suppliers.PUT("/:key", suppliercontroller.UpdateSupplier(store))
			suppliers.DELETE("/:key", suppliercontroller.DeleteSupplier(store))
		}

		prices := api.Group("/price-adjustments")
		{
			prices.GET("/preview", suppliercontroller.PreviewPriceAdjustment(store))
			prices.POST("", suppliercontroller.ApplyPriceAdjustment(store))
		}

		stock := api.Group("/stock")
		{
			stock.GET("", stockcontroller.GetStock(store))
			stock.POST("/:key/add", stockcontroller.AddStock(store))
		}

		config := api.Group("/config")
		{
			config.GET("", storeconfigcontroller.GetConfig(store))
			config.PUT("", storeconfigcontroller.SaveConfig(store, uploads))
		}
	}
}
