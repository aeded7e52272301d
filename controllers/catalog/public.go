package catalogcontroller

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/models"
	"github.com/Ezequielp19/sistema-ventas/whatsapp"
)

// Item is one catalog entry as served to the public page: the product
// plus its WhatsApp checkout link, when the store has a number.
type Item struct {
	models.Product
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

func buildItems(products []models.Product, whatsAppNumber string) []Item {
	items := make([]Item, 0, len(products))
	for _, p := range products {
		item := Item{Product: p}
		if url, err := whatsapp.CheckoutLink(whatsAppNumber, p); err == nil {
			item.WhatsAppURL = url
		}
		items = append(items, item)
	}
	return items
}

// catalogURL is the public address of a store's catalog page.
func catalogURL(c *gin.Context, storeID string) string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		scheme := "https"
		if c.Request.TLS == nil {
			scheme = "http"
		}
		base = scheme + "://" + c.Request.Host
	}
	return fmt.Sprintf("%s/stores/%s", base, storeID)
}

// GetCatalog serves the public storefront: store configuration, one
// filtered page of visible products, the category facets, and a
// catalog share link. Inactive and out-of-stock products never appear
// here.
func GetCatalog(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")

		cfg, err := store.Config(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store"})
			return
		}
		products, err := store.Products(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
			return
		}

		state := catalog.NewViewState().
			WithSearch(c.Query("search")).
			WithCategory(c.DefaultQuery("category", catalog.All)).
			WithPage(pageParam(c))
		page := state.Apply(products, catalog.PublicPageSize)

		c.JSON(http.StatusOK, gin.H{
			"config":     cfg,
			"items":      buildItems(page.Items, cfg.WhatsApp),
			"page":       page.Page,
			"totalPages": page.TotalPages,
			"total":      page.Total,
			"categories": catalog.Facets(products),
			"shareUrl":   whatsapp.ShareLink(cfg, catalogURL(c, storeID)),
		})
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
