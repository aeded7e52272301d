package storeconfigcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezequielp19/sistema-ventas/blob"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
	"github.com/Ezequielp19/sistema-ventas/models"
)

// GetConfig returns the owner's store configuration.
func GetConfig(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)

		cfg, err := store.Config(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store configuration"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// SaveConfig overwrites the store configuration from a multipart form
// with an optional "logo" file. The logo is validated and uploaded
// before the record write; a rejected logo leaves the config
// untouched.
func SaveConfig(store database.RecordStore, uploads *blob.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)

		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		cfg := models.StoreConfig{
			Name:        name,
			Description: c.PostForm("description"),
			Phone:       c.PostForm("phone"),
			WhatsApp:    c.PostForm("whatsapp"),
			Address:     c.PostForm("address"),
			Hours:       c.PostForm("hours"),
			Logo:        c.PostForm("logo"),
		}

		socials := map[string]string{}
		if v := c.PostForm("instagram"); v != "" {
			socials["instagram"] = v
		}
		if v := c.PostForm("facebook"); v != "" {
			socials["facebook"] = v
		}
		if len(socials) > 0 {
			cfg.SocialLinks = socials
		}

		if fh, err := c.FormFile("logo_file"); err == nil {
			url, err := uploads.UploadLogo(c.Request.Context(), storeID, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cfg.Logo = url
		}

		if err := store.SaveConfig(c.Request.Context(), storeID, cfg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save store configuration"})
			return
		}

		c.JSON(http.StatusOK, cfg)
	}
}
