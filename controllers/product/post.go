package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ezequielp19/sistema-ventas/blob"
	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
	"github.com/Ezequielp19/sistema-ventas/models"
)

// CreateProduct creates a new product from a multipart form with
// optional image uploads. Every image is validated before the first
// byte goes over the network.
func CreateProduct(store database.RecordStore, uploads *blob.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)

		// Required fields
		name := c.PostForm("name")
		salePriceStr := c.PostForm("salePrice")
		stockStr := c.PostForm("stock")
		minStockStr := c.PostForm("minStock")
		if name == "" || salePriceStr == "" || stockStr == "" || minStockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, salePrice, stock, and minStock are required"})
			return
		}

		salePrice, err := strconv.ParseFloat(salePriceStr, 64)
		if err != nil || salePrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salePrice"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}
		minStock, err := strconv.Atoi(minStockStr)
		if err != nil || minStock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minStock"})
			return
		}

		imageURLs, err := uploadImages(c, uploads, storeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		active := true
		raw := models.RawProduct{
			Name:        name,
			Description: c.PostForm("description"),
			SalePrice:   &salePrice,
			Stock:       stock,
			MinStock:    &minStock,
			Category:    c.PostForm("category"),
			Supplier:    c.PostForm("supplier"),
			Images:      imageURLs,
			Featured:    c.PostForm("featured") == "true",
			Active:      &active,
		}
		// Mirror the first image into the legacy field so older app
		// versions keep rendering a thumbnail.
		if len(imageURLs) > 0 {
			raw.Image = imageURLs[0]
		}

		key := uuid.NewString()
		if err := store.SaveProduct(c.Request.Context(), storeID, key, raw); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, raw.Normalize(key))
	}
}

// uploadImages validates every file under the "images" form field
// first, then uploads them. A single bad file rejects the whole
// request with nothing written.
func uploadImages(c *gin.Context, uploads *blob.Uploader, storeID string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}

	for _, fh := range files {
		if err := blob.ValidateImage(fh); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := uploads.UploadProductImage(c.Request.Context(), storeID, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
