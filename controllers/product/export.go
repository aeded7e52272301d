package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Ezequielp19/sistema-ventas/database"
	"github.com/Ezequielp19/sistema-ventas/middleware"
)

// ExportProducts streams the owner's full product list as an xlsx
// download, legacy aliases already resolved.
func ExportProducts(store database.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := middleware.StoreID(c)

		products, err := store.Products(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"Key", "Name", "Description", "SalePrice", "Stock",
			"MinStock", "Category", "Supplier", "Featured", "Active", "Images",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.Key)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.SalePrice)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.MinStock)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Supplier)
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.Active)
			row.AddCell().SetValue(strings.Join(p.Images, ","))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
