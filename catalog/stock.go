package catalog

import "github.com/Ezequielp19/sistema-ventas/models"

// Stock view filters, matching the inventory tab: a status filter
// relative to each product's own minimum threshold and an absolute
// level filter. Both default to "no filter" on the empty string and
// combine with AND.
const (
	StockStatusAvailable = "available" // stock above the minimum
	StockStatusLow       = "low"       // stock at or below the minimum

	StockLevelOut    = "out"    // stock == 0
	StockLevelScarce = "scarce" // 0 < stock <= 5
	StockLevelNormal = "normal" // stock > 5
)

func matchesStockStatus(p models.Product, status string) bool {
	switch status {
	case StockStatusAvailable:
		return p.Stock > p.MinStock
	case StockStatusLow:
		return p.Stock <= p.MinStock
	default:
		return true
	}
}

func matchesStockLevel(p models.Product, level string) bool {
	switch level {
	case StockLevelOut:
		return p.Stock == 0
	case StockLevelScarce:
		return p.Stock > 0 && p.Stock <= 5
	case StockLevelNormal:
		return p.Stock > 5
	default:
		return true
	}
}

// FilterStock applies the inventory view filters, preserving snapshot
// order.
func FilterStock(products []models.Product, status, level string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesStockStatus(p, status) && matchesStockLevel(p, level) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// LowStock returns the products at or below their minimum threshold,
// used for the restock alert banner.
func LowStock(products []models.Product) []models.Product {
	var low []models.Product
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low
}
