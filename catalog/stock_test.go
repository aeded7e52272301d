package catalog

import (
	"reflect"
	"testing"

	"github.com/Ezequielp19/sistema-ventas/models"
)

func stockProduct(key string, stock, minStock int) models.Product {
	return models.Product{Key: key, Stock: stock, MinStock: minStock, Active: true}
}

func TestFilterStockStatus(t *testing.T) {
	products := []models.Product{
		stockProduct("A", 10, 3),
		stockProduct("B", 3, 3),
		stockProduct("C", 0, 3),
	}

	if got := keys(FilterStock(products, StockStatusAvailable, "")); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("available = %v, want [A]", got)
	}
	if got := keys(FilterStock(products, StockStatusLow, "")); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("low = %v, want [B C]", got)
	}
	if got := FilterStock(products, "", ""); len(got) != 3 {
		t.Errorf("no filter kept %d, want 3", len(got))
	}
}

func TestFilterStockLevel(t *testing.T) {
	products := []models.Product{
		stockProduct("A", 0, 1),
		stockProduct("B", 5, 1),
		stockProduct("C", 6, 1),
	}

	if got := keys(FilterStock(products, "", StockLevelOut)); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("out = %v, want [A]", got)
	}
	if got := keys(FilterStock(products, "", StockLevelScarce)); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("scarce = %v, want [B]", got)
	}
	if got := keys(FilterStock(products, "", StockLevelNormal)); !reflect.DeepEqual(got, []string{"C"}) {
		t.Errorf("normal = %v, want [C]", got)
	}
}

func TestFilterStockCombinesWithAnd(t *testing.T) {
	products := []models.Product{
		stockProduct("A", 2, 5),  // low and scarce
		stockProduct("B", 0, 5),  // low and out
		stockProduct("C", 10, 5), // available and normal
	}

	got := keys(FilterStock(products, StockStatusLow, StockLevelScarce))
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("combined filters = %v, want [A]", got)
	}
}

func TestLowStockAlerts(t *testing.T) {
	products := []models.Product{
		stockProduct("A", 2, 5),
		stockProduct("B", 10, 5),
	}

	got := keys(LowStock(products))
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("LowStock = %v, want [A]", got)
	}
}
