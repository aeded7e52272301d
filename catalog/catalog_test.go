package catalog

import (
	"reflect"
	"testing"

	"github.com/Ezequielp19/sistema-ventas/models"
)

func visibleProduct(key, name string) models.Product {
	return models.Product{Key: key, Name: name, Stock: 5, Active: true}
}

func keys(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Key)
	}
	return out
}

func TestFilterPublicVisibility(t *testing.T) {
	products := []models.Product{
		{Key: "A", Name: "Yerba", SalePrice: 50, Stock: 3, Active: true},
		{Key: "B", Name: "Azúcar", SalePrice: 30, Stock: 0, Active: true},
		{Key: "C", Name: "Café", SalePrice: 10, Stock: 5, Active: false},
	}

	got := keys(FilterPublic(products, "", All))
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("visible set = %v, want [A]", got)
	}
}

func TestFilterPublicEmptySearchIsNoOp(t *testing.T) {
	products := []models.Product{
		visibleProduct("A", "Yerba"),
		visibleProduct("B", "Café"),
		{Key: "C", Name: "Oculto", Stock: 0, Active: true},
	}

	base := FilterPublic(products, "", All)
	for _, term := range []string{"", "   ", "\t "} {
		if got := FilterPublic(products, term, All); !reflect.DeepEqual(got, base) {
			t.Errorf("search %q changed the result: %v != %v", term, keys(got), keys(base))
		}
	}
}

func TestFilterPublicSearchCaseInsensitive(t *testing.T) {
	products := []models.Product{
		visibleProduct("A", "Yerba Mate"),
		visibleProduct("B", "Café"),
	}
	products[1].Description = "molido con yerba"

	got := keys(FilterPublic(products, "YERBA", All))
	if !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("search matched %v, want name and description hits [A B]", got)
	}
}

func TestFilterPublicCategoryExactCaseSensitive(t *testing.T) {
	a := visibleProduct("A", "Yerba")
	a.Category = "Bebidas"
	b := visibleProduct("B", "Café")
	b.Category = "bebidas"
	products := []models.Product{a, b}

	got := keys(FilterPublic(products, "", "Bebidas"))
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("category filter matched %v, want exact case-sensitive [A]", got)
	}
}

func TestFilterPublicCategorySentinelIsNoOp(t *testing.T) {
	a := visibleProduct("A", "Yerba")
	a.Category = "Bebidas"
	b := visibleProduct("B", "Café")
	products := []models.Product{a, b}

	base := FilterPublic(products, "", "")
	if got := FilterPublic(products, "", All); !reflect.DeepEqual(got, base) {
		t.Errorf("sentinel %q is not a no-op", All)
	}
	if len(base) != 2 {
		t.Errorf("empty filter kept %d products, want 2", len(base))
	}
}

func TestFilterPublicPreservesOrder(t *testing.T) {
	products := []models.Product{
		visibleProduct("C", "Tercero"),
		visibleProduct("A", "Primero"),
		visibleProduct("B", "Segundo"),
	}

	got := keys(FilterPublic(products, "", All))
	if !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
		t.Errorf("order = %v, want snapshot order [C A B]", got)
	}
}

func TestFilterAdminIgnoresVisibility(t *testing.T) {
	products := []models.Product{
		{Key: "A", Name: "Yerba", Stock: 0, Active: true},
		{Key: "B", Name: "Café", Stock: 5, Active: false},
	}

	got := FilterAdmin(products, "", All, All)
	if len(got) != 2 {
		t.Errorf("admin filter dropped invisible products: got %v", keys(got))
	}
}

func TestFilterAdminSupplier(t *testing.T) {
	a := visibleProduct("A", "Yerba")
	a.Supplier = "prov1"
	b := visibleProduct("B", "Café")
	b.Supplier = "prov2"
	c := visibleProduct("C", "Azúcar")
	products := []models.Product{a, b, c}

	if got := keys(FilterAdmin(products, "", All, "prov1")); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("supplier filter = %v, want [A]", got)
	}
	if got := FilterAdmin(products, "", All, All); len(got) != 3 {
		t.Errorf("supplier sentinel kept %d, want 3", len(got))
	}
}

func TestFacets(t *testing.T) {
	mk := func(key, category string) models.Product {
		p := visibleProduct(key, key)
		p.Category = category
		return p
	}
	products := []models.Product{
		mk("A", "Bebidas"),
		mk("B", ""),
		mk("C", "Snacks"),
		mk("D", "Bebidas"),
		{Key: "E", Name: "Inactivo", Category: "Limpieza", Active: false},
	}

	got := Facets(products)
	want := []string{"Bebidas", "Snacks", "Limpieza"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Facets = %v, want first-occurrence dedup over the unfiltered snapshot %v", got, want)
	}
}
