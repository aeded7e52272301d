// Package catalog implements the product filtering, faceting, and
// pagination pipeline shared by the public storefront and the admin
// panel. It operates on ordered snapshots of canonical products and
// never mutates or reorders them, so pagination stays deterministic.
package catalog

import (
	"strings"

	"github.com/Ezequielp19/sistema-ventas/models"
)

const (
	// PublicPageSize is the page size of the public catalog grid.
	PublicPageSize = 12
	// AdminPageSize is the page size of the admin list views.
	AdminPageSize = 10

	// All is the sentinel filter value meaning "no filter".
	All = "all"
)

// matchesSearch is a case-insensitive substring match against name or
// description. An empty or whitespace-only term matches everything.
func matchesSearch(p models.Product, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// matchesCategory is an exact, case-sensitive match. Category values
// are curated strings, unlike free-text search, so the asymmetry with
// matchesSearch is intentional.
func matchesCategory(p models.Product, filter string) bool {
	if filter == "" || filter == All {
		return true
	}
	return p.Category == filter
}

func matchesSupplier(p models.Product, filter string) bool {
	if filter == "" || filter == All {
		return true
	}
	return p.Supplier == filter
}

// FilterPublic applies the public catalog predicate in order:
// visibility, then search, then category. Snapshot order is preserved.
func FilterPublic(products []models.Product, search, category string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.Visible() {
			continue
		}
		if !matchesSearch(p, search) {
			continue
		}
		if !matchesCategory(p, category) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FilterAdmin applies the admin list predicate: search, category, and
// supplier, with no visibility test: the admin sees inactive and
// out-of-stock products too.
func FilterAdmin(products []models.Product, search, category, supplier string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, search) {
			continue
		}
		if !matchesCategory(p, category) {
			continue
		}
		if !matchesSupplier(p, supplier) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Facets returns the distinct non-empty categories across the
// unfiltered snapshot, in first-occurrence order. It feeds the
// category selector, so it ignores every active filter.
func Facets(products []models.Product) []string {
	seen := make(map[string]bool, len(products))
	var categories []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
