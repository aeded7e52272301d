package catalog

import "github.com/Ezequielp19/sistema-ventas/models"

// ViewState is the explicit, serializable state of a catalog view:
// the current filters and page. All mutations go through the With*
// methods, which return a new value; changing any filter resets the
// page to 1, for every filter field, always.
type ViewState struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Page     int    `json:"page"`
}

// NewViewState returns the initial state: no search, all categories,
// first page.
func NewViewState() ViewState {
	return ViewState{Category: All, Page: 1}
}

// WithSearch replaces the search term and resets to the first page.
func (v ViewState) WithSearch(term string) ViewState {
	v.Search = term
	v.Page = 1
	return v
}

// WithCategory replaces the category filter and resets to the first
// page.
func (v ViewState) WithCategory(category string) ViewState {
	v.Category = category
	v.Page = 1
	return v
}

// WithPage moves to the given page without touching the filters.
func (v ViewState) WithPage(page int) ViewState {
	if page < 1 {
		page = 1
	}
	v.Page = page
	return v
}

// Cleared drops every filter and returns to the first page.
func (v ViewState) Cleared() ViewState {
	return NewViewState()
}

// Apply runs the public pipeline for this state over a snapshot.
func (v ViewState) Apply(products []models.Product, pageSize int) Page {
	return Paginate(FilterPublic(products, v.Search, v.Category), v.Page, pageSize)
}
