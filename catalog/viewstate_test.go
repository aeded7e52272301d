package catalog

import (
	"testing"

	"github.com/Ezequielp19/sistema-ventas/models"
)

func TestViewStateResetsPageOnFilterChange(t *testing.T) {
	state := NewViewState().WithPage(4)

	if got := state.WithSearch("yerba"); got.Page != 1 {
		t.Errorf("WithSearch left page at %d, want 1", got.Page)
	}
	if got := state.WithCategory("Bebidas"); got.Page != 1 {
		t.Errorf("WithCategory left page at %d, want 1", got.Page)
	}
	// Every filter mutation resets, including clearing a filter.
	if got := state.WithSearch(""); got.Page != 1 {
		t.Errorf("clearing search left page at %d, want 1", got.Page)
	}
}

func TestViewStateWithPageKeepsFilters(t *testing.T) {
	state := NewViewState().WithSearch("yerba").WithCategory("Bebidas").WithPage(3)
	if state.Search != "yerba" || state.Category != "Bebidas" || state.Page != 3 {
		t.Errorf("unexpected state %+v", state)
	}
}

func TestViewStateCleared(t *testing.T) {
	state := NewViewState().WithSearch("yerba").WithCategory("Bebidas").WithPage(3).Cleared()
	if state != NewViewState() {
		t.Errorf("Cleared() = %+v, want the initial state", state)
	}
}

func TestViewStateApply(t *testing.T) {
	products := []models.Product{
		{Key: "A", Name: "Yerba", Stock: 1, Active: true},
		{Key: "B", Name: "Café", Stock: 1, Active: true},
		{Key: "C", Name: "Yerba suave", Stock: 0, Active: true},
	}

	page := NewViewState().WithSearch("yerba").Apply(products, PublicPageSize)
	if page.Total != 1 || page.Items[0].Key != "A" {
		t.Errorf("Apply = %+v, want only the visible yerba", page)
	}
}
