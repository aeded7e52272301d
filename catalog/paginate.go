package catalog

import "github.com/Ezequielp19/sistema-ventas/models"

// Page is one slice of a filtered result, ready for display.
type Page struct {
	Items      []models.Product `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

// Paginate slices a filtered result into the requested 1-based page.
// A page past the end yields an empty slice, not an error, and pages
// concatenate back to the filtered result in order.
func Paginate(filtered []models.Product, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}
