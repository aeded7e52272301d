package models

// RawProduct mirrors a product node exactly as stored in Realtime
// Database, including the legacy aliases written by older versions of
// the app (price for salePrice, type for category, image for images).
// Pointer fields distinguish "absent" from an explicit zero value.
type RawProduct struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	Price       *float64 `json:"price,omitempty"` // legacy alias of SalePrice
	Stock       int      `json:"stock"`
	MinStock    *int     `json:"minStock,omitempty"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"` // legacy alias of Category
	Supplier    string   `json:"supplier,omitempty"`
	Images      []string `json:"images,omitempty"`
	Image       string   `json:"image,omitempty"` // legacy single image
	Featured    bool     `json:"featured,omitempty"`
	Active      *bool    `json:"active,omitempty"` // absent means active
}

// Product is the canonical record shape the rest of the code works
// with. Aliases are resolved exactly once, in Normalize; nothing past
// the database boundary ever looks at a legacy field again.
type Product struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SalePrice   float64  `json:"salePrice"`
	Stock       int      `json:"stock"`
	MinStock    int      `json:"minStock"`
	Category    string   `json:"category"`
	Supplier    string   `json:"supplier,omitempty"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Active      bool     `json:"active"`
}

// Normalize resolves the legacy aliases of a raw record into the
// canonical shape: salePrice wins over price, category over type,
// images over image, and a missing active flag counts as active.
func (r RawProduct) Normalize(key string) Product {
	price := 0.0
	switch {
	case r.SalePrice != nil:
		price = *r.SalePrice
	case r.Price != nil:
		price = *r.Price
	}

	category := r.Category
	if category == "" {
		category = r.Type
	}

	images := r.Images
	if len(images) == 0 && r.Image != "" {
		images = []string{r.Image}
	}

	minStock := 0
	if r.MinStock != nil {
		minStock = *r.MinStock
	}

	return Product{
		Key:         key,
		Name:        r.Name,
		Description: r.Description,
		SalePrice:   price,
		Stock:       r.Stock,
		MinStock:    minStock,
		Category:    category,
		Supplier:    r.Supplier,
		Images:      images,
		Featured:    r.Featured,
		Active:      r.Active == nil || *r.Active,
	}
}

// Visible reports whether the product belongs in the public catalog:
// active and in stock.
func (p Product) Visible() bool {
	return p.Active && p.Stock > 0
}

// LowStock reports whether the product is at or below its minimum
// stock threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
