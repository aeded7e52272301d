package models

// Supplier is referenced from products by key; the reference may be
// absent (a product without a supplier).
type Supplier struct {
	Key     string `json:"key,omitempty"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}
