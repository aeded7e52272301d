package models

// StoreConfig holds the per-store settings shown on the public
// catalog page. The WhatsApp number is a soft requirement: checkout
// links are only generated when it is present.
type StoreConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Phone       string            `json:"phone"`
	WhatsApp    string            `json:"whatsapp"`
	Address     string            `json:"address"`
	Hours       string            `json:"hours"`
	Logo        string            `json:"logo"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}
