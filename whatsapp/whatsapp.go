// Package whatsapp builds the wa.me handoff links used for checkout
// and store sharing. There is no cart or payment flow: a purchase is a
// prefilled WhatsApp message to the store's number.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Ezequielp19/sistema-ventas/models"
)

// ErrNoNumber is returned when the store has no WhatsApp number
// configured; checkout links cannot be generated without one.
var ErrNoNumber = errors.New("store has no WhatsApp number configured")

// digits strips everything but digits from a phone number, the only
// form wa.me accepts.
func digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckoutMessage is the prefilled purchase message for one product.
func CheckoutMessage(p models.Product) string {
	return "¡Hola! Quiero comprar:\n\n" +
		fmt.Sprintf("*%s*\n%s\n\n", p.Name, p.Description) +
		fmt.Sprintf("💰 Precio: $%v\n", p.SalePrice) +
		fmt.Sprintf("📦 Stock disponible: %d unidades\n\n", p.Stock) +
		"¿Tienes stock disponible?"
}

// CheckoutLink builds the wa.me URL that opens a chat with the store
// about the given product.
func CheckoutLink(number string, p models.Product) (string, error) {
	num := digits(number)
	if num == "" {
		return "", ErrNoNumber
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", num, url.QueryEscape(CheckoutMessage(p))), nil
}

// ShareLink builds the wa.me URL for sharing a store's catalog. It has
// no target number: the sender picks the recipient.
func ShareLink(cfg models.StoreConfig, catalogURL string) string {
	contact := cfg.WhatsApp
	if contact == "" {
		contact = cfg.Phone
	}
	msg := fmt.Sprintf("¡Hola! Te comparto el catálogo de %s:\n\n", cfg.Name) +
		fmt.Sprintf("%s\n\n", cfg.Description) +
		fmt.Sprintf("🛍️ Ver productos: %s\n\n", catalogURL) +
		fmt.Sprintf("📞 Contacto: %s", contact)
	return "https://wa.me/?text=" + url.QueryEscape(msg)
}
