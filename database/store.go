// Package database wraps the Firebase Realtime Database paths the
// system uses: stores/{storeId}/config, stores/{storeId}/products and
// users/{userId}/suppliers. Records are whole-node overwrites with
// last-writer-wins semantics; the only multi-key operation is the
// atomic price batch.
package database

import (
	"context"

	"github.com/Ezequielp19/sistema-ventas/models"
	"github.com/Ezequielp19/sistema-ventas/pricing"
)

// RecordStore is the persistence surface consumed by the handlers.
// The production implementation is Client; tests use in-memory fakes.
type RecordStore interface {
	// Products returns the canonical product snapshot of a store, in
	// key order. Realtime Database push keys sort chronologically, so
	// key order is insertion order; pagination depends on it.
	Products(ctx context.Context, storeID string) ([]models.Product, error)
	// RawProduct returns one product as stored, or nil when absent.
	RawProduct(ctx context.Context, storeID, key string) (*models.RawProduct, error)
	// SaveProduct overwrites one product node.
	SaveProduct(ctx context.Context, storeID, key string, p models.RawProduct) error
	DeleteProduct(ctx context.Context, storeID, key string) error
	// ApplyPriceBatch writes every update in one atomic multi-key
	// request: all keys or none, partial application must never be
	// observable.
	ApplyPriceBatch(ctx context.Context, storeID string, updates []pricing.Update) error
	// SetStock overwrites a single product's stock count.
	SetStock(ctx context.Context, storeID, key string, stock int) error

	Config(ctx context.Context, storeID string) (models.StoreConfig, error)
	SaveConfig(ctx context.Context, storeID string, cfg models.StoreConfig) error

	Suppliers(ctx context.Context, userID string) ([]models.Supplier, error)
	SaveSupplier(ctx context.Context, userID, key string, s models.Supplier) error
	DeleteSupplier(ctx context.Context, userID, key string) error
}
